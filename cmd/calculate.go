package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecoechos/backend/pkg/cli"
	"github.com/ecoechos/backend/pkg/footprint"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagInputFile string
	flagLanguage  string
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate a footprint from a YAML or JSON file",
	Long:  "Calculate a footprint from a YAML or JSON file with the activity data.\nYAML files use snake_case keys, JSON files use the camelCase keys of the API.\nOmitted fields use their defaults. Use - to read YAML from stdin.",
	Args:  cobra.NoArgs,
	RunE:  runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&flagInputFile, "file", "f", "", "Input file, - for stdin")
	calculateCmd.Flags().StringVarP(&flagLanguage, "lang", "l", os.Getenv("LANG"), "Language of the feedback, en or pt-BR")
	_ = calculateCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	in, err := readInput(flagInputFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	r := footprint.Calculate(in)
	// POSIX locales look like pt_BR.UTF-8
	lang := strings.ReplaceAll(strings.SplitN(flagLanguage, ".", 2)[0], "_", "-")

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderFootprint(r, footprint.NewLocalizer(lang), footprint.Advise(r, nil)))
	return nil
}

// readInput decodes the activity data. Files ending in .json are decoded
// as JSON, everything else as YAML.
func readInput(path string, stdin io.Reader) (footprint.Input, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return footprint.Input{}, fmt.Errorf("could not read input: %w", err)
	}

	in := footprint.NewInput()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &in)
	} else {
		err = yaml.Unmarshal(data, &in)
	}
	if err != nil {
		return footprint.Input{}, fmt.Errorf("could not decode %s: %w", path, err)
	}

	if err := in.Validate(); err != nil {
		return footprint.Input{}, err
	}

	return in, nil
}
