package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ecoechos/backend/pkg/emission"
	"github.com/ecoechos/backend/pkg/footprint"
)

const barWidth = 24

var tierColors = map[footprint.Tier]lipgloss.Color{
	footprint.TierLight:    ColorGreen,
	footprint.TierModerate: ColorYellow,
	footprint.TierHeavy:    ColorOrange,
	footprint.TierAlarming: ColorRed,
	footprint.TierCritical: ColorRed,
}

// RenderFootprint renders the categories of a result with bars, followed
// by the tier headline, the equivalents and the advice.
func RenderFootprint(r footprint.Result, l footprint.Localizer, advice []footprint.Advice) string {
	categories := r.Categories()

	var highest float64
	for _, c := range categories {
		highest = max(highest, c.Emissions.InexactFloat64())
	}

	rows := make([][]string, 0, len(categories)+2)
	for _, c := range categories {
		v := c.Emissions.InexactFloat64()
		rows = append(rows, []string{string(c.Category), l.Number(c.Emissions), RenderBar(v, highest, barWidth)})
	}

	if !r.Offsets.IsZero() {
		rows = append(rows, []string{string(emission.GroupOffsets), l.Number(r.Offsets), ""})
	}
	rows = append(rows, []string{"total", l.Number(r.Total), ""})

	var b strings.Builder
	b.WriteString(RenderTitle("CARBON FOOTPRINT  kgCO2e"))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(Table{
		Headers: []string{"Category", "kgCO2e", ""},
		Rows:    rows,
	}))
	b.WriteString("\n")

	tier := footprint.Feedback(r.Total)
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tierColors[tier]).Render(l.Headline(r.Total)))
	b.WriteString("\n")

	eq := footprint.Equivalents(r.Total)
	b.WriteString(mutedStyle.Render("  ≈ " + l.Number(eq.CarKm) + " km by car, " + eq.Trees.String() + " tree(s) for a month"))
	b.WriteString("\n")

	for _, a := range advice {
		b.WriteString("\n  ")
		b.WriteString(headerStyle.Render(string(a.Category)))
		b.WriteString("\n")
		for _, tip := range a.Tips {
			b.WriteString("    - ")
			b.WriteString(tip)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderFactors renders the factor table.
func RenderFactors(factors []emission.Factor) string {
	rows := make([][]string, 0, len(factors))
	for _, f := range factors {
		rows = append(rows, []string{f.Name, string(f.Group), f.Unit, f.Value.String()})
	}

	return RenderTable(Table{
		Title:   "Emission factors in kgCO2e per unit",
		Headers: []string{"Name", "Group", "Unit", "Factor"},
		Rows:    rows,
	})
}
