package footprint

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// Headlines are keyed by their English text.
var headlines = map[Tier]string{
	TierLight:    "Light footprint: %.2f kgCO2e. Well done, keep it up!",
	TierModerate: "Moderate footprint: %.2f kgCO2e. There is room for improvement.",
	TierHeavy:    "Heavy footprint: %.2f kgCO2e. Time to review your habits.",
	TierAlarming: "Alarming footprint: %.2f kgCO2e. Consider significant changes.",
	TierCritical: "Critical footprint: %.2f kgCO2e. Urgent changes are needed.",
}

var catalogs = func() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	pt := map[Tier]string{
		TierLight:    "Pegada leve: %.2f kgCO2e. Parabéns, continue assim!",
		TierModerate: "Pegada moderada: %.2f kgCO2e. Ainda há espaço para melhorar.",
		TierHeavy:    "Pegada pesada: %.2f kgCO2e. Hora de rever seus hábitos.",
		TierAlarming: "Pegada alarmante: %.2f kgCO2e. Considere mudanças significativas.",
		TierCritical: "Pegada crítica: %.2f kgCO2e. Mudanças urgentes são necessárias.",
	}

	for tier, key := range headlines {
		_ = b.SetString(language.English, key, key)
		_ = b.SetString(language.BrazilianPortuguese, key, pt[tier])
	}

	return b
}()

// Localizer formats feedback for a language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLocalizer picks the best supported language for an
// Accept-Language header value. English is the default.
func NewLocalizer(acceptLanguage string) Localizer {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		tags = []language.Tag{language.English}
	}

	_, idx, _ := matcher.Match(tags...)
	tag := supported[idx]

	return Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(catalogs)),
	}
}

// Languages lists the BCP 47 tags feedback is available in.
func Languages() []string {
	out := make([]string, 0, len(supported))
	for _, t := range supported {
		out = append(out, t.String())
	}
	return out
}

// Language returns the BCP 47 tag in use.
func (l Localizer) Language() string {
	return l.tag.String()
}

// Headline returns the tier's message for a total.
func (l Localizer) Headline(total decimal.Decimal) string {
	return l.printer.Sprintf(headlines[Feedback(total)], total.InexactFloat64())
}

// Number formats a value with two decimals and locale separators.
func (l Localizer) Number(v decimal.Decimal) string {
	return l.printer.Sprintf("%.2f", v.InexactFloat64())
}
