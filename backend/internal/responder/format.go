package responder

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/dataset"
)

// formatPrice renders a USD amount with thousands separators and two decimals.
func formatPrice(d decimal.Decimal) string {
	return message.NewPrinter(language.English).Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

// formatWhole renders a USD amount with thousands separators and no decimals.
func formatWhole(d decimal.Decimal) string {
	return message.NewPrinter(language.English).Sprintf("$%.0f", d.Round(0).InexactFloat64())
}

// formatPercent renders the sustainability ratio rounded to the nearest percent.
func formatPercent(r dataset.AssetRecord) string {
	return fmt.Sprintf("%d%%", int(math.Round(r.SustainabilityRatio()*100)))
}

// formatScore renders "score/max".
func formatScore(r dataset.AssetRecord) string {
	return fmt.Sprintf("%d/%d", r.SustainabilityScore, r.MaxScore)
}

// title upper-cases the first letter of an enum value. A Caser holds
// state, so each call gets its own.
func title(s fmt.Stringer) string {
	return cases.Title(language.English).String(s.String())
}
