// Package responder turns classified, scored queries into reply text.
// Wording and emoji are cosmetic; the template choice and the fields
// interpolated into it are what callers rely on.
package responder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/analyzer"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/dataset"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/scorer"
)

// Answer is everything needed to render one reply.
type Answer struct {
	Intent analyzer.Intent

	// Pick is the ranking winner. Set for kinds where NeedsRanking is true.
	Pick *scorer.ScoredCandidate

	// Obligations are policy-attached decorations, see Obligation*.
	Obligations []string
}

// Responder renders answers over one dataset.
type Responder struct {
	dataset *dataset.Dataset
}

// New creates a Responder.
func New(ds *dataset.Dataset) *Responder {
	return &Responder{dataset: ds}
}

// Render selects the template for the answer's intent and fills it.
func (r *Responder) Render(a Answer) string {
	var body string

	switch a.Intent.Kind {
	case analyzer.KindDescribeAsset:
		if a.Intent.Asset == nil {
			body = NotFound("that asset")
		} else {
			body = describe(*a.Intent.Asset)
		}
	case analyzer.KindMostSustainable:
		body = r.ranked(a.Pick, mostSustainable)
	case analyzer.KindMostProfitable:
		body = r.ranked(a.Pick, mostProfitable)
	case analyzer.KindBalanced:
		body = r.ranked(a.Pick, balanced)
	case analyzer.KindCompareAll:
		body = r.compare()
	case analyzer.KindListAll:
		body = r.list()
	default:
		body = Help()
	}

	return body + renderObligations(a.Obligations)
}

// Describe renders the detail card for a name or symbol, or the
// not-found message when the table has no such asset.
func (r *Responder) Describe(nameOrSymbol string) string {
	rec, err := r.dataset.Lookup(nameOrSymbol)
	if errors.Is(err, dataset.ErrNotFound) {
		return NotFound(nameOrSymbol)
	}
	return describe(rec)
}

func (r *Responder) ranked(pick *scorer.ScoredCandidate, tmpl func(dataset.AssetRecord) string) string {
	if pick == nil {
		return Help()
	}
	return tmpl(pick.Asset)
}

func describe(rec dataset.AssetRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🪙 **%s (%s)**\n", rec.Name, rec.Symbol)
	fmt.Fprintf(&b, "💰 Current Price: %s\n", formatPrice(rec.CurrentPrice))
	fmt.Fprintf(&b, "📈 Price Trend: %s\n", title(rec.PriceTrend))
	fmt.Fprintf(&b, "🏛️ Market Cap: %s (%s)\n", title(rec.MarketCapTier), formatWhole(rec.MarketCapUSD))
	fmt.Fprintf(&b, "🌱 Sustainability Score: %s (%s)\n", formatScore(rec), formatPercent(rec))
	fmt.Fprintf(&b, "⚡ Energy Use: %s\n", title(rec.EnergyUse))
	fmt.Fprintf(&b, "📝 Description: %s", rec.Description)
	return b.String()
}

func mostSustainable(rec dataset.AssetRecord) string {
	return fmt.Sprintf("🌱 **Most Sustainable Choice: %s (%s)**\n\n"+
		"%s leads in sustainability with a %s score (%s)!\n"+
		"It uses %s energy and is currently %s.\n\n"+
		"Perfect for eco-conscious investors! 🌍✨",
		rec.Name, rec.Symbol,
		rec.Name, formatScore(rec), formatPercent(rec),
		rec.EnergyUse, rec.PriceTrend)
}

func mostProfitable(rec dataset.AssetRecord) string {
	return fmt.Sprintf("🚀 **Most Profitable Choice: %s (%s)**\n\n"+
		"%s is trending %s with a %s market cap!\n"+
		"Current price: %s\n\n"+
		"Great for profit-focused investors! 💰📈",
		rec.Name, rec.Symbol,
		rec.Name, rec.PriceTrend, rec.MarketCapTier,
		formatPrice(rec.CurrentPrice))
}

func balanced(rec dataset.AssetRecord) string {
	return fmt.Sprintf("⭐ **Balanced Recommendation: %s (%s)**\n\n"+
		"%s offers the best balance of profitability and sustainability!\n\n"+
		"📊 **Quick Stats:**\n"+
		"• Price: %s (%s trend)\n"+
		"• Sustainability: %s (%s)\n"+
		"• Market Position: %s cap\n\n"+
		"%s",
		rec.Name, rec.Symbol,
		rec.Name,
		formatPrice(rec.CurrentPrice), rec.PriceTrend,
		formatScore(rec), formatPercent(rec),
		title(rec.MarketCapTier),
		rec.Description)
}

func (r *Responder) compare() string {
	var b strings.Builder
	b.WriteString("📊 **Crypto Comparison Overview**\n\n")
	for _, rec := range r.dataset.All() {
		icon := "📊"
		if rec.PriceTrend == dataset.TrendRising {
			icon = "📈"
		}
		fmt.Fprintf(&b, "%s **%s (%s)**\n", icon, rec.Name, rec.Symbol)
		fmt.Fprintf(&b, "Price: %s | Trend: %s\n", formatPrice(rec.CurrentPrice), title(rec.PriceTrend))
		fmt.Fprintf(&b, "Sustainability: %s | Energy: %s\n\n", formatPercent(rec), title(rec.EnergyUse))
	}
	b.WriteString("💡 **Need specific advice?** Ask me for profitability, sustainability, or investment recommendations!")
	return b.String()
}

func (r *Responder) list() string {
	var b strings.Builder
	b.WriteString("🪙 **Available Cryptocurrencies:**\n\n")
	for _, rec := range r.dataset.All() {
		fmt.Fprintf(&b, "• %s (%s) - %s\n", rec.Name, rec.Symbol, formatPrice(rec.CurrentPrice))
	}
	b.WriteString("\n💬 Ask me about any of these cryptos for detailed analysis!")
	return b.String()
}

func renderObligations(obligations []string) string {
	var b strings.Builder
	seen := make(map[string]bool, len(obligations))
	for _, o := range obligations {
		if seen[o] {
			continue
		}
		seen[o] = true

		switch o {
		case ObligationDisclaimer:
			b.WriteString("\n\n" + riskNote)
		case ObligationEnergyNote:
			b.WriteString("\n\n" + energyNote)
		}
	}
	return b.String()
}
