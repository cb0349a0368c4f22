// Package scorer ranks dataset entries with fixed linear formulas.
// Every function here is pure and total over a validated dataset.
package scorer

import (
	"sort"

	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/dataset"
)

// Score bounds shared by all three formulas.
const (
	MaxProfitability = 5
	MaxBalanced      = 5.0
)

// ScoredCandidate pairs a record with the score it was ranked by.
type ScoredCandidate struct {
	Asset dataset.AssetRecord
	Score float64
}

// ScoreFunc scores a single record.
type ScoreFunc func(r dataset.AssetRecord) float64

func trendPoints(t dataset.PriceTrend) int {
	switch t {
	case dataset.TrendRising:
		return 3
	case dataset.TrendStable:
		return 1
	default:
		return 0
	}
}

func capPoints(t dataset.Tier) int {
	switch t {
	case dataset.TierHigh:
		return 2
	case dataset.TierMedium:
		return 1
	default:
		return 0
	}
}

// Profitability = trend points + market cap points, in [0,5].
func Profitability(r dataset.AssetRecord) int {
	return trendPoints(r.PriceTrend) + capPoints(r.MarketCapTier)
}

// Sustainability is the record's own score, in [0,MaxScore].
func Sustainability(r dataset.AssetRecord) int {
	return r.SustainabilityScore
}

// Balanced averages profitability with sustainability rescaled to [0,5].
func Balanced(r dataset.AssetRecord) float64 {
	return (float64(Profitability(r)) + r.SustainabilityRatio()*MaxBalanced) / 2
}

// Rank scores every record and sorts by score descending.
// Ties keep dataset order.
func Rank(ds *dataset.Dataset, score ScoreFunc) []ScoredCandidate {
	records := ds.All()
	out := make([]ScoredCandidate, len(records))
	for i, r := range records {
		out[i] = ScoredCandidate{Asset: r, Score: score(r)}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// MostProfitable returns the top record by Profitability.
func MostProfitable(ds *dataset.Dataset) ScoredCandidate {
	return Rank(ds, func(r dataset.AssetRecord) float64 {
		return float64(Profitability(r))
	})[0]
}

// MostSustainable returns the first record with the highest Sustainability.
func MostSustainable(ds *dataset.Dataset) ScoredCandidate {
	return Rank(ds, func(r dataset.AssetRecord) float64 {
		return float64(Sustainability(r))
	})[0]
}

// BestBalanced returns the top record by Balanced.
func BestBalanced(ds *dataset.Dataset) ScoredCandidate {
	return Rank(ds, Balanced)[0]
}
