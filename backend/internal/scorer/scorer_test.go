package scorer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/dataset"
)

func record(name string, trend dataset.PriceTrend, cap dataset.Tier, sustain int) dataset.AssetRecord {
	return dataset.AssetRecord{
		Name:                name,
		Symbol:              name[:3],
		PriceTrend:          trend,
		MarketCapTier:       cap,
		EnergyUse:           dataset.TierLow,
		SustainabilityScore: sustain,
		MaxScore:            10,
		CurrentPrice:        decimal.NewFromInt(1),
		MarketCapUSD:        decimal.NewFromInt(1),
	}
}

func TestProfitability(t *testing.T) {
	tests := []struct {
		trend dataset.PriceTrend
		cap   dataset.Tier
		want  int
	}{
		{dataset.TrendRising, dataset.TierHigh, 5},
		{dataset.TrendRising, dataset.TierMedium, 4},
		{dataset.TrendRising, dataset.TierLow, 3},
		{dataset.TrendStable, dataset.TierHigh, 3},
		{dataset.TrendStable, dataset.TierMedium, 2},
		{dataset.TrendStable, dataset.TierLow, 1},
		{dataset.TrendFalling, dataset.TierHigh, 2},
		{dataset.TrendFalling, dataset.TierMedium, 1},
		{dataset.TrendFalling, dataset.TierLow, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.trend)+"/"+string(tt.cap), func(t *testing.T) {
			got := Profitability(record("Test", tt.trend, tt.cap, 0))
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, MaxProfitability)
		})
	}
}

func TestProfitability_SeedRange(t *testing.T) {
	for _, r := range dataset.MustSeed().All() {
		p := Profitability(r)
		assert.GreaterOrEqual(t, p, 0, r.Name)
		assert.LessOrEqual(t, p, MaxProfitability, r.Name)

		b := Balanced(r)
		assert.GreaterOrEqual(t, b, 0.0, r.Name)
		assert.LessOrEqual(t, b, MaxBalanced, r.Name)
	}
}

func TestBalanced_SeedValues(t *testing.T) {
	ds := dataset.MustSeed()
	want := map[string]float64{
		"Bitcoin":  3.25,
		"Ethereum": 3.0,
		"Cardano":  4.0,
		"Solana":   3.75,
		"Polygon":  3.25,
	}

	for name, score := range want {
		r, err := ds.Lookup(name)
		require.NoError(t, err)
		assert.InDelta(t, score, Balanced(r), 1e-9, name)
	}
}

func TestMostProfitable_Seed(t *testing.T) {
	top := MostProfitable(dataset.MustSeed())
	assert.Equal(t, "Bitcoin", top.Asset.Name)
	assert.Equal(t, 5.0, top.Score)
}

func TestMostSustainable_Seed(t *testing.T) {
	top := MostSustainable(dataset.MustSeed())
	assert.Equal(t, "Polygon", top.Asset.Name)
	assert.Equal(t, 9.0, top.Score)
}

func TestBestBalanced_Seed(t *testing.T) {
	top := BestBalanced(dataset.MustSeed())
	assert.Equal(t, "Cardano", top.Asset.Name)
	assert.InDelta(t, 4.0, top.Score, 1e-9)
}

func TestRank_TiesKeepDatasetOrder(t *testing.T) {
	ds, err := dataset.New([]dataset.AssetRecord{
		record("First", dataset.TrendStable, dataset.TierLow, 7),
		record("Second", dataset.TrendRising, dataset.TierHigh, 7),
		record("Third", dataset.TrendRising, dataset.TierHigh, 2),
	})
	require.NoError(t, err)

	assert.Equal(t, "First", MostSustainable(ds).Asset.Name)
	assert.Equal(t, "Second", MostProfitable(ds).Asset.Name)

	ranked := Rank(ds, func(dataset.AssetRecord) float64 { return 1 })
	require.Len(t, ranked, 3)
	assert.Equal(t, "First", ranked[0].Asset.Name)
	assert.Equal(t, "Second", ranked[1].Asset.Name)
	assert.Equal(t, "Third", ranked[2].Asset.Name)
}

func TestRankings_Idempotent(t *testing.T) {
	ds := dataset.MustSeed()

	p, s, b := MostProfitable(ds), MostSustainable(ds), BestBalanced(ds)
	for i := 0; i < 10; i++ {
		assert.Equal(t, p, MostProfitable(ds))
		assert.Equal(t, s, MostSustainable(ds))
		assert.Equal(t, b, BestBalanced(ds))
	}
}
