package dataset

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord(name, symbol string) AssetRecord {
	return AssetRecord{
		Name:                name,
		Symbol:              symbol,
		PriceTrend:          TrendStable,
		MarketCapTier:       TierMedium,
		EnergyUse:           TierLow,
		SustainabilityScore: 5,
		MaxScore:            10,
		CurrentPrice:        decimal.RequireFromString("1.00"),
		MarketCapUSD:        decimal.RequireFromString("1000"),
		Description:         "test asset",
	}
}

func TestSeed_Order(t *testing.T) {
	ds, err := Seed()
	require.NoError(t, err)

	var names []string
	for _, r := range ds.All() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Bitcoin", "Ethereum", "Cardano", "Solana", "Polygon"}, names)
}

func TestSeed_Invariants(t *testing.T) {
	ds := MustSeed()

	names := make(map[string]bool)
	symbols := make(map[string]bool)
	for _, r := range ds.All() {
		assert.GreaterOrEqual(t, r.SustainabilityScore, 0, r.Name)
		assert.LessOrEqual(t, r.SustainabilityScore, r.MaxScore, r.Name)
		assert.Equal(t, 10, r.MaxScore, r.Name)
		assert.True(t, r.PriceTrend.IsValid(), r.Name)
		assert.True(t, r.MarketCapTier.IsValid(), r.Name)
		assert.True(t, r.EnergyUse.IsValid(), r.Name)

		assert.False(t, names[r.Name], "duplicate name %s", r.Name)
		assert.False(t, symbols[r.Symbol], "duplicate symbol %s", r.Symbol)
		names[r.Name] = true
		symbols[r.Symbol] = true
	}
}

func TestSeed_Values(t *testing.T) {
	ds := MustSeed()

	tests := []struct {
		name      string
		symbol    string
		trend     PriceTrend
		cap       Tier
		energy    Tier
		sustain   int
		price     string
		marketCap string
	}{
		{"Bitcoin", "BTC", TrendRising, TierHigh, TierHigh, 3, "67500", "1300000000000"},
		{"Ethereum", "ETH", TrendStable, TierHigh, TierMedium, 6, "3800", "456000000000"},
		{"Cardano", "ADA", TrendRising, TierMedium, TierLow, 8, "0.65", "23000000000"},
		{"Solana", "SOL", TrendRising, TierMedium, TierLow, 7, "145", "68000000000"},
		{"Polygon", "MATIC", TrendStable, TierMedium, TierLow, 9, "0.85", "8500000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ds.Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.symbol, r.Symbol)
			assert.Equal(t, tt.trend, r.PriceTrend)
			assert.Equal(t, tt.cap, r.MarketCapTier)
			assert.Equal(t, tt.energy, r.EnergyUse)
			assert.Equal(t, tt.sustain, r.SustainabilityScore)
			assert.True(t, r.CurrentPrice.Equal(decimal.RequireFromString(tt.price)), "price %s", r.CurrentPrice)
			assert.True(t, r.MarketCapUSD.Equal(decimal.RequireFromString(tt.marketCap)), "market cap %s", r.MarketCapUSD)
		})
	}
}

func TestLookup(t *testing.T) {
	ds := MustSeed()

	r, err := ds.Lookup("bitcoin")
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin", r.Name)

	r, err = ds.Lookup("  matic ")
	require.NoError(t, err)
	assert.Equal(t, "Polygon", r.Name)

	_, err = ds.Lookup("Dogecoin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAll_ReturnsCopy(t *testing.T) {
	ds := MustSeed()

	all := ds.All()
	all[0].Name = "Mutated"

	r, err := ds.Lookup("BTC")
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin", r.Name)
	assert.Equal(t, "Bitcoin", ds.All()[0].Name)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = New([]AssetRecord{validRecord("Alpha", "AAA"), validRecord("alpha", "BBB")})
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = New([]AssetRecord{validRecord("Alpha", "AAA"), validRecord("Beta", "aaa")})
	assert.ErrorIs(t, err, ErrDuplicateSymbol)

	over := validRecord("Alpha", "AAA")
	over.SustainabilityScore = 11
	_, err = New([]AssetRecord{over})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	badTrend := validRecord("Alpha", "AAA")
	badTrend.PriceTrend = "sideways"
	_, err = New([]AssetRecord{badTrend})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	zeroMax := validRecord("Alpha", "AAA")
	zeroMax.MaxScore = 0
	zeroMax.SustainabilityScore = 0
	_, err = New([]AssetRecord{zeroMax})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	freePrice := validRecord("Alpha", "AAA")
	freePrice.CurrentPrice = decimal.Zero
	_, err = New([]AssetRecord{freePrice})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestParse_BadPrice(t *testing.T) {
	doc := []byte(`
assets:
  - name: Alpha
    symbol: AAA
    price_trend: rising
    market_cap: high
    energy_use: low
    sustainability_score: 1
    max_score: 10
    current_price: "not-a-number"
    market_cap_usd: "10"
`)
	_, err := Parse(doc)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestSustainabilityRatio(t *testing.T) {
	r := validRecord("Alpha", "AAA")
	r.SustainabilityScore = 9
	assert.InDelta(t, 0.9, r.SustainabilityRatio(), 1e-9)
}
