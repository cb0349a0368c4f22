package dataset

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceTrend is the recent price direction of an asset.
type PriceTrend string

const (
	TrendRising  PriceTrend = "rising"
	TrendStable  PriceTrend = "stable"
	TrendFalling PriceTrend = "falling" // reserved, no seed record uses it
)

// String returns the string representation of PriceTrend.
func (t PriceTrend) String() string {
	return string(t)
}

// IsValid checks if the trend is a valid value.
func (t PriceTrend) IsValid() bool {
	return t == TrendRising || t == TrendStable || t == TrendFalling
}

// Tier is a coarse high/medium/low grade. Used for market cap and energy use.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// String returns the string representation of Tier.
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the tier is a valid value.
func (t Tier) IsValid() bool {
	return t == TierHigh || t == TierMedium || t == TierLow
}

// AssetRecord holds the static attributes of one cryptocurrency.
// Records are never mutated once a Dataset has been built.
type AssetRecord struct {
	Name                string          // primary key
	Symbol              string          // ticker, unique
	PriceTrend          PriceTrend      // rising | stable | falling
	MarketCapTier       Tier            // high | medium | low
	EnergyUse           Tier            // high | medium | low
	SustainabilityScore int             // 0..MaxScore
	MaxScore            int             // normalization denominator
	CurrentPrice        decimal.Decimal // USD
	MarketCapUSD        decimal.Decimal // USD
	Description         string
}

// SustainabilityRatio returns SustainabilityScore / MaxScore in [0,1].
func (r AssetRecord) SustainabilityRatio() float64 {
	return float64(r.SustainabilityScore) / float64(r.MaxScore)
}

// Validate checks the record invariants. Uniqueness is checked by New.
func (r AssetRecord) Validate() error {
	switch {
	case r.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidRecord)
	case r.Symbol == "":
		return fmt.Errorf("%w: %s: empty symbol", ErrInvalidRecord, r.Name)
	case !r.PriceTrend.IsValid():
		return fmt.Errorf("%w: %s: price trend %q", ErrInvalidRecord, r.Name, r.PriceTrend)
	case !r.MarketCapTier.IsValid():
		return fmt.Errorf("%w: %s: market cap tier %q", ErrInvalidRecord, r.Name, r.MarketCapTier)
	case !r.EnergyUse.IsValid():
		return fmt.Errorf("%w: %s: energy use %q", ErrInvalidRecord, r.Name, r.EnergyUse)
	case r.MaxScore <= 0:
		return fmt.Errorf("%w: %s: max score %d", ErrInvalidRecord, r.Name, r.MaxScore)
	case r.SustainabilityScore < 0 || r.SustainabilityScore > r.MaxScore:
		return fmt.Errorf("%w: %s: sustainability score %d outside [0,%d]",
			ErrInvalidRecord, r.Name, r.SustainabilityScore, r.MaxScore)
	case !r.CurrentPrice.IsPositive():
		return fmt.Errorf("%w: %s: current price %s", ErrInvalidRecord, r.Name, r.CurrentPrice)
	case !r.MarketCapUSD.IsPositive():
		return fmt.Errorf("%w: %s: market cap %s", ErrInvalidRecord, r.Name, r.MarketCapUSD)
	}
	return nil
}
