package dataset

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// seedFile mirrors seed.yaml. Money fields are strings so they parse
// into decimals without a float round trip.
type seedFile struct {
	Assets []seedRecord `yaml:"assets"`
}

type seedRecord struct {
	Name                string `yaml:"name"`
	Symbol              string `yaml:"symbol"`
	PriceTrend          string `yaml:"price_trend"`
	MarketCap           string `yaml:"market_cap"`
	EnergyUse           string `yaml:"energy_use"`
	SustainabilityScore int    `yaml:"sustainability_score"`
	MaxScore            int    `yaml:"max_score"`
	CurrentPrice        string `yaml:"current_price"`
	MarketCapUSD        string `yaml:"market_cap_usd"`
	Description         string `yaml:"description"`
}

// Parse decodes a YAML asset table and builds a validated Dataset.
func Parse(data []byte) (*Dataset, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse asset table: %w", err)
	}

	records := make([]AssetRecord, 0, len(f.Assets))
	for _, s := range f.Assets {
		r, err := s.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return New(records)
}

func (s seedRecord) toRecord() (AssetRecord, error) {
	price, err := decimal.NewFromString(s.CurrentPrice)
	if err != nil {
		return AssetRecord{}, fmt.Errorf("%w: %s: current price: %v", ErrInvalidRecord, s.Name, err)
	}
	mcap, err := decimal.NewFromString(s.MarketCapUSD)
	if err != nil {
		return AssetRecord{}, fmt.Errorf("%w: %s: market cap: %v", ErrInvalidRecord, s.Name, err)
	}

	return AssetRecord{
		Name:                s.Name,
		Symbol:              s.Symbol,
		PriceTrend:          PriceTrend(s.PriceTrend),
		MarketCapTier:       Tier(s.MarketCap),
		EnergyUse:           Tier(s.EnergyUse),
		SustainabilityScore: s.SustainabilityScore,
		MaxScore:            s.MaxScore,
		CurrentPrice:        price,
		MarketCapUSD:        mcap,
		Description:         s.Description,
	}, nil
}

// Seed returns the built-in five-asset table.
func Seed() (*Dataset, error) {
	return Parse(seedYAML)
}

// MustSeed is like Seed but panics on a defective embedded table.
func MustSeed() *Dataset {
	d, err := Seed()
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded seed is invalid: %v", err))
	}
	return d
}
