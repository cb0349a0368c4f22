package dataset

import (
	"fmt"
	"strings"
)

// Dataset is an ordered, read-only table of asset records.
// It is safe for concurrent readers since nothing mutates it after New.
type Dataset struct {
	records  []AssetRecord
	byName   map[string]int // lowercased name -> index
	bySymbol map[string]int // lowercased symbol -> index
}

// New validates records and builds a Dataset preserving their order.
func New(records []AssetRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	d := &Dataset{
		records:  make([]AssetRecord, len(records)),
		byName:   make(map[string]int, len(records)),
		bySymbol: make(map[string]int, len(records)),
	}
	copy(d.records, records)

	for i, r := range d.records {
		if err := r.Validate(); err != nil {
			return nil, err
		}

		name := strings.ToLower(r.Name)
		if _, exists := d.byName[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
		}
		symbol := strings.ToLower(r.Symbol)
		if _, exists := d.bySymbol[symbol]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, r.Symbol)
		}

		d.byName[name] = i
		d.bySymbol[symbol] = i
	}

	return d, nil
}

// Lookup finds a record by name or symbol, case-insensitively.
// Names take precedence over symbols. Returns ErrNotFound if neither matches.
func (d *Dataset) Lookup(nameOrSymbol string) (AssetRecord, error) {
	key := strings.ToLower(strings.TrimSpace(nameOrSymbol))
	if i, ok := d.byName[key]; ok {
		return d.records[i], nil
	}
	if i, ok := d.bySymbol[key]; ok {
		return d.records[i], nil
	}
	return AssetRecord{}, fmt.Errorf("%w: %s", ErrNotFound, nameOrSymbol)
}

// All returns every record in insertion order.
func (d *Dataset) All() []AssetRecord {
	out := make([]AssetRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}
