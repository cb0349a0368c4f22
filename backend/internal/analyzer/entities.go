package analyzer

import (
	"strings"

	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/dataset"
)

// Normalize lowercases and trims a raw query. Inner punctuation is kept.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// ExtractEntities returns every record whose lowercased name or symbol
// is a substring of the normalized query. Each record appears once, in
// dataset order, so the first mention is deterministic.
func ExtractEntities(ds *dataset.Dataset, normalized string) []dataset.AssetRecord {
	var mentions []dataset.AssetRecord
	for _, r := range ds.All() {
		if strings.Contains(normalized, strings.ToLower(r.Name)) ||
			strings.Contains(normalized, strings.ToLower(r.Symbol)) {
			mentions = append(mentions, r)
		}
	}
	return mentions
}
