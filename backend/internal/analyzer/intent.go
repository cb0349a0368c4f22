package analyzer

import "github.com/blackrose-blackhat/cryptobuddy/backend/internal/dataset"

// Kind is the classified purpose of a query.
type Kind string

// Intent taxonomy. Tags are stable: they label metrics, history and policy context.
const (
	KindDescribeAsset   Kind = "describe_asset"
	KindMostSustainable Kind = "most_sustainable"
	KindMostProfitable  Kind = "most_profitable"
	KindBalanced        Kind = "balanced_recommendation"
	KindCompareAll      Kind = "compare_all"
	KindListAll         Kind = "list_all"
	KindUnrecognized    Kind = "unrecognized"
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	return string(k)
}

// NeedsRanking reports whether answering this kind requires the scorer.
func (k Kind) NeedsRanking() bool {
	return k == KindMostSustainable || k == KindMostProfitable || k == KindBalanced
}

// Intent is the classifier result.
type Intent struct {
	Kind Kind

	// Asset is the record being described. Only set for KindDescribeAsset.
	Asset *dataset.AssetRecord

	// Mentions are all records referenced in the query, in dataset order.
	Mentions []dataset.AssetRecord
}

// MentionNames returns the names of the mentioned records.
func (i Intent) MentionNames() []string {
	names := make([]string, len(i.Mentions))
	for j, m := range i.Mentions {
		names[j] = m.Name
	}
	return names
}
