package analyzer

import (
	"strings"

	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/dataset"
)

// Rule maps keyword containment to an intent kind.
// A rule matches when any keyword is a substring of the normalized query
// and, if RequiresEntity is set, at least one asset was mentioned.
type Rule struct {
	Kind           Kind
	Keywords       []string
	RequiresEntity bool
}

// Matches reports whether the rule fires for a normalized query.
func (r Rule) Matches(normalized string, mentions []dataset.AssetRecord) bool {
	if r.RequiresEntity && len(mentions) == 0 {
		return false
	}
	for _, kw := range r.Keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// DefaultRules is evaluated top to bottom and the first match wins.
// The order is part of the contract: an asset question that also says
// "profit" is still a describe request.
var DefaultRules = []Rule{
	{Kind: KindDescribeAsset, Keywords: []string{"info", "about", "tell me", "details"}, RequiresEntity: true},
	{Kind: KindMostSustainable, Keywords: []string{"sustainable", "green", "eco", "environment", "energy"}},
	{Kind: KindMostProfitable, Keywords: []string{"profitable", "profit", "money", "gains", "rising", "trending"}},
	{Kind: KindBalanced, Keywords: []string{"invest", "buy", "recommend", "advice", "best", "should"}},
	{Kind: KindCompareAll, Keywords: []string{"compare", "vs"}},
	{Kind: KindListAll, Keywords: []string{"list", "all", "show me", "available"}},
}

// Classifier resolves free-text queries to intents over one dataset.
type Classifier struct {
	dataset *dataset.Dataset
	rules   []Rule
}

// NewClassifier creates a classifier using DefaultRules.
func NewClassifier(ds *dataset.Dataset) *Classifier {
	return NewClassifierWithRules(ds, DefaultRules)
}

// NewClassifierWithRules creates a classifier with a custom rule table.
func NewClassifierWithRules(ds *dataset.Dataset, rules []Rule) *Classifier {
	return &Classifier{dataset: ds, rules: rules}
}

// Classify returns the intent of the first rule that matches,
// or KindUnrecognized when none does.
func (c *Classifier) Classify(query string) Intent {
	normalized := Normalize(query)
	mentions := ExtractEntities(c.dataset, normalized)

	for _, rule := range c.rules {
		if !rule.Matches(normalized, mentions) {
			continue
		}
		intent := Intent{Kind: rule.Kind, Mentions: mentions}
		if rule.Kind == KindDescribeAsset && len(mentions) > 0 {
			first := mentions[0]
			intent.Asset = &first
		}
		return intent
	}

	return Intent{Kind: KindUnrecognized, Mentions: mentions}
}
