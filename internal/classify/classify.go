// Package classify maps free-text item names to supplier category buckets.
// The keyword table is plain data so it can be swapped or extended without
// touching the engine; matching is longest-keyword-first so that e.g.
// "bayam" is never claimed by the shorter keyword "ayam" embedded in it.
package classify

import (
	"sort"
	"strings"
)

// DefaultCategory is returned when no keyword matches.
const DefaultCategory = "General Supplier"

// Rule binds one keyword to a category bucket.
type Rule struct {
	Keyword  string
	Category string
}

// Classifier resolves item names against an ordered rule list.
type Classifier struct {
	rules []Rule // sorted by keyword length, longest first
}

// New builds a Classifier from the given rules. Rules are matched longest
// keyword first; among equal lengths the original order is kept.
func New(rules []Rule) *Classifier {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Keyword) > len(sorted[j].Keyword)
	})
	return &Classifier{rules: sorted}
}

// Default returns a Classifier loaded with the built-in supplier table.
func Default() *Classifier {
	return New(DefaultRules())
}

// Category returns the supplier bucket for an item name, or DefaultCategory
// when nothing matches. Matching is case-insensitive substring containment.
func (c *Classifier) Category(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return DefaultCategory
	}
	for _, r := range c.rules {
		if strings.Contains(name, strings.ToLower(r.Keyword)) {
			return r.Category
		}
	}
	return DefaultCategory
}
