package detect

import (
	"strings"

	"github.com/secmon-lab/briareos/pkg/domain/taxonomy"
	"github.com/secmon-lab/briareos/pkg/domain/types"
)

// Engine classifies one message at a time against the category
// taxonomy. It holds a lowercased keyword index built once at
// construction, so classification is pure string scanning with no
// allocation on the hot path.
type Engine struct {
	tax      *taxonomy.Taxonomy
	keywords map[types.CategoryID][]string
}

func New(tax *taxonomy.Taxonomy) *Engine {
	e := &Engine{
		tax:      tax,
		keywords: make(map[types.CategoryID][]string),
	}
	for _, id := range tax.Categories() {
		src := tax.Keywords(id)
		lowered := make([]string, len(src))
		for i, kw := range src {
			lowered[i] = strings.ToLower(kw)
		}
		e.keywords[id] = lowered
	}
	return e
}

// Taxonomy returns the catalog index the engine classifies against
func (e *Engine) Taxonomy() *taxonomy.Taxonomy {
	return e.tax
}

func containsAny(message string, words []string) bool {
	for _, w := range words {
		if strings.Contains(message, w) {
			return true
		}
	}
	return false
}

// matches reports whether the lowercased message contains any keyword
// of the category.
func (e *Engine) matches(lowered string, id types.CategoryID) bool {
	return containsAny(lowered, e.keywords[id])
}

// IsAggressive reports whether the message matches the
// aggressive-behavior keyword set. Checked before everything else:
// aggression overrides any other match.
func (e *Engine) IsAggressive(message string) bool {
	return e.matches(strings.ToLower(message), types.CategoryAggressiveBehavior)
}

// PrimaryCategory scans the tiers in priority order and returns the
// first category whose keywords match. Aggression short-circuits the
// scan; no match at all falls back to the general category.
func (e *Engine) PrimaryCategory(message string) types.CategoryID {
	lowered := strings.ToLower(message)

	if e.matches(lowered, types.CategoryAggressiveBehavior) {
		return types.CategoryAggressiveBehavior
	}

	for _, id := range e.tax.PriorityOrder() {
		if e.matches(lowered, id) {
			return id
		}
	}
	return types.CategoryGeneral
}
