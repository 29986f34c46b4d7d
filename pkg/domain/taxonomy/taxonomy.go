package taxonomy

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareos/pkg/domain/types"
)

// Taxonomy is the immutable catalog index built once at startup. It
// exposes keyword sets, priority tiers, predecessor constraints, the
// flattened priority scan order and the category to agent table.
type Taxonomy struct {
	specs    map[types.CategoryID]*Spec
	catalog  []types.CategoryID // all categories in catalog order
	scanOrd  []types.CategoryID // tiered categories, CRITICAL..LOW, catalog order within a tier
	byTier   map[types.PriorityTier][]types.CategoryID
	agentFor map[types.CategoryID]types.AgentType
}

// Option customizes taxonomy construction
type Option func(*builder)

type builder struct {
	extraKeywords map[types.CategoryID][]string
}

// WithExtraKeywords appends keywords to an existing category. Unknown
// category IDs fail validation at build time.
func WithExtraKeywords(id types.CategoryID, keywords []string) Option {
	return func(b *builder) {
		b.extraKeywords[id] = append(b.extraKeywords[id], keywords...)
	}
}

// New builds and validates the taxonomy from the built-in catalog
func New(opts ...Option) (*Taxonomy, error) {
	b := &builder{extraKeywords: make(map[types.CategoryID][]string)}
	for _, opt := range opts {
		opt(b)
	}

	x := &Taxonomy{
		specs:    make(map[types.CategoryID]*Spec, len(defaultCatalog)),
		byTier:   make(map[types.PriorityTier][]types.CategoryID),
		agentFor: make(map[types.CategoryID]types.AgentType, len(defaultCatalog)),
	}

	for i := range defaultCatalog {
		src := defaultCatalog[i]
		if err := src.ID.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid category in catalog")
		}
		if _, exists := x.specs[src.ID]; exists {
			return nil, goerr.New("duplicate category ID in catalog", goerr.V("id", src.ID))
		}
		if !src.Agent.IsValid() {
			return nil, goerr.New("category has invalid agent", goerr.V("id", src.ID), goerr.V("agent", src.Agent))
		}
		if src.Tier != "" && !src.Tier.IsValid() {
			return nil, goerr.New("category has invalid priority tier", goerr.V("id", src.ID), goerr.V("tier", src.Tier))
		}
		if len(src.Keywords) == 0 {
			return nil, goerr.New("category has no keywords", goerr.V("id", src.ID))
		}

		spec := src // copy
		spec.Keywords = append([]string{}, src.Keywords...)
		if extra, ok := b.extraKeywords[src.ID]; ok {
			spec.Keywords = append(spec.Keywords, extra...)
			delete(b.extraKeywords, src.ID)
		}

		x.specs[spec.ID] = &spec
		x.catalog = append(x.catalog, spec.ID)
		x.agentFor[spec.ID] = spec.Agent
		if spec.Tier != "" {
			x.byTier[spec.Tier] = append(x.byTier[spec.Tier], spec.ID)
		}
	}

	for id := range b.extraKeywords {
		return nil, goerr.New("extra keywords reference unknown category", goerr.V("id", id))
	}

	for _, spec := range x.specs {
		for _, pred := range spec.Predecessors {
			if _, ok := x.specs[pred]; !ok {
				return nil, goerr.New("predecessor references unknown category",
					goerr.V("id", spec.ID), goerr.V("predecessor", pred))
			}
		}
	}

	for _, tier := range types.AllPriorityTiers() {
		ids := x.byTier[tier]
		if len(ids) == 0 {
			return nil, goerr.New("priority tier is empty", goerr.V("tier", tier))
		}
		x.scanOrd = append(x.scanOrd, ids...)
	}

	// The critical tier must carry the immediate-escalation categories.
	critical := make(map[types.CategoryID]bool)
	for _, id := range x.byTier[types.PriorityCritical] {
		critical[id] = true
	}
	for _, required := range []types.CategoryID{
		types.CategoryAggressiveBehavior,
		types.CategoryLegal,
		types.CategoryCPFBlocked,
		types.CategoryOPCOBlocked,
	} {
		if !critical[required] {
			return nil, goerr.New("category missing from critical tier", goerr.V("id", required))
		}
	}

	return x, nil
}

// Lookup returns the spec for a category
func (x *Taxonomy) Lookup(id types.CategoryID) (*Spec, bool) {
	spec, ok := x.specs[id]
	return spec, ok
}

// Keywords returns the keyword set for a category, nil if unknown
func (x *Taxonomy) Keywords(id types.CategoryID) []string {
	if spec, ok := x.specs[id]; ok {
		return spec.Keywords
	}
	return nil
}

// Description returns the human description for a category
func (x *Taxonomy) Description(id types.CategoryID) string {
	if spec, ok := x.specs[id]; ok {
		return spec.Description
	}
	return ""
}

// Tier returns the priority tier for a category. Untiered and unknown
// categories report LOW.
func (x *Taxonomy) Tier(id types.CategoryID) types.PriorityTier {
	if spec, ok := x.specs[id]; ok && spec.Tier != "" {
		return spec.Tier
	}
	return types.PriorityLow
}

// Predecessors returns the legal predecessor set for a category, nil if
// the category carries no sequence constraint.
func (x *Taxonomy) Predecessors(id types.CategoryID) []types.CategoryID {
	if spec, ok := x.specs[id]; ok {
		return spec.Predecessors
	}
	return nil
}

// Agent returns the agent a category routes to. Unknown categories route
// to the general agent.
func (x *Taxonomy) Agent(id types.CategoryID) types.AgentType {
	if agent, ok := x.agentFor[id]; ok {
		return agent
	}
	return types.AgentGeneral
}

// PriorityOrder returns the flattened scan order: CRITICAL through LOW,
// catalog order within each tier. Untiered categories are excluded.
func (x *Taxonomy) PriorityOrder() []types.CategoryID {
	return x.scanOrd
}

// Categories returns every category in catalog order
func (x *Taxonomy) Categories() []types.CategoryID {
	return x.catalog
}
