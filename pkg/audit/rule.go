package audit

// Rule defines the interface every audit rule implements. A rule inspects one
// observable page property and emits zero or more findings.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "SEO001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns what the rule checks.
	Description() string

	// Category returns the category this rule's findings belong to.
	Category() Category

	// Apply executes the rule against the given context.
	//
	// Rules must:
	//   - Treat expected absence (missing tag, no images) as a finding or
	//     as silence per their documented policy, never as an error.
	//   - Return an error only for internal faults; the engine converts it
	//     to a synthetic error finding without aborting the pass.
	//   - Be deterministic for a fixed context (time comes from ctx.Now).
	Apply(ctx *RuleContext) ([]Finding, error)
}

// BaseRule provides the descriptive half of the Rule interface. Embed it in
// rule implementations and supply Apply.
type BaseRule struct {
	id       string
	name     string
	desc     string
	category Category
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, category Category) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		category: category,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string { return r.id }

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string { return r.name }

// Description returns what the rule checks.
func (r *BaseRule) Description() string { return r.desc }

// Category returns the category this rule's findings belong to.
func (r *BaseRule) Category() Category { return r.category }
