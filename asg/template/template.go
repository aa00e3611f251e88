package template

import "github.com/ranjeethmahankali/symba/asg/tree"

// Template is a validated (pattern, replacement) pair of node slices
// sharing a common free-variable alphabet.
type Template struct {
	Pattern     []tree.Node
	Replacement []tree.Node
}

// NewTemplate validates pattern and replacement independently with
// tree.Validate and returns the resulting Template.
func NewTemplate(pattern, replacement []tree.Node) (Template, error) {
	p, err := tree.Validate(pattern)
	if err != nil {
		return Template{}, err
	}
	r, err := tree.Validate(replacement)
	if err != nil {
		return Template{}, err
	}

	return Template{Pattern: p.Nodes(), Replacement: r.Nodes()}, nil
}

// Mirror doubles templates by also emitting (replacement, pattern) for
// every entry, so every rewrite is present in both directions.
func Mirror(templates []Template) []Template {
	n := len(templates)
	out := make([]Template, n, n*2)
	copy(out, templates)
	for i := 0; i < n; i++ {
		out = append(out, Template{Pattern: templates[i].Replacement, Replacement: templates[i].Pattern})
	}

	return out
}
