package asg

import "github.com/ranjeethmahankali/symba/asg/template"

// Template re-exports template.Template for callers that only import asg.
type Template = template.Template

// Templates returns the process-wide registry of built-in algebraic
// rewrite templates (pattern/replacement pairs, mirrored in both
// directions). Rewrite application is future work; this module only
// stores and validates the templates.
func Templates() []Template {
	return template.Store()
}
