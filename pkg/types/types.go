package types

import "strings"

// MethodSignature is a normalized virtual method declaration extracted from
// a C++ class body. Values are built once by the parser and never mutated:
// the parser only constructs one for declarations that are virtual-dispatch
// eligible (declared virtual, or already carrying override) and not final.
type MethodSignature struct {
	// ReturnType is the raw return type text, including const, template
	// arguments and pointer/reference decorations.
	ReturnType string

	// Name is the method identifier.
	Name string

	// Parameters is the parenthesized parameter list with whitespace
	// collapsed and default-value clauses stripped.
	Parameters string

	// Qualifiers holds the trailing qualifier tokens in declaration order.
	// It always contains "override" exactly once.
	Qualifiers []string
}

// QualifierList renders the qualifiers as they appear inside the last
// MOCK_METHOD argument, e.g. "const, override".
func (m MethodSignature) QualifierList() string {
	return strings.Join(m.Qualifiers, ", ")
}
