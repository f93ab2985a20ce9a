package parser

import (
	"regexp"
	"strings"

	"github.com/elmotec/makemock/pkg/types"
)

// Declarator grammar. Deliberately lexical: no balanced parentheses, no
// nested template tracking inside the parameter list. Statements that do
// not match are skipped without diagnostics.
var (
	// statementSplit terminates candidate statements. Braces count as
	// terminators so inline method bodies are truncated at the first
	// brace; the declarator prefix is all that matters.
	statementSplit = regexp.MustCompile(`[;{}]`)

	// methodDecl captures, in order: optional leading virtual, a
	// return-type token run (words, ::, angle brackets, commas,
	// whitespace, & and *), the method name, a parameter list closed by
	// the first ')', trailing qualifier words, and an optional "= ..."
	// trailer (pure-virtual marker).
	methodDecl = regexp.MustCompile(`^\s*(?P<virtual>virtual)?\s*(?P<rettype>[\w:<>,\s&*]+)\s+(?P<name>\w+)(?P<params>\([^)]*\))(?P<qualifiers>(?:\s*\w+)*)(?:\s*=.*)?`)

	whitespaceRun = regexp.MustCompile(`\s+`)

	// defaultClause strips "= value" from the parameter list. The value
	// is a bare token, optionally negated; a trailing '(' is consumed so
	// constructor defaults such as "= Bar()" collapse even though the
	// statement itself was truncated at the first ')'. Full expression
	// defaults ("= Foo(1,2)") stay out of reach of a non-recursive
	// pattern and are a known limitation.
	defaultClause = regexp.MustCompile(`\s*=\s*(?:-\s*)?\w+\(?`)

	openParenSpace  = regexp.MustCompile(`\(\s+`)
	closeParenSpace = regexp.MustCompile(`\s+\)`)
)

var (
	virtualIdx    = methodDecl.SubexpIndex("virtual")
	rettypeIdx    = methodDecl.SubexpIndex("rettype")
	nameIdx       = methodDecl.SubexpIndex("name")
	paramsIdx     = methodDecl.SubexpIndex("params")
	qualifiersIdx = methodDecl.SubexpIndex("qualifiers")
)

// ExtractSignatures splits text into statements and returns the normalized
// signature of every declaration eligible for mocking, in source order.
// The scan is restartable and keeps no state between calls.
func ExtractSignatures(text string) []types.MethodSignature {
	var methods []types.MethodSignature
	for _, statement := range statementSplit.Split(text, -1) {
		m := methodDecl.FindStringSubmatch(statement)
		if m == nil {
			continue
		}
		sig, ok := classify(m)
		if !ok {
			continue
		}
		methods = append(methods, sig)
	}
	return methods
}

// classify applies the acceptance policy to a grammar match: the
// declaration must be virtual or already override, must not be final, and
// always ends up carrying override in its qualifier set.
func classify(m []string) (types.MethodSignature, bool) {
	qualifiers := strings.Fields(m[qualifiersIdx])

	if !contains(qualifiers, "override") && m[virtualIdx] == "" {
		return types.MethodSignature{}, false
	}
	if contains(qualifiers, "final") {
		return types.MethodSignature{}, false
	}
	if !contains(qualifiers, "override") {
		qualifiers = append(qualifiers, "override")
	}

	return types.MethodSignature{
		ReturnType: m[rettypeIdx],
		Name:       m[nameIdx],
		Parameters: normalizeParams(m[paramsIdx]),
		Qualifiers: qualifiers,
	}, true
}

// normalizeParams collapses a possibly multi-line parameter list to a
// single-spaced line and strips default-value clauses.
func normalizeParams(params string) string {
	params = whitespaceRun.ReplaceAllString(params, " ")
	params = defaultClause.ReplaceAllString(params, "")
	params = openParenSpace.ReplaceAllString(params, "(")
	params = closeParenSpace.ReplaceAllString(params, ")")
	return params
}

func contains(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}
