// Package generator renders extracted method signatures as Google Mock
// source text: MOCK_METHOD declarations and, optionally, ON_CALL
// default-delegation statements that forward to a real backing instance.
package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/elmotec/makemock/pkg/types"
)

// delegationArg matches a single parameter: optional const, a type token
// with an optional pointer/reference decoration, an optional name and an
// optional "= 0" trailer. Parameters that fail to match are skipped; they
// still advance the positional index used for synthesized names.
var delegationArg = regexp.MustCompile(`^\s*((?:const\s+)?[:\w]+(?:\s*[*&])?)\s*(\w+)?\s*(= 0)?\s*$`)

// MockMethod renders one MOCK_METHOD macro invocation.
func MockMethod(sig types.MethodSignature) string {
	return fmt.Sprintf("MOCK_METHOD(%s, %s, %s, (%s));",
		sig.ReturnType, sig.Name, sig.Parameters, sig.QualifierList())
}

// DefaultDelegation renders an ON_CALL statement that makes the mocked
// method forward to the same method on a captured `real` instance by
// default.
func DefaultDelegation(sig types.MethodSignature) string {
	raw := strings.NewReplacer("(", "", ")", "").Replace(sig.Parameters)

	var placeholders, typedParams, names []string
	for index, arg := range strings.Split(raw, ",") {
		m := delegationArg.FindStringSubmatch(arg)
		if m == nil {
			continue
		}
		name := fmt.Sprintf("p%d", index)
		if m[2] != "" {
			name = m[2]
		}
		placeholders = append(placeholders, "_")
		typedParams = append(typedParams, m[1]+" "+name)
		names = append(names, name)
	}

	return fmt.Sprintf("ON_CALL(*this, %s(%s)).WillByDefault(Invoke([](%s) { return real->%s(%s); }));",
		sig.Name,
		strings.Join(placeholders, ", "),
		strings.Join(typedParams, ", "),
		sig.Name,
		strings.Join(names, ", "))
}

// Render joins the mock declarations for sigs with newlines, followed by
// the delegation statements when delegate is set. Zero signatures render
// as an empty string with no trailing content.
func Render(sigs []types.MethodSignature, delegate bool) string {
	lines := make([]string, 0, len(sigs)*2)
	for _, sig := range sigs {
		lines = append(lines, MockMethod(sig))
	}
	if delegate {
		for _, sig := range sigs {
			lines = append(lines, DefaultDelegation(sig))
		}
	}
	return strings.Join(lines, "\n")
}
