package parser

import (
	"reflect"
	"testing"

	"github.com/elmotec/makemock/pkg/types"
)

func TestExtractSignatures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []types.MethodSignature
	}{
		{
			name:  "plain text yields nothing",
			input: "no changes",
		},
		{
			name:  "simple virtual method",
			input: "virtual int simple_method();",
			want: []types.MethodSignature{
				{ReturnType: "int", Name: "simple_method", Parameters: "()", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "multiple arguments",
			input: "virtual int simple_method_args(int, int);",
			want: []types.MethodSignature{
				{ReturnType: "int", Name: "simple_method_args", Parameters: "(int, int)", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "multi-line parameter list",
			input: "virtual int simple_method_args(int,\n                               int);",
			want: []types.MethodSignature{
				{ReturnType: "int", Name: "simple_method_args", Parameters: "(int, int)", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "multiple statements keep source order",
			input: "virtual int simple_method_args(int,\n                               int);\nvirtual int simple_method();",
			want: []types.MethodSignature{
				{ReturnType: "int", Name: "simple_method_args", Parameters: "(int, int)", Qualifiers: []string{"override"}},
				{ReturnType: "int", Name: "simple_method", Parameters: "()", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "const qualifier",
			input: "virtual int simple_const_method_args(int, int) const;",
			want: []types.MethodSignature{
				{ReturnType: "int", Name: "simple_const_method_args", Parameters: "(int, int)", Qualifiers: []string{"const", "override"}},
			},
		},
		{
			name:  "const qualifier with named arguments",
			input: "virtual int simple_const_method_vals(int x, int y) const;",
			want: []types.MethodSignature{
				{ReturnType: "int", Name: "simple_const_method_vals", Parameters: "(int x, int y)", Qualifiers: []string{"const", "override"}},
			},
		},
		{
			name:  "templated return type keeps commas",
			input: "virtual std::pair<bool, int> get_pair();",
			want: []types.MethodSignature{
				{ReturnType: "std::pair<bool, int>", Name: "get_pair", Parameters: "()", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "templated return type without spaces",
			input: "virtual std::pair<bool,int> p();",
			want: []types.MethodSignature{
				{ReturnType: "std::pair<bool,int>", Name: "p", Parameters: "()", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "templated arguments",
			input: "virtual bool check_map(std::map<int, double>, bool);",
			want: []types.MethodSignature{
				{ReturnType: "bool", Name: "check_map", Parameters: "(std::map<int, double>, bool)", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "pointer argument",
			input: "virtual bool transform(Gadget * g);",
			want: []types.MethodSignature{
				{ReturnType: "bool", Name: "transform", Parameters: "(Gadget * g)", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "pure virtual trailer",
			input: "virtual bool transform() = 0;",
			want: []types.MethodSignature{
				{ReturnType: "bool", Name: "transform", Parameters: "()", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "reference return type",
			input: "virtual Bar & get_bar();",
			want: []types.MethodSignature{
				{ReturnType: "Bar &", Name: "get_bar", Parameters: "()", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "const reference return type",
			input: "virtual const Bar & get_bar() const;",
			want: []types.MethodSignature{
				{ReturnType: "const Bar &", Name: "get_bar", Parameters: "()", Qualifiers: []string{"const", "override"}},
			},
		},
		{
			name:  "override without virtual is accepted",
			input: "foo get_foo() const override;",
			want: []types.MethodSignature{
				{ReturnType: "foo", Name: "get_foo", Parameters: "()", Qualifiers: []string{"const", "override"}},
			},
		},
		{
			name:  "non-virtual non-override is skipped",
			input: "foo get_foo() const;",
		},
		{
			name:  "default value stripped",
			input: "virtual void foo(int i = 0);",
			want: []types.MethodSignature{
				{ReturnType: "void", Name: "foo", Parameters: "(int i)", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "negative default value stripped",
			input: "virtual void foo(int i = - 1);",
			want: []types.MethodSignature{
				{ReturnType: "void", Name: "foo", Parameters: "(int i)", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "newline after opening paren",
			input: "virtual eEnum foo(\nbool * bar = 0,\nbool * baz = 0) = 0",
			want: []types.MethodSignature{
				{ReturnType: "eEnum", Name: "foo", Parameters: "(bool * bar, bool * baz)", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "constructor default value",
			input: "virtual void foo(bar = Bar())",
			want: []types.MethodSignature{
				{ReturnType: "void", Name: "foo", Parameters: "(bar)", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "final method is skipped",
			input: "virtual void foo(int i) final;",
		},
		{
			name:  "virtual override final is skipped",
			input: "virtual void foo(int i) override final;",
		},
		{
			name:  "namespaced parameter type",
			input: "virtual void foo(some::nested::NsClass nc);",
			want: []types.MethodSignature{
				{ReturnType: "void", Name: "foo", Parameters: "(some::nested::NsClass nc)", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "leading whitespace and newline",
			input: "\n     virtual int foo(int i);",
			want: []types.MethodSignature{
				{ReturnType: "int", Name: "foo", Parameters: "(int i)", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "inline body truncated at first brace",
			input: "virtual int cached() override { return cache_; }",
			want: []types.MethodSignature{
				{ReturnType: "int", Name: "cached", Parameters: "()", Qualifiers: []string{"override"}},
			},
		},
		{
			name:  "formatted output is terminal",
			input: "MOCK_METHOD(int, f, (int, int), (override));",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSignatures(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractSignatures(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractSignaturesIsRestartable(t *testing.T) {
	input := "virtual int f(int, int);\nvirtual bool t() = 0;"
	first := ExtractSignatures(input)
	second := ExtractSignatures(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction diverged: %#v vs %#v", first, second)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 signatures, got %d", len(first))
	}
}

func TestOverrideAppearsExactlyOnce(t *testing.T) {
	inputs := []string{
		"virtual void f() override;",
		"virtual void f();",
		"void f() const override;",
	}
	for _, input := range inputs {
		sigs := ExtractSignatures(input)
		if len(sigs) != 1 {
			t.Fatalf("%q: expected one signature, got %d", input, len(sigs))
		}
		seen := 0
		for _, q := range sigs[0].Qualifiers {
			if q == "override" {
				seen++
			}
		}
		if seen != 1 {
			t.Errorf("%q: override appears %d times in %v", input, seen, sigs[0].Qualifiers)
		}
	}
}
