package normalization

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase_passthrough", input: "flour", want: "flour"},
		{name: "trim", input: "  flour  ", want: "flour"},
		{name: "case", input: "FlOuR", want: "flour"},
		{name: "accents", input: "Açúcar", want: "acucar"},
		{name: "accents_upper", input: "SÔBREMESAS", want: "sobremesas"},
		{name: "mixed", input: "  Crème Fraîche ", want: "creme fraiche"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace_only", input: "   ", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeName(tc.input); got != tc.want {
				t.Fatalf("NormalizeName(%q)=%q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeNameEquivalence(t *testing.T) {
	variants := []string{"Sobremesas", " sobremesas ", "SÔBREMESAS", "sôbremesas"}
	want := NormalizeName(variants[0])
	for _, v := range variants[1:] {
		if got := NormalizeName(v); got != want {
			t.Fatalf("NormalizeName(%q)=%q, want %q", v, got, want)
		}
	}
}
