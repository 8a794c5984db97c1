package prefilter

import (
	"testing"
)

func TestBranchLiterals(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		minLen  int
		want    []string
		ok      bool
	}{
		{"plain literal", "lorem", 1, []string{"lorem"}, true},
		{"alternation", "lorem|ipsum", 1, []string{"lorem", "ipsum"}, true},
		{"three branches", "foo|bar|baz", 2, []string{"foo", "bar", "baz"}, true},
		{"star drops its byte", "ab*c", 1, []string{"a"}, true},
		{"maybe drops its byte", "a?bc", 1, []string{"bc"}, true},
		{"plus keeps its byte", "ab+", 1, []string{"ab"}, true},
		{"brace drops its byte", "ab{2}c", 1, []string{"a"}, true},
		{"dot splits runs", "lo.em", 1, []string{"lo"}, true},
		{"group content ignored", "(ab)cd", 1, []string{"cd"}, true},
		{"class splits runs", "ab[xy]cde", 1, []string{"cde"}, true},
		{"escaped literal", `a\.b`, 3, []string{"a.b"}, true},
		{"hex literal", `\x41\x42`, 2, []string{"AB"}, true},
		{"escaped pipe is not a branch", `a\|b`, 3, []string{"a|b"}, true},
		{"class escape breaks run", `ab\dcd`, 1, []string{"ab"}, true},
		{"empty pattern", "", 1, nil, false},
		{"empty branch", "a|", 1, nil, false},
		{"class only", "[abc]", 1, nil, false},
		{"quantified only", "a*", 1, nil, false},
		{"too short", "ab|c", 2, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := branchLiterals(tt.pattern, tt.minLen)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("literals = %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if string(got[i]) != tt.want[i] {
					t.Errorf("literal %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFromPattern_SingleLiteral(t *testing.T) {
	f := FromPattern("lo.em", 2, 256)
	if f == nil {
		t.Fatal("FromPattern returned nil, want a single-literal filter")
	}
	if !f.CouldMatch([]byte("lorem")) {
		t.Error("CouldMatch(lorem) = false, want true")
	}
	if f.CouldMatch([]byte("ipsum")) {
		t.Error("CouldMatch(ipsum) = true, want false")
	}
}

func TestFromPattern_MultiLiteral(t *testing.T) {
	f := FromPattern("lorem|ipsum|dolor", 3, 256)
	if f == nil {
		t.Fatal("FromPattern returned nil, want a multi-literal filter")
	}
	for _, input := range []string{"lorem", "xxipsumxx", "dolor sit"} {
		if !f.CouldMatch([]byte(input)) {
			t.Errorf("CouldMatch(%q) = false, want true", input)
		}
	}
	for _, input := range []string{"", "sit amet", "lore"} {
		if f.CouldMatch([]byte(input)) {
			t.Errorf("CouldMatch(%q) = true, want false", input)
		}
	}
}

func TestFromPattern_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		minLen  int
		max     int
	}{
		{"no literal at all", `\d*`, 1, 256},
		{"one branch empty", "abc|", 1, 256},
		{"below minimum length", "ab|cd", 3, 256},
		{"too many branches", "aa|bb|cc|dd", 1, 3},
		{"empty pattern", "", 1, 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if f := FromPattern(tt.pattern, tt.minLen, tt.max); f != nil {
				t.Errorf("FromPattern(%q) = %v, want nil", tt.pattern, f)
			}
		})
	}
}
