package cli

import (
	"reflect"
	"testing"

	"github.com/ppiankov/credo/internal/model"
)

func TestParseQueryString(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  model.QueryIdea
		ok    bool
	}{
		{
			"binary predicate",
			"Loves(jean, paris)",
			model.QueryIdea{PredicateName: "Loves", Constants: []string{"jean", "paris"}},
			true,
		},
		{
			"zero arity",
			"Raining",
			model.QueryIdea{PredicateName: "Raining"},
			true,
		},
		{
			"whitespace tolerated",
			"  Loves( jean , paris )  ",
			model.QueryIdea{PredicateName: "Loves", Constants: []string{"jean", "paris"}},
			true,
		},
		{"unclosed paren", "Loves(jean", model.QueryIdea{}, false},
		{"empty", "", model.QueryIdea{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseQueryString(tt.query)
			if ok != tt.ok {
				t.Fatalf("parseQueryString(%q) ok = %v, want %v", tt.query, ok, tt.ok)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseQueryString(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}
