package ethiomorph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Generated surface forms must analyze back to the root they came from.
func TestGenerateThenExtract(t *testing.T) {
	e := newTestEngine(t)

	type form struct {
		tense   Tense
		subject string
	}
	perfective := make([]form, 0, len(canonicalSubjects))
	for _, s := range canonicalSubjects {
		perfective = append(perfective, form{Perfective, s})
	}

	tests := []struct {
		root  string
		forms []form
	}{
		{"ቀተለ", perfective},
		{"ቀተለ", []form{
			{Imperfective, "3sm"}, {Imperfective, "2sm"}, {Imperfective, "1s"},
			{Imperfective, "1p"}, {Imperfective, "3pm"}, {Imperfective, "2sf"},
			{Jussive, "3sm"},
			{Imperative, "2sm"}, {Imperative, "2pm"},
		}},
		{"ገበረ", []form{
			{Perfective, "2sm"}, {Perfective, "3sf"},
			{Imperfective, "3sm"}, {Imperfective, "2sm"},
		}},
	}
	for _, tt := range tests {
		for _, f := range tt.forms {
			g, err := e.GenerateWord(tt.root, f.tense, f.subject, GenerateOptions{})
			require.NoError(t, err)

			res := e.ExtractRoot(g.Word)
			assert.Equal(t, tt.root, res.Root, "%s %s %s -> %s", tt.root, f.tense, f.subject, g.Word)
		}
	}
}
