package ethiomorph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(t *testing.T, m *ConjugationMatrix, tense Tense, subject string) string {
	t.Helper()
	tc, ok := m.Tenses[tense]
	require.True(t, ok, "tense %s", tense)
	g, ok := tc.Conjugations[subject]
	require.True(t, ok, "%s %s", tense, subject)
	return g.Word
}

func TestExpandRoot(t *testing.T) {
	e := newTestEngine(t)

	m, err := e.ExpandRoot("ቀተለ", "")
	require.NoError(t, err)

	assert.Equal(t, "ቀተለ", m.Meta.Root)
	assert.Equal(t, "ቀተለ", m.Meta.BaseRoot)
	assert.Equal(t, []string{"ቀ", "ተ", "ለ"}, m.Meta.RootConsonants)
	assert.Equal(t, RootStrong, m.Meta.RootType)
	assert.Equal(t, "type_a", m.Meta.VerbType)
	assert.Equal(t, 1, m.Meta.Stem.Number)
	assert.Equal(t, "to kill", m.Meta.Meaning)
	assert.Equal(t, Version, m.Meta.FrameworkVersion)

	assert.Len(t, m.Tenses, 4)
	assert.Equal(t, canonicalSubjects, m.Tenses[Perfective].Subjects)
	assert.Equal(t, []string{"2sm", "2sf", "2pm", "2pf"}, m.Tenses[Imperative].Subjects)
	assert.Equal(t, "perfective", m.Tenses[Perfective].Template.Name)

	assert.Equal(t, "ቀተሉ", word(t, m, Perfective, "3pm"))
	assert.Equal(t, "ይቀትል", word(t, m, Imperfective, "3sm"))
	assert.Equal(t, "ቅትል", word(t, m, Imperative, "2sm"))

	require.Contains(t, m.Derived, "infinitive")
	assert.Equal(t, "ቀቲል", m.Derived["infinitive"].Word)
	assert.Equal(t, "መቅተል", m.Derived["place_noun"].Word)
}

func TestExpandRootHollow(t *testing.T) {
	e := newTestEngine(t)

	m, err := e.ExpandRoot("ቀወመ", "")
	require.NoError(t, err)
	assert.Equal(t, RootHollowW, m.Meta.RootType)
	assert.True(t, m.Meta.VerbHome.Features.IsHollow)
	assert.Equal(t, "ቆመ", word(t, m, Perfective, "3sm"))
	assert.Equal(t, "ቆሙ", word(t, m, Perfective, "3pm"))
}

func TestExpandRootStems(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		root         string
		stem         int
		verbType     string
		prefix       string
		perfective   string
		imperfective string
	}{
		{"ተቀተለ", 2, "type_a_passive", "ተ", "ተቀተለ", "ይትቀተል"},
		{"ተቃተለ", 5, "type_a_reciprocal", "ተ", "ተቃተለ", ""},
		{"አቀተለ", 3, "type_a_causative", "አ", "አቅተለ", "ያቀትል"},
		{"አስተቀተለ", 4, "type_a_aste", "አስተ", "አስተቀተለ", "ያስተቀትል"},
	}
	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			m, err := e.ExpandRoot(tt.root, "")
			require.NoError(t, err)

			assert.Equal(t, tt.root, m.Meta.Root)
			assert.Equal(t, tt.verbType, m.Meta.VerbType)
			assert.Equal(t, tt.stem, m.Meta.Stem.Number)
			assert.Equal(t, tt.prefix, m.Meta.Stem.Prefix)
			assert.Equal(t, tt.stem, m.Meta.VerbHome.Features.StemNumber)
			assert.Equal(t, tt.prefix, m.Meta.VerbHome.Features.StemPrefix)
			assert.Equal(t, m.Meta.Stem.Name, m.Meta.VerbHome.Features.StemType)

			assert.Equal(t, tt.perfective, word(t, m, Perfective, "3sm"))
			if tt.imperfective != "" {
				assert.Equal(t, tt.imperfective, word(t, m, Imperfective, "3sm"))
			}
			assert.Contains(t, m.Derived, "infinitive")
		})
	}

	m, err := e.ExpandRoot("ተቀተለ", "")
	require.NoError(t, err)
	assert.Equal(t, "ቀተለ", m.Meta.BaseRoot)
	assert.Equal(t, "ተገብሮ (Passive)", m.Meta.Stem.Name)
	assert.Equal(t, "ተቀተሉ", word(t, m, Perfective, "3pm"))
}

func TestExpandRootStemWithoutTemplate(t *testing.T) {
	e := newTestEngine(t)

	m, err := e.ExpandRoot("ተቀደሰ", "")
	require.NoError(t, err)
	assert.Equal(t, "type_b", m.Meta.VerbType, "falls back to the base class")
	assert.Equal(t, 2, m.Meta.Stem.Number)
	assert.Equal(t, "ቀደሰ", m.Meta.BaseRoot)
	assert.NotEmpty(t, m.Tenses[Perfective].Subjects)
}

func TestExpandRootErrors(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.ExpandRoot("ቀተለ", "nonexistent_type")
	assert.Equal(t, ErrUnknownVerbType, KindOf(err))
	assert.EqualError(t, err, "Unknown verb type 'nonexistent_type'")

	_, err = e.ExpandRoot("ቀተ", "")
	assert.Equal(t, ErrRootTooShort, KindOf(err))
}

func TestConjugationMatrixJSON(t *testing.T) {
	e := newTestEngine(t)

	m, err := e.ExpandRoot("ቀተለ", "")
	require.NoError(t, err)
	b, err := json.Marshal(m)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	for _, key := range []string{"_meta", "perfective", "imperfective", "jussive", "imperative", "derived"} {
		assert.Contains(t, raw, key)
	}

	var meta MatrixMeta
	require.NoError(t, json.Unmarshal(raw["_meta"], &meta))
	assert.Equal(t, "type_a", meta.VerbType)
	assert.Equal(t, "ቀተለ", meta.Root)

	var perf TenseConjugations
	require.NoError(t, json.Unmarshal(raw["perfective"], &perf))
	assert.Equal(t, "ቀተልከ", perf.Conjugations["2sm"].Word)
}

func TestExpandRootSimple(t *testing.T) {
	e := newTestEngine(t)

	m, err := e.ExpandRootSimple("ቀተለ", "")
	require.NoError(t, err)

	assert.Equal(t, "ቀተለ", m["perfective"]["he"])
	assert.Equal(t, "ቀተለት", m["perfective"]["she"])
	assert.Equal(t, "ቀተልከ", m["perfective"]["you_m"])
	assert.Equal(t, "ቀተልኩ", m["perfective"]["I"])
	assert.Equal(t, "ቀተልነ", m["perfective"]["we"])
	assert.Equal(t, "ይቀትል", m["imperfective"]["he"])
	assert.Equal(t, "ቅትል", m["imperative"]["you_m"])
	assert.Equal(t, "ቀቲል", m["derived"]["infinitive"])
	assert.Len(t, m["perfective"], 10)

	_, err = e.ExpandRootSimple("ቀተለ", "nonexistent_type")
	assert.Equal(t, ErrUnknownVerbType, KindOf(err))

	_, err = e.ExpandRootSimple("ቀተ", "")
	assert.Equal(t, ErrRootTooShort, KindOf(err))
}
