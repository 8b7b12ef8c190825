package ethiomorph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, e *Engine, root string, tense Tense, subject string) *Generation {
	t.Helper()
	g, err := e.GenerateWord(root, tense, subject, GenerateOptions{})
	require.NoError(t, err, "%s %s %s", root, tense, subject)
	return g
}

func TestGenerateWordStrong(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		tense   Tense
		subject string
		want    string
	}{
		{Perfective, "3sm", "ቀተለ"},
		{Perfective, "3sf", "ቀተለት"},
		{Perfective, "2sm", "ቀተልከ"},
		{Perfective, "2sf", "ቀተልኪ"},
		{Perfective, "1s", "ቀተልኩ"},
		{Perfective, "3pm", "ቀተሉ"},
		{Perfective, "3pf", "ቀተላ"},
		{Perfective, "2pm", "ቀተልክሙ"},
		{Perfective, "2pf", "ቀተልክን"},
		{Perfective, "1p", "ቀተልነ"},
		{Imperfective, "3sm", "ይቀትል"},
		{Imperfective, "2sf", "ትቀትሊ"},
		{Imperfective, "1s", "እቀትል"},
		{Imperfective, "3pm", "ይቀትሉ"},
		{Jussive, "3sm", "ይቅትል"},
		{Jussive, "3pf", "ይቅትላ"},
		{Imperative, "2sm", "ቅትል"},
		{Imperative, "2sf", "ቅትሊ"},
		{Imperative, "2pm", "ቅትሉ"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tense)+"/"+tt.subject, func(t *testing.T) {
			g := generate(t, e, "ቀተለ", tt.tense, tt.subject)
			assert.Equal(t, tt.want, g.Word)
			assert.Equal(t, "type_a", g.Derivation.VerbType)
			assert.Equal(t, RootStrong, g.Derivation.RootType)
		})
	}
}

func TestGenerateWordDerivation(t *testing.T) {
	e := newTestEngine(t)

	g := generate(t, e, "ቀተለ", Perfective, "2sm")
	d := g.Derivation
	assert.Equal(t, []string{"ቀ", "ተ", "ለ"}, d.Root)
	assert.Equal(t, "{ቀ, ተ, ለ}", d.RootDisplay)
	assert.Equal(t, "1, 1, 6", d.AppliedPattern)
	assert.Equal(t, "", d.Prefix)
	assert.Equal(t, "ከ", d.Suffix)
	assert.Nil(t, d.Fusion)
	assert.Equal(t, Perfective, d.Tense.Name)
	require.NotNil(t, d.Tense.Gemination)
	assert.False(t, *d.Tense.Gemination)
	assert.Equal(t, SubjectInfo{Key: "2sm", Geez: "አንተ", English: "you (m.sg.)"}, d.Subject)
	require.Len(t, d.VowelShifts, 3)
	assert.Equal(t, VowelShift{Consonant: "C3", Base: "ለ", Order: OrderSadis, Result: "ል"}, d.VowelShifts[2])
	assert.Equal(t, FeaturesApplied{}, d.FeaturesApplied)
}

func TestGenerateWordFusion(t *testing.T) {
	e := newTestEngine(t)

	g := generate(t, e, "ቀተለ", Perfective, "3pm")
	require.NotNil(t, g.Derivation.Fusion)
	assert.Equal(t, Fusion{OriginalSuffix: "ኡ", FusedWith: "C3", Result: "ሉ"}, *g.Derivation.Fusion)
	assert.Equal(t, "ኡ", g.Derivation.Suffix)

	last := g.Derivation.VowelShifts[2]
	assert.Equal(t, OrderSadis, last.Order)
	assert.Equal(t, OrderKaeb, last.FusedTo)
	assert.Equal(t, "ሉ", last.Result)
	assert.Equal(t, "suffix fusion applied", last.Note)

	g = generate(t, e, "ቀተለ", Imperfective, "2sf")
	require.NotNil(t, g.Derivation.Fusion)
	assert.Equal(t, "ሊ", g.Derivation.Fusion.Result)

	g = generate(t, e, "ቀተለ", Perfective, "3sf")
	assert.Nil(t, g.Derivation.Fusion, "ት does not fuse")
}

func TestGenerateWordHollow(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		root    string
		subject string
		want    string
	}{
		{"ቀወመ", "3sm", "ቆመ"},
		{"ቀወመ", "3sf", "ቆመት"},
		{"ቀወመ", "2sm", "ቆምከ"},
		{"ቀወመ", "3pm", "ቆሙ"},
		{"ገየሰ", "3sm", "ጌሰ"},
	}
	for _, tt := range tests {
		g := generate(t, e, tt.root, Perfective, tt.subject)
		assert.Equal(t, tt.want, g.Word, "%s %s", tt.root, tt.subject)
		assert.True(t, g.Derivation.FeaturesApplied.HollowHandling)
	}

	g := generate(t, e, "ቀወመ", Perfective, "3sm")
	assert.Equal(t, RootHollowW, g.Derivation.RootType)
	require.Len(t, g.Derivation.VowelShifts, 3)
	assert.Equal(t, OrderSabe, g.Derivation.VowelShifts[0].Order)
	assert.Equal(t, OrderDrop, g.Derivation.VowelShifts[1].Order)
	assert.Empty(t, g.Derivation.VowelShifts[1].Result)

	g = generate(t, e, "ቀወመ", Imperfective, "3sm")
	assert.Equal(t, "ይቀውም", g.Word, "hollow handling is perfective only")
	assert.False(t, g.Derivation.FeaturesApplied.HollowHandling)
}

func TestGenerateWordWeakInitial(t *testing.T) {
	e := newTestEngine(t)

	g := generate(t, e, "ወለደ", Jussive, "3sm")
	assert.Equal(t, "ይልድ", g.Word)
	assert.True(t, g.Derivation.FeaturesApplied.WeakInitialDrop)
	assert.Equal(t, RootWeakInitial, g.Derivation.RootType)
	assert.Equal(t, OrderDrop, g.Derivation.VowelShifts[0].Order)

	g = generate(t, e, "ወለደ", Imperative, "2sm")
	assert.Equal(t, "ልድ", g.Word)

	g = generate(t, e, "ወለደ", Imperfective, "3sm")
	assert.Equal(t, "ይወልድ", g.Word)
	assert.False(t, g.Derivation.FeaturesApplied.WeakInitialDrop)

	g = generate(t, e, "ወለደ", Perfective, "3sm")
	assert.Equal(t, "ወለደ", g.Word)
}

func TestGenerateWordLaryngeal(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		root  string
		tense Tense
		want  string
		shift bool
	}{
		{"ሰአለ", Imperfective, "ይሰኣል", true},
		{"ሰአለ", Jussive, "ይስኣል", true},
		{"ሰአለ", Perfective, "ሰአለ", false},
		{"ሰምዐ", Jussive, "ይስምዓ", true},
		{"ሰምዐ", Imperfective, "ይሰምዕ", false},
	}
	for _, tt := range tests {
		g := generate(t, e, tt.root, tt.tense, "3sm")
		assert.Equal(t, tt.want, g.Word, "%s %s", tt.root, tt.tense)
		assert.Equal(t, tt.shift, g.Derivation.FeaturesApplied.LaryngealShift, "%s %s", tt.root, tt.tense)
		assert.True(t, g.Derivation.VerbHome.Features.HasLaryngeal)
	}
}

func TestGenerateWordDerivationalPrefixes(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		root      string
		tense     Tense
		subject   string
		want      string
		causative bool
	}{
		{"አቀተለ", Perfective, "3sm", "አቀተለ", true},
		{"አቀተለ", Perfective, "2sm", "አቀተልከ", true},
		{"አቀተለ", Imperfective, "3sm", "ያቀትል", true},
		{"አቀተለ", Jussive, "2sm", "ታቅትል", true},
		{"አቀተለ", Imperfective, "1p", "ናቀትል", true},
		{"አስተቀተለ", Imperfective, "3sm", "ያስተቀትል", false},
		{"አስተቀተለ", Imperfective, "1s", "አስተቀትል", false},
		{"ተቀተለ", Perfective, "3sm", "ተቀተለ", false},
		{"ተቀተለ", Imperfective, "3sm", "ይተቀትል", false},
	}
	for _, tt := range tests {
		t.Run(tt.root+"/"+string(tt.tense)+"/"+tt.subject, func(t *testing.T) {
			g := generate(t, e, tt.root, tt.tense, tt.subject)
			assert.Equal(t, tt.want, g.Word)
			assert.Equal(t, tt.causative, g.Derivation.FeaturesApplied.CausativePrefix)
			assert.Equal(t, []string{"ቀ", "ተ", "ለ"}, g.Derivation.Root)
			assert.Equal(t, "type_a", g.Derivation.VerbType)
		})
	}

	g, err := e.GenerateWord("ተቀተለ", Imperfective, "3sm", GenerateOptions{VerbType: "type_a_passive"})
	require.NoError(t, err)
	assert.Equal(t, "ይትቀተል", g.Word, "stem templates carry their own prefix")
	assert.Equal(t, "ይት", g.Derivation.Prefix)
}

func TestGenerateWordQuadriliteral(t *testing.T) {
	e := newTestEngine(t)

	g := generate(t, e, "ገለበጠ", Imperfective, "3sm")
	assert.Equal(t, "ይገብጥ", g.Word)
	assert.Equal(t, "type_d", g.Derivation.VerbType)
	require.Len(t, g.Derivation.VowelShifts, 4)
	assert.Equal(t, OrderDrop, g.Derivation.VowelShifts[1].Order)
	assert.False(t, g.Derivation.FeaturesApplied.LaryngealShift)

	g = generate(t, e, "ገለበጠ", Imperfective, "3pm")
	assert.Equal(t, "ይገብጡ", g.Word)

	g = generate(t, e, "ገለበጠ", Perfective, "2sm")
	assert.Equal(t, "ገለበጥከ", g.Word)
	assert.Equal(t, "1, 1, 1, 6", g.Derivation.AppliedPattern)

	g = generate(t, e, "ተንበለ", Perfective, "3pm")
	assert.Equal(t, "ተንበሉ", g.Word, "lexicon roots are never split")
	assert.Equal(t, "type_tanbala", g.Derivation.VerbType)
}

func TestGenerateWordVerbTypeResolution(t *testing.T) {
	e := newTestEngine(t)

	g := generate(t, e, "ዘበጠ", Imperfective, "3sm")
	assert.Equal(t, "type_a", g.Derivation.VerbType)
	assert.Equal(t, "ይዘብጥ", g.Word)

	g = generate(t, e, "ጌለመ", Perfective, "3sm")
	assert.Equal(t, "type_b", g.Derivation.VerbType, "detected from the 5th order C1")

	vh := VerbHome{Type: ClassB}
	g, err := e.GenerateWord("ዘበጠ", Imperfective, "3sm", GenerateOptions{VerbHome: &vh})
	require.NoError(t, err)
	assert.Equal(t, "type_b", g.Derivation.VerbType)
	assert.Equal(t, "ይዜብጥ", g.Word)

	g, err = e.GenerateWord("ቀተለ", Imperfective, "3sm", GenerateOptions{VerbHome: &vh})
	require.NoError(t, err)
	assert.Equal(t, "type_a", g.Derivation.VerbType, "lexicon beats detection")

	g, err = e.GenerateWord("ቀተለ", Imperfective, "3sm", GenerateOptions{VerbType: "type_b"})
	require.NoError(t, err)
	assert.Equal(t, "ይቄትል", g.Word, "explicit class beats lexicon")
}

func TestGenerateWordErrors(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name    string
		root    string
		tense   Tense
		subject string
		opts    GenerateOptions
		kind    ErrorKind
		msg     string
	}{
		{"short root", "ቀተ", Perfective, "3sm", GenerateOptions{}, ErrRootTooShort, "Root must be at least 3 letters (Got 'ቀተ')"},
		{"unknown type first", "ቀተለ", "future", "9x", GenerateOptions{VerbType: "type_z"}, ErrUnknownVerbType, "Unknown verb type 'type_z'"},
		{"unknown tense", "ቀተለ", "future", "3sm", GenerateOptions{}, ErrUnknownTense, "Unknown tense 'future' for type 'type_a'"},
		{"unknown subject", "ቀተለ", Perfective, "9x", GenerateOptions{}, ErrUnknownSubject, "Unknown subject '9x' for tense 'perfective'"},
		{"no 3rd person imperative", "ቀተለ", Imperative, "3sm", GenerateOptions{}, ErrUnknownSubject, "Unknown subject '3sm' for tense 'imperative'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := e.GenerateWord(tt.root, tt.tense, tt.subject, tt.opts)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.EqualError(t, err, tt.msg)
			assert.True(t, errors.Is(err, &MorphError{Kind: tt.kind}))
		})
	}
}

func TestSplitDerivationalPrefix(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		root, clean, prefix string
	}{
		{"ቀተለ", "ቀተለ", ""},
		{"አቀተለ", "ቀተለ", "አ"},
		{"አስተቀተለ", "ቀተለ", "አስተ"},
		{"ተቀተለ", "ቀተለ", "ተ"},
		{"ነበረ", "ነበረ", ""},
		{"ተንበለ", "ተንበለ", ""},
		{"ተቀተ", "ተቀተ", ""},
		{"አ", "አ", ""},
	}
	for _, tt := range tests {
		clean, prefix := e.splitDerivationalPrefix(tt.root)
		assert.Equal(t, tt.clean, clean, tt.root)
		assert.Equal(t, tt.prefix, prefix, tt.root)
	}
}
