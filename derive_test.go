package ethiomorph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDerived(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		class string
		want  string
	}{
		{"infinitive", "ቀቲል"},
		{"active_participle", "ቀታሊ"},
		{"passive_participle", "ቅቱል"},
		{"instrumental", "መቅተሊ"},
		{"verbal_noun", "ቅትለት"},
		{"abstract_noun", "ቀትሎ"},
		{"place_noun", "መቅተል"},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			d, err := e.GenerateDerived("ቀተለ", tt.class, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Word)
			assert.Equal(t, tt.class, d.Class)
			assert.Equal(t, "type_a", d.Type)
		})
	}

	d, err := e.GenerateDerived("ቀተለ", "infinitive", "")
	require.NoError(t, err)
	assert.Equal(t, "CaCiC", d.Template)
}

func TestGenerateDerivedVerbType(t *testing.T) {
	e := newTestEngine(t)

	d, err := e.GenerateDerived("ቀደሰ", "infinitive", "")
	require.NoError(t, err)
	assert.Equal(t, "type_b", d.Type, "class comes from the lexicon")

	d, err = e.GenerateDerived("ዘበጠ", "infinitive", "")
	require.NoError(t, err)
	assert.Equal(t, "type_a", d.Type)

	_, err = e.GenerateDerived("ቀተለ", "causative_agent", "type_a_causative")
	require.NoError(t, err)
}

func TestGenerateDerivedLongRoot(t *testing.T) {
	e := newTestEngine(t)

	d, err := e.GenerateDerived("አስተቀተለ", "infinitive", "")
	require.NoError(t, err)
	assert.Equal(t, "ቀቲል", d.Word)
}

func TestGenerateDerivedErrors(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name     string
		root     string
		class    string
		verbType string
		kind     ErrorKind
		msg      string
	}{
		{"unknown type first", "ቀ", "nope", "type_z", ErrUnknownVerbType, "Unknown verb type 'type_z'"},
		{"unknown class", "ቀተለ", "causative_agent", "", ErrUnknownDerivedClass, "Derived form 'causative_agent' not defined for 'type_a'"},
		{"short root", "ቀተ", "infinitive", "", ErrRootTooShort, "Root must be at least 3 letters (Got 'ቀተ')"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := e.GenerateDerived(tt.root, tt.class, tt.verbType)
			require.Error(t, err)
			assert.Nil(t, d)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestGenerateDerivedSkipsMissingSlots(t *testing.T) {
	e, err := NewFromFS(testFS(t, minimalTemplates, bareStems))
	require.NoError(t, err)

	d, err := e.GenerateDerived("ቀተለ", "gappy", "")
	require.NoError(t, err)
	assert.Equal(t, "ቅል", d.Word)
}

func TestGenerateStem(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		code string
		want string
	}{
		{"basic", "ቀተለ"},
		{"passive", "ተቀተለ"},
		{"causative", "አቅተለ"},
		{"causative_passive", "አስተቀተለ"},
		{"reciprocal", "ተቃተለ"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			sw, err := e.GenerateStem("ቀተለ", tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sw.Word)
			assert.Equal(t, tt.code, sw.StemCode)
			assert.Equal(t, "ቀተለ", sw.Root)
		})
	}

	sw, err := e.GenerateStem("ቀተለ", "passive")
	require.NoError(t, err)
	assert.Equal(t, "Passive/Reflexive", sw.StemName)
	assert.Equal(t, "ተገብሮ ግንድ", sw.GeezName)
	assert.Equal(t, "passive or reflexive action", sw.Meaning)

	sw, err = e.GenerateStem("ገለበጠ", "basic")
	require.NoError(t, err)
	assert.Equal(t, "ገለበጠ", sw.Word, "unmapped slots take the 1st order")
}

func TestGenerateStemErrors(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.GenerateStem("ቀተ", "passive")
	assert.Equal(t, ErrRootTooShort, KindOf(err))
	assert.EqualError(t, err, "Root too short")

	_, err = e.GenerateStem("ቀ", "intensive")
	assert.Equal(t, ErrRootTooShort, KindOf(err), "length is checked before the code")

	_, err = e.GenerateStem("ቀተለ", "intensive")
	assert.Equal(t, ErrUnknownStem, KindOf(err))
	assert.EqualError(t, err, "Unknown stem code intensive")
}

func TestExpandStems(t *testing.T) {
	e := newTestEngine(t)

	all := e.ExpandStems("ቀተለ")
	assert.Len(t, all, 5)
	assert.Equal(t, "አቅተለ", all["causative"].Word)

	none := e.ExpandStems("ቀተ")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
