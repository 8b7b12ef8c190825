package ethiomorph

import (
	"fmt"
	"strings"
)

// Action names one kind of derivation step.
type Action string

const (
	ActNormalize          Action = "normalize"
	ActOneCharLookup      Action = "one_char_lookup"
	ActLexiconMatch       Action = "lexicon_match"
	ActNounMatch          Action = "noun_match"
	ActStripPrefix        Action = "strip_prefix"
	ActStripSuffix        Action = "strip_suffix"
	ActDevowelize         Action = "devowelize"
	ActReconstructHollowW Action = "reconstruct_hollow_w"
	ActReconstructHollowY Action = "reconstruct_hollow_y"
	ActReconstructLaryng  Action = "reconstruct_laryngeal_middle"
	ActReconstructWeak    Action = "reconstruct_weak_initial"
	ActDetectVerbHome     Action = "detect_verb_home"
)

// Method records which path produced a root.
type Method string

const (
	MethodIrregular   Method = "irregular"
	MethodLexicon     Method = "lexicon"
	MethodLexiconNoun Method = "lexicon_noun"
	MethodDerived     Method = "derived"
)

// confidence returns the score reported for a method.
func (m Method) confidence() float64 {
	switch m {
	case MethodLexiconNoun:
		return 1.0
	case MethodLexicon:
		return 0.95
	case MethodDerived:
		return 0.85
	}
	return 0.70
}

// DerivationStep is one entry of an analysis trace.
type DerivationStep struct {
	Step        int    `json:"step"`
	Action      Action `json:"action"`
	Description string `json:"description,omitempty"`
	Affix       string `json:"affix,omitempty"`
	Before      string `json:"before"`
	After       string `json:"after"`
	Rule        string `json:"rule"`
}

// trace accumulates derivation steps and numbers them from 1.
type trace struct {
	steps []DerivationStep
}

func (t *trace) add(s DerivationStep) {
	s.Step = len(t.steps) + 1
	t.steps = append(t.steps, s)
}

func (t *trace) list() []DerivationStep {
	if t.steps == nil {
		return []DerivationStep{}
	}
	return t.steps
}

// Pattern is the grammatical pattern (stem and tense) a word was read as.
type Pattern struct {
	Name        string `json:"name"`
	GeezName    string `json:"geez_name"`
	EnglishName string `json:"english_name"`
	StemNumber  int    `json:"stem_number"`
	Description string `json:"description"`
}

// Analysis describes how the stem was isolated.
type Analysis struct {
	Stem        string   `json:"stem"`
	Pattern     Pattern  `json:"pattern"`
	Prefixes    []string `json:"prefixes"`
	Suffixes    []string `json:"suffixes"`
	Method      Method   `json:"method"`
	IsCausative bool     `json:"is_causative"`
}

// Notation holds display strings for the result.
type Notation struct {
	RootDisplay    string `json:"root_display"`
	PatternFormula string `json:"pattern_formula"`
	AffixFormula   string `json:"affix_formula"`
}

// AnalysisResult is the outcome of ExtractRoot.
type AnalysisResult struct {
	Input            string           `json:"input"`
	Root             string           `json:"root"`
	RootConsonants   []string         `json:"root_consonants"`
	RootType         RootType         `json:"root_type"`
	VerbHome         VerbHome         `json:"verb_home"`
	Meaning          string           `json:"meaning,omitempty"`
	Confidence       float64          `json:"confidence"`
	Analysis         Analysis         `json:"analysis"`
	DerivationPath   []DerivationStep `json:"derivation_path"`
	ResearchNotation Notation         `json:"research_notation"`
}

// rootDisplay renders radicals as "{ቀ, ተ, ለ}".
func rootDisplay(root string) string {
	return "{" + strings.Join(runeStrings(root), ", ") + "}"
}

// patternFormula renders "Root(ቀ-ተ-ለ)", with '?' for missing slots.
func patternFormula(root string) string {
	rs := []rune(root)
	slot := func(i int) string {
		if i < len(rs) {
			return string(rs[i])
		}
		return "?"
	}
	return fmt.Sprintf("Root(%s-%s-%s)", slot(0), slot(1), slot(2))
}

// affixFormula renders "Prefix(ይ) + Stem + Suffix(ø)".
func affixFormula(prefixes, suffixes []string) string {
	join := func(a []string) string {
		if len(a) == 0 {
			return "ø"
		}
		return strings.Join(a, "+")
	}
	return fmt.Sprintf("Prefix(%s) + Stem + Suffix(%s)", join(prefixes), join(suffixes))
}
