package ethiomorph

import (
	"encoding/json"
	"unicode/utf8"

	"go.uber.org/zap"
)

// StemInfo identifies which of the five derivational stems a root is in.
type StemInfo struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	GeezName    string `json:"geez_name"`
	EnglishName string `json:"english_name"`
	Prefix      string `json:"prefix,omitempty"`
	Description string `json:"description"`

	// templateSuffix is appended to the base class to pick the template.
	templateSuffix string
}

var (
	stemBasic       = StemInfo{1, "ቀዳማይ (Basic)", "ቀዳማይ ግንድ", "Basic Stem", "", "Basic active voice", ""}
	stemPassive     = StemInfo{2, "ተገብሮ (Passive)", "ተገብሮ ግንድ", "Passive/Reflexive Stem", "", "Passive or reflexive action", "passive"}
	stemCausative   = StemInfo{3, "አሳሳቢ (Causative)", "አሳሳቢ ግንድ", "Causative Stem", "", "Causing someone to perform action", "causative"}
	stemCausPassive = StemInfo{4, "አስተሳሳቢ (Causative-Passive)", "አስተሳሳቢ ግንድ", "Causative-Passive Stem", "", "Causative-passive or intensive action", "aste"}
	stemReciprocal  = StemInfo{5, "ተሣሣቢ (Reciprocal)", "ተሣሣቢ ግንድ", "Reciprocal Stem", "", "Mutual/reciprocal action", "reciprocal"}
)

// identifyStem maps a derivational prefix to its stem. ተ with a 4th order
// C1 is reciprocal rather than passive.
func identifyStem(prefix, clean string) StemInfo {
	var s StemInfo
	switch prefix {
	case "ተ":
		s = stemPassive
		if first, size := utf8.DecodeRuneInString(clean); size > 0 && OrderOf(first) == OrderRabe {
			s = stemReciprocal
		}
	case "አስተ":
		s = stemCausPassive
	case "አ":
		s = stemCausative
	default:
		return stemBasic
	}
	s.Prefix = prefix
	return s
}

// MatrixMeta describes the root a matrix was built for.
type MatrixMeta struct {
	Root             string   `json:"root"`
	BaseRoot         string   `json:"base_root"`
	RootConsonants   []string `json:"root_consonants"`
	RootType         RootType `json:"root_type"`
	VerbType         string   `json:"verb_type"`
	Stem             StemInfo `json:"stem"`
	VerbHome         VerbHome `json:"verb_home"`
	Meaning          string   `json:"meaning,omitempty"`
	FrameworkVersion string   `json:"framework_version"`
	Note             string   `json:"note"`
}

// TenseSummary is the descriptive part of a tense template.
type TenseSummary struct {
	Name       string `json:"name"`
	GeezName   string `json:"geez_name"`
	Semantic   string `json:"semantic"`
	CVTemplate string `json:"cv_template"`
}

// TenseConjugations holds every generated subject of one tense.
type TenseConjugations struct {
	Template     TenseSummary           `json:"_template"`
	Subjects     []string               `json:"subjects"`
	Conjugations map[string]*Generation `json:"conjugations"`
}

// ConjugationMatrix is the full paradigm of one root. On the wire the
// tenses sit next to "_meta" and "derived".
type ConjugationMatrix struct {
	Meta    MatrixMeta
	Tenses  map[Tense]*TenseConjugations
	Derived map[string]*DerivedWord
}

// MarshalJSON implements json.Marshaler.
func (m ConjugationMatrix) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Tenses)+2)
	out["_meta"] = m.Meta
	for t, tc := range m.Tenses {
		out[string(t)] = tc
	}
	out["derived"] = m.Derived
	return json.Marshal(out)
}

// ExpandRoot builds the full conjugation matrix of root: every subject of
// every tense plus the derived classes. A derivational prefix on root
// selects the matching stem template when one exists. Combinations that
// fail are left out.
func (e *Engine) ExpandRoot(root, verbType string) (*ConjugationMatrix, error) {
	clean, stemPrefix := e.splitDerivationalPrefix(root)
	stem := identifyStem(stemPrefix, clean)

	rads := radicals(clean)
	if len(rads) < 3 {
		return nil, rootTooShort(root)
	}

	vh := DetectVerbHome(Skeleton(clean), clean)
	vh.Features.StemNumber = stem.Number
	vh.Features.StemPrefix = stemPrefix
	vh.Features.StemType = stem.Name

	baseType := e.resolveVerbType(clean, "", vh)
	genRoot := root
	if stem.templateSuffix != "" {
		if derived := baseType + "_" + stem.templateSuffix; e.templates.Types[derived] != nil {
			verbType, genRoot = derived, clean
		}
	}
	if verbType == "" {
		verbType = baseType
	}

	vt, ok := e.templates.Types[verbType]
	if !ok {
		return nil, newError(ErrUnknownVerbType, "Unknown verb type '%s'", verbType)
	}

	rootType := weakShape(rads)
	if rootType == "" {
		rootType = RootStrong
	}
	var meaning string
	if entry, ok := e.lexicon.Root(clean); ok {
		meaning = entry.Meaning
	}

	m := &ConjugationMatrix{
		Meta: MatrixMeta{
			Root:             root,
			BaseRoot:         clean,
			RootConsonants:   runeStrings(string(rads)),
			RootType:         rootType,
			VerbType:         verbType,
			Stem:             stem,
			VerbHome:         vh,
			Meaning:          meaning,
			FrameworkVersion: Version,
			Note:             "Authentic Ge'ez morphology with 5-stem system support",
		},
		Tenses:  make(map[Tense]*TenseConjugations),
		Derived: make(map[string]*DerivedWord),
	}

	opts := GenerateOptions{VerbType: verbType, VerbHome: &vh}
	for _, tense := range Tenses {
		tt, ok := vt.Tenses[tense]
		if !ok {
			continue
		}
		tc := &TenseConjugations{
			Template: TenseSummary{
				Name:       tt.TemplateName,
				GeezName:   tt.GeezName,
				Semantic:   tt.Semantic,
				CVTemplate: tt.CVTemplate,
			},
			Subjects:     []string{},
			Conjugations: make(map[string]*Generation),
		}
		for _, subject := range orderedKeys(tt.Subjects, canonicalSubjects) {
			g, err := e.GenerateWord(genRoot, tense, subject, opts)
			if err != nil {
				e.log.Debug("conjugation skipped",
					zap.String("root", root),
					zap.String("tense", string(tense)),
					zap.String("subject", subject),
					zap.Error(err))
				continue
			}
			tc.Subjects = append(tc.Subjects, subject)
			tc.Conjugations[subject] = g
		}
		m.Tenses[tense] = tc
	}

	for _, class := range orderedKeys(vt.Derived, derivedClassOrder) {
		if dw, err := e.GenerateDerived(clean, class, verbType); err == nil {
			m.Derived[class] = dw
		}
	}
	return m, nil
}

// legacySubjectKeys maps person keys to the names used by the simple matrix.
var legacySubjectKeys = map[string]string{
	"3sm": "he", "3sf": "she",
	"2sm": "you_m", "2sf": "you_f",
	"1s": "I", "1p": "we",
	"3pm": "they_m", "3pf": "they_f",
	"2pm": "you_pl_m", "2pf": "you_pl_f",
}

// SimpleMatrix maps tense (and "derived") to form name to word.
type SimpleMatrix map[string]map[string]string

// ExpandRootSimple is ExpandRoot reduced to words, keyed by the legacy
// subject names. The verb class is resolved on root as given.
func (e *Engine) ExpandRootSimple(root, verbType string) (SimpleMatrix, error) {
	rads := radicals(root)
	if len(rads) < 3 {
		return nil, rootTooShort(root)
	}
	vh := DetectVerbHome(Skeleton(root), root)
	verbType = e.resolveVerbType(root, verbType, vh)

	vt, ok := e.templates.Types[verbType]
	if !ok {
		return nil, newError(ErrUnknownVerbType, "Unknown verb type '%s'", verbType)
	}

	out := make(SimpleMatrix)
	opts := GenerateOptions{VerbType: verbType, VerbHome: &vh}
	for _, tense := range Tenses {
		tt, ok := vt.Tenses[tense]
		if !ok {
			continue
		}
		words := make(map[string]string, len(tt.Subjects))
		for subject := range tt.Subjects {
			g, err := e.GenerateWord(root, tense, subject, opts)
			if err != nil {
				continue
			}
			key, ok := legacySubjectKeys[subject]
			if !ok {
				key = subject
			}
			words[key] = g.Word
		}
		out[string(tense)] = words
	}

	derived := make(map[string]string, len(vt.Derived))
	for class := range vt.Derived {
		if dw, err := e.GenerateDerived(root, class, verbType); err == nil {
			derived[class] = dw.Word
		}
	}
	out["derived"] = derived
	return out, nil
}
