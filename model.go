package ethiomorph

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Tense is one of the four finite verb paradigms.
type Tense string

const (
	Perfective   Tense = "perfective"
	Imperfective Tense = "imperfective"
	Jussive      Tense = "jussive"
	Imperative   Tense = "imperative"
)

// Tenses lists the paradigms in the order matrices are built.
var Tenses = []Tense{Perfective, Imperfective, Jussive, Imperative}

func (t Tense) valid() bool {
	switch t {
	case Perfective, Imperfective, Jussive, Imperative:
		return true
	}
	return false
}

// Radical slot names used as vowel-map keys.
var slotNames = [...]string{"C1", "C2", "C3", "C4"}

// VowelMap assigns a target order to each radical slot.
type VowelMap map[string]Order

// orderFor returns the order for slot, or def when the slot is absent.
func (m VowelMap) orderFor(slot string, def Order) Order {
	if o, ok := m[slot]; ok {
		return o
	}
	return def
}

// Label is the human-readable subject description.
type Label struct {
	Geez    string `json:"geez,omitempty"`
	English string `json:"english,omitempty"`
}

// SubjectTemplate is the affix and vowel pattern for one person/number/gender.
type SubjectTemplate struct {
	Prefix            string   `json:"prefix"`
	Suffix            string   `json:"suffix"`
	VowelMap          VowelMap `json:"vowel_map" validate:"dive,keys,oneof=C1 C2 C3 C4,endkeys,min=-1,max=7,ne=0"`
	MorphologicalRule string   `json:"morphological_rule,omitempty"`
	Label             Label    `json:"label"`
}

// TenseTemplate holds every subject of one tense.
type TenseTemplate struct {
	TemplateName string                      `json:"template_name"`
	GeezName     string                      `json:"geez_name,omitempty"`
	Semantic     string                      `json:"semantic,omitempty"`
	CVTemplate   string                      `json:"cv_template,omitempty"`
	Gemination   *bool                       `json:"gemination,omitempty"`
	Subjects     map[string]*SubjectTemplate `json:"subjects" validate:"required,min=1,dive,keys,required,endkeys,required"`
}

// DerivedTemplate renders a nominal or participle from the bare radicals.
type DerivedTemplate struct {
	Template string   `json:"template,omitempty"`
	Prefix   string   `json:"prefix"`
	Suffix   string   `json:"suffix"`
	Pattern  VowelMap `json:"pattern" validate:"dive,keys,oneof=C1 C2 C3 C4,endkeys,min=-1,max=7,ne=0"`
}

// VerbTypeTemplate is one conjugation class: a template per tense plus the
// derived classes. On disk tenses and "derived" share one object.
type VerbTypeTemplate struct {
	Tenses  map[Tense]*TenseTemplate    `validate:"required,min=1,dive,required"`
	Derived map[string]*DerivedTemplate `validate:"dive,required"`
	Meta    json.RawMessage
}

// UnmarshalJSON splits the flat on-disk object into tenses and derived
// classes. Keys starting with "_" are kept as metadata.
func (v *VerbTypeTemplate) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v.Tenses = make(map[Tense]*TenseTemplate)
	v.Derived = make(map[string]*DerivedTemplate)
	for key, msg := range raw {
		switch {
		case key == "_meta":
			v.Meta = msg
		case strings.HasPrefix(key, "_"):
		case key == "derived":
			if err := json.Unmarshal(msg, &v.Derived); err != nil {
				return fmt.Errorf("derived: %w", err)
			}
		case Tense(key).valid():
			var tt TenseTemplate
			if err := json.Unmarshal(msg, &tt); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			v.Tenses[Tense(key)] = &tt
		default:
			return fmt.Errorf("unknown tense %q", key)
		}
	}
	return nil
}

// MarshalJSON writes the flat on-disk layout back out.
func (v VerbTypeTemplate) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(v.Tenses)+2)
	for t, tt := range v.Tenses {
		out[string(t)] = tt
	}
	if len(v.Derived) > 0 {
		out["derived"] = v.Derived
	}
	if len(v.Meta) > 0 {
		out["_meta"] = v.Meta
	}
	return json.Marshal(out)
}

// WeakRootRule overrides vowel orders for hollow roots.
type WeakRootRule struct {
	Description         string   `json:"description,omitempty"`
	PerfectiveTransform VowelMap `json:"perfective_transform" validate:"dive,keys,oneof=C1 C2 C3 C4,endkeys,min=-1,max=7,ne=0"`
}

// TemplateSet is the parsed templates.json: verb classes keyed by name
// plus the weak-root rules.
type TemplateSet struct {
	Types         map[string]*VerbTypeTemplate `validate:"required,min=1,dive,required"`
	WeakRootRules map[RootType]*WeakRootRule   `validate:"dive,required"`
	Meta          json.RawMessage
}

const weakRootRulesKey = "weak_root_rules"

// UnmarshalJSON implements json.Unmarshaler.
func (ts *TemplateSet) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	ts.Types = make(map[string]*VerbTypeTemplate)
	ts.WeakRootRules = make(map[RootType]*WeakRootRule)
	for key, msg := range raw {
		switch {
		case key == "_meta":
			ts.Meta = msg
		case strings.HasPrefix(key, "_"):
		case key == weakRootRulesKey:
			if err := json.Unmarshal(msg, &ts.WeakRootRules); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		default:
			var vt VerbTypeTemplate
			if err := json.Unmarshal(msg, &vt); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			ts.Types[key] = &vt
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (ts TemplateSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(ts.Types)+2)
	for k, vt := range ts.Types {
		out[k] = vt
	}
	if len(ts.WeakRootRules) > 0 {
		out[weakRootRulesKey] = ts.WeakRootRules
	}
	if len(ts.Meta) > 0 {
		out["_meta"] = ts.Meta
	}
	return json.Marshal(out)
}

// lookup resolves a (verb type, tense, subject) triple.
func (ts TemplateSet) lookup(verbType string, tense Tense, subject string) (*TenseTemplate, *SubjectTemplate, error) {
	vt, ok := ts.Types[verbType]
	if !ok {
		return nil, nil, newError(ErrUnknownVerbType, "Unknown verb type '%s'", verbType)
	}
	tt, ok := vt.Tenses[tense]
	if !ok {
		return nil, nil, newError(ErrUnknownTense, "Unknown tense '%s' for type '%s'", tense, verbType)
	}
	st, ok := tt.Subjects[subject]
	if !ok {
		return nil, nil, newError(ErrUnknownSubject, "Unknown subject '%s' for tense '%s'", subject, tense)
	}
	return tt, st, nil
}

// StemDefinition is one entry of stems.json.
type StemDefinition struct {
	Name     string   `json:"name" validate:"required"`
	GeezName string   `json:"geez_name,omitempty"`
	Meaning  string   `json:"meaning,omitempty"`
	Prefix   string   `json:"prefix"`
	VowelMap VowelMap `json:"vowel_map" validate:"dive,keys,oneof=C1 C2 C3 C4,endkeys,min=-1,max=7,ne=0"`
}

// canonicalSubjects is the display order of person keys.
var canonicalSubjects = []string{"3sm", "3sf", "2sm", "2sf", "1s", "3pm", "3pf", "2pm", "2pf", "1p"}

// orderedKeys returns the keys of m with the names in canonical first, in
// that order, followed by the rest sorted.
func orderedKeys[V any](m map[string]V, canonical []string) []string {
	out := make([]string, 0, len(m))
	seen := make(map[string]bool, len(canonical))
	for _, k := range canonical {
		if _, ok := m[k]; ok {
			out = append(out, k)
			seen[k] = true
		}
	}
	rest := make([]string, 0, len(m)-len(out))
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
