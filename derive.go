package ethiomorph

import (
	"strings"
	"unicode/utf8"
)

// derivedClassOrder is the display order of derived classes. Classes a
// template defines beyond these follow alphabetically.
var derivedClassOrder = []string{
	"infinitive", "active_participle", "passive_participle",
	"instrumental", "verbal_noun", "abstract_noun",
	"verbal_noun_alt", "causative_agent", "passive_adj", "place_noun",
}

// DerivedWord is a participle, infinitive or nominal built from a root.
type DerivedWord struct {
	Word     string `json:"word"`
	Template string `json:"template,omitempty"`
	Type     string `json:"type"`
	Class    string `json:"class"`
}

// StemWord is a root rendered in one of the derivational stems.
type StemWord struct {
	Root     string `json:"root"`
	StemCode string `json:"stem_code"`
	StemName string `json:"stem_name"`
	GeezName string `json:"geez_name"`
	Meaning  string `json:"meaning"`
	Word     string `json:"word"`
}

// renderRadicals writes each radical at its mapped order. When skipMissing
// is set, radicals absent from m are left out; otherwise they take order 1.
func renderRadicals(b *strings.Builder, rads []rune, m VowelMap, skipMissing bool) {
	slots := slotNames[:3]
	if len(rads) >= 4 {
		slots = slotNames[:4]
	}
	for i, slot := range slots {
		if i >= len(rads) {
			break
		}
		o, ok := m[slot]
		if !ok {
			if skipMissing {
				continue
			}
			o = OrderGeez
		}
		b.WriteString(Render(rads[i], o))
	}
}

// GenerateDerived builds a derived form with no tense or subject: prefix,
// radicals at the class pattern, suffix. Radicals the pattern omits are
// left out.
func (e *Engine) GenerateDerived(root, class, verbType string) (*DerivedWord, error) {
	if verbType == "" {
		if vt, ok := e.lexicon.verbTypeOf(root, e.templates); ok {
			verbType = vt
		} else {
			verbType = string(ClassA)
		}
	}
	vt, ok := e.templates.Types[verbType]
	if !ok {
		return nil, newError(ErrUnknownVerbType, "Unknown verb type '%s'", verbType)
	}
	tpl, ok := vt.Derived[class]
	if !ok {
		return nil, newError(ErrUnknownDerivedClass, "Derived form '%s' not defined for '%s'", class, verbType)
	}

	rads := radicals(root)
	if len(rads) > 4 {
		clean, _ := e.splitDerivationalPrefix(root)
		rads = radicals(clean)
	}
	if len(rads) < 3 {
		return nil, rootTooShort(root)
	}

	var b strings.Builder
	b.WriteString(tpl.Prefix)
	renderRadicals(&b, rads, tpl.Pattern, true)
	b.WriteString(tpl.Suffix)

	return &DerivedWord{
		Word:     b.String(),
		Template: tpl.Template,
		Type:     verbType,
		Class:    class,
	}, nil
}

// GenerateStem renders root in the stem identified by code.
func (e *Engine) GenerateStem(root, code string) (*StemWord, error) {
	if utf8.RuneCountInString(root) < 3 {
		return nil, newError(ErrRootTooShort, "Root too short")
	}
	sd, ok := e.stems[code]
	if !ok {
		return nil, newError(ErrUnknownStem, "Unknown stem code %s", code)
	}

	var b strings.Builder
	b.WriteString(sd.Prefix)
	renderRadicals(&b, radicals(root), sd.VowelMap, false)

	return &StemWord{
		Root:     root,
		StemCode: code,
		StemName: sd.Name,
		GeezName: sd.GeezName,
		Meaning:  sd.Meaning,
		Word:     b.String(),
	}, nil
}

// ExpandStems renders root in every defined stem. Failing stems are omitted.
func (e *Engine) ExpandStems(root string) map[string]*StemWord {
	out := make(map[string]*StemWord, len(e.stems))
	for code := range e.stems {
		if sw, err := e.GenerateStem(root, code); err == nil {
			out[code] = sw
		}
	}
	return out
}
