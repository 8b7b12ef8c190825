package ethiomorph

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// derivationalPrefixes are split off a root before conjugation, longest first.
var derivationalPrefixes = []string{"አስተ", "አን", "ተ", "አ", "ነ"}

// portmanteau maps a derivational prefix and a subject prefix to their
// fused form. Pairs not listed are concatenated.
var portmanteau = map[string]map[string]string{
	"አን":  {"ይ": "ያን", "ት": "ታን", "እ": "አን", "ን": "ናን"},
	"አስተ": {"ይ": "ያስተ", "ት": "ታስተ", "እ": "አስተ", "ን": "ናስተ"},
	"አ":   {"ይ": "ያ", "ት": "ታ", "እ": "አ", "ን": "ና"},
}

// fusionOrders gives the order a 6th-order final radical takes when it
// absorbs a vowel suffix.
var fusionOrders = map[string]Order{
	"ኡ": OrderKaeb,
	"ኢ": OrderSalis,
	"ኣ": OrderRabe,
}

// derivedStemSuffixes mark template classes that already encode the
// derivational prefix.
var derivedStemSuffixes = []string{"_passive", "_causative", "_aste", "_reciprocal"}

func isDerivedStemType(verbType string) bool {
	for _, s := range derivedStemSuffixes {
		if strings.Contains(verbType, s) {
			return true
		}
	}
	return false
}

// GenerateOptions are the optional inputs of GenerateWord.
type GenerateOptions struct {
	// VerbType overrides lexicon and algorithmic class resolution.
	VerbType string
	// VerbHome skips detection when the caller already has one.
	VerbHome *VerbHome
}

// VowelShift records how one radical was rendered.
type VowelShift struct {
	Consonant string `json:"consonant"`
	Base      string `json:"base"`
	Order     Order  `json:"order"`
	FusedTo   Order  `json:"fused_to,omitempty"`
	Result    string `json:"result"`
	Note      string `json:"note"`
}

// Fusion records a suffix absorbed into the final radical.
type Fusion struct {
	OriginalSuffix string `json:"original_suffix"`
	FusedWith      string `json:"fused_with"`
	Result         string `json:"result"`
}

// TenseInfo describes the tense template used.
type TenseInfo struct {
	Name         Tense  `json:"name"`
	TemplateName string `json:"template_name"`
	GeezName     string `json:"geez_name"`
	CVTemplate   string `json:"cv_template"`
	Gemination   *bool  `json:"gemination"`
}

// SubjectInfo describes the subject template used.
type SubjectInfo struct {
	Key     string `json:"key"`
	Geez    string `json:"geez"`
	English string `json:"english"`
}

// FeaturesApplied lists the optional rules that fired.
type FeaturesApplied struct {
	LaryngealShift  bool `json:"laryngeal_shift"`
	HollowHandling  bool `json:"hollow_handling"`
	WeakInitialDrop bool `json:"weak_initial_drop"`
	CausativePrefix bool `json:"causative_prefix"`
}

// Derivation is the metadata attached to a generated word.
type Derivation struct {
	Root              []string        `json:"root"`
	RootDisplay       string          `json:"root_display"`
	RootType          RootType        `json:"root_type"`
	VerbType          string          `json:"verb_type"`
	VerbHome          VerbHome        `json:"verb_home"`
	Tense             TenseInfo       `json:"tense"`
	Subject           SubjectInfo     `json:"subject"`
	VowelShifts       []VowelShift    `json:"vowel_shifts"`
	MorphologicalRule string          `json:"morphological_rule"`
	AppliedPattern    string          `json:"applied_pattern"`
	Prefix            string          `json:"prefix"`
	Suffix            string          `json:"suffix"`
	Fusion            *Fusion         `json:"fusion"`
	FeaturesApplied   FeaturesApplied `json:"features_applied"`
}

// Generation is a generated word with its derivation.
type Generation struct {
	Word       string     `json:"word"`
	Derivation Derivation `json:"derivation"`
}

// splitDerivationalPrefix separates a derivational prefix from root. Roots
// found in the lexicon are never split, and a split must leave at least
// three radicals.
func (e *Engine) splitDerivationalPrefix(root string) (clean, prefix string) {
	if _, ok := e.lexicon.roots[lexiconKey(root)]; ok {
		return root, ""
	}
	for _, p := range derivationalPrefixes {
		if !strings.HasPrefix(root, p) || len(root) == len(p) {
			continue
		}
		rest := root[len(p):]
		if utf8.RuneCountInString(rest) < 3 {
			return root, ""
		}
		return rest, p
	}
	return root, ""
}

// resolveVerbType picks the template class: explicit, then lexicon, then
// the detected class.
func (e *Engine) resolveVerbType(root, explicit string, vh VerbHome) string {
	if explicit != "" {
		return explicit
	}
	if vt, ok := e.lexicon.verbTypeOf(root, e.templates); ok {
		return vt
	}
	if vh.Type != "" {
		return string(vh.Type)
	}
	return string(ClassA)
}

// weakShape tags a triliteral with a glide in C2 or C1.
func weakShape(rads []rune) RootType {
	if len(rads) != 3 {
		return ""
	}
	switch {
	case rads[1] == glideW:
		return RootHollowW
	case rads[1] == glideY:
		return RootHollowY
	case rads[0] == glideW:
		return RootWeakInitial
	}
	return ""
}

// fuse renders the final radical against a pending suffix. A 6th-order
// radical absorbs ኡ, ኢ and ኣ; fusedTo is zero when nothing was absorbed.
func fuse(base rune, order Order, suffix string) (out, rest string, fusedTo Order) {
	if order != OrderSadis {
		return Render(base, order), suffix, 0
	}
	if fo, ok := fusionOrders[suffix]; ok {
		return Render(base, fo), "", fo
	}
	return Render(base, OrderSadis), suffix, 0
}

// GenerateWord conjugates root for one tense and subject.
func (e *Engine) GenerateWord(root string, tense Tense, subject string, opts GenerateOptions) (*Generation, error) {
	clean, derivPrefix := e.splitDerivationalPrefix(root)
	rads := radicals(clean)
	if len(rads) < 3 {
		return nil, rootTooShort(root)
	}

	var vh VerbHome
	if opts.VerbHome != nil {
		vh = *opts.VerbHome
	} else {
		vh = DetectVerbHome(Skeleton(clean), clean)
	}
	verbType := e.resolveVerbType(clean, opts.VerbType, vh)

	tt, st, err := e.templates.lookup(verbType, tense, subject)
	if err != nil {
		return nil, err
	}

	var prefixAdj string
	if derivPrefix != "" && !isDerivedStemType(verbType) {
		prefixAdj = derivPrefix
	}
	weak := weakShape(rads)

	var applied FeaturesApplied
	finalPrefix := st.Prefix
	if prefixAdj != "" {
		fused, isPortmanteau := portmanteau[prefixAdj]
		switch {
		case isPortmanteau && tense == Perfective:
			finalPrefix = prefixAdj
		case isPortmanteau && fused[st.Prefix] != "":
			finalPrefix = fused[st.Prefix]
		default:
			finalPrefix = st.Prefix + prefixAdj
		}
		applied.CausativePrefix = prefixAdj == "አ"
	}

	slots := slotNames[:3]
	if len(rads) >= 4 {
		slots = slotNames[:4]
	}
	last := slots[len(slots)-1]

	var (
		b      strings.Builder
		shifts []VowelShift
		fusion *Fusion
	)
	b.WriteString(finalPrefix)
	suffix := st.Suffix

	// renderLast applies suffix fusion to the final radical.
	renderLast := func(slot string, base rune, order Order, note string) {
		out, rest, fusedTo := fuse(base, order, suffix)
		b.WriteString(out)
		if fusedTo != 0 {
			fusion = &Fusion{OriginalSuffix: suffix, FusedWith: slot, Result: out}
			note = "suffix fusion applied"
		}
		suffix = rest
		shifts = append(shifts, VowelShift{Consonant: slot, Base: string(base), Order: order, FusedTo: fusedTo, Result: out, Note: note})
	}

	if (weak == RootHollowW || weak == RootHollowY) && tense == Perfective {
		var transform VowelMap
		if rule := e.templates.WeakRootRules[weak]; rule != nil {
			transform = rule.PerfectiveTransform
		}
		c1 := transform.orderFor("C1", st.VowelMap.orderFor("C1", OrderGeez))
		c3 := transform.orderFor("C3", st.VowelMap.orderFor("C3", OrderGeez))

		out := Render(rads[0], c1)
		b.WriteString(out)
		shifts = append(shifts,
			VowelShift{Consonant: "C1", Base: string(rads[0]), Order: c1, Result: out, Note: "hollow verb: takes order " + c1.String()},
			VowelShift{Consonant: "C2", Base: string(rads[1]), Order: OrderDrop, Note: "hollow verb: middle radical dropped"},
		)
		renderLast("C3", rads[2], c3, "")
		applied.HollowHandling = true
	} else {
		for i, slot := range slots {
			base := rads[i]
			order := st.VowelMap.orderFor(slot, OrderGeez)

			if slot == "C1" && weak == RootWeakInitial && (tense == Jussive || tense == Imperative) {
				shifts = append(shifts, VowelShift{Consonant: slot, Base: string(base), Order: OrderDrop, Note: "Weak Initial: C1 (ወ) drops in Jussive/Imperative"})
				applied.WeakInitialDrop = true
				continue
			}

			adjusted := adjustOrder(base, order, slot, tense, verbType, vh.Features)
			if adjusted != order && adjusted != OrderDrop {
				applied.LaryngealShift = true
			}
			order = adjusted

			if order == OrderDrop {
				shifts = append(shifts, VowelShift{Consonant: slot, Base: string(base), Order: OrderDrop, Note: "Laryngeal/Type Rule Dropped"})
				continue
			}
			if slot == last && suffix != "" {
				renderLast(slot, base, order, "")
				continue
			}
			out := Render(base, order)
			b.WriteString(out)
			shifts = append(shifts, VowelShift{Consonant: slot, Base: string(base), Order: order, Result: out})
		}
	}
	b.WriteString(suffix)

	pattern := make([]string, len(slots))
	for i, slot := range slots {
		if o, ok := st.VowelMap[slot]; ok {
			pattern[i] = o.String()
		} else {
			pattern[i] = "-"
		}
	}
	rootType := weak
	if rootType == "" {
		rootType = RootStrong
	}

	g := &Generation{
		Word: b.String(),
		Derivation: Derivation{
			Root:        runeStrings(string(rads)),
			RootDisplay: rootDisplay(string(rads)),
			RootType:    rootType,
			VerbType:    verbType,
			VerbHome:    vh,
			Tense: TenseInfo{
				Name:         tense,
				TemplateName: tt.TemplateName,
				GeezName:     tt.GeezName,
				CVTemplate:   tt.CVTemplate,
				Gemination:   tt.Gemination,
			},
			Subject: SubjectInfo{
				Key:     subject,
				Geez:    st.Label.Geez,
				English: st.Label.English,
			},
			VowelShifts:       shifts,
			MorphologicalRule: st.MorphologicalRule,
			AppliedPattern:    strings.Join(pattern, ", "),
			Prefix:            finalPrefix,
			Suffix:            st.Suffix,
			Fusion:            fusion,
			FeaturesApplied:   applied,
		},
	}
	if g.Derivation.Tense.TemplateName == "" {
		g.Derivation.Tense.TemplateName = string(tense)
	}
	e.log.Debug("word generated",
		zap.String("root", root),
		zap.String("tense", string(tense)),
		zap.String("subject", subject),
		zap.String("verb_type", verbType),
		zap.String("word", g.Word))
	return g, nil
}

// adjustOrder applies the type_d C2 drop and the laryngeal shifts to one
// radical.
func adjustOrder(base rune, order Order, slot string, tense Tense, verbType string, f Features) Order {
	if verbType == "type_d" && tense == Imperfective && slot == "C2" {
		return OrderDrop
	}
	if !f.HasLaryngeal {
		return order
	}
	base = Devowelize(base)
	if tense == Jussive && isLaryngeal(base) {
		return OrderRabe
	}
	if tense == Imperfective && slot == "C2" && f.LaryngealAt(2, base) {
		return OrderRabe
	}
	return order
}
