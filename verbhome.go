package ethiomorph

import (
	"fmt"
	"strconv"
	"strings"
)

// VerbClass is the algorithmically detected conjugation class. Class
// names double as template keys.
type VerbClass string

const (
	ClassA       VerbClass = "type_a"       // ቀተለ
	ClassB       VerbClass = "type_b"       // ቀደሰ
	ClassC       VerbClass = "type_c"       // ባረከ
	ClassCO      VerbClass = "type_c_o"     // ጦመረ
	ClassTanbala VerbClass = "type_tanbala" // ተንበለ
	ClassMahraka VerbClass = "type_mahräka" // ማሕረከ
)

// laryngealBases are the five gutturals.
var laryngealBases = []rune{'ሀ', 'ሐ', 'ኀ', 'አ', 'ዐ'}

// isLaryngeal reports whether c belongs to a laryngeal series.
func isLaryngeal(c rune) bool {
	b := Devowelize(c)
	for _, l := range laryngealBases {
		if b == l {
			return true
		}
	}
	return false
}

// Semivowels that may act as weak radicals.
const (
	glideW rune = 'ወ'
	glideY rune = 'የ'
)

// LaryngealPosition records a guttural at radical slot N (1-based).
type LaryngealPosition struct {
	Slot int
	Base rune
}

// String renders the position as "C2=ሀ".
func (p LaryngealPosition) String() string {
	return fmt.Sprintf("C%d=%c", p.Slot, p.Base)
}

// MarshalText implements encoding.TextMarshaler.
func (p LaryngealPosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses the "C2=ሀ" form.
func (p *LaryngealPosition) UnmarshalText(b []byte) error {
	slot, base, ok := strings.Cut(string(b), "=")
	if !ok || !strings.HasPrefix(slot, "C") {
		return fmt.Errorf("invalid laryngeal position %q", b)
	}
	n, err := strconv.Atoi(slot[1:])
	if err != nil {
		return fmt.Errorf("invalid laryngeal slot %q: %w", slot, err)
	}
	r := []rune(base)
	if len(r) != 1 {
		return fmt.Errorf("invalid laryngeal base %q", base)
	}
	p.Slot, p.Base = n, r[0]
	return nil
}

// Features are the cross-cutting traits attached to a verb class.
type Features struct {
	HasLaryngeal       bool                `json:"has_laryngeal"`
	LaryngealPositions []LaryngealPosition `json:"laryngeal_positions,omitempty"`
	IsHollow           bool                `json:"is_hollow"`
	HollowType         RootType            `json:"hollow_type,omitempty"`

	// Set by root extraction when a causative prefix was stripped.
	IsCausative     bool   `json:"is_causative,omitempty"`
	CausativePrefix string `json:"causative_prefix,omitempty"`

	// Set by matrix expansion for derived stems.
	StemNumber int    `json:"stem_number,omitempty"`
	StemPrefix string `json:"stem_prefix,omitempty"`
	StemType   string `json:"stem_type,omitempty"`
}

// LaryngealAt reports whether a guttural with the given base sits at slot.
func (f Features) LaryngealAt(slot int, base rune) bool {
	for _, p := range f.LaryngealPositions {
		if p.Slot == slot && p.Base == base {
			return true
		}
	}
	return false
}

// VerbHome is the verb class plus its feature set, derived purely from the
// shape of a root and the vowel orders of the stem it was read from.
type VerbHome struct {
	Type         VerbClass `json:"type"`
	Confidence   float64   `json:"confidence"`
	Evidence     string    `json:"evidence"`
	RadicalCount int       `json:"radical_count"`
	Features     Features  `json:"features"`
}

// radicalOrder returns the order of the i-th character of stem, or 1 when
// the stem is shorter than that.
func radicalOrder(stem []rune, i int) Order {
	if i < len(stem) {
		return OrderOf(stem[i])
	}
	return OrderGeez
}

// DetectVerbHome classifies a consonant skeleton. The stem supplies the
// vowel orders of each radical by position.
func DetectVerbHome(skeleton, stem string) VerbHome {
	rads := radicals(skeleton)
	st := []rune(stem)
	count := len(rads)

	var f Features
	for i, c := range rads {
		if isLaryngeal(c) {
			f.HasLaryngeal = true
			f.LaryngealPositions = append(f.LaryngealPositions, LaryngealPosition{Slot: i + 1, Base: c})
		}
	}
	if count >= 2 {
		switch rads[1] {
		case glideW:
			f.IsHollow, f.HollowType = true, RootHollowW
		case glideY:
			f.IsHollow, f.HollowType = true, RootHollowY
		}
	}

	home := func(class VerbClass, confidence float64, evidence string) VerbHome {
		return VerbHome{
			Type:         class,
			Confidence:   confidence,
			Evidence:     evidence,
			RadicalCount: count,
			Features:     f,
		}
	}

	switch count {
	case 4:
		if radicalOrder(st, 1) == OrderSadis {
			return home(ClassTanbala, 0.95, "4 radicals + C2 is 6th order (ተንበለ)")
		}
		return home(ClassMahraka, 0.90, "4 radicals (quadriliteral - ማሕረከ)")
	case 3:
	default:
		return home(ClassA, 0.5, fmt.Sprintf("unusual radical count: %d", count))
	}

	c1 := radicalOrder(st, 0)
	switch c1 {
	case OrderHamis:
		return home(ClassB, 0.95, "C1 is 5th order (ኃምስ) → Type B")
	case OrderRabe:
		return home(ClassC, 0.95, "C1 is 4th order (ራብዕ) → Type C")
	case OrderSabe:
		return home(ClassCO, 0.95, "C1 is 7th order (ሳብዕ) → Type C-O")
	}
	return home(ClassA, 0.80, fmt.Sprintf("default (C1 is order %d) → Type A", c1))
}
