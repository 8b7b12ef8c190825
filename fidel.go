package ethiomorph

import (
	"fmt"
	"strconv"
	"strings"
)

// Order is the vowel grade (1–7) a consonant carries in the fidel.
// The zero value means "not a fidel character".
type Order int

const (
	// OrderUnknown is reported for characters outside the table.
	OrderUnknown Order = 0
	// OrderDrop marks a radical that is elided from the surface form.
	OrderDrop Order = -1
)

// Named orders.
const (
	OrderGeez  Order = 1 // ግዕዝ, e.g. ቀ
	OrderKaeb  Order = 2 // ካዕብ, e.g. ቁ
	OrderSalis Order = 3 // ሣልስ, e.g. ቂ
	OrderRabe  Order = 4 // ራብዕ, e.g. ቃ
	OrderHamis Order = 5 // ኃምስ, e.g. ቄ
	OrderSadis Order = 6 // ሳድስ, e.g. ቅ
	OrderSabe  Order = 7 // ሳብዕ, e.g. ቆ
)

// String renders the order the way templates spell it: a digit or "DROP".
func (o Order) String() string {
	if o == OrderDrop {
		return "DROP"
	}
	return strconv.Itoa(int(o))
}

// MarshalJSON encodes DROP as a string and every other order as a number.
func (o Order) MarshalJSON() ([]byte, error) {
	if o == OrderDrop {
		return []byte(`"DROP"`), nil
	}
	return []byte(strconv.Itoa(int(o))), nil
}

// UnmarshalJSON accepts a number or the string "DROP".
func (o *Order) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	if strings.EqualFold(s, "DROP") {
		*o = OrderDrop
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid vowel order %q", s)
	}
	*o = Order(n)
	return nil
}

// fidelSeries lists the first-order character of every consonant series.
// Each series occupies eight consecutive code points in the Ethiopic block;
// the first seven are orders 1..7.
const fidelSeries = "ሀለሐመሠረሰሸቀበቨተቸኀነኘአከኸወዐዘዠየደጀገጠጨጰጸፀፈፐ"

type fidelKey struct {
	base  rune
	order Order
}

// baseOf maps every known character to its first-order consonant,
// orderOf to its order, and glyphOf maps (base, order) back to the character.
var baseOf, orderOf, glyphOf = buildFidel()

func buildFidel() (map[rune]rune, map[rune]Order, map[fidelKey]rune) {
	bases := make(map[rune]rune)
	orders := make(map[rune]Order)
	glyphs := make(map[fidelKey]rune)
	for _, base := range fidelSeries {
		for i := 0; i < 7; i++ {
			c := base + rune(i)
			o := Order(i + 1)
			bases[c] = base
			orders[c] = o
			glyphs[fidelKey{base, o}] = c
		}
	}
	return bases, orders, glyphs
}

// Devowelize returns the first-order consonant of c, or c itself when c
// is not a fidel character.
func Devowelize(c rune) rune {
	if b, ok := baseOf[c]; ok {
		return b
	}
	return c
}

// OrderOf returns the vowel order of c (1–7), or OrderUnknown.
func OrderOf(c rune) Order {
	return orderOf[c]
}

// IsFidel reports whether c belongs to the character-order table.
func IsFidel(c rune) bool {
	_, ok := baseOf[c]
	return ok
}

// Render returns the character for base at order o. OrderDrop renders as
// the empty string; an absent (base, order) pair falls back to base.
func Render(base rune, o Order) string {
	if o == OrderDrop {
		return ""
	}
	if c, ok := glyphOf[fidelKey{Devowelize(base), o}]; ok {
		return string(c)
	}
	return string(base)
}

// Skeleton strips the order from every character of word.
func Skeleton(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, c := range word {
		b.WriteRune(Devowelize(c))
	}
	return b.String()
}

// radicals splits a root into its devowelized consonants.
func radicals(root string) []rune {
	out := make([]rune, 0, len(root)/3)
	for _, c := range root {
		out = append(out, Devowelize(c))
	}
	return out
}

// runeStrings returns each rune of s as its own string.
func runeStrings(s string) []string {
	out := make([]string, 0, len(s)/3)
	for _, c := range s {
		out = append(out, string(c))
	}
	return out
}
