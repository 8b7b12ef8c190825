package ethiomorph

// RootType tags the morphological shape of a root.
type RootType string

const (
	RootStrong          RootType = "strong"
	RootHollowW         RootType = "hollow_w"
	RootHollowY         RootType = "hollow_y"
	RootWeakInitial     RootType = "weak_initial"
	RootLaryngealMiddle RootType = "laryngeal_middle"
	RootLaryngeal       RootType = "laryngeal"
	RootQuadriliteral   RootType = "quadriliteral"
	RootNoun            RootType = "noun"
	RootDerivedNoun     RootType = "derived_noun"
)

// LexiconRoot is one entry of the "roots" array in lexicon.json.
type LexiconRoot struct {
	Root     string   `json:"root" validate:"required,geezroot"`
	Type     RootType `json:"type,omitempty"`
	VerbType string   `json:"verb_type,omitempty"`
	Meaning  string   `json:"meaning,omitempty"`
}

// LexiconNoun is a protected noun: a surface word that must not be
// affix-stripped. Root is empty for primitive nouns.
type LexiconNoun struct {
	Word    string `json:"word" validate:"required"`
	Root    string `json:"root,omitempty"`
	Meaning string `json:"meaning,omitempty"`
}

// lexiconFile mirrors the on-disk layout of lexicon.json.
type lexiconFile struct {
	Roots []LexiconRoot `json:"roots" validate:"dive"`
	Nouns []LexiconNoun `json:"nouns" validate:"dive"`
}

// Lexicon is the read-only root and noun dictionary.
// Root keys are normalized skeletons; noun keys are normalized words.
type Lexicon struct {
	roots map[string]*LexiconRoot
	nouns map[string]*LexiconNoun

	// weakInitial and quadriliterals index roots by their type tag.
	weakInitial    map[string]bool
	quadriliterals map[string]bool
}

func newLexicon() *Lexicon {
	return &Lexicon{
		roots:          make(map[string]*LexiconRoot),
		nouns:          make(map[string]*LexiconNoun),
		weakInitial:    make(map[string]bool),
		quadriliterals: make(map[string]bool),
	}
}

// addRoot registers r under its normalized skeleton. A later entry for the
// same key replaces an earlier one.
func (lx *Lexicon) addRoot(r LexiconRoot) {
	key := lexiconKey(r.Root)
	r.Root = key
	lx.roots[key] = &r
	switch r.Type {
	case RootWeakInitial:
		lx.weakInitial[key] = true
	case RootQuadriliteral:
		lx.quadriliterals[key] = true
	}
}

func (lx *Lexicon) addNoun(n LexiconNoun) {
	n.Word = Normalize(n.Word)
	if n.Root != "" {
		n.Root = lexiconKey(n.Root)
	}
	lx.nouns[n.Word] = &n
}

// Root returns the entry for root, matched by normalized skeleton.
func (lx *Lexicon) Root(root string) (*LexiconRoot, bool) {
	r, ok := lx.roots[lexiconKey(root)]
	return r, ok
}

// Noun returns the protected-noun entry for word.
func (lx *Lexicon) Noun(word string) (*LexiconNoun, bool) {
	n, ok := lx.nouns[Normalize(word)]
	return n, ok
}

// Len returns the number of roots and nouns.
func (lx *Lexicon) Len() (roots, nouns int) {
	return len(lx.roots), len(lx.nouns)
}

func (lx *Lexicon) isWeakInitial(skeleton string) bool {
	return lx.weakInitial[skeleton]
}

func (lx *Lexicon) isQuadriliteral(skeleton string) bool {
	return lx.quadriliterals[skeleton]
}

// verbTypeOf returns the template class recorded for root: the explicit
// verb_type field, or the type tag when it names a template class.
func (lx *Lexicon) verbTypeOf(root string, templates TemplateSet) (string, bool) {
	r, ok := lx.Root(root)
	if !ok {
		return "", false
	}
	if r.VerbType != "" {
		return r.VerbType, true
	}
	if _, ok := templates.Types[string(r.Type)]; ok {
		return string(r.Type), true
	}
	return "", false
}
