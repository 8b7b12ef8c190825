package ethiomorph

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ExtractRoot recovers the consonantal root of a surface word. It never
// fails: when no rule applies the skeleton of the stripped stem is
// returned with reduced confidence.
//
// The tries, in order:
//  1. one-character irregular imperatives
//  2. the skeleton as a lexicon root
//  3. protected nouns
//  4. affix stripping to a fixed point, then weak-radical reconstruction
func (e *Engine) ExtractRoot(word string) *AnalysisResult {
	var tr trace

	normalized := Normalize(word)
	if normalized != word {
		tr.add(DerivationStep{
			Action:      ActNormalize,
			Description: "Homophone normalization",
			Before:      word,
			After:       normalized,
			Rule:        "Map phonetic variants to canonical forms",
		})
	}

	if utf8.RuneCountInString(normalized) == 1 {
		if irr, ok := irregularImperatives[normalized]; ok {
			tr.add(DerivationStep{
				Action:      ActOneCharLookup,
				Description: "Single-character imperative reconstruction",
				Before:      normalized,
				After:       irr.root,
				Rule:        irr.rule,
			})
			return e.buildResult(word, irr.root, normalized, nil, nil, &tr, MethodIrregular)
		}
	}

	skeleton := Skeleton(normalized)
	if entry, ok := e.lexicon.roots[skeleton]; ok {
		meaning := entry.Meaning
		if meaning == "" {
			meaning = "N/A"
		}
		tr.add(DerivationStep{
			Action:      ActLexiconMatch,
			Description: "Direct lexicon lookup",
			Before:      normalized,
			After:       skeleton,
			Rule:        "Found in lexicon: " + meaning,
		})
		return e.buildResult(word, skeleton, normalized, nil, nil, &tr, MethodLexicon)
	}

	if noun, ok := e.lexicon.nouns[normalized]; ok {
		return e.nounResult(word, normalized, noun, &tr)
	}

	stem, prefixes, suffixes := e.stripAffixes(normalized, &tr)

	root := Skeleton(stem)
	tr.add(DerivationStep{
		Action:      ActDevowelize,
		Description: "Extract consonant skeleton",
		Before:      stem,
		After:       root,
		Rule:        "Remove vowel orders to get base consonants",
	})
	root = e.reconstruct(root, stem, &tr)

	return e.buildResult(word, root, stem, prefixes, suffixes, &tr, MethodDerived)
}

// stripAffixes removes prefixes and suffixes until neither list matches.
// Each pass tries every prefix first and falls back to a single suffix.
func (e *Engine) stripAffixes(word string, tr *trace) (stem string, prefixes, suffixes []string) {
	current := word
	for {
		if p, rest, reason, ok := e.matchPrefix(current); ok {
			tr.add(DerivationStep{
				Action: ActStripPrefix,
				Affix:  p,
				Before: current,
				After:  rest,
				Rule:   fmt.Sprintf("Prefix '%s' stripped (%s)", p, reason),
			})
			prefixes = append(prefixes, p)
			current = rest
			continue
		}
		if s, rest, reason, ok := e.matchSuffix(current); ok {
			tr.add(DerivationStep{
				Action: ActStripSuffix,
				Affix:  s,
				Before: current,
				After:  rest,
				Rule:   fmt.Sprintf("Suffix '%s' stripped (%s)", s, reason),
			})
			suffixes = append(suffixes, s)
			current = rest
			continue
		}
		return current, prefixes, suffixes
	}
}

// matchPrefix returns the first prefix of word whose removal leaves a
// usable stem.
func (e *Engine) matchPrefix(word string) (prefix, rest, reason string, ok bool) {
	for _, p := range prefixList {
		if !strings.HasPrefix(word, p) {
			continue
		}
		rest := word[len(p):]
		n := utf8.RuneCountInString(Skeleton(rest))
		if p == "መ" && e.keepMePrefix(word, rest, n) {
			continue
		}
		switch {
		case n >= 3:
			return p, rest, "skeleton >= 3", true
		case n == 2 && e.isWeakRootCandidate(rest):
			return p, rest, "weak root candidate", true
		}
	}
	return "", "", "", false
}

// matchSuffix is matchPrefix for the end of the word. A two-consonant
// remainder is also accepted when a laryngeal C2 can be restored.
func (e *Engine) matchSuffix(word string) (suffix, rest, reason string, ok bool) {
	for _, s := range suffixList {
		if !strings.HasSuffix(word, s) {
			continue
		}
		rest := word[:len(word)-len(s)]
		skel := Skeleton(rest)
		switch n := utf8.RuneCountInString(skel); {
		case n >= 3:
			return s, rest, "skeleton >= 3", true
		case n == 2:
			if e.isWeakRootCandidate(rest) {
				return s, rest, "reconstructable root candidate", true
			}
			if _, _, ok := e.reconstructLaryngealMiddle(skel); ok {
				return s, rest, "reconstructable root candidate", true
			}
		}
	}
	return "", "", "", false
}

// keepMePrefix reports whether a leading መ belongs to the word: protected
// nouns keep it, and so do known quadriliterals when the remainder still
// looks like a perfective triliteral.
func (e *Engine) keepMePrefix(word, rest string, restLen int) bool {
	if _, ok := e.lexicon.nouns[word]; ok {
		return true
	}
	if rest == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(rest)
	return OrderOf(last) == OrderGeez && restLen >= 3 && e.lexicon.isQuadriliteral(Skeleton(word))
}

// isWeakRootCandidate reports whether a two-consonant stem hides a weak
// radical: a 7th, 3rd or 5th order C1 points to an elided middle glide,
// and ወ+skeleton may be a known weak-initial root.
func (e *Engine) isWeakRootCandidate(stem string) bool {
	first, size := utf8.DecodeRuneInString(stem)
	if size == 0 {
		return false
	}
	switch OrderOf(first) {
	case OrderSabe, OrderSalis, OrderHamis:
		return true
	}
	skel := Skeleton(stem)
	return utf8.RuneCountInString(skel) == 2 && e.lexicon.isWeakInitial(string(glideW)+skel)
}

// reconstructLaryngealMiddle tries each guttural as C2 of a two-consonant
// skeleton and returns the first known root. በ+ለ falls back to በሀለ.
func (e *Engine) reconstructLaryngealMiddle(skeleton string) (root string, laryngeal rune, ok bool) {
	rads := radicals(skeleton)
	if len(rads) != 2 {
		return "", 0, false
	}
	c1, c3 := rads[0], rads[1]
	for _, l := range laryngealBases {
		candidate := string([]rune{c1, l, c3})
		if _, ok := laryngealMiddleRoots[candidate]; ok {
			return candidate, l, true
		}
		if entry, ok := e.lexicon.roots[candidate]; ok {
			if entry.Type == RootLaryngealMiddle || entry.Type == RootLaryngeal {
				return candidate, l, true
			}
		}
	}
	if c1 == 'በ' && c3 == 'ለ' {
		return "በሀለ", 'ሀ', true
	}
	return "", 0, false
}

// reconstruct restores an elided radical of a two-consonant root.
func (e *Engine) reconstruct(root, stem string, tr *trace) string {
	if utf8.RuneCountInString(root) != 2 {
		return root
	}
	rads := radicals(root)
	first, _ := utf8.DecodeRuneInString(stem)

	switch OrderOf(first) {
	case OrderSabe:
		next := string([]rune{rads[0], glideW, rads[1]})
		tr.add(DerivationStep{
			Action:      ActReconstructHollowW,
			Description: "Reconstruct hollow-W middle radical",
			Before:      root,
			After:       next,
			Rule:        "7th order vowel (O) on C1 indicates hidden ወ. Pattern: C1o = C1+ወ+C2",
		})
		return next
	case OrderSalis, OrderHamis:
		next := string([]rune{rads[0], glideY, rads[1]})
		tr.add(DerivationStep{
			Action:      ActReconstructHollowY,
			Description: "Reconstruct hollow-Y middle radical",
			Before:      root,
			After:       next,
			Rule:        "3rd/5th order vowel (I/E) on C1 indicates hidden የ. Pattern: C1i/e = C1+የ+C2",
		})
		return next
	}

	if next, l, ok := e.reconstructLaryngealMiddle(root); ok {
		tr.add(DerivationStep{
			Action:      ActReconstructLaryng,
			Description: "Reconstruct laryngeal middle radical",
			Before:      root,
			After:       next,
			Rule:        fmt.Sprintf("2-letter stem with missing C2. Laryngeal '%c' reconstructed. Pattern: C1+%c+C3 (ላሪንጅያል መካከል)", l, l),
		})
		return next
	}

	if candidate := string(glideW) + root; e.lexicon.isWeakInitial(candidate) {
		tr.add(DerivationStep{
			Action:      ActReconstructWeak,
			Description: "Reconstruct assimilated initial ወ",
			Before:      root,
			After:       candidate,
			Rule:        "2-letter stem matches weak-initial pattern. Restored ወ prefix.",
		})
		return candidate
	}
	return root
}

// identifyPattern reads the stem number and tense off the stripped prefixes,
// most specific stem first.
func identifyPattern(stem string, prefixes []string) Pattern {
	has := func(set ...string) bool {
		return slices.ContainsFunc(prefixes, func(p string) bool {
			return slices.Contains(set, p)
		})
	}
	only := func(p string) bool {
		return len(prefixes) == 1 && prefixes[0] == p
	}

	switch {
	case has("ያስተ", "ታስተ", "ናስተ"):
		return patternCausPassImperfective
	case has("ላስተ"):
		return patternCausPassJussive
	case has("አስተ", "መስተ"):
		return patternCausPassPerfective
	case has("ያ", "ታ", "ና", "ያስ", "ታስ", "ናስ"):
		return patternCausImperfective
	case has("ላስ"):
		return patternCausJussive
	case only("አ"):
		return patternCausPerfective
	case only("አስ"):
		return patternCausPerfectiveAs
	case has("ይት", "ትት", "እት", "ንት"):
		return patternPassImperfective
	case has("ተ") && !has("ያ", "ታ", "ና", "አስተ"):
		return patternPassPerfective
	case has("ይ", "ት", "እ", "ን"):
		return patternImperfective
	}

	rs := []rune(stem)
	if len(rs) >= 2 && OrderOf(rs[0]) == OrderSadis {
		return patternImperative
	}
	if utf8.RuneCountInString(Skeleton(stem)) >= 3 && len(rs) > 0 && OrderOf(rs[len(rs)-1]) == OrderGeez {
		return patternPerfective
	}
	return patternUnknown
}

// rootType is the lexicon tag for root, else a tag inferred from its shape.
func (e *Engine) rootType(root string) RootType {
	if entry, ok := e.lexicon.roots[root]; ok && entry.Type != "" {
		return entry.Type
	}
	rads := radicals(root)
	switch {
	case len(rads) == 4:
		return RootQuadriliteral
	case len(rads) >= 2 && rads[1] == glideW:
		return RootHollowW
	case len(rads) >= 2 && rads[1] == glideY:
		return RootHollowY
	case len(rads) >= 1 && rads[0] == glideW:
		return RootWeakInitial
	}
	return RootStrong
}

func (e *Engine) buildResult(word, root, stem string, prefixes, suffixes []string, tr *trace, method Method) *AnalysisResult {
	if prefixes == nil {
		prefixes = []string{}
	}
	if suffixes == nil {
		suffixes = []string{}
	}

	vh := DetectVerbHome(root, stem)
	var causative string
	for _, p := range prefixes {
		if causativePrefixes[p] {
			causative = p
			break
		}
	}
	if causative != "" {
		vh.Features.IsCausative = true
		vh.Features.CausativePrefix = causative
	}

	tr.add(DerivationStep{
		Action:      ActDetectVerbHome,
		Description: "Algorithmic verb class detection",
		Before:      fmt.Sprintf("skeleton=%s, stem=%s", root, stem),
		After:       string(vh.Type),
		Rule:        vh.Evidence,
	})

	var meaning string
	if entry, ok := e.lexicon.roots[root]; ok {
		meaning = entry.Meaning
	}

	res := &AnalysisResult{
		Input:          word,
		Root:           root,
		RootConsonants: runeStrings(root),
		RootType:       e.rootType(root),
		VerbHome:       vh,
		Meaning:        meaning,
		Confidence:     method.confidence(),
		Analysis: Analysis{
			Stem:        stem,
			Pattern:     identifyPattern(stem, prefixes),
			Prefixes:    prefixes,
			Suffixes:    suffixes,
			Method:      method,
			IsCausative: causative != "",
		},
		DerivationPath: tr.list(),
		ResearchNotation: Notation{
			RootDisplay:    rootDisplay(root),
			PatternFormula: patternFormula(root),
			AffixFormula:   affixFormula(prefixes, suffixes),
		},
	}
	e.log.Debug("root extracted",
		zap.String("input", word),
		zap.String("root", root),
		zap.String("method", string(method)),
		zap.Float64("confidence", res.Confidence))
	return res
}

// nounResult short-circuits analysis for a protected noun.
func (e *Engine) nounResult(word, normalized string, noun *LexiconNoun, tr *trace) *AnalysisResult {
	root, rootType := normalized, RootNoun
	if noun.Root != "" {
		root, rootType = noun.Root, RootDerivedNoun
	}
	skeleton := Skeleton(root)
	meaning := noun.Meaning
	if meaning == "" {
		meaning = "Noun"
	}
	tr.add(DerivationStep{
		Action:      ActNounMatch,
		Description: "Protected Noun Lookup",
		Before:      normalized,
		After:       root,
		Rule:        fmt.Sprintf("Derived from root '%s' (Lexicon)", root),
	})
	e.log.Debug("protected noun", zap.String("input", word), zap.String("root", root))
	return &AnalysisResult{
		Input:          word,
		Root:           root,
		RootConsonants: runeStrings(skeleton),
		RootType:       rootType,
		VerbHome:       DetectVerbHome(skeleton, root),
		Meaning:        meaning,
		Confidence:     MethodLexiconNoun.confidence(),
		Analysis: Analysis{
			Stem:     normalized,
			Pattern:  patternNoun,
			Prefixes: []string{},
			Suffixes: []string{},
			Method:   MethodLexiconNoun,
		},
		DerivationPath: tr.list(),
		ResearchNotation: Notation{
			RootDisplay:    rootDisplay(skeleton),
			PatternFormula: "Noun",
			AffixFormula:   "Stem",
		},
	}
}
