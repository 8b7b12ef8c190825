package ethiomorph

// prefixList is scanned in order and the first acceptable match is
// stripped. Fused stem-IV forms come first, bare stem markers last.
var prefixList = []string{
	// stem IV fused with subject markers
	"ያስተ", "ታስተ", "ናስተ", "ላስተ",
	"መስተ", "አስተ",
	"እንዘ", "እለ",
	// stem III አስ- verbs
	"ያስ", "ታስ", "ናስ", "ላስ",
	"ያን", "ታን", "ናን",
	// stem III (ይ+አ=ያ ...)
	"ያ", "ታ", "ና",
	// stem II imperfective (ይ+ተ=ይት ...)
	"ይት", "ትት", "እት", "ንት",
	// conjunctions and prepositions
	"ወ", "በ", "ለ", "ከ", "የ",
	// subject markers
	"ይ", "ት", "እ", "ን", "ል",
	// bare stem markers
	"አን", "አስ", "አ", "ተ", "መ", "ም", "ሳ",
}

// suffixList holds object and subject suffixes, longer forms first.
var suffixList = []string{
	"ክሙ", "ክን", "ኦሙ", "ኦን", "ዎሙ", "ዎን",
	"ሙ", "ማ", "ዎ", "ዮ", "ኡ", "ኣ",
	"ነ", "ኒ", "ና", "ኩ", "ከ", "ኪ",
	"ክ", "ን", "ት", "ም", "አት", "ተ", "ዩ",
}

// causativePrefixes mark a stripped word as causative.
var causativePrefixes = map[string]bool{
	"ያ": true, "ታ": true, "ና": true, "አ": true,
	"ያስተ": true, "ታስተ": true, "ናስተ": true, "አስተ": true,
}

// irregularImperative is a one-character imperative whose root cannot be
// recovered by stripping.
type irregularImperative struct {
	root string
	rule string
}

// Keys cover both spellings; only the normalized one is reachable.
var irregularImperatives = map[string]irregularImperative{
	"ፃ": {"ወጸአ", "Imperative of ወጸአ 'to go out'"},
	"ጻ": {"ወጸአ", "Imperative of ወጸአ 'to go out'"},
	"ሖ": {"ሀወረ", "Imperative of ሀወረ 'to go'"},
	"ሆ": {"ሀወረ", "Imperative of ሀወረ 'to go'"},
}

// laryngealMiddleRoots lists roots with a guttural C2 that drops in the
// jussive and imperative. Keys are normalized skeletons.
var laryngealMiddleRoots = map[string]string{
	"ነአከ": "to wake up",
	"መሀረ": "to forgive",
	"ሰሀለ": "to draw",
	"ለሀየ": "to flee",
	"ፈሀመ": "to understand",
	"ረሀበ": "to be hungry",
	"ደሀየ": "to be well",
	"ገሀደ": "to flee",
}

// Patterns reported by identifyPattern.
var (
	patternCausPassImperfective = Pattern{"causative_passive_imperfective", "አስተሳሳቢ ካልኣይ", "Causative-Passive Imperfective", 4, "Stem IV: Causative-passive ongoing action"}
	patternCausPassJussive      = Pattern{"causative_passive_jussive", "አስተሳሳቢ ሣልሳይ", "Causative-Passive Jussive", 4, "Stem IV: Causative-passive wish/command"}
	patternCausPassPerfective   = Pattern{"causative_passive_perfective", "አስተሳሳቢ ቀዳማይ", "Causative-Passive Perfective", 4, "Stem IV: Causative-passive completed action"}
	patternCausImperfective     = Pattern{"causative_imperfective", "አሳሳቢ ካልኣይ", "Causative Imperfective", 3, "Stem III: Causing action (ongoing)"}
	patternCausJussive          = Pattern{"causative_jussive", "አሳሳቢ ሣልሳይ", "Causative Jussive", 3, "Stem III: Causing action (wish/command)"}
	patternCausPerfective       = Pattern{"causative_perfective", "አሳሳቢ ቀዳማይ", "Causative Perfective", 3, "Stem III: Causing action (completed)"}
	patternCausPerfectiveAs     = Pattern{"causative_perfective", "አሳሳቢ ቀዳማይ", "Causative Perfective (አስ-verb)", 3, "Stem III: Causing action (completed)"}
	patternPassImperfective     = Pattern{"passive_imperfective", "ተገብሮ ካልኣይ", "Passive Imperfective", 2, "Stem II: Passive/reflexive ongoing action"}
	patternPassPerfective       = Pattern{"passive_perfective", "ተገብሮ ቀዳማይ", "Passive Perfective", 2, "Stem II: Passive/reflexive completed action"}
	patternImperfective         = Pattern{"imperfective", "ካልኣይ አንቀጽ", "Imperfective", 1, "Stem I: Basic ongoing/habitual action"}
	patternImperative           = Pattern{"imperative", "ትእዛዝ", "Imperative", 1, "Stem I: Direct command"}
	patternPerfective           = Pattern{"perfective", "ቀዳማይ አንቀጽ", "Perfective", 1, "Stem I: Basic completed action"}
	patternUnknown              = Pattern{"unknown", "ያልታወቀ", "Unknown/Noun", 0, "Pattern could not be determined"}
	patternNoun                 = Pattern{"noun", "ስም", "Noun", 0, "Protected Noun"}
)
