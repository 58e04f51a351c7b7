// pkg/password/substitutions.go

package password

import "slices"

// substitutions maps a seed character to its look-alike replacements.
// Entries are never modified after init.
var substitutions = map[rune][]string{
	'a': {"@", "4", "A", "α", "а"}, 'A': {"4", "@", "a", "Δ"},
	'b': {"8", "B", "ß", "б"}, 'B': {"8", "b", "|3"},
	'c': {"(", "C", "с", "¢"}, 'C': {"(", "c", "<"},
	'd': {"D", "đ", "ð", "д"}, 'D': {"|)", "d", "Ð"},
	'e': {"3", "E", "є", "е"}, 'E': {"3", "e", "€"},
	'f': {"F", "ƒ", "φ"}, 'F': {"f", "ƒ", "|="},
	'g': {"G", "9", "ġ", "г"}, 'G': {"g", "6", "9"},
	'h': {"H", "#", "ħ", "н"}, 'H': {"h", "#", "|-|"},
	'i': {"!", "1", "I", "|", "и"}, 'I': {"i", "1", "!", "|"},
	'j': {"J", "ĵ", "й"}, 'J': {"j", "_|"},
	'k': {"K", "κ", "к"}, 'K': {"k", "|<"},
	'l': {"L", "1", "|", "л"}, 'L': {"l", "1", "|_"},
	'm': {"M", "м"}, 'M': {"m", "|v|"},
	'n': {"N", "η", "н"}, 'N': {"n", `|\|`},
	'o': {"0", "O", "о", "ø"}, 'O': {"0", "o", "ø"},
	'p': {"P", "р", "ρ"}, 'P': {"p", "|°"},
	'q': {"Q", "q", "9"}, 'Q': {"q", "φ"},
	'r': {"R", "я", "г"}, 'R': {"r", "®"},
	's': {"$", "5", "S", "с"}, 'S': {"s", "$", "5"},
	't': {"T", "+", "т"}, 'T': {"t", "+", "7"},
	'u': {"U", "μ", "у"}, 'U': {"u", "μ"},
	'v': {"V", "v", "ν"}, 'V': {"v", `\/`},
	'w': {"W", "ω", "ш"}, 'W': {"w", "ш"},
	'x': {"X", "×", "х"}, 'X': {"x", "×", "*"},
	'y': {"Y", "у", "ý"}, 'Y': {"y", "ÿ"},
	'z': {"Z", "z", "ž"}, 'Z': {"z", "2"},

	'0': {"O", "o", "Ø", "ø", "D"},
	'1': {"I", "i", "l", "L", "|", "!"},
	'2': {"Z", "z", "ž", "Ž", "ƻ"},
	'3': {"E", "e", "ε", "Ɛ", "ʒ"},
	'4': {"A", "a", "Λ", "λ"},
	'5': {"S", "s", "$", "§"},
	'6': {"G", "g", "b", "б"},
	'7': {"T", "t", "+"},
	'8': {"B", "b", "ß"},
	'9': {"g", "G", "q", "Q"},
}

// Lookup returns a copy of the replacement list for r.
// A miss means the character is not substituted.
func Lookup(r rune) ([]string, bool) {
	subs, ok := substitutions[r]
	if !ok {
		return nil, false
	}
	return slices.Clone(subs), true
}
