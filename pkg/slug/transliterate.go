// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug

import "strings"

// # Telugu Transliteration Table

// Consonants carry an inherent "a" which is emitted unless a vowel sign
// replaces it or a virama suppresses it.
var teluguConsonants = map[rune]string{
	'క': "k", 'ఖ': "kh", 'గ': "g", 'ఘ': "gh", 'ఙ': "n",
	'చ': "ch", 'ఛ': "chh", 'జ': "j", 'ఝ': "jh", 'ఞ': "n",
	'ట': "t", 'ఠ': "th", 'డ': "d", 'ఢ': "dh", 'ణ': "n",
	'త': "t", 'థ': "th", 'ద': "d", 'ధ': "dh", 'న': "n",
	'ప': "p", 'ఫ': "ph", 'బ': "b", 'భ': "bh", 'మ': "m",
	'య': "y", 'ర': "r", 'ఱ': "r", 'ల': "l", 'ళ': "l",
	'వ': "v", 'శ': "sh", 'ష': "sh", 'స': "s", 'హ': "h",
}

var teluguVowels = map[rune]string{
	'అ': "a", 'ఆ': "aa", 'ఇ': "i", 'ఈ': "ee", 'ఉ': "u", 'ఊ': "oo",
	'ఋ': "ru", 'ఌ': "lu", 'ఎ': "e", 'ఏ': "e", 'ఐ': "ai",
	'ఒ': "o", 'ఓ': "o", 'ఔ': "au",
}

var teluguVowelSigns = map[rune]string{
	'ా': "aa", 'ి': "i", 'ీ': "ee", 'ు': "u", 'ూ': "oo",
	'ృ': "ru", 'ౄ': "ruu", 'ె': "e", 'ే': "e", 'ై': "ai",
	'ొ': "o", 'ో': "o", 'ౌ': "au",
	// AI length mark: NFD spells ై as ె + ౖ.
	'ౖ': "i",
	'ౕ': "",
}

var teluguSigns = map[rune]string{
	'ఁ': "n", // candrabindu
	'ం': "m", // anusvara
	'ః': "h", // visarga
}

const (
	teluguVirama  = '\u0C4D'
	teluguZero    = '\u0C66'
	teluguNine    = '\u0C6F'
	teluguFirst   = '\u0C00'
	teluguLast    = '\u0C7F'
	zeroWidthJoin = '\u200D'
	zeroWidthNon  = '\u200C'
)

// Transliterate rewrites Telugu-script runes in s as Latin letters and leaves
// every other rune untouched. "తేజ" becomes "teja".
//
// Long vowels are written doubled (ా → "aa"); no diacritics are emitted.
func Transliterate(s string) string {
	if !containsTelugu(s) {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s))

	// pendingVowel is true when the last consonant still owes its inherent "a".
	pendingVowel := false
	flush := func() {
		if pendingVowel {
			builder.WriteByte('a')
			pendingVowel = false
		}
	}

	for _, r := range s {
		if consonant, ok := teluguConsonants[r]; ok {
			flush()
			builder.WriteString(consonant)
			pendingVowel = true
			continue
		}

		if sign, ok := teluguVowelSigns[r]; ok {
			pendingVowel = false
			builder.WriteString(sign)
			continue
		}

		switch {
		case r == teluguVirama:
			pendingVowel = false
		case r == zeroWidthJoin || r == zeroWidthNon:
			// Rendering hints only.
		case r >= teluguZero && r <= teluguNine:
			flush()
			builder.WriteRune('0' + (r - teluguZero))
		default:
			flush()
			if vowel, ok := teluguVowels[r]; ok {
				builder.WriteString(vowel)
			} else if mark, ok := teluguSigns[r]; ok {
				builder.WriteString(mark)
			} else if r < teluguFirst || r > teluguLast {
				builder.WriteRune(r)
			}
		}
	}
	flush()

	return builder.String()
}

func containsTelugu(s string) bool {
	for _, r := range s {
		if r >= teluguFirst && r <= teluguLast {
			return true
		}
	}
	return false
}
