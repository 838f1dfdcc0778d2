// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug turns person names and movie titles into comparable ASCII keys.
//
// # Usage
//
// [From] builds hyphenated URL slugs for profile and movie pages
// (e.g., "akkineni-nagarjuna"). [Compact] builds the comparison key used when
// matching a slug against free-text credit fields ("T. Krishna" → "tkrishna").
//
// Both share the same folding pipeline so a Telugu-script or accented name
// produces the same letters whichever helper is used.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Folds the input to Latin letters (see [Fold]).
// 2. Replaces every run of non-alphanumeric characters with a hyphen.
// 3. Collapses multiple hyphens and trims leading/trailing hyphens.
func From(s string) string {
	result := Fold(s)

	result = strings.Map(func(r rune) rune {
		if isASCIIAlnum(r) {
			return r
		}
		return '-'
	}, result)

	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// Compact reduces a name or slug fragment to its comparison key.
//
// The result contains only lowercase ASCII letters and digits. Separators
// (spaces, dots, hyphens, commas) are deleted rather than collapsed, so
// "T. Krishna", "t-krishna" and "TKrishna" all compact to "tkrishna".
// Characters that survive folding but are not ASCII (other scripts) are dropped.
//
// Compact is idempotent: Compact(Compact(s)) == Compact(s).
func Compact(s string) string {
	folded := Fold(s)

	var builder strings.Builder
	builder.Grow(len(folded))
	for _, r := range folded {
		if isASCIIAlnum(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// Fold lowercases s and maps it onto Latin letters where a mapping is known.
//
// # Folding Pipeline
//
// 1. Transliterates Telugu script (see [Transliterate]).
// 2. Expands ligatures and letters NFKD cannot decompose (æ → ae, ß → ss).
// 3. Normalizes to NFKD and removes non-spacing marks (é → e).
// 4. Converts to lowercase.
func Fold(s string) string {
	result := Transliterate(s)
	result = ligatureReplacer.Replace(result)

	// transform.Chain is stateful and must not be shared between goroutines.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	if stripped, _, err := transform.String(t, result); err == nil {
		result = stripped
	}

	return strings.ToLower(result)
}

// ligatureReplacer handles letters that are distinct in their languages
// rather than composed characters, so NFKD leaves them untouched.
var ligatureReplacer = strings.NewReplacer(
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ß", "ss",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"ł", "l", "Ł", "L",
)

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
