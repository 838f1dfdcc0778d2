// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package credit

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/telugucine/internal/core/movie"
)

// minGuardWordLength is the shortest single word the word-set tier accepts.
// "Nagarjuna" (9) passes; "Ram" (3) and "Teja" (4) do not.
const minGuardWordLength = 8

/*
Matches reports whether a credit field value credits personName.

Description: Tiers are tried in order and the first true wins:

 1. Empty field (or empty name) → false.
 2. Whole field equals the name, case-insensitively, after trimming.
 3. Any comma-separated token equals the name, case-insensitively.
 4. Word sets, per comma token: every name word appears in the token, or
    every token word appears in the name. Either way the shorter word list
    must have at least two words, or a single word of at least eight
    characters. "Akkineni Nagarjuna" credits "Nagarjuna"; "Ram Charan"
    does not credit "Ram".
*/
func Matches(field, personName string) bool {
	field = strings.TrimSpace(field)
	personName = strings.TrimSpace(personName)
	if field == "" || personName == "" {
		return false
	}

	// Tier 2: whole-field equality
	if strings.EqualFold(field, personName) {
		return true
	}

	// Tier 3: comma token equality
	tokens := splitCredits(field)
	for _, token := range tokens {
		if strings.EqualFold(token, personName) {
			return true
		}
	}

	// Tier 4: word-set comparison
	nameWords := strings.Fields(strings.ToLower(personName))
	for _, token := range tokens {
		tokenWords := strings.Fields(strings.ToLower(token))
		if len(tokenWords) == 0 {
			continue
		}

		allWordsPresent := containsAll(tokenWords, nameWords)
		isSubset := containsAll(nameWords, tokenWords)
		if !allWordsPresent && !isSubset {
			continue
		}

		if passesLengthGuard(nameWords, tokenWords) {
			return true
		}
	}

	return false
}

// MatchMovie applies [Matches] to every credit field of m, in role order.
// A field matches when it credits personName or any of altNames.
func MatchMovie(m *movie.Movie, personName string, altNames ...string) []MatchResult {
	names := append([]string{personName}, altNames...)

	results := make([]MatchResult, 0, len(movie.CreditFields))
	for _, credit := range movie.CreditFields {
		matched := false
		if m != nil {
			if value := credit.Value(m); value != nil {
				matched = slices.ContainsFunc(names, func(name string) bool {
					return Matches(*value, name)
				})
			}
		}
		results = append(results, MatchResult{Field: credit.Field, Matched: matched})
	}
	return results
}

/*
SearchFragments returns the loose query fragments that find every movie a
[MatchMovie] over names can accept: each full name, plus each single word long
enough to pass the length guard on its own ("Nagarjuna" for a field that
credits only that word). Fragments are deduplicated case-insensitively and
keep first-seen order.
*/
func SearchFragments(names ...string) []string {
	var fragments []string
	seen := map[string]struct{}{}

	add := func(fragment string) {
		key := strings.ToLower(fragment)
		if _, ok := seen[key]; ok || key == "" {
			return
		}
		seen[key] = struct{}{}
		fragments = append(fragments, fragment)
	}

	for _, name := range names {
		words := strings.Fields(name)
		add(strings.Join(words, " "))
		if len(words) < 2 {
			continue
		}
		for _, word := range words {
			if utf8.RuneCountInString(word) >= minGuardWordLength {
				add(word)
			}
		}
	}
	return fragments
}

// passesLengthGuard rejects short single-word matches such as "Ram".
func passesLengthGuard(nameWords, tokenWords []string) bool {
	shortest := nameWords
	if len(tokenWords) < len(nameWords) {
		shortest = tokenWords
	}

	if len(shortest) >= 2 {
		return true
	}
	return len(shortest) == 1 && utf8.RuneCountInString(shortest[0]) >= minGuardWordLength
}

// containsAll reports whether every word of subset is in set.
func containsAll(set, subset []string) bool {
	for _, word := range subset {
		found := false
		for _, candidate := range set {
			if candidate == word {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// splitCredits splits a co-credit list on commas and trims each token.
// Empty tokens are dropped.
func splitCredits(field string) []string {
	parts := strings.Split(field, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
