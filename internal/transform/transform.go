// Package transform provides the string transform helpers exposed on the
// command line.
package transform

import "strings"

const vowels = "aeiouAEIOU"

// ReverseWords splits the input on whitespace runs, reverses the word order
// and joins the words with ";".
func ReverseWords(input string) string {
	words := strings.Fields(input)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, ";")
}

// ToUpper uppercases every whitespace-separated word and joins the words
// with ";".
func ToUpper(input string) string {
	words := strings.Fields(input)
	for i, word := range words {
		words[i] = strings.ToUpper(word)
	}
	return strings.Join(words, ";")
}

// RemoveVowels drops every vowel character and joins the surviving
// characters with ";". The join is per character, not per word: whitespace
// and punctuation survive as characters of their own.
func RemoveVowels(input string) string {
	var kept []string
	for _, r := range input {
		if strings.ContainsRune(vowels, r) {
			continue
		}
		kept = append(kept, string(r))
	}
	return strings.Join(kept, ";")
}
