// Package palindrome finds all longest palindromic substrings of a string
// in linear time using Manacher's algorithm.
//
// 🚀 What is Manacher's algorithm?
//
//	A single forward scan over a "padded" copy of the input, where a
//	sentinel cell is inserted before, between and after every character so
//	that odd- and even-length palindromes are handled uniformly. The scan
//	keeps the rightmost palindrome seen so far (center + right boundary)
//	and seeds each new center from its mirror image, so no character pair
//	is compared more than a constant number of times. It's the standard
//	linear-time answer to:
//	  • Longest palindromic substring (single answer)
//	  • All longest palindromic substrings (ties, left to right)
//	  • Longest-palindrome length queries
//
// ✨ Key features:
//   - All — every maximal palindromic substring, in left-to-right order
//   - Longest — the leftmost maximal palindromic substring
//   - MaxLen — just the maximal length, no text extraction
//   - IsPalindrome — direct forward/backward check
//   - out-of-band sentinel: inputs may contain any rune, '#' included
//   - total & pure: no error paths, no configuration, no shared state
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlstr/palindrome"
//
//	palindrome.All("bananas")        // ["anana"]
//	palindrome.All("aabbccddeeff")   // ["aa" "bb" "cc" "dd" "ee" "ff"]
//	palindrome.Longest("cbbd")       // "bb"
//	palindrome.MaxLen("abba")        // 4
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(n) for the padded sequence and the radius table
//
// Every operation is a pure function of its input: concurrent calls with
// independent inputs need no synchronization. Inputs are treated as
// sequences of runes (Unicode code points); no grapheme clustering is
// performed.
//
// See examples in example_test.go for runnable scenarios.
package palindrome
