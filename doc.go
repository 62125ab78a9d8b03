// Package lvlstr is your in-memory playground for classic string
// algorithms — packaged the textbook way: one algorithm, one package,
// one well-documented contract.
//
// 🚀 What is lvlstr?
//
//	A pure-Go library of linear-time string scans:
//		• Palindromes: all longest palindromic substrings via Manacher's
//		  algorithm — O(n) time, O(n) memory, odd & even lengths unified
//
// ✨ Why choose lvlstr?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Total operations – no error paths, every finite input has an answer
//   - Pure Go – no cgo, no hidden deps
//   - Safe by construction – pure functions, trivially concurrency-safe
//
// Under the hood, everything is organized under subpackages:
//
//	palindrome/ — Manacher's scan: All, Longest, MaxLen, IsPalindrome
//
// Quick example:
//
//	palindrome.All("abccba xyzzyx")
//	// → ["abccba", "xyzzyx"]
//
// Dive into each package's doc.go for the full contract, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/lvlstr/palindrome
package lvlstr
