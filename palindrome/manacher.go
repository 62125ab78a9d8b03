package palindrome

// All — Manacher's algorithm, every maximal palindrome.
//
// Description:
//
//	All returns every substring of s that reads the same forwards and
//	backward and whose length equals the maximum palindromic-substring
//	length of s. Ties are reported in left-to-right order of their start
//	offset; equal text appearing at distinct offsets is reported once per
//	offset.
//
// Algorithm Outline:
//  1. Decode s into runes and build the padded sequence of length 2n+1
//     (sentinel cell before, between and after every rune).
//  2. Allocate the radius table, one entry per padded cell, all zero.
//  3. Scan i = 1..len(padded)-2, maintaining the rightmost palindrome
//     found so far as (center, right):
//     – mirror = 2*center - i; if i < right, seed
//     radius[i] = min(right-i, radius[mirror]) — the mirror's radius is
//     already known by symmetry, so expansion restarts where it must,
//     not from zero. This reuse is the source of the linear bound.
//     – expand while both neighbours at offset radius[i]+1 are in bounds
//     and equal.
//     – if i+radius[i] > right, the new palindrome reaches further:
//     center, right = i, i+radius[i]. right never decreases.
//  4. maxRadius = max over the table; each radius[i] == maxRadius maps to
//     the substring of s starting at (i-maxRadius)/2 with maxRadius runes.
//     The division is exact: i and maxRadius always have equal parity.
//
// Edge cases:
//   - "" → nil (no palindromic substring exists)
//   - one rune → that rune alone; every single rune is a palindrome, so a
//     non-empty input never yields an empty result.
//
// Complexity:
//
//	Time   = O(n) — the expansion loop advances right monotonically
//	Memory = O(n) — padded sequence + radius table
//
// Example:
//
//	All("abccba xyzzyx") // ["abccba", "xyzzyx"]
func All(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	radius := radii(pad(runes))

	maxRadius := 0
	for _, r := range radius {
		if r > maxRadius {
			maxRadius = r
		}
	}

	var longest []string
	for i, r := range radius {
		if r == maxRadius {
			start := (i - maxRadius) / 2
			longest = append(longest, string(runes[start:start+maxRadius]))
		}
	}

	return longest
}

// Longest returns the leftmost longest palindromic substring of s.
// For the empty string it returns "". Equivalent to All(s)[0] without
// materializing the full tie list.
func Longest(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}

	radius := radii(pad(runes))

	center, maxRadius := 0, 0
	for i, r := range radius {
		if r > maxRadius {
			center, maxRadius = i, r
		}
	}
	start := (center - maxRadius) / 2

	return string(runes[start : start+maxRadius])
}

// MaxLen returns the length, in runes, of the longest palindromic
// substring of s. MaxLen("") == 0; otherwise the result is ≥ 1.
func MaxLen(s string) int {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}

	maxRadius := 0
	for _, r := range radii(pad(runes)) {
		if r > maxRadius {
			maxRadius = r
		}
	}

	return maxRadius
}

// IsPalindrome reports whether s reads the same forwards and backward,
// rune by rune. O(n) time, O(n) memory for the rune decoding.
func IsPalindrome(s string) bool {
	runes := []rune(s)
	for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
		if runes[l] != runes[r] {
			return false
		}
	}

	return true
}

// radii runs the linear-time center-expansion scan over the padded
// sequence and returns the radius table. The two sentinel-only endpoints
// are never used as centers; their radii stay 0.
func radii(padded []paddedCell) []int {
	n := len(padded)
	radius := make([]int, n)

	// (center, right) identify the rightmost-reaching palindrome so far.
	center, right := 0, 0
	for i := 1; i < n-1; i++ {
		if right > i {
			mirror := 2*center - i
			radius[i] = min(right-i, radius[mirror])
		}

		// Expand around i as far as the padded sequence allows.
		for i-(radius[i]+1) >= 0 && i+(radius[i]+1) < n &&
			padded[i-(radius[i]+1)] == padded[i+(radius[i]+1)] {
			radius[i]++
		}

		if i+radius[i] > right {
			center, right = i, i+radius[i]
		}
	}

	return radius
}
