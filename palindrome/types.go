// Package palindrome core representation: the padded sequence and its
// sentinel cell.
//
// The classic formulation pads the input with a literal '#', which silently
// breaks on inputs that themselves contain '#'. Here the padded sequence is
// a []paddedCell instead of a string, and the sentinel is a value no valid
// rune can take, so every real input value — '#', U+FFFD, anything — is
// distinguishable from padding.
//
// Invariants:
//
//	len(padded) == 2*n + 1          for an n-rune input
//	padded[2k+1] == input[k]        for all 0 ≤ k < n
//	padded[2k]   == sentinel        for all 0 ≤ k ≤ n
//
// The radius table has the same length as the padded sequence; radius[i]
// is the half-width (in padded cells) of the widest palindrome centered at
// i, which equals that palindrome's length in runes of the original input.
package palindrome

// paddedCell is one slot of the padded sequence: either a rune of the
// input, widened to int32, or the sentinel.
type paddedCell = int32

// sentinel marks boundary cells of the padded sequence. Runes are
// non-negative, so -1 never collides with input data.
const sentinel paddedCell = -1

// pad builds the padded sequence for the given runes:
// sentinel, r0, sentinel, r1, ..., sentinel.
func pad(runes []rune) []paddedCell {
	padded := make([]paddedCell, 2*len(runes)+1)
	for i := range padded {
		padded[i] = sentinel
	}
	for i, r := range runes {
		padded[2*i+1] = paddedCell(r)
	}

	return padded
}
