package palindrome_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlstr/palindrome"
)

// benchmarkAll is a helper that runs All on a pseudo-random input of n runes
// over the given alphabet. It resets the timer after input construction.
func benchmarkAll(b *testing.B, n int, alphabet string) {
	rng := rand.New(rand.NewSource(int64(n)))
	runes := []rune(alphabet)
	sb := make([]rune, n)
	for i := range sb {
		sb[i] = runes[rng.Intn(len(runes))]
	}
	input := string(sb)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = palindrome.All(input)
	}
}

// BenchmarkAll_Small benchmarks a 1k-rune input over a 26-letter alphabet.
func BenchmarkAll_Small(b *testing.B) {
	benchmarkAll(b, 1_000, "abcdefghijklmnopqrstuvwxyz")
}

// BenchmarkAll_Medium benchmarks a 100k-rune input over a 26-letter alphabet.
func BenchmarkAll_Medium(b *testing.B) {
	benchmarkAll(b, 100_000, "abcdefghijklmnopqrstuvwxyz")
}

// BenchmarkAll_BinaryAlphabet benchmarks a palindrome-dense 100k-rune input;
// a two-letter alphabet maximizes mirror reuse during the scan.
func BenchmarkAll_BinaryAlphabet(b *testing.B) {
	benchmarkAll(b, 100_000, "ab")
}

// BenchmarkAll_UniformRun benchmarks the adversarial single-letter input,
// where naive center expansion would be quadratic.
func BenchmarkAll_UniformRun(b *testing.B) {
	input := strings.Repeat("a", 100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = palindrome.All(input)
	}
}

// BenchmarkMaxLen_Medium benchmarks the length-only query on 100k runes.
func BenchmarkMaxLen_Medium(b *testing.B) {
	input := strings.Repeat("ab", 50_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = palindrome.MaxLen(input)
	}
}
