package service

import (
	"strings"

	"github.com/allisson/brdocs/internal/document/domain"
)

// Normalize removes every character that is not an ASCII decimal digit.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// CheckDigit computes a weighted mod-11 check digit.
// digits and weights must have the same length and digits must be in 0..9.
// The weighted sum is reduced modulo 11; remainders 0 and 1 map to 0, any other
// remainder r maps to 11-r.
func CheckDigit(digits []int, weights []int) int {
	sum := 0
	for i, weight := range weights {
		sum += digits[i] * weight
	}

	remainder := sum % domain.Modulus
	if remainder < 2 {
		return 0
	}
	return domain.Modulus - remainder
}

// descendingWeights returns count weights starting at start and decreasing by one.
func descendingWeights(start, count int) []int {
	weights := make([]int, count)
	for i := range weights {
		weights[i] = start - i
	}
	return weights
}

// toDigits converts a normalized string into its digit values.
func toDigits(normalized string) []int {
	digits := make([]int, len(normalized))
	for i := 0; i < len(normalized); i++ {
		digits[i] = int(normalized[i] - '0')
	}
	return digits
}

// fromDigits converts digit values back into a string.
func fromDigits(digits []int) string {
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[i] = byte('0' + d)
	}
	return string(out)
}

// allSameDigits reports whether every digit equals the first one.
func allSameDigits(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}
