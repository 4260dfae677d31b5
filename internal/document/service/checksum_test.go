package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "masked cpf", input: "111.444.777-35", expected: "11144477735"},
		{name: "masked cnpj", input: "11.222.333/0001-81", expected: "11222333000181"},
		{name: "already normalized", input: "52998224725", expected: "52998224725"},
		{name: "letters and spaces", input: " a1b2 c3 ", expected: "123"},
		{name: "empty", input: "", expected: ""},
		{name: "no digits", input: "abc.-/", expected: ""},
		{name: "non ascii digits are dropped", input: "١٢٣4", expected: "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		name     string
		digits   []int
		weights  []int
		expected int
	}{
		{
			name:     "cpf first digit",
			digits:   []int{1, 1, 1, 4, 4, 4, 7, 7, 7},
			weights:  descendingWeights(10, 9),
			expected: 3,
		},
		{
			name:     "cpf second digit includes first check digit",
			digits:   []int{1, 1, 1, 4, 4, 4, 7, 7, 7, 3},
			weights:  descendingWeights(11, 10),
			expected: 5,
		},
		{
			name:     "cnpj first digit",
			digits:   []int{1, 1, 2, 2, 2, 3, 3, 3, 0, 0, 0, 1},
			weights:  cnpjLayout.firstWeights,
			expected: 8,
		},
		{
			name:     "cnpj second digit, remainder 10",
			digits:   []int{1, 1, 2, 2, 2, 3, 3, 3, 0, 0, 0, 1, 8},
			weights:  cnpjLayout.secondWeights,
			expected: 1,
		},
		{
			name:     "remainder 0 maps to 0",
			digits:   []int{0, 0},
			weights:  []int{3, 2},
			expected: 0,
		},
		{
			name:     "remainder 1 maps to 0",
			digits:   []int{0, 6},
			weights:  []int{3, 2},
			expected: 0,
		},
		{
			name:     "remainder 2 maps to 9",
			digits:   []int{0, 1},
			weights:  []int{3, 2},
			expected: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CheckDigit(tt.digits, tt.weights))
		})
	}
}

func TestDescendingWeights(t *testing.T) {
	assert.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2}, descendingWeights(10, 9))
	assert.Equal(t, []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}, descendingWeights(11, 10))
	assert.Empty(t, descendingWeights(5, 0))
}

func TestLayoutWeightTables(t *testing.T) {
	for _, l := range []layout{cpfLayout, cnpjLayout} {
		t.Run(l.kind.String(), func(t *testing.T) {
			assert.Len(t, l.firstWeights, l.length-2)
			assert.Len(t, l.secondWeights, l.length-1)

			total := 0
			for _, g := range l.groups {
				total += g
			}
			assert.Equal(t, l.length, total)
			assert.Len(t, l.separators, len(l.groups)-1)
		})
	}
}
