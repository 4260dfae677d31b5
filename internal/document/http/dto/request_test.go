package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"masked cpf", "111.444.777-35", false},
		{"unmasked cnpj", "11222333000181", false},
		{"partial value", "111.4", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("1", MaxValueLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ValueRequest{Value: tt.value}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckRequest_ExceedsMaxLength(t *testing.T) {
	assert.False(t, (&CheckRequest{}).ExceedsMaxLength())
	assert.False(t, (&CheckRequest{Value: "   "}).ExceedsMaxLength())
	assert.False(t, (&CheckRequest{Value: strings.Repeat("1", MaxValueLength)}).ExceedsMaxLength())
	assert.True(t, (&CheckRequest{Value: strings.Repeat("1", MaxValueLength+1)}).ExceedsMaxLength())
}

func TestGenerateRequest_Validate(t *testing.T) {
	assert.NoError(t, (&GenerateRequest{}).Validate())
	assert.NoError(t, (&GenerateRequest{Count: 10, Masked: true}).Validate())
	assert.Error(t, (&GenerateRequest{Count: -1}).Validate())
}

func TestGenerateRequest_CountOrDefault(t *testing.T) {
	assert.Equal(t, 1, (&GenerateRequest{}).CountOrDefault())
	assert.Equal(t, 5, (&GenerateRequest{Count: 5}).CountOrDefault())
}
