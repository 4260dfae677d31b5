package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	documentDomain "github.com/allisson/brdocs/internal/document/domain"
	documentService "github.com/allisson/brdocs/internal/document/service"
	apperrors "github.com/allisson/brdocs/internal/errors"
)

func newTestUseCase() DocumentUseCase {
	return NewDocumentUseCase(10, documentService.NewCPF(), documentService.NewCNPJ())
}

func TestDocumentUseCase_Validate(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	t.Run("Success_ValidCPF", func(t *testing.T) {
		valid, err := uc.Validate(ctx, documentDomain.KindCPF, "111.444.777-35")
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Success_InvalidCNPJ", func(t *testing.T) {
		valid, err := uc.Validate(ctx, documentDomain.KindCNPJ, "11.222.333/0001-82")
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("Error_UnknownKind", func(t *testing.T) {
		valid, err := uc.Validate(ctx, documentDomain.Kind("rg"), "123")
		assert.False(t, valid)
		assert.ErrorIs(t, err, documentDomain.ErrUnknownKind)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestDocumentUseCase_MaskAndUnmask(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	masked, err := uc.Mask(ctx, documentDomain.KindCNPJ, "11222333000181")
	require.NoError(t, err)
	assert.Equal(t, "11.222.333/0001-81", masked)

	unmasked, err := uc.Unmask(ctx, documentDomain.KindCNPJ, masked)
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", unmasked)

	_, err = uc.Mask(ctx, documentDomain.KindCPF, "1234")
	assert.ErrorIs(t, err, documentDomain.ErrInvalidFormat)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = uc.Unmask(ctx, documentDomain.Kind(""), "1234")
	assert.ErrorIs(t, err, documentDomain.ErrUnknownKind)
}

func TestDocumentUseCase_Generate(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()
	cpf := documentService.NewCPF()

	t.Run("Success_Unmasked", func(t *testing.T) {
		values, err := uc.Generate(ctx, documentDomain.KindCPF, 5, false)
		require.NoError(t, err)
		require.Len(t, values, 5)
		for _, v := range values {
			assert.Len(t, v, documentDomain.CPFLength)
			assert.True(t, cpf.Validate(v))
		}
	})

	t.Run("Success_Masked", func(t *testing.T) {
		values, err := uc.Generate(ctx, documentDomain.KindCNPJ, 10, true)
		require.NoError(t, err)
		require.Len(t, values, 10)
		for _, v := range values {
			assert.Regexp(t, `^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`, v)
		}
	})

	t.Run("Error_CountZero", func(t *testing.T) {
		values, err := uc.Generate(ctx, documentDomain.KindCPF, 0, false)
		assert.Nil(t, values)
		assert.ErrorIs(t, err, documentDomain.ErrInvalidCount)
	})

	t.Run("Error_CountAboveMax", func(t *testing.T) {
		_, err := uc.Generate(ctx, documentDomain.KindCPF, 11, false)
		assert.ErrorIs(t, err, documentDomain.ErrInvalidCount)
		assert.Contains(t, err.Error(), "between 1 and 10")
	})

	t.Run("Error_UnknownKind", func(t *testing.T) {
		_, err := uc.Generate(ctx, documentDomain.Kind("rg"), 1, false)
		assert.ErrorIs(t, err, documentDomain.ErrUnknownKind)
	})
}

func TestDocumentUseCase_CheckFormat(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	match, err := uc.CheckFormat(ctx, documentDomain.KindCPF, "111.444")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = uc.CheckFormat(ctx, documentDomain.KindCPF, "111/444")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestDocumentUseCase_Inspect(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	t.Run("Success_CompleteValue", func(t *testing.T) {
		inspection, err := uc.Inspect(ctx, documentDomain.KindCPF, "11144477735")
		require.NoError(t, err)
		assert.Equal(t, &documentDomain.Inspection{
			Kind:        documentDomain.KindCPF,
			Digits:      "11144477735",
			Masked:      "111.444.777-35",
			Valid:       true,
			FormatMatch: true,
		}, inspection)
	})

	t.Run("Success_PartialValue", func(t *testing.T) {
		inspection, err := uc.Inspect(ctx, documentDomain.KindCNPJ, "11.222.3")
		require.NoError(t, err)
		assert.Equal(t, "112223", inspection.Digits)
		assert.Empty(t, inspection.Masked)
		assert.False(t, inspection.Valid)
		assert.True(t, inspection.FormatMatch)
	})

	t.Run("Error_UnknownKind", func(t *testing.T) {
		inspection, err := uc.Inspect(ctx, documentDomain.Kind("rg"), "1")
		assert.Nil(t, inspection)
		assert.ErrorIs(t, err, documentDomain.ErrUnknownKind)
	})
}
