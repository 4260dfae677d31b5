// Package mocks provides mock implementations of the document use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	documentDomain "github.com/allisson/brdocs/internal/document/domain"
)

// MockDocumentUseCase is a mock implementation of DocumentUseCase for testing.
type MockDocumentUseCase struct {
	mock.Mock
}

// Validate mocks the Validate method of DocumentUseCase.
func (m *MockDocumentUseCase) Validate(ctx context.Context, kind documentDomain.Kind, value string) (bool, error) {
	args := m.Called(ctx, kind, value)
	return args.Bool(0), args.Error(1)
}

// Mask mocks the Mask method of DocumentUseCase.
func (m *MockDocumentUseCase) Mask(ctx context.Context, kind documentDomain.Kind, value string) (string, error) {
	args := m.Called(ctx, kind, value)
	return args.String(0), args.Error(1)
}

// Unmask mocks the Unmask method of DocumentUseCase.
func (m *MockDocumentUseCase) Unmask(ctx context.Context, kind documentDomain.Kind, value string) (string, error) {
	args := m.Called(ctx, kind, value)
	return args.String(0), args.Error(1)
}

// Generate mocks the Generate method of DocumentUseCase.
func (m *MockDocumentUseCase) Generate(
	ctx context.Context,
	kind documentDomain.Kind,
	count int,
	masked bool,
) ([]string, error) {
	args := m.Called(ctx, kind, count, masked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// CheckFormat mocks the CheckFormat method of DocumentUseCase.
func (m *MockDocumentUseCase) CheckFormat(ctx context.Context, kind documentDomain.Kind, value string) (bool, error) {
	args := m.Called(ctx, kind, value)
	return args.Bool(0), args.Error(1)
}

// Inspect mocks the Inspect method of DocumentUseCase.
func (m *MockDocumentUseCase) Inspect(
	ctx context.Context,
	kind documentDomain.Kind,
	value string,
) (*documentDomain.Inspection, error) {
	args := m.Called(ctx, kind, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentDomain.Inspection), args.Error(1)
}
