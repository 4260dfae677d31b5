package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	registrationDomain "github.com/allisson/brdocs/internal/registration/domain"
	"github.com/allisson/brdocs/internal/registration/http/dto"
	"github.com/allisson/brdocs/internal/registration/usecase/mocks"
)

// createTestContext creates a test Gin context with the given request.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

// setupTestRegistrationHandler creates a test registration handler with mocked dependencies.
func setupTestRegistrationHandler(t *testing.T) (*RegistrationHandler, *mocks.MockRegistrationUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockRegistrationUseCase{}
	t.Cleanup(func() { mockUseCase.AssertExpectations(t) })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRegistrationHandler(mockUseCase, logger), mockUseCase
}

func validRequest() dto.RegistrationRequest {
	return dto.RegistrationRequest{
		Email:    "contato@empresa.com",
		Password: "Secure#Pass90",
		CNPJ:     "11.222.333/0001-81",
	}
}

func TestRegistrationHandler_CheckHandler(t *testing.T) {
	t.Run("Success_ReportsFailingFields", func(t *testing.T) {
		handler, mockUseCase := setupTestRegistrationHandler(t)

		req := dto.RegistrationRequest{Email: "contato@empresa.com", Password: "weak", CNPJ: "123"}
		checks := &registrationDomain.Checks{
			EmailValid:         true,
			PasswordViolations: []string{"password must be at least 8 characters"},
		}
		mockUseCase.On("Check", mock.Anything, req.ToInput()).Return(checks).Once()

		c, w := createTestContext(http.MethodPost, "/v1/registrations/check", req)
		handler.CheckHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.ChecksResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Valid)
		assert.True(t, response.Email)
		assert.Equal(t, []string{"password", "cnpj"}, response.InvalidFields)
		assert.Len(t, response.PasswordViolations, 1)
	})

	t.Run("Error_MissingFields", func(t *testing.T) {
		handler, _ := setupTestRegistrationHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/registrations/check", dto.RegistrationRequest{})
		handler.CheckHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestRegistrationHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/registrations/check", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("{")))
		handler.CheckHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegistrationHandler_ProcessHandler(t *testing.T) {
	t.Run("Success_ReturnsReport", func(t *testing.T) {
		handler, mockUseCase := setupTestRegistrationHandler(t)

		req := validRequest()
		report := &registrationDomain.Report{
			ID:        uuid.Must(uuid.NewV7()),
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Profile: registrationDomain.Profile{
				Email:      "contato@empresa.com",
				Domain:     "empresa.com",
				MaskedCNPJ: "11.222.333/0001-81",
			},
			Batch: []registrationDomain.BatchItem{
				{Index: 0, Email: "contato@empresa.com", CNPJ: "11.222.333/0001-81", Valid: true},
			},
			Summary:   registrationDomain.Summary{Total: 1, Valid: 1},
			Integrity: registrationDomain.Integrity{Valid: true},
		}
		mockUseCase.On("Process", mock.Anything, req.ToInput()).Return(report, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/registrations", req)
		handler.ProcessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "Secure#Pass90")

		var response dto.ReportResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, report.ID.String(), response.ID)
		assert.Equal(t, "empresa.com", response.Profile.Domain)
		assert.Len(t, response.Batch, 1)
		assert.Equal(t, []string{}, response.Integrity.Errors)
	})

	t.Run("Error_InvalidCNPJRejectedBeforeProcessing", func(t *testing.T) {
		handler, _ := setupTestRegistrationHandler(t)

		req := validRequest()
		req.CNPJ = "11.222.333/0001-82"

		c, w := createTestContext(http.MethodPost, "/v1/registrations", req)
		handler.ProcessHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "valid CNPJ")
	})

	t.Run("Error_UseCaseFailure", func(t *testing.T) {
		handler, mockUseCase := setupTestRegistrationHandler(t)

		req := validRequest()
		mockUseCase.On("Process", mock.Anything, req.ToInput()).Return(nil, errors.New("boom")).Once()

		c, w := createTestContext(http.MethodPost, "/v1/registrations", req)
		handler.ProcessHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRegistrationHandler_InspectEmailHandler(t *testing.T) {
	handler, mockUseCase := setupTestRegistrationHandler(t)

	inspection := &registrationDomain.EmailInspection{
		Email:                  "Vendas@Empresa.com",
		Normalized:             "vendas@empresa.com",
		Valid:                  true,
		Domain:                 "empresa.com",
		LocalPart:              "vendas",
		FromRegistrationDomain: true,
	}
	mockUseCase.On("InspectEmail", mock.Anything, "Vendas@Empresa.com").Return(inspection).Once()

	c, w := createTestContext(http.MethodPost, "/v1/emails/inspect", dto.EmailRequest{Email: "Vendas@Empresa.com"})
	handler.InspectEmailHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response dto.EmailInspectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, dto.MapEmailInspectionResponse(inspection), response)
}

func TestRegistrationHandler_CheckPasswordHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestRegistrationHandler(t)

		check := &registrationDomain.PasswordCheck{Valid: true}
		mockUseCase.On("CheckPassword", mock.Anything, "Secure#Pass90").Return(check).Once()

		c, w := createTestContext(http.MethodPost, "/v1/passwords/check", dto.PasswordRequest{Password: "Secure#Pass90"})
		handler.CheckPasswordHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "Secure#Pass90")
		assert.JSONEq(t, `{"valid":true,"violations":[]}`, w.Body.String())
	})

	t.Run("Error_EmptyPassword", func(t *testing.T) {
		handler, _ := setupTestRegistrationHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/passwords/check", dto.PasswordRequest{})
		handler.CheckPasswordHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
