// Package http provides HTTP handlers for registration checks and processing.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/brdocs/internal/httputil"
	"github.com/allisson/brdocs/internal/registration/http/dto"
	registrationUseCase "github.com/allisson/brdocs/internal/registration/usecase"
	customValidation "github.com/allisson/brdocs/internal/validation"
)

// RegistrationHandler handles HTTP requests for registrations and the email and
// password checks they rely on.
type RegistrationHandler struct {
	registrationUseCase registrationUseCase.RegistrationUseCase
	logger              *slog.Logger
}

// NewRegistrationHandler creates a new registration handler with required dependencies.
func NewRegistrationHandler(
	registrationUseCase registrationUseCase.RegistrationUseCase,
	logger *slog.Logger,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUseCase: registrationUseCase,
		logger:              logger,
	}
}

// CheckHandler reports which registration fields pass their checks.
// POST /v1/registrations/check - Returns 200 OK even when fields fail.
func (h *RegistrationHandler) CheckHandler(c *gin.Context) {
	var req dto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	checks := h.registrationUseCase.Check(c.Request.Context(), req.ToInput())
	c.JSON(http.StatusOK, dto.MapChecksResponse(checks))
}

// ProcessHandler validates a registration and returns its report.
// POST /v1/registrations - Returns 422 with field messages when any check fails.
func (h *RegistrationHandler) ProcessHandler(c *gin.Context) {
	var req dto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.ValidateStrict(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	report, err := h.registrationUseCase.Process(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapReportResponse(report))
}

// InspectEmailHandler describes an email address.
// POST /v1/emails/inspect
func (h *RegistrationHandler) InspectEmailHandler(c *gin.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	inspection := h.registrationUseCase.InspectEmail(c.Request.Context(), req.Email)
	c.JSON(http.StatusOK, dto.MapEmailInspectionResponse(inspection))
}

// CheckPasswordHandler lists the strength rules a password breaks. The password is never echoed.
// POST /v1/passwords/check
func (h *RegistrationHandler) CheckPasswordHandler(c *gin.Context) {
	var req dto.PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	check := h.registrationUseCase.CheckPassword(c.Request.Context(), req.Password)
	c.JSON(http.StatusOK, dto.MapPasswordCheckResponse(check))
}
