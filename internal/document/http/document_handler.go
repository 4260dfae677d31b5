// Package http provides HTTP handlers for CPF and CNPJ operations.
package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	documentDomain "github.com/allisson/brdocs/internal/document/domain"
	"github.com/allisson/brdocs/internal/document/http/dto"
	documentUseCase "github.com/allisson/brdocs/internal/document/usecase"
	"github.com/allisson/brdocs/internal/httputil"
	customValidation "github.com/allisson/brdocs/internal/validation"
)

// DocumentHandler handles HTTP requests for identifier operations.
// The identifier kind comes from the :kind path parameter.
type DocumentHandler struct {
	documentUseCase documentUseCase.DocumentUseCase
	logger          *slog.Logger
}

// NewDocumentHandler creates a new document handler with required dependencies.
func NewDocumentHandler(documentUseCase documentUseCase.DocumentUseCase, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentUseCase: documentUseCase,
		logger:          logger,
	}
}

// ValidateHandler checks the identifier's check digits.
// POST /v1/documents/:kind/validate - Any value gets an answer; malformed ones are not valid.
func (h *DocumentHandler) ValidateHandler(c *gin.Context) {
	kind, req, ok := h.bindCheck(c)
	if !ok {
		return
	}

	if req.ExceedsMaxLength() {
		if err := kind.Validate(); err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		c.JSON(http.StatusOK, dto.ValidateResponse{Kind: kind.String(), Valid: false})
		return
	}

	valid, err := h.documentUseCase.Validate(c.Request.Context(), kind, req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ValidateResponse{Kind: kind.String(), Valid: valid})
}

// MaskHandler formats the identifier for display.
// POST /v1/documents/:kind/mask - Returns 422 when the digit count does not match the kind.
func (h *DocumentHandler) MaskHandler(c *gin.Context) {
	kind, req, ok := h.bindValue(c)
	if !ok {
		return
	}

	masked, err := h.documentUseCase.Mask(c.Request.Context(), kind, req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MaskResponse{Kind: kind.String(), Masked: masked})
}

// UnmaskHandler strips everything but digits.
// POST /v1/documents/:kind/unmask
func (h *DocumentHandler) UnmaskHandler(c *gin.Context) {
	kind, req, ok := h.bindValue(c)
	if !ok {
		return
	}

	digits, err := h.documentUseCase.Unmask(c.Request.Context(), kind, req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.UnmaskResponse{Kind: kind.String(), Digits: digits})
}

// FormatHandler reports whether the value looks like a complete or partially typed identifier.
// POST /v1/documents/:kind/format - An empty value matches, as an empty input box does.
func (h *DocumentHandler) FormatHandler(c *gin.Context) {
	kind, req, ok := h.bindCheck(c)
	if !ok {
		return
	}

	if req.ExceedsMaxLength() {
		if err := kind.Validate(); err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		c.JSON(http.StatusOK, dto.FormatResponse{Kind: kind.String(), Match: false})
		return
	}

	match, err := h.documentUseCase.CheckFormat(c.Request.Context(), kind, req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.FormatResponse{Kind: kind.String(), Match: match})
}

// InspectHandler returns digits, masked form, validity and format match in one call.
// POST /v1/documents/:kind/inspect
func (h *DocumentHandler) InspectHandler(c *gin.Context) {
	kind, req, ok := h.bindValue(c)
	if !ok {
		return
	}

	inspection, err := h.documentUseCase.Inspect(c.Request.Context(), kind, req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapInspectResponse(inspection))
}

// GenerateHandler generates random valid identifiers for test data.
// POST /v1/documents/:kind/generate - Returns 422 when count exceeds the configured maximum.
func (h *DocumentHandler) GenerateHandler(c *gin.Context) {
	kind := parseKind(c)

	var req dto.GenerateRequest
	// An empty body, chunked or not, asks for a single unmasked identifier
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	values, err := h.documentUseCase.Generate(c.Request.Context(), kind, req.CountOrDefault(), req.Masked)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{
		Kind:   kind.String(),
		Count:  len(values),
		Values: values,
	})
}

// bindValue parses the kind and the value request, writing the error response on failure.
func (h *DocumentHandler) bindValue(c *gin.Context) (documentDomain.Kind, *dto.ValueRequest, bool) {
	kind := parseKind(c)

	var req dto.ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return "", nil, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return "", nil, false
	}

	return kind, &req, true
}

// bindCheck parses the kind and the check request. Only malformed JSON is rejected.
func (h *DocumentHandler) bindCheck(c *gin.Context) (documentDomain.Kind, *dto.CheckRequest, bool) {
	kind := parseKind(c)

	var req dto.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return "", nil, false
	}

	return kind, &req, true
}

func parseKind(c *gin.Context) documentDomain.Kind {
	return documentDomain.Kind(strings.ToLower(strings.TrimSpace(c.Param("kind"))))
}
