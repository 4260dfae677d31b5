package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	registrationDomain "github.com/allisson/brdocs/internal/registration/domain"
	"github.com/allisson/brdocs/internal/registration/http/dto"
	registrationUseCase "github.com/allisson/brdocs/internal/registration/usecase"
)

// RunCheckEmail prints how email relates to the registration domain.
func RunCheckEmail(
	ctx context.Context,
	useCase registrationUseCase.RegistrationUseCase,
	writer io.Writer,
	email, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	inspection := useCase.InspectEmail(ctx, email)

	if format == "json" {
		return outputJSON(writer, dto.MapEmailInspectionResponse(inspection))
	}

	_, _ = fmt.Fprintf(writer, "Email:       %s\n", inspection.Email)
	_, _ = fmt.Fprintf(writer, "Normalized:  %s\n", inspection.Normalized)
	_, _ = fmt.Fprintf(writer, "Valid:       %t\n", inspection.Valid)
	if inspection.Valid {
		_, _ = fmt.Fprintf(writer, "Domain:      %s\n", inspection.Domain)
		_, _ = fmt.Fprintf(writer, "Local part:  %s\n", inspection.LocalPart)
		_, _ = fmt.Fprintf(writer, "Registered:  %t\n", inspection.FromRegistrationDomain)
	}

	if !inspection.Valid {
		return fmt.Errorf("invalid email: %s", email)
	}
	return nil
}

// RunCheckPassword prints every strength rule password breaks.
// Returns an error when at least one rule is broken.
func RunCheckPassword(
	ctx context.Context,
	useCase registrationUseCase.RegistrationUseCase,
	writer io.Writer,
	password, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	check := useCase.CheckPassword(ctx, password)

	if format == "json" {
		if err := outputJSON(writer, dto.MapPasswordCheckResponse(check)); err != nil {
			return err
		}
	} else {
		if check.Valid {
			_, _ = fmt.Fprintf(writer, "Status: PASSED ✓\n")
		} else {
			_, _ = fmt.Fprintf(writer, "Status: FAILED ❌\n\nViolations:\n")
			for _, violation := range check.Violations {
				_, _ = fmt.Fprintf(writer, "  - %s\n", violation)
			}
		}
	}

	if !check.Valid {
		return fmt.Errorf("password does not meet strength requirements")
	}
	return nil
}

// RunRegister processes a company registration and prints its report.
// The password is never written to the output or the logs.
func RunRegister(
	ctx context.Context,
	useCase registrationUseCase.RegistrationUseCase,
	logger *slog.Logger,
	writer io.Writer,
	email, password, cnpj string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	input := &registrationDomain.Input{
		Email:    email,
		Password: password,
		CNPJ:     cnpj,
	}

	logger.Info("processing registration", slog.String("email", email))

	report, err := useCase.Process(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to process registration: %w", err)
	}

	if format == "json" {
		if err := outputJSON(writer, dto.MapReportResponse(report)); err != nil {
			return err
		}
	} else {
		outputReportText(writer, report)
	}

	logger.Info("registration processed",
		slog.String("id", report.ID.String()),
		slog.Int("total", report.Summary.Total),
		slog.Int("valid", report.Summary.Valid),
		slog.Bool("integrity", report.Integrity.Valid),
	)

	return nil
}

// outputReportText outputs the registration report in human-readable text format.
func outputReportText(writer io.Writer, report *registrationDomain.Report) {
	_, _ = fmt.Fprintf(writer, "Registration Report\n")
	_, _ = fmt.Fprintf(writer, "===================\n\n")
	_, _ = fmt.Fprintf(writer, "ID:         %s\n", report.ID)
	_, _ = fmt.Fprintf(writer, "Created At: %s\n\n", report.CreatedAt.Format("2006-01-02 15:04:05"))

	_, _ = fmt.Fprintf(writer, "Email:      %s\n", report.Profile.Email)
	_, _ = fmt.Fprintf(writer, "Domain:     %s\n", report.Profile.Domain)
	_, _ = fmt.Fprintf(writer, "CNPJ:       %s\n\n", report.Profile.MaskedCNPJ)

	_, _ = fmt.Fprintf(writer, "Test Record:\n")
	_, _ = fmt.Fprintf(writer, "  Email:    %s\n", report.TestRecord.Email)
	_, _ = fmt.Fprintf(writer, "  CNPJ:     %s\n\n", report.TestRecord.MaskedCNPJ)

	_, _ = fmt.Fprintf(writer, "Batch:\n")
	for _, item := range report.Batch {
		_, _ = fmt.Fprintf(writer, "  %d. %s %s valid=%t\n", item.Index+1, item.Email, item.CNPJ, item.Valid)
	}

	_, _ = fmt.Fprintf(writer, "\nTotal:      %d\n", report.Summary.Total)
	_, _ = fmt.Fprintf(writer, "Valid:      %d\n", report.Summary.Valid)
	_, _ = fmt.Fprintf(writer, "Invalid:    %d\n\n", report.Summary.Invalid)

	_, _ = fmt.Fprintf(writer, "Suspicious Emails: %d\n", report.Audit.SuspiciousEmails)
	_, _ = fmt.Fprintf(writer, "Duplicate CNPJs:   %d\n\n", report.Audit.DuplicateCNPJs)

	if report.Integrity.Valid {
		_, _ = fmt.Fprintf(writer, "Status: PASSED ✓\n")
		return
	}

	_, _ = fmt.Fprintf(writer, "Integrity Errors:\n")
	for _, e := range report.Integrity.Errors {
		_, _ = fmt.Fprintf(writer, "  - %s\n", e)
	}
	_, _ = fmt.Fprintf(writer, "\nStatus: FAILED ❌\n")
}
