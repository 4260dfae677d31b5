package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	documentUseCase "github.com/allisson/brdocs/internal/document/usecase"
)

// RunValidate checks the check digits of value and prints the verdict.
// Returns an error when the value is not valid so scripts can rely on the exit code.
func RunValidate(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	logger *slog.Logger,
	writer io.Writer,
	kindStr, value, format string,
) error {
	kind, err := parseKind(kindStr)
	if err != nil {
		return err
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	valid, err := useCase.Validate(ctx, kind, value)
	if err != nil {
		return fmt.Errorf("failed to validate %s: %w", kind, err)
	}

	if format == "json" {
		if err := outputJSON(writer, map[string]interface{}{
			"kind":  kind,
			"value": value,
			"valid": valid,
		}); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		status := "valid"
		if !valid {
			status = "invalid"
		}
		_, _ = fmt.Fprintf(writer, "%s %s: %s\n", kind, value, status)
	}

	logger.Debug("document validated", slog.String("kind", string(kind)), slog.Bool("valid", valid))

	if !valid {
		return fmt.Errorf("invalid %s: %s", kind, value)
	}
	return nil
}

// RunMask prints the display form of value.
func RunMask(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	writer io.Writer,
	kindStr, value, format string,
) error {
	kind, err := parseKind(kindStr)
	if err != nil {
		return err
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	masked, err := useCase.Mask(ctx, kind, value)
	if err != nil {
		return fmt.Errorf("failed to mask %s: %w", kind, err)
	}

	if format == "json" {
		return outputJSON(writer, map[string]interface{}{
			"kind":   kind,
			"masked": masked,
		})
	}

	_, _ = fmt.Fprintln(writer, masked)
	return nil
}

// RunUnmask prints the digit-only form of value.
func RunUnmask(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	writer io.Writer,
	kindStr, value, format string,
) error {
	kind, err := parseKind(kindStr)
	if err != nil {
		return err
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	digits, err := useCase.Unmask(ctx, kind, value)
	if err != nil {
		return fmt.Errorf("failed to unmask %s: %w", kind, err)
	}

	if format == "json" {
		return outputJSON(writer, map[string]interface{}{
			"kind":   kind,
			"digits": digits,
		})
	}

	_, _ = fmt.Fprintln(writer, digits)
	return nil
}

// RunGenerate prints count random valid identifiers, one per line in text format.
// Generated values are meant for tests and fixtures only.
func RunGenerate(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	logger *slog.Logger,
	writer io.Writer,
	kindStr string,
	count int,
	masked bool,
	format string,
) error {
	kind, err := parseKind(kindStr)
	if err != nil {
		return err
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	values, err := useCase.Generate(ctx, kind, count, masked)
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", kind, err)
	}

	logger.Debug("documents generated", slog.String("kind", string(kind)), slog.Int("count", len(values)))

	if format == "json" {
		return outputJSON(writer, map[string]interface{}{
			"kind":   kind,
			"count":  len(values),
			"values": values,
		})
	}

	for _, value := range values {
		_, _ = fmt.Fprintln(writer, value)
	}
	return nil
}

// RunCheckFormat reports whether value looks like a complete or partially typed identifier.
// A mismatch is reported in the output only; it is not an error.
func RunCheckFormat(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	writer io.Writer,
	kindStr, value, format string,
) error {
	kind, err := parseKind(kindStr)
	if err != nil {
		return err
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	match, err := useCase.CheckFormat(ctx, kind, value)
	if err != nil {
		return fmt.Errorf("failed to check %s format: %w", kind, err)
	}

	if format == "json" {
		return outputJSON(writer, map[string]interface{}{
			"kind":  kind,
			"value": value,
			"match": match,
		})
	}

	status := "matches"
	if !match {
		status = "does not match"
	}
	_, _ = fmt.Fprintf(writer, "%s %s: %s format\n", kind, value, status)
	return nil
}
