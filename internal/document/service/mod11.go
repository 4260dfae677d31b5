package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/allisson/brdocs/internal/document/domain"
)

// layout describes one identifier type: its digit count, the weight table of each
// check-digit pass and how digits are grouped for display.
type layout struct {
	kind          domain.Kind
	length        int
	firstWeights  []int
	secondWeights []int
	groups        []int
	separators    []string
}

type mod11Identifier struct {
	layout  layout
	formats []*regexp.Regexp
	source  DigitSource
}

// newMod11Identifier builds an identifier for l. It panics if the layout is inconsistent,
// which can only happen when the package-level layouts are edited incorrectly.
func newMod11Identifier(l layout, opts ...Option) *mod11Identifier {
	if len(l.firstWeights) != l.length-2 || len(l.secondWeights) != l.length-1 {
		panic(fmt.Sprintf("%s: weight tables do not match length %d", l.kind, l.length))
	}
	if len(l.separators) != len(l.groups)-1 {
		panic(fmt.Sprintf("%s: %d groups need %d separators", l.kind, len(l.groups), len(l.groups)-1))
	}

	m := &mod11Identifier{
		layout:  l,
		formats: formatPatterns(l),
		source:  defaultDigitSource,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Kind returns the identifier type.
func (m *mod11Identifier) Kind() domain.Kind {
	return m.layout.kind
}

// Length returns the number of digits of an unmasked value.
func (m *mod11Identifier) Length() int {
	return m.layout.length
}

// Validate recomputes both check digits and compares them with the trailing digits.
func (m *mod11Identifier) Validate(raw string) bool {
	normalized := Normalize(raw)
	if len(normalized) != m.layout.length {
		return false
	}

	digits := toDigits(normalized)
	if allSameDigits(digits) {
		return false
	}

	n := m.layout.length
	first := CheckDigit(digits[:n-2], m.layout.firstWeights)
	second := CheckDigit(digits[:n-1], m.layout.secondWeights)

	return digits[n-2] == first && digits[n-1] == second
}

// Mask inserts the display separators into the normalized value.
func (m *mod11Identifier) Mask(raw string) (string, error) {
	normalized := Normalize(raw)
	if len(normalized) != m.layout.length {
		return "", &domain.FormatError{Kind: m.layout.kind, RequiredLength: m.layout.length}
	}

	var b strings.Builder
	b.Grow(len(normalized) + len(m.layout.separators))

	offset := 0
	for i, size := range m.layout.groups {
		if i > 0 {
			b.WriteString(m.layout.separators[i-1])
		}
		b.WriteString(normalized[offset : offset+size])
		offset += size
	}

	return b.String(), nil
}

// Unmask returns the digit-only form of raw.
func (m *mod11Identifier) Unmask(raw string) string {
	return Normalize(raw)
}

// Generate draws a random prefix and appends both check digits. A prefix whose
// result would be a single repeated digit is redrawn.
func (m *mod11Identifier) Generate() string {
	n := m.layout.length
	digits := make([]int, n)

	for {
		for i := 0; i < n-2; i++ {
			digits[i] = m.source()
		}
		digits[n-2] = CheckDigit(digits[:n-2], m.layout.firstWeights)
		digits[n-1] = CheckDigit(digits[:n-1], m.layout.secondWeights)

		if !allSameDigits(digits) {
			return fromDigits(digits)
		}
	}
}

// IsValidFormat matches raw against the masked, unmasked and partial patterns.
func (m *mod11Identifier) IsValidFormat(raw string) bool {
	for _, re := range m.formats {
		if re.MatchString(raw) {
			return true
		}
	}
	return false
}

// formatPatterns derives the three accepted input shapes from the layout:
// fully masked, fully unmasked, and partially typed (each group may hold fewer
// digits and trailing groups may be missing).
func formatPatterns(l layout) []*regexp.Regexp {
	var masked, partial strings.Builder

	masked.WriteString("^")
	partial.WriteString("^")
	for i, size := range l.groups {
		if i == 0 {
			fmt.Fprintf(&masked, `\d{%d}`, size)
			fmt.Fprintf(&partial, `\d{0,%d}`, size)
			continue
		}
		sep := regexp.QuoteMeta(l.separators[i-1])
		fmt.Fprintf(&masked, `%s\d{%d}`, sep, size)
		fmt.Fprintf(&partial, `(%s\d{0,%d})?`, sep, size)
	}
	masked.WriteString("$")
	partial.WriteString("$")

	return []*regexp.Regexp{
		regexp.MustCompile(masked.String()),
		regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, l.length)),
		regexp.MustCompile(partial.String()),
	}
}
