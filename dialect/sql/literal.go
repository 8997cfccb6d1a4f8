package sql

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/syssam/logicaldelete/dialect"
	"github.com/syssam/logicaldelete/schema/field"
)

// ErrInvalidLiteral is returned when a raw value cannot be written as a
// literal of the requested category.
var ErrInvalidLiteral = errors.New("sql: invalid literal")

var numericRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// FormatLiteral writes raw as an SQL literal of category c.
func FormatLiteral(c field.Category, raw string) (string, error) {
	switch c {
	case field.Numeric:
		v := strings.TrimSpace(raw)
		if !numericRe.MatchString(v) {
			return "", fmt.Errorf("%w: %q is not numeric", ErrInvalidLiteral, raw)
		}
		return v, nil
	case field.String:
		return Quote(raw), nil
	case field.Boolean:
		b, err := parseBool(raw)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	default:
		return "", fmt.Errorf("%w: category %s", ErrInvalidLiteral, c)
	}
}

// FormatDialectLiteral is like FormatLiteral, but quotes strings for
// dialect d.
func FormatDialectLiteral(d string, c field.Category, raw string) (string, error) {
	if c == field.String {
		return QuoteDialect(d, raw), nil
	}
	return FormatLiteral(c, raw)
}

// CriteriaLiteral is like FormatDialectLiteral, but writes booleans as 1/0
// for dialects that compare them as integers.
func CriteriaLiteral(d string, c field.Category, raw string) (string, error) {
	if c != field.Boolean || !dialect.BoolAsInt(d) {
		return FormatDialectLiteral(d, c, raw)
	}
	b, err := parseBool(raw)
	if err != nil {
		return "", err
	}
	if b {
		return "1", nil
	}
	return "0", nil
}

// Quote returns s as a single-quoted SQL string literal.
func Quote(s string) string {
	return "'" + escapeStringValue(s) + "'"
}

// QuoteDialect is like Quote, but also doubles backslashes on MySQL, where
// they start escape sequences unless NO_BACKSLASH_ESCAPES is set.
func QuoteDialect(d, s string) string {
	if dialect.Normalize(d) == dialect.MySQL && strings.Contains(s, `\`) {
		s = strings.ReplaceAll(s, `\`, `\\`)
	}
	return Quote(s)
}

// escapeStringValue doubles single quotes.
func escapeStringValue(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}
	return strings.ReplaceAll(s, "'", "''")
}

func parseBool(raw string) (bool, error) {
	v := strings.TrimSpace(raw)
	switch strings.ToLower(v) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not boolean", ErrInvalidLiteral, raw)
	}
	return b, nil
}
