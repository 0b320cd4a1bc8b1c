// ABOUTME: Data-driven field validation engine for JSON records
// ABOUTME: Evaluates ordered field descriptors and reports the first violation

package schema

import (
	"fmt"
	"math"
	"regexp"
	"time"
	"unicode/utf8"
)

// Type identifies the expected shape of a field value.
type Type int

const (
	String Type = iota
	Number
	Date
	List
)

// String returns the lowercase name of the type for messages.
func (t Type) String() string {
	switch t {
	case String:
		return "string"
	case Number:
		return "number"
	case Date:
		return "date"
	case List:
		return "array"
	default:
		return "unknown"
	}
}

// Violation is a single failed rule. Validate returns the first one
// encountered in declaration order and stops; callers surface Message
// verbatim.
type Violation struct {
	Field   string
	Message string
}

func (v *Violation) Error() string {
	return v.Message
}

// Kind identifies a constraint variety within a field descriptor.
type Kind int

const (
	KindLength Kind = iota
	KindRange
	KindInteger
	KindPattern
	KindOneOf
	KindPast
)

// Rule is a single constraint on a field value. Rules are evaluated in the
// order they are declared on the field.
type Rule struct {
	Kind    Kind
	Min     float64
	Max     float64
	Pattern *regexp.Regexp
	OneOf   []string
	Message string // optional override for the default message
}

// Field describes validation for one named field.
//
// A field absent from the record fails only if Required is set; otherwise
// the remaining rules are skipped. When AllowEmpty is set, an empty string
// or explicit null also bypasses the rules.
type Field struct {
	Name       string
	Type       Type
	Elem       Type // element type when Type is List
	Required   bool
	AllowEmpty bool
	Rules      []Rule

	// Message overrides for the implicit checks.
	RequiredMessage string
	TypeMessage     string
}

// Schema is an ordered list of field descriptors. Order matters: validation
// walks the descriptors front to back and stops at the first violation.
type Schema []Field

// Length returns a string-length constraint. A bound of -1 is open.
func Length(min, max int, message string) Rule {
	return Rule{Kind: KindLength, Min: float64(min), Max: float64(max), Message: message}
}

// Range returns a numeric range constraint (inclusive).
func Range(min, max float64, message string) Rule {
	return Rule{Kind: KindRange, Min: min, Max: max, Message: message}
}

// Integer returns a constraint rejecting numbers with a fractional part.
func Integer(message string) Rule {
	return Rule{Kind: KindInteger, Message: message}
}

// Pattern returns a regular-expression constraint on string values.
func Pattern(re *regexp.Regexp, message string) Rule {
	return Rule{Kind: KindPattern, Pattern: re, Message: message}
}

// OneOf returns an enumerated allowed-value constraint.
func OneOf(values []string, message string) Rule {
	return Rule{Kind: KindOneOf, OneOf: values, Message: message}
}

// Past returns a constraint requiring a date strictly before the current time.
func Past(message string) Rule {
	return Rule{Kind: KindPast, Message: message}
}

// emailPattern is intentionally loose: one @, something on both sides, and a
// dotted domain. Full RFC 5322 parsing buys nothing at this boundary.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email returns a syntactic email constraint.
func Email(message string) Rule {
	return Rule{Kind: KindPattern, Pattern: emailPattern, Message: message}
}

// Validate checks rec against the schema and returns nil on acceptance or
// the first *Violation in declaration order. The record is never mutated.
func (s Schema) Validate(rec map[string]any) error {
	for i := range s {
		f := &s[i]

		val, present := rec[f.Name]
		if !present || val == nil {
			if f.Required {
				return f.violation(f.RequiredMessage, `%q is required`, f.Name)
			}
			continue
		}

		if f.AllowEmpty {
			if str, ok := val.(string); ok && str == "" {
				continue
			}
		}

		if err := f.check(val); err != nil {
			return err
		}
	}

	return nil
}

// check runs the type check and the declared rules against a present value.
func (f *Field) check(val any) error {
	switch f.Type {
	case String:
		str, ok := val.(string)
		if !ok {
			return f.violation(f.TypeMessage, `%q must be a %s`, f.Name, f.Type)
		}
		return f.checkString(str)

	case Number:
		num, ok := asNumber(val)
		if !ok {
			return f.violation(f.TypeMessage, `%q must be a %s`, f.Name, f.Type)
		}
		return f.checkNumber(num)

	case Date:
		str, ok := val.(string)
		if !ok {
			return f.violation(f.TypeMessage, `%q must be a valid date`, f.Name)
		}
		t, err := ParseDate(str)
		if err != nil {
			return f.violation(f.TypeMessage, `%q must be a valid date`, f.Name)
		}
		return f.checkDate(t)

	case List:
		items, ok := val.([]any)
		if !ok {
			return f.violation(f.TypeMessage, `%q must be an %s`, f.Name, f.Type)
		}
		return f.checkList(items)

	default:
		return f.violation("", `%q has an unknown type`, f.Name)
	}
}

func (f *Field) checkString(str string) error {
	for _, r := range f.Rules {
		switch r.Kind {
		case KindLength:
			// Bounds are in characters, not bytes.
			length := utf8.RuneCountInString(str)
			if r.Min >= 0 && length < int(r.Min) {
				return f.violation(r.Message, `%q length must be at least %d characters long`, f.Name, int(r.Min))
			}
			if r.Max >= 0 && length > int(r.Max) {
				return f.violation(r.Message, `%q length must be less than or equal to %d characters long`, f.Name, int(r.Max))
			}
		case KindPattern:
			if !r.Pattern.MatchString(str) {
				return f.violation(r.Message, `%q fails to match the required pattern`, f.Name)
			}
		case KindOneOf:
			if !contains(r.OneOf, str) {
				return f.violation(r.Message, `%q must be one of %v`, f.Name, r.OneOf)
			}
		}
	}
	return nil
}

func (f *Field) checkNumber(num float64) error {
	for _, r := range f.Rules {
		switch r.Kind {
		case KindRange:
			if num < r.Min || num > r.Max {
				return f.violation(r.Message, `%q must be between %g and %g`, f.Name, r.Min, r.Max)
			}
		case KindInteger:
			if num != math.Trunc(num) {
				return f.violation(r.Message, `%q must be an integer`, f.Name)
			}
		}
	}
	return nil
}

func (f *Field) checkDate(t time.Time) error {
	for _, r := range f.Rules {
		if r.Kind != KindPast {
			continue
		}
		if !t.Before(time.Now()) {
			return f.violation(r.Message, `%q must be in the past`, f.Name)
		}
	}
	return nil
}

func (f *Field) checkList(items []any) error {
	if len(items) == 0 {
		return f.violation(f.TypeMessage, `%q must not be empty`, f.Name)
	}
	for _, item := range items {
		switch f.Elem {
		case String:
			if _, ok := item.(string); !ok {
				return f.violation(f.TypeMessage, `%q must contain only strings`, f.Name)
			}
		case Number:
			if _, ok := asNumber(item); !ok {
				return f.violation(f.TypeMessage, `%q must contain only numbers`, f.Name)
			}
		}
	}
	return nil
}

// violation builds a Violation using the override message when provided,
// falling back to the formatted default.
func (f *Field) violation(override, format string, args ...any) *Violation {
	msg := override
	if msg == "" {
		msg = fmt.Sprintf(format, args...)
	}
	return &Violation{Field: f.Name, Message: msg}
}

// dateLayouts are accepted in order. JSON bodies carry dates either as
// plain calendar dates or full RFC 3339 timestamps.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// ParseDate parses a date string in one of the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// asNumber normalizes the numeric types a record value can arrive as.
// JSON decoding produces float64; callers constructing records directly
// may pass int or int64.
func asNumber(val any) (float64, bool) {
	switch n := val.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
