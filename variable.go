package envvar

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Variable is the resolved value of a single environment variable
type Variable struct {
	name      string
	raw       string
	defaulted bool
}

// blank is the set of characters stripped before presence and boolean checks
const blank = " \t\n\r\x00\x0B"

// numeric matches decimal integers, floats and scientific notation, with optional surrounding whitespace
var numeric = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?[ \t\n\r\v\f]*$`)

// Name returns the variable name
func (v Variable) Name() string {
	return v.name
}

// IsDefault reports whether the value was substituted because the variable was not defined
func (v Variable) IsDefault() bool {
	return v.defaulted
}

// String returns the raw value unchanged
func (v Variable) String() string {
	return v.raw
}

// HasValue reports whether the value is meaningfully set.
// Values like "0", "false" and "-1" count as set; blank strings and "null" do not.
func (v Variable) HasValue() bool {
	switch strings.ToLower(strings.Trim(v.raw, blank)) {
	case "", "null":
		return false
	default:
		return true
	}
}

// Int converts the value to an integer, truncating any fractional part toward zero
func (v Variable) Int() (int, error) {
	if !numeric.MatchString(v.raw) {
		return 0, invalid(v, TargetInteger, nil)
	}
	s := strings.TrimSpace(v.raw)

	if i, err := strconv.ParseInt(s, 10, strconv.IntSize); err == nil {
		return int(i), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalid(v, TargetInteger, err)
	}
	f = math.Trunc(f)
	// float64(math.MaxInt) rounds up to 2^63, hence >=
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, invalid(v, TargetInteger, strconv.ErrRange)
	}
	return int(f), nil
}

// Bool converts the value to a boolean.
// Accepts 1, true, on, yes and 0, false, off, no or an empty value, case-insensitive.
func (v Variable) Bool() (bool, error) {
	switch strings.ToLower(strings.Trim(v.raw, blank)) {
	case "1", "true", "on", "yes":
		return true, nil
	case "0", "false", "off", "no", "":
		return false, nil
	default:
		return false, invalid(v, TargetBoolean, nil)
	}
}

// Explain returns a description of where the value came from
func (v Variable) Explain() string {
	source := "environment"
	if v.defaulted {
		source = "default"
	}
	explanation := "Variable: " + v.name + "\n"
	explanation += "Source: " + source + "\n"
	explanation += "Raw Value: " + v.raw + "\n"
	if !v.HasValue() {
		explanation += "Has Value: no\n"
	}
	return explanation
}
