package wire

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/kbukum/gdax/errors"
)

// Float is a float64 that travels as a JSON string.
type Float float64

// Float64 returns the value as a float64.
func (f Float) Float64() float64 {
	return float64(f)
}

// String renders the value in the shortest form that parses back to the same float.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

// UnmarshalJSON decodes a JSON string holding a base-10 float. JSON null leaves f unchanged.
func (f *Float) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Decodef("expected a string-encoded float, got %s", data)
	}
	v, err := ParseFloat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalJSON encodes the value back as a JSON string.
func (f Float) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// ParseFloat parses s as a base-10 float64. Hex floats and digit
// separators are rejected.
func ParseFloat(s string) (Float, error) {
	if strings.ContainsRune(s, '_') || hasBasePrefix(s) {
		return 0, errors.Decodef("invalid float %q", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Decodef("invalid float %q", s).WithCause(err)
	}
	return Float(v), nil
}

func hasBasePrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
