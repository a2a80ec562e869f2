package status

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCode is wrapped by every decoding failure.
var ErrInvalidCode = errors.New("invalid status code")

// compile-time guarantees for the supported encodings
var (
	_ encoding.TextMarshaler   = Code(0)
	_ encoding.TextUnmarshaler = (*Code)(nil)
	_ json.Marshaler           = Code(0)
	_ json.Unmarshaler         = (*Code)(nil)
	_ yaml.Marshaler           = Code(0)
	_ yaml.Unmarshaler         = (*Code)(nil)
)

// Parse reads a decimal status code. Any number in [0, 65535] is accepted,
// registered or not; anything else is rejected rather than clamped.
func Parse(s string) (Code, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}
	return Code(n), nil
}

// MarshalText encodes c as its decimal number.
func (c Code) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a decimal number.
func (c *Code) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalJSON encodes c as a JSON number.
func (c Code) MarshalJSON() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
// A JSON null leaves c unchanged.
func (c *Code) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCode, err)
		}
		return c.UnmarshalText([]byte(s))
	}
	return c.UnmarshalText(data)
}

// MarshalYAML encodes c as an integer scalar.
func (c Code) MarshalYAML() (any, error) { return int(c), nil }

// UnmarshalYAML accepts an integer or a quoted decimal scalar.
func (c *Code) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrInvalidCode, value.Line)
	}
	return c.UnmarshalText([]byte(value.Value))
}
