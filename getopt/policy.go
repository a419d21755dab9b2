package getopt

import (
	"fmt"
	"strconv"
	"strings"
)

// ArgPolicy tells whether a long option takes an argument. The numeric values
// match the has_arg field of GNU getopt_long.
type ArgPolicy int

const (
	NoArgument ArgPolicy = iota
	RequiredArgument
	OptionalArgument
)

// Valid reports whether p is one of the three recognized policies.
func (p ArgPolicy) Valid() bool {
	return p == NoArgument || p == RequiredArgument || p == OptionalArgument
}

func (p ArgPolicy) String() string {
	switch p {
	case NoArgument:
		return "none"
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	}
	return "ArgPolicy(" + strconv.Itoa(int(p)) + ")"
}

// ParseArgPolicy accepts the policy names used in option tables ("none",
// "required", "optional") and the GNU spellings ("no_argument", ...).
func ParseArgPolicy(s string) (ArgPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "no", "no_argument":
		return NoArgument, nil
	case "required", "required_argument":
		return RequiredArgument, nil
	case "optional", "optional_argument":
		return OptionalArgument, nil
	}
	return 0, fmt.Errorf("unknown argument policy %q", s)
}

// UnmarshalYAML allows has_arg to be given as int (0, 1, 2) or as a name.
// Integers are not range checked here; NewLongOpt rejects unknown values.
func (p *ArgPolicy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*p = NoArgument
		return nil
	case int:
		*p = ArgPolicy(t)
		return nil
	case string:
		parsed, err := ParseArgPolicy(t)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	default:
		return fmt.Errorf("has_arg must be string or int, got %T", v)
	}
}

// MarshalYAML emits the policy name for known values, otherwise the raw int.
func (p ArgPolicy) MarshalYAML() (interface{}, error) {
	if p.Valid() {
		return p.String(), nil
	}
	return int(p), nil
}

// OptionValue is the val field of an option table entry. YAML accepts an int
// or a single character, which is stored as its code point (val: h == val: 104).
type OptionValue int

// UnmarshalYAML allows val to be given as int or as a one-character string.
func (v *OptionValue) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = 0
		return nil
	case int:
		*v = OptionValue(t)
		return nil
	case string:
		runes := []rune(t)
		if len(runes) != 1 {
			return fmt.Errorf("val must be a single character, got %q", t)
		}
		*v = OptionValue(runes[0])
		return nil
	default:
		return fmt.Errorf("val must be string or int, got %T", raw)
	}
}
