package switchcase

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/switchcase/pkg/errors"
)

// Def is a parsed action definition: an action name plus positional
// arguments, ready to hand to a Runner.
type Def struct {
	Action string
	Args   []string
}

// ParseDef parses a raw case definition into a Def.
//
// A []string or []interface{} definition is taken as [action, args...] with
// the arguments passed through verbatim; non-string sequence elements are
// stringified. A string definition is split on whitespace, first field being
// the action name. Empty definitions of either form are rejected with
// INVALID_VALUE; any other type is rejected with INVALID_TYPE.
func ParseDef(definition interface{}) (Def, error) {
	switch v := definition.(type) {
	case []string:
		if len(v) == 0 {
			return Def{}, errors.New(errors.ErrInvalidValue, "case definition list cannot be empty")
		}
		args := make([]string, len(v)-1)
		copy(args, v[1:])
		return Def{Action: v[0], Args: args}, nil

	case []interface{}:
		if len(v) == 0 {
			return Def{}, errors.New(errors.ErrInvalidValue, "case definition list cannot be empty")
		}
		args := make([]string, 0, len(v)-1)
		for _, elem := range v[1:] {
			args = append(args, stringify(elem))
		}
		return Def{Action: stringify(v[0]), Args: args}, nil

	case string:
		fields := strings.Fields(v)
		if len(fields) == 0 {
			return Def{}, errors.New(errors.ErrInvalidValue, "case definition string cannot be empty")
		}
		return Def{Action: fields[0], Args: fields[1:]}, nil

	default:
		return Def{}, errors.Newf(errors.ErrInvalidType,
			"case definition must be a string or list, got %T", definition)
	}
}

// stringify converts a value to its string form for matching and arguments
func stringify(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
