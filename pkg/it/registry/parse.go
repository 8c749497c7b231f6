package registry

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// ParseCall reads "name arg1, arg2, ...". The text after the name is parsed as
// the body of a YAML flow sequence, so arguments may be numbers, quoted
// strings, lists or maps.
func ParseCall(text string) (Call, error) {
	text = strings.TrimSpace(text)
	name, rest := text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		name, rest = text[:i], text[i+1:]
	}
	if !validName(name) {
		return Call{}, errors.Wrapf(ErrInvalidName, "%q", name)
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return Call{Name: name}, nil
	}

	var args []any
	if err := yaml.Unmarshal([]byte("["+rest+"]"), &args); err != nil {
		return Call{}, errors.Wrapf(ErrInvalidArgument, "arguments of %s: %v", name, err)
	}
	return Call{Name: name, Args: args}, nil
}

// ParseCalls parses every entry of texts with ParseCall.
func ParseCalls(texts ...string) ([]Call, error) {
	calls := make([]Call, 0, len(texts))
	for i, text := range texts {
		c, err := ParseCall(text)
		if err != nil {
			return nil, errors.Wrapf(err, "step %d", i)
		}
		calls = append(calls, c)
	}
	return calls, nil
}
