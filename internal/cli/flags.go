package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// catalogValue is a pflag.Value accepting only labels from a fixed catalog.
// Matching is lenient: a value also matches a label that contains it
// case-insensitively, provided exactly one label does. This lets
// "--subject biology" select "🧬 Biology".
type catalogValue struct {
	name    string
	options []string
	value   string
}

var _ pflag.Value = (*catalogValue)(nil)

func newCatalogValue(name string, options []string) *catalogValue {
	return &catalogValue{name: name, options: options}
}

func (v *catalogValue) String() string { return v.value }

func (v *catalogValue) Type() string { return v.name }

func (v *catalogValue) Set(s string) error {
	label, err := matchCatalog(s, v.options)
	if err != nil {
		return err
	}
	v.value = label
	return nil
}

// matchCatalog resolves input against options: exact label first, then a
// unique case-insensitive substring match.
func matchCatalog(input string, options []string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("value must not be empty")
	}
	for _, opt := range options {
		if opt == input {
			return opt, nil
		}
	}

	needle := strings.ToLower(input)
	var matches []string
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt), needle) {
			matches = append(matches, opt)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("%q matches no option (see 'homework catalog')", input)
	default:
		return "", fmt.Errorf("%q is ambiguous: %s", input, strings.Join(matches, ", "))
	}
}
