package cli

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrNoChoices is returned by Select when there is nothing to choose from.
var ErrNoChoices = errors.New("no choices")

// Select shows an arrow-key menu of choices and returns the picked one.
// Typing filters the menu by prefix.
func Select(label string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	sel := &promptui.Select{
		Label:    label,
		Items:    choices,
		Size:     len(choices),
		Searcher: PrefixSearcher(choices),
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", err
	}

	return value, nil
}

// PrefixSearcher matches menu entries starting with the typed input,
// ignoring case. Empty input matches everything.
func PrefixSearcher(choices []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if index < 0 || index >= len(choices) {
			return false
		}

		return strings.HasPrefix(strings.ToLower(choices[index]), strings.ToLower(input))
	}
}
