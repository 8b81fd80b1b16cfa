package cli

import (
	"errors"
	"os"

	"github.com/manifoldco/promptui"
)

var errEmptyInput = errors.New("you must enter something")

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}

// PromptString asks for a line of input. The prompt won't accept the
// answer until validate returns nil; a nil validate only rejects empty
// input.
func PromptString(label string, validate func(string) error) (string, error) {
	if validate == nil {
		validate = NonEmpty
	}

	prompt := promptui.Prompt{
		Label:    label,
		Validate: promptui.ValidateFunc(validate),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	return prompt.Run()
}

// NonEmpty rejects the empty string.
func NonEmpty(s string) error {
	if len(s) == 0 {
		return errEmptyInput
	}

	return nil
}
