package prompt

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// Huh prompts on a terminal using huh form fields.
type Huh struct{}

// Ask implements Prompter.
func (Huh) Ask(question string) (string, error) {
	var answer string
	if err := huh.NewInput().Title(question).Value(&answer).Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// AskRequired implements Prompter.
func (Huh) AskRequired(question string) (string, error) {
	var answer string
	err := huh.NewInput().
		Title(question).
		Value(&answer).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("an answer is required")
			}
			return nil
		}).
		Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// Choice implements Prompter.
func (Huh) Choice(question string, options []string, def int) (string, error) {
	answer, err := defaultOption(options, def)
	if err != nil {
		return "", err
	}

	err = huh.NewSelect[string]().
		Title(question).
		Options(huh.NewOptions(options...)...).
		Value(&answer).
		Run()
	if err != nil {
		return "", err
	}
	return answer, nil
}
