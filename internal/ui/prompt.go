package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrNotInteractive is returned when input is required but stdin is not a
// terminal.
var ErrNotInteractive = errors.New("input required but stdin is not a terminal")

// PromptPassword asks for a password without echoing it.
func PromptPassword(ctx context.Context, title, description string) (string, error) {
	var password string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(validatePassword),
		),
	).RunWithContext(ctx)
	if err != nil {
		return "", err
	}
	return password, nil
}

func validatePassword(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("password must not be empty")
	}
	return nil
}
