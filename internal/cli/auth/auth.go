// Package auth implements the account commands: signup, login, logout, and
// whoami. Passwords are prompted interactively when not supplied so they
// stay out of shell history.
package auth

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/validation"
)

type SignupCmd struct {
	Email    string `arg:"" help:"Email address for the new account."`
	Password string `help:"Password (prompted when omitted)."`
}

func (c *SignupCmd) Run(ctx *cli.Context) error {
	if err := validation.Email(c.Email); err != nil {
		return err
	}

	password := c.Password
	if password == "" {
		var err error
		password, err = promptPassword("Choose a password", true)
		if err != nil {
			return err
		}
	}
	if err := validation.Password(password); err != nil {
		return err
	}

	user, err := ctx.Store.Register(c.Email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Welcome! Signed up and logged in as %s\n", user.Email)
	return nil
}

type LoginCmd struct {
	Email    string `arg:"" help:"Email address."`
	Password string `help:"Password (prompted when omitted)."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	password := c.Password
	if password == "" {
		var err error
		password, err = promptPassword("Password", false)
		if err != nil {
			return err
		}
	}

	user, err := ctx.Store.Authenticate(c.Email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", user.Email)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	user, err := ctx.Store.CurrentUser()
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	if err := ctx.Store.LogOut(); err != nil {
		return err
	}
	fmt.Printf("Logged out %s\n", user.Email)
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	user, err := ctx.Store.CurrentUser()
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s (level %d, %d points)\n", user.Email, user.Level(), user.Points)
	return nil
}

// promptPassword asks for a password without echoing it. With confirm set,
// the password must be typed twice.
func promptPassword(title string, confirm bool) (string, error) {
	var password, repeat string
	fields := []huh.Field{
		huh.NewInput().
			Title(title).
			EchoMode(huh.EchoModePassword).
			Value(&password),
	}
	if confirm {
		fields = append(fields, huh.NewInput().
			Title("Repeat password").
			EchoMode(huh.EchoModePassword).
			Value(&repeat))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return "", err
	}
	if confirm && password != repeat {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}
