package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type RegisterCmd struct {
	Name     string `help:"Display name."`
	Email    string `help:"Email address."`
	Password string `help:"Password (prompted interactively when omitted)."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	if c.Name == "" || c.Email == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&c.Name),
				huh.NewInput().Title("Email").Value(&c.Email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&c.Password),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("registration form error: %w", err)
		}
	}

	sess, err := ctx.Session.Register(c.Name, c.Email, c.Password)
	if err != nil {
		return err
	}

	fmt.Printf("Welcome to HabitFlow, %s! You are now logged in.\n", sess.Name)
	fmt.Println("Three starter habits were added to get you going.")
	return nil
}

type LoginCmd struct {
	Email    string `help:"Email address."`
	Password string `help:"Password (prompted interactively when omitted)."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if c.Email == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Email").Value(&c.Email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&c.Password),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("login form error: %w", err)
		}
	}

	sess, err := ctx.Session.Login(c.Email, c.Password)
	if err != nil {
		return err
	}

	fmt.Printf("Welcome back, %s!\n", sess.Name)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if _, err := ctx.Session.Current(); err != nil {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := ctx.Session.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out. Your habits stay saved for next time.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s>\n", sess.Name, sess.Email)
	return nil
}

type ProfileCmd struct {
	Name  string `help:"New display name."`
	Email string `help:"New email address."`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	if c.Name == "" && c.Email == "" {
		return fmt.Errorf("nothing to update (use --name and/or --email)")
	}

	sess, err := ctx.Session.UpdateProfile(c.Name, c.Email)
	if err != nil {
		return err
	}

	fmt.Printf("Profile updated: %s <%s>\n", sess.Name, sess.Email)
	return nil
}
