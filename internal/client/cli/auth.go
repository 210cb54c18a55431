package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/campuskart/internal/client/models"
	"github.com/dmitrijs2005/campuskart/internal/client/services"
	"github.com/dmitrijs2005/campuskart/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// notify reports an operation failure to the user in a single transient
// line, the CLI's equivalent of a toast notification.
func (a *App) notify(err error) {
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintln(a.out, "Error:", ve.Error())
		return
	}
	fmt.Fprintln(a.out, "Error:", err.Error())
}

// Register walks the user through the signup form and creates the account.
// On success the new user is logged in immediately.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	college, err := getSimpleText(a.reader, "Enter your college", a.out)
	if err != nil {
		return err
	}

	roleAnswer, err := getSimpleText(a.reader, "Do you want to sell items too? (y/n)", a.out)
	if err != nil {
		return err
	}
	role := models.RoleBuyer
	if roleAnswer == "y" || roleAnswer == "yes" {
		role = models.RoleBuyerAndSeller
	}

	user, err := a.identity.Register(ctx, services.RegisterParams{
		Name:     name,
		Email:    email,
		Password: string(password),
		College:  college,
		Role:     role,
	})
	if err != nil {
		a.notify(err)
		return err
	}

	fmt.Fprintf(a.out, "Account created successfully! Welcome, %s\n", user.Name)
	return nil
}

// Login prompts for credentials and authenticates. Unknown email and wrong
// password produce the same message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.identity.Authenticate(ctx, email, string(password))
	if err != nil {
		a.notify(err)
		return err
	}

	fmt.Fprintf(a.out, "Login successful! Welcome back, %s\n", user.Name)
	return nil
}

// Logout ends the active session. Safe to call when nobody is logged in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.identity.EndSession(ctx); err != nil {
		a.notify(err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out successfully!")
	return nil
}
