package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/animalspotter/internal/common"
)

var (
	askLine     = AskLine
	askPassword = AskPassword
)

// askCredentials prompts for a username and then a password.
func (a *App) askCredentials() (string, []byte, error) {
	userName, err := askLine(a.reader, "Username", a.out)
	if err != nil {
		return "", nil, err
	}

	password, err := askPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}

	return userName, password, nil
}

// Register prompts the user for a username and password and attempts to
// create a new account via the AuthService. Registration does not sign in.
//
// The password byte slice is wiped before returning. Any I/O or service
// error is reported to the user and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.askCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintln(a.out, "Account created, use 'login' to sign in")
	return nil
}

// Login prompts for credentials and signs in. On success the username is
// shown in the prompt. A failed attempt keeps any earlier session.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.askCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, userName, password); err != nil {
		a.logger.Debug(ctx, "login failed", "error", err)
		a.report(err)
		return err
	}

	a.userName = userName
	a.lastList = nil
	fmt.Fprintf(a.out, "Signed in as %s\n", userName)
	return nil
}
