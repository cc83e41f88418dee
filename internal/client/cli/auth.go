package cli

import (
	"context"

	"github.com/dmitrijs2005/plaintheory/internal/client/services"
	"github.com/dmitrijs2005/plaintheory/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// SignUp prompts for credentials and creates an account. Unless the server
// confirms right away, the user is told to check their mail.
func (a *App) SignUp(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmed, err := a.auth.SignUp(ctx, email, password)
	if err != nil {
		return err
	}
	if confirmed {
		a.println(okStyle.Render("Account created, you can sign in now"))
		return nil
	}
	a.println(okStyle.Render(services.ConfirmationHint))
	return nil
}

func (a *App) Confirm(ctx context.Context, token string) error {
	if err := a.auth.ConfirmEmail(ctx, token); err != nil {
		return err
	}
	a.println(okStyle.Render("Email confirmed"))
	return nil
}

// SignIn prompts for credentials and enters the workspace. Server auth
// messages are shown verbatim.
func (a *App) SignIn(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, _, err := a.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	return a.enterWorkspace(ctx, sess)
}

// Logout revokes the session and returns to the landing page.
func (a *App) Logout(ctx context.Context) error {
	err := a.auth.SignOut(ctx, a.sess)
	a.sess = nil
	a.leaveWorkspace()
	a.current = PageLanding
	a.println(renderLanding(a.catalogue))
	return err
}
