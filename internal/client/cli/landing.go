package cli

import (
	"context"
	"fmt"
)

// Masthead counts one activation of the hidden gesture. The fifth opens the
// credential form, or the workspace when a session is still held.
func (a *App) Masthead(ctx context.Context) error {
	if !a.gesture.Click() {
		a.println(dimStyle.Render(fmt.Sprintf("%d/5", a.gesture.Progress())))
		return nil
	}

	if a.sess != nil && a.sess.Valid() {
		return a.enterWorkspace(ctx, a.sess)
	}
	a.current = PageAuth
	a.println(titleStyle.Render("Sign in"))
	a.println(dimStyle.Render("signin | signup | confirm <token> | home"))
	return nil
}

func (a *App) Articles(context.Context) error {
	a.gesture.Reset()
	a.println(renderLanding(a.catalogue))
	return nil
}

func (a *App) Read(_ context.Context, slug string) error {
	a.gesture.Reset()
	if slug == "" {
		return fmt.Errorf("usage: read <slug>")
	}
	art, ok := a.catalogue.Article(slug)
	if !ok {
		return fmt.Errorf("no article %q", slug)
	}
	a.println(renderArticle(art))
	return nil
}

// Home returns to the landing page. The session, if any, is kept.
func (a *App) Home(context.Context) error {
	a.gesture.Reset()
	a.current = PageLanding
	a.println(renderLanding(a.catalogue))
	return nil
}
