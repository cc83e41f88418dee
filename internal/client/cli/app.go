package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/plaintheory/internal/client/client"
	"github.com/dmitrijs2005/plaintheory/internal/client/config"
	"github.com/dmitrijs2005/plaintheory/internal/client/models"
	"github.com/dmitrijs2005/plaintheory/internal/client/repositories/documents"
	"github.com/dmitrijs2005/plaintheory/internal/client/repositories/notes"
	"github.com/dmitrijs2005/plaintheory/internal/client/services"
	"github.com/dmitrijs2005/plaintheory/internal/client/session"
	"github.com/dmitrijs2005/plaintheory/internal/client/storage"
	"github.com/dmitrijs2005/plaintheory/internal/client/upload"
	"github.com/dmitrijs2005/plaintheory/internal/client/workspace"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
	"github.com/dmitrijs2005/plaintheory/internal/site"
)

// Page is the screen the REPL is on.
type Page string

const (
	PageLanding   Page = "landing"
	PageAuth      Page = "auth"
	PageWorkspace Page = "workspace"
)

type App struct {
	api       client.Client
	auth      services.AuthService
	guard     *session.Guard
	catalogue *site.Catalogue
	gesture   site.MastheadGesture
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer

	current Page
	sess    *session.Session
	user    models.User
	vm      *workspace.ViewModel
	docs    *documents.RemoteRepository
}

// NewApp wires the gRPC client, the auth service and the site catalogue.
func NewApp(c *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, c.LogLevel)

	api, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("grpc client: %w", err)
	}

	cat, err := site.Load()
	if err != nil {
		_ = api.Close()
		return nil, fmt.Errorf("site catalogue: %w", err)
	}

	return newApp(api, cat, log, os.Stdin, os.Stdout), nil
}

func newApp(api client.Client, cat *site.Catalogue, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		api:       api,
		auth:      services.NewAuthService(api, log),
		guard:     session.NewGuard(api, log),
		catalogue: cat,
		log:       log,
		reader:    bufio.NewReader(in),
		out:       out,
		current:   PageLanding,
	}
}

// Run shows the landing page and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	a.println(renderLanding(a.catalogue))
	a.println(dimStyle.Render("type 'help' for commands"))

	runREPL(ctx, a, a.prompt, a.reader)

	if a.sess != nil && a.sess.Valid() {
		_ = a.auth.SignOut(ctx, a.sess)
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) page() Page { return a.current }

func (a *App) prompt() string {
	switch a.current {
	case PageAuth:
		return "sign in> "
	case PageWorkspace:
		p := a.user.Email
		if a.vm != nil && a.vm.Editing() {
			p += " (editing)"
		}
		if a.vm != nil && a.vm.LastError() != "" {
			p += " !"
		}
		return p + "> "
	}
	return "plaintheory> "
}

// enterWorkspace runs the guard against s and, on success, builds a fresh
// view-model bound to it. Any failure returns to the landing page.
func (a *App) enterWorkspace(ctx context.Context, s *session.Session) error {
	u, err := a.guard.Check(ctx, s)
	if err != nil {
		a.leaveWorkspace()
		a.sess = nil
		a.current = PageLanding
		a.println(renderLanding(a.catalogue))
		return err
	}

	a.sess = s
	a.user = u
	a.vm = a.newWorkspace(s)
	a.current = PageWorkspace

	if err := a.vm.Load(ctx); err != nil {
		return err
	}
	a.println(okStyle.Render("Signed in as " + u.Email))
	return a.List(ctx)
}

func (a *App) newWorkspace(s *session.Session) *workspace.ViewModel {
	store := storage.NewStore(a.api, a.api)
	a.docs = documents.NewRemoteRepository(a.api, store, a.log)
	pipeline := upload.New(store, a.docs, a.log)
	pipeline.Observe(a.reportStage)
	return workspace.New(s, notes.NewRemoteRepository(a.api), a.docs, pipeline, store, a.log)
}

func (a *App) leaveWorkspace() {
	a.vm = nil
	a.docs = nil
	a.user = models.User{}
}

// checkSession leaves the workspace once its session has been invalidated,
// e.g. after a refresh was refused mid-call.
func (a *App) checkSession() {
	if a.current != PageWorkspace || (a.sess != nil && a.sess.Valid()) {
		return
	}
	a.leaveWorkspace()
	a.sess = nil
	a.current = PageLanding
	a.println(errorStyle.Render("Session expired, please sign in again"))
	a.println(renderLanding(a.catalogue))
}

func (a *App) reportStage(e upload.Event) {
	switch e.Stage {
	case upload.Uploading:
		a.println(dimStyle.Render("uploading..."))
	case upload.WritingMetadata:
		a.println(dimStyle.Render("saving metadata..."))
	}
}
