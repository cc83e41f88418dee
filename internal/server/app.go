// Package server wires the backend together: database, migrations, blob
// store, services and the gRPC and HTTP servers, with graceful shutdown on
// SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/plaintheory/internal/logging"
	"github.com/dmitrijs2005/plaintheory/internal/server/config"
	"github.com/dmitrijs2005/plaintheory/internal/server/httpserver"
	"github.com/dmitrijs2005/plaintheory/internal/server/mail"
	"github.com/dmitrijs2005/plaintheory/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/plaintheory/internal/server/services"
	"github.com/dmitrijs2005/plaintheory/internal/server/storage"
	"github.com/dmitrijs2005/plaintheory/internal/site"

	gs "github.com/dmitrijs2005/plaintheory/internal/server/grpc"
)

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	grpcServer *gs.GRPCServer
	httpServer *httpserver.HTTPServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	catalogue, err := site.Load()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("site catalogue error: %w", err)
	}

	blobs := storage.NewS3Store(c)

	us := services.NewUserService(db, rm, mail.NewLogMailer(logger), logger, c)
	ns := services.NewNotesService(db, rm, blobs, logger)
	ds := services.NewDocumentsService(db, rm, blobs, logger, c)
	ss := services.NewStorageService(blobs, logger, c)

	return &App{
		config:     c,
		logger:     logger,
		db:         db,
		grpcServer: gs.NewGRPCServer(c.EndpointAddrGRPC, logger, us, ns, ds, ss, c.SecretKey),
		httpServer: httpserver.NewHTTPServer(c.EndpointAddrHTTP, logger, db, catalogue),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until a signal arrives or either server fails; a failure of one
// server stops the other.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := app.grpcServer.Run(ctx); err != nil {
			app.logger.Error(ctx, "grpc server failed", "error", err)
			cancelFunc()
		}
	}()
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, "http server failed", "error", err)
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close failed", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
