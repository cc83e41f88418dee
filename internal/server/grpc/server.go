// Package grpc exposes the backend services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/plaintheory/internal/logging"
	pb "github.com/dmitrijs2005/plaintheory/internal/proto"
	"github.com/dmitrijs2005/plaintheory/internal/server/models"
	"github.com/dmitrijs2005/plaintheory/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type UserService interface {
	SignUp(ctx context.Context, email, password string) (*models.User, error)
	ConfirmEmail(ctx context.Context, token string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*services.TokenPair, *models.User, error)
	SignOut(ctx context.Context, userID, refreshToken string) error
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

type NotesService interface {
	List(ctx context.Context, ownerID string) ([]*models.Note, error)
	Create(ctx context.Context, ownerID, title, content string) (*models.Note, error)
	Get(ctx context.Context, ownerID, id string) (*models.Note, error)
	Update(ctx context.Context, ownerID, id, title, content string) (*models.Note, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type DocumentsService interface {
	List(ctx context.Context, ownerID, noteID string) ([]*models.Document, error)
	Create(ctx context.Context, ownerID string, d *models.Document) (*models.Document, error)
	Delete(ctx context.Context, ownerID, id string) error
	DownloadURL(ctx context.Context, ownerID, id string) (string, error)
}

type StorageService interface {
	CreateUploadURL(ctx context.Context, ownerID, key, contentType string, size int64) (string, time.Time, error)
	PublicURL(key string) string
	Remove(ctx context.Context, ownerID, key string) error
}

type GRPCServer struct {
	pb.UnimplementedPlainTheoryServer
	address   string
	users     UserService
	notes     NotesService
	documents DocumentsService
	storage   StorageService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ns NotesService, ds DocumentsService, ss StorageService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		notes:     ns,
		documents: ds,
		storage:   ss,
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds the gRPC server with the interceptor chain, the service
// and the health endpoint registered.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestIDInterceptor,
		s.metricsInterceptor,
		s.accessTokenInterceptor,
	))

	pb.RegisterPlainTheoryServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, hs
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv, hs := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
