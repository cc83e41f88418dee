package grpc

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/plaintheory/internal/common"
	pb "github.com/dmitrijs2005/plaintheory/internal/proto"
	"github.com/dmitrijs2005/plaintheory/internal/server/auth"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plaintheory_grpc_requests_total",
			Help: "Handled unary RPCs by method and status code.",
		},
		[]string{"method", "code"},
	)
	rpcRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "plaintheory_grpc_request_duration_seconds",
			Help:    "Unary RPC latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// publicMethods can be called without an access token.
var publicMethods = map[string]bool{
	pb.FullMethod(pb.MethodSignUp):       true,
	pb.FullMethod(pb.MethodConfirmEmail): true,
	pb.FullMethod(pb.MethodSignIn):       true,
	pb.FullMethod(pb.MethodRefreshToken): true,
}

const healthServicePrefix = "/grpc.health.v1.Health/"

func isPublic(fullMethod string) bool {
	return publicMethods[fullMethod] || strings.HasPrefix(fullMethod, healthServicePrefix)
}

type ctxKey string

const requestIDKey ctxKey = "requestID"

// RequestIDFromContext returns the id assigned by requestIDInterceptor.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	id := ulid.Make().String()
	ctx = context.WithValue(ctx, requestIDKey, id)
	// fails outside a real transport stream, e.g. when called directly in tests
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, id))

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "rpc",
		"method", info.FullMethod,
		"request_id", id,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	method := path.Base(info.FullMethod)
	start := time.Now()

	resp, err := handler(ctx, req)

	rpcRequestsTotal.WithLabelValues(method, status.Code(err).String()).Inc()
	rpcRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	return resp, err
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if isPublic(info.FullMethod) {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	return handler(auth.WithUserID(ctx, userID), req)
}
