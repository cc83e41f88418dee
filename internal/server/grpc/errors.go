package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/plaintheory/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// authErrors reach the client with their message intact.
var authErrors = []error{
	common.ErrInvalidCredentials,
	common.ErrEmailNotConfirmed,
	common.ErrInvalidToken,
	common.ErrTokenExpired,
	common.ErrRefreshTokenExpired,
	common.ErrorUnauthorized,
}

// toStatus maps service errors to gRPC statuses. Unknown errors are logged
// and hidden behind a generic message.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	for _, e := range authErrors {
		if errors.Is(err, e) {
			return status.Error(codes.Unauthenticated, e.Error())
		}
	}

	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.ErrorNotFound.Error())
	case errors.Is(err, common.ErrFileTooLarge):
		return status.Error(codes.InvalidArgument, common.ErrFileTooLarge.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "User already registered")
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, common.ErrorForbidden.Error())
	}

	s.logger.Error(ctx, "request failed", "request_id", RequestIDFromContext(ctx), "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
