package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/plaintheory/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrEmptyResponse = errors.New("empty response from server")
)

// StatusError is a server-side failure. Error returns the server message
// unchanged so auth failures can be shown to the user as-is.
type StatusError struct {
	Code    codes.Code
	Message string
}

func (e *StatusError) Error() string { return e.Message }

// Is maps status codes to the shared sentinels.
func (e *StatusError) Is(target error) bool {
	switch e.Code {
	case codes.Unauthenticated:
		return target == common.ErrorUnauthorized
	case codes.PermissionDenied:
		return target == common.ErrorForbidden
	case codes.NotFound:
		return target == common.ErrorNotFound
	case codes.AlreadyExists:
		return target == common.ErrorAlreadyExists
	case codes.InvalidArgument:
		return target == common.ErrorValidation ||
			(target == common.ErrFileTooLarge && e.Message == common.ErrFileTooLarge.Error())
	case codes.Unavailable, codes.DeadlineExceeded:
		return target == ErrUnavailable
	}
	return false
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	return &StatusError{Code: st.Code(), Message: st.Message()}
}
