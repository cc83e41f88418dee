package workspace

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/plaintheory/internal/client/client"
	"github.com/dmitrijs2005/plaintheory/internal/common"
)

var (
	ErrNoSelection = errors.New("no note selected")
	ErrNotEditing  = errors.New("not editing")
	ErrUnknownNote = errors.New("note is not in the list")
)

// Error is what every failing view-model operation returns. Error() is the
// short message also stored as the last error.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// describe turns err into a one-line message prefixed with action. Server
// messages are used verbatim; the size limit message stands alone.
func describe(action string, err error) string {
	if errors.Is(err, common.ErrFileTooLarge) {
		return common.ErrFileTooLarge.Error()
	}
	var se *client.StatusError
	if errors.As(err, &se) {
		return action + ": " + se.Message
	}
	msg := strings.TrimPrefix(err.Error(), common.ErrNotApplied.Error()+": ")
	if msg == "" {
		return action
	}
	return action + ": " + msg
}
