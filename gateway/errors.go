package gateway

import (
	"github.com/0glabs/lunch-buddies/common/api"
	"github.com/0glabs/lunch-buddies/grouping"
	"github.com/0glabs/lunch-buddies/session"
	"github.com/pkg/errors"
)

var (
	ErrBlankName         = api.NewBusinessError(101, "Name must not be blank", nil)
	ErrPersonNotFound    = api.NewBusinessError(102, "Person index out of range", nil)
	ErrGroupSizeTooSmall = api.NewBusinessError(103, "Group size too small", nil)
)

// toBusinessError maps rejected session events to API errors.
func toBusinessError(err error) error {
	switch {
	case errors.Is(err, grouping.ErrBlankName):
		return ErrBlankName
	case errors.Is(err, grouping.ErrIndexOutOfRange):
		return ErrPersonNotFound.WithData(err.Error())
	case errors.Is(err, session.ErrGroupSizeTooSmall):
		return ErrGroupSizeTooSmall.WithData(session.MinGroupSize)
	default:
		return err
	}
}
