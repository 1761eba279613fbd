package grouping

import "github.com/pkg/errors"

var (
	ErrBlankName       = errors.New("name is blank")
	ErrIndexOutOfRange = errors.New("person index out of range")
)
