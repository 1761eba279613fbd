package common

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogOption configures the logger handed to a component.
type LogOption struct {
	LogLevel logrus.Level
	Logger   *logrus.Logger
}

// NewLogger returns a logger tagged with `component`. Logs are discarded if no option is given.
func NewLogger(component string, opt ...LogOption) *logrus.Entry {
	var logger *logrus.Logger

	switch {
	case len(opt) == 0:
		logger = logrus.New()
		logger.Out = io.Discard
	case opt[0].Logger != nil:
		logger = opt[0].Logger
	default:
		logger = logrus.New()
		logger.SetLevel(opt[0].LogLevel)
	}

	return logger.WithField("component", component)
}
