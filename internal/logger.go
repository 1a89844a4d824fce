package internal

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger writing text records to w.
func NewLogger(w io.Writer, level string) (*logrus.Entry, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "LOG_LEVEL: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	return logrus.NewEntry(logger).WithField("app", "flight_route_manager"), nil
}
