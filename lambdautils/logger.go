package lambdautils

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// NewLogger returns the process logger. Debug builds a human readable
// development logger, otherwise json lines suitable for cloudwatch are
// written.
func NewLogger(debug bool) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed building logger")
	}

	return logger.Sugar(), nil
}

// RequestLogger returns log decorated with the metadata of the invocation
// carried by ctx. A nil log yields a no-op logger.
func RequestLogger(ctx context.Context, log *zap.SugaredLogger) *zap.SugaredLogger {
	if log == nil {
		return zap.NewNop().Sugar()
	}

	return log.With(GetLambdaMetaData(ctx).Fields()...)
}
