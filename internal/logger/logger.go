// Package logger builds the application-wide zap logger.
package logger

import "go.uber.org/zap"

func New(development bool) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l
}
