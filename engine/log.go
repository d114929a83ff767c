package engine

import "github.com/go-logr/logr"

var internalLogger = logr.Logger{}

// SetInternalLogger gives the engine a logger to write to. Without one, all engine logging is dropped.
func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("engine")
}
