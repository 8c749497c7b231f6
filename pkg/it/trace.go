package it

import (
	"github.com/go-logr/logr"
)

// Trace logs the subject with msg at verbosity 1 and passes it on.
func (p Pipeline) Trace(logger logr.Logger, msg string) Pipeline {
	return p.then(func(recv, v any) any {
		if recv != nil {
			logger.V(1).Info(msg, "value", v, "receiver", recv)
		} else {
			logger.V(1).Info(msg, "value", v)
		}
		return v
	})
}

func Trace(logger logr.Logger, msg string) Pipeline { return Identity().Trace(logger, msg) }
