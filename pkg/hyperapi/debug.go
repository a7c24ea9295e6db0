package hyperapi

import (
	"github.com/c9s/hyperliquid-go/pkg/envvar"
)

type LogFunction func(msg string, args ...interface{})

var debugf LogFunction

func getDebugFunction() LogFunction {
	if v, ok := envvar.Bool("DEBUG_HYPERLIQUID"); ok && v {
		return log.Infof
	}

	return func(msg string, args ...interface{}) {}
}

func init() {
	debugf = getDebugFunction()
}
