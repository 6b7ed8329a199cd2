package sympy

import "github.com/sirupsen/logrus"

// logger is the package-level diagnostic logger, used the way
// auth/audit.go in the teacher corpus wires logrus: structured fields
// for solver-dispatch tracing, never for step content. Steps belong
// to the SolverResult, not the log (§4.6: "the step recorder is not a
// logger").
var logger = logrus.New()

func init() {
	logger.SetLevel(logrus.WarnLevel)
}

// SetLogLevel adjusts the package logger's verbosity. Callers embedding
// the engine in a larger service can raise this to logrus.DebugLevel to
// trace solver dispatch decisions.
func SetLogLevel(level logrus.Level) {
	logger.SetLevel(level)
}
