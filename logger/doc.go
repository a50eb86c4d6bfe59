// Package logger provides structured logging for blogkit using zerolog.
//
// Loggers are created from a Config and can be tagged with a component
// name so that pipeline failures are attributable:
//
//	log := logger.New(&logger.Config{Level: "debug", Format: "json"}, "blogctl")
//	log.WithComponent("httpclient").Error("request failed", logger.Fields(
//	    logger.FieldMethod, "GET",
//	    logger.FieldURL, "/article/1",
//	))
//
// The package also keeps a process-wide logger (Init, GetGlobalLogger) for
// code that is not handed one explicitly.
package logger
