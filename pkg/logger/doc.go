// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers so that field names stay consistent across the
// form, client and terminal packages.
//
// New picks a text or JSON handler, attaches static attributes, and, when
// ContextExtractor callbacks are registered, wraps the handler so each record
// also carries values pulled from the context passed to the *Context logging
// methods.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "bootcamper"),
//	    logger.WithLevelName(cfg.LogLevel),
//	)
//	log.WarnContext(ctx, "login failed", logger.StatusCode(401), logger.Error(err))
//
// Error returns an empty attribute for a nil error, so it can be passed
// without a nil check.
package logger
