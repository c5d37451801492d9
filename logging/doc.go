// Package logging provides structured logging for the centerline
// pipeline, layered over github.com/rs/zerolog.
//
// Design, adapted from the retrieved jinterlante1206-AleutianLocal
// pkg/logging package (stderr by default, optional file sink,
// Default()/New(Config) constructors) but built on zerolog rather than
// slog, since zerolog is the structured logger that actually appears in
// a full service go.mod in the retrieved corpus (thebtf-engram).
//
// One Logger is built per pipeline.Driver run and threaded explicitly
// through pipeline.Context; there is no package-level global logger.
package logging
