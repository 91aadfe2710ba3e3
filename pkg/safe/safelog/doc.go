// Package safelog integrates safe.Result with structured zap logging.
//
// The core packages never log on their own; this package is the
// display collaborator for applications that want results in their
// logs. Fields renders a result into zap fields, Report picks the
// level from the outcome, and Logger/FromContext carry a configured
// logger through context the usual way.
package safelog
