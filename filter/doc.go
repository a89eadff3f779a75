// Package filter decides which records reach a handler, based on a
// directive string usually read from the GO_LOG environment variable.
//
// A directive string is a comma-separated list of directives. Each
// directive is one of
//
//	level           set the base level for every target
//	target          enable every level for target and its children
//	target=level    set the level for target and its children
//
// Levels are case-insensitive names (off, error, warn, info, debug,
// trace) and act as inclusive thresholds: "warn" lets Error and Warn
// through. Targets are dot-separated logger names; "db" matches the
// targets "db" and "db.pool" but not "dbx". A target containing glob
// metacharacters is matched as a glob pattern with "." as separator, so
// "*.http" matches "api.http" and "**.http" matches "api.v2.http".
//
// When several directives match a record, the one with the longest
// target wins. Records matching no directive use the base level.
//
//	GO_LOG=warn,db=debug,api.*=trace
package filter
