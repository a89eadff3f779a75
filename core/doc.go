// Package core defines the shared types used across colog.
//
// It provides the Level type for record severity, the LevelFilter type
// used as an inclusive minimum-severity threshold, and the Record type
// that carries a single log event through a style.
//
// Levels are ordered most to least severe: ErrorLevel has the smallest
// value and TraceLevel the largest. A LevelFilter lets a record through
// when its level is numerically less than or equal to the filter, so
// comparing the two costs a single integer comparison.
//
// A Record only lives for the duration of one formatting call. Nothing
// in colog retains it after the call returns.
package core
