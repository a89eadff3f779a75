// Package cli implements the colog command, which replays the built-in
// styles on a terminal and formats single records from the command line.
package cli
