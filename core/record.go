package core

// Record is a single log event handed to a style for formatting.
type Record struct {
	Level Level
	// Target is the dot-separated name of the logger that produced the
	// record. It only takes part in filtering, never in the output.
	Target  string
	Message string
}
