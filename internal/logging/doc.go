// Package logging builds the slog logger used across mediaconv. Menu
// output goes straight to the terminal; the logger is the diagnostic
// channel and records sessions to the log file.
package logging
