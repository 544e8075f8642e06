// Package menu implements the interactive terminal session: the main
// menu loop, format selection, file selection, and the prompts around a
// batch conversion. All user input errors are recovered locally by
// re-prompting; only exits and cancellations travel upward.
package menu
