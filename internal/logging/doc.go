// Package logger provides leveled diagnostic logging for the pintui
// CLI commands.
//
// Verbosity is controlled by the persistent --verbose and --debug
// flags:
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always shown and go to stderr, keeping
// stdout clean for the formatted output itself.
//
// Commands build a logger in their PersistentPreRun:
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Debugf("parsing %q", arg)
package logger
