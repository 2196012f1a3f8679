// Package message prints status messages with consistent icons and
// colors, and provides semantic formatters for inline text.
//
// # Messages
//
// One function per message kind, each a single line with a colored
// icon prefix. Error goes to stderr; everything else to stdout.
//
//	message.Info("Processing 42 files...")   // ℹ Processing 42 files...
//	message.Success("Done!")                 // ✓ Done!
//	message.Warn("Using defaults")           // ⚠ Using defaults
//	message.Error("Connection failed")       // ✗ Connection failed (stderr)
//	message.Dim("Took 3.2 seconds")          //   Took 3.2 seconds (dimmed)
//
// # Semantic Formatters
//
// Formatters colorize inline content by what it is, not how it should
// look, so every tool renders the same content type the same way:
//
//	message.Code.Sprint("pintui format size 1GB")  // commands
//	message.Path.Sprint("~/.config/app.toml")      // file paths
//	message.Highlight.Sprint("user@example.com")   // user values
//
// When colors are unavailable (NO_COLOR, dumb terminal), formatters
// degrade to text decorations — backticks for code, quotes for
// highlights, parentheses for muted text — so semantics survive in
// plain output.
//
// Color capability detection itself is fatih/color's job; nothing in
// this package inspects the terminal beyond the NO_COLOR convention.
package message
