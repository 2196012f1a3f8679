// Package progress gives users feedback during long-running work:
// spinners for indeterminate operations, bars for determinate ones,
// and a stage tracker for multi-phase commands.
//
// Animation and timing are delegated entirely to briandowns/spinner
// and schollz/progressbar; this package only fixes the visual
// defaults (charset, colors, finish icons) so every tool looks the
// same.
//
//	s := progress.Spinner("Connecting to server...")
//	// ... do work ...
//	s.Success("Connected")
//
//	bar := progress.Bar(100, "Downloading")
//	for range chunks {
//	    bar.Add(1)
//	}
//	bar.Success("Downloaded")
//
//	stages := progress.NewStageProgress(3)
//	s1 := stages.Next("Fetching")
//	// ... fetch ...
//	s1.Success("Fetched")
package progress
