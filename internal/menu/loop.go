package menu

import (
	"context"
	"fmt"

	"mediaconv/internal/convert"
	"mediaconv/internal/logging"
	"mediaconv/internal/scan"
)

// Run loops the main menu until the user exits or the session context is
// cancelled. It returns ErrNoMediaFiles when a convert pass finds nothing
// to work on; every other cancellation path returns to the main menu.
func (s *Session) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(s.out, "\nExiting program. Goodbye!")
			return nil
		}

		s.clearScreen()
		s.printHeader()
		fmt.Fprintln(s.out, "1. Convert media files")
		fmt.Fprintln(s.out, "0. Exit program")
		fmt.Fprintln(s.out)

		choice, err := s.readLine("Select an option (0-1): ")
		if err != nil {
			fmt.Fprintln(s.out, "\nExiting program. Goodbye!")
			return nil
		}
		if choice == "0" || isExitWord(choice) {
			fmt.Fprintln(s.out, "\nExiting program. Goodbye!")
			return nil
		}
		if choice != "1" {
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			s.pause("Press Enter to continue...")
			continue
		}

		if err := s.convertFlow(ctx); err != nil {
			return err
		}
	}
}

// convertFlow walks one pass: scan, pick input format, pick output
// format, pick files, convert. Intermediate cancellations fall back to
// the main menu by returning nil.
func (s *Session) convertFlow(ctx context.Context) error {
	result, err := scan.Directory(s.cfg.Paths.ScanDir)
	if err != nil {
		return err
	}
	if len(result) == 0 {
		fmt.Fprintln(s.out, "No media files found in the current directory.")
		s.pause("Press Enter to exit...")
		return fmt.Errorf("%w in %s", ErrNoMediaFiles, s.cfg.Paths.ScanDir)
	}
	s.logger.Debug("scan complete",
		logging.String("dir", s.cfg.Paths.ScanDir),
		logging.Int("extensions", len(result)),
		logging.Int("files", result.TotalFiles()),
	)

	inputFormat, ok := s.selectInputFormat(result)
	if !ok {
		return nil
	}

	outputFormat, ok := s.selectOutputFormat()
	if !ok {
		return nil
	}

	files := s.selectFiles(inputFormat, result[inputFormat])
	if len(files) == 0 {
		fmt.Fprintln(s.out, "No files selected for conversion.")
		s.pause("Press Enter to continue...")
		return nil
	}

	var tally convert.Tally
	if outputDir, ok := s.promptOutputDir(); ok {
		batch := &convert.Batch{
			Invoker: s.invoker,
			History: s.store,
			Logger:  s.logger,
			Out:     s.out,
		}
		tally = batch.Run(ctx, files, inputFormat, outputFormat, outputDir)
	}

	fmt.Fprintf(s.out, "\nConversion complete: %d succeeded, %d failed.\n", tally.Succeeded, tally.Failed)
	s.logger.Info("batch finished",
		logging.Int("succeeded", tally.Succeeded),
		logging.Int("failed", tally.Failed),
		logging.Bool("cancelled", tally.Cancelled),
	)
	s.pause("\nPress Enter to continue...")
	return nil
}
