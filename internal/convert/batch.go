package convert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mediaconv/internal/history"
	"mediaconv/internal/logging"
	"mediaconv/internal/naming"
)

// Tally accumulates per-file outcomes across one batch.
type Tally struct {
	Succeeded int
	Failed    int
	Cancelled bool
}

// Batch converts a list of files sequentially. Conversion failures are
// contained per file; only a cancellation stops the run early, and the
// in-flight file is never killed mid-conversion.
type Batch struct {
	Invoker *Invoker
	History *history.Store
	Logger  *slog.Logger
	Out     io.Writer
}

// Run converts files from inputFormat to outputFormat, placing results in
// outputDir (or alongside the working directory when empty). Cancellation
// is observed between files only.
func (b *Batch) Run(ctx context.Context, files []string, inputFormat, outputFormat, outputDir string) Tally {
	logger := b.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	var tally Tally
	batchID := uuid.NewString()

	fmt.Fprintf(b.Out, "\nConverting %d file(s) from .%s to .%s...\n", len(files), inputFormat, outputFormat)
	fmt.Fprintln(b.Out, "Press Ctrl+C at any time to cancel the conversion process.")
	fmt.Fprintln(b.Out)

	for i, inputPath := range files {
		if ctx.Err() != nil {
			tally.Cancelled = true
			fmt.Fprintln(b.Out, "\nConversion process cancelled by user.")
			break
		}

		outputPath := naming.OutputPath(inputPath, outputDir, outputFormat)
		fmt.Fprintf(b.Out, "[%d/%d] Converting: %s\n", i+1, len(files), filepath.Base(inputPath))

		start := time.Now()
		err := b.Invoker.Convert(inputPath, outputPath)
		elapsed := time.Since(start)

		entry := history.Entry{
			BatchID:      batchID,
			SourcePath:   inputPath,
			OutputPath:   outputPath,
			InputFormat:  inputFormat,
			OutputFormat: outputFormat,
			Duration:     elapsed,
		}
		if err != nil {
			tally.Failed++
			entry.Status = history.StatusFailed
			entry.ErrorText = err.Error()
			fmt.Fprintf(b.Out, "✗ Error converting %s: %v\n", filepath.Base(inputPath), err)
			logger.Error("conversion failed",
				logging.String("input", inputPath),
				logging.Error(err),
			)
		} else {
			tally.Succeeded++
			entry.Status = history.StatusSuccess
			fmt.Fprintf(b.Out, "✓ Conversion successful: %s\n", outputPath)
			logger.Info("conversion succeeded",
				logging.String("input", inputPath),
				logging.String("output", outputPath),
				logging.Duration("elapsed", elapsed),
			)
		}

		if recordErr := b.History.Record(context.WithoutCancel(ctx), entry); recordErr != nil {
			logger.Warn("failed to record conversion", logging.Error(recordErr))
		}
	}

	return tally
}
