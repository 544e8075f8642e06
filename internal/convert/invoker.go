package convert

import (
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"mediaconv/internal/fileutil"
	"mediaconv/internal/logging"
)

// Invoker wraps a single call into the external transcoding engine. The
// engine infers codecs from the output extension; existing output files
// are overwritten.
type Invoker struct {
	FFmpeg string
	Logger *slog.Logger
}

// NewInvoker builds an Invoker around an ffmpeg command.
func NewInvoker(ffmpeg string, logger *slog.Logger) *Invoker {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Invoker{FFmpeg: ffmpeg, Logger: logger}
}

// Convert transcodes inputPath into outputPath, creating the output's
// parent directory if needed. Engine diagnostics are folded into the
// returned error; the call itself never panics or aborts the process.
func (inv *Invoker) Convert(inputPath, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := fileutil.EnsureDir(dir); err != nil {
			return err
		}
	}

	args := []string{"-hide_banner", "-loglevel", "error", "-y", "-i", inputPath, outputPath}
	cmd := exec.Command(inv.FFmpeg, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	inv.Logger.Debug("invoking engine",
		logging.String("command", inv.FFmpeg),
		logging.String("input", inputPath),
		logging.String("output", outputPath),
	)

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return fmt.Errorf("engine: %s", detail)
	}
	return nil
}
