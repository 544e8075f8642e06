package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"mediaconv/internal/config"
	"mediaconv/internal/convert"
	"mediaconv/internal/history"
	"mediaconv/internal/logging"
)

// ErrNoMediaFiles signals that the scan directory holds nothing the
// catalog recognizes. The process maps it to exit code 1.
var ErrNoMediaFiles = errors.New("no media files found")

// Session drives one interactive terminal session. It holds no state
// beyond the duration of a single menu pass.
type Session struct {
	cfg     *config.Config
	logger  *slog.Logger
	in      *bufio.Reader
	out     io.Writer
	invoker *convert.Invoker
	store   *history.Store
	tty     bool
}

// NewSession wires a session over the given input and output streams.
// Screen clearing is only performed when out is a real terminal.
func NewSession(cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer, store *history.Store) *Session {
	if logger == nil {
		logger = logging.NewNop()
	}
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Session{
		cfg:     cfg,
		logger:  logger,
		in:      bufio.NewReader(in),
		out:     out,
		invoker: convert.NewInvoker(cfg.FFmpegBinary(), logger),
		store:   store,
		tty:     tty,
	}
}

// readLine prompts and returns one trimmed input line. An io error
// (typically EOF on a closed stdin) is returned so callers can treat it
// as a cancellation instead of re-prompting forever.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// pause waits for Enter so the user can read the previous output.
func (s *Session) pause(message string) {
	_, _ = s.readLine(message)
}

func isExitWord(input string) bool {
	switch strings.ToLower(input) {
	case "q", "exit", "quit":
		return true
	}
	return false
}

func isCancelWord(input string) bool {
	switch strings.ToLower(input) {
	case "cancel", "back", "q", "quit", "exit":
		return true
	}
	return false
}
