package menu

import (
	"fmt"
	"strings"

	"mediaconv/internal/fileutil"
	"mediaconv/internal/logging"
)

// promptOutputDir asks where converted files should land. ok is false
// when the user cancels or declines to create a missing directory, which
// aborts the whole batch before any conversion starts.
func (s *Session) promptOutputDir() (dir string, ok bool) {
	defaultHint := "current directory"
	if s.cfg.Paths.OutputDir != "" {
		defaultHint = s.cfg.Paths.OutputDir
	}

	input, err := s.readLine(fmt.Sprintf("Enter output directory (leave empty for %s, or 'cancel' to abort): ", defaultHint))
	if err != nil {
		return "", false
	}
	if isCancelWord(input) {
		fmt.Fprintln(s.out, "Conversion cancelled.")
		return "", false
	}
	if input == "" {
		input = s.cfg.Paths.OutputDir
	}
	if input == "" {
		return "", true
	}

	exists, statErr := fileutil.DirExists(input)
	if statErr != nil {
		fmt.Fprintf(s.out, "Error inspecting directory: %v\n", statErr)
		return "", false
	}
	if !exists {
		answer, err := s.readLine(fmt.Sprintf("Directory '%s' doesn't exist. Create it? (y/n): ", input))
		if err != nil || !strings.EqualFold(answer, "y") {
			return "", false
		}
		if mkErr := fileutil.EnsureDir(input); mkErr != nil {
			fmt.Fprintf(s.out, "Error creating directory: %v\n", mkErr)
			s.logger.Error("create output directory", logging.String("dir", input), logging.Error(mkErr))
			return "", false
		}
	}
	return input, true
}
