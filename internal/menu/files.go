package menu

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// selectFiles lists the files carrying the chosen input format and
// returns the subset to convert. An empty result means the selection was
// cancelled.
//
// Accepted input: a single 1-based index, "-1" for all files, "0" or a
// cancel keyword for none, or a comma-separated index list. A "0"
// anywhere in a list cancels the whole selection, while out-of-range
// entries are reported individually and skipped.
func (s *Session) selectFiles(inputFormat string, files []string) []string {
	s.clearScreen()
	s.printHeader()
	fmt.Fprintf(s.out, "Files with .%s extension:\n", inputFormat)
	fmt.Fprintln(s.out)

	sorted := make([]string, len(files))
	copy(sorted, files)
	sort.Strings(sorted)

	for i, file := range sorted {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, filepath.Base(file))
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "-1. Convert ALL files")
	fmt.Fprintln(s.out, " 0. Cancel/Go back")
	fmt.Fprintln(s.out)

	for {
		input, err := s.readLine("Select file to convert (number, -1 for all, comma-separated list, or 0 to cancel): ")
		if err != nil {
			return nil
		}
		if isCancelWord(input) {
			return nil
		}

		if strings.Contains(input, ",") {
			selected, cancelled, valid := s.parseIndexList(input, sorted)
			if cancelled {
				return nil
			}
			if !valid {
				continue
			}
			if len(selected) > 0 {
				return selected
			}
			// A list of only out-of-range indices: nothing usable yet.
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}

		choice, convErr := strconv.Atoi(input)
		if convErr != nil {
			fmt.Fprintln(s.out, "Please enter a valid number or comma-separated list.")
			continue
		}
		switch {
		case choice == -1:
			return sorted
		case choice == 0:
			return nil
		case choice >= 1 && choice <= len(sorted):
			return []string{sorted[choice-1]}
		}
		fmt.Fprintln(s.out, "Invalid choice. Please try again.")
	}
}

// parseIndexList resolves a comma-separated selection. A malformed number
// invalidates the whole line (valid=false re-prompts); a literal 0
// cancels the selection entirely; out-of-range indices are reported and
// skipped.
func (s *Session) parseIndexList(input string, sorted []string) (selected []string, cancelled, valid bool) {
	parts := strings.Split(input, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid number or comma-separated list.")
			return nil, false, false
		}
		indices = append(indices, idx)
	}

	for _, idx := range indices {
		switch {
		case idx == 0:
			return nil, true, true
		case idx >= 1 && idx <= len(sorted):
			selected = append(selected, sorted[idx-1])
		default:
			fmt.Fprintf(s.out, "Invalid selection: %d\n", idx)
		}
	}
	return selected, false, true
}
