package menu

import (
	"fmt"
	"strconv"
	"strings"

	"mediaconv/internal/catalog"
	"mediaconv/internal/scan"
)

// selectInputFormat presents the discovered extensions and returns the
// chosen one. ok is false when the user asked to leave the menu. The
// caller guarantees result is non-empty.
func (s *Session) selectInputFormat(result scan.Result) (format string, ok bool) {
	s.clearScreen()
	s.printHeader()
	fmt.Fprintln(s.out, "Available input formats:")
	fmt.Fprintln(s.out)

	extensions := result.Extensions()
	for i, ext := range extensions {
		count := len(result[ext])
		plural := ""
		if count > 1 {
			plural = "s"
		}
		fmt.Fprintf(s.out, "%d. %s (%d file%s)\n", i+1, ext, count, plural)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "0. Back to main menu")
	fmt.Fprintln(s.out)

	for {
		input, err := s.readLine("Select input format (number or 0 to go back): ")
		if err != nil {
			return "", false
		}
		if isExitWord(input) {
			return "", false
		}
		choice, convErr := strconv.Atoi(input)
		if convErr != nil {
			fmt.Fprintln(s.out, "Please enter a valid number.")
			continue
		}
		if choice == 0 {
			return "", false
		}
		if choice >= 1 && choice <= len(extensions) {
			return extensions[choice-1], true
		}
		fmt.Fprintln(s.out, "Invalid choice. Please try again.")
	}
}

const outputFormatColumns = 4

// selectOutputFormat presents the curated output formats plus a custom
// entry. ok is false on cancellation.
func (s *Session) selectOutputFormat() (format string, ok bool) {
	s.clearScreen()
	s.printHeader()
	fmt.Fprintln(s.out, "Common output formats:")
	fmt.Fprintln(s.out)

	formats := catalog.CommonOutputFormats
	for i := 0; i < len(formats); i += outputFormatColumns {
		row := formats[i:min(i+outputFormatColumns, len(formats))]
		cells := make([]string, len(row))
		for j, f := range row {
			cells[j] = fmt.Sprintf("%2d. %-6s", i+j+1, f)
		}
		fmt.Fprintln(s.out, strings.Join(cells, "  "))
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "C. Custom format (enter your own)")
	fmt.Fprintln(s.out, "0. Cancel/Go back")
	fmt.Fprintln(s.out)

	for {
		input, err := s.readLine("Select output format (number, C for custom, or 0 to cancel): ")
		if err != nil {
			return "", false
		}
		upper := strings.ToUpper(input)

		switch upper {
		case "0", "Q", "CANCEL", "BACK":
			return "", false
		case "C":
			custom, err := s.readLine("Enter custom output format (without dot, or 0 to cancel): ")
			if err != nil || custom == "0" {
				return "", false
			}
			custom = strings.ToLower(custom)
			if custom != "" && !strings.HasPrefix(custom, ".") {
				return custom, true
			}
		default:
			if choice, convErr := strconv.Atoi(input); convErr == nil {
				if choice == 0 {
					return "", false
				}
				if choice >= 1 && choice <= len(formats) {
					return formats[choice-1], true
				}
			}
		}
		fmt.Fprintln(s.out, "Invalid choice. Please try again.")
	}
}
