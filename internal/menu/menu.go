// Package menu implements the interactive report loop: a main menu for
// choosing a report type and a post-report menu for saving or starting
// over. Every invalid entry re-prompts; the only exits are the explicit
// menu choices and end of input.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jgoulah/gridreport/internal/locale"
	"github.com/jgoulah/gridreport/internal/report"
	"github.com/jgoulah/gridreport/internal/store"
	"github.com/jgoulah/gridreport/pkg/models"
)

// Menu drives the interactive reporting session.
type Menu struct {
	in           *bufio.Scanner
	out          io.Writer
	measurements []models.Measurement
	index        store.DailyIndex
	year         int
	reportPath   string
}

// New builds a menu over the loaded measurements. Reports for month and
// year selections use the given dataset year. Saved reports overwrite
// reportPath.
func New(in io.Reader, out io.Writer, measurements []models.Measurement, year int, reportPath string) *Menu {
	return &Menu{
		in:           bufio.NewScanner(in),
		out:          out,
		measurements: measurements,
		index:        store.BuildDailyIndex(measurements),
		year:         year,
		reportPath:   reportPath,
	}
}

// Run blocks on console input until the user exits or input ends.
func (m *Menu) Run() error {
	for {
		choice, err := m.prompt(mainMenuText())
		if err != nil {
			return exitOnEOF(err)
		}

		var lines []string
		switch choice {
		case "1":
			lines, err = m.rangeReport()
			if err != nil {
				return exitOnEOF(err)
			}
		case "2":
			lines, err = m.monthReport()
			if err != nil {
				return exitOnEOF(err)
			}
		case "3":
			lines = report.Year(m.measurements, m.year)
		case "4":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Unknown choice. Please select 1-4.")
			continue
		}

		for _, line := range lines {
			fmt.Fprintln(m.out, line)
		}

		done, err := m.afterReport(lines)
		if err != nil {
			return exitOnEOF(err)
		}
		if done {
			return nil
		}
	}
}

// afterReport runs the post-report menu. It returns true when the user
// chose to exit the whole program.
func (m *Menu) afterReport(lines []string) (bool, error) {
	for {
		choice, err := m.prompt(afterMenuText())
		if err != nil {
			return false, err
		}

		switch choice {
		case "1":
			if err := report.WriteFile(m.reportPath, lines); err != nil {
				return false, fmt.Errorf("writing report file: %w", err)
			}
			fmt.Fprintf(m.out, "Wrote report to %s\n", filepath.Base(m.reportPath))
		case "2":
			return false, nil
		case "3":
			fmt.Fprintln(m.out, "Goodbye!")
			return true, nil
		default:
			fmt.Fprintln(m.out, "Unknown choice. Please select 1-3.")
		}
	}
}

func (m *Menu) rangeReport() ([]string, error) {
	start, err := m.promptDate("Enter start date (dd.mm.yyyy): ")
	if err != nil {
		return nil, err
	}
	end, err := m.promptDate("Enter end date (dd.mm.yyyy): ")
	if err != nil {
		return nil, err
	}
	return report.Range(m.index, start, end), nil
}

func (m *Menu) monthReport() ([]string, error) {
	month, err := m.promptMonth()
	if err != nil {
		return nil, err
	}
	return report.Month(m.index, m.year, month), nil
}

// promptDate keeps asking until the input is a real calendar date.
func (m *Menu) promptDate(promptText string) (time.Time, error) {
	for {
		raw, err := m.prompt(promptText)
		if err != nil {
			return time.Time{}, err
		}
		d, err := locale.ParseDate(raw)
		if err == nil {
			return d, nil
		}
		fmt.Fprintln(m.out, "Invalid date. Use format dd.mm.yyyy (e.g., 1.11.2025 or 01.11.2025).")
	}
}

// promptMonth keeps asking until the input is a bare integer in [1,12].
func (m *Menu) promptMonth() (int, error) {
	for {
		raw, err := m.prompt("Enter month number (1-12): ")
		if err != nil {
			return 0, err
		}
		month, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid number. Try again.")
			continue
		}
		if month < 1 || month > 12 {
			fmt.Fprintln(m.out, "Please enter a number between 1 and 12.")
			continue
		}
		return month, nil
	}
}

// prompt prints the text, reads one line, and returns it trimmed.
func (m *Menu) prompt(text string) (string, error) {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func mainMenuText() string {
	return "\nChoose a report type:\n" +
		"1) Daily summary for a date range\n" +
		"2) Monthly summary for one month\n" +
		"3) Full year summary\n" +
		"4) Exit the program\n" +
		"Choose (1-4): "
}

func afterMenuText() string {
	return "\nWhat would you like to do next?\n" +
		"1) Write the report to the report file\n" +
		"2) Create a new report\n" +
		"3) Exit\n" +
		"Choose (1-3): "
}

// exitOnEOF turns end-of-input into a clean exit so piped sessions
// terminate without an error.
func exitOnEOF(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}
