package report

import (
	"fmt"
	"os"
	"strings"
)

// WriteFile overwrites path with the report lines joined by newlines,
// with one trailing newline.
func WriteFile(path string, lines []string) error {
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
