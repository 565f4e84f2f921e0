// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// ErrorLine is the text report line for a record that could not be checked.
func ErrorLine(line int, err error) string {
	return fmt.Sprintf("%sError at line %d: %v", Prefix, line, err)
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}
