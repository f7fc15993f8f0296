// Package resultlog appends rendered reports to a plain-text results file.
package resultlog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// DefaultFile is the results file name used when none is configured
const DefaultFile = "results.txt"

// TimestampLayout is the format of the header line above each entry
const TimestampLayout = "2006-01-02 15:04:05"

var headerPattern = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\]$`)

// Writer saves entries to a results file.
// With Append false each save replaces the file contents.
type Writer struct {
	Path   string
	Append bool
	Now    func() time.Time
}

// New creates a Writer for path. An empty path uses DefaultFile.
func New(path string, appendMode bool) *Writer {
	if path == "" {
		path = DefaultFile
	}
	return &Writer{Path: path, Append: appendMode, Now: time.Now}
}

// FormatEntry renders one entry: a bracketed timestamp line, the text and a
// trailing blank line
func FormatEntry(ts time.Time, text string) string {
	return fmt.Sprintf("[%s]\n%s\n\n", ts.Format(TimestampLayout), text)
}

// Save writes text as a new timestamped entry
func (w *Writer) Save(text string) error {
	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating results directory: %w", err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if w.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(w.Path, flags, 0644)
	if err != nil {
		return fmt.Errorf("opening results file: %w", err)
	}

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}

	if _, err := f.WriteString(FormatEntry(now(), text)); err != nil {
		f.Close()
		return fmt.Errorf("writing results file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing results file: %w", err)
	}

	return nil
}

// Size returns the results file size in bytes, 0 if it does not exist yet
func (w *Writer) Size() (int64, error) {
	info, err := os.Stat(w.Path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("stat results file: %w", err)
	}
	return info.Size(), nil
}

// Entries counts the timestamp headers in the results file
func (w *Writer) Entries() (int, error) {
	f, err := os.Open(w.Path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("opening results file: %w", err)
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if headerPattern.MatchString(scanner.Text()) {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading results file: %w", err)
	}
	return count, nil
}
