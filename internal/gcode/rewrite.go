package gcode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirectivePrefix marks a spindle speed command at the start of a line.
const DirectivePrefix = "S"

// modeSuffix is the spindle-start word appended to every rewritten directive.
const modeSuffix = " M3"

// CanonicalDirective returns the canonical spindle command for the given
// speed token, e.g. "S1000 M3". Downstream machine-control software consumes
// this exact textual form, so it must not change.
func CanonicalDirective(speed string) string {
	return DirectivePrefix + speed + modeSuffix
}

// Result classifies what a rewrite did (or would do) to a program file.
type Result int

const (
	// Updated means the first directive line was replaced and the file written.
	Updated Result = iota
	// AlreadyCurrent means the first directive line already carries the
	// canonical text; the file was not touched.
	AlreadyCurrent
	// NoDirective means no line starts with the directive prefix; the file
	// was not touched.
	NoDirective
)

func (r Result) String() string {
	switch r {
	case Updated:
		return "updated"
	case AlreadyCurrent:
		return "already current"
	case NoDirective:
		return "no directive"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Rewrite replaces the first spindle directive line of the file at path with
// the canonical directive for speed. Files whose first directive already
// contains the canonical text, and files with no directive line at all, are
// left byte-for-byte untouched. All other lines pass through unmodified, so
// the line count is preserved exactly.
func Rewrite(path, speed string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NoDirective, err
	}

	lines, result := transform(data, speed)
	if result != Updated {
		return result, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return result, err
	}
	if err := writeAtomic(path, strings.Join(lines, ""), info.Mode()); err != nil {
		return result, err
	}
	return result, nil
}

// Plan reports what Rewrite would do to the file at path without writing
// anything.
func Plan(path, speed string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NoDirective, err
	}
	_, result := transform(data, speed)
	return result, nil
}

// transform applies the single-pass replacement rule. It scans lines in
// order until the first one starting with the directive prefix; the prefix
// test is on the raw line, so an indented directive is not recognized. Lines
// after the first directive are never inspected. The returned lines are only
// meaningful when the result is Updated.
func transform(data []byte, speed string) ([]string, Result) {
	canonical := CanonicalDirective(speed)
	lines := splitLines(data)

	for i, line := range lines {
		if !strings.HasPrefix(line, DirectivePrefix) {
			continue
		}
		if strings.Contains(line, canonical) {
			return nil, AlreadyCurrent
		}
		lines[i] = canonical + "\n"
		return lines, Updated
	}

	return nil, NoDirective
}

// splitLines splits data into lines, each keeping its own terminator so that
// untouched lines round-trip byte-for-byte (CRLF stays CRLF). A trailing
// fragment with no terminator counts as a line.
func splitLines(data []byte) []string {
	var lines []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, string(data[start:i+1]))
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, string(data[start:]))
	}
	return lines
}

// writeAtomic replaces the file at path via a temp file in the same
// directory and a rename, so a failure mid-write cannot truncate the
// original.
func writeAtomic(path, content string, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
