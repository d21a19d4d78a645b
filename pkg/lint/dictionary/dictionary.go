// Package dictionary loads NG-word dictionaries.
//
// A dictionary file is UTF-8 text with one rule per line:
//
//	REGEX<TAB>SUGGESTION
//
// Blank lines, lines starting with '#' and lines without a tab are ignored.
// Every pattern is compiled once per load; an invalid pattern fails the load.
package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

//go:embed rule.dic
var defaultRules []byte

// DefaultName is reported as the path of the built-in dictionary.
const DefaultName = "<builtin>/rule.dic"

const maxLineSize = 1024 * 1024

// Rule is one compiled dictionary entry.
type Rule struct {
	Pattern    *regexp.Regexp
	Source     string
	Suggestion string
}

// FindFirst returns the first match of the rule in text.
func (r Rule) FindFirst(text string) (string, bool) {
	loc := r.Pattern.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:loc[1]], true
}

// Dictionary is an immutable set of rules loaded from one file.
type Dictionary struct {
	Path  string
	Rules []Rule
}

// Len returns the number of rules.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rules)
}

// FileAccessError reports a dictionary file that is missing or unreadable.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read NG word dictionary %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// PatternError reports a dictionary pattern that does not compile.
type PatternError struct {
	Line    int
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid NG word pattern %q on line %d: %v", e.Pattern, e.Line, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Load reads and compiles the dictionary at path.
// An empty path loads the built-in dictionary.
func Load(path string) (*Dictionary, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	d, err := Parse(f)
	if err != nil {
		var perr *PatternError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, &FileAccessError{Path: path, Err: err}
	}
	d.Path = path
	return d, nil
}

// Default returns the built-in dictionary.
func Default() (*Dictionary, error) {
	d, err := Parse(bytes.NewReader(defaultRules))
	if err != nil {
		return nil, fmt.Errorf("built-in dictionary: %w", err)
	}
	d.Path = DefaultName
	return d, nil
}

// DefaultSource returns a copy of the built-in dictionary file.
func DefaultSource() []byte {
	return append([]byte(nil), defaultRules...)
}

// Parse reads dictionary rules from r.
func Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pattern, suggestion, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, &PatternError{Line: lineNo, Pattern: pattern, Err: err}
		}
		d.Rules = append(d.Rules, Rule{
			Pattern:    re,
			Source:     pattern,
			Suggestion: strings.TrimSpace(suggestion),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return d, nil
}
