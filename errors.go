package popupkit

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMalformedInput       = "malformed_input"
	CodeMissingRequiredField = "missing_required_field"
	CodeUnknownWidget        = "unknown_widget"
	CodeDuplicateID          = "duplicate_id"
	CodeAmbiguousFormat      = "ambiguous_format"
	CodeUnknownOption        = "unknown_option"
	CodeParseError           = "parse_error"
	// Non-fatal: used internally by the result collapser to skip stale entries.
	CodeElementNotFound = "element_not_found"
)

// Issue represents a single parse or validation entry.
type Issue struct {
	Path    string // Location within the tree (for example: /elements/2) or "" for text input.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected forms, etc.
	Cause   error  // Optional: underlying error.
	Line    int    // 1-based line in textual input (0 when unknown).
	Col     int    // 1-based column in textual input (0 when unknown).
	Offset  int64  // Byte offset in the input source (-1 when unknown).
}

// Issues is a collection of parse/validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		switch {
		case it.Line > 0:
			fmt.Fprintf(b, "%s at line %d:%d: %s", it.Code, it.Line, it.Col, it.Message)
		case it.Path != "":
			fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
		default:
			fmt.Fprintf(b, "%s: %s", it.Code, it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueAt creates an Issue at the given tree path with provided code and message.
// This is a convenience helper to improve readability at call sites.
func IssueAt(path, code, msg string) Issue {
	return Issue{Path: path, Code: code, Message: msg, Offset: -1}
}

// IssueAtLine creates a position-anchored Issue for textual input.
func IssueAtLine(line, col int, code, msg string) Issue {
	return Issue{Line: line, Col: col, Code: code, Message: msg, Offset: -1}
}
