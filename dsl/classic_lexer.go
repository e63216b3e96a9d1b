package dsl

import "strings"

type classicTokenKind int

const (
	tokenEOF classicTokenKind = iota
	tokenIdent
	tokenString
	tokenNumber
	tokenPunct
)

type classicToken struct {
	kind classicTokenKind
	text string
	line int // 1-based
	col  int // 1-based
}

type classicLexer struct {
	input  string
	pos    int
	line   int
	col    int
	peeked *classicToken
}

func newClassicLexer(input string) *classicLexer {
	return &classicLexer{input: input, line: 1, col: 1}
}

func (l *classicLexer) peek() classicToken {
	if l.peeked == nil {
		tok := l.scan()
		l.peeked = &tok
	}
	return *l.peeked
}

func (l *classicLexer) next() classicToken {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok
	}
	return l.scan()
}

// rawUntil captures unlexed text up to (not including) the stop byte, for
// condition phrases that are not token streams. Fails when the stop byte
// never appears. Any pending peeked token is abandoned first.
func (l *classicLexer) rawUntil(stop byte) (string, bool) {
	l.peeked = nil
	idx := strings.IndexByte(l.input[l.pos:], stop)
	if idx < 0 {
		return "", false
	}
	raw := l.input[l.pos : l.pos+idx]
	l.advance(len(raw))
	return raw, true
}

func (l *classicLexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.input); i++ {
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *classicLexer) scan() classicToken {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			l.advance(1)
			continue
		}
		break
	}
	if l.pos >= len(l.input) {
		return classicToken{kind: tokenEOF, line: l.line, col: l.col}
	}

	startLine, startCol := l.line, l.col
	c := l.input[l.pos]
	switch {
	case c == '"':
		l.advance(1)
		var b strings.Builder
		for l.pos < len(l.input) && l.input[l.pos] != '"' {
			b.WriteByte(l.input[l.pos])
			l.advance(1)
		}
		if l.pos < len(l.input) {
			l.advance(1)
		}
		return classicToken{kind: tokenString, text: b.String(), line: startLine, col: startCol}

	case c >= '0' && c <= '9':
		start := l.pos
		for l.pos < len(l.input) {
			d := l.input[l.pos]
			if d >= '0' && d <= '9' {
				l.advance(1)
				continue
			}
			// A single dot continues the number; ".." is the range punct.
			if d == '.' && l.pos+1 < len(l.input) && l.input[l.pos+1] != '.' {
				l.advance(1)
				continue
			}
			break
		}
		return classicToken{kind: tokenNumber, text: l.input[start:l.pos], line: startLine, col: startCol}

	case c == '.' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '.':
		l.advance(2)
		return classicToken{kind: tokenPunct, text: "..", line: startLine, col: startCol}

	case strings.IndexByte("[]{}=,@", c) >= 0:
		l.advance(1)
		return classicToken{kind: tokenPunct, text: string(c), line: startLine, col: startCol}

	default:
		start := l.pos
		for l.pos < len(l.input) {
			d := l.input[l.pos]
			if d == ' ' || d == '\t' || d == '\r' || d == '\n' || d == '"' || strings.IndexByte("[]{}=,@", d) >= 0 {
				break
			}
			if d == '.' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '.' {
				break
			}
			l.advance(1)
		}
		if l.pos == start {
			l.advance(1)
		}
		return classicToken{kind: tokenIdent, text: l.input[start:l.pos], line: startLine, col: startCol}
	}
}
