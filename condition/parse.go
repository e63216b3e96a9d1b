package condition

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	popupkit "github.com/spikehq/popupkit"
)

// Parse turns a guard expression into its AST. Failures are reported as
// popupkit.Issues anchored to the offending column.
func Parse(input string) (Expr, error) {
	p := &parser{input: input}
	p.next()
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errAt(p.tok.pos, fmt.Sprintf("unexpected %q after expression", p.tok.text))
	}
	return expr, nil
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokRef         // @identifier
	tokIdent
	tokNumber
	tokString
	tokOp // && || ! > < >= <= == != =
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokKind
	text string
	pos  int
}

type parser struct {
	input string
	off   int
	tok   token
}

func (p *parser) errAt(pos int, msg string) error {
	return popupkit.AppendIssues(nil, popupkit.IssueAtLine(1, pos+1, popupkit.CodeParseError, "condition: "+msg))
}

func (p *parser) next() {
	for p.off < len(p.input) && (p.input[p.off] == ' ' || p.input[p.off] == '\t') {
		p.off++
	}
	start := p.off
	if p.off >= len(p.input) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}
	c := p.input[p.off]
	switch {
	case c == '(':
		p.off++
		p.tok = token{kind: tokLParen, text: "(", pos: start}
	case c == ')':
		p.off++
		p.tok = token{kind: tokRParen, text: ")", pos: start}
	case c == ',':
		p.off++
		p.tok = token{kind: tokComma, text: ",", pos: start}
	case c == '@':
		p.off++
		id := p.scanIdent()
		p.tok = token{kind: tokRef, text: id, pos: start}
	case c == '"' || c == '\'':
		quote := c
		p.off++
		var b strings.Builder
		for p.off < len(p.input) && p.input[p.off] != quote {
			b.WriteByte(p.input[p.off])
			p.off++
		}
		if p.off < len(p.input) {
			p.off++
		}
		p.tok = token{kind: tokString, text: b.String(), pos: start}
	case strings.ContainsRune("&|!<>=", rune(c)):
		op := p.scanOp()
		p.tok = token{kind: tokOp, text: op, pos: start}
	case c >= '0' && c <= '9' || c == '-' && p.off+1 < len(p.input) && p.input[p.off+1] >= '0' && p.input[p.off+1] <= '9':
		p.tok = token{kind: tokNumber, text: p.scanNumber(), pos: start}
	default:
		id := p.scanIdent()
		if id == "" {
			p.off++
			p.tok = token{kind: tokIdent, text: string(c), pos: start}
			return
		}
		p.tok = token{kind: tokIdent, text: id, pos: start}
	}
}

func (p *parser) scanIdent() string {
	start := p.off
	for p.off < len(p.input) {
		r := rune(p.input[p.off])
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			p.off++
			continue
		}
		break
	}
	return p.input[start:p.off]
}

func (p *parser) scanNumber() string {
	start := p.off
	if p.input[p.off] == '-' {
		p.off++
	}
	for p.off < len(p.input) {
		c := p.input[p.off]
		if c >= '0' && c <= '9' || c == '.' {
			p.off++
			continue
		}
		break
	}
	return p.input[start:p.off]
}

func (p *parser) scanOp() string {
	two := map[string]bool{"&&": true, "||": true, ">=": true, "<=": true, "==": true, "!=": true}
	if p.off+1 < len(p.input) && two[p.input[p.off:p.off+2]] {
		op := p.input[p.off : p.off+2]
		p.off += 2
		return op
	}
	op := string(p.input[p.off])
	p.off++
	return op
}

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOp && p.tok.text == "||" {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: "||", L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOp && p.tok.text == "&&" {
		p.next()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: "&&", L: left, R: right}
	}
	return left, nil
}

var comparisonOps = map[string]string{
	">": ">", "<": "<", ">=": ">=", "<=": "<=", "==": "==", "!=": "!=",
	"=": "==", // single = accepted as equality
}

func (p *parser) parseComparison() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.tok.kind == tokOp {
		if op, ok := comparisonOps[p.tok.text]; ok {
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			return Binary{Op: op, L: left, R: right}, nil
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if p.tok.kind == tokOp && p.tok.text == "!" {
		p.next()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{X: inner}, nil
	}
	return p.parsePrimary()
}

var callNames = map[string]bool{"count": true, "selected": true, "any": true, "all": true}

func (p *parser) parsePrimary() (Expr, error) {
	switch p.tok.kind {
	case tokLParen:
		p.next()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, p.errAt(p.tok.pos, "expected closing parenthesis")
		}
		p.next()
		return inner, nil
	case tokRef:
		ref := Ref{ID: p.tok.text}
		p.next()
		return ref, nil
	case tokNumber:
		f, err := strconv.ParseFloat(p.tok.text, 64)
		if err != nil {
			return nil, p.errAt(p.tok.pos, fmt.Sprintf("invalid number %q", p.tok.text))
		}
		p.next()
		return Number{Value: f}, nil
	case tokString:
		s := Text{Value: p.tok.text}
		p.next()
		return s, nil
	case tokIdent:
		name := p.tok.text
		pos := p.tok.pos
		p.next()
		if p.tok.kind == tokLParen {
			if !callNames[name] {
				return nil, p.errAt(pos, fmt.Sprintf("unknown function %q", name))
			}
			p.next()
			var args []Expr
			for p.tok.kind != tokRParen {
				arg, err := p.parseOr()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.tok.kind == tokComma {
					p.next()
					continue
				}
				break
			}
			if p.tok.kind != tokRParen {
				return nil, p.errAt(p.tok.pos, fmt.Sprintf("unterminated %s(...)", name))
			}
			p.next()
			return Call{Name: name, Args: args}, nil
		}
		// Bare words compare as strings: `@theme == dark`.
		return Text{Value: name}, nil
	case tokEOF:
		return nil, p.errAt(p.tok.pos, "unexpected end of expression")
	default:
		return nil, p.errAt(p.tok.pos, fmt.Sprintf("unexpected token %q", p.tok.text))
	}
}
