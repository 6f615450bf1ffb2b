package lexer

import (
	"strconv"
	"unicode"

	"github.com/conneroisu/yamlex/internal/ast"
	"github.com/conneroisu/yamlex/internal/literal"
)

type state int

const (
	stateNone state = iota
	stateVariable
	stateNumber
	stateDecimal
	stateString
	stateOperator
)

// operators is the closed set of recognized operator strings, including
// both parentheses.
var operators = map[string]bool{
	"(": true, ")": true,
	"!": true, "^": true,
	"*": true, "/": true, "%": true,
	"+": true, "-": true,
	"!=": true, "==": true,
	"&&": true, "||": true,
	"=": true, ":=": true,
}

// lexerState accumulates the two output deques plus the in-progress
// token, mirroring the shape of the source state machine.
type lexerState struct {
	values    []ast.Expression
	operators []string
	curr      state
	chars     []rune
}

func (s *lexerState) emit() string {
	str := string(s.chars)
	s.chars = s.chars[:0]

	return str
}

// Lex converts src into a values deque (Lit/Variable leaves, in source
// order) and an operators deque (operator strings including parentheses,
// in source order). Both are read front-first by the parser.
func Lex(src string) (values []ast.Expression, ops []string, err error) {
	st := &lexerState{}

	for _, ch := range src {
		if ch == ' ' || ch == '\t' || ch == '\n' {
			if st.curr == stateString {
				st.chars = append(st.chars, ch)
			}

			continue
		}

		if err := appendCh(ch, st); err != nil {
			return nil, nil, err
		}
	}

	if len(st.chars) > 0 {
		if err := flush(st); err != nil {
			return nil, nil, err
		}
	} else if st.curr == stateString {
		return nil, nil, newError(InvalidQuoteAppend, "unterminated string")
	}

	return st.values, st.operators, nil
}

// flush emits whatever partial token remains in st.chars according to the
// current state, appending it to the appropriate deque.
func flush(st *lexerState) error {
	if st.curr == stateOperator {
		return flushOperator(st)
	}

	curr := st.emit()

	switch st.curr {
	case stateVariable:
		st.values = append(st.values, &ast.Variable{Name: curr})
	case stateNumber:
		n, _ := strconv.ParseInt(curr, 10, 32)
		st.values = append(st.values, &ast.Lit{Value: literal.Number(int32(n))})
	case stateDecimal:
		d, _ := strconv.ParseFloat(curr, 64)
		st.values = append(st.values, &ast.Lit{Value: literal.Decimal(d)})
	case stateString:
		return newError(InvalidQuoteAppend, "unterminated string")
	default:
		return newError(ResultNotLiteral, curr)
	}

	return nil
}

func appendCh(ch rune, st *lexerState) error {
	switch classify(ch) {
	case classLetter:
		return appendLetter(ch, st)
	case classDigit:
		return appendDigit(ch, st)
	case classQuote:
		return appendQuote(st)
	case classDot:
		return appendDot(ch, st)
	default:
		return appendOperator(ch, st)
	}
}

type charClass int

const (
	classLetter charClass = iota
	classDigit
	classQuote
	classDot
	classOperator
)

func classify(ch rune) charClass {
	switch {
	case unicode.IsLetter(ch) || ch == '_':
		return classLetter
	case ch >= '0' && ch <= '9':
		return classDigit
	case ch == '"':
		return classQuote
	case ch == '.':
		return classDot
	default:
		return classOperator
	}
}

func appendLetter(ch rune, st *lexerState) error {
	switch st.curr {
	case stateVariable, stateString:
		st.chars = append(st.chars, ch)
	case stateNumber, stateDecimal:
		return newError(LetterAfterNumber, string(ch))
	case stateOperator:
		if err := flushOperator(st); err != nil {
			return err
		}

		st.chars = append(st.chars, ch)
		st.curr = stateVariable
	case stateNone:
		st.chars = append(st.chars, ch)
		st.curr = stateVariable
	}

	return nil
}

func appendDigit(ch rune, st *lexerState) error {
	switch st.curr {
	case stateVariable, stateNumber, stateDecimal, stateString:
		st.chars = append(st.chars, ch)
	case stateOperator:
		if err := flushOperator(st); err != nil {
			return err
		}

		st.chars = append(st.chars, ch)
		st.curr = stateNumber
	case stateNone:
		st.chars = append(st.chars, ch)
		st.curr = stateNumber
	}

	return nil
}

func appendOperator(ch rune, st *lexerState) error {
	switch st.curr {
	case stateVariable:
		st.values = append(st.values, &ast.Variable{Name: st.emit()})
		st.chars = append(st.chars, ch)
		st.curr = stateOperator
	case stateNumber:
		n, _ := strconv.ParseInt(st.emit(), 10, 32)
		st.values = append(st.values, &ast.Lit{Value: literal.Number(int32(n))})
		st.chars = append(st.chars, ch)
		st.curr = stateOperator
	case stateDecimal:
		d, _ := strconv.ParseFloat(st.emit(), 64)
		st.values = append(st.values, &ast.Lit{Value: literal.Decimal(d)})
		st.chars = append(st.chars, ch)
		st.curr = stateOperator
	case stateString:
		st.chars = append(st.chars, ch)
	case stateOperator:
		extended := string(st.chars) + string(ch)
		if operators[extended] {
			st.chars = append(st.chars, ch)

			return nil
		}

		if err := flushOperator(st); err != nil {
			return err
		}

		st.chars = append(st.chars, ch)
	case stateNone:
		st.chars = append(st.chars, ch)
		st.curr = stateOperator
	}

	return nil
}

func appendQuote(st *lexerState) error {
	switch st.curr {
	case stateString:
		st.values = append(st.values, &ast.Lit{Value: literal.Str(st.emit())})
		st.curr = stateNone
	case stateNumber, stateDecimal, stateVariable:
		return newError(InvalidQuoteAppend, "quote after "+stateName(st.curr))
	case stateOperator:
		if err := flushOperator(st); err != nil {
			return err
		}

		st.curr = stateString
	case stateNone:
		st.curr = stateString
	}

	return nil
}

func appendDot(ch rune, st *lexerState) error {
	switch st.curr {
	case stateString:
		st.chars = append(st.chars, ch)
	case stateNumber:
		st.chars = append(st.chars, ch)
		st.curr = stateDecimal
	case stateOperator, stateDecimal, stateVariable:
		return newError(InvalidDotAppend, "dot after "+stateName(st.curr))
	default:
		return newError(InvalidDotAppend, "dot at start of expression")
	}

	return nil
}

// flushOperator moves the accumulated operator chars into the operators
// deque, rejecting anything that never became a recognized operator.
func flushOperator(st *lexerState) error {
	op := st.emit()
	if !operators[op] {
		return newError(UnknownOperator, op)
	}

	st.operators = append(st.operators, op)

	return nil
}

func stateName(s state) string {
	switch s {
	case stateVariable:
		return "variable"
	case stateNumber:
		return "number"
	case stateDecimal:
		return "decimal"
	case stateString:
		return "string"
	case stateOperator:
		return "operator"
	default:
		return "none"
	}
}
