package svgshape

import (
	"strconv"
	"strings"
	"unicode/utf8"

	gl "github.com/rustyoz/genericlexer"
)

type tokenKind int

const (
	letterToken tokenKind = iota
	numberToken
)

// token is a letter or a number pulled out of the generic lexer. Separators
// (whitespace and commas) are dropped; they are equivalent in path data.
// pos is the byte offset of the token in the caller's input.
type token struct {
	kind  tokenKind
	value string
	num   float64
	pos   int
}

// lexerInput is the input rewritten into what the generic lexer can walk
// through, with the offset in the original input of every byte.
//
// The lexer stops at characters it has no state for, cannot start a
// number with a dot, and reads a sign right after a number's first digit
// as part of that number. So \r, \f and \v become spaces, numbers written
// as ".5" or "1.5.5" get a leading zero (and a separating space), and a
// sign that starts a new number is set apart with a space.
type lexerInput struct {
	src     string
	offsets []int
}

func prepareLexerInput(input string) (lexerInput, error) {
	var (
		b       strings.Builder
		offsets = make([]int, 0, len(input)+1)
		// inside a number, and whether it already has a dot or exponent
		inNum, closed bool
		prev          byte
	)
	write := func(s string, at int) {
		b.WriteString(s)
		for range s {
			offsets = append(offsets, at)
		}
	}
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c >= utf8.RuneSelf {
			r, _ := utf8.DecodeRuneInString(input[i:])
			return lexerInput{}, &SyntaxError{Input: input, Pos: i, Token: string(r), Msg: "unexpected character"}
		}
		switch {
		case c >= '0' && c <= '9':
			if !inNum {
				inNum, closed = true, false
			}
			write(string(c), i)
		case c == '.':
			switch {
			case inNum && !closed:
				write(".", i)
			case inNum:
				write(" 0.", i)
			default:
				write("0.", i)
			}
			inNum, closed = true, true
		case c == 'e' || c == 'E':
			if inNum {
				closed = true
			}
			write(string(c), i)
		case c == '-' || c == '+':
			exponent := inNum && (prev == 'e' || prev == 'E')
			if inNum && !exponent {
				write(" ", i)
			}
			inNum = exponent
			write(string(c), i)
		case c == '\r' || c == '\f' || c == '\v':
			inNum = false
			write(" ", i)
		default:
			inNum = false
			write(string(c), i)
		}
		prev = c
	}
	offsets = append(offsets, len(input))
	return lexerInput{src: b.String(), offsets: offsets}, nil
}

// text returns the original input behind src[from:to].
func (li lexerInput) text(input string, from, to int) string {
	return input[li.offsets[from]:li.offsets[to]]
}

// tokenize runs the generic lexer over input until the end of the string
// and returns the letters and numbers it saw, in order. Any character the
// lexer cannot place is a SyntaxError; nothing is skipped silently.
func tokenize(name, input string) ([]token, error) {
	li, err := prepareLexerInput(input)
	if err != nil {
		return nil, err
	}
	l, _ := gl.Lex(name, li.src)
	// the lexer goroutine blocks until every item, including the trailing
	// EOS it sends after ours, has been received
	defer func() {
		for range l.Items {
		}
	}()

	var (
		toks []token
		// src offset of the next item
		at int
		// exponent marker waiting for its digits, see below
		pendingExp bool
		// previous item was a number with no separator after it
		afterNumber bool
		// src offset of the last number item
		numStart int
	)
	syntaxError := func(from, to int, msg string) error {
		return &SyntaxError{Input: input, Pos: li.offsets[from], Token: li.text(input, from, to), Msg: msg}
	}
	for {
		i := l.NextItem()
		start := at
		at += len(i.Value)
		adjacent := afterNumber
		afterNumber = i.Type == gl.ItemNumber

		switch i.Type {
		case gl.ItemEOS:
			if start < len(li.src) {
				return nil, syntaxError(start, start+1, "unexpected character")
			}
			if pendingExp {
				return nil, syntaxError(start, start, "incomplete exponent")
			}
			return toks, nil
		case gl.ItemError:
			return nil, syntaxError(start, at, "unexpected character")
		case gl.ItemNumber:
			if pendingExp {
				// "1E-5" lexed as number, letter, number
				prev := &toks[len(toks)-1]
				n, err := parseNumber(li.src[numStart:at])
				if err != nil {
					return nil, syntaxError(numStart, at, "bad number")
				}
				prev.value = li.text(input, numStart, at)
				prev.num = n
				pendingExp = false
				continue
			}
			n, err := parseNumber(i.Value)
			if err != nil {
				return nil, syntaxError(start, at, "bad number")
			}
			numStart = start
			toks = append(toks, token{kind: numberToken, value: li.text(input, start, at), num: n, pos: li.offsets[start]})
		case gl.ItemLetter, gl.ItemWord:
			text := li.text(input, start, at)
			if (text == "e" || text == "E") && adjacent {
				pendingExp = true
				continue
			}
			if pendingExp {
				return nil, syntaxError(start, at, "incomplete exponent")
			}
			for j := 0; j < len(text); j++ {
				toks = append(toks, token{kind: letterToken, value: text[j : j+1], pos: li.offsets[start+j]})
			}
		default:
			if pendingExp {
				return nil, syntaxError(start, at, "incomplete exponent")
			}
			if strings.Trim(i.Value, " \t\n,") != "" {
				return nil, syntaxError(start, at, "unexpected token")
			}
		}
	}
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
