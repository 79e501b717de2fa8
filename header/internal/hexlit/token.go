package hexlit

import (
	"unicode"
)

type Type int

const (
	Number Type = iota
	Comma
	Other
)

func (t Type) String() string {
	switch t {
	case Number:
		return "number"
	case Comma:
		return "','"
	case Other:
		return "token"
	}
	return "unknown"
}

type Token struct {
	Value string
	Type  Type
	Line  int
}

// Tokenize splits the body of a C array initializer into numbers and commas.
// Whitespace and C comments are dropped. Anything else becomes an Other token
// so the caller can report it with its line.
func Tokenize(input string) []Token {
	var tokens []Token
	line := 1
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			line++
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}

		// Line comment
		if r == '/' && i+1 < len(runes) && runes[i+1] == '/' {
			for i+1 < len(runes) && runes[i+1] != '\n' {
				i++
			}
			continue
		}

		// Block comment
		if r == '/' && i+1 < len(runes) && runes[i+1] == '*' {
			i += 2
			for i < len(runes) && !(runes[i] == '*' && i+1 < len(runes) && runes[i+1] == '/') {
				if runes[i] == '\n' {
					line++
				}
				i++
			}
			i++
			continue
		}

		if r == ',' {
			tokens = append(tokens, Token{",", Comma, line})
			continue
		}

		// Number: decimal or 0x-prefixed hex, with optional C integer suffix
		if unicode.IsDigit(r) {
			start := i
			for i < len(runes) && isNumberRune(runes[i]) {
				i++
			}
			tokens = append(tokens, Token{string(runes[start:i]), Number, line})
			i--
			continue
		}

		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) && runes[i] != ',' {
			i++
		}
		tokens = append(tokens, Token{string(runes[start:i]), Other, line})
		i--
	}

	return tokens
}

func isNumberRune(c rune) bool {
	return unicode.IsDigit(c) ||
		c == 'x' || c == 'X' ||
		(c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') ||
		c == 'u' || c == 'U'
}
