package expr

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType represents token type
type TokenType int

const (
	// TokenEOF end of input
	TokenEOF TokenType = iota
	// TokenKeyword keyword token
	TokenKeyword
	// TokenIdent identifier token, backtick quoted identifiers included
	TokenIdent
	// TokenOperator operator token
	TokenOperator
	// TokenNumber number token
	TokenNumber
	// TokenString string token, quotes removed
	TokenString
	// TokenLeftParen left parenthesis token
	TokenLeftParen
	// TokenRightParen right parenthesis token
	TokenRightParen
	// TokenComma comma token
	TokenComma
)

// Token represents a token
type Token struct {
	Type  TokenType
	Value string
	// Pos byte offset in the source text
	Pos int
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Value)
}

// keywords 关键字，不区分大小写
var keywords = map[string]bool{
	"AND": true, "OR": true, "NOT": true, "IS": true, "NULL": true,
	"TRUE": true, "FALSE": true, "CASE": true, "WHEN": true, "THEN": true,
	"ELSE": true, "END": true, "CAST": true, "AS": true,
}

// twoCharOperators 需要优先匹配的双字符运算符
var twoCharOperators = []string{"==", "!=", "<>", ">=", "<="}

// Tokenize breaks expression text into tokens.
// Supports numbers, identifiers, operators, parentheses and quoted literals.
func Tokenize(text string) ([]Token, error) {
	if len(strings.TrimSpace(text)) == 0 {
		return nil, fmt.Errorf("empty expression")
	}

	var tokens []Token
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		start := i
		switch {
		case text[i] == '\'' || text[i] == '"':
			s, next, err := readQuoted(text, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Type: TokenString, Value: s, Pos: start})
			i = next
		case text[i] == '`':
			s, next, err := readQuoted(text, i)
			if err != nil {
				return nil, fmt.Errorf("unterminated backtick identifier at position %d", start)
			}
			tokens = append(tokens, Token{Type: TokenIdent, Value: s, Pos: start})
			i = next
		case isDigit(text[i]) || (text[i] == '.' && i+1 < len(text) && isDigit(text[i+1])):
			next := readNumber(text, i)
			tokens = append(tokens, Token{Type: TokenNumber, Value: text[i:next], Pos: start})
			i = next
		case text[i] == '(':
			tokens = append(tokens, Token{Type: TokenLeftParen, Value: "(", Pos: start})
			i++
		case text[i] == ')':
			tokens = append(tokens, Token{Type: TokenRightParen, Value: ")", Pos: start})
			i++
		case text[i] == ',':
			tokens = append(tokens, Token{Type: TokenComma, Value: ",", Pos: start})
			i++
		case isIdentStart(r):
			for i < len(text) {
				c, n := utf8.DecodeRuneInString(text[i:])
				if !isIdentStart(c) && !unicode.IsDigit(c) {
					break
				}
				i += n
			}
			word := text[start:i]
			if keywords[strings.ToUpper(word)] {
				tokens = append(tokens, Token{Type: TokenKeyword, Value: strings.ToUpper(word), Pos: start})
			} else {
				tokens = append(tokens, Token{Type: TokenIdent, Value: word, Pos: start})
			}
		default:
			op := operatorAt(text, i)
			if op == "" {
				return nil, fmt.Errorf("unexpected character '%c' at position %d", r, i)
			}
			tokens = append(tokens, Token{Type: TokenOperator, Value: op, Pos: start})
			i += len(op)
		}
	}
	return append(tokens, Token{Type: TokenEOF, Pos: len(text)}), nil
}

// readQuoted 读取引号包围的内容，支持反斜杠转义与双写引号
func readQuoted(text string, start int) (string, int, error) {
	quote := text[start]
	var b strings.Builder
	i := start + 1
	for i < len(text) {
		c := text[i]
		switch {
		case c == '\\' && quote != '`' && i+1 < len(text):
			b.WriteByte(unescape(text[i+1]))
			i += 2
		case c == quote && i+1 < len(text) && text[i+1] == quote:
			b.WriteByte(quote)
			i += 2
		case c == quote:
			return b.String(), i + 1, nil
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, fmt.Errorf("unterminated string literal at position %d", start)
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	}
	return c
}

// readNumber 整数、小数与科学计数法
func readNumber(text string, i int) int {
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	if i < len(text) && text[i] == '.' {
		i++
		for i < len(text) && isDigit(text[i]) {
			i++
		}
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1
		if j < len(text) && (text[j] == '+' || text[j] == '-') {
			j++
		}
		if j < len(text) && isDigit(text[j]) {
			i = j
			for i < len(text) && isDigit(text[i]) {
				i++
			}
		}
	}
	return i
}

func operatorAt(text string, i int) string {
	for _, op := range twoCharOperators {
		if strings.HasPrefix(text[i:], op) {
			return op
		}
	}
	switch text[i] {
	case '+', '-', '*', '/', '%', '=', '<', '>', '.', '[', ']':
		return text[i : i+1]
	}
	return ""
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
