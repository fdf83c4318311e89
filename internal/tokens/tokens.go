package tokens

import (
	"fmt"
	"io"

	"minic/colors"
	"minic/internal/source"
)

type TOKEN string

const (
	//keywords
	FUNCTION_TOKEN TOKEN = "function"
	RETURN_TOKEN   TOKEN = "return"

	IDENTIFIER_TOKEN TOKEN = "identifier"
	NUMBER_TOKEN     TOKEN = "numeric literal"

	//arithmetic operators
	PLUS_TOKEN TOKEN = "+"

	//delimiters
	OPEN_PAREN      TOKEN = "("
	CLOSE_PAREN     TOKEN = ")"
	OPEN_CURLY      TOKEN = "{"
	CLOSE_CURLY     TOKEN = "}"
	SEMICOLON_TOKEN TOKEN = ";"

	EOF_TOKEN TOKEN = "end_of_file"
)

var keyWordsMap = map[TOKEN]bool{
	FUNCTION_TOKEN: true,
	RETURN_TOKEN:   true,
}

var punctuation = map[byte]TOKEN{
	'(': OPEN_PAREN,
	')': CLOSE_PAREN,
	'{': OPEN_CURLY,
	'}': CLOSE_CURLY,
	';': SEMICOLON_TOKEN,
	'+': PLUS_TOKEN,
}

func IsKeyword(token string) bool {
	return keyWordsMap[TOKEN(token)]
}

// Punctuation returns the kind of a single-character punctuation token.
func Punctuation(ch byte) (TOKEN, bool) {
	kind, ok := punctuation[ch]
	return kind, ok
}

// Token is an immutable lexical unit. Number is only meaningful for NUMBER_TOKEN.
type Token struct {
	Kind   TOKEN
	Value  string
	Number int64
	Start  source.Position
	End    source.Position
}

// Describe renders the token for "saw X" style messages.
func (t Token) Describe() string {
	switch t.Kind {
	case IDENTIFIER_TOKEN, NUMBER_TOKEN:
		return fmt.Sprintf("%s '%s'", t.Kind, t.Value)
	case EOF_TOKEN:
		return "end of file"
	default:
		return fmt.Sprintf("'%s'", t.Kind)
	}
}

func (t Token) Debug(w io.Writer, filename string) {
	colors.GREY.Fprintf(w, "%s:%d:%d ", filename, t.Start.Line, t.Start.Column)
	if t.Value == string(t.Kind) {
		fmt.Fprintf(w, "%q\n", t.Value)
	} else {
		fmt.Fprintf(w, "%q ('%v')\n", t.Value, t.Kind)
	}
}

func NewToken(kind TOKEN, value string, start source.Position, end source.Position) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Start: start,
		End:   end,
	}
}

func NewNumberToken(value string, number int64, start source.Position, end source.Position) Token {
	tok := NewToken(NUMBER_TOKEN, value, start, end)
	tok.Number = number
	return tok
}
