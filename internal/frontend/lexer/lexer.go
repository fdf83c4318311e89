package lexer

import (
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"minic/internal/diagnostics"
	"minic/internal/source"
	"minic/internal/tokens"
)

// Lexer turns source text into tokens on demand. It keeps at most one token
// of lookahead; Peek fills it and Read drains it.
type Lexer struct {
	FilePath   string
	sourceCode string
	Position   source.Position
	peeked     *tokens.Token
}

func New(filepath, content string) *Lexer {
	return &Lexer{
		FilePath:   filepath,
		sourceCode: content,
		Position:   source.Start(),
	}
}

// Read returns the next token and advances past it.
func (lex *Lexer) Read() (tokens.Token, error) {
	if lex.peeked != nil {
		tok := *lex.peeked
		lex.peeked = nil
		return tok, nil
	}
	return lex.scan()
}

// Peek returns the next token without consuming it.
func (lex *Lexer) Peek() (tokens.Token, error) {
	if lex.peeked == nil {
		tok, err := lex.scan()
		if err != nil {
			return tokens.Token{}, err
		}
		lex.peeked = &tok
	}
	return *lex.peeked, nil
}

// Match reads one token and fails unless it has the expected kind.
func (lex *Lexer) Match(expected tokens.TOKEN) (tokens.Token, error) {
	tok, err := lex.Read()
	if err != nil {
		return tok, err
	}
	if tok.Kind != expected {
		return tok, diagnostics.ExpectedToken(lex.location(tok.Start, tok.End), string(expected), tok.Describe())
	}
	return tok, nil
}

// EOF reports whether only whitespace remains before the end of input.
func (lex *Lexer) EOF() bool {
	if lex.peeked != nil {
		return lex.peeked.Kind == tokens.EOF_TOKEN
	}
	for _, ch := range lex.remainder() {
		if !unicode.IsSpace(ch) {
			return false
		}
	}
	return true
}

// Location builds a source location in this lexer's file.
func (lex *Lexer) Location(tok tokens.Token) *source.Location {
	return lex.location(tok.Start, tok.End)
}

func (lex *Lexer) location(start, end source.Position) *source.Location {
	return source.NewLocation(&lex.FilePath, &start, &end)
}

func (lex *Lexer) remainder() string {
	return lex.sourceCode[lex.Position.Index:]
}

func (lex *Lexer) atEOF() bool {
	return lex.Position.Index >= len(lex.sourceCode)
}

func (lex *Lexer) advance(match string) {
	lex.Position.Advance(match)
}

func (lex *Lexer) skipWhitespace() {
	for !lex.atEOF() {
		ch, size := utf8.DecodeRuneInString(lex.remainder())
		if !unicode.IsSpace(ch) {
			return
		}
		lex.advance(lex.remainder()[:size])
	}
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentPart(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }

// takeWhile returns the longest prefix of the remaining input whose bytes satisfy pred.
func (lex *Lexer) takeWhile(pred func(byte) bool) string {
	rest := lex.remainder()
	n := 0
	for n < len(rest) && pred(rest[n]) {
		n++
	}
	return rest[:n]
}

func (lex *Lexer) scan() (tokens.Token, error) {
	lex.skipWhitespace()

	start := lex.Position
	if lex.atEOF() {
		return tokens.NewToken(tokens.EOF_TOKEN, "", start, start), nil
	}

	ch := lex.remainder()[0]
	switch {
	case isIdentStart(ch):
		return lex.identifier(start), nil
	case isDigit(ch):
		return lex.number(start)
	}

	if kind, ok := tokens.Punctuation(ch); ok {
		lex.advance(string(kind))
		return tokens.NewToken(kind, string(kind), start, lex.Position), nil
	}

	raw := lex.remainder()
	bad, size := utf8.DecodeRuneInString(raw)
	text := string(bad)
	if bad == utf8.RuneError && size == 1 {
		text = fmt.Sprintf("\\x%02x", raw[0])
	}
	end := start
	end.Advance(raw[:size])
	return tokens.Token{}, diagnostics.UnrecognizedCharacter(lex.location(start, end), text, start.Index)
}

func (lex *Lexer) identifier(start source.Position) tokens.Token {
	word := lex.takeWhile(isIdentPart)
	lex.advance(word)
	if tokens.IsKeyword(word) {
		return tokens.NewToken(tokens.TOKEN(word), word, start, lex.Position)
	}
	return tokens.NewToken(tokens.IDENTIFIER_TOKEN, word, start, lex.Position)
}

func (lex *Lexer) number(start source.Position) (tokens.Token, error) {
	digits := lex.takeWhile(isDigit)
	lex.advance(digits)
	// Literals are i32; anything wider is rejected here rather than in codegen.
	value, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return tokens.Token{}, diagnostics.InvalidNumber(lex.location(start, lex.Position), digits)
	}
	return tokens.NewNumberToken(digits, value, start, lex.Position), nil
}

// Tokenize drains the lexer, returning every token up to and including the
// end-of-file token. When debug is set each token is written to w.
func (lex *Lexer) Tokenize(w io.Writer, debug bool) ([]tokens.Token, error) {
	var toks []tokens.Token
	for {
		tok, err := lex.Read()
		if err != nil {
			return toks, err
		}
		if debug && w != nil {
			tok.Debug(w, lex.FilePath)
		}
		toks = append(toks, tok)
		if tok.Kind == tokens.EOF_TOKEN {
			return toks, nil
		}
	}
}
