package parser

import (
	"minic/internal/diagnostics"
	"minic/internal/frontend/ast"
	"minic/internal/frontend/lexer"
	"minic/internal/source"
	"minic/internal/tokens"
	"minic/internal/types"
)

// The Parser builds an AST from the lexer's token stream with one token of
// lookahead. The first error aborts parsing; warnings go to an optional bag
// and never stop it.

// scope tells statement parsing where it is; only some statements are legal
// in each place.
type scope int

const (
	scopeScript scope = iota
	scopeFunction
)

// Parser holds temporary state during parsing of a single file.
type Parser struct {
	lex      *lexer.Lexer
	filepath string
	diag     *diagnostics.DiagnosticBag
}

// Parse parses a whole script from lex. Warnings are dropped.
func Parse(lex *lexer.Lexer) (*ast.Script, error) {
	return ParseWithDiagnostics(lex, nil)
}

// ParseWithDiagnostics parses like Parse and records warnings in bag.
// A nil bag discards them.
func ParseWithDiagnostics(lex *lexer.Lexer, bag *diagnostics.DiagnosticBag) (*ast.Script, error) {
	p := &Parser{
		lex:      lex,
		filepath: lex.FilePath,
		diag:     bag,
	}
	return p.parseScript()
}

func (p *Parser) warn(diag *diagnostics.Diagnostic) {
	if p.diag != nil {
		p.diag.Add(diag)
	}
}

// ParseString lexes and parses content in one call.
func ParseString(filepath, content string) (*ast.Script, error) {
	return Parse(lexer.New(filepath, content))
}

// parseScript parses the entire file (all top-level declarations)
func (p *Parser) parseScript() (*ast.Script, error) {
	start := p.lex.Position
	script := &ast.Script{
		FullPath: p.filepath,
		Nodes:    []ast.Node{},
	}

	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == tokens.EOF_TOKEN {
			script.Location = p.makeLocation(start, tok.End)
			return script, nil
		}
		node, _, err := p.parseStmt(scopeScript, nil)
		if err != nil {
			return nil, err
		}
		script.Nodes = append(script.Nodes, node)
	}
}

// parseStmt parses one statement and its optional ';'. retType is the return
// type inferred so far for the enclosing function; the updated value is
// returned.
func (p *Parser) parseStmt(where scope, retType types.SemType) (ast.Node, types.SemType, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, retType, err
	}

	var node ast.Node
	switch tok.Kind {
	case tokens.FUNCTION_TOKEN:
		if where != scopeScript {
			return nil, retType, diagnostics.UnexpectedToken(p.lex.Location(tok), tok.Describe()).
				WithCode(diagnostics.ErrInvalidStatement).
				WithNote("functions can only be declared at the top level")
		}
		node, err = p.parseFuncDecl()
	case tokens.RETURN_TOKEN:
		if where != scopeFunction {
			return nil, retType, diagnostics.UnexpectedToken(p.lex.Location(tok), tok.Describe()).
				WithCode(diagnostics.ErrInvalidStatement).
				WithNote("return statements must be inside a function body")
		}
		node, retType, err = p.parseReturnStmt(retType)
	default:
		return nil, retType, diagnostics.UnexpectedToken(p.lex.Location(tok), tok.Describe()).
			WithCode(diagnostics.ErrInvalidStatement).
			WithHelp("statements start with 'function' or 'return'")
	}
	if err != nil {
		return nil, retType, err
	}

	if err := p.skipSemicolon(); err != nil {
		return nil, retType, err
	}
	return node, retType, nil
}

// skipSemicolon consumes a statement terminator if there is one.
func (p *Parser) skipSemicolon() error {
	tok, err := p.lex.Peek()
	if err != nil {
		return err
	}
	if tok.Kind == tokens.SEMICOLON_TOKEN {
		_, err = p.lex.Read()
	}
	return err
}

func (p *Parser) makeLocation(start, end source.Position) source.Location {
	return *source.NewLocation(&p.filepath, &start, &end)
}
