package parser

import (
	"minic/internal/diagnostics"
	"minic/internal/frontend/ast"
	"minic/internal/source"
	"minic/internal/tokens"
	"minic/internal/types"
)

// parseFuncDecl: function name() { ... }
func (p *Parser) parseFuncDecl() (*ast.FuncDecl, error) {
	kw, err := p.lex.Match(tokens.FUNCTION_TOKEN)
	if err != nil {
		return nil, err
	}

	nameTok, err := p.lex.Match(tokens.IDENTIFIER_TOKEN)
	if err != nil {
		return nil, err
	}
	name := &ast.IdentifierExpr{
		Name:     nameTok.Value,
		Location: p.makeLocation(nameTok.Start, nameTok.End),
	}

	if _, err := p.lex.Match(tokens.OPEN_PAREN); err != nil {
		return nil, err
	}
	if tok, err := p.lex.Peek(); err != nil {
		return nil, err
	} else if tok.Kind != tokens.CLOSE_PAREN {
		return nil, diagnostics.ExpectedToken(p.lex.Location(tok), string(tokens.CLOSE_PAREN), tok.Describe()).
			WithNote("functions take no parameters")
	}
	if _, err := p.lex.Read(); err != nil {
		return nil, err
	}

	// each declaration starts with no inferred return type
	body, retType, err := p.parseBlock(nil)
	if err != nil {
		return nil, err
	}

	return &ast.FuncDecl{
		Name:       name,
		Body:       body,
		ReturnType: retType,
		Location:   p.makeLocation(kw.Start, *body.End),
	}, nil
}

// parseReturnStmt: return Expression
func (p *Parser) parseReturnStmt(retType types.SemType) (*ast.ReturnStmt, types.SemType, error) {
	kw, err := p.lex.Match(tokens.RETURN_TOKEN)
	if err != nil {
		return nil, retType, err
	}

	result, err := p.parseExpr()
	if err != nil {
		return nil, retType, err
	}

	stmt := &ast.ReturnStmt{
		Result:   result,
		Location: p.makeLocation(kw.Start, *result.Loc().End),
	}

	retType, err = checkReturnType(retType, result.SemType(), &stmt.Location)
	if err != nil {
		return nil, retType, err
	}
	return stmt, retType, nil
}

// checkReturnType folds one return statement's type into the function's
// inferred return type. The first return decides; later ones must agree.
func checkReturnType(current, got types.SemType, loc *source.Location) (types.SemType, error) {
	if current == nil {
		return got, nil
	}
	if !types.Equal(current, got) {
		return current, diagnostics.TypeMismatch(loc, "return type mismatch", types.Name(current), types.Name(got)).
			WithCode(diagnostics.ErrInvalidReturn).
			WithNote("the first return statement fixed the return type to " + types.Name(current))
	}
	return current, nil
}
