package parser

import (
	"minic/internal/diagnostics"
	"minic/internal/frontend/ast"
	"minic/internal/tokens"
	"minic/internal/types"
)

// parseExpr: ExpressionPart ('+' ExpressionPart)*
//
// The loop folds to the left, so 1 + 2 + 3 builds ((1 + 2) + 3).
func (p *Parser) parseExpr() (ast.Expression, error) {
	left, err := p.parseExprPart()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != tokens.PLUS_TOKEN {
			return left, nil
		}
		op, err := p.lex.Read()
		if err != nil {
			return nil, err
		}

		right, err := p.parseExprPart()
		if err != nil {
			return nil, err
		}

		bin, err := ast.NewBinaryExpr(left, op, right)
		if err != nil {
			return nil, err
		}
		left = bin
	}
}

// parseExprPart: NUMBER
func (p *Parser) parseExprPart() (ast.Expression, error) {
	tok, err := p.lex.Read()
	if err != nil {
		return nil, err
	}
	if tok.Kind != tokens.NUMBER_TOKEN {
		return nil, diagnostics.UnexpectedToken(p.lex.Location(tok), tok.Describe()).
			WithCode(diagnostics.ErrInvalidExpression).
			WithHelp("expected an integer literal")
	}
	return &ast.BasicLit{
		Value:    tok.Number,
		Raw:      tok.Value,
		Type:     types.Int,
		Location: p.makeLocation(tok.Start, tok.End),
	}, nil
}
