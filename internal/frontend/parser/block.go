package parser

import (
	"minic/internal/diagnostics"
	"minic/internal/frontend/ast"
	"minic/internal/tokens"
	"minic/internal/types"
)

// parseBlock: '{' Statement+ '}'
//
// The first statement is parsed before looking for '}', so "{}" is rejected.
func (p *Parser) parseBlock(retType types.SemType) (*ast.Block, types.SemType, error) {
	open, err := p.lex.Match(tokens.OPEN_CURLY)
	if err != nil {
		return nil, retType, err
	}

	if tok, err := p.lex.Peek(); err != nil {
		return nil, retType, err
	} else if tok.Kind == tokens.CLOSE_CURLY {
		return nil, retType, diagnostics.UnexpectedToken(p.lex.Location(tok), tok.Describe()).
			WithCode(diagnostics.ErrEmptyBlock).
			WithHelp("a function body needs a return statement")
	}

	nodes := []ast.Node{}
	var returned *ast.ReturnStmt
	warned := false
	for {
		var node ast.Node
		node, retType, err = p.parseStmt(scopeFunction, retType)
		if err != nil {
			return nil, retType, err
		}
		nodes = append(nodes, node)

		// one warning per block, on the first statement that cannot run
		if returned != nil && !warned {
			p.warn(diagnostics.UnreachableCode(node.Loc(), returned.Loc()))
			warned = true
		}
		if ret, ok := node.(*ast.ReturnStmt); ok && returned == nil {
			returned = ret
		}

		tok, err := p.lex.Peek()
		if err != nil {
			return nil, retType, err
		}
		if tok.Kind == tokens.CLOSE_CURLY {
			break
		}
	}

	closeTok, err := p.lex.Match(tokens.CLOSE_CURLY)
	if err != nil {
		return nil, retType, err
	}

	return &ast.Block{
		Nodes:    nodes,
		Location: p.makeLocation(open.Start, closeTok.End),
	}, retType, nil
}
