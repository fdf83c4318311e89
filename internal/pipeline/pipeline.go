// Package pipeline runs the core compilation: lex, parse, lower, validate.
package pipeline

import (
	"fmt"
	"io"
	"os"

	"minic/colors"
	"minic/internal/codegen/lower"
	"minic/internal/codegen/wasm"
	"minic/internal/diagnostics"
	"minic/internal/frontend/ast"
	"minic/internal/frontend/lexer"
	"minic/internal/frontend/parser"
	"minic/internal/phase"
)

type config struct {
	debug bool
	out   io.Writer
	bag   *diagnostics.DiagnosticBag
}

// Option configures a compilation.
type Option func(*config)

// WithDebug logs a colored header per phase and dumps the token stream.
func WithDebug(enabled bool) Option {
	return func(c *config) { c.debug = enabled }
}

// WithOutput sets where debug logging goes. The default is stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.out = w
		}
	}
}

// WithDiagnostics collects warnings in bag. Errors are still returned.
func WithDiagnostics(bag *diagnostics.DiagnosticBag) Option {
	return func(c *config) { c.bag = bag }
}

// Unit is one source file moving through the phases. A Unit belongs to a
// single compilation and is not shared between goroutines.
type Unit struct {
	Filename string
	Source   string
	Script   *ast.Script
	Module   *wasm.Module
	Phase    phase.ModulePhase

	cfg config
}

// Advance moves the unit to the next phase.
func (u *Unit) Advance(to phase.ModulePhase) error {
	next, err := phase.Advance(u.Phase, to)
	if err != nil {
		return fmt.Errorf("%s: %w", u.Filename, err)
	}
	u.Phase = next
	return nil
}

// Debugf writes a colored debug line when debug logging is on.
func (u *Unit) Debugf(color colors.COLOR, format string, args ...any) {
	if u.cfg.debug {
		color.Fprintf(u.cfg.out, format, args...)
	}
}

// Compile turns source text into a validated module.
func Compile(filename, src string, opts ...Option) (*wasm.Module, error) {
	unit, err := Run(filename, src, opts...)
	if err != nil {
		return nil, err
	}
	return unit.Module, nil
}

// Run compiles like Compile but returns the unit, so callers can continue
// with later phases. Every call owns its state; calls may run in parallel.
func Run(filename, src string, opts ...Option) (*Unit, error) {
	cfg := config{out: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}
	u := &Unit{Filename: filename, Source: src, Phase: phase.PhaseNotStarted, cfg: cfg}

	u.Debugf(colors.CYAN, "\n[Phase 1] Lex + Parse\n")
	if cfg.debug {
		// a separate lexer, so the parser's stream starts fresh
		if _, err := lexer.New(filename, src).Tokenize(cfg.out, true); err != nil {
			return nil, err
		}
	}
	script, err := parser.ParseWithDiagnostics(lexer.New(filename, src), cfg.bag)
	if err != nil {
		return nil, err
	}
	u.Script = script
	if err := u.Advance(phase.PhaseParsed); err != nil {
		return nil, err
	}
	u.Debugf(colors.PURPLE, "  ✓ %s (%d functions)\n", filename, len(script.Functions()))

	u.Debugf(colors.CYAN, "\n[Phase 2] Lower + Validate\n")
	mod, err := lower.Lower(script, wasm.NewModule())
	if err != nil {
		return nil, err
	}
	u.Module = mod
	if err := u.Advance(phase.PhaseLowered); err != nil {
		return nil, err
	}
	for _, exp := range mod.Exports() {
		u.Debugf(colors.PURPLE, "  ✓ export %s\n", exp.External)
	}

	return u, nil
}
