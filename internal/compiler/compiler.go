package compiler

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"minic/colors"
	"minic/internal/codegen/wasm"
	"minic/internal/diagnostics"
	"minic/internal/frontend/lexer"
	"minic/internal/phase"
	"minic/internal/pipeline"
)

type FORMAT int

const (
	ANSI FORMAT = iota
	HTML
)

const (
	// Extension is the source file extension.
	Extension = ".mc"
	// InMemoryFile names code passed through Options.Code in diagnostics.
	InMemoryFile = "main" + Extension
	// DefaultExport is the function -run calls.
	DefaultExport = "main"
)

// Options for compilation
type Options struct {
	// For file-based compilation
	EntryFile string
	// For in-memory compilation (playground, tests)
	Code string
	// Debug output
	Debug bool
	// Fold constant adds before emitting
	Optimize bool
	// Output format for diagnostics: ANSI or HTML
	LogFormat FORMAT
	// Binary output path. Defaults to the entry file with a .wasm
	// extension; in-memory code writes no files unless this is set.
	OutputPath string
	// Also write the text disassembly next to the binary (.wat)
	EmitText bool
	// Print the token stream and stop
	PrintTokens bool
	// Run the emitted module and print the result of RunExport
	Run       bool
	RunExport string
	// Where program output and debug logs go (default stdout) and where
	// diagnostics go (default stderr)
	Stdout io.Writer
	Stderr io.Writer
}

// Result of compilation
type Result struct {
	Success bool
	// Rendered diagnostics when LogFormat is HTML
	Output string
	Module *wasm.Module
	Binary []byte
	Text   string
	// Files written, binary first
	Files []string
	// Return value of RunExport when Options.Run is set
	Value int32
	Phase phase.ModulePhase
}

// Compile compiles a source file or in-memory code and returns the result
func Compile(opts *Options) Result {
	return CompileContext(context.Background(), opts)
}

// CompileContext is Compile with a context for running the emitted module.
func CompileContext(ctx context.Context, opts *Options) Result {
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	bag := diagnostics.NewDiagnosticBag()
	result := compile(ctx, opts, bag, stdout)

	if opts.LogFormat == HTML {
		result.Output = bag.EmitAllToHTML()
	} else if len(bag.Diagnostics()) > 0 {
		bag.EmitAll(stderr)
	}
	result.Success = !bag.HasErrors()
	return result
}

func compile(ctx context.Context, opts *Options, bag *diagnostics.DiagnosticBag, stdout io.Writer) Result {
	filename, src, err := loadSource(opts)
	if err != nil {
		bag.Add(diagnostics.NewError(diagnostics.IOError, err.Error()))
		return Result{}
	}
	bag.AddSourceContent(filename, src)

	if opts.PrintTokens {
		if _, err := lexer.New(filename, src).Tokenize(stdout, true); err != nil {
			bag.AddError(err)
		}
		return Result{}
	}

	unit, err := pipeline.Run(filename, src,
		pipeline.WithDebug(opts.Debug),
		pipeline.WithOutput(stdout),
		pipeline.WithDiagnostics(bag))
	if err != nil {
		bag.AddError(err)
		return Result{}
	}
	result := Result{Module: unit.Module, Phase: unit.Phase}

	if opts.Optimize {
		unit.Debugf(colors.CYAN, "\n[Phase 3] Optimize\n")
		folded := unit.Module.Optimize()
		if err := unit.Module.Validate(); err != nil {
			bag.Add(diagnostics.Internal(nil, diagnostics.ErrInvalidModule, "optimized module is invalid").WithNote(err.Error()))
			return result
		}
		if err := unit.Advance(phase.PhaseOptimized); err != nil {
			bag.AddError(err)
			return result
		}
		unit.Debugf(colors.PURPLE, "  ✓ folded %d adds\n", folded)
	}

	bin, err := unit.Module.Emit()
	if err != nil {
		bag.Add(diagnostics.Internal(nil, diagnostics.ErrInvalidModule, err.Error()))
		return result
	}
	if err := unit.Advance(phase.PhaseEmitted); err != nil {
		bag.AddError(err)
		return result
	}
	result.Binary = bin
	result.Text = unit.Module.Text()
	result.Phase = unit.Phase
	unit.Debugf(colors.CYAN, "\n[Phase 4] Emit\n")
	unit.Debugf(colors.PURPLE, "  ✓ %d bytes\n", len(bin))

	files, err := writeOutputs(opts, result)
	result.Files = files
	if err != nil {
		bag.Add(diagnostics.NewError(diagnostics.IOError, err.Error()))
		return result
	}
	for _, f := range files {
		unit.Debugf(colors.PURPLE, "  ✓ wrote %s\n", f)
	}

	if opts.Run {
		export := opts.RunExport
		if export == "" {
			export = DefaultExport
		}
		value, err := wasm.Run(ctx, bin, export)
		if err != nil {
			bag.AddError(err)
			return result
		}
		result.Value = value
		fmt.Fprintf(stdout, "%d\n", value)
	}

	if opts.Debug {
		colors.GREEN.Fprintf(stdout, "\n✓ Compilation successful! (%d functions)\n", len(unit.Module.Functions()))
	}
	return result
}

func loadSource(opts *Options) (filename, src string, err error) {
	if opts.Code != "" {
		return InMemoryFile, opts.Code, nil
	}
	if opts.EntryFile == "" {
		return "", "", fmt.Errorf("no input: set a source file or code")
	}
	content, err := os.ReadFile(opts.EntryFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", fmt.Errorf("file not found: %s", opts.EntryFile)
		}
		return "", "", fmt.Errorf("cannot read %s: %w", opts.EntryFile, err)
	}
	return opts.EntryFile, string(content), nil
}

// outputPath picks the binary's path: the explicit one, or the entry file
// with its extension replaced. In-memory code has no default.
func outputPath(opts *Options) string {
	if opts.OutputPath != "" {
		return opts.OutputPath
	}
	if opts.Code != "" || opts.EntryFile == "" {
		return ""
	}
	return strings.TrimSuffix(opts.EntryFile, filepath.Ext(opts.EntryFile)) + ".wasm"
}

func writeOutputs(opts *Options, result Result) ([]string, error) {
	path := outputPath(opts)
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, result.Binary, 0644); err != nil {
		return nil, fmt.Errorf("cannot write %s: %w", path, err)
	}
	files := []string{path}

	if opts.EmitText {
		textPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".wat"
		if err := os.WriteFile(textPath, []byte(result.Text), 0644); err != nil {
			return files, fmt.Errorf("cannot write %s: %w", textPath, err)
		}
		files = append(files, textPath)
	}
	return files, nil
}
