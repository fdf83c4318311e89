//go:build !js && !wasm

package main

import (
	"flag"
	"fmt"
	"os"

	"minic/internal/compiler"
)

const version = "0.1.0"

func main() {
	// Define flags
	debug := flag.Bool("d", false, "Enable debug output")
	showVersion := flag.Bool("v", false, "Show version")
	flag.BoolVar(debug, "debug", false, "Enable debug output")
	flag.BoolVar(showVersion, "version", false, "Show version")
	optimize := flag.Bool("O", false, "Fold constant additions before emitting")
	output := flag.String("o", "", "Output path for the .wasm binary (default: <file>.wasm)")
	emitText := flag.Bool("S", false, "Also write the text disassembly (.wat)")
	printTokens := flag.Bool("tokens", false, "Print the token stream and exit")
	run := flag.Bool("run", false, "Run the compiled module and print what main returns")
	export := flag.String("export", compiler.DefaultExport, "Function called by -run")

	flag.Parse()

	// Handle version
	if *showVersion {
		fmt.Printf("minic compiler version %s\n", version)
		os.Exit(0)
	}

	// Get entry file
	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: minic [options] <file.mc>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Compile
	result := compiler.Compile(&compiler.Options{
		EntryFile:   args[0],
		Debug:       *debug,
		Optimize:    *optimize,
		OutputPath:  *output,
		EmitText:    *emitText,
		PrintTokens: *printTokens,
		Run:         *run,
		RunExport:   *export,
		LogFormat:   compiler.ANSI,
	})

	// Exit code
	if !result.Success {
		os.Exit(1)
	}
}
