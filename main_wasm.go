//go:build js && wasm

package main

import (
	"syscall/js"

	"minic/internal/compiler"
)

func main() {
	js.Global().Set("minicCompile", js.FuncOf(compile))
	js.Global().Set("minicWasmVersion", "0.1.0")
	println("minic WASM compiler ready")
	<-make(chan struct{})
}

// compile(code: string, debug: bool, optimize?: bool) returns the HTML
// diagnostics and the module's text disassembly.
func compile(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return map[string]any{
			"success": false,
			"output":  "Invalid arguments: expected (code: string, debug: bool)",
		}
	}
	optimize := len(args) > 2 && args[2].Bool()

	result := compiler.Compile(&compiler.Options{
		Code:      args[0].String(),
		Debug:     args[1].Bool(),
		Optimize:  optimize,
		LogFormat: compiler.HTML,
	})

	return map[string]any{
		"success": result.Success,
		"output":  result.Output,
		"text":    result.Text,
	}
}
