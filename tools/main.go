// Command tools builds the browser playground: the compiler for js/wasm
// plus the wasm_exec.js loader from the Go installation.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"minic/colors"
)

func main() {
	if err := run(); err != nil {
		colors.RED.Fprintln(os.Stderr, "playground:", err)
		os.Exit(1)
	}

	colors.GREEN.Println("built successfully!")
}

func run() error {
	root, err := findRepoRoot()
	if err != nil {
		return err
	}

	outDir := filepath.Join(root, "playground")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create playground dir: %w", err)
	}

	goTool, err := resolveTool("GO", "go")
	if err != nil {
		return err
	}

	if err := buildCompiler(goTool, root, filepath.Join(outDir, "minic.wasm")); err != nil {
		return err
	}

	goroot, err := goEnv(goTool, "GOROOT")
	if err != nil {
		return err
	}
	loader, err := findLoader(goroot)
	if err != nil {
		return err
	}
	return copyFile(loader, filepath.Join(outDir, "wasm_exec.js"))
}

func findRepoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get cwd: %w", err)
	}
	return repoRootFrom(cwd)
}

func repoRootFrom(start string) (string, error) {
	dir := start
	for {
		if fileExists(filepath.Join(dir, "go.mod")) {
			return dir, nil
		}
		next := filepath.Dir(dir)
		if next == dir {
			break
		}
		dir = next
	}

	return "", fmt.Errorf("go.mod not found from %s", start)
}

func buildCompiler(goTool, root, out string) error {
	cmd := exec.Command(goTool, "build", "-o", out, ".")
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build compiler for js/wasm: %w", err)
	}
	return nil
}

func goEnv(goTool, key string) (string, error) {
	out, err := exec.Command(goTool, "env", key).Output()
	if err != nil {
		return "", fmt.Errorf("go env %s: %w", key, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// findLoader locates wasm_exec.js, which moved from misc/wasm to lib/wasm
// in Go 1.24.
func findLoader(goroot string) (string, error) {
	for _, dir := range []string{"lib", "misc"} {
		path := filepath.Join(goroot, dir, "wasm", "wasm_exec.js")
		if fileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("wasm_exec.js not found under %s", goroot)
}

func resolveTool(env, defaultName string) (string, error) {
	name := defaultName
	if val := os.Getenv(env); val != "" {
		name = val
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("tool not found: %s", name)
	}
	return path, nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
