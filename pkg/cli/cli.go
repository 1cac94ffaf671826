// Package cli is the thin command-line wrapper around the optimisation
// pipeline (internal/pipeline),
// hand-rolled over os.Args rather than through a flags framework.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/OpShin/pluthon-go/internal/ast"
	"github.com/OpShin/pluthon-go/internal/backend"
	"github.com/OpShin/pluthon-go/internal/compileerr"
	"github.com/OpShin/pluthon-go/internal/config"
	"github.com/OpShin/pluthon-go/internal/pipeline"
)

// Run is cmd/pluthon's entire main body, factored out so it can be unit
// tested with an injected stdout.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 || args[1] != "compile" {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	fs := compileFlags{}
	inPath, err := fs.parse(args[2:])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if inPath == "" {
		fmt.Fprintln(stderr, "pluthon compile: missing <in.json>")
		fmt.Fprintln(stderr, usage)
		return 2
	}

	cfg, err := resolveConfig(fs)
	if err != nil {
		fmt.Fprintln(stderr, "pluthon compile:", err)
		return 1
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintln(stderr, "pluthon compile:", err)
		return 1
	}

	var prog ast.Program
	if err := prog.UnmarshalJSON(data); err != nil {
		fmt.Fprintln(stderr, "pluthon compile: parsing", inPath+":", err)
		return 1
	}

	color := isatty.IsTerminal(os.Stdout.Fd())
	note(stdout, color, fmt.Sprintf("loaded %s", inPath))

	stable, err := pipeline.Optimize(&prog, cfg)
	if err != nil {
		reportCompileErr(stderr, err)
		return 1
	}

	if fs.dump {
		fmt.Fprintln(stdout, ast.Dumps(stable.Body))
	}

	lowered := &backend.Program{Version: stable.Version, Body: ast.Lower(stable.Body)}
	count := backend.CountNodes(lowered.Body)
	note(stdout, color, fmt.Sprintf("optimised program: %s term nodes", humanize.Comma(int64(count))))

	return 0
}

const usage = `usage: pluthon compile <in.json> [-O0|-O1|-O2|-O3] [-config FILE] [-dump]`

type compileFlags struct {
	optLevel   int
	haveLevel  bool
	configFile string
	dump       bool
}

func (f *compileFlags) parse(args []string) (inPath string, err error) {
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "-O0":
			f.optLevel, f.haveLevel = 0, true
		case "-O1":
			f.optLevel, f.haveLevel = 1, true
		case "-O2":
			f.optLevel, f.haveLevel = 2, true
		case "-O3":
			f.optLevel, f.haveLevel = 3, true
		case "-dump":
			f.dump = true
		case "-config":
			if i+1 >= len(args) {
				return "", fmt.Errorf("-config requires a path argument")
			}
			i++
			f.configFile = args[i]
		default:
			if inPath != "" {
				return "", fmt.Errorf("unexpected argument %q", a)
			}
			inPath = a
		}
	}
	return inPath, nil
}

// resolveConfig layers defaults, an explicit -Ox level, and a -config file
// onto each other, last-wins, the same precedence compiler_config.py's CLI
// entry point applies.
func resolveConfig(f compileFlags) (config.CompilationConfig, error) {
	cfg := config.Default
	if f.haveLevel {
		cfg = cfg.Update(config.OptLevels[f.optLevel])
	}
	if f.configFile != "" {
		fileCfg, err := config.Load(f.configFile)
		if err != nil {
			return config.CompilationConfig{}, fmt.Errorf("loading %s: %w", f.configFile, err)
		}
		cfg = cfg.Update(fileCfg)
	}
	return cfg, nil
}

func reportCompileErr(stderr io.Writer, err error) {
	if ce, ok := err.(*compileerr.Error); ok {
		fmt.Fprintf(stderr, "pluthon compile: %s (%s)\n", ce.Message, ce.Code)
		return
	}
	fmt.Fprintln(stderr, "pluthon compile:", err)
}

func note(w io.Writer, color bool, msg string) {
	if color {
		fmt.Fprintf(w, "\x1b[36m==>\x1b[0m %s\n", msg)
		return
	}
	fmt.Fprintf(w, "==> %s\n", msg)
}
