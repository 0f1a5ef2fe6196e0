package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"

	"github.com/kk-code-lab/mdview/internal/compiler"
	"github.com/kk-code-lab/mdview/internal/config"
	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/links"
	"github.com/kk-code-lab/mdview/internal/logger"
	"github.com/kk-code-lab/mdview/internal/paint"
	"github.com/kk-code-lab/mdview/internal/source"
	"github.com/kk-code-lab/mdview/internal/ui/ansi"
	"github.com/kk-code-lab/mdview/internal/ui/view"
)

const defaultPrintWidth = 80

func printHelp(w io.Writer) {
	fmt.Fprint(w, `mdview - Terminal Markdown viewer

USAGE:
    mdview [OPTIONS] [FILE]

Reads FILE, or standard input when FILE is omitted or "-".

OPTIONS:
    -h, --help            Show this help message and exit
    -p, --print           Print the rendered document instead of opening the viewer
    -t, --tree            Print the compiled document tree
    -w, --width N         Lay the document out N columns wide
        --write-config    Write the current configuration to the config file and exit
`)
}

func main() {
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printHelp(os.Stderr)
		os.Exit(2)
	}
	if opts.help {
		printHelp(os.Stdout)
		os.Exit(0)
	}

	fd := os.Stdout.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if !interactive {
		color.NoColor = true
	}

	if err := run(opts, os.Stdin, os.Stdout, interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, stdin io.Reader, stdout io.Writer, interactive bool) error {
	cfg, found, err := config.Load()
	if err != nil {
		return err
	}
	if opts.writeConfig {
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", config.Path())
		return nil
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log, closeLog, err := logger.NewFileLogger(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer closeLog()
	log.ConfigLoaded(config.Path(), found)

	name, content, err := readInput(opts.path, stdin)
	if err != nil {
		return err
	}
	if !source.LooksLikeText(content) {
		return fmt.Errorf("%s does not look like a text file", name)
	}
	log.DocumentLoaded(name, len(content))

	registry := links.NewRegistry()
	doc := compileDocument(content, cfg, registry, log)

	layout := paint.DefaultOptions()
	layout.TabWidth = cfg.TabWidth
	width := opts.width
	if width == 0 {
		width = cfg.Width
	}

	switch {
	case opts.tree:
		return doctree.Dump(stdout, doc)
	case opts.print || !interactive:
		if width == 0 {
			width = defaultPrintWidth
		}
		return ansi.New(stdout).Print(paint.Layout(doc, width, layout))
	}

	screen, err := view.OpenScreen()
	if err != nil {
		return err
	}
	v := view.New(screen, doc,
		view.WithLayout(layout),
		view.WithMaxWidth(width),
		view.WithRegistry(registry),
		view.WithLogger(log),
		view.WithTitle(name),
	)
	return v.Run()
}

func compileDocument(content []byte, cfg *config.Config, registry *links.Registry, log *logger.Logger) *doctree.Document {
	parser := source.NewParser(source.WithSchemes(cfg.Schemes()), source.WithLogger(log))
	tree := parser.Parse(source.Decode(content))

	start := time.Now()
	doc := compiler.New(registry, compiler.WithLogger(log)).Compile(tree)
	log.DocumentCompiled(len(doc.Blocks), registry.Len(), time.Since(start))
	return doc
}

func readInput(path string, stdin io.Reader) (string, []byte, error) {
	if path == "" || path == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read standard input: %w", err)
		}
		return "<stdin>", content, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("no such file: %s", path)
		}
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	return path, content, nil
}
