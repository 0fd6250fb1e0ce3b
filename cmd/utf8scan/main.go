package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wippyai/utf8scan/memory"
	"github.com/wippyai/utf8scan/report"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("utf8scan", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		src         source
		configFile  = fs.String("config", "", "YAML config file with defaults")
		format      = fs.String("format", "", "Output format: text or json")
		names       = fs.Bool("names", false, "Include Unicode character names")
		maxCps      = fs.Int("max", 0, "List at most this many codepoints (0 = all)")
		export      = fs.String("memory", "", "Name of the exported memory (with -wasm)")
		verbose     = fs.Bool("v", false, "Verbose logging")
		interactive = fs.Bool("i", false, "Interactive inspector")
	)
	fs.StringVar(&src.file, "file", "", "Read input from file (- for stdin)")
	fs.StringVar(&src.text, "string", "", "Inspect this string")
	fs.StringVar(&src.hex, "hex", "", `Inspect hex bytes ("41 e2 89", "41e289" or "\x41\xe2")`)
	fs.StringVar(&src.wasm, "wasm", "", "Core wasm module whose memory holds the input")
	fs.UintVar(&src.ptr, "ptr", 0, "Offset of the string in guest memory (with -wasm)")
	fs.UintVar(&src.length, "len", 0, "Length of the string in bytes (with -wasm)")
	fs.Int64Var(&src.at, "at", -1, "Address of a (ptr, len) pair in guest memory (with -wasm)")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "names":
			cfg.Names = *names
		case "max":
			cfg.MaxCodepoints = *maxCps
		case "memory":
			cfg.MemoryExport = *export
		case "v":
			cfg.Verbose = *verbose
		case "string":
			src.hasText = true
		}
	})
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	src.export = cfg.MemoryExport
	if err := src.validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	log := newLogger(stderr, cfg.Verbose)
	defer log.Sync()
	memory.SetLogger(log.Named("memory"))

	if *interactive {
		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "Error: interactive mode needs a terminal")
			return exitError
		}
		if src.count() > 1 {
			usage(stderr)
			return exitError
		}
		data, err := src.load(context.Background(), stdin, log)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		if err := runInteractive(data); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		return exitValid
	}

	if src.count() != 1 {
		usage(stderr)
		return exitError
	}

	data, err := src.load(context.Background(), stdin, log)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	log.Debug("input loaded", zap.Int("size", len(data)))

	rep := report.Build(data, report.Options{
		Names:         cfg.Names,
		MaxCodepoints: cfg.MaxCodepoints,
	})
	if err := write(stdout, rep, cfg.Format); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if !rep.Valid {
		log.Debug("input rejected",
			zap.Int("offset", rep.Error.Offset),
			zap.String("reason", rep.Error.Explanation))
		return exitInvalid
	}
	return exitValid
}

func write(w io.Writer, rep *report.Report, format string) error {
	if format == "json" {
		out, err := rep.JSON()
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		out = append(out, '\n')
		_, err = w.Write(out)
		return err
	}
	return rep.WriteText(w, isTerminal(w))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: utf8scan -string <text> | -hex <bytes> | -file <path|-> [-format text|json] [-names] [-max n]")
	fmt.Fprintln(w, "       utf8scan -wasm <module.wasm> (-ptr N -len M | -at ADDR) [-memory name]")
	fmt.Fprintln(w, "       utf8scan -i [input]  (interactive mode)")
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
