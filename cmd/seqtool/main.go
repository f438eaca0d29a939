// Command seqtool loads a persisted sequence, applies list operations to
// it and writes it back, optionally in a different format.
//
//	seqtool -in list.json -from json -out list.zst -to stream -sort natural -drop-nil -trim
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"jsouthworth.net/go/mutable/arraylist"
	"jsouthworth.net/go/mutable/codec"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

type options struct {
	in, out  string
	from, to codec.Format
	sort     string
	window   string
	dropNil  bool
	trim     bool
	verbose  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "seqtool:", err)
		return exitUsage
	}
	logger := newLogger(stderr, opts.verbose)

	l, err := load(opts, stdin)
	if err != nil {
		logger.Error().Err(err).Str("in", opts.in).Msg("failed to load sequence")
		return exitFailure
	}
	logger.Debug().
		Str("format", opts.from.String()).
		Int("size", l.Len()).
		Int("capacity", l.Cap()).
		Msg("loaded")

	l, err = apply(l, opts, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to transform sequence")
		return exitFailure
	}

	if err := store(opts, l, stdout); err != nil {
		logger.Error().Err(err).Str("out", opts.out).Msg("failed to write sequence")
		return exitFailure
	}
	logger.Info().
		Str("format", opts.to.String()).
		Int("size", l.Len()).
		Msg("wrote sequence")
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		opts     options
		from, to string
	)
	flags := flag.NewFlagSet("seqtool", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.in, "in", "-", "input file, - for stdin")
	flags.StringVar(&opts.out, "out", "-", "output file, - for stdout")
	flags.StringVar(&from, "from", "json", "input format: json, yaml or stream")
	flags.StringVar(&to, "to", "", "output format, defaults to the input format")
	flags.StringVar(&opts.sort, "sort", "none", "sort order: natural, reverse or none")
	flags.StringVar(&opts.window, "window", "", "keep only the range lo:hi")
	flags.BoolVar(&opts.dropNil, "drop-nil", false, "remove null elements")
	flags.BoolVar(&opts.trim, "trim", false, "release spare capacity before writing")
	flags.BoolVar(&opts.verbose, "v", false, "log every operation")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if flags.NArg() != 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	var err error
	if opts.from, err = codec.ParseFormat(from); err != nil {
		return opts, err
	}
	opts.to = opts.from
	if to != "" {
		if opts.to, err = codec.ParseFormat(to); err != nil {
			return opts, err
		}
	}
	switch opts.sort {
	case "none", "natural", "reverse":
	default:
		return opts, fmt.Errorf("unknown sort order %q", opts.sort)
	}
	return opts, nil
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func load(opts options, stdin io.Reader) (*arraylist.List[interface{}], error) {
	r := stdin
	if opts.in != "-" {
		f, err := os.Open(opts.in)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return codec.Read[interface{}](r, opts.from)
}

func store(opts options, l *arraylist.List[interface{}], stdout io.Writer) error {
	if opts.out == "-" {
		return codec.Write(stdout, opts.to, l)
	}
	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err := codec.Write(f, opts.to, l); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parseWindow parses lo:hi where either bound may be omitted.
func parseWindow(s string, size int) (lo, hi int, err error) {
	los, his, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("window %q is not lo:hi", s)
	}
	lo, hi = 0, size
	if los != "" {
		if lo, err = strconv.Atoi(los); err != nil {
			return 0, 0, fmt.Errorf("window %q: %w", s, err)
		}
	}
	if his != "" {
		if hi, err = strconv.Atoi(his); err != nil {
			return 0, 0, fmt.Errorf("window %q: %w", s, err)
		}
	}
	return lo, hi, nil
}

// catch turns a panic raised by the list into an error.
func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

func apply(l *arraylist.List[interface{}], opts options, logger zerolog.Logger) (*arraylist.List[interface{}], error) {
	logOp := func(op string) {
		logger.Debug().
			Str("op", op).
			Int("size", l.Len()).
			Int("capacity", l.Cap()).
			Msg("applied")
	}

	if opts.window != "" {
		lo, hi, err := parseWindow(opts.window, l.Len())
		if err != nil {
			return nil, err
		}
		err = catch(func() {
			l = arraylist.From[interface{}](l.View(lo, hi))
		})
		if err != nil {
			return nil, fmt.Errorf("window: %w", err)
		}
		logOp("window")
	}

	if opts.dropNil {
		l.RemoveIf(arraylist.PredicateFunc[interface{}](func(v interface{}) bool {
			return v == nil
		}))
		logOp("drop-nil")
	}

	if opts.sort != "none" {
		c := arraylist.Natural[interface{}]()
		if opts.sort == "reverse" {
			c = arraylist.Reverse(c)
		}
		if err := catch(func() { l.Sort(c) }); err != nil {
			return nil, fmt.Errorf("sort: %w", err)
		}
		logOp("sort")
	}

	if opts.trim {
		l.Trim()
		logOp("trim")
	}
	return l, nil
}
