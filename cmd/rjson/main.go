// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program rjson parses JSON files into fixed memory blocks and prints selected
// fields from each.
//
// Usage:
//
//	rjson [options] file...
//
// With no -q flags, rjson lists the keys of the root object of each file. Each
// -q flag gives a JSONPath expression ($.a.b[0]['c d']) whose value is printed.
// Files are parsed concurrently, each by its own parser; the output is printed
// in the order the files were given. With no files, rjson reads stdin.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/creachadair/mds/mstr"
	"github.com/creachadair/rjson"
	"github.com/creachadair/rjson/internal/escape"
	"github.com/creachadair/rjson/jpath"
	"github.com/panjf2000/ants/v2"
	"github.com/tailscale/hujson"
	"go4.org/mem"
)

// queryFlag collects the values of a repeatable -q flag.
type queryFlag []jpath.Expr

func (q *queryFlag) String() string { return fmt.Sprint(*q) }

func (q *queryFlag) Set(s string) error {
	e, err := jpath.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid query %q: %w", s, err)
	}
	*q = append(*q, e)
	return nil
}

// config holds the settings of a run.
type config struct {
	BlockSize int          // memory block per file, in bytes
	Queries   []jpath.Expr // fields to print; nil lists root keys
	HuJSON    bool         // standardize JWCC input before parsing
	Truncate  bool         // allow over-long strings
	Width     int          // maximum displayed string length
	Log       *slog.Logger
}

func main() {
	var (
		cfg     config
		queries queryFlag
		workers = flag.Int("j", runtime.NumCPU(), "Number of files to parse concurrently")
		verbose = flag.Bool("v", false, "Enable verbose logging")
	)
	flag.IntVar(&cfg.BlockSize, "block", 4<<20, "Memory block size per file (bytes)")
	flag.Var(&queries, "q", "JSONPath expression to print (repeatable)")
	flag.BoolVar(&cfg.HuJSON, "hujson", false, "Accept comments and trailing commas (JWCC)")
	flag.BoolVar(&cfg.Truncate, "truncate", false, "Truncate over-long names and strings instead of failing")
	flag.IntVar(&cfg.Width, "width", 64, "Maximum displayed string length")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] file...\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	cfg.Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cfg.Queries = queries

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	outs, err := run(cfg, files, *workers)
	for _, out := range outs {
		os.Stdout.Write(out)
	}
	if err != nil {
		cfg.Log.Error("rjson failed", "error", err)
		os.Exit(1)
	}
}

// run parses files using a pool of the given number of workers, and returns
// the output for each file in order. It reports an error if any file failed.
func run(cfg config, files []string, workers int) ([][]byte, error) {
	if cfg.BlockSize <= 0 {
		return nil, fmt.Errorf("invalid block size %d", cfg.BlockSize)
	}
	pool, err := ants.NewPool(max(workers, 1))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	outs := make([][]byte, len(files))
	errs := make([]error, len(files))
	var wg sync.WaitGroup
	for i, name := range files {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			outs[i], errs[i] = processFile(cfg, name)
		}); err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("%s: submit: %w", name, err)
		}
	}
	wg.Wait()
	return outs, errors.Join(errs...)
}

// processFile reads and parses the named file ("-" for stdin) into a new
// block, and returns its formatted output.
func processFile(cfg config, name string) ([]byte, error) {
	data, err := readInput(name)
	if err != nil {
		return nil, err
	}
	if cfg.HuJSON {
		data, err = hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	p, err := rjson.New(make([]byte, cfg.BlockSize))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	p.AllowTruncation(cfg.Truncate)
	if err := p.Parse(data); err != nil {
		var perr *rjson.ParseError
		if errors.As(err, &perr) {
			cfg.Log.Debug("parse failed", "file", name, "location", perr.Location, "offset", perr.Offset)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	m := p.Usage()
	cfg.Log.Debug("parsed", "file", name, "input", len(data), "inUse", m.InUse, "utilization", m.Utilization)

	return format(cfg, name, p.Root()), nil
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// format renders the output for one file.
func format(cfg config, name string, root rjson.Object) []byte {
	var buf bytes.Buffer
	if len(cfg.Queries) == 0 {
		for _, k := range root.Keys() {
			fmt.Fprintf(&buf, "%s: %v\n", name, k)
		}
		return buf.Bytes()
	}
	for _, q := range cfg.Queries {
		c := q.Eval(root)
		if err := c.Err(); err != nil {
			fmt.Fprintf(&buf, "%s: %v: error: %v\n", name, q, err)
			continue
		}
		fmt.Fprintf(&buf, "%s: %v = %s\n", name, q, formatValue(c.Value(), cfg.Width))
	}
	return buf.Bytes()
}

// formatValue renders v for display. Strings longer than width bytes are
// truncated.
func formatValue(v rjson.Value, width int) string {
	switch t := v.(type) {
	case rjson.StringValue:
		s := t.Text.StringCopy()
		if trunc := mstr.Trunc(s, width); len(trunc) < len(s) {
			return string(escape.AppendQuote(nil, mem.S(trunc))) + "..."
		}
		return string(escape.AppendQuote(nil, mem.S(s)))
	case rjson.NumberValue:
		return strconv.FormatFloat(float64(t), 'g', -1, 64)
	case rjson.BoolValue:
		return strconv.FormatBool(bool(t))
	case rjson.NullValue:
		return "null"
	case rjson.Object:
		if t.IsArray() {
			return fmt.Sprintf("[array, %d entries]", t.Len())
		}
		return fmt.Sprintf("{object, %d keys}", t.Len())
	default:
		return "<invalid>"
	}
}
