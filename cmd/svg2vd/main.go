package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/svg2vd"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

type Convert struct {
	Output    string   `short:"o" desc:"Output file or directory"`
	Scale     float64  `short:"s" default:"1.0" desc:"Scale factor from SVG size to dp"`
	Transform string   `short:"t" desc:"Additional SVG transform applied to all paths"`
	Minify    bool     `short:"m" desc:"Minify the output"`
	Jobs      int      `short:"j" desc:"Number of files converted concurrently, defaults to the number of CPUs"`
	Verbose   bool     `short:"v" desc:"Verbose"`
	Inputs    []string `index:"*" desc:"Input SVG files"`
}

type Info struct {
	Input string `index:"0" desc:"Input VectorDrawable file"`
}

func main() {
	root := argp.NewCmd(&Convert{}, "SVG to Android VectorDrawable converter")
	root.AddCmd(&Info{}, "info", "Print a summary of a VectorDrawable")
	root.Parse()
	root.PrintHelp()
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// outputName returns the output filename for an input, or the empty string for standard output.
func (cmd *Convert) outputName(input string) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".xml"
	if cmd.Output == "" {
		if len(cmd.Inputs) == 1 {
			return ""
		}
		return filepath.Join(filepath.Dir(input), name)
	} else if info, err := os.Stat(cmd.Output); (err == nil && info.IsDir()) || 1 < len(cmd.Inputs) || strings.HasSuffix(cmd.Output, string(os.PathSeparator)) {
		return filepath.Join(cmd.Output, name)
	}
	return cmd.Output
}

func (cmd *Convert) Run() error {
	if len(cmd.Inputs) == 0 {
		return argp.ShowUsage
	}
	logger := newLogger(cmd.Verbose)

	opts := svg2vd.DefaultOptions
	opts.Scale = cmd.Scale
	opts.Minify = cmd.Minify
	if cmd.Transform != "" {
		m, err := svg2vd.ParseTransform(cmd.Transform)
		if err != nil {
			return fmt.Errorf("bad transform: %w", err)
		}
		opts.Transform = m
	}
	if 1 < len(cmd.Inputs) && cmd.Output != "" {
		if err := os.MkdirAll(cmd.Output, 0755); err != nil {
			return err
		}
	}

	jobs := cmd.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	g := errgroup.Group{}
	g.SetLimit(jobs)
	failed := make([]bool, len(cmd.Inputs))
	for i, input := range cmd.Inputs {
		g.Go(func() error {
			fileOpts := opts
			if err := cmd.convert(logger, input, &fileOpts); err != nil {
				logger.Error("conversion failed", "file", input, "err", err)
				failed[i] = true
			}
			return nil
		})
	}
	g.Wait()

	n := 0
	for _, f := range failed {
		if f {
			n++
		}
	}
	if n != 0 {
		return fmt.Errorf("%d of %d files failed", n, len(cmd.Inputs))
	}
	return nil
}

func (cmd *Convert) convert(logger *slog.Logger, input string, opts *svg2vd.Options) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := &bytes.Buffer{}
	tree, err := svg2vd.Convert(buf, f, opts)
	if tree != nil {
		for _, d := range tree.Diagnostics {
			level := slog.LevelWarn
			if d.Level == svg2vd.LevelError {
				level = slog.LevelError
			}
			logger.Log(context.Background(), level, d.Err.Error(), "file", input, "line", d.Line, "element", d.Element)
		}
	}
	if err != nil {
		return err
	}

	output := cmd.outputName(input)
	logger.Debug("converted", "file", input, "output", output, "paths", len(tree.Leaves()))
	if output == "" {
		_, err = io.Copy(os.Stdout, buf)
		return err
	}
	return os.WriteFile(output, buf.Bytes(), 0644)
}

func (cmd *Info) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	f, err := os.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	vd, err := svg2vd.ParseVectorDrawable(f)
	if err != nil {
		return err
	}
	fmt.Println("File name:", filepath.Base(cmd.Input))
	vd.Dump(os.Stdout)
	return nil
}
