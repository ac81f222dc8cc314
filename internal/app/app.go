// Package app wires flag parsing, template loading, the design core and the
// result writers into the primerdesign command.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"primerdesign-core/design"

	"primerdesign/internal/cli"
	"primerdesign/internal/cmdutil"
	"primerdesign/internal/fasta"
	"primerdesign/internal/output"
	"primerdesign/internal/paramfile"
	"primerdesign/internal/version"
)

// Exit codes: 0 ok, 1 design produced no result, 2 usage/validation error,
// 3 I/O error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("primerdesign")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "primerdesign version %s\n", version.Version)
		return 0
	}
	if opts.Overview {
		if err := output.WriteJSON(outw, design.OverviewDefaults()); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	params := design.DefaultParameters()
	if opts.ParamsFile != "" {
		params, err = paramfile.Load(opts.ParamsFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}
	opts.ApplyTo(fs, &params)

	seq := opts.Sequence
	if opts.FastaFile != "" {
		rec, err := fasta.ReadFirstPath(opts.FastaFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		seq = rec.Seq
	}

	if err := parent.Err(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	res := design.Design(seq, params)
	for _, w := range res.Warnings {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}

	if !res.Succeeded {
		_, _ = fmt.Fprintf(stderr, "design failed: %s\n", res.Error)
		if opts.Output == cli.OutputJSON {
			if err := output.WriteJSON(outw, res); err != nil {
				_, _ = fmt.Fprintln(stderr, err)
				return 3
			}
		}
		return 1
	}

	switch opts.Output {
	case cli.OutputJSON:
		err = output.WriteJSON(outw, res)
	default:
		err = output.WriteText(outw, res, opts.Header)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
