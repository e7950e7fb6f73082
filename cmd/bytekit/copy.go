package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/zzzzer91/gopkg/logx"

	"github.com/zzzzer91/bytekit/internal/config"
	"github.com/zzzzer91/bytekit/streamio"
)

type copyCommand struct {
	in   string
	out  string
	size int64
}

func (*copyCommand) Name() string     { return "copy" }
func (*copyCommand) Synopsis() string { return "Copy bytes from a file or stdin to a file or stdout" }
func (*copyCommand) Usage() string {
	return `copy [-in file] [-out file] [-n size]:
	Copy the input to the output. With -n, exactly size bytes must be
	available or the copy fails.
`
}

func (cmd *copyCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.in, "in", "-", "input file, - for stdin")
	f.StringVar(&cmd.out, "out", "-", "output file, - for stdout")
	f.Int64Var(&cmd.size, "n", -1, "exact number of bytes to copy, -1 for everything")
}

func (cmd *copyCommand) Execute(_ context.Context, _ *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Conf)

	in, err := openInput(cmd.in)
	if err != nil {
		logx.Error(err)
		return subcommands.ExitFailure
	}
	defer in.Close()
	out, err := openOutput(cmd.out)
	if err != nil {
		logx.Error(err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	opts := []streamio.CopyOption{streamio.WithBuffer(make([]byte, conf.Copy.BufferSize))}
	if cmd.size >= 0 {
		opts = append(opts, streamio.WithSize(cmd.size))
	}
	n, err := streamio.CopySync(out, in, opts...)
	if err != nil {
		logx.Error(fmt.Errorf("copy %s -> %s: %w", cmd.in, cmd.out, err))
		return subcommands.ExitFailure
	}
	logx.Debugf("copied %d bytes", n)
	return subcommands.ExitSuccess
}
