package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/zzzzer91/gopkg/logx"

	"github.com/zzzzer91/bytekit/internal/config"
	"github.com/zzzzer91/bytekit/streamio"
	"github.com/zzzzer91/bytekit/util/buffer"
)

// previewLen is how many bytes of each chunk are printed.
const previewLen = 16

type chunksCommand struct {
	in      string
	bufSize int
}

func (*chunksCommand) Name() string     { return "chunks" }
func (*chunksCommand) Synopsis() string { return "Print the chunks a reader produces" }
func (*chunksCommand) Usage() string {
	return `chunks [-in file] [-b size]:
	Read the input in chunks of at most size bytes and print the index,
	length and a hex preview of every chunk.
`
}

func (cmd *chunksCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.in, "in", "-", "input file, - for stdin")
	f.IntVar(&cmd.bufSize, "b", 0, "chunk size, 0 uses the config value")
}

func (cmd *chunksCommand) Execute(_ context.Context, _ *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Conf)
	size := cmd.bufSize
	if size <= 0 {
		size = conf.Chunks.BufferSize
	}

	in, err := openInput(cmd.in)
	if err != nil {
		logx.Error(err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	if err := printChunks(os.Stdout, in, size); err != nil {
		logx.Error(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printChunks(w io.Writer, r io.Reader, size int) error {
	var out buffer.Buffer
	it := streamio.IterateSync(r, size)
	i := 0
	for chunk := range it.All() {
		preview := chunk[:min(len(chunk), previewLen)]
		fmt.Fprintf(&out, "%d\t%d\t%s\n", i, len(chunk), hex.EncodeToString(preview))
		i++
		if _, err := out.WriteTo(w); err != nil {
			return err
		}
	}
	return it.Err()
}
