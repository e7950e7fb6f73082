package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"github.com/zzzzer91/gopkg/logx"

	"github.com/zzzzer91/bytekit/internal/config"
)

func main() {
	var flags struct {
		confPath string
		logLevel int
	}
	flag.StringVar(&flags.confPath, "c", "", "config file path")
	flag.IntVar(&flags.logLevel, "l", 0, "log level, -1 debug, 0 info ...")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&copyCommand{}, "")
	subcommands.Register(&chunksCommand{}, "")
	subcommands.Register(&relayCommand{}, "")
	flag.Parse()

	logx.SetLevel(flags.logLevel)

	conf := config.Default()
	if flags.confPath != "" {
		var err error
		conf, err = config.LoadConf(flags.confPath)
		if err != nil {
			logx.Fatal(err)
		}
		logx.Debugf("loaded config %s", flags.confPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	status := subcommands.Execute(ctx, conf)
	stop()
	os.Exit(int(status))
}

func openInput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func openOutput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path)
}
