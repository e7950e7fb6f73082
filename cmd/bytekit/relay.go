package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/zzzzer91/gopkg/logx"
	"golang.org/x/sync/errgroup"

	"github.com/zzzzer91/bytekit/internal/config"
	"github.com/zzzzer91/bytekit/internal/relay"
)

type relayCommand struct{}

func (*relayCommand) Name() string     { return "relay" }
func (*relayCommand) Synopsis() string { return "Run the configured TCP relays" }
func (*relayCommand) Usage() string {
	return `relay [name ...]:
	Run the relays from the config file, or only the named ones, until
	interrupted.
`
}

func (*relayCommand) SetFlags(*flag.FlagSet) {}

func (*relayCommand) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Conf)

	relays := conf.Relays
	if f.NArg() > 0 {
		relays = nil
		for _, name := range f.Args() {
			r := conf.FindRelay(name)
			if r == nil {
				logx.Error("relay " + name + " is not configured")
				return subcommands.ExitUsageError
			}
			relays = append(relays, r)
		}
	}
	if len(relays) == 0 {
		logx.Error("no relay configured")
		return subcommands.ExitUsageError
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, rc := range relays {
		r := relay.New(rc)
		g.Go(func() error {
			err := r.ListenAndServe(gctx)
			st := r.Stats()
			logx.Debugf("relay %s stopped: %d conns, up %d bytes, down %d bytes", rc.Name, st.Conns, st.Up, st.Down)
			return err
		})
	}
	logx.Info("bytekit relay started")
	if err := g.Wait(); err != nil {
		logx.Error(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
