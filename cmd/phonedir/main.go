package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/phonedir/cmd/phonedir/commands"
	perrors "git.home.luguber.info/inful/phonedir/internal/foundation/errors"
	"git.home.luguber.info/inful/phonedir/internal/render"
	"git.home.luguber.info/inful/phonedir/internal/version"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("phonedir"),
		kong.Description("Normalize, validate and sort a tab separated phone directory."),
		kong.UsageOnError(),
		kong.Vars{
			"version": version.String(),
			"formats": strings.Join(render.FormatNames(), ", "),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	global := &commands.Global{Stdout: os.Stdout, Stderr: os.Stderr}
	if err := parser.Run(global, cli); err != nil {
		cancel()
		perrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
