package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/getseabird/todoelm/internal/replay"
	"github.com/getseabird/todoelm/internal/state"
	"github.com/getseabird/todoelm/internal/ui"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var app *cli.App

func init() {
	app = cli.NewApp()
	app.Name = "todoelm"
	app.Usage = "todo list and counter built from composable components"
	app.Version = fmt.Sprintf("%s (%s, %s)", version, commit, date)
	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "verbosity",
			Aliases: []string{"v"},
			Usage:   "log level, 4 logs model diffs when tracing",
		},
		&cli.PathFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "config file, defaults to the user config directory",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		flags := flag.NewFlagSet("klog", flag.ContinueOnError)
		klog.InitFlags(flags)
		return flags.Set("v", strconv.Itoa(ctx.Int("verbosity")))
	}
	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err != nil {
			fmt.Fprintln(os.Stderr, "Fatal Error:", err)
			os.Exit(1)
		}
	}
	app.Action = runApp
	app.Commands = []*cli.Command{
		{
			Name:   "run",
			Usage:  "open the todo window",
			Action: runApp,
		},
		{
			Name:      "replay",
			Usage:     "replay a YAML script of todo steps and print the rendered frame",
			ArgsUsage: "<script>",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "table", Usage: "print the final items as a table"},
				&cli.BoolFlag{Name: "color", Usage: "highlight completed items in the table"},
				&cli.BoolFlag{Name: "frames", Usage: "print every frame"},
				&cli.BoolFlag{Name: "watch", Usage: "replay again whenever the script changes"},
				&cli.BoolFlag{Name: "trace", Usage: "log a model diff after every step"},
			},
			Action: runReplay,
		},
	}
}

func loadConfig(ctx *cli.Context) (*state.Config, error) {
	path := ctx.Path("config")
	if path == "" {
		var err error
		if path, err = state.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return state.LoadConfig(path)
}

func runApp(ctx *cli.Context) error {
	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	app := ui.NewApplication(config, klog.Background())
	if code := app.Run(os.Args[:1]); code > 0 {
		return cli.Exit("", code)
	}
	return nil
}

func runReplay(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return cli.Exit("replay: missing script path", 2)
	}
	opts := replay.Options{
		Table:  ctx.Bool("table"),
		Color:  ctx.Bool("color"),
		Frames: ctx.Bool("frames"),
		Trace:  ctx.Bool("trace"),
		Log:    klog.Background().WithName("replay"),
	}
	if !ctx.Bool("watch") {
		return replay.RunFile(os.Stdout, path, opts)
	}

	sigctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	replayOnce := func() {
		if err := replay.RunFile(os.Stdout, path, opts); err != nil {
			klog.ErrorS(err, "replay failed", "path", path)
		}
	}
	replayOnce()
	return replay.Watch(sigctx, opts.Log, path, replayOnce)
}

func main() {
	godotenv.Load()
	defer klog.Flush()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal Error:", err)
		os.Exit(1)
	}
}
