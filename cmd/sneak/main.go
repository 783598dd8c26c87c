package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/peco/sneak/config"
	"github.com/peco/sneak/match"
	"github.com/peco/sneak/sig"
	"github.com/peco/sneak/ui"
	"github.com/pkg/errors"
)

var version = "v0.1.0"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts cmdOptions
	args, err := opts.parse(argv, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if opts.OptHelp {
		stderr.Write(opts.help())
		return 0
	}

	if opts.OptVersion {
		fmt.Fprintf(stderr, "sneak: %s\n", version)
		return 0
	}

	if len(args) != 1 {
		fmt.Fprintln(stderr, "You must supply exactly one file to view")
		stderr.Write(opts.help())
		return 1
	}

	cfg, err := loadConfig(opts, config.DefaultConfigLocator)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	text, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(stderr, errors.Wrap(err, "failed to create tcell screen"))
		return 1
	}

	if err := screen.Init(); err != nil {
		fmt.Fprintln(stderr, errors.Wrap(err, "failed to initialize tcell screen"))
		return 1
	}

	pos, err := view(ctx, screen, string(text), cfg)
	screen.Fini()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintf(stdout, "%d:%d\n", pos.Line+1, pos.Byte+1)
	return 0
}

// loadConfig reads the settings file, if there is one, and applies the
// command line on top of it.
func loadConfig(opts cmdOptions, locator config.Locator) (*config.Config, error) {
	var cfg config.Config
	if err := cfg.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize config")
	}

	rcfile := opts.OptRcfile
	if rcfile == "" {
		if file, err := config.LocateRcfile(locator); err == nil {
			rcfile = file
		}
	}

	if rcfile != "" {
		if err := cfg.ReadFilename(rcfile); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", rcfile)
		}
	}

	opts.apply(&cfg)

	if _, err := cfg.ModeConfig(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// view runs the viewer on an initialized screen until the user quits
// or a signal arrives, and returns where the caret was left.
func view(ctx context.Context, screen tcell.Screen, text string, cfg *config.Config) (match.Position, error) {
	v, err := ui.NewViewer(screen, text, cfg)
	if err != nil {
		return match.Position{}, err
	}

	ctx, cancel := sig.WithCancel(ctx, nil)
	defer cancel()

	if err := v.Loop(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return v.Caret(), errors.Wrap(err, "viewer failed")
	}
	return v.Caret(), nil
}
