package main

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/peco/sneak/config"
	"github.com/peco/sneak/label"
	"github.com/pkg/errors"
)

type cmdOptions struct {
	OptHelp          bool            `short:"h" long:"help" description:"show this help message and exit"`
	OptRcfile        string          `long:"rcfile" description:"path to the settings file"`
	OptLen           *int            `long:"len" description:"number of characters in a search key"`
	OptMinForLabels  *int            `long:"min-for-labels" description:"label matches when there are at least this many (0 disables)"`
	OptSelectKeys    string          `long:"select-keys" description:"previous and next keys, space separated (e.g. \"; ,\")"`
	OptAltIsReverse  bool            `long:"alt-is-reverse" description:"use M-n instead of N for the previous match"`
	OptStartAtCaret  bool            `long:"start-at-caret" description:"start at the first match after the caret"`
	OptLabelOverflow *label.Overflow `long:"label-overflow" description:"'truncate' (default) or 'group' when matches outnumber labels"`
	OptVersion       bool            `long:"version" description:"print the version and exit"`
}

func (options *cmdOptions) parse(s []string, stderr io.Writer) ([]string, error) {
	p := flags.NewParser(options, flags.PrintErrors)
	args, err := p.ParseArgs(s)
	if err != nil {
		stderr.Write(options.help())
		return nil, errors.Wrap(err, "invalid command line options")
	}

	if err := options.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid command line arguments")
	}

	return args, nil
}

func (options cmdOptions) Validate() error {
	if options.OptSelectKeys != "" && len(strings.Fields(options.OptSelectKeys)) != 2 {
		return errors.Errorf("--select-keys needs two keys, got %q", options.OptSelectKeys)
	}
	return nil
}

// apply overrides cfg with whatever was given on the command line.
func (options cmdOptions) apply(cfg *config.Config) {
	if options.OptLen != nil {
		cfg.Len = *options.OptLen
	}
	if options.OptMinForLabels != nil {
		cfg.MinForLabels = *options.OptMinForLabels
	}
	if options.OptSelectKeys != "" {
		cfg.SelectKeys = strings.Fields(options.OptSelectKeys)
	}
	if options.OptAltIsReverse {
		cfg.AltIsReverse = true
	}
	if options.OptStartAtCaret {
		cfg.StartAtCaret = true
	}
	if options.OptLabelOverflow != nil {
		cfg.LabelOverflow = *options.OptLabelOverflow
	}
}

func (options cmdOptions) help() []byte {
	buf := bytes.Buffer{}

	fmt.Fprintf(&buf, `
Usage: sneak [options] FILE

Options:
`)

	t := reflect.TypeOf(options)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag

		var o string
		if s := tag.Get("short"); s != "" {
			o = fmt.Sprintf("-%s, --%s", tag.Get("short"), tag.Get("long"))
		} else {
			o = fmt.Sprintf("--%s", tag.Get("long"))
		}

		fmt.Fprintf(
			&buf,
			"  %-21s %s\n",
			o,
			tag.Get("description"),
		)
	}

	return buf.Bytes()
}
