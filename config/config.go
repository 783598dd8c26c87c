package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/peco/sneak"
	"github.com/peco/sneak/internal/util"
	"github.com/peco/sneak/keyseq"
	"github.com/peco/sneak/label"
	"github.com/peco/sneak/match"
	"github.com/pkg/errors"
)

// Config holds all the data that can be configured in the
// external configuration file
type Config struct {
	// SelectKeys is the pair of cycle keys, previous first. An empty
	// list keeps the defaults ("N" or "M-n", then "n").
	SelectKeys    []string       `json:"SelectKeys" yaml:"SelectKeys"`
	Len           int            `json:"Len" yaml:"Len"`
	MinForLabels  int            `json:"MinForLabels" yaml:"MinForLabels"`
	LabelAlphabet string         `json:"LabelAlphabet" yaml:"LabelAlphabet"`
	LabelOverflow label.Overflow `json:"LabelOverflow" yaml:"LabelOverflow"`
	StartAtCaret  bool           `json:"StartAtCaret" yaml:"StartAtCaret"`

	// AltIsReverse makes M-n the previous key when SelectKeys is empty.
	// It is a preference of the viewer, which reports it to the mode on
	// every key.
	AltIsReverse bool `json:"AltIsReverse" yaml:"AltIsReverse"`

	// TabStop is the tab width used to draw text and compute match columns.
	TabStop int `json:"TabStop" yaml:"TabStop"`

	Style StyleSet `json:"Style" yaml:"Style"`

	// Keymap binds key names to viewer commands, on top of the
	// default bindings.
	Keymap map[string]string `json:"Keymap" yaml:"Keymap"`
}

var homedirFunc = util.Homedir

// Init initializes the Config with default values
func (c *Config) Init() error {
	c.SelectKeys = nil
	c.Len = sneak.DefaultLen
	c.MinForLabels = sneak.LabelsDisabled
	c.LabelAlphabet = label.DefaultAlphabet
	c.LabelOverflow = label.OverflowTruncate
	c.TabStop = match.DefaultTabStop
	c.Style.Init()
	c.Keymap = make(map[string]string)
	return nil
}

// ReadFilename reads the config from the given file, and
// does the appropriate processing, if any
func (c *Config) ReadFilename(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open file %s", filename)
	}
	defer f.Close()

	switch ext := filepath.Ext(filename); ext {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(c); err != nil {
			return errors.Wrap(err, "failed to decode YAML")
		}
	default:
		if err := json.NewDecoder(f).Decode(c); err != nil {
			return errors.Wrap(err, "failed to decode JSON")
		}
	}

	if c.TabStop < 1 {
		return errors.Errorf("invalid tab stop %d", c.TabStop)
	}
	return nil
}

// ModeConfig converts the file settings into a validated sneak.Config.
func (c *Config) ModeConfig() (sneak.Config, error) {
	mc := sneak.NewConfig()
	mc.Len = c.Len
	mc.MinForLabels = c.MinForLabels
	mc.LabelAlphabet = c.LabelAlphabet
	mc.LabelOverflow = c.LabelOverflow
	mc.StartAtCaret = c.StartAtCaret

	switch len(c.SelectKeys) {
	case 0:
	case 2:
		prev, err := keyseq.Parse(c.SelectKeys[0])
		if err != nil {
			return mc, errors.Wrap(err, "invalid previous key")
		}
		next, err := keyseq.Parse(c.SelectKeys[1])
		if err != nil {
			return mc, errors.Wrap(err, "invalid next key")
		}
		mc.PrevKey = prev
		mc.NextKey = next
	default:
		return mc, errors.Errorf("SelectKeys must hold exactly two keys (previous, next), got %d", len(c.SelectKeys))
	}

	if err := mc.Validate(); err != nil {
		return mc, errors.Wrap(err, "invalid configuration")
	}
	return mc, nil
}

// Locator locates a config file in a given directory.
type Locator interface {
	Locate(string) (string, error)
}

// LocatorFunc is a function that implements Locator.
type LocatorFunc func(string) (string, error)

// Locate calls the underlying function.
func (f LocatorFunc) Locate(dir string) (string, error) {
	return f(dir)
}

var configFilenames = []string{"config.json", "config.yaml", "config.yml"}

// DefaultConfigLocator searches for a config file with one of the known
// filenames (config.json, config.yaml, config.yml) in the given directory.
var DefaultConfigLocator = LocatorFunc(func(dir string) (string, error) {
	for _, basename := range configFilenames {
		file := filepath.Join(dir, basename)
		if _, err := os.Stat(file); err == nil {
			return file, nil
		}
	}
	return "", errors.Errorf("config file not found in %s", dir)
})

// LocateRcfile attempts to find the config file in various locations
func LocateRcfile(locater Locator) (string, error) {
	// http://standards.freedesktop.org/basedir-spec/basedir-spec-latest.html
	//
	// Try in this order:
	//	  $XDG_CONFIG_HOME/sneak/config.{json,yaml,yml}
	//    $XDG_CONFIG_DIR/sneak/config.{json,yaml,yml} (where XDG_CONFIG_DIR is listed in $XDG_CONFIG_DIRS)
	//	  ~/.sneak/config.{json,yaml,yml}

	home, uErr := homedirFunc()

	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		if file, err := locater.Locate(filepath.Join(dir, "sneak")); err == nil {
			return file, nil
		}
	} else if uErr == nil { // silently ignore failure for homedir()
		if file, err := locater.Locate(filepath.Join(home, ".config", "sneak")); err == nil {
			return file, nil
		}
	}

	if dirs := os.Getenv("XDG_CONFIG_DIRS"); dirs != "" {
		for _, dir := range strings.Split(dirs, fmt.Sprintf("%c", filepath.ListSeparator)) {
			if file, err := locater.Locate(filepath.Join(dir, "sneak")); err == nil {
				return file, nil
			}
		}
	}

	if uErr == nil {
		if file, err := locater.Locate(filepath.Join(home, ".sneak")); err == nil {
			return file, nil
		}
	}

	return "", errors.New("config file not found")
}
