package sneak

import (
	"github.com/peco/sneak/keyseq"
	"github.com/peco/sneak/label"
	"github.com/pkg/errors"
)

const (
	// DefaultLen is the default number of characters in a search key.
	DefaultLen = 2
	// LabelsDisabled turns label mode off.
	LabelsDisabled = 0
)

var (
	defaultNextKey    = keyseq.NewRuneKey('n')
	defaultPrevKey    = keyseq.NewRuneKey('N')
	defaultAltPrevKey = keyseq.Key{Modifier: keyseq.ModAlt, Ch: 'n'}
)

// Init initializes the Config with default values
func (c *Config) Init() {
	c.NextKey = defaultNextKey
	c.PrevKey = keyseq.Key{}
	c.Len = DefaultLen
	c.MinForLabels = LabelsDisabled
	c.LabelAlphabet = label.DefaultAlphabet
	c.LabelOverflow = label.OverflowTruncate
	c.StartAtCaret = false
}

// NewConfig returns a Config holding the defaults.
func NewConfig() Config {
	var c Config
	c.Init()
	return c
}

// Validate reports configuration mistakes that would otherwise only show
// up in the middle of a search.
func (c Config) Validate() error {
	if c.Len < 1 {
		return errors.Errorf("invalid key length %d: must be at least 1", c.Len)
	}
	if c.MinForLabels < 0 {
		return errors.Errorf("invalid label threshold %d: must be at least 1, or %d to disable labels", c.MinForLabels, LabelsDisabled)
	}
	if c.NextKey.IsZero() {
		return errors.New("next key is not set")
	}

	prevs := []keyseq.Key{c.PrevKey}
	if c.PrevKey.IsZero() {
		prevs = []keyseq.Key{defaultPrevKey, defaultAltPrevKey}
	}
	for _, p := range prevs {
		if p.Equals(c.NextKey) {
			return errors.Errorf("next and previous keys are both %s", p)
		}
	}

	switch c.LabelOverflow {
	case label.OverflowTruncate, label.OverflowGroup:
	default:
		return errors.Errorf("invalid label overflow %d", int(c.LabelOverflow))
	}

	if c.MinForLabels != LabelsDisabled && len(c.alphabet()) == 0 {
		return errors.Errorf("label alphabet %q has no characters left besides the cycle keys", c.LabelAlphabet)
	}
	return nil
}

// labelsEnabled reports whether n matches should be labeled.
func (c Config) labelsEnabled(n int) bool {
	return c.MinForLabels != LabelsDisabled && n >= c.MinForLabels
}

// alphabet returns the label characters minus the cycle keys.
func (c Config) alphabet() []rune {
	keys := []keyseq.Key{c.NextKey, c.PrevKey}
	if c.PrevKey.IsZero() {
		keys = append(keys, defaultPrevKey)
	}

	var reserved []rune
	for _, k := range keys {
		if ch, ok := k.Char(); ok {
			reserved = append(reserved, ch)
		}
	}
	return label.Alphabet(c.LabelAlphabet, reserved...)
}
