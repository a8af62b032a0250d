package fsm

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/amp-labs/amp-fsm/errors"
)

// TransitionConfig is one transition row as declared in YAML.
type TransitionConfig struct {
	From string `yaml:"from"`
	On   string `yaml:"on"`
	To   string `yaml:"to"`
}

// Config is the YAML form of a transition table. It only declares shape;
// state factories are code and must be registered on the Builder it yields.
//
//	name: connect
//	strict: true
//	terminal:
//	  - connected
//	  - failed
//	transitions:
//	  - {from: start, on: success, to: connecting}
//	  - {from: start, on: failure, to: failed}
type Config struct {
	Name        string             `yaml:"name"`
	Strict      bool               `yaml:"strict"`
	Terminal    []string           `yaml:"terminal"`
	Transitions []TransitionConfig `yaml:"transitions"`
}

// LoadConfig reads and parses a table config from a file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	return ParseConfig(data)
}

// LoadConfigFS reads and parses a table config from a file system, typically
// an embed.FS carrying the table next to the code that registers its states.
func LoadConfigFS(fsys fs.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses and validates YAML config bytes.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the config for structural problems, reporting all of them
// at once. Coverage problems are not checked here; Build does that.
func (c *Config) Validate() error {
	errs := &errors.Collection{}

	if c.Name == "" {
		errs.Add(ErrNameRequired)
	}

	if len(c.Transitions) == 0 {
		errs.Add(ErrEmptyTable)
	}

	for i, t := range c.Transitions {
		if t.From == "" {
			errs.Add(fmt.Errorf("transition %d: %w", i, ErrConfigTransitionFromRequired))
		}

		if t.On == "" {
			errs.Add(fmt.Errorf("transition %d: %w", i, ErrConfigTransitionOnRequired))
		}

		if t.To == "" {
			errs.Add(fmt.Errorf("transition %d: %w", i, ErrConfigTransitionToRequired))
		}
	}

	return errs.GetError()
}

// Builder converts the config into a Builder carrying its name, transitions
// and terminal marking. The caller registers factories and calls Build.
func (c *Config) Builder() *Builder {
	b := NewBuilder(c.Name)

	if c.Strict {
		b.Strict()
	}

	for _, t := range c.Transitions {
		b.Transition(StateKind(t.From), EventKind(t.On), StateKind(t.To))
	}

	for _, kind := range c.Terminal {
		b.Terminal(StateKind(kind))
	}

	return b
}
