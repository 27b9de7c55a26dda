package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqdiff/sequence"
)

// ErrInvalidConfig indicates a config file or flag value seqdiff cannot use.
var ErrInvalidConfig = errors.New("cli: invalid config")

// Tokenization units.
const (
	UnitLines = "lines"
	UnitWords = "words"
	UnitRunes = "runes"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Newline handling names, mapped to sequence.NewlineMode.
const (
	NewlineRaw  = "raw"
	NewlineLF   = "lf"
	NewlineCRLF = "crlf"
)

// Config holds the comparison options. Every field can come from the TOML
// file given by --config and be overridden by the matching flag.
type Config struct {
	Unit        string `toml:"unit"`
	Format      string `toml:"format"`
	IgnoreCase  bool   `toml:"ignore_case"`
	IgnoreSpace bool   `toml:"ignore_space"`
	Newline     string `toml:"newline"`
}

// DefaultConfig compares lines, ignoring LF or CRLF terminators, and prints text.
func DefaultConfig() Config {
	return Config{
		Unit:    UnitLines,
		Format:  FormatText,
		Newline: NewlineCRLF,
	}
}

// LoadConfig reads path over DefaultConfig. Unknown keys and invalid values
// are rejected with ErrInvalidConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every enumerated field.
func (c Config) Validate() error {
	switch c.Unit {
	case UnitLines, UnitWords, UnitRunes:
	default:
		return fmt.Errorf("%w: unit must be %s, %s or %s (got %q)", ErrInvalidConfig, UnitLines, UnitWords, UnitRunes, c.Unit)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: format must be %s or %s (got %q)", ErrInvalidConfig, FormatText, FormatJSON, c.Format)
	}
	if _, err := c.newlineMode(); err != nil {
		return err
	}

	return nil
}

// newlineMode maps Newline to its sequence.NewlineMode.
func (c Config) newlineMode() (sequence.NewlineMode, error) {
	switch c.Newline {
	case NewlineRaw:
		return sequence.NewlineRaw, nil
	case NewlineLF:
		return sequence.NewlineLF, nil
	case NewlineCRLF:
		return sequence.NewlineCRLF, nil
	default:
		return 0, fmt.Errorf("%w: newline must be %s, %s or %s (got %q)", ErrInvalidConfig, NewlineRaw, NewlineLF, NewlineCRLF, c.Newline)
	}
}

// compareFlags are the per-command flags that override Config.
type compareFlags struct {
	unit        string
	format      string
	newline     string
	ignoreCase  bool
	ignoreSpace bool
}

// register adds the flags to cmd with DefaultConfig values as defaults.
func (f *compareFlags) register(cmd *cobra.Command) {
	def := DefaultConfig()
	cmd.Flags().StringVarP(&f.unit, "unit", "u", def.Unit, "compare by lines, words or runes")
	cmd.Flags().StringVar(&f.newline, "newline", def.Newline, "line terminator handling: raw, lf or crlf")
	cmd.Flags().BoolVarP(&f.ignoreCase, "ignore-case", "i", def.IgnoreCase, "treat upper and lower case as equal")
	cmd.Flags().BoolVarP(&f.ignoreSpace, "ignore-space", "w", def.IgnoreSpace, "ignore white space when comparing")
	cmd.Flags().StringVarP(&f.format, "format", "f", def.Format, "output format: text or json")
}

// resolveConfig loads --config if given, then applies every flag the user
// set explicitly.
func (c *CLI) resolveConfig(cmd *cobra.Command, f *compareFlags) (Config, error) {
	cfg := DefaultConfig()
	if c.configPath != "" {
		loaded, err := LoadConfig(c.configPath)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
		loggerFromContext(cmd.Context()).Debug("Loaded config", "path", c.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("unit") {
		cfg.Unit = f.unit
	}
	if flags.Changed("format") {
		cfg.Format = f.format
	}
	if flags.Changed("newline") {
		cfg.Newline = f.newline
	}
	if flags.Changed("ignore-case") {
		cfg.IgnoreCase = f.ignoreCase
	}
	if flags.Changed("ignore-space") {
		cfg.IgnoreSpace = f.ignoreSpace
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
