package ansifmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultIndent is the indent used when a config does not set one.
const DefaultIndent = 4

// Config describes how records are rendered. Columns <= 0 means detect the
// terminal width.
type Config struct {
	Columns      int         `json:"columns" yaml:"columns" toml:"columns"`
	Indent       int         `json:"indent" yaml:"indent" toml:"indent"`
	Fields       []FieldSpec `json:"fields" yaml:"fields" toml:"fields"`
	Highlighters []Rule      `json:"highlighters,omitempty" yaml:"highlighters,omitempty" toml:"highlighters"`
}

// DefaultConfig returns a config rendering the "message" field with an
// indent of [DefaultIndent] at the detected terminal width.
func DefaultConfig() Config {
	return Config{
		Indent: DefaultIndent,
		Fields: []FieldSpec{{Field: "message"}},
	}
}

// ConfigFormat is the encoding of a config file.
type ConfigFormat string

const (
	ConfigYAML ConfigFormat = "yaml"
	ConfigTOML ConfigFormat = "toml"
	ConfigJSON ConfigFormat = "json"
)

// ParseConfig decodes data on top of [DefaultConfig], so keys absent from
// data keep their defaults.
func ParseConfig(data []byte, f ConfigFormat) (Config, error) {
	cfg := DefaultConfig()
	var err error
	switch f {
	case ConfigYAML:
		err = yaml.Unmarshal(data, &cfg)
	case ConfigTOML:
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	case ConfigJSON:
		err = json.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedConfig, f)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s config: %w", f, err)
	}
	return cfg, nil
}

// LoadConfig reads the config file at path. The format follows the file
// extension: .yaml, .yml, .toml or .json.
func LoadConfig(path string) (Config, error) {
	f, err := configFormat(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data, f)
}

func configFormat(path string) (ConfigFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ConfigYAML, nil
	case ".toml":
		return ConfigTOML, nil
	case ".json":
		return ConfigJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedConfig, path)
	}
}
