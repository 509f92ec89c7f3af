package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/naming"
)

// DefaultRootName names the root interface of inferred and converted types.
const DefaultRootName = "Root"

// Config represents the complete configuration for tsgen
type Config struct {
	Strings    StringsConfig    `yaml:"strings"`
	Values     ValuesConfig     `yaml:"values"`
	Naming     NamingConfig     `yaml:"naming"`
	Formatting FormattingConfig `yaml:"formatting"`
	Types      TypesConfig      `yaml:"types"`
	Inference  InferenceConfig  `yaml:"inference"`
	Output     OutputConfig     `yaml:"output"`
	Dev        DevConfig        `yaml:"dev"`
}

// StringsConfig controls string literal generation
type StringsConfig struct {
	SingleQuotes bool `yaml:"single_quotes"`
}

// ValuesConfig controls the value serializer
type ValuesConfig struct {
	// PreserveTypes overrides the per-renderer default when set.
	PreserveTypes *bool `yaml:"preserve_types"`
}

// NamingConfig controls declaration naming
type NamingConfig struct {
	PascalCaseTypes bool              `yaml:"pascal_case_types"`
	CamelCaseValues bool              `yaml:"camel_case_values"`
	NameMappings    map[string]string `yaml:"name_mappings"`
}

// FormattingConfig controls output post-processing
type FormattingConfig struct {
	Enabled     bool `yaml:"enabled"`
	IndentWidth int  `yaml:"indent_width"`
	UseTabs     bool `yaml:"use_tabs"`
	SortImports bool `yaml:"sort_imports"`
	Semicolons  bool `yaml:"semicolons"`
}

// TypesConfig controls type inference overrides
type TypesConfig struct {
	Mappings []TypeMapping `yaml:"mappings"`
}

// TypeMapping assigns a TypeScript type to inferred properties whose key
// matches Pattern.
type TypeMapping struct {
	Pattern string `yaml:"pattern"`
	Type    string `yaml:"type"`
	Comment string `yaml:"comment,omitempty"`

	// compiled regex (not serialized)
	regex *regexp.Regexp
}

// InferenceConfig controls interface inference from sample values
type InferenceConfig struct {
	RootName        string `yaml:"root_name"`
	OptionalMissing bool   `yaml:"optional_missing"`
}

// OutputConfig controls output generation options
type OutputConfig struct {
	FileHeader string `yaml:"file_header"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Naming: NamingConfig{
			NameMappings: make(map[string]string),
		},
		Formatting: FormattingConfig{
			Enabled:     true,
			IndentWidth: 2,
			SortImports: false,
			Semicolons:  false,
		},
		Types: TypesConfig{
			Mappings: []TypeMapping{},
		},
		Inference: InferenceConfig{
			RootName:        DefaultRootName,
			OptionalMissing: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.compilePatterns(); err != nil {
		return nil, fmt.Errorf("failed to compile patterns: %w", err)
	}

	if cfg.Formatting.IndentWidth <= 0 {
		return nil, fmt.Errorf("formatting.indent_width must be positive, got %d", cfg.Formatting.IndentWidth)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".tsgen.yml", ".tsgen.yaml", "tsgen.yml", "tsgen.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// compilePatterns compiles all regex patterns in the config
func (c *Config) compilePatterns() error {
	for i := range c.Types.Mappings {
		mapping := &c.Types.Mappings[i]
		regex, err := regexp.Compile(mapping.Pattern)
		if err != nil {
			return fmt.Errorf("invalid type mapping pattern '%s': %w", mapping.Pattern, err)
		}
		mapping.regex = regex
	}
	return nil
}

// MatchesField checks if this type mapping matches the given property key
func (tm *TypeMapping) MatchesField(key string) bool {
	if tm.regex == nil {
		regex, err := regexp.Compile(tm.Pattern)
		if err != nil {
			return false
		}
		tm.regex = regex
	}
	return tm.regex.MatchString(key)
}

// FindTypeMapping finds the first type mapping that matches the key
func (c *Config) FindTypeMapping(key string) (TypeMapping, bool) {
	for i := range c.Types.Mappings {
		if c.Types.Mappings[i].MatchesField(key) {
			return c.Types.Mappings[i], true
		}
	}
	return TypeMapping{}, false
}

// Codegen returns the string options shared by every generator
func (c *Config) Codegen() models.CodegenOptions {
	return models.CodegenOptions{SingleQuotes: c.Strings.SingleQuotes}
}

// GetTypeName returns the declared name of a type, enum, interface or
// class after mappings and casing rules
func (c *Config) GetTypeName(name string) string {
	if mapped, exists := c.Naming.NameMappings[name]; exists {
		return mapped
	}
	if c.Naming.PascalCaseTypes {
		return naming.TypeName(name)
	}
	return name
}

// GetValueName returns the declared name of a variable or function after
// mappings and casing rules
func (c *Config) GetValueName(name string) string {
	if mapped, exists := c.Naming.NameMappings[name]; exists {
		return mapped
	}
	if c.Naming.CamelCaseValues {
		return naming.ValueName(name)
	}
	return name
}

// RootName returns the configured root name, falling back to the default
func (c *Config) RootName() string {
	if c.Inference.RootName == "" {
		return DefaultRootName
	}
	return c.Inference.RootName
}

// LoadConfigWithCLI loads config with CLI argument precedence. CLI values
// only win when they differ from the flag defaults.
func LoadConfigWithCLI(configPath, cliRootName string, cliSingleQuotes, cliDebug bool) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliRootName != "" && cliRootName != DefaultRootName {
		cfg.Inference.RootName = cliRootName
	}
	if cliSingleQuotes {
		cfg.Strings.SingleQuotes = true
	}
	if cliDebug {
		cfg.Dev.Debug = true
	}

	return cfg, nil
}
