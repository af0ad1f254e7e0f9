// Package config loads extraction settings from defaults, an optional config
// file, CFGEXTRACT_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/phobologic/cfgextract/internal/manifest"
	"github.com/phobologic/cfgextract/internal/naming"
)

// FileName is the config file looked up in the working directory, without
// extension (yaml, yml and json are accepted).
const FileName = "cfgextract"

// EnvPrefix prefixes environment overrides, e.g. CFGEXTRACT_LAYOUT=flat.
const EnvPrefix = "CFGEXTRACT"

// Summary formats for the end-of-run report.
const (
	SummaryText = "text"
	SummaryTOON = "toon"
)

// Config represents the resolved settings of one run.
type Config struct {
	Layout       naming.Layout `mapstructure:"-"`
	LayoutName   string        `mapstructure:"layout"`
	Manifest     string        `mapstructure:"manifest"`
	ContractsDir string        `mapstructure:"contracts-dir"`
	GroupsDir    string        `mapstructure:"groups-dir"`
	Gitignore    bool          `mapstructure:"gitignore"`
	MaxFileSize  int64         `mapstructure:"max-file-size"`
	Summary      string        `mapstructure:"summary"`
	Quiet        bool          `mapstructure:"quiet"`
}

// DefaultConfig values
var DefaultConfig = Config{
	Layout:       naming.Grouped,
	LayoutName:   string(naming.Grouped),
	Manifest:     manifest.DefaultName,
	ContractsDir: "contracts",
	GroupsDir:    "groups",
	Summary:      SummaryText,
}

// Flags registers the settings flags on fs.
func Flags(fs *pflag.FlagSet) {
	fs.String("layout", DefaultConfig.LayoutName, "output layout for type blocks: 'grouped' (contracts/<group>/<file>/) or 'flat' (contracts/<file>/)")
	fs.String("manifest", DefaultConfig.Manifest, "manifest file name, relative to the working directory")
	fs.String("contracts-dir", DefaultConfig.ContractsDir, "directory for extracted CONTRACT_TYPE blocks")
	fs.String("groups-dir", DefaultConfig.GroupsDir, "directory for extracted CONTRACT_GROUP blocks")
	fs.Bool("gitignore", DefaultConfig.Gitignore, "skip files ignored by git")
	fs.Int64("max-file-size", DefaultConfig.MaxFileSize, "skip files larger than this many bytes (0 for no limit)")
	fs.String("summary", DefaultConfig.Summary, "end-of-run summary format: 'text' or 'toon'")
	fs.BoolP("quiet", "q", DefaultConfig.Quiet, "do not print a line per saved block")
}

// Load resolves the configuration. cfgFile, when set, must exist; otherwise
// a cfgextract.{yaml,yml,json} in workdir is read if present. flags may be nil.
func Load(flags *pflag.FlagSet, workdir, cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(workdir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("layout", DefaultConfig.LayoutName)
	v.SetDefault("manifest", DefaultConfig.Manifest)
	v.SetDefault("contracts-dir", DefaultConfig.ContractsDir)
	v.SetDefault("groups-dir", DefaultConfig.GroupsDir)
	v.SetDefault("gitignore", DefaultConfig.Gitignore)
	v.SetDefault("max-file-size", DefaultConfig.MaxFileSize)
	v.SetDefault("summary", DefaultConfig.Summary)
	v.SetDefault("quiet", DefaultConfig.Quiet)
}

func (c *Config) validate() error {
	layout, err := naming.ParseLayout(c.LayoutName)
	if err != nil {
		return err
	}
	c.Layout = layout

	c.Summary = strings.ToLower(strings.TrimSpace(c.Summary))
	if c.Summary != SummaryText && c.Summary != SummaryTOON {
		return fmt.Errorf("unknown summary format %q (want %q or %q)", c.Summary, SummaryText, SummaryTOON)
	}
	if c.MaxFileSize < 0 {
		return fmt.Errorf("max-file-size must not be negative")
	}
	for key, dir := range map[string]string{"manifest": c.Manifest, "contracts-dir": c.ContractsDir, "groups-dir": c.GroupsDir} {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	return nil
}
