package config

import (
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the project root.
const FileName = "memo.yaml"

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid duration"), "value", s)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the memo.yaml schema. Every field has a default; a missing file
// is not an error.
type Config struct {
	// Root is the project directory all discovery and watching is anchored
	// to.
	Root string `yaml:"root"`

	// Excludes are directory or file glob patterns skipped during source
	// discovery and watching.
	Excludes []string `yaml:"excludes"`

	TTL      TTLConfig      `yaml:"ttl"`
	Capacity int            `yaml:"capacity"`
	Monitor  MonitorConfig  `yaml:"monitor"`
	Commands CommandsConfig `yaml:"commands"`
}

// TTLConfig holds the three retention classes: short for fingerprints,
// medium for structural snapshots, long for operation results.
type TTLConfig struct {
	Short  Duration `yaml:"short"`
	Medium Duration `yaml:"medium"`
	Long   Duration `yaml:"long"`
}

// MonitorConfig holds health sampling and auto-cleanup settings.
type MonitorConfig struct {
	Interval         Duration `yaml:"interval"`
	CleanupInterval  Duration `yaml:"cleanupInterval"`
	CleanupThreshold float64  `yaml:"cleanupThreshold"`
	SizeTarget       float64  `yaml:"sizeTarget"`
	HistoryCap       int      `yaml:"historyCap"`
}

// CommandsConfig holds the external checker command lines.
type CommandsConfig struct {
	Compile []string `yaml:"compile"`
	Style   []string `yaml:"style"`
	Test    []string `yaml:"test"`
}

// Default returns the configuration used when memo.yaml is absent.
func Default() *Config {
	return &Config{
		Root: ".",
		Excludes: []string{
			"node_modules", "dist", "build", "coverage", "out", ".git", ".next",
		},
		TTL: TTLConfig{
			Short:  Duration(30 * time.Second),
			Medium: Duration(5 * time.Minute),
			Long:   Duration(30 * time.Minute),
		},
		Capacity: 1000,
		Monitor: MonitorConfig{
			Interval:         Duration(30 * time.Second),
			CleanupInterval:  Duration(time.Minute),
			CleanupThreshold: 0.85,
			SizeTarget:       0.7,
			HistoryCap:       500,
		},
		Commands: CommandsConfig{
			Compile: []string{"npx", "tsc", "--noEmit"},
			Style:   []string{"npx", "eslint", ".", "--format", "unix"},
			Test:    []string{"npx", "jest", "--silent"},
		},
	}
}
