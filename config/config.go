// Package config provides YAML configuration parsing for reachable.
//
// This package enables running reachable as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK
// approach.
//
// Example configuration:
//
//	interval: 10s
//	policy: every-check
//
//	targets:
//	  - icmp: example.com
//	    resolve: ipv4
//	  - tcp: example.com:443
//	    timeout: 3s
//	    interval: 5s
//	    policy: on-change
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultInterval is the check interval used when the file sets none.
const defaultInterval = 10 * time.Second

// Known values for the policy and resolve fields.
const (
	PolicyEveryCheck = "every-check"
	PolicyOnChange   = "on-change"

	ResolveAny  = "any"
	ResolveIPv4 = "ipv4"
	ResolveIPv6 = "ipv6"
)

// Config is the root configuration structure for reachable.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Interval is the default time between availability checks.
	// Accepts duration strings like "10s", "1m", "500ms".
	// Defaults to 10s.
	Interval Duration `yaml:"interval"`

	// Policy is the default notify policy: "every-check" or
	// "on-change". Defaults to "every-check".
	Policy string `yaml:"policy"`

	// Targets defines the reachability targets to check.
	Targets []TargetConfig `yaml:"targets"`
}

// TargetConfig defines a single reachability target.
//
// Exactly one of ICMP or TCP must be set.
type TargetConfig struct {
	// ICMP is a host to check with ICMP echo requests,
	// e.g. "example.com" or "192.0.2.1".
	ICMP string `yaml:"icmp"`

	// TCP is a "host:port" to check with TCP connection attempts,
	// e.g. "example.com:443".
	TCP string `yaml:"tcp"`

	// Resolve restricts name resolution to one address family:
	// "any", "ipv4", or "ipv6". Defaults to "any".
	Resolve string `yaml:"resolve"`

	// Timeout is the TCP connect timeout. Ignored for ICMP targets.
	// Defaults to the library's connect timeout.
	Timeout Duration `yaml:"timeout"`

	// Interval overrides the global check interval for this target.
	Interval Duration `yaml:"interval"`

	// Policy overrides the global notify policy for this target.
	Policy string `yaml:"policy"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Load reads and parses a configuration file.
//
// It applies defaults and validates the result. Returns an error if the
// file cannot be read, the YAML is malformed, or validation fails.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses configuration from raw YAML bytes.
//
// It applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in unset global fields.
func applyDefaults(cfg *Config) {
	if cfg.Interval == 0 {
		cfg.Interval = Duration(defaultInterval)
	}
	if cfg.Policy == "" {
		cfg.Policy = PolicyEveryCheck
	}
}

// validate checks the config for structural errors.
func validate(cfg *Config) error {
	if cfg.Interval < 0 {
		return fmt.Errorf("interval cannot be negative")
	}
	if err := validatePolicy(cfg.Policy); err != nil {
		return err
	}
	if len(cfg.Targets) == 0 {
		return fmt.Errorf("at least one target is required")
	}

	for i, t := range cfg.Targets {
		if err := validateTarget(t); err != nil {
			return fmt.Errorf("target %d: %w", i, err)
		}
	}
	return nil
}

func validateTarget(t TargetConfig) error {
	switch {
	case t.ICMP == "" && t.TCP == "":
		return fmt.Errorf("one of icmp or tcp is required")
	case t.ICMP != "" && t.TCP != "":
		return fmt.Errorf("icmp and tcp are mutually exclusive")
	}

	if t.Resolve != "" {
		switch t.Resolve {
		case ResolveAny, ResolveIPv4, ResolveIPv6:
		default:
			return fmt.Errorf("resolve must be %q, %q, or %q, got %q",
				ResolveAny, ResolveIPv4, ResolveIPv6, t.Resolve)
		}
	}
	if t.ICMP != "" && t.Timeout != 0 {
		return fmt.Errorf("timeout applies to tcp targets only")
	}
	if t.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	if t.Interval < 0 {
		return fmt.Errorf("interval cannot be negative")
	}
	if t.Policy != "" {
		if err := validatePolicy(t.Policy); err != nil {
			return err
		}
	}
	return nil
}

func validatePolicy(policy string) error {
	switch policy {
	case PolicyEveryCheck, PolicyOnChange:
		return nil
	default:
		return fmt.Errorf("policy must be %q or %q, got %q",
			PolicyEveryCheck, PolicyOnChange, policy)
	}
}
