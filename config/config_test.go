package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestParse_Defaults verifies unset globals fall back to their defaults.
func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`
targets:
  - icmp: example.com
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Interval.Duration() != 10*time.Second {
		t.Errorf("Interval = %s, want 10s", cfg.Interval.Duration())
	}
	if cfg.Policy != PolicyEveryCheck {
		t.Errorf("Policy = %q, want %q", cfg.Policy, PolicyEveryCheck)
	}
	if len(cfg.Targets) != 1 {
		t.Fatalf("len(Targets) = %d, want 1", len(cfg.Targets))
	}
	if cfg.Targets[0].ICMP != "example.com" {
		t.Errorf("Targets[0].ICMP = %q, want %q", cfg.Targets[0].ICMP, "example.com")
	}
}

// TestParse_FullConfig verifies every field round-trips from YAML.
func TestParse_FullConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
interval: 30s
policy: on-change

targets:
  - icmp: example.com
    resolve: ipv4
  - tcp: example.com:443
    timeout: 3s
    interval: 5s
    policy: every-check
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Interval.Duration() != 30*time.Second {
		t.Errorf("Interval = %s, want 30s", cfg.Interval.Duration())
	}
	if cfg.Policy != PolicyOnChange {
		t.Errorf("Policy = %q, want %q", cfg.Policy, PolicyOnChange)
	}
	if len(cfg.Targets) != 2 {
		t.Fatalf("len(Targets) = %d, want 2", len(cfg.Targets))
	}

	icmp := cfg.Targets[0]
	if icmp.ICMP != "example.com" || icmp.Resolve != ResolveIPv4 {
		t.Errorf("icmp target = %+v", icmp)
	}

	tcp := cfg.Targets[1]
	if tcp.TCP != "example.com:443" {
		t.Errorf("tcp target host = %q, want %q", tcp.TCP, "example.com:443")
	}
	if tcp.Timeout.Duration() != 3*time.Second {
		t.Errorf("tcp timeout = %s, want 3s", tcp.Timeout.Duration())
	}
	if tcp.Interval.Duration() != 5*time.Second {
		t.Errorf("tcp interval = %s, want 5s", tcp.Interval.Duration())
	}
	if tcp.Policy != PolicyEveryCheck {
		t.Errorf("tcp policy = %q, want %q", tcp.Policy, PolicyEveryCheck)
	}
}

// TestParse_Invalid exercises the validation rules.
func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "targets: [",
			wantErr: "failed to parse config",
		},
		{
			name:    "no targets",
			yaml:    "interval: 10s",
			wantErr: "at least one target",
		},
		{
			name: "target without kind",
			yaml: `
targets:
  - resolve: ipv4
`,
			wantErr: "one of icmp or tcp",
		},
		{
			name: "both kinds set",
			yaml: `
targets:
  - icmp: example.com
    tcp: example.com:443
`,
			wantErr: "mutually exclusive",
		},
		{
			name: "unknown resolve",
			yaml: `
targets:
  - icmp: example.com
    resolve: ipv5
`,
			wantErr: "resolve must be",
		},
		{
			name: "unknown global policy",
			yaml: `
policy: sometimes
targets:
  - icmp: example.com
`,
			wantErr: "policy must be",
		},
		{
			name: "unknown target policy",
			yaml: `
targets:
  - icmp: example.com
    policy: sometimes
`,
			wantErr: "policy must be",
		},
		{
			name: "timeout on icmp target",
			yaml: `
targets:
  - icmp: example.com
    timeout: 3s
`,
			wantErr: "tcp targets only",
		},
		{
			name: "bad duration",
			yaml: `
interval: soon
targets:
  - icmp: example.com
`,
			wantErr: "invalid duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

// TestLoad verifies reading from disk and the missing-file error path.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reachable.yaml")
	data := []byte("targets:\n  - tcp: example.com:443\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Targets) != 1 || cfg.Targets[0].TCP != "example.com:443" {
		t.Errorf("Load() targets = %+v", cfg.Targets)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing file expected error, got nil")
	}
}
