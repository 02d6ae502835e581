package config

import (
	"os"
	"path/filepath"
	"testing"
)

// FuzzLoadFromFile feeds arbitrary bytes through the YAML loader. Loading may
// fail but must never panic, and anything it accepts must validate.
func FuzzLoadFromFile(f *testing.F) {
	f.Add([]byte(`
http:
  host: 127.0.0.1
  port: 3000
  shutdown_timeout: 5s
cors:
  allowed_origins: ["*"]
`))
	f.Add([]byte(`
rate_limit:
  enabled: true
  rps: 10
  burst: 20
metrics:
  enabled: false
log:
  level: debug
  format: json
`))
	f.Add([]byte("http: [not, a, map]"))
	f.Add([]byte(""))
	clearEnv(f)

	f.Fuzz(func(t *testing.T, data []byte) {
		path := filepath.Join(t.TempDir(), "fuzz_config.yaml")
		if err := os.WriteFile(path, data, 0o600); err != nil {
			t.Skip()
		}

		cfg, err := LoadFromFile(path)
		if err != nil {
			return
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("loaded config does not validate: %v", err)
		}
	})
}

// FuzzParsePort checks that any accepted port is in range.
func FuzzParsePort(f *testing.F) {
	for _, seed := range []string{"3000", "0", "-1", "65535", "65536", "abc", " 80 ", "", "1e3"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		port, ok := ParsePort(raw)
		if ok && (port < 1 || port > 65535) {
			t.Fatalf("ParsePort(%q) accepted out-of-range port %d", raw, port)
		}
		if !ok && port != 0 {
			t.Fatalf("ParsePort(%q) rejected input but returned %d", raw, port)
		}
	})
}
