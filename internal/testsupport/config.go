package testsupport

import (
	"path/filepath"
	"testing"

	"salient/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose inputs, log file and history database
// live in a per-test temp directory.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Inputs.ExcludePath = filepath.Join(base, "common.txt")
	cfgVal.Inputs.TextPath = filepath.Join(base, "test.txt")
	cfgVal.History.Path = filepath.Join(base, "history", "history.db")

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithHistory enables the run history database.
func WithHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = true
	}
}

// WithInputs writes exclusion and body text to the configured input paths.
func WithInputs(exclude, text string) ConfigOption {
	return func(b *configBuilder) {
		WriteText(b.t, b.cfg.Inputs.ExcludePath, exclude)
		WriteText(b.t, b.cfg.Inputs.TextPath, text)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Inputs.ExcludePath)
}
