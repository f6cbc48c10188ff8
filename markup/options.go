package markup

// Option configures a Renderer.
type Option func(*config)

type config struct {
	hardWraps bool
	gfm       bool
}

// WithHardWraps renders soft line breaks as <br>.
func WithHardWraps(enabled bool) Option {
	return func(cfg *config) {
		cfg.hardWraps = enabled
	}
}

// WithGFM enables or disables GitHub Flavored Markdown extensions (tables,
// strikethrough, autolinks, task lists). Enabled by default.
func WithGFM(enabled bool) Option {
	return func(cfg *config) {
		cfg.gfm = enabled
	}
}
