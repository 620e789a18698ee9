package mdpdf

// TranslateOption configures translation behavior.
type TranslateOption func(*translateConfig)

type translateConfig struct {
	frontMatter bool
}

func newTranslateConfig(opts []TranslateOption) translateConfig {
	var cfg translateConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithFrontMatter enables or disables front matter parsing. When enabled a
// leading metadata block fills Document.Meta and is dropped from the body.
func WithFrontMatter(enabled bool) TranslateOption {
	return func(cfg *translateConfig) {
		cfg.frontMatter = enabled
	}
}
