package tui

// Theme holds the prefixes the host puts in front of info and error lines.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the terminal host.
type Option func(*Host)

// WithPromptDriver overrides the prompt driver used by the host.
func WithPromptDriver(driver PromptDriver) Option {
	return func(h *Host) {
		if driver != nil {
			h.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(h *Host) {
		h.theme = theme
	}
}

// WithMaxAttempts bounds the number of submit attempts. Zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(h *Host) {
		if n >= 0 {
			h.maxAttempts = n
		}
	}
}

// WithConfirm asks for confirmation before each submit. Declining re-prompts
// every field.
func WithConfirm(message string) Option {
	return func(h *Host) {
		h.confirm = true
		if message != "" {
			h.confirmMessage = message
		}
	}
}
