package fetch

const (
	DefaultTimeoutSecs  = 10
	DefaultMaxRedirects = 5
	DefaultMaxBodyBytes = 10 * 1024 * 1024

	// DefaultUserAgent is sent on every page fetch; many sites refuse
	// requests without a browser-looking agent string.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Config controls page fetching behavior.
type Config struct {
	TimeoutSecs  int    `yaml:"timeout_seconds"`
	UserAgent    string `yaml:"user_agent"`
	MaxRedirects int    `yaml:"max_redirects"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
	// AllowPrivateHosts disables the private-address guard. Only meant for
	// local development and tests.
	AllowPrivateHosts bool `yaml:"allow_private_hosts"`
}

func (c Config) WithDefaults() Config {
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.MaxRedirects <= 0 {
		c.MaxRedirects = DefaultMaxRedirects
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return c
}
