package config

import "fmt"

const (
	// EnvPrefix is prepended to every Settings variable name.
	EnvPrefix = "MUNGE_"
	// DefaultRulesFile must match the envDefault of Settings.Rules.
	DefaultRulesFile = "munge_rules.yaml"
)

// Settings holds the munge command knobs that may come from the environment.
// Command-line flags override them.
type Settings struct {
	Rules      string `env:"RULES" envDefault:"munge_rules.yaml"`
	Level      int    `env:"LEVEL" envDefault:"5"`
	Dedupe     string `env:"DEDUPE" envDefault:"auto"`
	MaxSeen    int    `env:"MAX_SEEN" envDefault:"2000000"`
	ChunkLines int    `env:"CHUNK_LINES" envDefault:"1000000"`
	TmpDir     string `env:"TMP_DIR"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadSettings loads Settings using the MUNGE_ prefix.
func LoadSettings(opts ...Option) (Settings, error) {
	var s Settings
	if err := Load(&s, append([]Option{WithPrefix(EnvPrefix)}, opts...)...); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports values no run could use.
func (s Settings) Validate() error {
	if s.ChunkLines < 1 {
		return fmt.Errorf("%w: %sCHUNK_LINES must be >= 1, got %d", ErrInvalidSettings, EnvPrefix, s.ChunkLines)
	}
	return nil
}
