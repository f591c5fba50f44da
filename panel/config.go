package panel

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config describes how a panel is wired and brought up.
type Config struct {
	Bus      string `yaml:"bus"`       // periph SPI port name, empty for the first one
	SpeedHz  int64  `yaml:"speed_hz"`  // bus clock
	Packed   bool   `yaml:"packed"`    // controller lacks 9-bit words
	ResetPin string `yaml:"reset_pin"` // optional GPIO name wired to RESX

	Mode    string `yaml:"mode"`    // name of a predefined timing
	Timings *Mode  `yaml:"timings"` // custom timing, overrides Mode

	Sequence string `yaml:"sequence"` // name of a built-in init recipe
	Script   string `yaml:"script"`   // path of an init script, overrides Sequence
	Policy   string `yaml:"policy"`   // "abort" (or empty) or "best-effort" ("continue")
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		SpeedHz:  20000,
		Mode:     "tdo",
		Sequence: "tdo",
		Policy:   "abort",
	}
}

// Load reads a YAML file on top of Default, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("panel: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default, applies environment overrides and
// validates the result. Empty data yields Default with the overrides.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("panel: invalid config: %w", err)
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets the bus and reset pin be changed per host without
// editing the file.
func applyEnvOverrides(cfg *Config) {
	if bus := os.Getenv("ST7701S_BUS"); bus != "" {
		cfg.Bus = bus
	}
	if pin := os.Getenv("ST7701S_RESET_PIN"); pin != "" {
		cfg.ResetPin = pin
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.SpeedHz <= 0 {
		return fmt.Errorf("panel: speed_hz must be positive, got %d", c.SpeedHz)
	}
	if _, err := c.PanelMode(); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(c.Policy)) {
	case "", "abort", "best-effort", "besteffort", "continue":
	default:
		return fmt.Errorf("panel: invalid policy %q, must be one of: abort, best-effort", c.Policy)
	}
	if c.Script == "" && c.Sequence == "" {
		return fmt.Errorf("panel: one of sequence or script must be set")
	}
	return nil
}

// PanelMode resolves the timing to use: Timings when present, otherwise the
// predefined mode named by Mode.
func (c *Config) PanelMode() (Mode, error) {
	if c.Timings != nil {
		if err := c.Timings.Validate(); err != nil {
			return Mode{}, err
		}
		return *c.Timings, nil
	}
	m, err := ModeByName(c.Mode)
	if err != nil {
		return Mode{}, err
	}
	if err := m.Validate(); err != nil {
		return Mode{}, fmt.Errorf("panel: mode %q: %w", c.Mode, err)
	}
	return m, nil
}
