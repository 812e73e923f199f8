package config

import (
	"encoding/json"
	"fmt"
	"os"

	"sequence/internal/domain"
)

// ServerConfig holds the tunable server and rules settings, loaded from an
// optional JSON file.
type ServerConfig struct {
	Addr           string   `json:"addr"`
	AllowedOrigins []string `json:"allowed_origins"`
	// SequencesToWin is the number of completed sequences a player needs
	// to win the match.
	SequencesToWin int `json:"sequences_to_win"`
	MinPlayers     int `json:"min_players"`
	MaxPlayers     int `json:"max_players"`
}

// Default returns the standard two-player configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Addr:           ":3001",
		SequencesToWin: domain.DefaultRules.SequencesToWin,
		MinPlayers:     domain.DefaultRules.MinPlayers,
		MaxPlayers:     domain.DefaultRules.MaxPlayers,
	}
}

// Load reads the configuration from the given path, applying defaults for
// any field left unset. An empty path returns the defaults.
func Load(path string) (*ServerConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var file ServerConfig
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if file.Addr != "" {
		cfg.Addr = file.Addr
	}
	if file.AllowedOrigins != nil {
		cfg.AllowedOrigins = file.AllowedOrigins
	}
	if file.SequencesToWin > 0 {
		cfg.SequencesToWin = file.SequencesToWin
	}
	if file.MinPlayers > 0 {
		cfg.MinPlayers = file.MinPlayers
	}
	if file.MaxPlayers > 0 {
		cfg.MaxPlayers = file.MaxPlayers
	}
	return cfg, nil
}

// Rules converts the configuration into the domain rules parameters.
func (c *ServerConfig) Rules() domain.RulesConfig {
	return domain.RulesConfig{
		SequencesToWin: c.SequencesToWin,
		MinPlayers:     c.MinPlayers,
		MaxPlayers:     c.MaxPlayers,
	}
}
