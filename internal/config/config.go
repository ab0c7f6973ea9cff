// Package config loads tournament rosters from HCL files, so a
// recurring lineup of humans and bots does not have to be retyped at
// every launch.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// TournamentConfig represents the complete tournament configuration.
type TournamentConfig struct {
	Settings TournamentSettings `hcl:"tournament,block"`
	Humans   []HumanConfig      `hcl:"human,block"`
	Bots     []BotConfig        `hcl:"bot,block"`
}

// TournamentSettings contains tournament-level configuration.
type TournamentSettings struct {
	Seed     int64  `hcl:"seed,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// HumanConfig enrolls an interactive player.
type HumanConfig struct {
	Name string `hcl:"name,label"`
}

// BotConfig enrolls a computer player with a named strategy.
type BotConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
}

// DefaultConfig returns the configuration used when no file exists: a
// single human against three mixed bots.
func DefaultConfig() *TournamentConfig {
	return &TournamentConfig{
		Settings: TournamentSettings{LogLevel: "info"},
		Humans:   []HumanConfig{{Name: "Player"}},
		Bots: []BotConfig{
			{Name: "Bot 1", Strategy: "random"},
			{Name: "Bot 2", Strategy: "biased"},
			{Name: "Bot 3", Strategy: "adaptive"},
		},
	}
}

// Load reads tournament configuration from an HCL file, falling back
// to DefaultConfig when the file does not exist.
func Load(filename string) (*TournamentConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config TournamentConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Settings.LogLevel == "" {
		config.Settings.LogLevel = "info"
	}
	for i := range config.Bots {
		if config.Bots[i].Strategy == "" {
			config.Bots[i].Strategy = "random"
		}
	}

	return &config, nil
}

// Validate checks the roster for playability.
func (c *TournamentConfig) Validate() error {
	if len(c.Humans)+len(c.Bots) < 2 {
		return fmt.Errorf("at least 2 players must be configured, got %d", len(c.Humans)+len(c.Bots))
	}

	seen := make(map[string]bool)
	for _, h := range c.Humans {
		if h.Name == "" {
			return fmt.Errorf("human players need a name")
		}
		if seen[h.Name] {
			return fmt.Errorf("duplicate player name %q", h.Name)
		}
		seen[h.Name] = true
	}

	validStrategies := map[string]bool{
		"random":   true,
		"biased":   true,
		"adaptive": true,
		"cyclic":   true,
	}
	for _, b := range c.Bots {
		if b.Name == "" {
			return fmt.Errorf("bots need a name")
		}
		if seen[b.Name] {
			return fmt.Errorf("duplicate player name %q", b.Name)
		}
		seen[b.Name] = true
		if !validStrategies[b.Strategy] {
			return fmt.Errorf("bot %s: invalid strategy %s", b.Name, b.Strategy)
		}
	}

	return nil
}
