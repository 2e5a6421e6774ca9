package server

import (
	"fmt"

	"github.com/joeshaw/envdecode"

	fortytwo "github.com/moonollie/fortytwo"
)

// Config is the server configuration, read from the environment
type Config struct {
	Port            int  `env:"PORT,default=8000"`
	MarksToWin      int  `env:"FORTYTWO_MARKS_TO_WIN,default=7"`
	ForceDealerBid  bool `env:"FORTYTWO_FORCE_DEALER_BID,default=false"`
	DoubleMarksOn42 bool `env:"FORTYTWO_DOUBLE_MARKS_ON_42,default=false"`
}

// LoadConfig reads the server configuration from the environment
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr returns the listen address
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GameConfig converts the server configuration into house rules
func (c Config) GameConfig() fortytwo.GameConfig {
	policy := fortytwo.AllPassRedeal
	if c.ForceDealerBid {
		policy = fortytwo.AllPassForceDealer
	}
	return fortytwo.GameConfig{
		MarksToWin:      c.MarksToWin,
		AllPassPolicy:   policy,
		DoubleMarksOn42: c.DoubleMarksOn42,
	}
}
