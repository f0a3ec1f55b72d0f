// config.go
//
// Process configuration, parsed from the environment after godotenv has
// loaded any .env file. Defaults match local development.

package main

import "github.com/caarlos0/env/v11"

type config struct {
	Port      string `env:"PORT" envDefault:"5175"`
	DBPath    string `env:"DB_PATH" envDefault:"./data/app.db"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	UnitPrice string `env:"UNIT_PRICE" envDefault:"5.00"` // BRL per game
}

func loadConfig() (config, error) {
	var c config
	if err := env.Parse(&c); err != nil {
		return config{}, err
	}
	return c, nil
}
