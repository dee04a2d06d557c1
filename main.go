package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rails/engine"
	"rails/game"
	"rails/planner"
)

type config struct {
	Players int    `env:"PLAYERS" envDefault:"4"`
	Games   int    `env:"GAMES" envDefault:"10"`
	Seed    uint64 `env:"SEED" envDefault:"0"`
	Verbose bool   `env:"VERBOSE" envDefault:"false"`
}

var seatColors = []string{"red", "blue", "green", "yellow", "black"}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("parse config")
	}
	if cfg.Players < 2 || cfg.Players > len(seatColors) {
		log.Fatal().Int("players", cfg.Players).Msg("PLAYERS must be 2-5")
	}
	if !cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	fmt.Printf("Running %d games with %d automated players...\n", cfg.Games, cfg.Players)
	wins := make(map[string]int)
	for i := 0; i < cfg.Games; i++ {
		scores, err := runGame(cfg, i)
		if err != nil {
			log.Fatal().Err(err).Int("game", i+1).Msg("game failed")
		}
		winner := scores[0]
		wins[winner.Name]++
		fmt.Printf("Game %d: %s wins with %d points (longest route %d)\n",
			i+1, winner.Name, winner.Total, winner.LongestRoute)
	}
	fmt.Println("Wins by seat:")
	for _, name := range seatNames(cfg.Players) {
		fmt.Printf("  %s: %d\n", name, wins[name])
	}
}

func runGame(cfg config, index int) ([]game.ScoreRow, error) {
	seats := make([]engine.Seat, cfg.Players)
	for i := range seats {
		seats[i] = engine.Seat{
			Name:      seatNames(cfg.Players)[i],
			Color:     seatColors[i],
			Automated: true,
		}
	}

	opts := []engine.Option{}
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Seed+uint64(index)))
	}
	e, err := engine.New(seats, opts...)
	if err != nil {
		return nil, err
	}

	agents := make(map[int]engine.Agent, cfg.Players)
	for i := 0; i < cfg.Players; i++ {
		agents[i] = planner.New(i)
	}
	return e.Run(agents)
}

func seatNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Player %d", i+1)
	}
	return names
}
