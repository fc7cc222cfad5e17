package main

import (
	"flag"
	"fmt"
	"mnk/experiments"
	"mnk/experiments/metrics"
	"mnk/game"
	"mnk/searcher/agent"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	choice := flag.String("game", "t3", "Game to play: t3 (tic-tac-toe) or c4 (connect four)")
	numGames := flag.Int("n", 1, "Number of times to do battle")
	p1 := flag.String("p1", "dummy", "Player 1's engine: dummy, randimaxer, winimaxer or winibetamaxer")
	p2 := flag.String("p2", "winibetamaxer", "Player 2's engine")
	p1Plies := flag.Int("p1-plies", 0, "How deep player 1 searches (0 for the engine's default)")
	p2Plies := flag.Int("p2-plies", 0, "How deep player 2 searches (0 for the engine's default)")
	piece := flag.String("piece", "X", "Player 1's piece")
	seed := flag.Uint64("seed", 0, "Seed for the random engines (0 for the clock)")
	quiet := flag.Bool("quiet", false, "Just show stats at the end")
	out := flag.String("out", "", "Directory to store experiment results in")
	sweep := flag.Int("sweep", 0, "Instead of a battle, sweep player 2's engine from 1 to this many plies against player 1")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := run(*choice, *numGames, *p1, *p2, *p1Plies, *p2Plies, *piece, *seed, *quiet, *out, *sweep); err != nil {
		log.Fatal().Err(err).Msg("battle failed")
	}
}

func run(choiceAbbrev string, numGames int, p1, p2 string, p1Plies, p2Plies int, pieceName string, seed uint64, quiet bool, out string, sweep int) error {
	choice, err := game.ParseChoiceAbbrev(choiceAbbrev)
	if err != nil {
		return err
	}

	if sweep > 0 {
		kind, err := agent.ParseKind(p2)
		if err != nil {
			return err
		}
		stats, err := experiments.RunPliesExperiment(experiments.PliesConfig{
			Choice:    choice,
			Engine:    kind,
			MaxPlies:  sweep,
			Baseline:  metrics.AgentConfig{ID: 0, Engine: p1, Plies: p1Plies},
			NumGames:  numGames,
			Seed:      seed,
			OutputDir: out,
		})
		for i, s := range stats {
			first := "baseline"
			if i%2 == 1 {
				first = kind.String()
			}
			fmt.Printf("=== %s at %d plies, %s moving first ===\n", kind, i/2+1, first)
			for _, line := range s.Summary() {
				fmt.Println(line)
			}
		}
		return err
	}

	piece, err := game.ParsePiece(pieceName)
	if err != nil {
		return err
	}
	_, err = experiments.RunBattle(experiments.Config{
		Choice:   choice,
		NumGames: numGames,
		Agents: [2]metrics.AgentConfig{
			{ID: 1, Engine: p1, Plies: p1Plies},
			{ID: 2, Engine: p2, Plies: p2Plies},
		},
		Player1Piece: piece,
		Seed:         seed,
		Quiet:        quiet,
		Out:          os.Stdout,
		OutputDir:    out,
	})
	return err
}
