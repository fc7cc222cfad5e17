package experiments

import (
	"bytes"
	"encoding/csv"
	"mnk/experiments/metrics"
	"mnk/game"
	"mnk/searcher/agent"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, pattern string) [][]string {
	t.Helper()
	paths, err := filepath.Glob(pattern)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunBattle(t *testing.T) {
	t.Run("search never loses to random", func(t *testing.T) {
		var out bytes.Buffer
		stats, err := RunBattle(Config{
			Choice:   game.TicTacToe,
			NumGames: 5,
			Agents: [2]metrics.AgentConfig{
				{ID: 1, Engine: "dummy"},
				{ID: 2, Engine: "winibetamaxer", Plies: 8},
			},
			Seed: 99,
			Out:  &out,
		})
		require.NoError(t, err)
		require.Equal(t, 5, stats.Games)
		require.Zero(t, stats.Counts[game.Player1Victory])
		require.Equal(t, 5, stats.Counts[game.Player2Victory]+stats.Counts[game.Draw])

		text := out.String()
		require.Contains(t, text, "Game 1/5 result:")
		require.Contains(t, text, "Game 5/5 result:")
		require.Contains(t, text, "=== Stats ===")
		require.Contains(t, text, "1-0       : 0 (0.0 %)")
	})

	t.Run("quiet battles only print stats", func(t *testing.T) {
		var out bytes.Buffer
		_, err := RunBattle(Config{
			Choice:   game.ConnectFour,
			NumGames: 2,
			Agents:   [2]metrics.AgentConfig{{ID: 1, Engine: "dummy"}, {ID: 1, Engine: "dummy"}},
			Seed:     1,
			Quiet:    true,
			Out:      &out,
		})
		require.NoError(t, err)
		require.NotContains(t, out.String(), "Game 1/2")
		require.Contains(t, out.String(), "=== Stats ===")
	})

	t.Run("repeats for the same seed", func(t *testing.T) {
		cfg := Config{
			Choice:   game.ConnectFour,
			NumGames: 3,
			Agents:   [2]metrics.AgentConfig{{ID: 1, Engine: "dummy"}, {ID: 2, Engine: "randimaxer"}},
			Seed:     2024,
			Quiet:    true,
		}
		first, err := RunBattle(cfg)
		require.NoError(t, err)
		second, err := RunBattle(cfg)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("stores experiment results", func(t *testing.T) {
		dir := t.TempDir()
		stats, err := RunBattle(Config{
			Choice:       game.TicTacToe,
			NumGames:     3,
			Agents:       [2]metrics.AgentConfig{{ID: 1, Engine: "dummy"}, {ID: 2, Engine: "winimaxer", Plies: 2}},
			Player1Piece: game.O,
			Seed:         5,
			Quiet:        true,
			OutputDir:    dir,
		})
		require.NoError(t, err)

		configs := readCSV(t, filepath.Join(dir, "battle", "*", "agent_configs.csv"))
		require.Equal(t, []string{"2", "winimaxer", "2"}, configs[2])

		games := readCSV(t, filepath.Join(dir, "battle", "*", "game_records.csv"))
		require.Len(t, games, 1+stats.Games)
		require.Equal(t, "O", games[1][3])

		moves := readCSV(t, filepath.Join(dir, "battle", "*", "move_records.csv"))
		require.Greater(t, len(moves), 1+3*4)

		setups, err := filepath.Glob(filepath.Join(dir, "battle", "*", "setup.json"))
		require.NoError(t, err)
		require.Len(t, setups, 1)
	})

	t.Run("rejects unknown engines", func(t *testing.T) {
		_, err := RunBattle(Config{
			Choice: game.TicTacToe,
			Agents: [2]metrics.AgentConfig{{ID: 1, Engine: "dummy"}, {ID: 2, Engine: "stockfish"}},
			Quiet:  true,
		})
		require.Error(t, err)
	})

	t.Run("rejects undefined games", func(t *testing.T) {
		_, err := RunBattle(Config{
			Agents: [2]metrics.AgentConfig{{ID: 1, Engine: "dummy"}, {ID: 2, Engine: "dummy"}},
		})
		require.Error(t, err)
	})
}

func TestRunPliesExperiment(t *testing.T) {
	dir := t.TempDir()
	stats, err := RunPliesExperiment(PliesConfig{
		Choice:    game.TicTacToe,
		Engine:    agent.Winibetamaxer,
		MaxPlies:  2,
		NumGames:  2,
		Seed:      8,
		OutputDir: dir,
	})
	require.NoError(t, err)
	require.Len(t, stats, 4)
	for _, s := range stats {
		require.Equal(t, 2, s.Games)
	}

	configs := readCSV(t, filepath.Join(dir, "plies_winibetamaxer_tictactoe", "*", "agent_configs.csv"))
	require.Len(t, configs, 1+3)
	games := readCSV(t, filepath.Join(dir, "plies_winibetamaxer_tictactoe", "*", "game_records.csv"))
	require.Len(t, games, 1+8)
	require.Equal(t, "8", games[8][0])
}

func TestStats(t *testing.T) {
	s := NewStats()
	for _, r := range []game.Result{game.Player1Victory, game.Player1Victory, game.Draw, game.Player2Victory} {
		s.Add(r)
	}
	require.Equal(t, 4, s.Games)
	require.InDelta(t, 0.5, s.Rate(game.Player1Victory), 1e-9)
	require.InDelta(t, 0.25, s.Rate(game.Draw), 1e-9)
	require.Equal(t, []string{
		"1-0       : 2 (50.0 %)",
		"0-1       : 1 (25.0 %)",
		"1/2-1/2   : 1 (25.0 %)",
	}, s.Summary())

	var empty Stats
	require.Zero(t, empty.Rate(game.Draw))
}
