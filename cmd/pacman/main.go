// pacman is a minimal arcade Pac-Man for the terminal, a desktop window,
// or remote play over SSH.
//
// Usage:
//
//	pacman play              - Play in the terminal
//	pacman window            - Play in a 600x400 desktop window
//	pacman serve             - Start SSH server for remote play
//	pacman sim               - Run a headless simulation and print the result
//	pacman config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Custom config YAML
//	--fps <rate>      - Override tick rate (default from config: 10)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--enemies <n>     - Override enemy batch size
//	--redirect <sec>  - Override enemy redirect interval
//	--spawn <mode>    - Spawn range: clamped or edge_inclusive
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagEnemies  int
	flagRedirect int
	flagSpawn    string
	flagVerbose  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man - eat the wandering squares",
	Long: `A minimal Pac-Man on a 30x20 grid. Steer with the arrow keys and eat
the enemies wandering the board; a fresh batch appears once every enemy
is gone.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation
  config   - Print the effective configuration

Examples:
  pacman play
  pacman window --fps 15
  pacman serve --ssh :2222
  pacman sim --ticks 1000 --seed 42
  pacman config --enemies 6`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagEnemies, "enemies", 0, "Enemies per batch (0 = use config)")
	rootCmd.PersistentFlags().IntVar(&flagRedirect, "redirect", 0, "Enemy redirect interval in seconds (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagSpawn, "spawn", "", "Spawn range: clamped or edge_inclusive")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies command-line overrides.
func loadConfig() (config.PacmanConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.PacmanConfig{}, err
	}

	config.Overrides{
		FPS:             flagFPS,
		EnemyCount:      flagEnemies,
		RedirectSeconds: flagRedirect,
		Spawn:           config.SpawnMode(flagSpawn),
	}.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return config.PacmanConfig{}, err
	}
	return cfg, nil
}

// loadSettings loads the config and converts it to game settings,
// exiting on error.
func loadSettings() (config.PacmanConfig, *pacman.Settings) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings, err := pacman.SettingsFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, &settings
}

// resolveSeed returns the --seed flag, or a time-based seed when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger creates a timestamped logger; --verbose enables debug output.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
