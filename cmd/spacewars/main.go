// spacewars is a terminal arcade game: steer a ship and dodge falling rocks.
//
// Usage:
//
//	spacewars                 - Play with the default renderer
//	spacewars play            - Play a session
//	spacewars menu            - Pick a difficulty, then play
//	spacewars simulate        - Run a headless session with the autopilot
//	spacewars config dump     - Print the effective configuration
//	spacewars config validate - Check a configuration file
//	spacewars list            - List available games
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacewars",
	Short: "Space Wars - dodge falling rocks in your terminal",
	Long: `Space Wars is a terminal arcade game. Steer your ship left and right
to dodge the rocks falling from the top of the screen. Every rock that
leaves the bottom edge scores a point; rocks fall faster as you score.

Available commands:
  play      - Play a session (default)
  menu      - Pick a difficulty, then play
  simulate  - Headless run driven by the autopilot
  config    - Inspect and validate configuration
  list      - Show available games

Examples:
  spacewars
  spacewars play --renderer tcell
  spacewars menu
  spacewars simulate --seed 42 --ticks 5000
  spacewars config dump --difficulty hard`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
