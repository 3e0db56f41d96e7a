package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-wars/internal/config"
	"github.com/vovakirdan/space-wars/internal/games/spacewars"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate configuration",
	Long: `Inspect the effective Space Wars configuration.

Config files are searched in this order:
  --config <path>
  ~/.arcade/configs/spacewars.yaml
  ./configs/spacewars.yaml
  built-in defaults

Examples:
  spacewars config dump
  spacewars config dump --defaults
  spacewars config dump --difficulty hard > ~/.arcade/configs/spacewars.yaml
  spacewars config validate ./my-spacewars.yaml`,
}

var flagDumpDefaults bool

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the effective configuration as YAML.

With --defaults the built-in file is printed as shipped, comments included,
ignoring --config and --difficulty.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if flagDumpDefaults {
			_, err := os.Stdout.Write(config.DefaultYAML())
			return err
		}
		if err := configureGame(flagDifficulty); err != nil {
			return err
		}
		data, err := config.Marshal(spacewars.ActiveConfig())
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a configuration file",
	Long: `Load a configuration file (or the normal search path when no file is
given), apply --difficulty and report every invalid field.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := flagConfig
		if len(args) == 1 {
			path = args[0]
		}
		if err := spacewars.Configure(path, flagDifficulty); err != nil {
			if errors.Is(err, config.ErrInvalid) {
				return fmt.Errorf("configuration is invalid:\n%w", err)
			}
			return err
		}
		fmt.Println("Configuration OK")
		return nil
	},
}

func init() {
	configDumpCmd.Flags().BoolVar(&flagDumpDefaults, "defaults", false, "Print the built-in defaults file")
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configValidateCmd)
}
