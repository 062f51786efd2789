package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/litecraft/engine/config"
	"github.com/spaghettifunk/litecraft/engine/core"
)

var (
	configPath string
	settings   *config.Settings
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "litecraft",
	Short: "Litecraft asset pipeline",
	Long: `Litecraft resolves game assets from resource packs and the loose resource
tree, decodes them on a worker pool and uploads them to the renderer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		if err := core.SetLogLevel(s.Log.Level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", s.Log.Level, err)
		}
		settings = s
		return nil
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		core.LogError("command failed: %s", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "settings file, generated when missing")
	RootCmd.AddCommand(resolveCmd, packsCmd, loadCmd)
}
