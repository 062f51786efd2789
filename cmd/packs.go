package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/litecraft/engine/config"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

// packsCmd lists the resource packs found in the pack folder
var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List the available resource packs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := resources.NewResolver(settings.Resources.PackDir, settings.Resources.ResourceDir, settings.Resources.Packs)
		available, err := r.AvailablePacks()
		if err != nil {
			return err
		}

		enabled := make(map[string]int, len(settings.Resources.Packs))
		for i, name := range settings.Resources.Packs {
			enabled[name] = i + 1
		}
		out := cmd.OutOrStdout()
		for _, name := range available {
			if priority, ok := enabled[name]; ok {
				fmt.Fprintf(out, "%s\tenabled (priority %d)\n", name, priority)
				delete(enabled, name)
			} else {
				fmt.Fprintf(out, "%s\n", name)
			}
		}
		for _, name := range settings.Resources.Packs {
			if _, ok := enabled[name]; ok {
				fmt.Fprintf(out, "%s\tenabled but missing\n", name)
			}
		}
		return nil
	},
}

// packsEnableCmd stores the enabled packs in the settings file
var packsEnableCmd = &cobra.Command{
	Use:   "enable [pack...]",
	Short: "Enable resource packs, highest priority first. No argument disables every pack",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings.Resources.Packs = append([]string{}, args...)
		if err := config.Save(configPath, settings); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "enabled resource packs: %v\n", settings.Resources.Packs)
		return nil
	},
}

func init() {
	packsCmd.AddCommand(packsEnableCmd)
}
