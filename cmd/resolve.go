package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/litecraft/engine/resources"
)

var resolveOutput string

// resolveCmd prints where an identifier is loaded from
var resolveCmd = &cobra.Command{
	Use:   "resolve <namespace:kind:[path/]name>",
	Short: "Show which resource pack or file serves a resource",
	Example: `  litecraft resolve litecraft:texture:logo
  litecraft resolve minecraft:texture:entity/creeper --out creeper.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resources.ParseIdentifier(args[0])
		if err != nil {
			return err
		}
		r := resources.NewResolver(settings.Resources.PackDir, settings.Resources.ResourceDir, settings.Resources.Packs)
		data, source, err := r.Locate(id)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d bytes)\n", id, source, len(data))
		if resolveOutput != "" {
			return os.WriteFile(resolveOutput, data, 0o644)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveOutput, "out", "o", "", "write the resource content to this file")
}
