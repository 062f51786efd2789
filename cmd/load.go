package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/litecraft/engine"
	"github.com/spaghettifunk/litecraft/engine/renderer"
)

var loadTimeout time.Duration

// loadCmd runs the engine until the main menu is shown
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load every scene up to the main menu and report timings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := renderer.ParseRendererType(settings.Engine.Renderer)
		if err != nil {
			return err
		}
		backend, err := renderer.New(kind, renderer.Options{MaxTextureSize: settings.Textures.MaxSize})
		if err != nil {
			return err
		}

		e, err := engine.New(settings, backend)
		if err != nil {
			return err
		}
		defer e.Shutdown()

		// capture sigterm and other system calls here
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		defer stop()
		if loadTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, loadTimeout)
			defer cancel()
		}

		if err := e.Run(ctx); err != nil {
			return err
		}

		rm := e.Resources()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "scene:     %s\n", e.Director().Current())
		fmt.Fprintf(out, "time:      %.3fs\n", rm.Time())
		fmt.Fprintf(out, "frames:    %d\n", e.Metrics().Frames())
		fmt.Fprintf(out, "frame avg: %.3fms\n", e.Metrics().FrameTime())
		fmt.Fprintf(out, "textures:  %d\n", rm.Textures().Count())
		fmt.Fprintf(out, "shaders:   %d\n", rm.Shaders().Count())
		return nil
	},
}

func init() {
	loadCmd.Flags().DurationVar(&loadTimeout, "timeout", 30*time.Second, "give up after this long, 0 waits forever")
}
