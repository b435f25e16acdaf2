package cmd

import (
	"github.com/philipparndt/gogarment/internal/app"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Open an interactive 3D view of the garment",
	Long:  "Open a window showing the garment. The file is watched and the view rebuilds when the measurements change.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return app.Run(args[0], cfg)
	},
}

func init() {
	viewCmd.Flags().IntVar(&flags.Width, "width", 0, "window width")
	viewCmd.Flags().IntVar(&flags.Height, "height", 0, "window height")
	viewCmd.Flags().IntVar(&flags.FPS, "fps", 0, "target frames per second")
	viewCmd.Flags().Float64Var(&flags.Damping, "damping", 0, "orbit damping factor (0-1]")
	rootCmd.AddCommand(viewCmd)
}
