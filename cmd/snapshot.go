package cmd

import (
	"fmt"

	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/snapshot"
	"github.com/spf13/cobra"
)

var (
	snapshotOutput string
	snapshotYaw    float64
	snapshotPitch  float64
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <file>",
	Short: "Render the garment to a WebP or PNG image",
	Long:  "Render the garment without opening a window. The output format follows the extension of --output (.webp or .png).",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "garment.webp", "output image (.webp or .png)")
	snapshotCmd.Flags().IntVar(&flags.SnapshotSize, "size", 0, "image width and height in pixels")
	snapshotCmd.Flags().IntVar(&flags.Supersample, "supersample", 0, "render at this multiple of the size, then downsample")
	snapshotCmd.Flags().Float64Var(&snapshotYaw, "yaw", 0, "orbit around the vertical axis in degrees")
	snapshotCmd.Flags().Float64Var(&snapshotPitch, "pitch", 0, "orbit upwards in degrees")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m, err := garment.Load(args[0])
	if err != nil {
		return err
	}

	opts := snapshot.DefaultOptions()
	if cfg.SnapshotSize > 0 {
		opts.Width, opts.Height = cfg.SnapshotSize, cfg.SnapshotSize
	}
	if cfg.Supersample > 0 {
		opts.Supersample = cfg.Supersample
	}
	opts.Yaw, opts.Pitch = snapshotYaw, snapshotPitch

	img, err := snapshot.Render(garment.Build(m), opts)
	if err != nil {
		return fmt.Errorf("failed to render snapshot: %w", err)
	}

	if err := snapshot.Write(snapshotOutput, img); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d)\n", snapshotOutput, opts.Width, opts.Height)
	return nil
}
