package cmd

import (
	"fmt"

	"github.com/philipparndt/gogarment/pkg/analysis"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/spf13/cobra"
)

// longestEdgeCount is how many edges info lists
const longestEdgeCount = 5

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Display the measurements and derived garment geometry",
	Long:  "Show the measurement record, the size of every garment part, annotation lines and mesh statistics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	m, err := garment.Load(filename)
	if err != nil {
		return err
	}

	g := garment.Build(m)
	result := analysis.AnalyzeGeometry(g)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Garment Information")
	fmt.Fprintln(out, "===================")
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Measurements:")
	for _, f := range m.Fields() {
		fmt.Fprintf(out, "  %s: %.1f cm\n", f.Label, f.Value)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Parts:")
	for _, p := range result.Parts {
		fmt.Fprintf(out, "  %-13s %3d triangles, %s\n", p.Name+":", p.TriangleCount, analysis.FormatMeasurement(p.FrontArea, "sq cm"))
	}
	fmt.Fprintf(out, "  Fabric Area: %s\n\n", analysis.FormatMeasurement(result.FabricArea, "sq cm"))

	fmt.Fprintln(out, "Annotation Lines:")
	for _, l := range result.Lines {
		fmt.Fprintf(out, "  %-9s %s -> %s (%.1f cm)\n", l.Kind.String()+":", analysis.FormatVector(l.Start), analysis.FormatVector(l.End), l.Centimeters)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
	fmt.Fprintf(out, "  Size: %.1f x %.1f cm\n\n", analysis.ToCentimeters(result.Dimensions.X), analysis.ToCentimeters(result.Dimensions.Y))

	fmt.Fprintln(out, "Mesh:")
	fmt.Fprintf(out, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n", result.SurfaceArea)
	fmt.Fprintf(out, "  Edge Lengths: min %.6f, max %.6f, avg %.6f units\n", result.MinEdgeLength, result.MaxEdgeLength, result.AvgEdgeLength)

	fmt.Fprintf(out, "\nLongest Edges (top %d):\n", longestEdgeCount)
	for i, e := range analysis.FindLongestEdges(result, longestEdgeCount) {
		fmt.Fprintf(out, "  %d. %s\n", i+1, analysis.FormatEdge(e))
	}
	return nil
}
