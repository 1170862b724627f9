package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/hyperdisk/pkg/geometry"
	"github.com/philipparndt/hyperdisk/pkg/hyperbolic"
	"github.com/spf13/cobra"
)

var mirrorFlags struct {
	from, to, point pointValue
}

var mirrorCmd = &cobra.Command{
	Use:   "mirror --from x,y --to x,y",
	Short: "Print the reflection across the line through two points",
	Long: `Fit the geodesic through two disk points and print the hyperboloid matrix of
the reflection across it. With --point, also print the reflected point.`,
	Args: cobra.NoArgs,
	Run:  runMirror,
}

func init() {
	mirrorCmd.Flags().Var(&mirrorFlags.from, "from", "first point of the mirror")
	mirrorCmd.Flags().Var(&mirrorFlags.to, "to", "second point of the mirror")
	mirrorCmd.Flags().Var(&mirrorFlags.point, "point", "point to reflect")
	rootCmd.AddCommand(mirrorCmd)
}

func runMirror(cmd *cobra.Command, args []string) {
	from, err := mirrorFlags.from.get("from")
	if err == nil {
		var to geometry.Vector2
		if to, err = mirrorFlags.to.get("to"); err == nil {
			err = writeMirror(cmd.OutOrStdout(), from, to, mirrorFlags.point.optional())
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeMirror prints the reflection across the geodesic through p0 and p1
func writeMirror(w io.Writer, p0, p1 geometry.Vector2, point *geometry.Vector2) error {
	g, err := hyperbolic.GeodesicThrough(p0, p1)
	if err != nil {
		return fmt.Errorf("failed to fit mirror: %w", err)
	}
	m := g.MirrorMatrix()

	fmt.Fprintln(w, "Mirror")
	fmt.Fprintln(w, "======")
	describeGeodesic(w, g)
	fmt.Fprintln(w)
	writeMatrix(w, m)

	if point != nil {
		image := hyperbolic.TransformPoint(m, *point)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Reflection of %s: %s\n", formatPoint(*point), formatPoint(image))
		fmt.Fprintf(w, "  Distance to mirror image: %.6f\n", hyperbolic.Distance(*point, image))
	}
	return nil
}

// writeMatrix prints a transform row by row
func writeMatrix(w io.Writer, m hyperbolic.Matrix) {
	fmt.Fprintln(w, "Matrix:")
	rows := m.Rows()
	for i := 0; i < 4; i++ {
		fmt.Fprintf(w, "  [%10.6f %10.6f %10.6f %10.6f]\n", rows[i*4], rows[i*4+1], rows[i*4+2], rows[i*4+3])
	}
	if m.IsOrientationReversing() {
		fmt.Fprintln(w, "  Orientation: reversing")
	} else {
		fmt.Fprintln(w, "  Orientation: preserving")
	}
}
