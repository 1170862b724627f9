package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/hyperdisk/pkg/geometry"
	"github.com/philipparndt/hyperdisk/pkg/hyperbolic"
	"github.com/spf13/cobra"
)

var geodesicFlags struct {
	from, to, through pointValue
}

var geodesicCmd = &cobra.Command{
	Use:   "geodesic --from x,y --to x,y",
	Short: "Describe the hyperbolic line through two points",
	Long: `Fit the geodesic through two disk points and print its representation,
its ideal endpoints, the hyperbolic distance and midpoint of the two points.
With --through, also print the two limiting parallels through that point.`,
	Args: cobra.NoArgs,
	Run:  runGeodesic,
}

func init() {
	geodesicCmd.Flags().Var(&geodesicFlags.from, "from", "first point")
	geodesicCmd.Flags().Var(&geodesicFlags.to, "to", "second point")
	geodesicCmd.Flags().Var(&geodesicFlags.through, "through", "point for the limiting parallels")
	rootCmd.AddCommand(geodesicCmd)
}

func runGeodesic(cmd *cobra.Command, args []string) {
	from, err := geodesicFlags.from.get("from")
	if err == nil {
		var to geometry.Vector2
		if to, err = geodesicFlags.to.get("to"); err == nil {
			err = writeGeodesic(cmd.OutOrStdout(), from, to, geodesicFlags.through.optional())
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeGeodesic prints the geodesic through p0 and p1
func writeGeodesic(w io.Writer, p0, p1 geometry.Vector2, through *geometry.Vector2) error {
	g, err := hyperbolic.GeodesicThrough(p0, p1)
	if err != nil {
		return fmt.Errorf("failed to fit geodesic: %w", err)
	}

	fmt.Fprintln(w, "Geodesic")
	fmt.Fprintln(w, "========")
	describeGeodesic(w, g)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Segment:")
	fmt.Fprintf(w, "  From: %s\n", formatPoint(p0))
	fmt.Fprintf(w, "  To: %s\n", formatPoint(p1))
	fmt.Fprintf(w, "  Hyperbolic distance: %.6f\n", hyperbolic.Distance(p0, p1))
	fmt.Fprintf(w, "  Midpoint: %s\n", formatPoint(hyperbolic.Midpoint(p0, p1)))

	if through == nil {
		return nil
	}
	first, second, err := hyperbolic.LimitingParallels(g, *through)
	if err != nil {
		return fmt.Errorf("failed to construct parallels: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Limiting parallels through %s:\n", formatPoint(*through))
	fmt.Fprintf(w, "  1: %s\n", first)
	fmt.Fprintf(w, "  2: %s\n", second)
	return nil
}

// describeGeodesic prints the representation and ideal endpoints of g
func describeGeodesic(w io.Writer, g hyperbolic.Geodesic) {
	fmt.Fprintf(w, "Kind: %s\n", g.Kind())
	if g.IsDiametral() {
		fmt.Fprintf(w, "  Direction: %s\n", formatPoint(g.Direction()))
		fmt.Fprintf(w, "  Normal: %s\n", formatPoint(g.Normal()))
	} else {
		fmt.Fprintf(w, "  Center: %s\n", formatPoint(g.Center()))
		fmt.Fprintf(w, "  Radius: %.6f\n", g.Radius())
		fmt.Fprintf(w, "  Closest to origin: %s\n", formatPoint(g.ClosestPointToOrigin()))
	}
	a, b := g.Endpoints()
	fmt.Fprintf(w, "  Ideal endpoints: %s, %s\n", formatPoint(a), formatPoint(b))
}
