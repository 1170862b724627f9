package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/hyperdisk/pkg/geometry"
	"github.com/philipparndt/hyperdisk/pkg/hyperbolic"
	"github.com/spf13/cobra"
)

var translateFlags struct {
	by, point pointValue
}

var translateCmd = &cobra.Command{
	Use:   "translate --by x,y --point x,y",
	Short: "Apply the hyperbolic translation carrying the origin to a point",
	Args:  cobra.NoArgs,
	Run:   runTranslate,
}

func init() {
	translateCmd.Flags().Var(&translateFlags.by, "by", "image of the origin")
	translateCmd.Flags().Var(&translateFlags.point, "point", "point to translate")
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) {
	by, err := translateFlags.by.get("by")
	if err == nil {
		var point geometry.Vector2
		if point, err = translateFlags.point.get("point"); err == nil {
			writeTranslation(cmd.OutOrStdout(), by, point)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeTranslation prints the translation carrying the origin to by and the
// image of point under it
func writeTranslation(w io.Writer, by, point geometry.Vector2) {
	m := hyperbolic.Translation(by.X, by.Y)
	image := hyperbolic.TransformPoint(m, point)

	fmt.Fprintln(w, "Translation")
	fmt.Fprintln(w, "===========")
	fmt.Fprintf(w, "Origin to: %s\n", formatPoint(by))
	fmt.Fprintf(w, "  Translation length: %.6f\n", hyperbolic.Distance(geometry.Vector2{}, by))
	fmt.Fprintln(w)
	writeMatrix(w, m)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Image of %s: %s\n", formatPoint(point), formatPoint(image))
}
