// Package hyperbolic implements the geometry kernel of the Poincaré disk editor.
//
// Points live in the open unit disk (Poincaré model). Isometries are expressed
// as 4x4 Lorentz matrices acting on homogeneous hyperboloid coordinates
// (x, y, z, w) with x²+y²-z² = -1, z > 0 and w = 1, where they compose by plain
// matrix multiplication. The Klein model is used only to pick a stable third
// point when fitting a geodesic through two points.
//
// None of the functions here validate that their inputs are strictly inside
// the disk. Callers clamp first; a point on or outside the unit circle yields
// non-finite results.
package hyperbolic
