// Package geom implements the two proportion kernels behind ratiolab.
//
// Both kernels are pure functions of a step count. Every call rebuilds the
// whole sequence from the base rectangle, so equal inputs always produce
// bit-identical output:
//
//   - [Subdivide]: halves a 1:√2 sheet along its long side, A4 → A5 → A6 ...
//   - [Whirl]: removes squares from a 1:φ rectangle, rotating the cut
//     left → top → right → bottom, and emits one quarter [Arc] per square.
//
// # Coordinates
//
// Model space is y-down with the origin at the top-left corner of the base
// rectangle, the same convention SVG uses. Angles follow the same frame, so
// an increasing angle turns clockwise on screen.
//
// # Example
//
//	for _, s := range geom.Subdivide(geom.RootTwoBase, 3) {
//		fmt.Println(s.Level, s.Rect.W, s.Rect.H)
//	}
package geom
