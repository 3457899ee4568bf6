// Package geom holds the 2D value types the collision engine is built on:
// points, polygons, axis-aligned rectangles and affine node transforms.
// It has no dependencies on ebitengine, donburi or resolv.
//
// Coordinates follow screen convention: X grows right, Y grows down.
package geom
