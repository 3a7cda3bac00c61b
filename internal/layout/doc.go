// Package layout implements a pure-Go flex layout engine for pixel UIs.
//
// It supports row/column directions, justify and align modes, padding, margin,
// gap, min/max constraints, fixed/percent/fill/auto dimensions, and absolute
// positioning. Types are re-exported through the root bento package for public
// consumption.
//
// The main entry point is [Calculate], which takes a [Layoutable] tree and
// computes absolute [Rect] positions for each node. Intrinsic sizes are
// expected to be annotated on the tree before Calculate runs (the root
// package's measure pass does this, consulting its font registry for text).
package layout
