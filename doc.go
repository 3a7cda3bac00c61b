// Package bento is a declarative immediate-mode UI library for pixel
// surfaces.
//
// Users import this single package for the complete public API: app
// lifecycle, element construction, layout values, input state, and
// rendering surfaces. The element tree is rebuilt from scratch every
// frame; layout, hit testing, and drawing all derive from that frame's
// tree.
package bento
