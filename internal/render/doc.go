// Package render projects panel frames from model space into drawable
// primitives at a fixed pixel width.
//
// The transform is a single uniform scale with no rotation or skew. Every
// front end (terminal canvas, SVG, PNG, raylib window) draws the same
// [Scene], so they only differ in how a primitive hits the screen.
package render
