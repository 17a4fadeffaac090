// Package phase implements the sample grids and phase level images sent to a spatial light modulator.
//
// A [Grid] is the raw payload handed to the native display library, stored in the transposed
// (x-major) order the library expects. An [Image] is a regular [image/draw.Image] whose pixels
// are phase levels, suitable as a frame buffer for drawing with Go's [image] packages.
package phase
