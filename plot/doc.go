// Package plot draws complex numbers on an Argand plane.
//
// Drawing goes through Target, a minimal clipped pixel sink. RGB565Target
// adapts a raw framebuffer; Display adapts any Target to drivers.Displayer so
// tinyfont can render labels onto it.
//
// Plane owns the viewport (center and pixels per unit) and maps between
// cplx.Complex values and pixel coordinates. The real axis runs left to right
// and the imaginary axis bottom to top.
package plot
