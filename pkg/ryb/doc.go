// Package ryb implements the red-yellow-blue subtractive color model.
//
// The ryb package represents colors the way a painter mixes them: red, yellow
// and blue are the primaries, and combining two primaries yields the secondary
// a painter would expect. Mixing blue and yellow paint gives green, something
// the additive RGB model cannot express directly. This makes the package a
// good fit for generating palettes, gradients and recolorings that should
// look "mixed" rather than "added".
//
// Colors are generic over their component type. Float components carry values
// in the unit range, while unsigned integer components are scaled by their
// maximum value, so a Color[uint8] behaves like the familiar 8-bit channel
// layout. Conversions to and from the additive RGB model follow the usual
// whiteness/blackness extraction approach: the achromatic part of a color is
// removed, the chromatic remainder is projected onto the RYB axes and rescaled,
// and the achromatic part is added back.
//
// The package interoperates with the standard library image/color machinery.
// Color implements color.Color, and Model converts any color.Color into its
// RYB representation, so RYB colors can be used anywhere the image packages
// expect one.
package ryb
