package seating

import "image/color"

var seatingPalette = []color.RGBA{
	Floor:    {R: 40, G: 36, B: 32, A: 255},
	Empty:    {R: 70, G: 150, B: 90, A: 255},
	Occupied: {R: 210, G: 80, B: 60, A: 255},
}

// Palette maps each Cell value to the color used to draw it.
func (s *Sim) Palette() []color.RGBA {
	return seatingPalette
}
