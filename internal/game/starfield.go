package game

import (
	"math/rand"

	"github.com/neonwave/invaders/internal/core"
)

var starLayerColors = []core.Color{
	core.ColorGray,
	core.ColorBlue,
	core.ColorBrightBlue,
}

// Star is a single point in the scrolling background.
type Star struct {
	X, Y float64
	Size int
}

// StarLayer is one parallax depth. Deeper layers scroll slower and dimmer.
type StarLayer struct {
	Stars []Star
	Speed float64
	Color core.Color
}

// StarField is the multi-layer scrolling background.
type StarField struct {
	w, h   float64
	Layers []StarLayer
}

// NewStarField builds the parallax layers. Layer i holds 80*(i+1) stars
// scrolling at 20*(i+1) units per second.
func NewStarField(w, h float64, layers int, rng *rand.Rand) *StarField {
	sf := &StarField{w: w, h: h}
	for i := 0; i < layers; i++ {
		layer := StarLayer{
			Speed: 20 * float64(i+1),
			Color: starLayerColors[i%len(starLayerColors)],
		}
		count := 80 * (i + 1)
		for j := 0; j < count; j++ {
			layer.Stars = append(layer.Stars, Star{
				X:    rng.Float64() * w,
				Y:    rng.Float64() * h,
				Size: 1 + i,
			})
		}
		sf.Layers = append(sf.Layers, layer)
	}
	return sf
}

// Update scrolls the stars downward, wrapping each star back to the top
// at a fresh horizontal position once it leaves the bottom edge.
func (sf *StarField) Update(dt float64, rng *rand.Rand) {
	for li := range sf.Layers {
		layer := &sf.Layers[li]
		for si := range layer.Stars {
			s := &layer.Stars[si]
			s.Y += layer.Speed * dt
			if s.Y > sf.h {
				s.Y -= sf.h
				s.X = rng.Float64() * sf.w
			}
		}
	}
}
