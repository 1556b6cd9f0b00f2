package terrain

import "image/color"

const (
	displayMaterialMask = 0x07
	displayCutShift     = 3
	displayCutMask      = 0x18
	displayCutBands     = 4
)

var terrainPalette = buildTerrainPalette()

// Palette exposes the color palette used for rendering the seabed.
func (g *Grid) Palette() []color.RGBA {
	return terrainPalette
}

func encodeDisplayValue(cell Cell) uint8 {
	value := uint8(cell.Material) & displayMaterialMask
	band := int(cell.CutDepth / MaxCutFt * (displayCutBands - 0.001))
	if band < 0 {
		band = 0
	}
	if band > displayCutBands-1 {
		band = displayCutBands - 1
	}
	value |= (uint8(band) << displayCutShift) & displayCutMask
	return value
}

func buildTerrainPalette() []color.RGBA {
	palette := make([]color.RGBA, 32)
	for i := range palette {
		material := Material(i & displayMaterialMask)
		band := (i & displayCutMask) >> displayCutShift
		palette[i] = toRGBA(paletteColorFor(material, band))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// paletteColorFor blends the material color toward open water as the
// cut deepens, so excavated cells read as flooded.
func paletteColorFor(material Material, band int) color.NRGBA {
	water := color.NRGBA{R: 18, G: 52, B: 86, A: 255}
	var base color.NRGBA
	switch material {
	case MaterialSilt:
		base = color.NRGBA{R: 150, G: 124, B: 86, A: 255}
	case MaterialSand:
		base = color.NRGBA{R: 196, G: 176, B: 112, A: 255}
	case MaterialClay:
		base = color.NRGBA{R: 142, G: 88, B: 66, A: 255}
	case MaterialRock:
		base = color.NRGBA{R: 120, G: 120, B: 126, A: 255}
	default:
		return water
	}
	if band <= 0 {
		return base
	}
	weight := float64(band) / float64(displayCutBands-1)
	return blendColors(base, water, weight*0.85)
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*w + 0.5),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*w + 0.5),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*w + 0.5),
		A: uint8(float64(base.A)*inv + float64(overlay.A)*w + 0.5),
	}
}
