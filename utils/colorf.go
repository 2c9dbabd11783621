package utils

// ColorFloat is an RGBA color with components in [0, 1].
type ColorFloat [4]float32

func NewColorFloat(r, g, b, a float32) ColorFloat {
	return ColorFloat{r, g, b, a}
}

func NewColorFloatSlice(c []float32) ColorFloat {
	if len(c) > 3 {
		return ColorFloat{c[0], c[1], c[2], c[3]}
	}
	return ColorFloat{c[0], c[1], c[2], 1.0}
}

// RGBA implements image/color.Color.
func (c ColorFloat) RGBA() (r, g, b, a uint32) {
	const mf = float32(256*256 - 1)
	r = uint32(c[0] * mf)
	g = uint32(c[1] * mf)
	b = uint32(c[2] * mf)
	a = uint32(c[3] * mf)
	return
}

func (c ColorFloat) RGB() [3]float32 {
	return [3]float32{c[0], c[1], c[2]}
}

func (c ColorFloat) Opacity() float32 {
	return c[3]
}
