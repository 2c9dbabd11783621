// Package config holds process-wide defaults for tessellation and
// rendering. Values are plain package-level settings; exporters read
// them once per call, so changing them between calls is safe while no
// export is in flight.
package config

import "github.com/rastvo/asmexport/utils"

var (
	linearTolerance  float32 = 1e-3
	angularTolerance float32 = 0.1

	imageWidth  = 800
	imageHeight = 600

	background = utils.ColorFloat{0.8, 0.8, 0.8, 1.0}

	debug bool
)

func LinearTolerance() float32 {
	return linearTolerance
}

func SetLinearTolerance(tol float32) {
	if tol > 0 {
		linearTolerance = tol
	}
}

func AngularTolerance() float32 {
	return angularTolerance
}

func SetAngularTolerance(tol float32) {
	if tol > 0 {
		angularTolerance = tol
	}
}

func ImageSize() (width, height int) {
	return imageWidth, imageHeight
}

func SetImageSize(width, height int) {
	if width > 0 {
		imageWidth = width
	}
	if height > 0 {
		imageHeight = height
	}
}

func Background() utils.ColorFloat {
	return background
}

func SetBackground(c utils.ColorFloat) {
	background = c
}

func Debug() bool {
	return debug
}

func SetDebug(v bool) {
	debug = v
}
