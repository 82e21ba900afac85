package ui

import "image/color"

var (
	colBackground = color.RGBA{245, 240, 225, 255}
	colHUDPanel   = color.RGBA{20, 20, 30, 180}
	colHUDText    = color.RGBA{240, 240, 240, 255}
	colHUDTarget  = color.RGBA{255, 217, 0, 255}
	colCorrect    = color.RGBA{80, 220, 110, 255}
	colIncorrect  = color.RGBA{240, 80, 80, 255}
)
