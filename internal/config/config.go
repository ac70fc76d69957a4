// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Spin Sticks"

	DiscRadius   = 20.0
	StickLength  = 100.0
	StickWidth   = 4.0
	SpawnOffsetY = 50.0 // platform height above the bottom edge

	RotationSpeed      = 0.02 // radians per frame
	StickSpeed         = 10.0 // pixels per frame, straight up
	CaptureTolerance   = 5.0  // absolute, added to DiscRadius
	CollisionTolerance = 0.1  // radians
	StartLevel         = 1

	HUDMarginX   = 20
	HUDFirstLine = 40
	HUDLineStep  = 30
	HUDFontSize  = 24

	BannerFontSize  = 48
	BannerOffsetX   = 120
	FinalScoreDX    = 70
	FinalScoreDY    = 40
	TitleFontSize   = 36
	TerminalFPS     = 60
	MaxTerminalFPS  = 240
	TerminalSoundHz = 44100
)

var (
	BackgroundColor  = color.RGBA{255, 255, 255, 255}
	DiscColor        = color.RGBA{0x33, 0x33, 0x33, 255}
	StickColor       = color.RGBA{0x33, 0x33, 0x33, 255}
	TextColor        = color.RGBA{0, 0, 0, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 178} // rgba(0,0,0,0.7), premultiplied
	OverlayTextColor = color.RGBA{255, 255, 255, 255}
	PausedTextColor  = color.RGBA{70, 130, 180, 255}
)
