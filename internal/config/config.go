// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "Balloon Pump"

	AssetsDir              = "assets"
	ReadyThreshold         = 5 // images needed before play starts
	LoadingIndicatorX      = 30
	LoadingIndicatorY      = 30
	LoadingIndicatorRadius = 8
	LoadingTextBody        = "Loading..."

	// Pump geometry relative to the bottom-right corner of the canvas.
	PumpOffset    = 250.0
	PumpSize      = 160.0
	HandleOffsetX = 10.0
	HandleOffsetY = -40.0
	HandleWidth   = 140.0
	HandleHeight  = 100.0
	NozzleOffsetX = -85.0
	NozzleOffsetY = -25.0
	NozzleSize    = 150.0
	AnchorOffsetX = 38.0
	AnchorOffsetY = 13.0

	BalloonSize       = 110.0
	BalloonSeatOffset = 15.0 // how far the balloon sinks into the nozzle

	StringOffsetX = 10.0
	StringOffsetY = 25.0
	StringWidth   = 20.0
	StringHeight  = 80.0
	LetterSize    = 50.0

	HandleHitMargin    = 20.0
	HandlePressedDepth = 40
	HandleReturnSpeed  = 2

	InitialScale = 0.1
	InflateStep  = 0.15
	FullScale    = 1.0

	// Launch velocity: speedX in [-LaunchSpeedX/2, LaunchSpeedX/2),
	// speedY in (-(LaunchSpeedYMin+LaunchSpeedYRange), -LaunchSpeedYMin].
	LaunchSpeedX      = 3.0
	LaunchSpeedYMin   = 1.0
	LaunchSpeedYRange = 1.5

	PopLifeTime   = 20 // frames
	PopCenterX    = 50.0
	PopCenterY    = 60.0
	PopPetals     = 10
	PopPetalTipX  = 15.0
	PopPetalTipY  = 70.0
	PopPetalInner = 40.0
	PopLabel      = "POP!"
	PopFontSize   = 30

	SampleRate    = 44100
	PopSoundMs    = 120
	PopSoundLevel = 0.4
)

var (
	BackgroundColor = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	LoadingColor    = color.RGBA{0x20, 0x20, 0x30, 0xff}
	LoadingDotColor = color.RGBA{0xe8, 0x10, 0x80, 0xff}
	PopTextColor    = color.RGBA{255, 255, 255, 255}
)
