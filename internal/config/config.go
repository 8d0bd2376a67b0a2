package config

const (
	WindowWidth  = 1280
	WindowHeight = 800

	VisualRingSize = 8192

	// Analyzer parameters
	MinBins      = 16
	MaxBins      = 1024
	FFTSmoothing = 0.8
	MinDecibels  = -100
	MaxDecibels  = -30

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonMargin = 2

	// Grid parameters
	MainRadius = 120
	GridMargin = 10
	StartX     = 100
	StartY     = 100
	XStep      = 50
	YStep      = -20

	// Pattern parameters
	ZigzagEvery        = 9
	DefaultInnerRadius = 15
	DotRings           = 15
	DotSize            = 5
	DotSpacing         = 1.2
	ZigzagSegments     = 120
	ZigzagStepDegrees  = 3
	ZigzagOuterRatio   = 0.9
	ZigzagInnerRatio   = 2.0 / 3.0
	ZigzagStrokeWidth  = 3
	InnerCircleCount   = 9
	InnerCircleStep    = 5
	InnerStrokeWidth   = 6

	// Random color ranges (HSB, hue in degrees)
	MinHue        = 90
	MaxHue        = 270
	MinSaturation = 50
	MaxSaturation = 100
	MinBrightness = 80
	MaxBrightness = 100
)
