package core

// Color is a semantic foreground colour for a screen cell. The terminal
// host maps each value to an ANSI 256 colour.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSky
	ColorFarLayer  // distant mountains
	ColorNearLayer // hills closer to the camera
	ColorEagle
	ColorEagleHit // eagle while flickering
	ColorCloud
	ColorBalloon
	ColorZeppelin
	ColorCoin
	ColorHUD
	ColorWarning
)
