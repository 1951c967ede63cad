package game

// Window defaults.
const (
	WindowTitle = "Beyond The Sea"

	// Longest frame step handed to the simulation, in seconds.
	MaxFrameDelta = 0.1
)

// Texture units.
const (
	atlasUnit = 0
	postUnit  = 1
	fontUnit  = 2
)

// Post-processing shader modes.
const (
	postCopy int32 = iota
	postPixelate
	postBarrel
	postBlur
)
