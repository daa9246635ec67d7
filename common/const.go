package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TileSize is the default tile edge in pixels when a level does not
	// specify its own.
	TileSize = 16
)
