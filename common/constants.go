package common

const (
	DefaultCanvasWidth  = 960
	DefaultCanvasHeight = 640
	DefaultTileSize     = 32
	MinTileSize         = 8

	// TilesetDisplayScale is how much larger the tileset panel draws its texture.
	TilesetDisplayScale = 2
)
