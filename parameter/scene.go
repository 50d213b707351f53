package parameter

// Scene Dimensions
// Scene size is derived from the viewport at generation time, never stored in config as absolutes
const (
	// SceneWidthMult scales viewport width to scene width
	SceneWidthMult = 4

	// SceneHeightMult scales viewport height to scene height
	SceneHeightMult = 3
)

// Scene Content
const (
	// TileWidth is the checker tile width in cells
	TileWidth = 8

	// TileHeight is the checker tile height in cells
	TileHeight = 4

	// TileRuneA and TileRuneB alternate across the checker pattern
	TileRuneA = '·'
	TileRuneB = '▒'

	// LandmarkRune marks the fixed reference bar
	LandmarkRune = '#'

	// LandmarkRow is the scene row carrying the reference bar
	LandmarkRow = 10

	// LandmarkColStart and LandmarkColEnd bound the bar, half-open [start, end)
	LandmarkColStart = 5
	LandmarkColEnd   = 15
)
