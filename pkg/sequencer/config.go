package sequencer

// Default layout constants.
const (
	DefaultFramePixelWidth float32 = 10
	DefaultLegendWidth     float32 = 200
	DefaultItemHeight      float32 = 20
)

// Config holds the fixed scalars of a layout pass.
type Config struct {
	// FramePixelWidth is the horizontal distance between two consecutive
	// frames, in pixels.
	FramePixelWidth float32
	// LegendWidth is the width of the item label column on the left.
	LegendWidth float32
	// ItemHeight is the height of the header row and of every item row.
	ItemHeight float32
}

// DefaultConfig returns the stock layout: 10px per frame, a 200px legend
// and 20px rows.
func DefaultConfig() Config {
	return Config{
		FramePixelWidth: DefaultFramePixelWidth,
		LegendWidth:     DefaultLegendWidth,
		ItemHeight:      DefaultItemHeight,
	}
}
