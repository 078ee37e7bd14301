package domain

// Screen and sprite geometry shared by the engine and presentation layers.
const (
	ScreenWidth  = 128
	ScreenHeight = 128

	CardWidth  uint8 = 20
	CardHeight uint8 = 30

	SpriteSize uint8 = 8
	FontSize   uint8 = 8
)

// Table layout.
const (
	DeckX    uint8 = 40
	DeckY    uint8 = 49
	DiscardX uint8 = DeckX + CardWidth + 8
	DiscardY uint8 = DeckY

	PlayerHandHeight    uint8 = ScreenHeight - CardHeight - 4
	MiddleCPUHandHeight uint8 = 4
	LeftCPUHandX        uint8 = 2
	RightCPUHandX       uint8 = ScreenWidth - CardWidth - 2
)

var (
	TopAndBottomHandEdges = [2]uint8{CardWidth + 4, ScreenWidth - CardWidth - 4}
	LeftAndRightHandEdges = [2]uint8{CardHeight + 8, ScreenHeight - CardHeight - 8}
)

func satAdd(a, b uint8) uint8 {
	if s := uint16(a) + uint16(b); s <= 0xFF {
		return uint8(s)
	}
	return 0xFF
}

func satSub(a, b uint8) uint8 {
	if a < b {
		return 0
	}
	return a - b
}

func satMul(a, b uint8) uint8 {
	if p := uint16(a) * uint16(b); p <= 0xFF {
		return uint8(p)
	}
	return 0xFF
}
