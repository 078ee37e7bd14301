package domain

import "strconv"

const (
	// CPUSeats is the number of computer opponents at a table.
	CPUSeats = 3
	// SeatCount is every hand dealt at a table, the human's included.
	SeatCount = CPUSeats + 1
)

// PlayerID identifies either one of the CPU hands or the human player.
type PlayerID struct {
	human bool
	index uint8
}

// Human is the single human player.
var Human = PlayerID{human: true}

// CPU returns the identifier of the CPU hand at index.
func CPU(index int) PlayerID {
	if index < 0 || index > 0xFF {
		panic("domain: cpu index out of range: " + strconv.Itoa(index))
	}
	return PlayerID{index: uint8(index)}
}

// IsCPU reports whether the player is computer controlled.
func (p PlayerID) IsCPU() bool { return !p.human }

// IsHuman reports whether the player is the human.
func (p PlayerID) IsHuman() bool { return p.human }

// CPUIndex returns the CPU hand index, or -1 for the human.
func (p PlayerID) CPUIndex() int {
	if p.human {
		return -1
	}
	return int(p.index)
}

// Next returns the player who moves after p: CPU 0 through CPU n-1, then the
// human, then CPU 0 again.
func (p PlayerID) Next(cpuCount int) PlayerID {
	return p.Offset(1, cpuCount)
}

// Offset rotates p by delta seats in turn order.
func (p PlayerID) Offset(delta, cpuCount int) PlayerID {
	seats := cpuCount + 1
	ordinal := cpuCount
	if !p.human {
		ordinal = int(p.index)
	}

	ordinal = ((ordinal+delta)%seats + seats) % seats
	if ordinal == cpuCount {
		return Human
	}
	return CPU(ordinal)
}

func (p PlayerID) String() string {
	if p.human {
		return "You"
	}
	return "CPU " + strconv.Itoa(int(p.index)+1)
}

// Players lists every player in turn order.
func Players(cpuCount int) []PlayerID {
	out := make([]PlayerID, 0, cpuCount+1)
	for i := 0; i < cpuCount; i++ {
		out = append(out, CPU(i))
	}
	return append(out, Human)
}
