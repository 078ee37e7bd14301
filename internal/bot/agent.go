package bot

import (
	"bartog/internal/domain"
)

// Agent represents an autonomous CPU player.
type Agent struct {
	Player   domain.PlayerID
	Strategy Brain
}

// Play asks the agent to calculate its move. A failing strategy or a move
// that does not fit the hand falls back to drawing.
func (a *Agent) Play(seat Seat) (Move, error) {
	seat.Player = a.Player

	move, err := a.Strategy.CalculateMove(seat)
	if err != nil {
		return Move{Draw: true}, err
	}
	if !move.Draw && int(move.Index) >= len(seat.Hand) {
		return Move{Draw: true}, nil
	}
	return move, nil
}
