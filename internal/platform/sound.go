package platform

// SFX is a sound effect token.
type SFX uint8

const (
	CardSlide SFX = iota
)

func (s SFX) String() string {
	switch s {
	case CardSlide:
		return "card_slide"
	default:
		return "unknown"
	}
}

// Speaker collects the sound requests made during a frame.
type Speaker struct {
	requests []SFX
}

// RequestSFX queues a sound to be played after the frame.
func (s *Speaker) RequestSFX(sfx SFX) {
	s.requests = append(s.requests, sfx)
}

// Drain returns the queued requests and empties the queue.
func (s *Speaker) Drain() []SFX {
	out := s.requests
	s.requests = nil
	return out
}
