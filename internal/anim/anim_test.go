package anim

import (
	"math/rand/v2"
	"testing"

	"bartog/internal/domain"
)

func randomAnimation(rng *rand.Rand) CardAnimation {
	return CardAnimation{
		Card: domain.PositionedCard{
			Card: domain.Card(rng.IntN(domain.DeckSize)),
			X:    uint8(rng.IntN(256)),
			Y:    uint8(rng.IntN(256)),
		},
		X:      uint8(rng.IntN(256)),
		Y:      uint8(rng.IntN(256)),
		XRate:  uint8(1 + rng.IntN(254)),
		YRate:  uint8(1 + rng.IntN(254)),
		Action: Discard(),
	}
}

func TestApproachDoesNotGetStuck(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 5000; i++ {
		a := randomAnimation(rng)
		if a.IsComplete() {
			continue
		}

		after := a
		after.Approach()
		if after == a {
			t.Fatalf("Approach() left %+v unchanged", a)
		}
	}
}

func TestApproachReachesTarget(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 5000; i++ {
		a := randomAnimation(rng)
		if a.IsComplete() {
			continue
		}

		bound := int(max(absDiff(a.Card.X, a.X)/a.XRate, absDiff(a.Card.Y, a.Y)/a.YRate)) + 1
		steps := 0
		for !a.IsComplete() {
			before := a.Card
			a.Approach()
			steps++

			if overshoots(before.X, a.Card.X, a.X) || overshoots(before.Y, a.Card.Y, a.Y) {
				t.Fatalf("Approach() overshot: %+v -> %+v", before, a.Card)
			}
			if steps > bound {
				t.Fatalf("animation did not finish within %d steps: %+v", bound, a)
			}
		}
	}
}

func overshoots(before, after, target uint8) bool {
	if before <= target {
		return after > target || after < before
	}
	return after < target || after > before
}

func TestNewRates(t *testing.T) {
	a := New(domain.PositionedCard{X: 0, Y: 100}, 160, 100, Discard())
	if a.XRate != 10 {
		t.Fatalf("XRate = %d, want 10", a.XRate)
	}
	if a.YRate != 1 {
		t.Fatalf("YRate = %d, want minimum rate 1", a.YRate)
	}

	short := New(domain.PositionedCard{X: 10, Y: 10}, 12, 5, Discard())
	if short.XRate != 1 || short.YRate != 1 {
		t.Fatalf("short move rates = (%d, %d), want (1, 1)", short.XRate, short.YRate)
	}
}

func TestSweep(t *testing.T) {
	arriving := New(domain.PositionedCard{Card: 1, X: 9, Y: 10}, 10, 10, Discard())
	travelling := New(domain.PositionedCard{Card: 2, X: 0, Y: 0}, 100, 100, ToHand(domain.Human))
	waiting := New(domain.PositionedCard{Card: 3, X: 20, Y: 21}, 20, 20, Wild(domain.Human))

	var completed []domain.Card
	pending := Sweep([]CardAnimation{arriving, travelling, waiting}, func(a CardAnimation, last Position) bool {
		completed = append(completed, a.Card.Card)
		return a.Action.Kind != SelectWild
	})

	if len(completed) != 2 || completed[0] != 1 || completed[1] != 3 {
		t.Fatalf("completed = %v, want [1 3]", completed)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d animations, want 2", len(pending))
	}
	if pending[0].Card.Card != 2 || pending[0].Card.X == 0 {
		t.Fatalf("travelling animation was not advanced: %+v", pending[0])
	}
	if requeued := pending[1]; requeued.Card.Card != 3 || requeued.Card.X != 20 || requeued.Card.Y != 21 {
		t.Fatalf("requeued animation not restored to its last position: %+v", requeued.Card)
	}

	again := Sweep(pending[1:], func(CardAnimation, Position) bool { return true })
	if len(again) != 0 {
		t.Fatalf("requeued animation did not complete on the next sweep")
	}
}
