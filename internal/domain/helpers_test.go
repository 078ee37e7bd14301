package domain

import (
	"reflect"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck size = %d, want %d", len(deck), DeckSize)
	}

	seen := make(map[[2]uint8]bool)
	for _, c := range deck {
		key := [2]uint8{uint8(c.Rank()), uint8(c.Suit())}
		if seen[key] {
			t.Fatalf("duplicate rank/suit for card %d: %v", c, key)
		}
		seen[key] = true
		if c.Rank() > King {
			t.Fatalf("rank out of range: %d", c.Rank())
		}
		if c.Suit() > Spades {
			t.Fatalf("suit out of range: %d", c.Suit())
		}
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{card: NewCard(Ace, Spades), want: "Ace of Spades"},
		{card: NewCard(Eight, Hearts), want: "Eight of Hearts"},
		{card: NewCard(King, Clubs), want: "King of Clubs"},
		{card: Card(60), want: "Card(60)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.card.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMissingCards(t *testing.T) {
	deck := NewDeck()

	if got := MissingCards(deck[:20], deck[20:]); len(got) != 0 {
		t.Fatalf("MissingCards() = %v, want none", got)
	}

	got := MissingCards(deck[:3], deck[5:])
	want := []Card{3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MissingCards() = %v, want %v", got, want)
	}
}

func TestDuplicateCards(t *testing.T) {
	got := DuplicateCards([]Card{1, 2, 3}, []Card{3, 4}, []Card{3, 1})
	want := []Card{3, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DuplicateCards() = %v, want %v", got, want)
	}
}

func TestPlayerRotation(t *testing.T) {
	const cpus = 3
	tests := []struct {
		name  string
		from  PlayerID
		delta int
		want  PlayerID
	}{
		{name: "cpu to next cpu", from: CPU(0), delta: 1, want: CPU(1)},
		{name: "last cpu to human", from: CPU(2), delta: 1, want: Human},
		{name: "human wraps to first cpu", from: Human, delta: 1, want: CPU(0)},
		{name: "backwards from first cpu", from: CPU(0), delta: -1, want: Human},
		{name: "skip one", from: CPU(1), delta: 2, want: Human},
		{name: "same", from: CPU(1), delta: 0, want: CPU(1)},
		{name: "full circle", from: Human, delta: 4, want: Human},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Offset(tt.delta, cpus); got != tt.want {
				t.Fatalf("Offset(%d) from %v = %v, want %v", tt.delta, tt.from, got, tt.want)
			}
		})
	}

	if !CPU(2).IsCPU() || Human.IsCPU() {
		t.Fatalf("IsCPU misreports the player kind")
	}
	if got := Players(cpus); !reflect.DeepEqual(got, []PlayerID{CPU(0), CPU(1), CPU(2), Human}) {
		t.Fatalf("Players() = %v", got)
	}
}
