package domain

import "fmt"

// DeckSize is the number of distinct cards in play.
const DeckSize = 52

// Card is a standard playing card encoded as an integer in [0, DeckSize).
// Rank is card/4 and suit is card%4.
type Card uint8

// Suit is one of the four French suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in enumeration order.
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// Rank is the face value of a card, Ace low.
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// RankCount is the number of distinct ranks.
const RankCount = 13

var rankNames = [RankCount]string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

var suitNames = [4]string{"Clubs", "Diamonds", "Hearts", "Spades"}

// NewCard builds the card with the given rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card(uint8(rank)*4 + uint8(suit))
}

// Rank returns the card's rank.
func (c Card) Rank() Rank { return Rank(c / 4) }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return Suit(c % 4) }

// Valid reports whether c is inside the deck range.
func (c Card) Valid() bool { return c < DeckSize }

func (c Card) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Card(%d)", uint8(c))
	}
	return c.Rank().String() + " of " + c.Suit().String()
}

func (r Rank) String() string {
	if int(r) >= RankCount {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// Plural returns the rank name as used in sentences like "Eights are wild".
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.String() + "s"
}

func (s Suit) String() string {
	if int(s) >= len(suitNames) {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// PositionedCard is a card detached from any hand, at screen coordinates.
type PositionedCard struct {
	Card Card
	X    uint8
	Y    uint8
}
