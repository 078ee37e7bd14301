package app

import (
	"fmt"
	"math/rand/v2"

	"github.com/heroiclabs/nakama-common/runtime"

	"bartog/internal/anim"
	"bartog/internal/bot"
	"bartog/internal/domain"
	"bartog/internal/eventlog"
	"bartog/internal/ports"
	"bartog/internal/rules"
)

// Options tunes a new game.
type Options struct {
	HandSize       int
	LogCapacity    int
	LogWindowLines int
	BotLevel       bot.Level
}

// DefaultOptions matches the default game configuration.
func DefaultOptions() Options {
	return Options{
		HandSize:       5,
		LogCapacity:    eventlog.DefaultCapacity,
		LogWindowLines: 14,
		BotLevel:       bot.LevelRandom,
	}
}

// Game is the whole state of a Bartog table. It is mutated only by Update
// and Reset, once per frame, from a single goroutine.
type Game struct {
	Deck     domain.Hand
	Discard  domain.Hand
	Hand     domain.Hand
	CPUHands [CPUCount]domain.Hand

	// HandIndex is the human's cursor into Hand.
	HandIndex uint8
	Current   domain.PlayerID

	Animations []anim.CardAnimation
	Rules      *rules.Book

	// WildSuit is the suit declared for the wild card on top of the discard
	// pile. It is only meaningful when HasWildSuit is set.
	WildSuit    domain.Suit
	HasWildSuit bool

	Status Status
	Choice Choice

	Log        *eventlog.Log
	LogHeight  uint8
	LogHeading LogHeading

	Winners []domain.PlayerID

	seed        [16]byte
	rng         *rand.Rand
	agents      [CPUCount]bot.Agent
	chooser     ports.Chooser
	logger      runtime.Logger
	opts        Options
	events      []Event
	pendingSuit *domain.Suit
}

// NewGame deals a fresh table from seed. The same seed and the same inputs
// always produce the same match.
func NewGame(seed [16]byte, chooser ports.Chooser, logger runtime.Logger, opts Options) (*Game, error) {
	if chooser == nil {
		return nil, fmt.Errorf("chooser is required")
	}
	def := DefaultOptions()
	if opts.HandSize <= 0 {
		opts.HandSize = def.HandSize
	}
	if opts.HandSize*domain.SeatCount >= domain.DeckSize {
		return nil, fmt.Errorf("hand size %d leaves no deck", opts.HandSize)
	}
	if opts.LogWindowLines <= 0 {
		opts.LogWindowLines = def.LogWindowLines
	}
	if opts.BotLevel == "" {
		opts.BotLevel = def.BotLevel
	}

	rng := domain.NewRand(seed)

	g := &Game{
		Discard:    domain.NewHand(domain.Stack(domain.DiscardX, domain.DiscardY)),
		Hand:       domain.NewHand(domain.LTR(domain.TopAndBottomHandEdges, domain.PlayerHandHeight)),
		Current:    domain.Human,
		Animations: make([]anim.CardAnimation, 0, domain.DeckSize),
		Rules:      rules.NewBook(),
		Status:     RuleSelection,
		Log:        eventlog.New(opts.LogCapacity),
		seed:       seed,
		rng:        rng,
		chooser:    chooser,
		logger:     logger,
		opts:       opts,
	}
	g.CPUHands = [CPUCount]domain.Hand{
		domain.NewHand(domain.TTB(domain.LeftAndRightHandEdges, domain.LeftCPUHandX)),
		domain.NewHand(domain.LTR(domain.TopAndBottomHandEdges, domain.MiddleCPUHandHeight)),
		domain.NewHand(domain.TTB(domain.LeftAndRightHandEdges, domain.RightCPUHandX)),
	}

	for i := range g.agents {
		brain, err := bot.NewBrain(opts.BotLevel, rng)
		if err != nil {
			return nil, fmt.Errorf("failed to create cpu %d: %w", i+1, err)
		}
		g.agents[i] = bot.Agent{Player: domain.CPU(i), Strategy: brain}
	}

	g.Deck = domain.NewShuffledDeck(rng)
	g.deal()

	logger.Info("Game: new table, seed %x, %d cards each, bots %s", seed, opts.HandSize, opts.BotLevel)
	return g, nil
}

// Seed returns the seed the table was created from.
func (g *Game) Seed() [16]byte { return g.seed }

// deal gives every player HandSize cards from the deck, human first.
func (g *Game) deal() {
	for i := 0; i < g.opts.HandSize; i++ {
		g.Hand.DrawFrom(&g.Deck)
	}
	for p := range g.CPUHands {
		for i := 0; i < g.opts.HandSize; i++ {
			g.CPUHands[p].DrawFrom(&g.Deck)
		}
	}
}

// HandOf returns the hand belonging to player. Player identifiers are only
// built from known seats, so an unknown one is a programming error.
func (g *Game) HandOf(player domain.PlayerID) *domain.Hand {
	if player.IsHuman() {
		return &g.Hand
	}
	i := player.CPUIndex()
	if i < 0 || i >= CPUCount {
		panic(fmt.Sprintf("app: no hand for player %v", player))
	}
	return &g.CPUHands[i]
}

// Players lists every player in turn order.
func (g *Game) Players() []domain.PlayerID {
	return domain.Players(CPUCount)
}

func (g *Game) table() rules.Table {
	top, ok := g.Discard.Last()
	return rules.Table{
		Top:         top,
		HasTop:      ok,
		WildSuit:    g.WildSuit,
		HasWildSuit: g.HasWildSuit,
	}
}

// CanPlay reports whether card may be played onto the discard pile now.
func (g *Game) CanPlay(card domain.Card) bool {
	return g.Rules.IsPlayable(card, g.table())
}

func (g *Game) seat(player domain.PlayerID) bot.Seat {
	return bot.Seat{
		Player:   player,
		Hand:     g.HandOf(player).Cards(),
		Playable: g.CanPlay,
		IsWild:   g.Rules.IsWild,
	}
}

// allCards lists the card groups the table accounts for, animations included.
func (g *Game) allCards() [][]domain.Card {
	groups := [][]domain.Card{g.Deck.Cards(), g.Discard.Cards(), g.Hand.Cards()}
	for i := range g.CPUHands {
		groups = append(groups, g.CPUHands[i].Cards())
	}
	flying := make([]domain.Card, 0, len(g.Animations))
	for _, a := range g.Animations {
		flying = append(flying, a.Card.Card)
	}
	return append(groups, flying)
}

// MissingCards returns every card the table has lost track of. It is empty
// whenever the engine is correct.
func (g *Game) MissingCards() []domain.Card {
	return domain.MissingCards(g.allCards()...)
}

// checkConservation verifies that each of the 52 cards is somewhere exactly once.
func (g *Game) checkConservation() {
	groups := g.allCards()
	missing := domain.MissingCards(groups...)
	dupes := domain.DuplicateCards(groups...)
	if len(missing) == 0 && len(dupes) == 0 {
		return
	}
	invariantViolation(g.logger, fmt.Sprintf("card conservation broken: missing %v, duplicated %v", missing, dupes))
}
