package rules

import (
	"errors"
	"testing"

	"bartog/internal/domain"
)

func TestBaseGraph(t *testing.T) {
	g := NewCanPlayGraph()
	tests := []struct {
		name string
		card domain.Card
		top  domain.Card
		want bool
	}{
		{name: "same suit", card: domain.NewCard(domain.Two, domain.Hearts), top: domain.NewCard(domain.King, domain.Hearts), want: true},
		{name: "same rank", card: domain.NewCard(domain.Two, domain.Hearts), top: domain.NewCard(domain.Two, domain.Clubs), want: true},
		{name: "neither", card: domain.NewCard(domain.Two, domain.Hearts), top: domain.NewCard(domain.King, domain.Clubs), want: false},
		{name: "out of range", card: domain.Card(70), top: domain.NewCard(domain.King, domain.Clubs), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsPlayableOn(tt.card, tt.top); got != tt.want {
				t.Fatalf("IsPlayableOn(%v, %v) = %t, want %t", tt.card, tt.top, got, tt.want)
			}
		})
	}
}

func TestIsPlayable(t *testing.T) {
	book := NewBook()
	eight := domain.NewCard(domain.Eight, domain.Spades)
	kingClubs := domain.NewCard(domain.King, domain.Clubs)
	twoHearts := domain.NewCard(domain.Two, domain.Hearts)

	tests := []struct {
		name  string
		card  domain.Card
		table Table
		want  bool
	}{
		{name: "empty pile accepts anything", card: twoHearts, table: Table{}, want: true},
		{name: "wild card always plays", card: eight, table: Table{Top: kingClubs, HasTop: true}, want: true},
		{name: "graph decides otherwise", card: twoHearts, table: Table{Top: kingClubs, HasTop: true}, want: false},
		{name: "wild top matches declared suit", card: twoHearts, table: Table{Top: eight, HasTop: true, WildSuit: domain.Hearts, HasWildSuit: true}, want: true},
		{name: "wild top rejects other suits", card: kingClubs, table: Table{Top: eight, HasTop: true, WildSuit: domain.Hearts, HasWildSuit: true}, want: false},
		{name: "wild top without declaration", card: kingClubs, table: Table{Top: eight, HasTop: true}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := book.IsPlayable(tt.card, tt.table); got != tt.want {
				t.Fatalf("IsPlayable() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestWildTopIgnoresRank(t *testing.T) {
	book := NewBook()
	top := domain.NewCard(domain.Eight, domain.Clubs)

	for _, declared := range domain.Suits {
		table := Table{Top: top, HasTop: true, WildSuit: declared, HasWildSuit: true}
		for card := domain.Card(0); card < domain.DeckSize; card++ {
			if book.IsWild(card) {
				continue
			}
			want := card.Suit() == declared
			if got := book.IsPlayable(card, table); got != want {
				t.Fatalf("IsPlayable(%v) with %v declared = %t, want %t", card, declared, got, want)
			}
		}
	}
}

func TestBookLocking(t *testing.T) {
	book := NewBook()
	book.Lock()

	if err := book.ApplyWildFlags(RankWild(domain.Queen)); !errors.Is(err, ErrLocked) {
		t.Fatalf("ApplyWildFlags while locked = %v, want ErrLocked", err)
	}
	if err := book.ApplyCanPlayChanges(RankChanges(domain.Two, domain.King, true)); !errors.Is(err, ErrLocked) {
		t.Fatalf("ApplyCanPlayChanges while locked = %v, want ErrLocked", err)
	}
	if err := book.ApplyWhenPlayed(0, []Change{CurrentPlayer(Skip)}); !errors.Is(err, ErrLocked) {
		t.Fatalf("ApplyWhenPlayed while locked = %v, want ErrLocked", err)
	}
	if !book.IsWild(domain.NewCard(domain.Eight, domain.Hearts)) {
		t.Fatalf("locked book lost its default wild cards")
	}

	book.Unlock()
	if err := book.ApplyWildFlags(RankWild(domain.Queen)); err != nil {
		t.Fatalf("ApplyWildFlags: %v", err)
	}
	if book.IsWild(domain.NewCard(domain.Eight, domain.Hearts)) || !book.IsWild(domain.NewCard(domain.Queen, domain.Hearts)) {
		t.Fatalf("wild set not replaced")
	}
}

func TestApplyCanPlayChanges(t *testing.T) {
	book := NewBook()
	two := domain.NewCard(domain.Two, domain.Hearts)
	king := domain.NewCard(domain.King, domain.Clubs)

	if err := book.ApplyCanPlayChanges(nil); !errors.Is(err, ErrNoChanges) {
		t.Fatalf("empty changes = %v, want ErrNoChanges", err)
	}
	if err := book.ApplyCanPlayChanges([]GraphChange{{Card: 99, Top: king, Allowed: true}}); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("invalid card = %v, want ErrInvalidCard", err)
	}

	if err := book.ApplyCanPlayChanges(RankChanges(domain.Two, domain.King, true)); err != nil {
		t.Fatalf("ApplyCanPlayChanges: %v", err)
	}
	if !book.IsPlayableOn(two, king) {
		t.Fatalf("two is still not playable on king")
	}

	if err := book.ApplyCanPlayChanges(SuitChanges(domain.Clubs, domain.Clubs, false)); err != nil {
		t.Fatalf("ApplyCanPlayChanges: %v", err)
	}
	if book.IsPlayableOn(domain.NewCard(domain.Three, domain.Clubs), king) {
		t.Fatalf("clubs still playable on clubs")
	}
}

func TestApplyWhenPlayed(t *testing.T) {
	book := NewBook()
	card := domain.NewCard(domain.Two, domain.Clubs)

	changes := []Change{CurrentPlayer(Skip)}
	if err := book.ApplyWhenPlayed(card, changes); err != nil {
		t.Fatalf("ApplyWhenPlayed: %v", err)
	}
	changes[0] = CurrentPlayer(Same)

	got := book.WhenPlayedChanges(card)
	if len(got) != 1 || got[0] != CurrentPlayer(Skip) {
		t.Fatalf("WhenPlayedChanges() = %v, want the stored skip", got)
	}
	if err := book.ApplyWhenPlayed(domain.Card(52), changes); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("invalid card = %v, want ErrInvalidCard", err)
	}
}

func TestRelativePlayerApply(t *testing.T) {
	tests := []struct {
		rel  RelativePlayer
		want domain.PlayerID
	}{
		{rel: Previous, want: domain.CPU(0)},
		{rel: Same, want: domain.CPU(1)},
		{rel: Next, want: domain.CPU(2)},
		{rel: Skip, want: domain.Human},
	}
	for _, tt := range tests {
		if got := tt.rel.Apply(domain.CPU(1), 3); got != tt.want {
			t.Fatalf("%d.Apply(CPU 2) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	if got := DescribeWild(domain.Human, RankWild(domain.Queen).With(domain.NewCard(domain.Two, domain.Hearts))); got != "You made the Two of Hearts and Queens wild." {
		t.Fatalf("DescribeWild() = %q", got)
	}
	if got := DescribeWild(domain.Human, 0); got != "You made nothing wild." {
		t.Fatalf("DescribeWild(empty) = %q", got)
	}
	card := domain.NewCard(domain.Two, domain.Clubs)
	if got := DescribeWhenPlayed(domain.Human, card, []Change{CurrentPlayer(Skip)}); got != "You made the Two of Clubs skip the next player." {
		t.Fatalf("DescribeWhenPlayed() = %q", got)
	}
	single := []GraphChange{{Card: card, Top: domain.NewCard(domain.King, domain.Hearts), Allowed: true}}
	if got := DescribeCanPlay(domain.Human, single); got != "You let the Two of Clubs be played on the King of Hearts." {
		t.Fatalf("DescribeCanPlay() = %q", got)
	}
	if k, ok := ParseKind("wild"); !ok || k != KindWild {
		t.Fatalf("ParseKind(wild) = %v, %t", k, ok)
	}
}
