package nakama

import (
	"encoding/json"
	"fmt"
	"strings"

	"bartog/internal/app"
	"bartog/internal/domain"
	"bartog/internal/platform"
	"bartog/internal/rules"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type inputMessage struct {
	Press   []string `json:"press"`
	Release []string `json:"release"`
}

type ruleMessage struct {
	Kind string `json:"kind"`
}

type graphChangeMessage struct {
	Card    int  `json:"card"`
	Top     int  `json:"top"`
	Allowed bool `json:"allowed"`
}

// canPlayMessage edits the graph card by card, or a whole suit or rank at once.
type canPlayMessage struct {
	Changes []graphChangeMessage `json:"changes"`
	Suit    *struct {
		Suit    string `json:"suit"`
		Top     string `json:"top"`
		Allowed bool   `json:"allowed"`
	} `json:"suit"`
	Rank *struct {
		Rank    int  `json:"rank"`
		Top     int  `json:"top"`
		Allowed bool `json:"allowed"`
	} `json:"rank"`
}

type wildMessage struct {
	Cards []int `json:"cards"`
	Ranks []int `json:"ranks"`
}

type whenPlayedMessage struct {
	Card    int      `json:"card"`
	Changes []string `json:"changes"`
}

type suitMessage struct {
	Suit string `json:"suit"`
}

func decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}

func parseCard(v int) (domain.Card, error) {
	if v < 0 || v >= domain.DeckSize {
		return 0, fmt.Errorf("card %d out of range", v)
	}
	return domain.Card(v), nil
}

func parseRank(v int) (domain.Rank, error) {
	if v < 0 || v >= domain.RankCount {
		return 0, fmt.Errorf("rank %d out of range", v)
	}
	return domain.Rank(v), nil
}

func parseSuit(name string) (domain.Suit, error) {
	for _, s := range domain.Suits {
		if strings.EqualFold(s.String(), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", name)
}

func parseRelative(name string) (rules.RelativePlayer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "previous":
		return rules.Previous, nil
	case "same":
		return rules.Same, nil
	case "next":
		return rules.Next, nil
	case "skip":
		return rules.Skip, nil
	default:
		return 0, fmt.Errorf("unknown turn change %q", name)
	}
}

func parseInput(data []byte) (press, release platform.Button, err error) {
	var msg inputMessage
	if err := decode(data, &msg); err != nil {
		return 0, 0, err
	}
	for _, name := range msg.Press {
		b, err := platform.ParseButton(name)
		if err != nil {
			return 0, 0, err
		}
		press |= b
	}
	for _, name := range msg.Release {
		b, err := platform.ParseButton(name)
		if err != nil {
			return 0, 0, err
		}
		release |= b
	}
	return press, release, nil
}

func parseRule(data []byte) (rules.Kind, error) {
	var msg ruleMessage
	if err := decode(data, &msg); err != nil {
		return 0, err
	}
	kind, ok := rules.ParseKind(msg.Kind)
	if !ok {
		return 0, fmt.Errorf("unknown rule kind %q", msg.Kind)
	}
	return kind, nil
}

func parseCanPlay(data []byte) ([]rules.GraphChange, error) {
	var msg canPlayMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}

	var changes []rules.GraphChange
	for _, c := range msg.Changes {
		card, err := parseCard(c.Card)
		if err != nil {
			return nil, err
		}
		top, err := parseCard(c.Top)
		if err != nil {
			return nil, err
		}
		changes = append(changes, rules.GraphChange{Card: card, Top: top, Allowed: c.Allowed})
	}
	if msg.Suit != nil {
		suit, err := parseSuit(msg.Suit.Suit)
		if err != nil {
			return nil, err
		}
		top, err := parseSuit(msg.Suit.Top)
		if err != nil {
			return nil, err
		}
		changes = append(changes, rules.SuitChanges(suit, top, msg.Suit.Allowed)...)
	}
	if msg.Rank != nil {
		rank, err := parseRank(msg.Rank.Rank)
		if err != nil {
			return nil, err
		}
		top, err := parseRank(msg.Rank.Top)
		if err != nil {
			return nil, err
		}
		changes = append(changes, rules.RankChanges(rank, top, msg.Rank.Allowed)...)
	}

	if len(changes) == 0 {
		return nil, fmt.Errorf("no changes given")
	}
	return changes, nil
}

func parseWild(data []byte) (rules.WildFlags, error) {
	var msg wildMessage
	if err := decode(data, &msg); err != nil {
		return 0, err
	}

	var wild rules.WildFlags
	for _, v := range msg.Cards {
		card, err := parseCard(v)
		if err != nil {
			return 0, err
		}
		wild = wild.With(card)
	}
	for _, v := range msg.Ranks {
		rank, err := parseRank(v)
		if err != nil {
			return 0, err
		}
		wild |= rules.RankWild(rank)
	}
	return wild, nil
}

func parseWhenPlayed(data []byte) (domain.Card, []rules.Change, error) {
	var msg whenPlayedMessage
	if err := decode(data, &msg); err != nil {
		return 0, nil, err
	}
	card, err := parseCard(msg.Card)
	if err != nil {
		return 0, nil, err
	}
	if len(msg.Changes) == 0 {
		return 0, nil, fmt.Errorf("no changes given")
	}

	changes := make([]rules.Change, 0, len(msg.Changes))
	for _, name := range msg.Changes {
		rel, err := parseRelative(name)
		if err != nil {
			return 0, nil, err
		}
		changes = append(changes, rules.CurrentPlayer(rel))
	}
	return card, changes, nil
}

func parseSuitChoice(data []byte) (domain.Suit, error) {
	var msg suitMessage
	if err := decode(data, &msg); err != nil {
		return 0, err
	}
	return parseSuit(msg.Suit)
}

// encode marshals a JSON-shaped value as a protobuf Struct.
func encode(fields map[string]interface{}) ([]byte, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build struct: %w", err)
	}
	return proto.Marshal(s)
}

func cardFields(c app.CardView) map[string]interface{} {
	fields := map[string]interface{}{
		"x":       int(c.X),
		"y":       int(c.Y),
		"face_up": c.FaceUp,
	}
	// Face-down cards stay hidden from the client.
	if c.FaceUp {
		fields["card"] = int(c.Card)
		fields["name"] = c.Card.String()
	}
	return fields
}

func playerNames(players []domain.PlayerID) []interface{} {
	out := make([]interface{}, 0, len(players))
	for _, p := range players {
		out = append(out, p.String())
	}
	return out
}

func snapshotFields(v app.View) map[string]interface{} {
	hands := make([]interface{}, 0, len(v.Hands))
	for _, h := range v.Hands {
		cards := make([]interface{}, 0, len(h.Cards))
		for _, c := range h.Cards {
			cards = append(cards, cardFields(c))
		}
		hands = append(hands, map[string]interface{}{
			"player": h.Player.String(),
			"cards":  cards,
		})
	}

	animations := make([]interface{}, 0, len(v.Animations))
	for _, a := range v.Animations {
		animations = append(animations, cardFields(a))
	}

	lines := make([]interface{}, 0, len(v.LogLines))
	for _, l := range v.LogLines {
		lines = append(lines, l)
	}

	fields := map[string]interface{}{
		"status":        v.Status.String(),
		"choice":        v.Choice.String(),
		"current":       v.Current.String(),
		"deck":          v.DeckCount,
		"discard_count": len(v.Discard),
		"hand_index":    int(v.HandIndex),
		"hands":         hands,
		"animations":    animations,
		"winners":       playerNames(v.Winners),
		"log":           lines,
		"log_top":       v.LogTop,
		"log_height":    int(v.LogHeight),
	}
	if n := len(v.Discard); n > 0 {
		top := v.Discard[n-1]
		fields["discard_top"] = map[string]interface{}{"card": int(top), "name": top.String()}
	}
	if v.HasWildSuit {
		fields["wild_suit"] = v.WildSuit.String()
	}
	return fields
}

func eventFields(ev app.Event) map[string]interface{} {
	fields := map[string]interface{}{"kind": string(ev.Kind)}
	switch p := ev.Payload.(type) {
	case app.RuleChangedPayload:
		fields["description"] = p.Description
	case app.CardPlayedPayload:
		fields["player"] = p.Player.String()
		fields["card"] = int(p.Card)
		fields["name"] = p.Card.String()
	case app.CardDrawnPayload:
		fields["player"] = p.Player.String()
	case app.SuitDeclaredPayload:
		fields["player"] = p.Player.String()
		fields["suit"] = p.Suit.String()
	case app.GameEndedPayload:
		fields["winners"] = playerNames(p.Winners)
	case app.DeckRecycledPayload:
		fields["cards"] = p.Cards
	}
	return fields
}

func soundFields(sfx []platform.SFX) map[string]interface{} {
	names := make([]interface{}, 0, len(sfx))
	for _, s := range sfx {
		names = append(names, s.String())
	}
	return map[string]interface{}{"sfx": names}
}
