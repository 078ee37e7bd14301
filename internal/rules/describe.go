package rules

import (
	"fmt"
	"strconv"
	"strings"

	"bartog/internal/domain"
)

// DescribeCanPlay summarizes a set of graph edits as an event log line.
func DescribeCanPlay(player domain.PlayerID, changes []GraphChange) string {
	if len(changes) == 1 {
		c := changes[0]
		if c.Allowed {
			return fmt.Sprintf("%v let the %v be played on the %v.", player, c.Card, c.Top)
		}
		return fmt.Sprintf("%v stopped the %v being played on the %v.", player, c.Card, c.Top)
	}

	added, removed := 0, 0
	for _, c := range changes {
		if c.Allowed {
			added++
		} else {
			removed++
		}
	}
	return fmt.Sprintf("%v changed the play rules (%d allowed, %d forbidden).", player, added, removed)
}

// DescribeWild names the new wild set as an event log line.
func DescribeWild(player domain.PlayerID, wild WildFlags) string {
	var parts []string
	for r := domain.Rank(0); r < domain.RankCount; r++ {
		whole := RankWild(r)
		if wild&whole == whole {
			parts = append(parts, r.Plural())
			continue
		}
		for _, s := range domain.Suits {
			if c := domain.NewCard(r, s); wild.Has(c) {
				parts = append(parts, "the "+c.String())
			}
		}
	}

	if len(parts) == 0 {
		return fmt.Sprintf("%v made nothing wild.", player)
	}
	return fmt.Sprintf("%v made %s wild.", player, joinAnd(parts))
}

// DescribeWhenPlayed narrates the side effects given to card.
func DescribeWhenPlayed(player domain.PlayerID, card domain.Card, changes []Change) string {
	if len(changes) == 0 {
		return fmt.Sprintf("%v cleared the effects of the %v.", player, card)
	}

	effects := make([]string, 0, len(changes))
	for _, c := range changes {
		switch c.Kind {
		case ChangeCurrentPlayer:
			effects = append(effects, describeRelative(c.Player))
		default:
			effects = append(effects, "change kind "+strconv.Itoa(int(c.Kind)))
		}
	}
	return fmt.Sprintf("%v made the %v %s.", player, card, joinAnd(effects))
}

func describeRelative(r RelativePlayer) string {
	switch r {
	case Previous:
		return "send the turn back"
	case Same:
		return "give another turn"
	case Skip:
		return "skip the next player"
	default:
		return "pass the turn on"
	}
}

func joinAnd(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}
