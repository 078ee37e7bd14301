package app

import (
	"strings"

	"bartog/internal/domain"
	"bartog/internal/platform"
	"bartog/internal/ports"
	"bartog/internal/rules"
)

// Update advances the game by one frame. It must be called exactly once per
// frame with that frame's input.
func (g *Game) Update(input platform.Input, sound ports.SoundPort) {
	switch g.Status {
	case InGame:
		g.updateInGame(input, sound)
		g.pollPlayAgain()
	case RuleSelection:
		g.updateRuleSelection()
	case RuleSelectionCanPlay:
		g.updateCanPlay()
	case RuleSelectionWild:
		g.updateWild()
	case RuleSelectionWhenPlayed:
		g.updateWhenPlayed()
	}

	g.checkConservation()
}

func (g *Game) updateRuleSelection() {
	kind, ok := g.chooser.ChooseRule()
	if !ok {
		return
	}

	switch kind {
	case rules.KindCanPlay:
		g.Status = RuleSelectionCanPlay
	case rules.KindWild:
		g.Status = RuleSelectionWild
	case rules.KindWhenPlayed:
		g.Status = RuleSelectionWhenPlayed
	default:
		g.startMatch()
	}
}

func (g *Game) updateCanPlay() {
	changes := g.chooser.ChooseCanPlayChanges()
	if len(changes) == 0 {
		return
	}
	if err := g.Rules.ApplyCanPlayChanges(changes); err != nil {
		g.logger.Error("Game: failed to apply can-play changes: %v", err)
	} else {
		g.narrateRule(rules.DescribeCanPlay(domain.Human, changes))
	}
	g.startMatch()
}

func (g *Game) updateWild() {
	wild, ok := g.chooser.ChooseWildFlags()
	if !ok {
		return
	}
	if err := g.Rules.ApplyWildFlags(wild); err != nil {
		g.logger.Error("Game: failed to apply wild change: %v", err)
	} else {
		g.narrateRule(rules.DescribeWild(domain.Human, wild))
	}
	g.startMatch()
}

func (g *Game) updateWhenPlayed() {
	card, changes := g.chooser.ChooseWhenPlayed()
	if len(changes) == 0 {
		return
	}
	if err := g.Rules.ApplyWhenPlayed(card, changes); err != nil {
		g.logger.Error("Game: failed to apply when-played change for %v: %v", card, err)
	} else {
		g.narrateRule(rules.DescribeWhenPlayed(domain.Human, card, changes))
	}
	g.startMatch()
}

func (g *Game) narrateRule(line string) {
	g.Log.Push(line)
	g.logger.Info("Game: rule change: %s", line)
	g.emit(EventRuleChanged, RuleChangedPayload{Description: line})
}

// startMatch freezes the rules and hands control to the turn loop.
func (g *Game) startMatch() {
	g.Rules.Lock()
	g.Status = InGame
	g.emit(EventMatchStarted, nil)
}

func (g *Game) updateInGame(input platform.Input, sound ports.SoundPort) {
	switch g.LogHeading {
	case LogUp:
		if g.LogHeight > domain.SpriteSize {
			g.LogHeight -= domain.SpriteSize
		} else {
			g.LogHeight = 0
		}
	case LogDown:
		if g.LogHeight <= domain.ScreenHeight-domain.SpriteSize {
			g.LogHeight += domain.SpriteSize
		}
	}

	if input.PressedThisFrame(platform.Start) {
		if g.LogHeading == LogUp {
			g.LogHeading = LogDown
		} else {
			g.LogHeading = LogUp
		}
	}

	// An open log takes all input and pauses play.
	if g.LogHeight > 0 {
		if input.PressedThisFrame(platform.Up) {
			g.Log.ScrollUp()
		} else if input.PressedThisFrame(platform.Down) {
			g.Log.ScrollDown()
		}
		return
	}

	if g.Choice != ChoiceIdle {
		g.pollChoice()
		return
	}

	if len(g.Animations) == 0 {
		if len(g.Winners) == 0 {
			g.takeTurn(input, sound)
		}
		return
	}

	g.advanceAnimations()
	g.moveCursor(input, sound)
}

// pollChoice asks for the pending decision and keeps the answer for the
// animation waiting on it.
func (g *Game) pollChoice() {
	switch g.Choice {
	case ChoiceSuit:
		if suit, ok := g.chooser.ChooseSuit(); ok {
			g.pendingSuit = &suit
			g.Choice = ChoiceIdle
		}
	default:
		g.Choice = ChoiceIdle
	}
}

func (g *Game) moveCursor(input platform.Input, sound ports.SoundPort) bool {
	switch {
	case input.PressedThisFrame(platform.Right):
		if n := g.Hand.Len(); n > 0 && g.HandIndex < n-1 {
			g.HandIndex++
		}
	case input.PressedThisFrame(platform.Left):
		if g.HandIndex > 0 {
			g.HandIndex--
		}
	default:
		return false
	}
	if sound != nil {
		sound.RequestSFX(platform.CardSlide)
	}
	return true
}

func (g *Game) takeTurn(input platform.Input, sound ports.SoundPort) {
	player := g.Current

	if player.IsCPU() {
		g.takeCPUTurn(player)
	} else {
		switch {
		case g.moveCursor(input, sound):
		case input.PressedThisFrame(platform.A):
			card, ok := g.Hand.Get(g.HandIndex)
			if ok && g.CanPlay(card) {
				g.startDiscard(player, g.HandIndex)
				g.Current = domain.CPU(0)
			}
			// Illegal plays are ignored.
		case input.PressedThisFrame(platform.B):
			g.startDraw(player)
			g.Current = domain.CPU(0)
		}
	}

	g.detectWinners()
}

func (g *Game) takeCPUTurn(player domain.PlayerID) {
	agent := &g.agents[player.CPUIndex()]

	move, err := agent.Play(g.seat(player))
	if err != nil {
		g.logger.Warn("Game: %v strategy failed, drawing: %v", player, err)
	}

	if move.Draw {
		g.logger.Debug("Game: %v draws", player)
		g.startDraw(player)
	} else {
		g.logger.Debug("Game: %v plays %v", player, move.Card)
		g.startDiscard(player, move.Index)
	}

	g.Current = player.Next(CPUCount)
}

// detectWinners records every player with an empty hand.
func (g *Game) detectWinners() {
	var winners []domain.PlayerID
	for _, p := range g.Players() {
		if g.HandOf(p).IsEmpty() {
			winners = append(winners, p)
		}
	}
	if len(winners) == 0 {
		return
	}

	first := len(g.Winners) == 0
	g.Winners = winners
	if first {
		g.logger.Info("Game: winners %v", winners)
		g.emit(EventGameEnded, GameEndedPayload{Winners: winners})
	}
}

func (g *Game) pollPlayAgain() {
	if len(g.Winners) == 0 || len(g.Animations) != 0 {
		return
	}
	if !g.chooser.ChoosePlayAgain() {
		return
	}

	names := make([]string, 0, len(g.Winners))
	for _, w := range g.Winners {
		names = append(names, w.String())
	}
	g.Log.Push(strings.Join(names, " and ") + " won!")
	g.Reset()
}

