package nakama

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"bartog/internal/app"
	"bartog/internal/bot"
	"bartog/internal/config"
	"bartog/internal/platform"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// MatchState holds the authoritative runtime state for one Bartog table.
// A table seats one human against the CPU players.
type MatchState struct {
	Seed     uuid.UUID
	HumanID  string
	Presence runtime.Presence
	Tick     int64

	Game    *app.Game
	Input   platform.Input
	Speaker platform.Speaker

	chooser      *queuedChooser
	release      platform.Button
	lastSnapshot []byte
	lastLabel    string
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// newMatchState builds a table for seed using the loaded game configuration.
func newMatchState(seed uuid.UUID, logger runtime.Logger) (*MatchState, error) {
	cfg := config.GetGameConfig()

	level, err := bot.ParseLevel(cfg.BotLevel)
	if err != nil {
		return nil, err
	}

	chooser := &queuedChooser{}
	game, err := app.NewGame([16]byte(seed), chooser, logger, app.Options{
		HandSize:       cfg.HandSize,
		LogCapacity:    cfg.LogCapacity,
		LogWindowLines: cfg.LogWindowLines,
		BotLevel:       level,
	})
	if err != nil {
		return nil, err
	}

	return &MatchState{
		Seed:    seed,
		Game:    game,
		chooser: chooser,
	}, nil
}

// MatchInit is called when the match is created. A "seed" param replays a
// known table; otherwise a fresh seed is drawn.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig(ConfigPath); err != nil {
		logger.Warn("MatchInit: Could not load game config, using defaults: %v", err)
	}

	seed := app.NewSeed()
	if text, ok := params["seed"].(string); ok && text != "" {
		parsed, err := app.ParseSeed(text)
		if err != nil {
			logger.Error("MatchInit: %v", err)
			return nil, 0, ""
		}
		seed = parsed
	}

	state, err := newMatchState(seed, logger)
	if err != nil {
		logger.Error("MatchInit: Failed to create game: %v", err)
		return nil, 0, ""
	}

	tickRate := config.GetGameConfig().TickRate
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if val, ok := env[envTickRate]; ok {
			if i, err := strconv.Atoi(val); err == nil && i > 0 {
				tickRate = i
			}
		}
	}

	label, err := matchLabel(state)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}
	state.lastLabel = label

	logger.Info("MatchInit: Table ready with seed %s at %d ticks per second.", seed, tickRate)
	return state, tickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	if !canJoin(matchState, presence.GetUserId()) {
		return state, false, "Match full"
	}
	return state, true, ""
}

// canJoin admits the first human and lets the same human reconnect.
func canJoin(state *MatchState, userID string) bool {
	return state.HumanID == "" || state.HumanID == userID
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		if !canJoin(matchState, p.GetUserId()) {
			logger.Warn("MatchJoin: User %s joined but the seat is taken.", p.GetUserId())
			continue
		}
		matchState.HumanID = p.GetUserId()
		matchState.Presence = p
		logger.Info("MatchJoin: User %s took the seat.", p.GetUserId())
	}

	// Send a full snapshot to whoever just arrived.
	matchState.lastSnapshot = nil
	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave ends the table once its human has left.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		if p.GetUserId() == matchState.HumanID {
			logger.Info("MatchLeave: Terminating table, %s left.", p.GetUserId())
			return nil
		}
	}
	return matchState
}

// MatchLoop runs one frame of the game per tick.
func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		if msg.GetUserId() != matchState.HumanID {
			continue
		}
		if err := mh.handleMessage(matchState, msg.GetOpCode(), msg.GetData()); err != nil {
			logger.Warn("MatchLoop: Rejected opcode %d: %v", msg.GetOpCode(), err)
			mh.sendError(matchState, dispatcher, logger, err.Error())
		}
	}

	mh.step(matchState, dispatcher, logger)
	return matchState
}

// handleMessage applies one client message to the input or the choice queue.
func (mh *matchHandler) handleMessage(state *MatchState, opCode int64, data []byte) error {
	game := state.Game

	switch opCode {
	case OpInput:
		press, release, err := parseInput(data)
		if err != nil {
			return err
		}
		state.Input.Press(press)
		// Releases wait for the frame so a tap sent in one message still counts.
		state.release |= release
	case OpChooseRule:
		if game.Status != app.RuleSelection {
			return fmt.Errorf("not choosing a rule")
		}
		kind, err := parseRule(data)
		if err != nil {
			return err
		}
		state.chooser.rule = &kind
	case OpChooseCanPlay:
		if game.Status != app.RuleSelectionCanPlay {
			return fmt.Errorf("not choosing play rules")
		}
		changes, err := parseCanPlay(data)
		if err != nil {
			return err
		}
		state.chooser.canPlay = changes
	case OpChooseWild:
		if game.Status != app.RuleSelectionWild {
			return fmt.Errorf("not choosing wild cards")
		}
		wild, err := parseWild(data)
		if err != nil {
			return err
		}
		state.chooser.wild = &wild
	case OpChooseWhenPlayed:
		if game.Status != app.RuleSelectionWhenPlayed {
			return fmt.Errorf("not choosing card effects")
		}
		card, changes, err := parseWhenPlayed(data)
		if err != nil {
			return err
		}
		state.chooser.whenCard, state.chooser.when = card, changes
	case OpChooseSuit:
		if game.Status != app.InGame || !game.AwaitingSuit() {
			return fmt.Errorf("no wild card to declare")
		}
		suit, err := parseSuitChoice(data)
		if err != nil {
			return err
		}
		state.chooser.suit = &suit
	case OpPlayAgain:
		if len(game.Winners) == 0 {
			return fmt.Errorf("the game is not over")
		}
		state.chooser.playAgain = true
	default:
		return fmt.Errorf("unknown opcode %d", opCode)
	}
	return nil
}

// step advances the game one frame and publishes what changed.
func (mh *matchHandler) step(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	state.Game.Update(state.Input, &state.Speaker)

	state.Input.Release(state.release)
	state.release = 0
	state.Input.EndFrame()

	// A suit only answers the wild card it was sent for.
	if !state.Game.AwaitingSuit() {
		state.chooser.suit = nil
	}

	for _, ev := range state.Game.DrainEvents() {
		mh.broadcast(state, dispatcher, logger, OpEvent, eventFields(ev))
	}
	if sfx := state.Speaker.Drain(); len(sfx) > 0 {
		mh.broadcast(state, dispatcher, logger, OpSound, soundFields(sfx))
	}

	mh.broadcastSnapshot(state, dispatcher, logger)
	mh.updateLabel(state, dispatcher, logger)
}

func (mh *matchHandler) broadcastSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	data, err := encode(snapshotFields(state.Game.View()))
	if err != nil {
		logger.Error("Failed to marshal snapshot: %v", err)
		return
	}
	if bytes.Equal(data, state.lastSnapshot) {
		return
	}
	state.lastSnapshot = data

	if err := dispatcher.BroadcastMessage(OpSnapshot, data, nil, nil, true); err != nil {
		logger.Error("Failed to broadcast snapshot: %v", err)
	}
}

func (mh *matchHandler) broadcast(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, fields map[string]interface{}) {
	data, err := encode(fields)
	if err != nil {
		logger.Error("Failed to marshal opcode %d: %v", opCode, err)
		return
	}
	if err := dispatcher.BroadcastMessage(opCode, data, nil, nil, true); err != nil {
		logger.Error("Failed to broadcast opcode %d: %v", opCode, err)
	}
}

// sendError tells the human why a message was rejected.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, message string) {
	data, err := encode(map[string]interface{}{"message": message})
	if err != nil {
		logger.Error("Failed to marshal error: %v", err)
		return
	}

	var recipients []runtime.Presence
	if state.Presence != nil {
		recipients = []runtime.Presence{state.Presence}
	}
	if err := dispatcher.BroadcastMessage(OpError, data, recipients, nil, true); err != nil {
		logger.Error("Failed to send error: %v", err)
	}
}

func matchLabel(state *MatchState) (string, error) {
	label, err := structpb.NewStruct(map[string]interface{}{
		"game":   "bartog",
		"open":   state.HumanID == "",
		"status": state.Game.Status.String(),
		"seed":   state.Seed.String(),
	})
	if err != nil {
		return "", err
	}
	labelBytes, err := (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(label)
	if err != nil {
		return "", err
	}
	return string(labelBytes), nil
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := matchLabel(state)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if label == state.lastLabel {
		return
	}
	state.lastLabel = label
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d seconds grace", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
