package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"bartog/internal/app"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// matchLookup is the part of runtime.NakamaModule needed to find a table.
type matchLookup interface {
	MatchGet(ctx context.Context, id string) (*api.Match, error)
}

// SeedTokenResponse lets a player share a table for replay.
type SeedTokenResponse struct {
	Seed  string `json:"seed"`
	Token string `json:"token"`
}

// RpcSeedToken signs the seed of a table this server is hosting.
// Payload: {"match_id": "<id>"}
func rpcSeedToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return seedTokenForMatch(ctx, logger, nk, payload)
}

func seedTokenForMatch(ctx context.Context, logger runtime.Logger, matches matchLookup, payload string) (string, error) {
	var req struct {
		MatchID string `json:"match_id"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}
	if strings.TrimSpace(req.MatchID) == "" {
		return "", runtime.NewError("Match ID required", 3)
	}

	match, err := matches.MatchGet(ctx, req.MatchID)
	if err != nil {
		logger.Error("RpcSeedToken: Failed to look up match %s: %v", req.MatchID, err)
		return "", runtime.NewError("Internal error", 13) // INTERNAL
	}
	if match == nil || match.GetLabel() == nil {
		return "", runtime.NewError("Match not found", 5) // NOT_FOUND
	}

	var label struct {
		Game string `json:"game"`
		Seed string `json:"seed"`
	}
	if err := json.Unmarshal([]byte(match.GetLabel().GetValue()), &label); err != nil || label.Game != "bartog" {
		return "", runtime.NewError("Match not found", 5)
	}
	seed, err := app.ParseSeed(label.Seed)
	if err != nil {
		logger.Error("RpcSeedToken: Match %s carries a bad seed: %v", req.MatchID, err)
		return "", runtime.NewError("Internal error", 13)
	}

	token, err := seedService.IssueToken(seed)
	if err != nil {
		logger.Error("RpcSeedToken: Failed to generate seed token: %v", err)
		return "", runtime.NewError("Internal error", 13)
	}

	resBytes, _ := json.Marshal(SeedTokenResponse{Seed: seed.String(), Token: token})
	return string(resBytes), nil
}
