package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"bartog/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NewMatchRequest optionally replays a shared table.
type NewMatchRequest struct {
	SeedToken string `json:"seed_token"`
}

// NewMatchResponse is the payload returned to clients when a table is opened.
type NewMatchResponse struct {
	MatchID   string `json:"match_id"`
	Seed      string `json:"seed"`
	SeedToken string `json:"seed_token"`
}

func rpcNewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req NewMatchRequest
	if strings.TrimSpace(payload) != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
		}
	}

	seed := app.NewSeed()
	if req.SeedToken != "" {
		verified, err := seedService.VerifyToken(req.SeedToken)
		if err != nil {
			if errors.Is(err, app.ErrInvalidSeedToken) {
				return "", runtime.NewError("Invalid seed token", 3)
			}
			logger.Error("RpcNewMatch [User:%s]: Failed to verify seed token: %v", userID, err)
			return "", runtime.NewError("Internal error", 13) // INTERNAL
		}
		seed = verified
	}

	token, err := seedService.IssueToken(seed)
	if err != nil {
		logger.Error("RpcNewMatch [User:%s]: Failed to sign seed: %v", userID, err)
		return "", runtime.NewError("Internal error", 13)
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameBartog, map[string]interface{}{"seed": seed.String()})
	if err != nil {
		logger.Error("RpcNewMatch [User:%s]: Failed to create match: %v", userID, err)
		return "", err
	}

	logger.Info("RpcNewMatch [User:%s]: Created table %s with seed %s", userID, matchID, seed)
	resp := NewMatchResponse{MatchID: matchID, Seed: seed.String(), SeedToken: token}
	b, _ := json.Marshal(resp)
	return string(b), nil
}
