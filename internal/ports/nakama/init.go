package nakama

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bartog/internal/app"
	"bartog/internal/config"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

var errMissingSeedSecret = errors.New("bartog_seed_secret is not set")

// seedService signs and verifies shared seeds. It is set up by InitModule.
var seedService *app.SeedService

// InitModule wires RPCs and match handlers for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := config.LoadGameConfig(ConfigPath); err != nil {
		logger.Warn("Could not load game config, using defaults: %v", err)
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	service, err := newSeedService(env, logger)
	if err != nil {
		return err
	}
	seedService = service

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameBartog, NewMatch); err != nil {
		return err
	}

	logger.Info("Bartog Go module loaded.")
	return nil
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcNewMatch, rpcNewMatch); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcSeedToken, rpcSeedToken)
}

// newSeedService reads the signing key from env. Only a development server
// may run without one, and then signs with a throwaway key.
func newSeedService(env map[string]string, logger runtime.Logger) (*app.SeedService, error) {
	secret := env[envSeedSecret]
	issuer := env[envSeedIssuer]
	if issuer == "" {
		issuer = "bartog"
	}
	if secret == "" {
		if env[envDevMode] != "true" {
			return nil, errMissingSeedSecret
		}
		secret = uuid.NewString()
		logger.Warn("Seed token secret missing from env, signing with a throwaway key.")
	}
	ttl := time.Duration(config.GetGameConfig().SeedTokenTTLSeconds) * time.Second
	return app.NewSeedService(secret, issuer, ttl), nil
}
