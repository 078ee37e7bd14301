package nakama

const (
	// RpcNewMatch is the Nakama RPC id clients call to open a Bartog table.
	RpcNewMatch = "bartog_new_match"

	// RpcSeedToken is the Nakama RPC id that signs a seed for sharing.
	RpcSeedToken = "bartog_seed_token"

	// MatchNameBartog is the authoritative match handler name registered with Nakama.
	MatchNameBartog = "bartog_match"

	// ConfigPath is where the game configuration is read from.
	ConfigPath = "data/bartog_config.json"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpInput            int64 = 1
	OpChooseRule       int64 = 2
	OpChooseCanPlay    int64 = 3
	OpChooseWild       int64 = 4
	OpChooseWhenPlayed int64 = 5
	OpChooseSuit       int64 = 6
	OpPlayAgain        int64 = 7

	// Server -> Client events
	OpSnapshot int64 = 100
	OpSound    int64 = 101
	OpError    int64 = 102
	OpEvent    int64 = 103
)

// Environment keys read from the Nakama runtime config.
const (
	envTickRate   = "bartog_tick_rate"
	envSeedSecret = "bartog_seed_secret"
	envSeedIssuer = "bartog_seed_issuer"
	envDevMode    = "bartog_dev_mode"
)
