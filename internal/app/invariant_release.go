//go:build release

package app

import "github.com/heroiclabs/nakama-common/runtime"

func invariantViolation(logger runtime.Logger, msg string) {
	logger.Error("Game: invariant violated: %s", msg)
}
