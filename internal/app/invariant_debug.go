//go:build !release

package app

import "github.com/heroiclabs/nakama-common/runtime"

// invariantViolation aborts: a broken invariant is a logic defect.
func invariantViolation(logger runtime.Logger, msg string) {
	logger.Error("Game: invariant violated: %s", msg)
	panic("app: " + msg)
}
