// Package config loads the demo CLI's configuration from environment
// variables / a .env file. The transaction core itself (internal/chain)
// takes no configuration — it is a pure library — so everything here
// exists only to drive cmd/txcoredemo.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func loadDotenv() error {
	return godotenv.Load()
}

// ── Config fields (populated by Load) ───────────────────────────────────
var (
	// LogLevel is read from LOG_LEVEL. Neither cmd/txcoredemo nor
	// internal/chain consults it; the demo logs every line regardless.
	LogLevel string

	// ChildChainRPC is the operator RPC endpoint the demo would submit
	// encoded transactions to; the demo never actually dials it (block
	// submission is out of scope for this module), it only logs it.
	ChildChainRPC string

	// DefaultFee is the flat fee (in wei-equivalent smallest units)
	// the demo applies to every sample transaction it builds; the demo
	// takes no command-line arguments.
	DefaultFee uint64

	// Workers sizes the demo's concurrent builder worker pool, used to
	// exercise that the core needs no coordination across callers.
	Workers int
)

// Load reads .env (if present) then overrides from OS env vars.
func Load() {
	if err := loadDotenv(); err != nil {
		log.Println("[config] no .env file found, using OS environment")
	}

	LogLevel = getEnv("LOG_LEVEL", "INFO")
	ChildChainRPC = getEnv("CHILD_CHAIN_RPC", "http://127.0.0.1:9656")
	DefaultFee = getEnvUint("DEFAULT_FEE", 0)
	Workers = getEnvInt("BUILDER_WORKERS", 4)
}

// ── Helpers ──────────────────────────────────────────────────────────────

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvUint(key string, fallback uint64) uint64 {
	if v, ok := os.LookupEnv(key); ok {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			return u
		}
	}
	return fallback
}
