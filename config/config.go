package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Flag values shared by the commands.
var (
	Chain          string
	JSONOutputFile string
	MarkdownFile   string
	Force          bool
	ServerAddr     string
)

const (
	DefaultRPCTimeout        = 8 * time.Second
	DefaultSignatureLookback = 10
	DefaultSolanaRPS         = 5
	DefaultSolanaBurst       = 2
	DefaultLogLevel          = "warn"
	DefaultServerAddr        = ":8080"
)

type Config struct {
	RPCTimeout        time.Duration
	SignatureLookback int
	SolanaRPS         float64
	SolanaBurst       int
	LogLevel          string
	ServerAddr        string
}

// Load reads an optional .env file, then the environment. Variables already
// set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	timeoutSec, err := getEnvInt(getenv, "RPC_TIMEOUT_SEC", int(DefaultRPCTimeout/time.Second))
	if err != nil {
		return nil, err
	}
	lookback, err := getEnvInt(getenv, "SOLANA_SIGNATURE_LOOKBACK", DefaultSignatureLookback)
	if err != nil {
		return nil, err
	}
	rps, err := getEnvFloat(getenv, "SOLANA_RPS", DefaultSolanaRPS)
	if err != nil {
		return nil, err
	}
	burst, err := getEnvInt(getenv, "SOLANA_BURST", DefaultSolanaBurst)
	if err != nil {
		return nil, err
	}
	if timeoutSec <= 0 || lookback <= 0 || rps < 0 || burst <= 0 {
		return nil, fmt.Errorf("RPC_TIMEOUT_SEC, SOLANA_SIGNATURE_LOOKBACK and SOLANA_BURST must be positive, SOLANA_RPS non-negative")
	}
	return &Config{
		RPCTimeout:        time.Duration(timeoutSec) * time.Second,
		SignatureLookback: lookback,
		SolanaRPS:         rps,
		SolanaBurst:       burst,
		LogLevel:          getEnv(getenv, "LOG_LEVEL", DefaultLogLevel),
		ServerAddr:        getEnv(getenv, "SERVER_ADDR", DefaultServerAddr),
	}, nil
}

func getEnv(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}

func getEnvFloat(getenv func(string) string, key string, fallback float64) (float64, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
