package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ehvi8r/G7-Auditor/auditor"
	"github.com/ehvi8r/G7-Auditor/chain"
	g7common "github.com/ehvi8r/G7-Auditor/common"
	"github.com/ehvi8r/G7-Auditor/config"
	"github.com/ehvi8r/G7-Auditor/networks"
	"github.com/ehvi8r/G7-Auditor/resolver"
	"github.com/ehvi8r/G7-Auditor/ui"
)

// app is everything a command needs, built once per invocation.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *networks.Registry
	resolver *resolver.Resolver
	auditor  *auditor.Auditor
	ui       ui.UI
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	registry, err := networks.DefaultRegistry(os.Getenv)
	if err != nil {
		return nil, err
	}
	res, err := resolver.New(registry, chain.Options{
		Timeout:           cfg.RPCTimeout,
		SignatureLookback: cfg.SignatureLookback,
		SolanaRPS:         cfg.SolanaRPS,
		SolanaBurst:       cfg.SolanaBurst,
		Logger:            logger,
	})
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		resolver: res,
		auditor:  auditor.New(res, logger),
		ui:       ui.NewTerminalUI(),
	}, nil
}

// target works out the address and chain to query. Missing values are
// prompted for.
func (a *app) target(args []string) (string, networks.Network, error) {
	chainName := strings.TrimSpace(config.Chain)
	if chainName == "" {
		names := a.registry.Names()
		idx := a.ui.Choose("Select a chain", names)
		chainName = names[idx]
	}
	network, err := a.registry.Network(chainName)
	if err != nil {
		if suggestions := a.registry.Suggest(chainName); len(suggestions) > 0 {
			a.ui.Warn("Did you mean: %s?", strings.Join(suggestions, ", "))
		}
		return "", nil, err
	}
	a.ui.Interpret(network.GetDisplayName())

	var address string
	if len(args) > 0 {
		address = strings.TrimSpace(args[0])
	} else {
		a.ui.Info("Contract or wallet address:")
		address = a.ui.Ask(func(s string) error {
			if s == "" {
				return fmt.Errorf("address can't be empty")
			}
			return nil
		})
		a.ui.Interpret(address)
	}
	return address, network, nil
}

func (a *app) close() {
	a.resolver.Close()
	a.logger.Sync()
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// explain prints a hint for the error kinds a user can act on.
func (a *app) explain(err error) {
	switch {
	case errors.Is(err, g7common.ErrInvalidAddress):
		a.ui.Error("The address is not valid for this chain.")
	case errors.Is(err, g7common.ErrAccountNotFound):
		a.ui.Error("The account does not exist on this chain.")
	case errors.Is(err, g7common.ErrAllEndpointsExhausted):
		a.ui.Error("Every RPC endpoint failed. Check the node env vars or try again later.")
	case errors.Is(err, g7common.ErrMetadataUnavailable):
		a.ui.Error("Couldn't read the token metadata. The address may not be an ERC20 token.")
	}
}
