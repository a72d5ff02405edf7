package chain

import (
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	g7common "github.com/ehvi8r/G7-Auditor/common"
	"github.com/ehvi8r/G7-Auditor/networks"
	"github.com/ehvi8r/G7-Auditor/util/solreader"
)

const (
	solAddr = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	solMint = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
)

func newTestSolanaAdapter(nodes ...*fakeSolanaNode) *SolanaAdapter {
	list := make([]solreader.SolanaNode, 0, len(nodes))
	for _, n := range nodes {
		list = append(list, n)
	}
	return NewSolanaAdapter(networks.NewSolanaMainnet(), list, Options{Clock: fixedClock})
}

func walletAccount() *solreader.AccountInfo {
	return &solreader.AccountInfo{Owner: solana.SystemProgramID.String(), Lamports: 1}
}

func TestSolanaTokenAccountClassification(t *testing.T) {
	node := &fakeSolanaNode{
		url:     "https://sol-a.test",
		account: walletAccount(),
		holdings: []solreader.TokenHolding{
			{Mint: solMint, Amount: "1500", Decimals: 6},
			{Mint: "other", Amount: "1", Decimals: 0},
		},
	}

	info, err := newTestSolanaAdapter(node).FetchContractMetadata(context.Background(), solAddr)
	require.NoError(t, err)
	assert.Equal(t, solMint, info.Name)
	assert.Equal(t, UnknownTokenSymbol, info.Symbol)
	assert.Equal(t, uint8(6), info.Decimals)
	assert.Equal(t, "1500", info.TotalSupply)
	assert.Equal(t, g7common.ChainSolana, info.Blockchain)
	assert.Equal(t, solAddr, info.OwnerWallet)
	assert.True(t, info.Taxes.Buy.IsZero())
	assert.Equal(t, g7common.SolanaCompilerVersion, info.CompilerVersionHint)
	assert.Equal(t, "March 04, 2025", info.AuditDate)
}

func TestSolanaUnknownTokenDefaults(t *testing.T) {
	for name, node := range map[string]*fakeSolanaNode{
		"no token accounts":          {account: walletAccount()},
		"classification query fails": {account: walletAccount(), holdingsErr: errors.New("method not supported")},
	} {
		t.Run(name, func(t *testing.T) {
			node.url = "https://sol.test"
			info, err := newTestSolanaAdapter(node).FetchContractMetadata(context.Background(), solAddr)
			require.NoError(t, err)
			assert.Equal(t, UnknownTokenName, info.Name)
			assert.Equal(t, UnknownTokenSymbol, info.Symbol)
			assert.Equal(t, uint8(9), info.Decimals)
			assert.Equal(t, "0", info.TotalSupply)
		})
	}
}

// A mint account holds no token accounts of its own, so it gets the neutral
// descriptor even though its data carries decimals and supply.
func TestSolanaMintAccountWithoutHoldingsIsUnknown(t *testing.T) {
	data := binary.LittleEndian.AppendUint32(nil, 0)
	data = append(data, make([]byte, 32)...)
	data = binary.LittleEndian.AppendUint64(data, 777)
	data = append(data, 4, 1)
	data = binary.LittleEndian.AppendUint32(data, 0)
	data = append(data, make([]byte, 32)...)

	node := &fakeSolanaNode{
		url:     "https://sol.test",
		account: &solreader.AccountInfo{Owner: solana.TokenProgramID.String(), Data: data},
	}

	info, err := newTestSolanaAdapter(node).FetchContractMetadata(context.Background(), solMint)
	require.NoError(t, err)
	assert.Equal(t, UnknownTokenName, info.Name)
	assert.Equal(t, UnknownTokenSymbol, info.Symbol)
	assert.Equal(t, uint8(9), info.Decimals)
	assert.Equal(t, "0", info.TotalSupply)
	assert.Equal(t, data, info.RawCode)
}

func TestSolanaFallbackAttribution(t *testing.T) {
	first := &fakeSolanaNode{
		url:        "https://sol-a.test",
		account:    walletAccount(),
		holdings:   []solreader.TokenHolding{{Mint: "stale", Amount: "1", Decimals: 1}},
		accountErr: errors.New("502 bad gateway"),
	}
	second := &fakeSolanaNode{
		url:      "https://sol-b.test",
		account:  walletAccount(),
		holdings: []solreader.TokenHolding{{Mint: solMint, Amount: "42", Decimals: 2}},
	}

	info, err := newTestSolanaAdapter(first, second).FetchContractMetadata(context.Background(), solAddr)
	require.NoError(t, err)
	assert.Equal(t, solMint, info.Name)
	assert.Equal(t, "42", info.TotalSupply)
	assert.Equal(t, uint8(2), info.Decimals)
}

func TestSolanaAccountNotFoundFallsBack(t *testing.T) {
	first := &fakeSolanaNode{url: "https://sol-a.test", accountErr: solreader.ErrAccountNotFound}
	second := &fakeSolanaNode{url: "https://sol-b.test", account: walletAccount()}

	info, err := newTestSolanaAdapter(first, second).FetchContractMetadata(context.Background(), solAddr)
	require.NoError(t, err)
	assert.Equal(t, UnknownTokenName, info.Name)
}

func TestSolanaAllEndpointsExhausted(t *testing.T) {
	nodes := []*fakeSolanaNode{
		{url: "https://sol-a.test", accountErr: errors.New("timeout a")},
		{url: "https://sol-b.test", accountErr: errors.New("timeout b")},
		{url: "https://sol-c.test", accountErr: errors.New("rate limited c")},
	}

	_, err := newTestSolanaAdapter(nodes...).FetchContractMetadata(context.Background(), solAddr)
	require.Error(t, err)
	assert.ErrorIs(t, err, g7common.ErrAllEndpointsExhausted)
	assert.Contains(t, err.Error(), "rate limited c")

	var qerr *g7common.QueryError
	require.True(t, errors.As(err, &qerr))
	assert.Equal(t, "https://sol-c.test", qerr.Endpoint)
	for _, n := range nodes {
		assert.Positive(t, n.callCount())
	}
}

func TestSolanaExhaustedByMissingAccount(t *testing.T) {
	nodes := []*fakeSolanaNode{
		{url: "https://sol-a.test", accountErr: solreader.ErrAccountNotFound},
		{url: "https://sol-b.test", accountErr: solreader.ErrAccountNotFound},
	}

	_, err := newTestSolanaAdapter(nodes...).FetchContractMetadata(context.Background(), solAddr)
	assert.ErrorIs(t, err, g7common.ErrAllEndpointsExhausted)
	assert.ErrorIs(t, err, g7common.ErrAccountNotFound)
}

func TestSolanaInvalidAddressMakesNoCalls(t *testing.T) {
	node := &fakeSolanaNode{url: "https://sol.test", account: walletAccount()}
	a := newTestSolanaAdapter(node)

	_, err := a.FetchContractMetadata(context.Background(), "0x1111111111111111111111111111111111111111")
	assert.ErrorIs(t, err, g7common.ErrInvalidAddress)
	_, err = a.FetchWalletRisk(context.Background(), "not base58 0OIl")
	assert.ErrorIs(t, err, g7common.ErrInvalidAddress)
	assert.Equal(t, 0, node.callCount())
}

func TestSolanaFetchWalletRisk(t *testing.T) {
	failing := &fakeSolanaNode{url: "https://sol-a.test", walletErr: errors.New("down")}
	healthy := &fakeSolanaNode{url: "https://sol-b.test", lamports: 2500000000, signatures: 25}

	risk, err := newTestSolanaAdapter(failing, healthy).FetchWalletRisk(context.Background(), solAddr)
	require.NoError(t, err)
	assert.Equal(t, solAddr, risk.Address)
	assert.Equal(t, "2.5", risk.BalanceNative.String())
	assert.False(t, risk.IsContract)
	assert.Equal(t, uint64(DefaultSignatureLookback), risk.TransactionCount)
	assert.NotNil(t, risk.Projects)
}

func TestSolanaFetchWalletRiskExhausted(t *testing.T) {
	a := newTestSolanaAdapter(
		&fakeSolanaNode{url: "https://sol-a.test", walletErr: errors.New("down a")},
		&fakeSolanaNode{url: "https://sol-b.test", walletErr: errors.New("down b")},
	)

	_, err := a.FetchWalletRisk(context.Background(), solAddr)
	assert.ErrorIs(t, err, g7common.ErrWalletQueryFailed)
	assert.ErrorIs(t, err, g7common.ErrAllEndpointsExhausted)
	assert.Contains(t, err.Error(), "down b")
}

func TestSolanaResolveOwnerIsAddress(t *testing.T) {
	a := newTestSolanaAdapter()
	assert.Equal(t, solAddr, a.ResolveOwner(context.Background(), solAddr))
}
