package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	g7common "github.com/ehvi8r/G7-Auditor/common"
	"github.com/ehvi8r/G7-Auditor/networks"
	"github.com/ehvi8r/G7-Auditor/util/reader"
)

const (
	tokenAddr = "0x1111111111111111111111111111111111111111"
	ownerAddr = "0x2222222222222222222222222222222222222222"
)

func fooToken() map[string]interface{} {
	return map[string]interface{}{
		"name":             "Foo",
		"symbol":           "FOO",
		"decimals":         uint8(18),
		"totalSupply":      big.NewInt(1000000),
		"owner":            common.HexToAddress(ownerAddr),
		"_buyTaxRate":      big.NewInt(300),
		"_sellTaxRate":     big.NewInt(300),
		"_transferTaxRate": big.NewInt(0),
	}
}

func newTestEVMAdapter(node *fakeEVMNode) *EVMAdapter {
	if node.url == "" {
		node.url = "https://bsc.test"
	}
	return NewEVMAdapter(networks.NewBSCMainnet(), reader.NewEthReader(node), Options{Clock: fixedClock})
}

func TestEVMFetchContractMetadata(t *testing.T) {
	a := newTestEVMAdapter(&fakeEVMNode{calls: fooToken(), code: []byte{0x60, 0x80}})

	info, err := a.FetchContractMetadata(context.Background(), tokenAddr)
	require.NoError(t, err)

	assert.Equal(t, tokenAddr, info.Address)
	assert.Equal(t, "Foo", info.Name)
	assert.Equal(t, "FOO", info.Symbol)
	assert.Equal(t, uint8(18), info.Decimals)
	assert.Equal(t, "1000000", info.TotalSupply)
	assert.Equal(t, g7common.ChainBSC, info.Blockchain)
	assert.Equal(t, common.HexToAddress(ownerAddr).Hex(), info.OwnerWallet)
	assert.Equal(t, "3", info.Taxes.Buy.String())
	assert.Equal(t, "3", info.Taxes.Sell.String())
	assert.True(t, info.Taxes.Transfer.IsZero())
	assert.Equal(t, []byte{0x60, 0x80}, info.RawCode)
	assert.Equal(t, g7common.DefaultCompilerVersion, info.CompilerVersionHint)
	assert.Equal(t, "March 04, 2025", info.AuditDate)
}

func TestEVMRequiredFieldFailure(t *testing.T) {
	for _, method := range []string{"name", "symbol", "decimals", "totalSupply"} {
		t.Run(method, func(t *testing.T) {
			calls := fooToken()
			delete(calls, method)
			a := newTestEVMAdapter(&fakeEVMNode{calls: calls})

			info, err := a.FetchContractMetadata(context.Background(), tokenAddr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, g7common.ErrMetadataUnavailable))
			assert.Equal(t, g7common.ContractInfo{}, info)

			var qerr *g7common.QueryError
			require.True(t, errors.As(err, &qerr))
			assert.Equal(t, "https://bsc.test", qerr.Endpoint)
			assert.Equal(t, g7common.ChainBSC, qerr.Chain)
		})
	}
}

func TestEVMGetCodeFailure(t *testing.T) {
	transport := errors.New("connection refused")
	a := newTestEVMAdapter(&fakeEVMNode{calls: fooToken(), codeErr: transport})

	_, err := a.FetchContractMetadata(context.Background(), tokenAddr)
	assert.ErrorIs(t, err, g7common.ErrMetadataUnavailable)
	assert.ErrorIs(t, err, transport)
}

func TestEVMInvalidAddressMakesNoCalls(t *testing.T) {
	node := &fakeEVMNode{calls: fooToken()}
	a := newTestEVMAdapter(node)

	for _, addr := range []string{"", "0xToken", "1111111111111111111111111111111111111111", "0x11"} {
		_, err := a.FetchContractMetadata(context.Background(), addr)
		assert.ErrorIs(t, err, g7common.ErrInvalidAddress, addr)
	}
	assert.Equal(t, 0, node.readCount("name"))
}

func TestEVMOwnerFallbackChain(t *testing.T) {
	t.Run("secondary accessor", func(t *testing.T) {
		calls := fooToken()
		delete(calls, "owner")
		calls["getOwner"] = common.HexToAddress(ownerAddr)
		node := &fakeEVMNode{calls: calls}

		owner := newTestEVMAdapter(node).ResolveOwner(context.Background(), tokenAddr)
		assert.Equal(t, common.HexToAddress(ownerAddr).Hex(), owner)
		assert.Equal(t, 1, node.readCount("owner"))
		assert.Equal(t, 1, node.readCount("getOwner"))
	})

	t.Run("primary wins", func(t *testing.T) {
		calls := fooToken()
		calls["getOwner"] = common.HexToAddress("0x3333333333333333333333333333333333333333")
		node := &fakeEVMNode{calls: calls}

		owner := newTestEVMAdapter(node).ResolveOwner(context.Background(), tokenAddr)
		assert.Equal(t, common.HexToAddress(ownerAddr).Hex(), owner)
		assert.Equal(t, 0, node.readCount("getOwner"))
	})

	t.Run("sentinel", func(t *testing.T) {
		calls := fooToken()
		delete(calls, "owner")
		a := newTestEVMAdapter(&fakeEVMNode{calls: calls})

		info, err := a.FetchContractMetadata(context.Background(), tokenAddr)
		require.NoError(t, err)
		assert.Equal(t, g7common.OwnerNotFound, info.OwnerWallet)
	})
}

func TestEVMTaxGroupDefaultsToZero(t *testing.T) {
	cases := map[string]func(map[string]interface{}){
		"missing accessor": func(c map[string]interface{}) { delete(c, "_transferTaxRate") },
		"out of range":     func(c map[string]interface{}) { c["_sellTaxRate"] = big.NewInt(25000) },
		"transport error":  func(c map[string]interface{}) { c["_buyTaxRate"] = errors.New("timeout") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			calls := fooToken()
			mutate(calls)
			a := newTestEVMAdapter(&fakeEVMNode{calls: calls})

			info, err := a.FetchContractMetadata(context.Background(), tokenAddr)
			require.NoError(t, err)
			assert.True(t, info.Taxes.Buy.IsZero())
			assert.True(t, info.Taxes.Sell.IsZero())
			assert.True(t, info.Taxes.Transfer.IsZero())
		})
	}
}

func TestEVMCompilerVersionFromMetadata(t *testing.T) {
	code := append([]byte{0x60, 0x80, 0xa2, 0x64, 'i', 'p', 'f', 's'}, 0x64, 's', 'o', 'l', 'c', 0x43, 0x00, 0x08, 0x13, 0x00, 0x33)
	a := newTestEVMAdapter(&fakeEVMNode{calls: fooToken(), code: code})

	info, err := a.FetchContractMetadata(context.Background(), tokenAddr)
	require.NoError(t, err)
	assert.Equal(t, "0.8.19", info.CompilerVersionHint)
}

func TestEVMFetchWalletRisk(t *testing.T) {
	balance, _ := new(big.Int).SetString("1500000000000000000", 10)
	a := newTestEVMAdapter(&fakeEVMNode{balance: balance, nonce: 42, code: []byte{0x60}})

	risk, err := a.FetchWalletRisk(context.Background(), ownerAddr)
	require.NoError(t, err)
	assert.Equal(t, ownerAddr, risk.Address)
	assert.Equal(t, "1.5", risk.BalanceNative.String())
	assert.True(t, risk.IsContract)
	assert.Equal(t, uint64(42), risk.TransactionCount)
	assert.NotNil(t, risk.RedFlags)
	assert.Empty(t, risk.RedFlags)
}

func TestEVMFetchWalletRiskFailure(t *testing.T) {
	a := newTestEVMAdapter(&fakeEVMNode{balance: big.NewInt(1), walletErr: errors.New("timeout")})

	_, err := a.FetchWalletRisk(context.Background(), ownerAddr)
	assert.ErrorIs(t, err, g7common.ErrWalletQueryFailed)
}
