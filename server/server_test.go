package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehvi8r/G7-Auditor/auditor"
	g7common "github.com/ehvi8r/G7-Auditor/common"
	"github.com/ehvi8r/G7-Auditor/networks"
	"github.com/ehvi8r/G7-Auditor/server"
)

const tokenAddr = "0x1111111111111111111111111111111111111111"

type stubService struct {
	err      error
	gotChain string
	gotAddr  string
}

func (s *stubService) Audit(ctx context.Context, address, chainName string) (g7common.AuditDocument, error) {
	s.gotChain, s.gotAddr = chainName, address
	if s.err != nil {
		return g7common.AuditDocument{}, s.err
	}
	info := g7common.ContractInfo{
		Address:             address,
		Name:                "Foo",
		Symbol:              "FOO",
		Decimals:            18,
		TotalSupply:         "1000000",
		Blockchain:          g7common.ChainBSC,
		OwnerWallet:         g7common.OwnerNotFound,
		Taxes:               g7common.Taxes{Buy: decimal.NewFromInt(3), Sell: decimal.NewFromInt(3), Transfer: decimal.Zero},
		CompilerVersionHint: g7common.DefaultCompilerVersion,
		AuditDate:           "March 04, 2025",
	}
	return auditor.Assemble(info, g7common.NeutralWalletRisk(g7common.OwnerNotFound)), nil
}

func (s *stubService) Wallet(ctx context.Context, address, chainName string) (g7common.WalletRisk, error) {
	s.gotChain, s.gotAddr = chainName, address
	if s.err != nil {
		return g7common.WalletRisk{}, s.err
	}
	risk := g7common.NeutralWalletRisk(address)
	risk.TransactionCount = 7
	return risk, nil
}

func newServer(t *testing.T, svc server.Service) *httptest.Server {
	t.Helper()
	registry, err := networks.DefaultRegistry(nil)
	require.NoError(t, err)
	ts := httptest.NewServer(server.NewHandler(svc, registry, nil).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestAuditRoute(t *testing.T) {
	svc := &stubService{}
	ts := newServer(t, svc)

	resp, body := get(t, ts.URL+"/audit/bsc/"+tokenAddr)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "bsc", svc.gotChain)
	assert.Equal(t, tokenAddr, svc.gotAddr)

	var doc g7common.AuditDocument
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	assert.Equal(t, "Foo", doc.ExecutiveSummary.Overview.Name)
	assert.Equal(t, g7common.OwnerNotFound, doc.OwnerWallet.Address)
}

func TestAuditRouteMarkdown(t *testing.T) {
	ts := newServer(t, &stubService{})

	resp, body := get(t, ts.URL+"/audit/bsc/"+tokenAddr+"?format=markdown")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/markdown"))
	assert.Contains(t, body, "# Smart Contract Audit Report")
}

func TestWalletRoute(t *testing.T) {
	ts := newServer(t, &stubService{})

	resp, body := get(t, ts.URL+"/wallet/solana/9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var risk g7common.WalletRisk
	require.NoError(t, json.Unmarshal([]byte(body), &risk))
	assert.Equal(t, uint64(7), risk.TransactionCount)
}

func TestChainsRoute(t *testing.T) {
	ts := newServer(t, &stubService{})

	resp, body := get(t, ts.URL+"/chains")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var chains []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &chains))
	require.Len(t, chains, 4)
	assert.Equal(t, "solana", chains[3].Name)
}

func TestErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"unknown chain", g7common.NewQueryError(g7common.ErrUnknownChain, "", tokenAddr, "", nil), http.StatusBadRequest, "unknown chain"},
		{"invalid address", g7common.NewQueryError(g7common.ErrInvalidAddress, g7common.ChainBSC, "nope", "", nil), http.StatusBadRequest, "invalid address"},
		{
			"account not found",
			g7common.NewQueryError(g7common.ErrAllEndpointsExhausted, g7common.ChainSolana, tokenAddr, "https://rpc.ankr.com/solana", g7common.ErrAccountNotFound),
			http.StatusNotFound,
			"all endpoints exhausted",
		},
		{"metadata", g7common.NewQueryError(g7common.ErrMetadataUnavailable, g7common.ChainBSC, tokenAddr, "https://bsc", errors.New("revert")), http.StatusBadGateway, "contract metadata unavailable"},
		{"plain", errors.New("boom"), http.StatusBadGateway, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newServer(t, &stubService{err: tc.err})

			resp, body := get(t, ts.URL+"/audit/bsc/"+tokenAddr)
			assert.Equal(t, tc.status, resp.StatusCode)
			var e struct {
				Error string `json:"error"`
				Kind  string `json:"kind"`
			}
			require.NoError(t, json.Unmarshal([]byte(body), &e))
			assert.Equal(t, tc.err.Error(), e.Error)
			assert.Equal(t, tc.kind, e.Kind)
		})
	}
}

func TestStatusForDeadline(t *testing.T) {
	assert.Equal(t, http.StatusGatewayTimeout, server.StatusFor(context.DeadlineExceeded))
}
