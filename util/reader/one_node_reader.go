package reader

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	g7common "github.com/ehvi8r/G7-Auditor/common"
)

const TIMEOUT time.Duration = 4 * time.Second

type OneNodeReader struct {
	nodeName  string
	nodeURL   string
	timeout   time.Duration
	client    *rpc.Client
	ethClient *ethclient.Client
	mu        sync.Mutex
}

func NewOneNodeReader(name, url string, timeout time.Duration) *OneNodeReader {
	if timeout <= 0 {
		timeout = TIMEOUT
	}
	return &OneNodeReader{
		nodeName: name,
		nodeURL:  url,
		timeout:  timeout,
	}
}

func (onr *OneNodeReader) NodeName() string {
	return onr.nodeName
}

func (onr *OneNodeReader) NodeURL() string {
	return onr.nodeURL
}

func (onr *OneNodeReader) EthClient(ctx context.Context) (*ethclient.Client, error) {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	if onr.ethClient != nil {
		return onr.ethClient, nil
	}
	client, err := rpc.DialContext(ctx, onr.nodeURL)
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to %s: %w", onr.nodeName, err)
	}
	onr.client = client
	onr.ethClient = ethclient.NewClient(client)
	return onr.ethClient, nil
}

// Close releases the underlying connection, if any.
func (onr *OneNodeReader) Close() {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	if onr.client != nil {
		onr.client.Close()
		onr.client = nil
		onr.ethClient = nil
	}
}

func (onr *OneNodeReader) GetCode(ctx context.Context, address string) (code []byte, err error) {
	ethcli, err := onr.EthClient(ctx)
	if err != nil {
		return nil, err
	}
	timeout, cancel := context.WithTimeout(ctx, onr.timeout)
	defer cancel()
	return ethcli.CodeAt(timeout, common.HexToAddress(address), nil)
}

func (onr *OneNodeReader) GetBalance(ctx context.Context, address string) (balance *big.Int, err error) {
	ethcli, err := onr.EthClient(ctx)
	if err != nil {
		return nil, err
	}
	timeout, cancel := context.WithTimeout(ctx, onr.timeout)
	defer cancel()
	return ethcli.BalanceAt(timeout, common.HexToAddress(address), nil)
}

func (onr *OneNodeReader) GetMinedNonce(ctx context.Context, address string) (nonce uint64, err error) {
	ethcli, err := onr.EthClient(ctx)
	if err != nil {
		return 0, err
	}
	timeout, cancel := context.WithTimeout(ctx, onr.timeout)
	defer cancel()
	return ethcli.NonceAt(timeout, common.HexToAddress(address), nil)
}

func (onr *OneNodeReader) ReadContractToBytes(ctx context.Context, atBlock int64, from string, caddr string, abi *abi.ABI, method string, args ...interface{}) ([]byte, error) {
	ethcli, err := onr.EthClient(ctx)
	if err != nil {
		return nil, err
	}

	contract := g7common.HexToAddress(caddr)
	data, err := abi.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	var blockBig *big.Int
	if atBlock > 0 {
		blockBig = big.NewInt(atBlock)
	}
	timeout, cancel := context.WithTimeout(ctx, onr.timeout)
	defer cancel()

	return ethcli.CallContract(timeout, ethereum.CallMsg{
		From: g7common.HexToAddress(from),
		To:   &contract,
		Data: data,
	}, blockBig)
}
