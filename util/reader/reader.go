package reader

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	g7common "github.com/ehvi8r/G7-Auditor/common"
)

var DEFAULT_ADDRESS string = "0x0000000000000000000000000000000000000000"

// EthReader reads contract and account state through one EVM node. There is
// no fallback: a failed call is reported as is.
type EthReader struct {
	node EthereumNode
}

func NewEthReader(node EthereumNode) *EthReader {
	return &EthReader{node: node}
}

func wrapError(e error, name string) error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, e)
}

func (er *EthReader) NodeURL() string {
	return er.node.NodeURL()
}

// Close releases the node connection. The next call dials again.
func (er *EthReader) Close() {
	if c, ok := er.node.(interface{ Close() }); ok {
		c.Close()
	}
}

func (er *EthReader) GetCode(ctx context.Context, address string) ([]byte, error) {
	code, err := er.node.GetCode(ctx, address)
	return code, wrapError(err, er.node.NodeName())
}

func (er *EthReader) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	balance, err := er.node.GetBalance(ctx, address)
	return balance, wrapError(err, er.node.NodeName())
}

func (er *EthReader) GetMinedNonce(ctx context.Context, address string) (uint64, error) {
	nonce, err := er.node.GetMinedNonce(ctx, address)
	return nonce, wrapError(err, er.node.NodeName())
}

func (er *EthReader) ReadContractToBytes(
	ctx context.Context,
	from string,
	caddr string,
	abi *abi.ABI,
	method string,
	args ...interface{},
) ([]byte, error) {
	data, err := er.node.ReadContractToBytes(ctx, -1, from, caddr, abi, method, args...)
	return data, wrapError(err, er.node.NodeName())
}

func (er *EthReader) ReadContractWithABI(
	ctx context.Context,
	result interface{},
	caddr string,
	abi *abi.ABI,
	method string,
	args ...interface{},
) error {
	responseBytes, err := er.ReadContractToBytes(ctx, DEFAULT_ADDRESS, caddr, abi, method, args...)
	if err != nil {
		return err
	}
	if err := abi.UnpackIntoInterface(result, method, responseBytes); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

func (er *EthReader) ERC20Name(ctx context.Context, caddr string) (string, error) {
	var result string
	err := er.ReadContractWithABI(ctx, &result, caddr, g7common.GetTokenABI(), "name")
	return result, err
}

func (er *EthReader) ERC20Symbol(ctx context.Context, caddr string) (string, error) {
	var result string
	err := er.ReadContractWithABI(ctx, &result, caddr, g7common.GetTokenABI(), "symbol")
	return result, err
}

func (er *EthReader) ERC20Decimal(ctx context.Context, caddr string) (uint8, error) {
	var result uint8
	err := er.ReadContractWithABI(ctx, &result, caddr, g7common.GetTokenABI(), "decimals")
	return result, err
}

func (er *EthReader) ERC20TotalSupply(ctx context.Context, caddr string) (*big.Int, error) {
	result := big.NewInt(0)
	err := er.ReadContractWithABI(ctx, &result, caddr, g7common.GetTokenABI(), "totalSupply")
	return result, err
}

// Uint256FromContract reads a parameterless uint256 getter of the token ABI.
func (er *EthReader) Uint256FromContract(ctx context.Context, caddr string, method string) (*big.Int, error) {
	result := big.NewInt(0)
	err := er.ReadContractWithABI(ctx, &result, caddr, g7common.GetTokenABI(), method)
	return result, err
}

func (er *EthReader) AddressFromContract(ctx context.Context, caddr string, method string) (*common.Address, error) {
	result := common.Address{}
	err := er.ReadContractWithABI(ctx, &result, caddr, g7common.GetTokenABI(), method)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
