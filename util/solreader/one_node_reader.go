package solreader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"golang.org/x/time/rate"

	g7common "github.com/ehvi8r/G7-Auditor/common"
)

const TIMEOUT time.Duration = 4 * time.Second

// ErrAccountNotFound is returned when the node has no account at the
// requested address.
var ErrAccountNotFound = g7common.ErrAccountNotFound

type OneNodeSolReader struct {
	nodeName string
	nodeURL  string
	timeout  time.Duration
	limiter  *rate.Limiter
	client   *rpc.Client
}

// NewOneNodeSolReader builds a reader for one endpoint. A nil limiter means
// requests are not throttled.
func NewOneNodeSolReader(name, url string, timeout time.Duration, limiter *rate.Limiter) *OneNodeSolReader {
	if timeout <= 0 {
		timeout = TIMEOUT
	}
	return &OneNodeSolReader{
		nodeName: name,
		nodeURL:  url,
		timeout:  timeout,
		limiter:  limiter,
		client:   rpc.New(url),
	}
}

func (r *OneNodeSolReader) NodeName() string {
	return r.nodeName
}

func (r *OneNodeSolReader) NodeURL() string {
	return r.nodeURL
}

func (r *OneNodeSolReader) begin(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, nil, err
		}
	}
	timeout, cancel := context.WithTimeout(ctx, r.timeout)
	return timeout, cancel, nil
}

func (r *OneNodeSolReader) GetAccountInfo(ctx context.Context, address string) (*AccountInfo, error) {
	pk, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, err
	}
	ctx, cancel, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	out, err := r.client.GetAccountInfo(ctx, pk)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", address, ErrAccountNotFound)
		}
		return nil, err
	}
	if out == nil || out.Value == nil {
		return nil, fmt.Errorf("%s: %w", address, ErrAccountNotFound)
	}
	info := &AccountInfo{
		Owner:      out.Value.Owner.String(),
		Lamports:   out.Value.Lamports,
		Executable: out.Value.Executable,
	}
	if out.Value.Data != nil {
		info.Data = out.Value.Data.GetBinary()
	}
	return info, nil
}

type parsedTokenAccount struct {
	Parsed struct {
		Info struct {
			Mint        string `json:"mint"`
			TokenAmount struct {
				Amount   string `json:"amount"`
				Decimals uint8  `json:"decimals"`
			} `json:"tokenAmount"`
		} `json:"info"`
	} `json:"parsed"`
}

func (r *OneNodeSolReader) GetTokenAccountsByOwner(ctx context.Context, owner string) ([]TokenHolding, error) {
	pk, err := solana.PublicKeyFromBase58(owner)
	if err != nil {
		return nil, err
	}
	ctx, cancel, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	out, err := r.client.GetTokenAccountsByOwner(
		ctx,
		pk,
		&rpc.GetTokenAccountsConfig{ProgramId: solana.TokenProgramID.ToPointer()},
		&rpc.GetTokenAccountsOpts{Encoding: solana.EncodingJSONParsed},
	)
	if err != nil {
		return nil, err
	}

	result := []TokenHolding{}
	for _, acc := range out.Value {
		if acc == nil || acc.Account.Data == nil {
			continue
		}
		var parsed parsedTokenAccount
		if err := json.Unmarshal(acc.Account.Data.GetRawJSON(), &parsed); err != nil {
			return nil, fmt.Errorf("decoding token account %s: %w", acc.Pubkey, err)
		}
		result = append(result, TokenHolding{
			Account:  acc.Pubkey.String(),
			Mint:     parsed.Parsed.Info.Mint,
			Amount:   parsed.Parsed.Info.TokenAmount.Amount,
			Decimals: parsed.Parsed.Info.TokenAmount.Decimals,
		})
	}
	return result, nil
}

func (r *OneNodeSolReader) GetBalance(ctx context.Context, address string) (uint64, error) {
	pk, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return 0, err
	}
	ctx, cancel, err := r.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer cancel()

	out, err := r.client.GetBalance(ctx, pk, rpc.CommitmentFinalized)
	if err != nil {
		return 0, err
	}
	return out.Value, nil
}

// GetSignatureCount returns how many of the most recent limit signatures
// exist for address.
func (r *OneNodeSolReader) GetSignatureCount(ctx context.Context, address string, limit int) (int, error) {
	pk, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return 0, err
	}
	ctx, cancel, err := r.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer cancel()

	out, err := r.client.GetSignaturesForAddressWithOpts(ctx, pk, &rpc.GetSignaturesForAddressOpts{
		Limit: &limit,
	})
	if err != nil {
		return 0, err
	}
	return len(out), nil
}
