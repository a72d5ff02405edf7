package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownChain          = errors.New("unknown chain")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrMetadataUnavailable   = errors.New("contract metadata unavailable")
	ErrAccountNotFound       = errors.New("account not found")
	ErrAllEndpointsExhausted = errors.New("all endpoints exhausted")
	ErrWalletQueryFailed     = errors.New("wallet query failed")
)

// QueryError carries enough context to diagnose a failed resolution step.
// errors.Is matches both Kind and the underlying Err.
type QueryError struct {
	Kind     error
	Chain    Chain
	Address  string
	Endpoint string
	Err      error
}

func (e *QueryError) Error() string {
	parts := []string{e.Kind.Error()}
	if e.Chain != "" {
		parts = append(parts, fmt.Sprintf("chain=%s", e.Chain))
	}
	if e.Address != "" {
		parts = append(parts, fmt.Sprintf("address=%s", e.Address))
	}
	if e.Endpoint != "" {
		parts = append(parts, fmt.Sprintf("endpoint=%s", e.Endpoint))
	}
	msg := strings.Join(parts, " ")
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

func (e *QueryError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewQueryError(kind error, chain Chain, address, endpoint string, err error) *QueryError {
	return &QueryError{
		Kind:     kind,
		Chain:    chain,
		Address:  address,
		Endpoint: endpoint,
		Err:      err,
	}
}
