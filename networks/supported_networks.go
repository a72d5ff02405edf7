package networks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	g7common "github.com/ehvi8r/G7-Auditor/common"
)

const (
	EVMNativeDecimals    int32 = 18
	SolanaNativeDecimals int32 = 9
)

// Insert more Network implementations here to support more chains.
var supportedNetworks = []Network{
	BaseMainnet,
	BSCMainnet,
	RoburnaMainnet,
	SolanaMainnet,
}

// Registry maps chain identifiers to their ordered RPC endpoints. It is
// built once and never mutated, so concurrent reads need no locking.
type Registry struct {
	networks  map[string]Network
	endpoints map[g7common.Chain][]string
	ordered   []Network
}

// NewRegistry builds a registry for nets. getenv resolves each network's
// node override variable (comma separated URLs); pass nil to ignore
// overrides. EVM networks keep a single canonical endpoint.
func NewRegistry(getenv func(string) string, nets ...Network) (*Registry, error) {
	r := &Registry{
		networks:  map[string]Network{},
		endpoints: map[g7common.Chain][]string{},
	}
	for _, n := range nets {
		names := append([]string{string(n.GetName())}, n.GetAlternativeNames()...)
		for _, name := range names {
			key := strings.ToLower(name)
			if _, found := r.networks[key]; found {
				return nil, fmt.Errorf("network with name or alternative name of '%s' already exists", name)
			}
			r.networks[key] = n
		}

		urls := nodeURLs(n.GetDefaultNodes())
		if getenv != nil && n.GetNodeVariableName() != "" {
			if override := splitURLs(getenv(n.GetNodeVariableName())); len(override) > 0 {
				urls = override
			}
		}
		if len(urls) == 0 {
			return nil, fmt.Errorf("network '%s' has no rpc endpoint", n.GetName())
		}
		if n.GetFamily() == FamilyEVM {
			urls = urls[:1]
		}
		r.endpoints[n.GetName()] = urls
		r.ordered = append(r.ordered, n)
	}
	return r, nil
}

// DefaultRegistry wires every supported network.
func DefaultRegistry(getenv func(string) string) (*Registry, error) {
	return NewRegistry(getenv, supportedNetworks...)
}

// Network looks up a network by its name or one of its alternative names.
func (r *Registry) Network(name string) (Network, error) {
	n, found := r.networks[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return nil, r.unknownChain(name)
	}
	return n, nil
}

// EndpointsFor returns the ordered, non-empty endpoint list of a chain.
func (r *Registry) EndpointsFor(name string) ([]string, error) {
	n, err := r.Network(name)
	if err != nil {
		return nil, err
	}
	return append([]string{}, r.endpoints[n.GetName()]...), nil
}

// Networks returns the registered networks in registration order.
func (r *Registry) Networks() []Network {
	return append([]Network{}, r.ordered...)
}

func (r *Registry) Names() []string {
	res := []string{}
	for _, n := range r.ordered {
		res = append(res, string(n.GetName()))
	}
	return res
}

// Suggest returns the known names closest to name, best match first.
func (r *Registry) Suggest(name string) []string {
	all := make([]string, 0, len(r.networks))
	for key := range r.networks {
		all = append(all, key)
	}
	sort.Strings(all)

	seen := map[g7common.Chain]bool{}
	res := []string{}
	for _, m := range fuzzy.Find(strings.ToLower(name), all) {
		chain := r.networks[m.Str].GetName()
		if seen[chain] {
			continue
		}
		seen[chain] = true
		res = append(res, string(chain))
	}
	return res
}

func (r *Registry) unknownChain(name string) error {
	err := fmt.Errorf("'%s': %w", name, g7common.ErrUnknownChain)
	if suggestions := r.Suggest(name); len(suggestions) > 0 {
		err = fmt.Errorf("%w (did you mean %s?)", err, strings.Join(suggestions, ", "))
	}
	return err
}

func nodeURLs(nodes []Node) []string {
	res := []string{}
	for _, n := range nodes {
		if u := strings.TrimSpace(n.URL); u != "" {
			res = append(res, u)
		}
	}
	return res
}

func splitURLs(value string) []string {
	res := []string{}
	for _, part := range strings.Split(value, ",") {
		if u := strings.TrimSpace(part); u != "" {
			res = append(res, u)
		}
	}
	return res
}
