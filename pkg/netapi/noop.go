package netapi

import (
	"context"

	"github.com/google/uuid"
)

// namespace for deriving stable fabricated ids.
var noopNamespace = uuid.MustParse("5b6076dd-6d19-4d5c-b4b9-7f1f8e3fdf39")

// NoopClient fabricates network records instead of querying a real fabric.
// Lookups are deterministic: the same subnet id always resolves to the same
// synthesized parent network. It serves development setups and tests that do
// not care about real placement.
type NoopClient struct{}

var _ Client = (*NoopClient)(nil)

func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

func (c *NoopClient) GetSubnet(_ context.Context, subnetID string) (*Subnet, error) {
	return &Subnet{
		ID:        subnetID,
		NetworkID: uuid.NewSHA1(noopNamespace, []byte("network:"+subnetID)).String(),
		CIDR:      "10.0.0.0/24",
		IPVersion: 4,
	}, nil
}

func (c *NoopClient) GetNetwork(_ context.Context, networkID string) (*Network, error) {
	return &Network{
		ID: networkID,
		SubnetIDs: []string{
			uuid.NewSHA1(noopNamespace, []byte("subnet:"+networkID)).String(),
		},
	}, nil
}

func (c *NoopClient) GetPort(_ context.Context, portID string) (*Port, error) {
	return &Port{
		ID:        portID,
		NetworkID: uuid.NewSHA1(noopNamespace, []byte("network:"+portID)).String(),
		SubnetID:  uuid.NewSHA1(noopNamespace, []byte("subnet:"+portID)).String(),
	}, nil
}
