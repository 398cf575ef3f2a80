package netapi

import (
	"context"
	"errors"
)

var ErrorNotFound = errors.New("not found")

// Subnet is a network fabric subnet record.
type Subnet struct {
	ID        string
	NetworkID string
	CIDR      string
	IPVersion int
}

// Network is a network fabric network record. SubnetIDs is in discovery
// order; VIP resolution relies on that order for same-version tie-breaks.
type Network struct {
	ID        string
	SubnetIDs []string
}

// Port is a network fabric port record. SubnetID and IPAddress are set when
// the port has a fixed address attachment.
type Port struct {
	ID        string
	NetworkID string
	SubnetID  string
	IPAddress string
}

type Client interface {
	// GetSubnet returns ErrorNotFound if the subnet does not exist.
	GetSubnet(ctx context.Context, subnetID string) (*Subnet, error)
	// GetNetwork returns ErrorNotFound if the network does not exist.
	GetNetwork(ctx context.Context, networkID string) (*Network, error)
	// GetPort returns ErrorNotFound if the port does not exist.
	GetPort(ctx context.Context, portID string) (*Port, error)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrorNotFound)
}
