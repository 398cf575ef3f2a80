// Package vip resolves a partial VIP specification into a fully determined
// {port, network, subnet, address} placement using the external network
// provider.
package vip

import (
	"context"
	"fmt"

	"github.com/cloudnetlab/lbaas/pkg/api"
	"github.com/cloudnetlab/lbaas/pkg/apierrors"
	"github.com/cloudnetlab/lbaas/pkg/netapi"
)

// ErrMissingVIPSpec is the exact fault string for a VIP without any
// placement input.
const ErrMissingVIPSpec = "Validation failure: VIP must contain one of: port_id, network_id, subnet_id."

// ErrNetworkHasNoSubnet is the exact fault string for a network without
// subnets.
const ErrNetworkHasNoSubnet = "Validation failure: Supplied network does not contain a subnet."

type Resolver struct {
	net netapi.Client
}

func NewResolver(net netapi.Client) *Resolver {
	return &Resolver{net: net}
}

// Resolve fills in the VIP placement. Precedence: a subnet id is
// authoritative for the subnet, a port id for the network. The address is
// passed through verbatim. Referenced ids that do not exist surface as
// NotFoundError; the provisioning service converts those to validation
// failures because they are embedded in a create payload.
func (r *Resolver) Resolve(ctx context.Context, spec api.VIP) (api.VIP, error) {
	if spec.PortID == "" && spec.NetworkID == "" && spec.SubnetID == "" {
		return api.VIP{}, apierrors.NewValidation("%s", ErrMissingVIPSpec)
	}

	resolved := spec

	if spec.PortID != "" {
		port, err := r.net.GetPort(ctx, spec.PortID)
		if err != nil {
			if netapi.IsNotFound(err) {
				return api.VIP{}, apierrors.NewNotFound("Port %s not found.", spec.PortID)
			}
			return api.VIP{}, apierrors.NewInternal(fmt.Errorf("get port %s: %w", spec.PortID, err))
		}
		// The port is authoritative for the network it is attached to, and
		// its fixed address fills any gaps the caller left.
		resolved.NetworkID = port.NetworkID
		if resolved.SubnetID == "" {
			resolved.SubnetID = port.SubnetID
		}
		if resolved.Address == "" {
			resolved.Address = port.IPAddress
		}
		return resolved, nil
	}

	if resolved.SubnetID != "" {
		subnet, err := r.net.GetSubnet(ctx, resolved.SubnetID)
		if err != nil {
			if netapi.IsNotFound(err) {
				return api.VIP{}, apierrors.NewNotFound("Subnet %s not found.", resolved.SubnetID)
			}
			return api.VIP{}, apierrors.NewInternal(fmt.Errorf("get subnet %s: %w", resolved.SubnetID, err))
		}
		// The VIP network always follows the resolved subnet, even when the
		// caller supplied a network of their own.
		resolved.NetworkID = subnet.NetworkID
		return resolved, nil
	}

	if resolved.NetworkID != "" {
		subnet, err := r.pickSubnet(ctx, resolved.NetworkID)
		if err != nil {
			return api.VIP{}, err
		}
		resolved.SubnetID = subnet.ID
		return resolved, nil
	}

	return resolved, nil
}

// pickSubnet chooses a subnet for a network-only VIP specification: the
// first IPv4 subnet in discovery order wins, otherwise the first IPv6 one.
func (r *Resolver) pickSubnet(ctx context.Context, networkID string) (*netapi.Subnet, error) {
	network, err := r.net.GetNetwork(ctx, networkID)
	if err != nil {
		if netapi.IsNotFound(err) {
			return nil, apierrors.NewNotFound("Network %s not found.", networkID)
		}
		return nil, apierrors.NewInternal(fmt.Errorf("get network %s: %w", networkID, err))
	}
	if len(network.SubnetIDs) == 0 {
		return nil, apierrors.NewValidation("%s", ErrNetworkHasNoSubnet)
	}

	var firstV6 *netapi.Subnet
	for _, subnetID := range network.SubnetIDs {
		subnet, err := r.net.GetSubnet(ctx, subnetID)
		if err != nil {
			if netapi.IsNotFound(err) {
				// A subnet listed by the network but gone by the time it is
				// resolved is skipped rather than failing the whole request.
				continue
			}
			return nil, apierrors.NewInternal(fmt.Errorf("get subnet %s: %w", subnetID, err))
		}
		if subnet.IPVersion == 4 {
			return subnet, nil
		}
		if firstV6 == nil {
			firstV6 = subnet
		}
	}
	if firstV6 != nil {
		return firstV6, nil
	}
	return nil, apierrors.NewValidation("%s", ErrNetworkHasNoSubnet)
}
