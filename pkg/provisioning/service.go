// Package provisioning orchestrates the control-plane operations on load
// balancers: admission through the status ledger, graph validation, VIP
// resolution and atomic persistence. It is the single entry point external
// callers use.
package provisioning

import (
	"context"

	"k8s.io/klog/v2"

	"github.com/cloudnetlab/lbaas/pkg/api"
	"github.com/cloudnetlab/lbaas/pkg/apierrors"
	"github.com/cloudnetlab/lbaas/pkg/cmp"
	"github.com/cloudnetlab/lbaas/pkg/graph"
	"github.com/cloudnetlab/lbaas/pkg/netapi"
	"github.com/cloudnetlab/lbaas/pkg/status"
	"github.com/cloudnetlab/lbaas/pkg/store"
	"github.com/cloudnetlab/lbaas/pkg/vip"
)

// Caller is the opaque requesting identity handed in by the authorization
// collaborator. Admin scope widens reads; it never bypasses the status gate.
type Caller struct {
	ProjectID string
	Admin     bool
}

type Service struct {
	store   store.Store
	ledger  *status.Ledger
	vip     *vip.Resolver
	builder *graph.Builder
}

func NewService(st store.Store, net netapi.Client) *Service {
	return &Service{
		store:   st,
		ledger:  status.NewLedger(st),
		vip:     vip.NewResolver(net),
		builder: graph.NewBuilder(st),
	}
}

// Ledger exposes the status ledger's reconciler-facing interface.
func (s *Service) Ledger() *status.Ledger {
	return s.ledger
}

// Create validates the whole submitted graph, resolves the VIP placement and
// persists the tree atomically. The response is the fully populated
// representation with every entity at (PENDING_CREATE, OFFLINE).
func (s *Service) Create(ctx context.Context, caller Caller, req *api.LoadBalancerCreate) (*api.LoadBalancer, error) {
	spec, err := vipSpecFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := graph.Validate(req); err != nil {
		return nil, err
	}

	resolved, err := s.vip.Resolve(ctx, spec)
	if err != nil {
		// A dangling subnet/network/port reference inside a create payload
		// is the caller's input error, not a missing primary resource.
		if apierrors.IsNotFound(err) {
			return nil, apierrors.NewValidation("%s", err.Error())
		}
		return nil, err
	}

	projectID := req.ProjectID
	if projectID == "" {
		projectID = caller.ProjectID
	}

	lb, err := s.builder.Create(ctx, req, resolved, projectID)
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("created load balancer %s with %d listeners", lb.ID, len(lb.Listeners))
	return lb, nil
}

// Get is read-only and bypasses the status ledger. A non-admin caller
// addressing a foreign load balancer observes not-found rather than a
// permission error.
func (s *Service) Get(ctx context.Context, caller Caller, id string) (*api.LoadBalancer, error) {
	lb, err := s.store.GetLoadBalancer(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, apierrors.NewNotFound("Load Balancer %s not found.", id)
		}
		return nil, apierrors.NewInternal(err)
	}
	if !caller.Admin && lb.ProjectID != caller.ProjectID {
		return nil, apierrors.NewNotFound("Load Balancer %s not found.", id)
	}
	return lb, nil
}

// List returns the caller's load balancers. Admin scope sees every project
// and may narrow the result with projectFilter.
func (s *Service) List(ctx context.Context, caller Caller, projectFilter string) ([]*api.LoadBalancer, error) {
	filter := projectFilter
	if !caller.Admin {
		filter = caller.ProjectID
	}
	lbs, err := s.store.ListLoadBalancers(ctx, filter)
	if err != nil {
		return nil, apierrors.NewInternal(err)
	}
	return lbs, nil
}

// Update admits the mutation at the status gate, then applies the field
// patch. The load balancer stays PENDING_UPDATE until the reconciler reports
// the result.
func (s *Service) Update(ctx context.Context, caller Caller, id string, update *api.LoadBalancerUpdate) (*api.LoadBalancer, error) {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return nil, err
	}
	if update.HasVIPChange() {
		return nil, apierrors.NewValidation("Validation failure: VIP fields cannot be updated.")
	}
	if update.Name != nil {
		if err := api.ValidateFieldLength("name", *update.Name); err != nil {
			return nil, err
		}
	}
	if update.Description != nil {
		if err := api.ValidateFieldLength("description", *update.Description); err != nil {
			return nil, err
		}
	}

	if err := s.ledger.AdmitMutation(ctx, id, api.StatusPendingUpdate); err != nil {
		return nil, err
	}

	lb, err := s.store.UpdateLoadBalancer(ctx, id, update)
	if err != nil {
		return nil, apierrors.NewInternal(err)
	}
	return lb, nil
}

// Delete admits the mutation at the status gate. From ERROR the delete is
// immediate and terminal; otherwise the load balancer transitions to
// PENDING_DELETE and is physically removed once the external reconciler
// confirms.
func (s *Service) Delete(ctx context.Context, caller Caller, id string) error {
	lb, err := s.Get(ctx, caller, id)
	if err != nil {
		return err
	}

	if lb.ProvisioningStatus == api.StatusError {
		if err := s.ledger.MarkDeleted(ctx, id); err != nil {
			return err
		}
		if err := s.store.DeleteLoadBalancer(ctx, id); err != nil && !store.IsNotFound(err) {
			return apierrors.NewInternal(err)
		}
		klog.V(2).Infof("deleted load balancer %s from ERROR", id)
		return nil
	}

	return s.ledger.AdmitMutation(ctx, id, api.StatusPendingDelete)
}

// vipSpecFromRequest validates the VIP input fields and collapses the
// pointer-typed payload fields into a VIP value. A field that is present but
// not a UUID fails validation even if another placement field would suffice.
func vipSpecFromRequest(req *api.LoadBalancerCreate) (api.VIP, error) {
	var spec api.VIP
	for _, f := range []struct {
		field string
		value *string
		dst   *string
	}{
		{"vip_port_id", req.VIPPortID, &spec.PortID},
		{"vip_network_id", req.VIPNetworkID, &spec.NetworkID},
		{"vip_subnet_id", req.VIPSubnetID, &spec.SubnetID},
	} {
		if f.value == nil {
			continue
		}
		if err := api.ValidateUUID(f.field, *f.value); err != nil {
			return api.VIP{}, err
		}
		*f.dst = *f.value
	}
	spec.Address = cmp.UnpackPtr(req.VIPAddress)
	return spec, nil
}
