package store

import (
	"context"
	"errors"

	"github.com/cloudnetlab/lbaas/pkg/api"
)

var (
	// ErrNotFound is returned for an unknown load balancer id.
	ErrNotFound = errors.New("load balancer not found")
	// ErrConflict is returned when a compare-and-swap precondition fails.
	ErrConflict = errors.New("provisioning status precondition failed")
)

type Store interface {
	// CreateLoadBalancerGraph persists the load balancer and its entire
	// subtree in one transaction. On error nothing is persisted.
	CreateLoadBalancerGraph(ctx context.Context, lb *api.LoadBalancer) error

	// GetLoadBalancer returns ErrNotFound for an unknown id.
	GetLoadBalancer(ctx context.Context, id string) (*api.LoadBalancer, error)

	// ListLoadBalancers returns all load balancers, or only those of
	// projectID if it is non-empty. The result is never nil.
	ListLoadBalancers(ctx context.Context, projectID string) ([]*api.LoadBalancer, error)

	// UpdateLoadBalancer applies the field patch and stamps updated_at in
	// one transaction, returning the new representation.
	UpdateLoadBalancer(ctx context.Context, id string, update *api.LoadBalancerUpdate) (*api.LoadBalancer, error)

	// CompareAndSwapProvisioningStatus atomically moves the root
	// provisioning status to "to" if the current value is one of "from".
	// It returns ErrConflict otherwise. This is the admission gate; it must
	// be a single conditional write, never check-then-act.
	CompareAndSwapProvisioningStatus(ctx context.Context, id string, from []api.ProvisioningStatus, to api.ProvisioningStatus) error

	// SetOperatingStatus records the observed health of the root.
	SetOperatingStatus(ctx context.Context, id string, status api.OperatingStatus) error

	// DeleteLoadBalancer physically removes the load balancer and its
	// subtree. ErrNotFound for an unknown id.
	DeleteLoadBalancer(ctx context.Context, id string) error
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
