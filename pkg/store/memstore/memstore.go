// Package memstore is the in-memory reference implementation of the store
// capability. A single mutex stands in for the transaction scope of a real
// database: every operation observes and leaves a consistent aggregate, and
// the compare-and-swap is a genuine conditional write.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/cloudnetlab/lbaas/pkg/api"
	"github.com/cloudnetlab/lbaas/pkg/store"
)

type MemStore struct {
	mu  sync.Mutex
	lbs map[string]*api.LoadBalancer

	// order keeps list results stable by insertion.
	order []string

	now func() time.Time
}

var _ store.Store = (*MemStore)(nil)

func New() *MemStore {
	return &MemStore{
		lbs: map[string]*api.LoadBalancer{},
		now: time.Now,
	}
}

func (s *MemStore) CreateLoadBalancerGraph(_ context.Context, lb *api.LoadBalancer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.lbs[lb.ID]; exists {
		return store.ErrConflict
	}
	s.lbs[lb.ID] = lb.Clone()
	s.order = append(s.order, lb.ID)
	return nil
}

func (s *MemStore) GetLoadBalancer(_ context.Context, id string) (*api.LoadBalancer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lb, ok := s.lbs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return lb.Clone(), nil
}

func (s *MemStore) ListLoadBalancers(_ context.Context, projectID string) ([]*api.LoadBalancer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*api.LoadBalancer{}
	for _, id := range s.order {
		lb := s.lbs[id]
		if projectID != "" && lb.ProjectID != projectID {
			continue
		}
		out = append(out, lb.Clone())
	}
	return out, nil
}

func (s *MemStore) UpdateLoadBalancer(_ context.Context, id string, update *api.LoadBalancerUpdate) (*api.LoadBalancer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lb, ok := s.lbs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if update.Name != nil {
		lb.Name = *update.Name
	}
	if update.Description != nil {
		lb.Description = *update.Description
	}
	if update.AdminStateUp != nil {
		lb.AdminStateUp = *update.AdminStateUp
	}
	now := s.now()
	lb.UpdatedAt = &now
	return lb.Clone(), nil
}

func (s *MemStore) CompareAndSwapProvisioningStatus(
	_ context.Context, id string, from []api.ProvisioningStatus, to api.ProvisioningStatus,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lb, ok := s.lbs[id]
	if !ok {
		return store.ErrNotFound
	}
	for _, status := range from {
		if lb.ProvisioningStatus == status {
			lb.ProvisioningStatus = to
			return nil
		}
	}
	return store.ErrConflict
}

func (s *MemStore) SetOperatingStatus(_ context.Context, id string, status api.OperatingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lb, ok := s.lbs[id]
	if !ok {
		return store.ErrNotFound
	}
	lb.OperatingStatus = status
	return nil
}

func (s *MemStore) DeleteLoadBalancer(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lbs[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.lbs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
