// Package status implements the provisioning-status state machine of a load
// balancer aggregate. The root status is the single concurrency gate: a
// mutation is admitted by atomically swapping the status to the matching
// PENDING_* value, and everything else is rejected with a conflict.
package status

import (
	"context"
	"fmt"

	"github.com/cloudnetlab/lbaas/pkg/api"
	"github.com/cloudnetlab/lbaas/pkg/apierrors"
	"github.com/cloudnetlab/lbaas/pkg/store"
)

// transitions is the full state machine. PENDING_* states admit no mutation;
// they are advanced only by the external reconciler through ReportStatus.
var transitions = map[api.ProvisioningStatus][]api.ProvisioningStatus{
	api.StatusPendingCreate: {api.StatusActive, api.StatusError},
	api.StatusActive:        {api.StatusPendingUpdate, api.StatusPendingDelete},
	api.StatusError:         {api.StatusPendingUpdate, api.StatusPendingDelete, api.StatusDeleted},
	api.StatusPendingUpdate: {api.StatusActive, api.StatusError},
	api.StatusPendingDelete: {api.StatusDeleted},
	api.StatusDeleted:       {},
}

type Ledger struct {
	store store.Store
}

func NewLedger(st store.Store) *Ledger {
	return &Ledger{store: st}
}

// CanTransition reports whether the state machine permits from -> to.
func CanTransition(from, to api.ProvisioningStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// sources returns every state from which the state machine can reach target.
func sources(target api.ProvisioningStatus) []api.ProvisioningStatus {
	var from []api.ProvisioningStatus
	for state, nexts := range transitions {
		for _, next := range nexts {
			if next == target {
				from = append(from, state)
				break
			}
		}
	}
	return from
}

// AdmitMutation is the admission gate for update and delete requests. The
// target must be PENDING_UPDATE or PENDING_DELETE; the swap succeeds for at
// most one of any number of concurrent callers.
func (l *Ledger) AdmitMutation(ctx context.Context, lbID string, target api.ProvisioningStatus) error {
	if target != api.StatusPendingUpdate && target != api.StatusPendingDelete {
		return fmt.Errorf("status %s is not a mutation target", target)
	}
	err := l.store.CompareAndSwapProvisioningStatus(ctx, lbID, sources(target), target)
	switch {
	case store.IsNotFound(err):
		return apierrors.NewNotFound("Load Balancer %s not found.", lbID)
	case store.IsConflict(err):
		return apierrors.NewConflict("Load Balancer %s is immutable and cannot be updated.", lbID)
	case err != nil:
		return apierrors.NewInternal(err)
	}
	return nil
}

// MarkDeleted terminally deletes a load balancer that is in ERROR without an
// observable PENDING_DELETE in between. ERROR is already non-busy, so the
// delete needs no reconciler confirmation.
func (l *Ledger) MarkDeleted(ctx context.Context, lbID string) error {
	err := l.store.CompareAndSwapProvisioningStatus(
		ctx, lbID, []api.ProvisioningStatus{api.StatusError}, api.StatusDeleted,
	)
	switch {
	case store.IsNotFound(err):
		return apierrors.NewNotFound("Load Balancer %s not found.", lbID)
	case store.IsConflict(err):
		return apierrors.NewConflict("Load Balancer %s is immutable and cannot be updated.", lbID)
	case err != nil:
		return apierrors.NewInternal(err)
	}
	return nil
}

// ReportStatus is the inbound interface for the external reconciler. Empty
// values leave the corresponding status untouched. Illegal provisioning
// transitions are rejected so a stale reconciler cannot corrupt the machine.
func (l *Ledger) ReportStatus(ctx context.Context, lbID string, prov api.ProvisioningStatus, oper api.OperatingStatus) error {
	if prov != "" {
		err := l.store.CompareAndSwapProvisioningStatus(ctx, lbID, sources(prov), prov)
		switch {
		case store.IsNotFound(err):
			return apierrors.NewNotFound("Load Balancer %s not found.", lbID)
		case store.IsConflict(err):
			return apierrors.NewConflict("load balancer %s cannot transition to %s", lbID, prov)
		case err != nil:
			return apierrors.NewInternal(err)
		}
	}
	if oper != "" {
		if err := l.store.SetOperatingStatus(ctx, lbID, oper); err != nil {
			if store.IsNotFound(err) {
				return apierrors.NewNotFound("Load Balancer %s not found.", lbID)
			}
			return apierrors.NewInternal(err)
		}
	}
	return nil
}
