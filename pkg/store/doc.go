//go:generate mockgen -destination=mocks.go -package store github.com/cloudnetlab/lbaas/pkg/store Store

// store is the transactional persistence capability consumed by the control
// plane. The contract matters more than the mechanics: graph creation is
// all-or-nothing, and the provisioning-status compare-and-swap is the single
// atomic admission primitive that serializes mutations on an aggregate.
package store
