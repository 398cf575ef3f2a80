//go:generate mockgen -destination=mocks.go -package netapi github.com/cloudnetlab/lbaas/pkg/netapi Client

// netapi is the capability interface over the external network provider. The
// control plane only ever queries subnets, networks and ports by id; it never
// mutates the fabric.
package netapi
