package graph

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/cloudnetlab/lbaas/pkg/api"
	"github.com/cloudnetlab/lbaas/pkg/apierrors"
	"github.com/cloudnetlab/lbaas/pkg/cmp"
	"github.com/cloudnetlab/lbaas/pkg/store"
)

// Builder turns a validated create payload into a persisted load balancer
// tree. Identifier minting and clock access are injectable for tests.
type Builder struct {
	store store.Store
	newID func() string
	now   func() time.Time
}

func NewBuilder(st store.Store) *Builder {
	return &Builder{
		store: st,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Create assembles the full tree bottom-up, mints an id for every entity
// that lacks one, resolves inline redirect-pool back-references, stamps
// every entity (PENDING_CREATE, OFFLINE), and persists the result in a
// single transaction. On a store failure nothing exists afterwards.
func (b *Builder) Create(ctx context.Context, lc *api.LoadBalancerCreate, resolvedVIP api.VIP, projectID string) (*api.LoadBalancer, error) {
	now := b.now()

	lb := &api.LoadBalancer{
		ID:                 b.newID(),
		Name:               lc.Name,
		Description:        lc.Description,
		ProjectID:          projectID,
		AdminStateUp:       cmp.PtrOrDefault(lc.AdminStateUp, true),
		VIP:                resolvedVIP,
		ProvisioningStatus: api.StatusPendingCreate,
		OperatingStatus:    api.OperatingOffline,
		CreatedAt:          now,
		Listeners:          make([]api.Listener, 0, len(lc.Listeners)),
	}

	for i := range lc.Listeners {
		lb.Listeners = append(lb.Listeners, b.buildListener(&lc.Listeners[i], now))
	}

	if err := b.store.CreateLoadBalancerGraph(ctx, lb); err != nil {
		return nil, apierrors.NewInternal(err)
	}
	return lb, nil
}

func (b *Builder) buildListener(lc *api.ListenerCreate, now time.Time) api.Listener {
	listener := api.Listener{
		ID:                 b.newID(),
		Name:               lc.Name,
		Description:        lc.Description,
		Protocol:           lc.Protocol,
		ProtocolPort:       lc.ProtocolPort,
		ConnectionLimit:    lc.ConnectionLimit,
		TLSCertificateID:   lc.TLSCertificateID,
		SNIContainers:      normalizeSNIContainers(lc.SNIContainers),
		Enabled:            cmp.PtrOrDefault(lc.Enabled, true),
		ProvisioningStatus: api.StatusPendingCreate,
		OperatingStatus:    api.OperatingOffline,
		CreatedAt:          now,
		L7Policies:         []api.L7Policy{},
	}

	if lc.DefaultPool != nil {
		pool := b.buildPool(lc.DefaultPool, now)
		listener.DefaultPool = &pool
		listener.DefaultPoolID = pool.ID
	}

	for i := range lc.L7Policies {
		listener.L7Policies = append(listener.L7Policies, b.buildL7Policy(&lc.L7Policies[i], now))
	}
	normalizePositions(listener.L7Policies)

	return listener
}

// buildPool mints a fresh id unless the caller referenced a pre-existing
// pool, in which case the supplied id is preserved verbatim.
func (b *Builder) buildPool(pc *api.PoolCreate, now time.Time) api.Pool {
	id := pc.ID
	if id == "" {
		id = b.newID()
	}
	pool := api.Pool{
		ID:                 id,
		Name:               pc.Name,
		Description:        pc.Description,
		Protocol:           pc.Protocol,
		LBAlgorithm:        pc.LBAlgorithm,
		SessionPersistence: pc.SessionPersistence,
		Enabled:            cmp.PtrOrDefault(pc.Enabled, true),
		OperatingStatus:    api.OperatingOffline,
		CreatedAt:          now,
		Members:            make([]api.Member, 0, len(pc.Members)),
	}

	for i := range pc.Members {
		mc := &pc.Members[i]
		pool.Members = append(pool.Members, api.Member{
			ID:              b.newID(),
			IPAddress:       mc.IPAddress,
			ProtocolPort:    mc.ProtocolPort,
			Weight:          cmp.PtrOrDefault(mc.Weight, 1),
			SubnetID:        mc.SubnetID,
			Enabled:         cmp.PtrOrDefault(mc.Enabled, true),
			OperatingStatus: api.OperatingOffline,
			CreatedAt:       now,
		})
	}

	if pc.HealthMonitor != nil {
		hc := pc.HealthMonitor
		pool.HealthMonitor = &api.HealthMonitor{
			ID:            b.newID(),
			Type:          hc.Type,
			Delay:         hc.Delay,
			Timeout:       hc.Timeout,
			FallThreshold: hc.FallThreshold,
			RiseThreshold: hc.RiseThreshold,
			HTTPMethod:    cmp.ValOrDefault(hc.HTTPMethod, "GET"),
			URLPath:       cmp.ValOrDefault(hc.URLPath, "/"),
			ExpectedCodes: cmp.ValOrDefault(hc.ExpectedCodes, "200"),
			Enabled:       cmp.PtrOrDefault(hc.Enabled, true),
		}
	}

	return pool
}

func (b *Builder) buildL7Policy(pc *api.L7PolicyCreate, now time.Time) api.L7Policy {
	policy := api.L7Policy{
		ID:                 b.newID(),
		Name:               pc.Name,
		Description:        pc.Description,
		Action:             pc.Action,
		Position:           pc.Position,
		RedirectPoolID:     pc.RedirectPoolID,
		RedirectURL:        pc.RedirectURL,
		Enabled:            cmp.PtrOrDefault(pc.Enabled, true),
		ProvisioningStatus: api.StatusPendingCreate,
		OperatingStatus:    api.OperatingOffline,
		L7Rules:            []api.L7Rule{},
	}

	if pc.RedirectPool != nil {
		// An inline redirect pool defined in the same payload receives its
		// minted id, and the back-reference is rewritten to match.
		pool := b.buildPool(pc.RedirectPool, now)
		policy.RedirectPool = &pool
		policy.RedirectPoolID = pool.ID
	}

	for i := range pc.L7Rules {
		rc := &pc.L7Rules[i]
		policy.L7Rules = append(policy.L7Rules, api.L7Rule{
			ID:          b.newID(),
			Type:        rc.Type,
			CompareType: rc.CompareType,
			Value:       rc.Value,
			Key:         rc.Key,
			Invert:      cmp.PtrOrDefault(rc.Invert, false),
		})
	}

	return policy
}

// normalizePositions re-normalizes l7 policy positions to a dense 1..N
// sequence. The sort is stable, so insertion order breaks ties.
func normalizePositions(policies []api.L7Policy) {
	sort.SliceStable(policies, func(i, j int) bool {
		return policies[i].Position < policies[j].Position
	})
	for i := range policies {
		policies[i].Position = i + 1
	}
}

// normalizeSNIContainers de-duplicates and sorts the SNI container ids for
// the output representation. The result is never nil.
func normalizeSNIContainers(containers []string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, c := range containers {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
