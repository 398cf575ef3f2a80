package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	"github.com/cloudnetlab/lbaas/pkg/api"
	"github.com/cloudnetlab/lbaas/pkg/store"
)

func seedLB(id, projectID string, status api.ProvisioningStatus) *api.LoadBalancer {
	return &api.LoadBalancer{
		ID:                 id,
		Name:               "lb-" + id,
		ProjectID:          projectID,
		ProvisioningStatus: status,
		OperatingStatus:    api.OperatingOffline,
		Listeners: []api.Listener{{
			ID:                 "listener-" + id,
			Protocol:           api.ProtocolHTTP,
			ProtocolPort:       80,
			ProvisioningStatus: status,
			OperatingStatus:    api.OperatingOffline,
		}},
	}
}

var _ = Describe("MemStore", func() {
	var (
		st  *MemStore
		ctx context.Context
	)

	BeforeEach(func() {
		st = New()
		ctx = context.Background()
	})

	Describe("CreateLoadBalancerGraph", func() {
		It("persists the whole tree and hands out copies", func() {
			lb := seedLB("a", "p1", api.StatusPendingCreate)
			Expect(st.CreateLoadBalancerGraph(ctx, lb)).To(Succeed())

			// Mutating the caller's tree after the create must not leak into
			// the persisted state.
			lb.Name = "changed"
			lb.Listeners[0].ProtocolPort = 9999

			got, err := st.GetLoadBalancer(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("lb-a"))
			Expect(got.Listeners[0].ProtocolPort).To(Equal(80))
		})

		It("rejects a duplicate id", func() {
			Expect(st.CreateLoadBalancerGraph(ctx, seedLB("a", "p1", api.StatusPendingCreate))).To(Succeed())
			err := st.CreateLoadBalancerGraph(ctx, seedLB("a", "p1", api.StatusPendingCreate))
			Expect(store.IsConflict(err)).To(BeTrue())
		})
	})

	Describe("GetLoadBalancer", func() {
		It("returns not found for an unknown id", func() {
			_, err := st.GetLoadBalancer(ctx, "missing")
			Expect(store.IsNotFound(err)).To(BeTrue())
		})

		It("isolates callers from each other through copies", func() {
			Expect(st.CreateLoadBalancerGraph(ctx, seedLB("a", "p1", api.StatusPendingCreate))).To(Succeed())

			first, err := st.GetLoadBalancer(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			first.Listeners[0].Name = "tampered"

			second, err := st.GetLoadBalancer(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Listeners[0].Name).To(BeEmpty())
		})
	})

	Describe("ListLoadBalancers", func() {
		It("lists in insertion order", func() {
			for _, id := range []string{"c", "a", "b"} {
				Expect(st.CreateLoadBalancerGraph(ctx, seedLB(id, "p1", api.StatusActive))).To(Succeed())
			}

			lbs, err := st.ListLoadBalancers(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(lbs).To(HaveLen(3))
			Expect(lbs[0].ID).To(Equal("c"))
			Expect(lbs[1].ID).To(Equal("a"))
			Expect(lbs[2].ID).To(Equal("b"))
		})

		It("filters by project", func() {
			Expect(st.CreateLoadBalancerGraph(ctx, seedLB("a", "p1", api.StatusActive))).To(Succeed())
			Expect(st.CreateLoadBalancerGraph(ctx, seedLB("b", "p2", api.StatusActive))).To(Succeed())

			lbs, err := st.ListLoadBalancers(ctx, "p2")
			Expect(err).NotTo(HaveOccurred())
			Expect(lbs).To(HaveLen(1))
			Expect(lbs[0].ID).To(Equal("b"))
		})

		It("returns an empty non-nil slice when nothing matches", func() {
			lbs, err := st.ListLoadBalancers(ctx, "p1")
			Expect(err).NotTo(HaveOccurred())
			Expect(lbs).NotTo(BeNil())
			Expect(lbs).To(BeEmpty())
		})
	})

	Describe("UpdateLoadBalancer", func() {
		It("applies only the set fields and stamps the update time", func() {
			now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
			st.now = func() time.Time { return now }
			Expect(st.CreateLoadBalancerGraph(ctx, seedLB("a", "p1", api.StatusActive))).To(Succeed())

			lb, err := st.UpdateLoadBalancer(ctx, "a", &api.LoadBalancerUpdate{
				Name: ptr.To("renamed"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(lb.Name).To(Equal("renamed"))
			Expect(lb.Description).To(BeEmpty())
			Expect(lb.UpdatedAt).NotTo(BeNil())
			Expect(lb.UpdatedAt.Equal(now)).To(BeTrue())
		})

		It("returns not found for an unknown id", func() {
			_, err := st.UpdateLoadBalancer(ctx, "missing", &api.LoadBalancerUpdate{})
			Expect(store.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("CompareAndSwapProvisioningStatus", func() {
		It("swaps when the current status is in the allowed set", func() {
			Expect(st.CreateLoadBalancerGraph(ctx, seedLB("a", "p1", api.StatusActive))).To(Succeed())

			err := st.CompareAndSwapProvisioningStatus(
				ctx, "a",
				[]api.ProvisioningStatus{api.StatusActive, api.StatusError},
				api.StatusPendingUpdate,
			)
			Expect(err).NotTo(HaveOccurred())

			lb, err := st.GetLoadBalancer(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(lb.ProvisioningStatus).To(Equal(api.StatusPendingUpdate))
		})

		It("conflicts when the current status is not in the allowed set", func() {
			Expect(st.CreateLoadBalancerGraph(ctx, seedLB("a", "p1", api.StatusPendingCreate))).To(Succeed())

			err := st.CompareAndSwapProvisioningStatus(
				ctx, "a",
				[]api.ProvisioningStatus{api.StatusActive},
				api.StatusPendingUpdate,
			)
			Expect(store.IsConflict(err)).To(BeTrue())
		})

		It("admits exactly one of many concurrent callers", func() {
			Expect(st.CreateLoadBalancerGraph(ctx, seedLB("a", "p1", api.StatusActive))).To(Succeed())

			const callers = 32
			var wg sync.WaitGroup
			results := make(chan error, callers)
			for i := 0; i < callers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					results <- st.CompareAndSwapProvisioningStatus(
						ctx, "a",
						[]api.ProvisioningStatus{api.StatusActive},
						api.StatusPendingDelete,
					)
				}()
			}
			wg.Wait()
			close(results)

			winners := 0
			for err := range results {
				if err == nil {
					winners++
				} else {
					Expect(store.IsConflict(err)).To(BeTrue())
				}
			}
			Expect(winners).To(Equal(1))
		})
	})

	Describe("SetOperatingStatus", func() {
		It("updates the observed health", func() {
			Expect(st.CreateLoadBalancerGraph(ctx, seedLB("a", "p1", api.StatusActive))).To(Succeed())
			Expect(st.SetOperatingStatus(ctx, "a", api.OperatingOnline)).To(Succeed())

			lb, err := st.GetLoadBalancer(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(lb.OperatingStatus).To(Equal(api.OperatingOnline))
		})
	})

	Describe("DeleteLoadBalancer", func() {
		It("removes the load balancer from lookups and listings", func() {
			Expect(st.CreateLoadBalancerGraph(ctx, seedLB("a", "p1", api.StatusError))).To(Succeed())
			Expect(st.CreateLoadBalancerGraph(ctx, seedLB("b", "p1", api.StatusActive))).To(Succeed())

			Expect(st.DeleteLoadBalancer(ctx, "a")).To(Succeed())

			_, err := st.GetLoadBalancer(ctx, "a")
			Expect(store.IsNotFound(err)).To(BeTrue())

			lbs, err := st.ListLoadBalancers(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(lbs).To(HaveLen(1))
			Expect(lbs[0].ID).To(Equal("b"))
		})

		It("returns not found for an unknown id", func() {
			Expect(store.IsNotFound(st.DeleteLoadBalancer(ctx, "missing"))).To(BeTrue())
		})
	})

	It("keeps a stable order across many inserts and deletes", func() {
		for i := 0; i < 10; i++ {
			id := fmt.Sprintf("lb-%d", i)
			Expect(st.CreateLoadBalancerGraph(ctx, seedLB(id, "p1", api.StatusActive))).To(Succeed())
		}
		Expect(st.DeleteLoadBalancer(ctx, "lb-3")).To(Succeed())
		Expect(st.DeleteLoadBalancer(ctx, "lb-7")).To(Succeed())

		lbs, err := st.ListLoadBalancers(ctx, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(lbs).To(HaveLen(8))
		Expect(lbs[0].ID).To(Equal("lb-0"))
		Expect(lbs[3].ID).To(Equal("lb-4"))
		Expect(lbs[7].ID).To(Equal("lb-9"))
	})
})
