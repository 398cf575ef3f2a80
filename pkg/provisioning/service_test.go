package provisioning

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/ptr"

	"github.com/cloudnetlab/lbaas/pkg/api"
	"github.com/cloudnetlab/lbaas/pkg/apierrors"
	"github.com/cloudnetlab/lbaas/pkg/netapi"
	"github.com/cloudnetlab/lbaas/pkg/store/memstore"
)

var _ = Describe("Service", func() {
	var (
		st     *memstore.MemStore
		client *netapi.MockClient
		svc    *Service
		ctx    context.Context
	)

	const (
		subnetID  = "145dc144-dbaf-4a9b-9850-a1e4fb7b45c3"
		networkID = "39b57fd8-50e7-4a1c-9d1e-5b6989e09b52"
	)

	owner := Caller{ProjectID: "project-1"}
	stranger := Caller{ProjectID: "project-2"}
	admin := Caller{ProjectID: "project-admin", Admin: true}

	expectSubnet := func() {
		client.EXPECT().GetSubnet(gomock.Any(), subnetID).
			Return(&netapi.Subnet{ID: subnetID, NetworkID: networkID, IPVersion: 4}, nil).
			AnyTimes()
	}

	minimalCreate := func() *api.LoadBalancerCreate {
		return &api.LoadBalancerCreate{
			Name:        "web",
			VIPSubnetID: ptr.To(subnetID),
		}
	}

	BeforeEach(func() {
		st = memstore.New()
		ctrl := gomock.NewController(GinkgoT())
		client = netapi.NewMockClient(ctrl)
		svc = NewService(st, client)
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("creates a full graph at pending create and offline", func() {
			expectSubnet()
			req := minimalCreate()
			req.Listeners = []api.ListenerCreate{{
				Protocol:     api.ProtocolHTTP,
				ProtocolPort: 80,
				DefaultPool: &api.PoolCreate{
					Protocol:    api.ProtocolHTTP,
					LBAlgorithm: api.LBAlgorithmRoundRobin,
					Members:     []api.MemberCreate{{IPAddress: "192.0.2.10", ProtocolPort: 8080}},
				},
			}}

			lb, err := svc.Create(ctx, owner, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(lb.ProjectID).To(Equal("project-1"))
			Expect(lb.SubnetID).To(Equal(subnetID))
			Expect(lb.NetworkID).To(Equal(networkID))
			Expect(lb.ProvisioningStatus).To(Equal(api.StatusPendingCreate))
			Expect(lb.OperatingStatus).To(Equal(api.OperatingOffline))
			Expect(lb.Listeners[0].ProvisioningStatus).To(Equal(api.StatusPendingCreate))
			Expect(lb.Listeners[0].DefaultPool.Members[0].Weight).To(Equal(1))

			got, err := svc.Get(ctx, owner, lb.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(lb))
		})

		It("keeps an explicit project id over the caller's", func() {
			expectSubnet()
			req := minimalCreate()
			req.ProjectID = "project-owned-elsewhere"

			lb, err := svc.Create(ctx, admin, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(lb.ProjectID).To(Equal("project-owned-elsewhere"))
		})

		It("rejects a payload with no placement field", func() {
			_, err := svc.Create(ctx, owner, &api.LoadBalancerCreate{Name: "web"})
			Expect(err).To(MatchError("Validation failure: VIP must contain one of: port_id, network_id, subnet_id."))
			Expect(apierrors.IsValidation(err)).To(BeTrue())
		})

		It("rejects a malformed subnet id before any lookup", func() {
			_, err := svc.Create(ctx, owner, &api.LoadBalancerCreate{
				VIPSubnetID: ptr.To("not-a-uuid"),
			})
			Expect(err).To(MatchError(
				"Invalid input for field/attribute vip_subnet_id. Value: 'not-a-uuid'. Value should be UUID format",
			))
		})

		It("turns a dangling subnet reference into a validation failure", func() {
			client.EXPECT().GetSubnet(gomock.Any(), subnetID).Return(nil, netapi.ErrorNotFound)

			_, err := svc.Create(ctx, owner, minimalCreate())
			Expect(err).To(MatchError("Subnet " + subnetID + " not found."))
			Expect(apierrors.IsValidation(err)).To(BeTrue())
		})

		It("leaves no resource behind after a validation failure", func() {
			req := minimalCreate()
			req.Name = strings.Repeat("x", 256)

			_, err := svc.Create(ctx, owner, req)
			Expect(apierrors.IsValidation(err)).To(BeTrue())

			lbs, listErr := svc.List(ctx, owner, "")
			Expect(listErr).NotTo(HaveOccurred())
			Expect(lbs).To(BeEmpty())
		})

		It("rejects an invalid nested rule without persisting anything", func() {
			req := minimalCreate()
			req.Listeners = []api.ListenerCreate{{
				Protocol:     api.ProtocolHTTP,
				ProtocolPort: 80,
				L7Policies: []api.L7PolicyCreate{{
					Action:   api.L7PolicyActionReject,
					Position: 1,
					L7Rules: []api.L7RuleCreate{{
						Type:        api.L7RuleTypeHostName,
						CompareType: api.L7RuleCompareTypeEqualTo,
						Value:       "local host",
					}},
				}},
			}}

			_, err := svc.Create(ctx, owner, req)
			Expect(err).To(MatchError(`Validation failure: L7 rule value "local host" contains whitespace.`))

			lbs, listErr := svc.List(ctx, owner, "")
			Expect(listErr).NotTo(HaveOccurred())
			Expect(lbs).To(BeEmpty())
		})
	})

	Describe("Get", func() {
		It("hides a foreign load balancer behind not found", func() {
			expectSubnet()
			lb, err := svc.Create(ctx, owner, minimalCreate())
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Get(ctx, stranger, lb.ID)
			Expect(err).To(MatchError("Load Balancer " + lb.ID + " not found."))
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
		})

		It("lets an admin read any project's load balancer", func() {
			expectSubnet()
			lb, err := svc.Create(ctx, owner, minimalCreate())
			Expect(err).NotTo(HaveOccurred())

			got, err := svc.Get(ctx, admin, lb.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(lb.ID))
		})

		It("returns not found for an id that is not a uuid", func() {
			_, err := svc.Get(ctx, owner, "definitely-not-a-uuid")
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			expectSubnet()
			_, err := svc.Create(ctx, owner, minimalCreate())
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.Create(ctx, stranger, minimalCreate())
			Expect(err).NotTo(HaveOccurred())
		})

		It("scopes a non-admin caller to their own project", func() {
			lbs, err := svc.List(ctx, owner, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(lbs).To(HaveLen(1))
			Expect(lbs[0].ProjectID).To(Equal("project-1"))
		})

		It("ignores a non-admin's project filter", func() {
			lbs, err := svc.List(ctx, owner, "project-2")
			Expect(err).NotTo(HaveOccurred())
			Expect(lbs).To(HaveLen(1))
			Expect(lbs[0].ProjectID).To(Equal("project-1"))
		})

		It("lets an admin see every project", func() {
			lbs, err := svc.List(ctx, admin, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(lbs).To(HaveLen(2))
		})

		It("lets an admin narrow to one project", func() {
			lbs, err := svc.List(ctx, admin, "project-2")
			Expect(err).NotTo(HaveOccurred())
			Expect(lbs).To(HaveLen(1))
			Expect(lbs[0].ProjectID).To(Equal("project-2"))
		})
	})

	Describe("Update", func() {
		var lbID string

		BeforeEach(func() {
			expectSubnet()
			lb, err := svc.Create(ctx, owner, minimalCreate())
			Expect(err).NotTo(HaveOccurred())
			lbID = lb.ID
		})

		It("conflicts while the load balancer is still being created", func() {
			_, err := svc.Update(ctx, owner, lbID, &api.LoadBalancerUpdate{Name: ptr.To("renamed")})
			Expect(err).To(MatchError("Load Balancer " + lbID + " is immutable and cannot be updated."))
			Expect(apierrors.IsConflict(err)).To(BeTrue())

			lb, getErr := svc.Get(ctx, owner, lbID)
			Expect(getErr).NotTo(HaveOccurred())
			Expect(lb.Name).To(Equal("web"))
			Expect(lb.UpdatedAt).To(BeNil())
		})

		It("applies the patch once the load balancer is active", func() {
			Expect(svc.Ledger().ReportStatus(ctx, lbID, api.StatusActive, api.OperatingOnline)).To(Succeed())

			lb, err := svc.Update(ctx, owner, lbID, &api.LoadBalancerUpdate{
				Name:        ptr.To("renamed"),
				Description: ptr.To("updated"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(lb.Name).To(Equal("renamed"))
			Expect(lb.Description).To(Equal("updated"))
			Expect(lb.ProvisioningStatus).To(Equal(api.StatusPendingUpdate))
			Expect(lb.UpdatedAt).NotTo(BeNil())
		})

		It("rejects any change to the vip placement", func() {
			Expect(svc.Ledger().ReportStatus(ctx, lbID, api.StatusActive, "")).To(Succeed())

			_, err := svc.Update(ctx, owner, lbID, &api.LoadBalancerUpdate{
				VIPAddress: ptr.To("10.0.0.99"),
			})
			Expect(err).To(MatchError("Validation failure: VIP fields cannot be updated."))
			Expect(apierrors.IsValidation(err)).To(BeTrue())

			// The gate was never taken, so the load balancer stays active.
			lb, getErr := svc.Get(ctx, owner, lbID)
			Expect(getErr).NotTo(HaveOccurred())
			Expect(lb.ProvisioningStatus).To(Equal(api.StatusActive))
		})

		It("rejects an overlong name before taking the gate", func() {
			Expect(svc.Ledger().ReportStatus(ctx, lbID, api.StatusActive, "")).To(Succeed())

			_, err := svc.Update(ctx, owner, lbID, &api.LoadBalancerUpdate{
				Name: ptr.To(strings.Repeat("x", 256)),
			})
			Expect(apierrors.IsValidation(err)).To(BeTrue())

			lb, getErr := svc.Get(ctx, owner, lbID)
			Expect(getErr).NotTo(HaveOccurred())
			Expect(lb.ProvisioningStatus).To(Equal(api.StatusActive))
		})

		It("hides a foreign load balancer behind not found", func() {
			_, err := svc.Update(ctx, stranger, lbID, &api.LoadBalancerUpdate{Name: ptr.To("renamed")})
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		var lbID string

		BeforeEach(func() {
			expectSubnet()
			lb, err := svc.Create(ctx, owner, minimalCreate())
			Expect(err).NotTo(HaveOccurred())
			lbID = lb.ID
		})

		It("conflicts while the load balancer is still being created", func() {
			err := svc.Delete(ctx, owner, lbID)
			Expect(apierrors.IsConflict(err)).To(BeTrue())
		})

		It("moves an active load balancer to pending delete and keeps it readable", func() {
			Expect(svc.Ledger().ReportStatus(ctx, lbID, api.StatusActive, "")).To(Succeed())
			Expect(svc.Delete(ctx, owner, lbID)).To(Succeed())

			lb, err := svc.Get(ctx, owner, lbID)
			Expect(err).NotTo(HaveOccurred())
			Expect(lb.ProvisioningStatus).To(Equal(api.StatusPendingDelete))
		})

		It("removes a load balancer in error immediately", func() {
			Expect(svc.Ledger().ReportStatus(ctx, lbID, api.StatusError, "")).To(Succeed())
			Expect(svc.Delete(ctx, owner, lbID)).To(Succeed())

			_, err := svc.Get(ctx, owner, lbID)
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
		})

		It("disappears once the reconciler confirms a pending delete", func() {
			Expect(svc.Ledger().ReportStatus(ctx, lbID, api.StatusActive, "")).To(Succeed())
			Expect(svc.Delete(ctx, owner, lbID)).To(Succeed())
			Expect(svc.Ledger().ReportStatus(ctx, lbID, api.StatusDeleted, "")).To(Succeed())

			lb, err := svc.Get(ctx, owner, lbID)
			Expect(err).NotTo(HaveOccurred())
			Expect(lb.ProvisioningStatus).To(Equal(api.StatusDeleted))
		})

		It("hides a foreign load balancer behind not found", func() {
			err := svc.Delete(ctx, stranger, lbID)
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
		})
	})
})
