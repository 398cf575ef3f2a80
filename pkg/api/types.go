// Package api defines the resource model of the load-balancer control plane:
// the persisted entities, their status enums, and the create/update payloads
// accepted on the wire.
package api

import "time"

// VIP is the virtual IP placement a load balancer advertises.
// All fields are fully resolved once the load balancer has been created.
type VIP struct {
	Address   string `json:"vip_address"`
	SubnetID  string `json:"vip_subnet_id"`
	NetworkID string `json:"vip_network_id"`
	PortID    string `json:"vip_port_id"`
}

// LoadBalancer is the aggregate root. It exclusively owns its listeners and,
// through them, pools, members, health monitors and L7 policies. The
// provisioning status on the root gates all mutations of the subtree.
type LoadBalancer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProjectID    string `json:"project_id"`
	AdminStateUp bool   `json:"admin_state_up"`
	VIP

	ProvisioningStatus ProvisioningStatus `json:"provisioning_status"`
	OperatingStatus    OperatingStatus    `json:"operating_status"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`

	Listeners []Listener `json:"listeners"`
}

// Listener belongs to exactly one load balancer.
type Listener struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Protocol         string   `json:"protocol"`
	ProtocolPort     int      `json:"protocol_port"`
	ConnectionLimit  *int     `json:"connection_limit"`
	TLSCertificateID string   `json:"tls_certificate_id"`
	SNIContainers    []string `json:"sni_containers"`
	Enabled          bool     `json:"enabled"`

	DefaultPoolID string     `json:"default_pool_id,omitempty"`
	DefaultPool   *Pool      `json:"default_pool,omitempty"`
	L7Policies    []L7Policy `json:"l7policies"`

	ProvisioningStatus ProvisioningStatus `json:"provisioning_status"`
	OperatingStatus    OperatingStatus    `json:"operating_status"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// SessionPersistence configures how a pool pins clients to members.
type SessionPersistence struct {
	Type       string `json:"type"`
	CookieName string `json:"cookie_name"`
}

// Pool is a child of the load balancer, referenced either as a listener's
// default pool or as an L7 policy redirect target. It is never shared across
// load balancers.
type Pool struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	Protocol           string              `json:"protocol"`
	LBAlgorithm        string              `json:"lb_algorithm"`
	SessionPersistence *SessionPersistence `json:"session_persistence"`
	Enabled            bool                `json:"enabled"`

	Members       []Member       `json:"members"`
	HealthMonitor *HealthMonitor `json:"health_monitor,omitempty"`

	OperatingStatus OperatingStatus `json:"operating_status"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Member is a backend endpoint in exactly one pool.
type Member struct {
	ID           string `json:"id"`
	IPAddress    string `json:"ip_address"`
	ProtocolPort int    `json:"protocol_port"`
	Weight       int    `json:"weight"`
	SubnetID     string `json:"subnet_id"`
	Enabled      bool   `json:"enabled"`

	OperatingStatus OperatingStatus `json:"operating_status"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// HealthMonitor probes the members of its pool. A pool has at most one.
type HealthMonitor struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Delay         int    `json:"delay"`
	Timeout       int    `json:"timeout"`
	FallThreshold int    `json:"fall_threshold"`
	RiseThreshold int    `json:"rise_threshold"`
	HTTPMethod    string `json:"http_method"`
	URLPath       string `json:"url_path"`
	ExpectedCodes string `json:"expected_codes"`
	Enabled       bool   `json:"enabled"`
}

// L7Policy is a layer-7 routing directive evaluated within a listener in
// position order.
type L7Policy struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Action         string `json:"action"`
	Position       int    `json:"position"`
	RedirectPoolID string `json:"redirect_pool_id,omitempty"`
	RedirectPool   *Pool  `json:"redirect_pool,omitempty"`
	RedirectURL    string `json:"redirect_url"`
	Enabled        bool   `json:"enabled"`

	L7Rules []L7Rule `json:"l7rules"`

	ProvisioningStatus ProvisioningStatus `json:"provisioning_status"`
	OperatingStatus    OperatingStatus    `json:"operating_status"`
}

// L7Rule is a matching predicate of an L7 policy.
type L7Rule struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	CompareType string `json:"compare_type"`
	Value       string `json:"value"`
	Key         string `json:"key"`
	Invert      bool   `json:"invert"`
}
