package api

// LoadBalancerCreate is the nested create payload. Identifier, timestamp and
// status fields are never accepted on input; the only caller-supplied ids are
// graph back-references to pre-existing pools.
type LoadBalancerCreate struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProjectID    string `json:"project_id"`
	AdminStateUp *bool  `json:"admin_state_up"`

	// VIP fields are pointers so that an absent field and an empty string can
	// be told apart: absent means "not specified", empty fails UUID
	// validation.
	VIPAddress   *string `json:"vip_address"`
	VIPSubnetID  *string `json:"vip_subnet_id"`
	VIPNetworkID *string `json:"vip_network_id"`
	VIPPortID    *string `json:"vip_port_id"`

	Listeners []ListenerCreate `json:"listeners"`
}

type ListenerCreate struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Protocol         string   `json:"protocol"`
	ProtocolPort     int      `json:"protocol_port"`
	ConnectionLimit  *int     `json:"connection_limit"`
	TLSCertificateID string   `json:"tls_certificate_id"`
	SNIContainers    []string `json:"sni_containers"`
	Enabled          *bool    `json:"enabled"`

	DefaultPool *PoolCreate      `json:"default_pool"`
	L7Policies  []L7PolicyCreate `json:"l7policies"`
}

type PoolCreate struct {
	// ID references a pre-existing pool. If set, the id is preserved verbatim
	// and the pool is not treated as a creation.
	ID string `json:"id"`

	Name               string              `json:"name"`
	Description        string              `json:"description"`
	Protocol           string              `json:"protocol"`
	LBAlgorithm        string              `json:"lb_algorithm"`
	SessionPersistence *SessionPersistence `json:"session_persistence"`
	Enabled            *bool               `json:"enabled"`

	Members       []MemberCreate       `json:"members"`
	HealthMonitor *HealthMonitorCreate `json:"health_monitor"`
}

type MemberCreate struct {
	IPAddress    string `json:"ip_address"`
	ProtocolPort int    `json:"protocol_port"`
	Weight       *int   `json:"weight"`
	SubnetID     string `json:"subnet_id"`
	Enabled      *bool  `json:"enabled"`
}

type HealthMonitorCreate struct {
	Type          string `json:"type"`
	Delay         int    `json:"delay"`
	Timeout       int    `json:"timeout"`
	FallThreshold int    `json:"fall_threshold"`
	RiseThreshold int    `json:"rise_threshold"`
	HTTPMethod    string `json:"http_method"`
	URLPath       string `json:"url_path"`
	ExpectedCodes string `json:"expected_codes"`
	Enabled       *bool  `json:"enabled"`
}

type L7PolicyCreate struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Action         string         `json:"action"`
	Position       int            `json:"position"`
	RedirectPool   *PoolCreate    `json:"redirect_pool"`
	RedirectPoolID string         `json:"redirect_pool_id"`
	RedirectURL    string         `json:"redirect_url"`
	Enabled        *bool          `json:"enabled"`
	L7Rules        []L7RuleCreate `json:"l7rules"`
}

type L7RuleCreate struct {
	Type        string `json:"type"`
	CompareType string `json:"compare_type"`
	Value       string `json:"value"`
	Key         string `json:"key"`
	Invert      *bool  `json:"invert"`
}

// LoadBalancerUpdate is the field-level patch accepted on PUT. The VIP
// placement is immutable; the fields are present only so that an attempt to
// change them can be rejected instead of silently dropped.
type LoadBalancerUpdate struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	AdminStateUp *bool   `json:"admin_state_up"`

	VIPAddress   *string `json:"vip_address"`
	VIPSubnetID  *string `json:"vip_subnet_id"`
	VIPNetworkID *string `json:"vip_network_id"`
	VIPPortID    *string `json:"vip_port_id"`
}

// HasVIPChange reports whether the patch touches any immutable VIP field.
func (u *LoadBalancerUpdate) HasVIPChange() bool {
	return u.VIPAddress != nil || u.VIPSubnetID != nil || u.VIPNetworkID != nil || u.VIPPortID != nil
}
