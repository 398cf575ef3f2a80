package api

const (
	ProtocolHTTP            = "HTTP"
	ProtocolHTTPS           = "HTTPS"
	ProtocolTCP             = "TCP"
	ProtocolTerminatedHTTPS = "TERMINATED_HTTPS"
)

const (
	LBAlgorithmRoundRobin       = "ROUND_ROBIN"
	LBAlgorithmLeastConnections = "LEAST_CONNECTIONS"
	LBAlgorithmSourceIP         = "SOURCE_IP"
)

const (
	SessionPersistenceSourceIP   = "SOURCE_IP"
	SessionPersistenceHTTPCookie = "HTTP_COOKIE"
	SessionPersistenceAppCookie  = "APP_COOKIE"
)

const (
	HealthMonitorPing  = "PING"
	HealthMonitorTCP   = "TCP"
	HealthMonitorHTTP  = "HTTP"
	HealthMonitorHTTPS = "HTTPS"
)

const (
	L7PolicyActionRedirectToPool = "REDIRECT_TO_POOL"
	L7PolicyActionRedirectToURL  = "REDIRECT_TO_URL"
	L7PolicyActionReject         = "REJECT"
)

const (
	L7RuleTypeHostName = "HOST_NAME"
	L7RuleTypePath     = "PATH"
	L7RuleTypeFileType = "FILE_TYPE"
	L7RuleTypeHeader   = "HEADER"
	L7RuleTypeCookie   = "COOKIE"
)

const (
	L7RuleCompareTypeEqualTo    = "EQUAL_TO"
	L7RuleCompareTypeRegex      = "REGEX"
	L7RuleCompareTypeStartsWith = "STARTS_WITH"
	L7RuleCompareTypeEndsWith   = "ENDS_WITH"
	L7RuleCompareTypeContains   = "CONTAINS"
)

var listenerProtocols = map[string]struct{}{
	ProtocolHTTP:            {},
	ProtocolHTTPS:           {},
	ProtocolTCP:             {},
	ProtocolTerminatedHTTPS: {},
}

var poolProtocols = map[string]struct{}{
	ProtocolHTTP:  {},
	ProtocolHTTPS: {},
	ProtocolTCP:   {},
}

var lbAlgorithms = map[string]struct{}{
	LBAlgorithmRoundRobin:       {},
	LBAlgorithmLeastConnections: {},
	LBAlgorithmSourceIP:         {},
}

var sessionPersistenceTypes = map[string]struct{}{
	SessionPersistenceSourceIP:   {},
	SessionPersistenceHTTPCookie: {},
	SessionPersistenceAppCookie:  {},
}

var healthMonitorTypes = map[string]struct{}{
	HealthMonitorPing:  {},
	HealthMonitorTCP:   {},
	HealthMonitorHTTP:  {},
	HealthMonitorHTTPS: {},
}

var l7PolicyActions = map[string]struct{}{
	L7PolicyActionRedirectToPool: {},
	L7PolicyActionRedirectToURL:  {},
	L7PolicyActionReject:         {},
}

var l7RuleTypes = map[string]struct{}{
	L7RuleTypeHostName: {},
	L7RuleTypePath:     {},
	L7RuleTypeFileType: {},
	L7RuleTypeHeader:   {},
	L7RuleTypeCookie:   {},
}

var l7RuleCompareTypes = map[string]struct{}{
	L7RuleCompareTypeEqualTo:    {},
	L7RuleCompareTypeRegex:      {},
	L7RuleCompareTypeStartsWith: {},
	L7RuleCompareTypeEndsWith:   {},
	L7RuleCompareTypeContains:   {},
}

func KnownListenerProtocol(p string) bool {
	_, ok := listenerProtocols[p]
	return ok
}

func KnownPoolProtocol(p string) bool {
	_, ok := poolProtocols[p]
	return ok
}

func KnownLBAlgorithm(a string) bool {
	_, ok := lbAlgorithms[a]
	return ok
}

func KnownSessionPersistenceType(t string) bool {
	_, ok := sessionPersistenceTypes[t]
	return ok
}

func KnownHealthMonitorType(t string) bool {
	_, ok := healthMonitorTypes[t]
	return ok
}

func KnownL7PolicyAction(a string) bool {
	_, ok := l7PolicyActions[a]
	return ok
}

func KnownL7RuleType(t string) bool {
	_, ok := l7RuleTypes[t]
	return ok
}

func KnownL7RuleCompareType(t string) bool {
	_, ok := l7RuleCompareTypes[t]
	return ok
}
