package api

// ProvisioningStatus is the lifecycle state of whether a resource's desired
// configuration has been applied.
type ProvisioningStatus string

const (
	StatusPendingCreate ProvisioningStatus = "PENDING_CREATE"
	StatusPendingUpdate ProvisioningStatus = "PENDING_UPDATE"
	StatusPendingDelete ProvisioningStatus = "PENDING_DELETE"
	StatusActive        ProvisioningStatus = "ACTIVE"
	StatusError         ProvisioningStatus = "ERROR"
	StatusDeleted       ProvisioningStatus = "DELETED"
)

// OperatingStatus is the observed health state of a resource, independent of
// its provisioning status.
type OperatingStatus string

const (
	OperatingOnline    OperatingStatus = "ONLINE"
	OperatingOffline   OperatingStatus = "OFFLINE"
	OperatingDegraded  OperatingStatus = "DEGRADED"
	OperatingError     OperatingStatus = "ERROR"
	OperatingDraining  OperatingStatus = "DRAINING"
	OperatingNoMonitor OperatingStatus = "NO_MONITOR"
)
