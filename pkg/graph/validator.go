// Package graph validates a submitted load-balancer tree and persists it as
// one atomic unit with freshly minted identifiers and resolved internal
// references.
package graph

import (
	"regexp"
	"strings"

	"github.com/cloudnetlab/lbaas/pkg/api"
	"github.com/cloudnetlab/lbaas/pkg/apierrors"
)

// Validate checks the whole nested create payload before any persistence.
// Any single failure voids the entire graph; no partial subset is ever
// persisted.
func Validate(lc *api.LoadBalancerCreate) error {
	if err := api.ValidateFieldLength("name", lc.Name); err != nil {
		return err
	}
	if err := api.ValidateFieldLength("description", lc.Description); err != nil {
		return err
	}
	for i := range lc.Listeners {
		if err := validateListener(&lc.Listeners[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateListener(l *api.ListenerCreate) error {
	if err := api.ValidateFieldLength("name", l.Name); err != nil {
		return err
	}
	if err := api.ValidateFieldLength("description", l.Description); err != nil {
		return err
	}
	if !api.KnownListenerProtocol(l.Protocol) {
		return apierrors.NewValidation(
			"Invalid input for field/attribute protocol. Value: '%s'. Value should be one of: HTTP, HTTPS, TCP, TERMINATED_HTTPS", l.Protocol,
		)
	}
	if l.ProtocolPort < 1 || l.ProtocolPort > 65535 {
		return apierrors.NewValidation("Validation failure: Protocol port %d is not valid.", l.ProtocolPort)
	}
	for _, containerID := range l.SNIContainers {
		if err := api.ValidateUUID("sni_containers", containerID); err != nil {
			return err
		}
	}
	if l.DefaultPool != nil {
		if err := validatePool(l.DefaultPool); err != nil {
			return err
		}
	}
	for i := range l.L7Policies {
		if err := validateL7Policy(&l.L7Policies[i]); err != nil {
			return err
		}
	}
	return nil
}

func validatePool(p *api.PoolCreate) error {
	if p.ID != "" {
		if err := api.ValidateUUID("id", p.ID); err != nil {
			return err
		}
	}
	if err := api.ValidateFieldLength("name", p.Name); err != nil {
		return err
	}
	if err := api.ValidateFieldLength("description", p.Description); err != nil {
		return err
	}
	if !api.KnownPoolProtocol(p.Protocol) {
		return apierrors.NewValidation(
			"Invalid input for field/attribute protocol. Value: '%s'. Value should be one of: HTTP, HTTPS, TCP", p.Protocol,
		)
	}
	if !api.KnownLBAlgorithm(p.LBAlgorithm) {
		return apierrors.NewValidation(
			"Invalid input for field/attribute lb_algorithm. Value: '%s'. Value should be one of: ROUND_ROBIN, LEAST_CONNECTIONS, SOURCE_IP", p.LBAlgorithm,
		)
	}
	if p.SessionPersistence != nil && !api.KnownSessionPersistenceType(p.SessionPersistence.Type) {
		return apierrors.NewValidation(
			"Invalid input for field/attribute type. Value: '%s'. Value should be one of: SOURCE_IP, HTTP_COOKIE, APP_COOKIE", p.SessionPersistence.Type,
		)
	}
	for i := range p.Members {
		m := &p.Members[i]
		if m.IPAddress == "" {
			return apierrors.NewValidation("Validation failure: Member must contain an ip_address.")
		}
		if m.SubnetID != "" {
			if err := api.ValidateUUID("subnet_id", m.SubnetID); err != nil {
				return err
			}
		}
		if m.ProtocolPort < 1 || m.ProtocolPort > 65535 {
			return apierrors.NewValidation("Validation failure: Protocol port %d is not valid.", m.ProtocolPort)
		}
	}
	if p.HealthMonitor != nil {
		if !api.KnownHealthMonitorType(p.HealthMonitor.Type) {
			return apierrors.NewValidation(
				"Invalid input for field/attribute type. Value: '%s'. Value should be one of: PING, TCP, HTTP, HTTPS", p.HealthMonitor.Type,
			)
		}
	}
	return nil
}

func validateL7Policy(p *api.L7PolicyCreate) error {
	if !api.KnownL7PolicyAction(p.Action) {
		return apierrors.NewValidation(
			"Invalid input for field/attribute action. Value: '%s'. Value should be one of: REDIRECT_TO_POOL, REDIRECT_TO_URL, REJECT", p.Action,
		)
	}
	if p.Position < 1 {
		return apierrors.NewValidation("Validation failure: L7 policy position %d is not valid.", p.Position)
	}

	hasPool := p.RedirectPool != nil || p.RedirectPoolID != ""
	hasURL := p.RedirectURL != ""
	switch p.Action {
	case api.L7PolicyActionRedirectToPool:
		if !hasPool || hasURL {
			return apierrors.NewValidation("Validation failure: L7 policy action %s requires a redirect_pool and no redirect_url.", p.Action)
		}
	case api.L7PolicyActionRedirectToURL:
		if !hasURL || hasPool {
			return apierrors.NewValidation("Validation failure: L7 policy action %s requires a redirect_url and no redirect_pool.", p.Action)
		}
	case api.L7PolicyActionReject:
		if hasPool || hasURL {
			return apierrors.NewValidation("Validation failure: L7 policy action %s allows neither redirect_pool nor redirect_url.", p.Action)
		}
	}
	if p.RedirectPoolID != "" {
		if err := api.ValidateUUID("redirect_pool_id", p.RedirectPoolID); err != nil {
			return err
		}
	}
	if p.RedirectPool != nil {
		if err := validatePool(p.RedirectPool); err != nil {
			return err
		}
	}
	for i := range p.L7Rules {
		if err := validateL7Rule(&p.L7Rules[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateL7Rule checks that the rule value satisfies the grammar of its
// compare type. The check is per rule, independent of siblings.
func validateL7Rule(rule *api.L7RuleCreate) error {
	if !api.KnownL7RuleType(rule.Type) {
		return apierrors.NewValidation(
			"Invalid input for field/attribute type. Value: '%s'. Value should be one of: HOST_NAME, PATH, FILE_TYPE, HEADER, COOKIE", rule.Type,
		)
	}
	if !api.KnownL7RuleCompareType(rule.CompareType) {
		return apierrors.NewValidation(
			"Invalid input for field/attribute compare_type. Value: '%s'. Value should be one of: EQUAL_TO, REGEX, STARTS_WITH, ENDS_WITH, CONTAINS", rule.CompareType,
		)
	}
	if rule.Value == "" {
		return apierrors.NewValidation("Validation failure: L7 rule must contain a value.")
	}
	switch rule.CompareType {
	case api.L7RuleCompareTypeRegex:
		if _, err := regexp.Compile(rule.Value); err != nil {
			return apierrors.NewValidation("Validation failure: L7 rule value %q is not a valid regular expression.", rule.Value)
		}
	default:
		// Equality-style comparisons expect a single token.
		if strings.ContainsAny(rule.Value, " \t\r\n") {
			return apierrors.NewValidation("Validation failure: L7 rule value %q contains whitespace.", rule.Value)
		}
	}
	if (rule.Type == api.L7RuleTypeHeader || rule.Type == api.L7RuleTypeCookie) && rule.Key == "" {
		return apierrors.NewValidation("Validation failure: L7 rule type %s requires a key.", rule.Type)
	}
	return nil
}
