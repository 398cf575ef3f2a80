package api

// Clone returns a deep copy of the load balancer and its whole owned subtree.
// The store hands out copies so that callers can never mutate persisted state
// through a returned pointer.
func (lb *LoadBalancer) Clone() *LoadBalancer {
	if lb == nil {
		return nil
	}
	out := *lb
	if lb.UpdatedAt != nil {
		t := *lb.UpdatedAt
		out.UpdatedAt = &t
	}
	out.Listeners = make([]Listener, len(lb.Listeners))
	for i := range lb.Listeners {
		out.Listeners[i] = *lb.Listeners[i].clone()
	}
	return &out
}

func (l *Listener) clone() *Listener {
	out := *l
	if l.ConnectionLimit != nil {
		v := *l.ConnectionLimit
		out.ConnectionLimit = &v
	}
	if l.UpdatedAt != nil {
		t := *l.UpdatedAt
		out.UpdatedAt = &t
	}
	out.SNIContainers = append([]string(nil), l.SNIContainers...)
	out.DefaultPool = l.DefaultPool.clone()
	out.L7Policies = make([]L7Policy, len(l.L7Policies))
	for i := range l.L7Policies {
		p := l.L7Policies[i]
		p.RedirectPool = p.RedirectPool.clone()
		p.L7Rules = append([]L7Rule(nil), p.L7Rules...)
		out.L7Policies[i] = p
	}
	return &out
}

func (p *Pool) clone() *Pool {
	if p == nil {
		return nil
	}
	out := *p
	if p.SessionPersistence != nil {
		sp := *p.SessionPersistence
		out.SessionPersistence = &sp
	}
	if p.HealthMonitor != nil {
		hm := *p.HealthMonitor
		out.HealthMonitor = &hm
	}
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		out.UpdatedAt = &t
	}
	out.Members = make([]Member, len(p.Members))
	for i := range p.Members {
		m := p.Members[i]
		if m.UpdatedAt != nil {
			t := *m.UpdatedAt
			m.UpdatedAt = &t
		}
		out.Members[i] = m
	}
	return &out
}
