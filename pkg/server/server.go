// Package server is the thin HTTP surface over the provisioning service. It
// routes, decodes the body envelopes, and maps the error taxonomy to HTTP
// status codes; all resource semantics live below it.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/cloudnetlab/lbaas/pkg/api"
	"github.com/cloudnetlab/lbaas/pkg/apierrors"
	"github.com/cloudnetlab/lbaas/pkg/metrics"
	"github.com/cloudnetlab/lbaas/pkg/provisioning"
)

const (
	projectHeader = "X-Project-ID"
	rolesHeader   = "X-Roles"
)

type Server struct {
	svc *provisioning.Service
}

func NewServer(svc *provisioning.Service) *Server {
	return &Server{svc: svc}
}

// Router wires the resource endpoints. Every handler is instrumented.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/loadbalancers", s.listLoadBalancers).Methods(http.MethodGet)
	r.HandleFunc("/loadbalancers", s.createLoadBalancer).Methods(http.MethodPost)
	r.HandleFunc("/loadbalancers/{id}", s.getLoadBalancer).Methods(http.MethodGet)
	r.HandleFunc("/loadbalancers/{id}", s.updateLoadBalancer).Methods(http.MethodPut)
	r.HandleFunc("/loadbalancers/{id}", s.deleteLoadBalancer).Methods(http.MethodDelete)
	return metrics.Handler(r)
}

// Run serves the API until the context is cancelled.
func Run(ctx context.Context, cfg Config, handler http.Handler) error {
	klog.Infof("starting load balancer API on address %s", cfg.ListenAddress)

	serv := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout(),
		ReadHeaderTimeout: cfg.ReadTimeout(),
		WriteTimeout:      cfg.WriteTimeout(),
	}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := serv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		klog.Info("shutdown load balancer API")
		return serv.Shutdown(gCtx)
	})

	return g.Wait()
}

// callerFromRequest consumes the opaque identity the authorization
// collaborator injected into the request.
func callerFromRequest(r *http.Request) provisioning.Caller {
	caller := provisioning.Caller{ProjectID: r.Header.Get(projectHeader)}
	for _, role := range strings.Split(r.Header.Get(rolesHeader), ",") {
		if strings.TrimSpace(role) == "admin" {
			caller.Admin = true
			break
		}
	}
	return caller
}

func (s *Server) listLoadBalancers(w http.ResponseWriter, r *http.Request) {
	caller := callerFromRequest(r)
	lbs, err := s.svc.List(r.Context(), caller, r.URL.Query().Get("project_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"loadbalancers": lbs})
}

func (s *Server) createLoadBalancer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		LoadBalancer *api.LoadBalancerCreate `json:"loadbalancer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.LoadBalancer == nil {
		writeError(w, apierrors.NewValidation("Invalid input: request body must contain a loadbalancer."))
		return
	}

	lb, err := s.svc.Create(r.Context(), callerFromRequest(r), body.LoadBalancer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"loadbalancer": lb})
}

func (s *Server) getLoadBalancer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	lb, err := s.svc.Get(r.Context(), callerFromRequest(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"loadbalancer": lb})
}

func (s *Server) updateLoadBalancer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var body struct {
		LoadBalancer *api.LoadBalancerUpdate `json:"loadbalancer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.LoadBalancer == nil {
		writeError(w, apierrors.NewValidation("Invalid input: request body must contain a loadbalancer."))
		return
	}

	lb, err := s.svc.Update(r.Context(), callerFromRequest(r), id, body.LoadBalancer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"loadbalancer": lb})
}

func (s *Server) deleteLoadBalancer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.svc.Delete(r.Context(), callerFromRequest(r), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		klog.Warningf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := apierrors.StatusCode(err)
	fault := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the log, not on the wire.
		klog.Errorf("request failed: %v", err)
		fault = "Internal server error"
	}
	writeJSON(w, status, map[string]string{"faultstring": fault})
}
