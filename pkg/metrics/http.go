package metrics

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Handler instruments an API handler with request count, duration and error
// metrics, labelled by operation.
func Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, request *http.Request) {
		operation := operationFromRequest(request)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		startTime := time.Now()
		next.ServeHTTP(recorder, request)
		duration := time.Since(startTime)

		ResponseTimeHistogram.
			With(prometheus.Labels{operationLabel: operation}).
			Observe(float64(duration.Seconds()))
		RequestCount.
			With(prometheus.Labels{operationLabel: operation}).
			Inc()

		if recorder.status >= http.StatusInternalServerError {
			ErrorCount.Inc()
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func operationFromRequest(request *http.Request) string {
	verb := strings.ToLower(request.Method)

	pathElements := strings.Split(strings.Trim(request.URL.Path, "/"), "/")
	if len(pathElements) == 0 || pathElements[0] == "" {
		return verb
	}

	// The first path element names the resource collection; anything after
	// it addresses a single instance.
	subject := pathElements[0]
	if len(pathElements) > 1 {
		return fmt.Sprintf("%s_%s_instance", verb, subject)
	}
	return fmt.Sprintf("%s_%s", verb, subject)
}
