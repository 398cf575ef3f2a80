package metrics

import (
	"net/http"
	"net/http/httptest"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Metrics", func() {
	DescribeTable("operationFromRequest", func(method, path, expected string) {
		requestURL, _ := url.Parse("https://host" + path)
		request := &http.Request{
			Method: method,
			URL:    requestURL,
		}
		op := operationFromRequest(request)
		Expect(op).To(Equal(expected))
	},
		Entry("root path", "GET", "/", "get"),
		Entry("list load balancers", "GET", "/loadbalancers", "get_loadbalancers"),
		Entry("create load balancer", "POST", "/loadbalancers", "post_loadbalancers"),
		Entry("get load balancer instance", "GET", "/loadbalancers/id", "get_loadbalancers_instance"),
		Entry("update load balancer instance", "PUT", "/loadbalancers/id", "put_loadbalancers_instance"),
		Entry("delete load balancer instance", "DELETE", "/loadbalancers/id", "delete_loadbalancers_instance"),
	)

	Describe("Handler", func() {
		It("passes the request through and preserves the response", func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
			})
			recorder := httptest.NewRecorder()
			Handler(next).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/loadbalancers", nil))
			Expect(recorder.Code).To(Equal(http.StatusCreated))
		})
	})
})
