package httpapi_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/katalvlaran/lexsimplex/httpapi"
	"github.com/katalvlaran/lexsimplex/lpio"
	"github.com/katalvlaran/lexsimplex/row"
	"github.com/katalvlaran/lexsimplex/simplex"
)

const (
	boundedBody = `{
		"tableau": [
			{"coefficients": [1, 0, 1, 1], "constant": 1},
			{"coefficients": [0, 1, 2, 1], "constant": 1}
		],
		"costs": [0, 0, 1, 2],
		"relative_costs": {"coefficients": [0, 0, 0, 0], "constant": 0},
		"solution": [1, 1, 0, 0]
	}`
	unboundedBody = `{
		"tableau": [
			{"coefficients": [1, 0, 0, 1], "constant": 1},
			{"coefficients": [0, 1, 0, 1], "constant": 1}
		],
		"costs": [0, 0, 1, 2],
		"solution": [1, 1, 0, 0]
	}`
	infeasibleBody = `{
		"tableau": [
			{"coefficients": [1, 0, 1, 1], "constant": 1},
			{"coefficients": [0, 1, 2, 1], "constant": 1}
		],
		"costs": [0, 0, 1, 2],
		"solution": [1, 1, 0, -1]
	}`
)

func do(h http.Handler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(rec *httptest.ResponseRecorder) lpio.Response {
	resp, err := lpio.DecodeResponse(rec.Body, lpio.JSON)
	Expect(err).NotTo(HaveOccurred())
	return resp
}

var _ = Describe("Server", func() {
	var (
		reg *prometheus.Registry
		srv *httpapi.Server
	)

	BeforeEach(func() {
		reg = prometheus.NewRegistry()
		srv = httpapi.New(httpapi.WithRegistry(reg), httpapi.WithLogger(logr.Discard()))
	})

	Context("CORS", func() {
		It("should set the headers on every route", func() {
			for _, method := range []string{http.MethodGet, http.MethodOptions, http.MethodPost} {
				rec := do(srv, method, boundedBody)
				Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"), method)
				Expect(rec.Header().Get("Access-Control-Allow-Methods")).To(Equal("POST, GET, OPTIONS"), method)
				Expect(rec.Header().Get("Access-Control-Allow-Headers")).To(Equal("*"), method)
				Expect(rec.Header().Get("Access-Control-Allow-Credentials")).To(Equal("true"), method)
			}
		})
	})

	Context("GET and OPTIONS", func() {
		It("should greet on GET", func() {
			rec := do(srv, http.MethodGet, "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			var s string
			Expect(json.Unmarshal(rec.Body.Bytes(), &s)).To(Succeed())
			Expect(s).To(Equal("Hello world"))
		})

		It("should answer the preflight", func() {
			rec := do(srv, http.MethodOptions, "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))
		})

		It("should reject other methods", func() {
			rec := do(srv, http.MethodPut, boundedBody)
			Expect(rec.Code).To(Equal(http.StatusMethodNotAllowed))
		})
	})

	Context("POST", func() {
		It("should return the optimal row", func() {
			rec := do(srv, http.MethodPost, boundedBody)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"LinearProgram":{"coefficients":[0,0,0,1],"constant":2}}`))

			Expect(testutil.ToFloat64(srv.Metrics().Solves.WithLabelValues("optimal"))).To(Equal(1.0))
			Expect(testutil.CollectAndCount(srv.Metrics().Iterations)).To(Equal(1))
		})

		It("should report unboundedness as an outcome", func() {
			rec := do(srv, http.MethodPost, unboundedBody)
			Expect(rec.Code).To(Equal(http.StatusOK))
			resp := decodeResponse(rec)
			Expect(resp.Outcome()).To(Equal(lpio.OutcomeUnbound))
			Expect(*resp.Unbound).To(Equal(lpio.MessageUnbound))
			Expect(testutil.ToFloat64(srv.Metrics().Solves.WithLabelValues("unbound"))).To(Equal(1.0))
		})

		It("should report the first failing admission check", func() {
			rec := do(srv, http.MethodPost, infeasibleBody)
			Expect(rec.Code).To(Equal(http.StatusOK))
			resp := decodeResponse(rec)
			Expect(resp.Outcome()).To(Equal(lpio.OutcomeError))
			Expect(*resp.Error).To(ContainSubstring(simplex.ErrInfeasible.Error()))
			Expect(testutil.ToFloat64(srv.Metrics().Solves.WithLabelValues("rejected"))).To(Equal(1.0))
		})

		It("should reject an empty record", func() {
			for _, body := range []string{`{}`, `null`} {
				rec := do(srv, http.MethodPost, body)
				Expect(rec.Code).To(Equal(http.StatusOK), body)
				resp := decodeResponse(rec)
				Expect(resp.Outcome()).To(Equal(lpio.OutcomeError), body)
				Expect(*resp.Error).To(ContainSubstring(simplex.ErrLengthMismatch.Error()), body)
			}
		})

		It("should answer 400 for a malformed body", func() {
			rec := do(srv, http.MethodPost, `{"tableau": [`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			resp := decodeResponse(rec)
			Expect(resp.Outcome()).To(Equal(lpio.OutcomeError))
			Expect(testutil.ToFloat64(srv.Metrics().Solves.WithLabelValues("malformed"))).To(Equal(1.0))
		})

		It("should answer 400 for an oversized body", func() {
			small := httpapi.New(httpapi.WithMaxBodyBytes(16))
			rec := do(small, http.MethodPost, boundedBody)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should pass solver options through", func() {
			limited := httpapi.New(httpapi.WithSolverOptions(simplex.WithMaxIterations(1)))
			rec := do(limited, http.MethodPost, boundedBody)
			resp := decodeResponse(rec)
			Expect(resp.Outcome()).To(Equal(lpio.OutcomeError))
			Expect(*resp.Error).To(ContainSubstring(simplex.ErrIterationLimit.Error()))
		})

		It("should answer 503 when the request is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(boundedBody)).WithContext(ctx)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusServiceUnavailable))
		})

		It("should solve concurrent requests independently", func() {
			done := make(chan lpio.Response, 8)
			for i := 0; i < 8; i++ {
				go func() {
					defer GinkgoRecover()
					done <- decodeResponse(do(srv, http.MethodPost, boundedBody))
				}()
			}
			for i := 0; i < 8; i++ {
				var resp lpio.Response
				Eventually(done).Should(Receive(&resp))
				Expect(*resp.LinearProgram).To(Equal(row.New([]float64{0, 0, 0, 1}, 2)))
			}
			Expect(testutil.ToFloat64(srv.Metrics().Solves.WithLabelValues("optimal"))).To(Equal(8.0))
		})
	})

	Context("/metrics", func() {
		It("should expose the solver collectors", func() {
			do(srv, http.MethodPost, boundedBody)
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`lexsimplex_solves_total{outcome="optimal"} 1`))
			Expect(rec.Body.String()).To(ContainSubstring("lexsimplex_solve_duration_seconds"))
		})

		It("should panic on duplicate registration", func() {
			Expect(func() { httpapi.New(httpapi.WithRegistry(reg)) }).To(Panic())
		})
	})

	Context("ListenAndServe", func() {
		It("should stop when the context is done", func() {
			l, err := net.Listen("tcp", "127.0.0.1:0")
			Expect(err).NotTo(HaveOccurred())
			addr := l.Addr().String()
			Expect(l.Close()).To(Succeed())

			ctx, cancel := context.WithCancel(context.Background())
			errCh := make(chan error, 1)
			go func() {
				errCh <- httpapi.ListenAndServe(ctx, addr, srv, time.Second, logr.Discard())
			}()

			Eventually(func() error {
				resp, err := http.Get("http://" + addr + "/")
				if err != nil {
					return err
				}
				return resp.Body.Close()
			}, 2*time.Second, 20*time.Millisecond).Should(Succeed())

			cancel()
			Eventually(errCh, 2*time.Second).Should(Receive(BeNil()))
		})
	})
})
