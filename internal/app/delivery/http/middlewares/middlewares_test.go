package middlewares

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/metrics"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "middleware-secret"

type fakeUserUsecase struct {
	admins map[string]bool
}

func (f *fakeUserUsecase) UpsertUser(ctx context.Context, request *requests.UpsertUser) (*responses.UserToken, error) {
	return nil, nil
}
func (f *fakeUserUsecase) FindAll(ctx context.Context) ([]responses.User, error) { return nil, nil }
func (f *fakeUserUsecase) MakeAdmin(ctx context.Context, email string) (*responses.User, error) {
	return nil, nil
}
func (f *fakeUserUsecase) IsAdmin(ctx context.Context, email string) (*responses.AdminStatus, error) {
	return &responses.AdminStatus{Admin: f.admins[email]}, nil
}

func newTestMiddlewares() *Middlewares {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = testSecret
	return NewMiddlewares(zap.NewNop(), &fakeUserUsecase{admins: map[string]bool{"admin@example.com": true}}, internalConfig, nil)
}

func requesterEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(utils.GetRequesterEmail(r.Context())))
	})
}

func signedRequest(t *testing.T, email string, expiry time.Duration) *http.Request {
	t.Helper()
	token, err := utils.GenerateJWT(email, testSecret, expiry)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/booking", nil)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)
	return req
}

func TestAuthenticate(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Authenticate(requesterEcho())

	t.Run("Missing token is unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/booking", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Malformed header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/booking", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Token abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Garbage token is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/booking", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+"not-a-jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Expired token is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequest(t, "ana@example.com", -time.Minute))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Valid token exposes the email", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequest(t, "ana@example.com", time.Hour))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ana@example.com", rec.Body.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Authenticate(m.RequireAdmin(requesterEcho()))

	t.Run("Admin passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequest(t, "admin@example.com", time.Hour))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Non admin is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequest(t, "ana@example.com", time.Hour))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(utils.GetRequestID(r.Context())))
	}))

	t.Run("Generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.True(t, strings.HasPrefix(rec.Body.String(), constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, rec.Body.String(), rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, "client-42", rec.Body.String())
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2, time.Hour, time.Minute, zap.NewNop())
	current := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }
	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPatch, "/booking/1", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:5000"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5002"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5003"), "blocked client stays blocked")
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2:5000"), "other clients are unaffected")
}

func TestMetrics(t *testing.T) {
	t.Run("Latency is observed under the route pattern", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		internalConfig := &config.InternalConfig{}
		m := NewMiddlewares(zap.NewNop(), &fakeUserUsecase{}, internalConfig, metrics.NewBookingMetrics(registry))

		router := chi.NewRouter()
		router.Use(m.Metrics)
		router.Get("/booking/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		for _, id := range []string{"a1", "b2"} {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/booking/"+id, nil))
			assert.Equal(t, http.StatusNotFound, rr.Code)
		}

		families, err := registry.Gather()
		require.NoError(t, err)

		var observed uint64
		for _, family := range families {
			if family.GetName() != "clinic_http_request_duration_seconds" {
				continue
			}
			for _, metric := range family.GetMetric() {
				labels := map[string]string{}
				for _, label := range metric.GetLabel() {
					labels[label.GetName()] = label.GetValue()
				}
				assert.Equal(t, "/booking/{bookingId}", labels["route"])
				assert.Equal(t, "404", labels["status"])
				assert.Equal(t, http.MethodGet, labels["method"])
				observed += metric.GetHistogram().GetSampleCount()
			}
		}
		assert.Equal(t, uint64(2), observed)
	})

	t.Run("Missing collector records nothing", func(t *testing.T) {
		m := newTestMiddlewares()
		handler := m.Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTeapot, rr.Code)
	})
}
