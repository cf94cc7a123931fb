package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c00p75/fitness-league-sub000/internal/rpc"
	"github.com/c00p75/fitness-league-sub000/internal/schema"
)

func TestObserveCallCountsByPathAndCode(t *testing.T) {
	m := New()

	m.ObserveCall("goals.getGoals", rpc.CodeOK, 3*time.Millisecond)
	m.ObserveCall("goals.getGoals", rpc.CodeOK, 5*time.Millisecond)
	m.ObserveCall("goals.getGoals", rpc.CodeUnauthorized, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calls.WithLabelValues("goals.getGoals", "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues("goals.getGoals", "UNAUTHORIZED")))
}

func TestMetricsEndpoint(t *testing.T) {
	m := New()
	m.ObserveCall("exercises.getCategories", rpc.CodeOK, time.Millisecond)

	app := fiber.New()
	app.Use(m.Inflight())
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, `fitness_rpc_calls_total{code="OK",path="exercises.getCategories"} 1`)
	assert.Contains(t, text, "fitness_http_inflight_requests 1")
}

func TestMetricsEndpointAfterProcedureCalls(t *testing.T) {
	m := New()
	router := rpc.NewRouter(map[string]rpc.Namespace{
		"exercises": {
			"getAlpha": rpc.PublicQuery(func(context.Context, *rpc.Context, schema.Empty) ([]string, error) {
				return []string{"a"}, nil
			}),
			"getBravo": rpc.PublicQuery(func(context.Context, *rpc.Context, schema.Empty) ([]string, error) {
				return []string{"b"}, nil
			}),
		},
	})

	app := fiber.New()
	app.Post("/api/trpc/:path", rpc.NewHTTPHandler(router, rpc.HTTPOptions{Observe: m.ObserveCall}))
	app.Get("/metrics", m.Handler())

	for _, path := range []string{"exercises.getAlpha", "exercises.getBravo", "exercises.getBravo"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/trpc/"+path, nil))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, `fitness_rpc_calls_total{code="OK",path="exercises.getAlpha"} 1`)
	assert.Contains(t, text, `fitness_rpc_calls_total{code="OK",path="exercises.getBravo"} 2`)
}
