package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestMetricsHandlerExposesHTTPCollectors(t *testing.T) {
	HTTPRequests().WithLabelValues("GET", "/health", "200").Inc()
	HTTPLatency().WithLabelValues("GET", "/health").Observe(0.02)
	HTTPErrors().WithLabelValues("GET", "/missing", "404").Inc()

	app := fiber.New()
	app.Get("/metrics", MetricsHandler())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	text := string(body)
	require.True(t, strings.Contains(text, "ead_http_requests_total"))
	require.True(t, strings.Contains(text, "ead_http_request_duration_seconds"))
	require.True(t, strings.Contains(text, "ead_http_errors_total"))
}
