package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/spc-hr/hrms-gateway/internal/api/metrics"
	"github.com/spc-hr/hrms-gateway/internal/infrastructure/upstream"
)

// maxProxyBody bounds proxied request bodies; the HRMS API carries JSON
// documents, not uploads.
const maxProxyBody = 1 << 20

// Forwarder relays a raw request to the HRMS backend.
type Forwarder interface {
	Forward(ctx context.Context, method, path string, query url.Values, body []byte) (*upstream.ForwardResult, error)
}

// ProxyHandler forwards dashboard resource calls (/api/...) to the backend
// with the session's bearer token attached. Authorization happens before
// this handler, in the Gate middleware; the backend's answer is relayed
// verbatim, envelope and all.
type ProxyHandler struct {
	upstream Forwarder
}

func NewProxyHandler(fwd Forwarder) *ProxyHandler {
	return &ProxyHandler{upstream: fwd}
}

// Forward handles any method on a gated /api route.
func (h *ProxyHandler) Forward(c echo.Context) error {
	req := c.Request()

	body, err := io.ReadAll(io.LimitReader(req.Body, maxProxyBody+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable payload")
	}
	if len(body) > maxProxyBody {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "payload too large")
	}

	path := strings.TrimPrefix(req.URL.Path, "/api")
	res, err := h.upstream.Forward(req.Context(), req.Method, path, c.QueryParams(), body)
	if err != nil {
		metrics.ProxyRequestsTotal.WithLabelValues(req.Method, "error").Inc()
		return err
	}
	metrics.ProxyRequestsTotal.WithLabelValues(req.Method, statusClass(res.Status)).Inc()

	contentType := res.ContentType
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}
	return c.Blob(res.Status, contentType, res.Body)
}

func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}
