package web

import (
	"bytes"
	"net/http"

	"BrentDash/internal/domain/models"
	webrender "BrentDash/internal/render/web"
	"BrentDash/internal/usecase"
	xhttp "BrentDash/pkg/http"
	xlogger "BrentDash/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the loaded dashboard as HTML and JSON.
type DashboardHandler struct {
	logger   *xlogger.Logger
	dash     *usecase.Dashboard
	renderer *webrender.Renderer
}

func NewDashboardHandler(logger *xlogger.Logger, dash *usecase.Dashboard, renderer *webrender.Renderer) *DashboardHandler {
	return &DashboardHandler{logger: logger, dash: dash, renderer: renderer}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Page)
	e.GET("/healthz", h.Health)
	g := e.Group("/api")
	g.GET("/view", h.View)
}

// Page renders the HTML dashboard for the filter in the query string.
func (h *DashboardHandler) Page(c echo.Context) error {
	v, verrs := h.view(c)
	if verrs != nil {
		return xhttp.Invalid(c, verrs)
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, v); err != nil {
		h.logger.Error("dashboard render error", xlogger.Error(err))
		return xhttp.Fail(c, xhttp.Internal("ERR_RENDER", "render failed", err))
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// View returns the filtered view model as JSON.
func (h *DashboardHandler) View(c echo.Context) error {
	v, verrs := h.view(c)
	if verrs != nil {
		return xhttp.Invalid(c, verrs)
	}
	return xhttp.OK(c, v)
}

type healthResponse struct {
	Loaded int                    `json:"loaded"`
	Failed int                    `json:"failed"`
	Errors map[models.Name]string `json:"errors,omitempty"`
}

// Health reports how the startup load went. Failed datasets do not make the service unhealthy.
func (h *DashboardHandler) Health(c echo.Context) error {
	snap := h.dash.Snapshot()
	return xhttp.OK(c, healthResponse{
		Loaded: len(snap.Results),
		Failed: len(snap.Errors),
		Errors: snap.Errors,
	})
}

func (h *DashboardHandler) view(c echo.Context) (*usecase.View, []xhttp.ValidationError) {
	req := &models.FilterState{}
	if verrs := xhttp.ReadAndValidateRequest(c, req); verrs != nil {
		h.logger.Warn("dashboard bad filter", xlogger.String("query", c.QueryString()))
		return nil, verrs
	}
	v, err := h.dash.View(*req)
	if err != nil {
		return nil, []xhttp.ValidationError{{Code: "ERR_DATETIME", Message: err.Error()}}
	}
	return v, nil
}
