package httpx

import (
	"context"
	_ "embed"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/you/skyfinder/internal/config"
	"github.com/you/skyfinder/internal/log"
	"github.com/you/skyfinder/internal/models"
)

// SearchPath is where the stub answers search requests.
const SearchPath = "/flights/search"

//go:embed fixtures/offers.json
var defaultFixture []byte

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// SearchHandler answers the search contract from a fixed list of offers.
type SearchHandler struct {
	offers []models.Offer
	delay  time.Duration
	shape  string
}

func NewSearchHandler(cfg config.StubConfig) (*SearchHandler, error) {
	body := defaultFixture
	if cfg.Fixture != "" {
		b, err := os.ReadFile(cfg.Fixture)
		if err != nil {
			return nil, errors.Wrapf(err, "read fixture %q", cfg.Fixture)
		}
		body = b
	}

	offers, err := models.ParseOffers(body)
	if err != nil {
		return nil, errors.Wrap(err, "load fixture")
	}

	shape := cfg.Shape
	if shape == "" {
		shape = config.ShapeObject
	}

	return &SearchHandler{offers: offers, delay: cfg.Delay, shape: shape}, nil
}

func (h *SearchHandler) Search(c echo.Context) error {
	var req models.Criteria
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := wait(c.Request().Context(), h.delay); err != nil {
		return err
	}

	matched := h.match(req)
	log.Logger.Named("stub").Debug("search answered",
		zap.String("from", req.Origin),
		zap.String("to", req.Destination),
		zap.Int("offers", len(matched)))

	if h.shape == config.ShapeList {
		return c.JSON(http.StatusOK, matched)
	}
	return c.JSON(http.StatusOK, map[string]any{"flights": matched})
}

// match keeps offers whose origin, destination and date agree with req. An
// offer that leaves one of them out matches any value.
func (h *SearchHandler) match(req models.Criteria) []models.Offer {
	out := make([]models.Offer, 0, len(h.offers))
	for _, o := range h.offers {
		if !sameCity(o.Text("", "from", "City_from"), req.Origin) {
			continue
		}
		if !sameCity(o.Text("", "to", "city_to"), req.Destination) {
			continue
		}
		if d := o.Text("", "date", "Date"); d != "" && d != req.Date {
			continue
		}
		out = append(out, o)
	}
	return out
}

func sameCity(offer, want string) bool {
	return offer == "" || strings.EqualFold(offer, want)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// NewServer wires the stub routes and middleware.
func NewServer(cfg config.StubConfig) (*echo.Echo, error) {
	h, err := NewSearchHandler(cfg)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	logger := log.Logger.Named("stub")
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.Error(v.Error))
			return nil
		},
	}))

	e.POST(SearchPath, h.Search)
	e.GET("/health", HealthHandler)

	return e, nil
}
