package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/yakoovad/orgstructure/internal/auth"
	"github.com/yakoovad/orgstructure/internal/listview"
	"github.com/yakoovad/orgstructure/internal/model"
	"github.com/yakoovad/orgstructure/internal/service"
	"github.com/yakoovad/orgstructure/internal/validation"
	"go.uber.org/zap"
	"net/http"
)

type Handler struct {
	catalog *service.Catalog

	healthChecker HealthChecker
	metrics       *Metrics
	issuer        *auth.Issuer
	validator     *validation.Validator

	basePath       string
	allowedOrigins []string

	logger *zap.Logger
}

func NewHandler(logger *zap.Logger, catalog *service.Catalog) *Handler {
	return &Handler{
		catalog:   catalog,
		validator: validation.New(),
		logger:    logger,
	}
}

func (h *Handler) WithHealthChecker(c HealthChecker) *Handler {
	h.healthChecker = c
	return h
}

func (h *Handler) WithMetrics(m *Metrics) *Handler {
	h.metrics = m
	return h
}

// WithIssuer enables bearer token checks on every resource route.
func (h *Handler) WithIssuer(i *auth.Issuer) *Handler {
	h.issuer = i
	return h
}

func (h *Handler) WithValidator(v *validation.Validator) *Handler {
	h.validator = v
	return h
}

func (h *Handler) WithBasePath(p string) *Handler {
	h.basePath = p
	return h
}

// WithAllowedOrigins restricts CORS to origins. Empty allows any origin.
func (h *Handler) WithAllowedOrigins(origins []string) *Handler {
	h.allowedOrigins = origins
	return h
}

// access carries the middleware guarding read and write routes.
type access struct {
	read  []echo.MiddlewareFunc
	write []echo.MiddlewareFunc
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewValidator(h.validator)
	e.Use(middleware.RequestID())
	e.Use(ZapLoggerMiddleware(h.logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(h.corsConfig()))
	if h.metrics != nil {
		e.Use(h.metrics.Middleware())
		e.GET("/metrics", h.metrics.Handler())
	}

	if h.healthChecker != nil {
		e.GET("/health", h.healthChecker.HealthCheck())
	}

	acc := access{
		read:  []echo.MiddlewareFunc{AuthMiddleware(h.issuer, auth.TokenTypeUser, auth.TokenTypeAdmin)},
		write: []echo.MiddlewareFunc{AuthMiddleware(h.issuer, auth.TokenTypeAdmin)},
	}

	api := e.Group(h.basePath)
	c := h.catalog

	be := api.Group("/business-entities")
	registerEntity(be, acc, entityRoutes[model.BusinessEntity, model.BusinessEntityPatch]{svc: c.BusinessEntities})
	registerAssignments(be, acc, assignmentRoutes[model.BusinessEntityUnitPair, model.UnitAssignment]{
		svc:   c.EntityUnitPairs,
		label: "Units",
	})

	bu := api.Group("/business-units")
	registerEntity(bu, acc, entityRoutes[model.BusinessUnit, model.BusinessUnitPatch]{svc: c.BusinessUnits})
	registerAssignments(bu, acc, assignmentRoutes[model.BusinessUnitChannelOfficePair, model.ChannelOfficeAssignment]{
		svc:          c.UnitChannelOfficePairs,
		label:        "Channel offices",
		allowBulk:    true,
	})

	registerEntity(api.Group("/factory-units"), acc, entityRoutes[model.FactoryUnit, model.FactoryUnitPatch]{svc: c.FactoryUnits})

	registerDomain(api, acc, "sales", c.Sales)
	registerDomain(api, acc, "marketing", c.Marketing)
	registerDomain(api, acc, "service", c.Service)

	registerEntity(api.Group("/saved-views"), acc, entityRoutes[model.SavedView, model.SavedViewPatch]{
		svc:          c.SavedViews,
		filterParams: map[string]string{"owner": "owner", "resource": "resource"},
		prepareCreate: func(v *model.SavedView) error {
			q, err := listview.Normalize(v.Query)
			v.Query = q
			return err
		},
		preparePatch: func(p *model.SavedViewPatch) error {
			if p.Query == nil {
				return nil
			}
			q, err := listview.Normalize(*p.Query)
			p.Query = &q
			return err
		},
	})
}

func registerDomain[C service.Entity, CP service.Patch, O service.Entity, OP service.Patch, T service.Entity, TP service.Patch, S service.Entity, SP service.Patch, Pr service.PairRecord, A model.Assignment](
	api *echo.Group,
	acc access,
	prefix string,
	d service.Domain[C, CP, O, OP, T, TP, S, SP, Pr, A],
) {
	teamFilter := map[string]string{"teamCode": "team_code", "userId": "user_id"}

	registerEntity(api.Group("/"+prefix+"-channels"), acc, entityRoutes[C, CP]{svc: d.Channels})

	offices := api.Group("/" + prefix + "-offices")
	registerEntity(offices, acc, entityRoutes[O, OP]{svc: d.Offices})
	registerAssignments(offices, acc, assignmentRoutes[Pr, A]{svc: d.Pairs, label: "Team persons"})

	registerEntity(api.Group("/"+prefix+"-teams"), acc, entityRoutes[T, TP]{svc: d.Teams})
	registerEntity(api.Group("/"+prefix+"-persons"), acc, entityRoutes[S, SP]{svc: d.Persons})
	registerEntity(api.Group("/"+prefix+"-team-managers"), acc, entityRoutes[model.TeamManager, model.TeamManagerPatch]{
		svc:          d.Managers,
		filterParams: teamFilter,
	})
	registerEntity(api.Group("/"+prefix+"-team-employees"), acc, entityRoutes[model.TeamEmployee, model.TeamEmployeePatch]{
		svc:          d.Employees,
		filterParams: teamFilter,
	})
}

func (h *Handler) corsConfig() middleware.CORSConfig {
	cfg := middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}
	if len(h.allowedOrigins) == 0 {
		cfg.AllowOriginFunc = func(string) (bool, error) { return true, nil }
		return cfg
	}
	cfg.AllowOrigins = h.allowedOrigins
	return cfg
}
