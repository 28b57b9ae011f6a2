package api

import (
	"github.com/labstack/echo/v4"
	"github.com/yakoovad/orgstructure/internal/listview"
	"github.com/yakoovad/orgstructure/internal/service"
	"go.uber.org/zap"
	"net/http"
)

// entityRoutes exposes one EntityService as a REST collection.
type entityRoutes[E service.Entity, P service.Patch] struct {
	svc *service.EntityService[E, P]
	// filterParams maps query parameters to columns the list narrows by.
	filterParams  map[string]string
	prepareCreate func(*E) error
	preparePatch  func(*P) error
}

func registerEntity[E service.Entity, P service.Patch](g *echo.Group, acc access, r entityRoutes[E, P]) {
	g.GET("", r.list, acc.read...)
	g.GET("/:code", r.get, acc.read...)
	g.POST("", r.create, acc.write...)
	g.PUT("/:code", r.update, acc.write...)
	g.DELETE("/:code", r.delete, acc.write...)
}

func (r entityRoutes[E, P]) create(e echo.Context) error {
	l := GetLoggerFromContext(e)

	var in E
	steps := []func(echo.Context, *E) error{bindBody[E]}
	if r.prepareCreate != nil {
		steps = append(steps, func(_ echo.Context, in *E) error { return r.prepareCreate(in) })
	}
	if err := ProcessRequest(e, &in, steps...); err != nil {
		l.Warn("invalid request", zap.Error(err))
		return requestError(e, err)
	}

	created, err := r.svc.Create(e.Request().Context(), in)
	if err != nil {
		return transportError(e, err)
	}

	return e.JSON(http.StatusCreated, created)
}

func (r entityRoutes[E, P]) get(e echo.Context) error {
	item, err := r.svc.Get(e.Request().Context(), e.Param("code"))
	if err != nil {
		return transportError(e, err)
	}

	return e.JSON(http.StatusOK, item)
}

func (r entityRoutes[E, P]) list(e echo.Context) error {
	l := GetLoggerFromContext(e)

	q, qerr := listview.ParseQuery(e.QueryParams())
	if qerr != nil {
		l.Warn("invalid list query", zap.Error(qerr))
		return transportError(e, service.NewError(service.ErrorCodeValidationFailed, qerr.Error()))
	}

	var filter map[string]any
	for param, column := range r.filterParams {
		if v := e.QueryParam(param); v != "" {
			if filter == nil {
				filter = map[string]any{}
			}
			filter[column] = v
		}
	}

	items, err := r.svc.List(e.Request().Context(), filter)
	if err != nil {
		return transportError(e, err)
	}

	if q.IsZero() {
		return e.JSON(http.StatusOK, items)
	}

	view, verr := listview.Apply(items, q)
	if verr != nil {
		l.Warn("failed to apply list query", zap.Error(verr))
		return transportError(e, service.NewError(service.ErrorCodeValidationFailed, verr.Error()))
	}
	return e.JSON(http.StatusOK, view)
}

func (r entityRoutes[E, P]) update(e echo.Context) error {
	l := GetLoggerFromContext(e)

	var patch P
	steps := []func(echo.Context, *P) error{bindBody[P]}
	if r.preparePatch != nil {
		steps = append(steps, func(_ echo.Context, p *P) error { return r.preparePatch(p) })
	}
	if err := ProcessRequest(e, &patch, steps...); err != nil {
		l.Warn("invalid request", zap.Error(err))
		return requestError(e, err)
	}

	updated, err := r.svc.Update(e.Request().Context(), e.Param("code"), patch)
	if err != nil {
		return transportError(e, err)
	}

	return e.JSON(http.StatusOK, updated)
}

func (r entityRoutes[E, P]) delete(e echo.Context) error {
	if err := r.svc.Delete(e.Request().Context(), e.Param("code")); err != nil {
		return transportError(e, err)
	}

	return e.JSON(http.StatusOK, messageResponse{Message: r.svc.Name() + " deleted successfully"})
}
