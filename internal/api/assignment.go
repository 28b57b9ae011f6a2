package api

import (
	"github.com/labstack/echo/v4"
	"github.com/yakoovad/orgstructure/internal/model"
	"github.com/yakoovad/orgstructure/internal/service"
	"go.uber.org/zap"
	"net/http"
)

// assignmentRoutes exposes a PairService under /:code/assignment of its owner.
type assignmentRoutes[P service.PairRecord, A model.Assignment] struct {
	svc *service.PairService[P, A]
	// label is the plural used in success messages, e.g. "Units".
	label string
	// allowBulk lets PUT carry {"assignments": [...]} to add several pairs at once.
	allowBulk bool
}

// assignmentUpdate accepts either a from/to change or, when allowed, a full set.
type assignmentUpdate[A model.Assignment] struct {
	Assignments *[]A `json:"assignments"`
	From        *A   `json:"from"`
	To          *A   `json:"to"`
}

func registerAssignments[P service.PairRecord, A model.Assignment](g *echo.Group, acc access, r assignmentRoutes[P, A]) {
	g.GET("/assignments", r.listAll, acc.read...)
	g.GET("/:code/assignment", r.listByOwner, acc.read...)
	g.POST("/:code/assignment", r.assign, acc.write...)
	g.PUT("/:code/assignment", r.update, acc.write...)
	g.DELETE("/:code/assignment", r.delete, acc.write...)
}

func (r assignmentRoutes[P, A]) assign(e echo.Context) error {
	l := GetLoggerFromContext(e)

	var a A
	if err := ProcessRequest(e, &a, bindBody[A]); err != nil {
		l.Warn("invalid request", zap.Error(err))
		return requestError(e, err)
	}

	pair, err := r.svc.Assign(e.Request().Context(), e.Param("code"), a)
	if err != nil {
		return transportError(e, err)
	}

	return e.JSON(http.StatusOK, messageResponse{
		Message: r.label + " assigned successfully",
		Data:    pair,
	})
}

func (r assignmentRoutes[P, A]) update(e echo.Context) error {
	l := GetLoggerFromContext(e)
	ctx := e.Request().Context()
	owner := e.Param("code")

	var body assignmentUpdate[A]
	if err := ProcessRequest(e, &body, bindBody[assignmentUpdate[A]]); err != nil {
		l.Warn("invalid request", zap.Error(err))
		return requestError(e, err)
	}

	if r.allowBulk && body.Assignments != nil {
		set := model.AssignmentSet[A]{Assignments: *body.Assignments}
		if err := ProcessRequest(e, &set, validateBody[model.AssignmentSet[A]]); err != nil {
			return requestError(e, err)
		}

		pairs, err := r.svc.Upsert(ctx, owner, set.Assignments)
		if err != nil {
			return transportError(e, err)
		}
		return e.JSON(http.StatusOK, messageResponse{
			Message: r.label + " updated successfully",
			Data:    pairs,
		})
	}

	if body.From == nil || body.To == nil {
		return transportError(e, service.NewError(service.ErrorCodeValidationFailed, "from and to are required"))
	}

	pair, err := r.svc.Update(ctx, owner, model.AssignmentChange[A]{From: *body.From, To: *body.To})
	if err != nil {
		return transportError(e, err)
	}

	return e.JSON(http.StatusOK, messageResponse{
		Message: r.label + " updated successfully",
		Data:    pair,
	})
}

func (r assignmentRoutes[P, A]) listByOwner(e echo.Context) error {
	pairs, err := r.svc.ListByOwner(e.Request().Context(), e.Param("code"))
	if err != nil {
		return transportError(e, err)
	}

	return e.JSON(http.StatusOK, pairs)
}

func (r assignmentRoutes[P, A]) listAll(e echo.Context) error {
	pairs, err := r.svc.ListAll(e.Request().Context())
	if err != nil {
		return transportError(e, err)
	}

	return e.JSON(http.StatusOK, pairs)
}

func (r assignmentRoutes[P, A]) delete(e echo.Context) error {
	l := GetLoggerFromContext(e)

	var a A
	if err := ProcessRequest(e, &a, bindBody[A]); err != nil {
		l.Warn("invalid request", zap.Error(err))
		return requestError(e, err)
	}

	if err := r.svc.Delete(e.Request().Context(), e.Param("code"), a); err != nil {
		return transportError(e, err)
	}

	return e.JSON(http.StatusOK, messageResponse{Message: r.svc.Name() + " deleted successfully"})
}
