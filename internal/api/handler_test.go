package api

import (
	"context"
	"encoding/json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yakoovad/orgstructure/internal/auth"
	"github.com/yakoovad/orgstructure/internal/model"
	"github.com/yakoovad/orgstructure/internal/repository"
	"github.com/yakoovad/orgstructure/internal/service"
	"github.com/yakoovad/orgstructure/internal/validation"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type testStore struct {
	entities *service.MockRepository[model.BusinessEntity]
	units    *service.MockRepository[model.BusinessUnit]
	factory  *service.MockRepository[model.FactoryUnit]
	pairs    *service.MockRepository[model.BusinessEntityUnitPair]
}

func newTestServer(t *testing.T, issuer *auth.Issuer) (*echo.Echo, testStore) {
	t.Helper()

	ts := testStore{
		entities: new(service.MockRepository[model.BusinessEntity]),
		units:    new(service.MockRepository[model.BusinessUnit]),
		factory:  new(service.MockRepository[model.FactoryUnit]),
		pairs:    new(service.MockRepository[model.BusinessEntityUnitPair]),
	}
	t.Cleanup(func() {
		ts.entities.AssertExpectations(t)
		ts.units.AssertExpectations(t)
		ts.factory.AssertExpectations(t)
		ts.pairs.AssertExpectations(t)
	})

	store := &repository.Store{
		BusinessEntities: ts.entities,
		BusinessUnits:    ts.units,
		FactoryUnits:     ts.factory,
		EntityUnitPairs:  ts.pairs,
	}
	v := validation.New()
	catalog := service.NewCatalog(new(service.MockTransactor), v, store)

	h := NewHandler(zap.NewNop(), catalog).
		WithValidator(v).
		WithBasePath("/ms/api")
	if issuer != nil {
		h.WithIssuer(issuer)
	}

	e := echo.New()
	h.RegisterRoutes(e)
	return e, ts
}

func do(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func testEntity(code, name, city string) *model.BusinessEntity {
	return &model.BusinessEntity{
		BusinessEntityCode: code,
		BusinessEntityName: name,
		Address: model.Address{
			Street1: "12 Park Street",
			City:    city,
			State:   "Maharashtra",
			Country: "India",
			PinCode: "411001",
		},
	}
}

// entityBody renders a valid business entity request, changed by edits.
func entityBody(edits ...func(map[string]any)) string {
	body := map[string]any{
		"businessEntityCode": "BE01",
		"businessEntityName": "Acme",
		"street1":            "12 Park Street",
		"city":               "Pune",
		"state":              "Maharashtra",
		"country":            "India",
		"pinCode":            "411001",
	}
	for _, edit := range edits {
		edit(body)
	}
	raw, _ := json.Marshal(body)
	return string(raw)
}

func TestCreateBusinessEntity(t *testing.T) {
	e, ts := newTestServer(t, nil)

	ts.entities.On("Create", mock.Anything, mock.Anything).
		Return(testEntity("BE01", "Acme", "Pune"), nil).Once()
	ts.entities.On("Create", mock.Anything, mock.Anything).
		Return(nil, repository.ErrAlreadyExists).Once()

	rec := do(e, http.MethodPost, "/ms/api/business-entities", entityBody(), "")
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[model.BusinessEntity](t, rec)
	assert.Equal(t, "BE01", created.BusinessEntityCode)
	assert.Equal(t, "Pune", created.City)

	rec = do(e, http.MethodPost, "/ms/api/business-entities", entityBody(), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[errorResponse](t, rec)
	assert.Equal(t, "Business entity Code already exists", resp.Error)
	assert.Equal(t, "ALREADY_EXISTS", resp.Code)
}

func TestCreateBusinessEntityValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "short code",
			body: entityBody(func(b map[string]any) { b["businessEntityCode"] = "AB1" }),
			want: "businessEntityCode must be exactly 4 characters",
		},
		{
			name: "missing city",
			body: entityBody(func(b map[string]any) { delete(b, "city") }),
			want: "city is required",
		},
		{
			name: "malformed json",
			body: `{"businessEntityCode": `,
			want: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestServer(t, nil)

			rec := do(e, http.MethodPost, "/ms/api/business-entities", tt.body, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decode[errorResponse](t, rec)
			assert.Equal(t, "VALIDATION_FAILED", resp.Code)
			assert.Contains(t, resp.Error, tt.want)
		})
	}
}

func TestGetAndDeleteBusinessEntity(t *testing.T) {
	e, ts := newTestServer(t, nil)

	ts.entities.On("Get", mock.Anything, "ZZ99").Return(nil, repository.ErrNotFound).Once()
	ts.entities.On("Delete", mock.Anything, "BE01").Return(nil).Once()

	rec := do(e, http.MethodGet, "/ms/api/business-entities/ZZ99", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Business entity not found", decode[errorResponse](t, rec).Error)

	rec = do(e, http.MethodDelete, "/ms/api/business-entities/BE01", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Business entity deleted successfully", decode[messageResponse](t, rec).Message)
}

func TestListBusinessEntities(t *testing.T) {
	items := []*model.BusinessEntity{
		testEntity("BE01", "Acme One", "Pune"),
		testEntity("BE02", "Acme Two", "Mumbai"),
		testEntity("BE03", "Globex", "Delhi"),
	}

	t.Run("plain list", func(t *testing.T) {
		e, ts := newTestServer(t, nil)
		ts.entities.On("List", mock.Anything, map[string]any(nil)).Return(items, nil).Once()

		rec := do(e, http.MethodGet, "/ms/api/business-entities", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]model.BusinessEntity](t, rec), 3)
	})

	t.Run("search sort and page", func(t *testing.T) {
		e, ts := newTestServer(t, nil)
		ts.entities.On("List", mock.Anything, map[string]any(nil)).Return(items, nil).Once()

		rec := do(e, http.MethodGet, "/ms/api/business-entities?q=acme&sort=businessEntityName&order=desc&pageSize=1", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var page struct {
			Items    []map[string]any `json:"items"`
			Total    int              `json:"total"`
			PageSize int              `json:"pageSize"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Equal(t, 2, page.Total)
		assert.Equal(t, 1, page.PageSize)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Acme Two", page.Items[0]["businessEntityName"])
	})

	t.Run("invalid order", func(t *testing.T) {
		e, _ := newTestServer(t, nil)

		rec := do(e, http.MethodGet, "/ms/api/business-entities?order=sideways", "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode[errorResponse](t, rec).Code)
	})
}

const unitAssignment = `{"businessUnitCode": "BU01", "factoryUnitCode": "FU01"}`

func unitTuple() map[string]any {
	return map[string]any{
		"business_entity_code": "BE01",
		"business_unit_code":   "BU01",
		"factory_unit_code":    "FU01",
	}
}

func TestAssignUnitsIsIdempotent(t *testing.T) {
	e, ts := newTestServer(t, nil)

	pair := &model.BusinessEntityUnitPair{
		ID:                 "6f1c2b9e-4a53-4c7e-9d0b-1f7a3e5c8d21",
		BusinessEntityCode: "BE01",
		BusinessUnitCode:   "BU01",
		FactoryUnitCode:    "FU01",
	}

	ts.entities.On("Exists", mock.Anything, "BE01").Return(true, nil).Twice()
	ts.units.On("Exists", mock.Anything, "BU01").Return(true, nil).Twice()
	ts.factory.On("Exists", mock.Anything, "FU01").Return(true, nil).Twice()
	ts.pairs.On("FindFirst", mock.Anything, unitTuple()).Return(nil, repository.ErrNotFound).Once()
	ts.pairs.On("Create", mock.Anything, mock.MatchedBy(func(f map[string]any) bool {
		return f["business_unit_code"] == "BU01" && f["id"] != ""
	})).Return(pair, nil).Once()
	ts.pairs.On("FindFirst", mock.Anything, unitTuple()).Return(pair, nil).Once()

	var ids []string
	for range 2 {
		rec := do(e, http.MethodPost, "/ms/api/business-entities/BE01/assignment", unitAssignment, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Message string                       `json:"message"`
			Data    model.BusinessEntityUnitPair `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Units assigned successfully", resp.Message)
		ids = append(ids, resp.Data.ID)
	}
	assert.Equal(t, ids[0], ids[1])
}

func TestAssignUnitsUnknownOwner(t *testing.T) {
	e, ts := newTestServer(t, nil)
	ts.entities.On("Exists", mock.Anything, "ZZ99").Return(false, nil).Once()

	rec := do(e, http.MethodPost, "/ms/api/business-entities/ZZ99/assignment", unitAssignment, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Business entity not found", decode[errorResponse](t, rec).Error)
}

func TestDeleteUnitAssignment(t *testing.T) {
	t.Run("never assigned", func(t *testing.T) {
		e, ts := newTestServer(t, nil)
		ts.pairs.On("FindFirst", mock.Anything, unitTuple()).Return(nil, repository.ErrNotFound).Once()

		rec := do(e, http.MethodDelete, "/ms/api/business-entities/BE01/assignment", unitAssignment, "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		resp := decode[errorResponse](t, rec)
		assert.Equal(t, "Unit pair not found", resp.Error)
		assert.Equal(t, "NOT_FOUND", resp.Code)
	})

	t.Run("assigned", func(t *testing.T) {
		e, ts := newTestServer(t, nil)
		pair := &model.BusinessEntityUnitPair{ID: "p1", BusinessEntityCode: "BE01", BusinessUnitCode: "BU01", FactoryUnitCode: "FU01"}
		ts.pairs.On("FindFirst", mock.Anything, unitTuple()).Return(pair, nil).Once()
		ts.pairs.On("Delete", mock.Anything, "p1").Return(nil).Once()

		rec := do(e, http.MethodDelete, "/ms/api/business-entities/BE01/assignment", unitAssignment, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Unit pair deleted successfully", decode[messageResponse](t, rec).Message)
	})
}

func TestUpdateUnitAssignmentRequiresFromAndTo(t *testing.T) {
	e, _ := newTestServer(t, nil)

	rec := do(e, http.MethodPut, "/ms/api/business-entities/BE01/assignment", `{"from": `+unitAssignment+`}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "from and to are required", decode[errorResponse](t, rec).Error)
}

func TestAuthMiddleware(t *testing.T) {
	issuer := auth.NewIssuer("test-secret")

	userToken, err := issuer.Generate(auth.TokenTypeUser, "u1", time.Hour)
	require.NoError(t, err)
	adminToken, err := issuer.Generate(auth.TokenTypeAdmin, "a1", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		token  string
		status int
		code   string
	}{
		{name: "no token", method: http.MethodGet, status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "garbage token", method: http.MethodGet, token: "garbage", status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "user reads", method: http.MethodGet, token: userToken, status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "user writes", method: http.MethodDelete, token: userToken, status: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "admin writes", method: http.MethodDelete, token: adminToken, status: http.StatusNotFound, code: "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ts := newTestServer(t, issuer)
			switch {
			case tt.status == http.StatusNotFound && tt.method == http.MethodGet:
				ts.entities.On("Get", mock.Anything, "ZZ99").Return(nil, repository.ErrNotFound).Once()
			case tt.status == http.StatusNotFound:
				ts.entities.On("Delete", mock.Anything, "ZZ99").Return(repository.ErrNotFound).Once()
			}

			rec := do(e, tt.method, "/ms/api/business-entities/ZZ99", "", tt.token)
			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decode[errorResponse](t, rec).Code)
		})
	}
}

func TestCORSAllowsAnyOriginByDefault(t *testing.T) {
	e, _ := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/ms/api/business-entities", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req.WithContext(context.Background()))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
