package validation

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yakoovad/orgstructure/internal/model"
	"testing"
	"time"
)

func ptr[T any](v T) *T { return &v }

func validEntity() model.BusinessEntity {
	return model.BusinessEntity{
		BusinessEntityCode: "BE01",
		BusinessEntityName: "Acme Holdings",
		Address: model.Address{
			Street1: "1 Main St.",
			City:    "Springfield",
			State:   "Oregon",
			Country: "USA",
			PinCode: "97403",
		},
	}
}

func TestValidator_BusinessEntity(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		mutate   func(e *model.BusinessEntity)
		expected []string
	}{
		{
			name:   "valid",
			mutate: func(e *model.BusinessEntity) {},
		},
		{
			name:     "code too short",
			mutate:   func(e *model.BusinessEntity) { e.BusinessEntityCode = "AB1" },
			expected: []string{"businessEntityCode must be exactly 4 characters"},
		},
		{
			name:     "code with symbol",
			mutate:   func(e *model.BusinessEntity) { e.BusinessEntityCode = "AB1#" },
			expected: []string{"businessEntityCode must contain only letters and digits"},
		},
		{
			name:     "missing code",
			mutate:   func(e *model.BusinessEntity) { e.BusinessEntityCode = "" },
			expected: []string{"businessEntityCode is required"},
		},
		{
			name: "several failures",
			mutate: func(e *model.BusinessEntity) {
				e.BusinessEntityName = "Acme & Sons"
				e.City = "Springfield 2"
				e.PinCode = "12a4"
			},
			expected: []string{
				"businessEntityName must contain only letters, digits and spaces",
				"city must contain only letters and spaces",
				"pinCode must contain only digits",
			},
		},
		{
			name:     "pin code too long",
			mutate:   func(e *model.BusinessEntity) { e.PinCode = "1234567" },
			expected: []string{"pinCode must be at most 6 characters"},
		},
		{
			name:     "street2 too long",
			mutate:   func(e *model.BusinessEntity) { e.Street2 = ptr("0123456789012345678901234567890123456789012345678901") },
			expected: []string{"street2 must be at most 50 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntity()
			tt.mutate(&e)

			err := v.Struct(e)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}

			var verr *Errors
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.expected, verr.Messages)
		})
	}
}

func TestValidator_JoinedMessage(t *testing.T) {
	v := New()

	err := v.Struct(model.SalesTeam{})
	require.Error(t, err)
	assert.Equal(t, "salesTeamCode is required, salesTeamName is required", err.Error())
}

func TestValidator_TeamManagerDates(t *testing.T) {
	v := New()

	m := model.TeamManager{
		TeamCode: "ST01",
		UserID:   "user 42",
		Primary:  ptr(false),
	}
	err := v.Struct(m)
	require.Error(t, err)
	assert.Equal(t, "validFrom is required", err.Error())

	m.ValidFrom = model.NewDate(2024, time.January, 1)
	assert.NoError(t, v.Struct(m))

	m.Primary = nil
	require.Error(t, v.Struct(m))
	assert.Equal(t, "primary is required", v.Struct(m).Error())
}

func TestValidator_PatchAllowsEmpty(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(model.BusinessEntityPatch{}))
	assert.Error(t, v.Struct(model.BusinessEntityPatch{BusinessEntityCode: ptr("B1")}))
	assert.NoError(t, v.Struct(model.BusinessEntityPatch{AddressPatch: model.AddressPatch{City: ptr("Paris")}}))
}

func TestValidator_AssignmentChange(t *testing.T) {
	v := New()

	change := model.AssignmentChange[model.UnitAssignment]{
		From: model.UnitAssignment{BusinessUnitCode: "BU01", FactoryUnitCode: "FU01"},
		To:   model.UnitAssignment{BusinessUnitCode: "BU02"},
	}
	err := v.Struct(change)
	require.Error(t, err)
	assert.Equal(t, "factoryUnitCode is required", err.Error())
}

func TestValidator_SavedViewResource(t *testing.T) {
	v := New()

	view := model.SavedView{Owner: "u1", Resource: "sales-offices", Name: "Open offices"}
	assert.NoError(t, v.Struct(view))

	view.Resource = "Sales Offices"
	assert.EqualError(t, v.Struct(view), "resource must be a lowercase resource name")
}

func TestValidator_Code(t *testing.T) {
	v := New()

	assert.True(t, v.Code("AB12"))
	assert.False(t, v.Code("AB1"))
	assert.False(t, v.Code("AB1#"))
	assert.False(t, v.Code(""))
}

func TestValidator_PatchDates(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "omitted", body: `{"salesOfficeDesc": "Main"}`},
		{name: "set", body: `{"validFrom": "2024-01-01", "validTo": "2025-01-01"}`},
		{name: "empty validFrom", body: `{"validFrom": ""}`, want: "validFrom must not be empty"},
		{name: "null validTo", body: `{"validTo": null}`},
		{name: "empty validTo", body: `{"validTo": ""}`, want: "validTo must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p model.SalesOfficePatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			err := v.Struct(p)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}

	var m model.TeamManagerPatch
	require.NoError(t, json.Unmarshal([]byte(`{"validFrom": ""}`), &m))
	require.Error(t, v.Struct(m))
	assert.Equal(t, "validFrom must not be empty", v.Struct(m).Error())
}
