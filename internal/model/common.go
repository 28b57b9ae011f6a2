// Package model holds the organization-structure resources as they travel over
// HTTP and are stored in Postgres. Every resource struct carries json, db and
// validate tags; Fields returns the writable columns for the repository layer.
package model

import "time"

// Timestamps are maintained by the database.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Address is the postal block shared by units, entities and offices.
type Address struct {
	Street1 string  `json:"street1" db:"street1" validate:"required,max=50"`
	Street2 *string `json:"street2" db:"street2" validate:"omitempty,max=50"`
	City    string  `json:"city" db:"city" validate:"required,max=30,alphaspace"`
	State   string  `json:"state" db:"state" validate:"required,max=30,alphaspace"`
	Region  *string `json:"region" db:"region" validate:"omitempty,max=50"`
	Country string  `json:"country" db:"country" validate:"required,max=30,alphaspace"`
	PinCode string  `json:"pinCode" db:"pin_code" validate:"required,min=4,max=6,number"`
}

func (a Address) putFields(m map[string]any) {
	m["street1"] = a.Street1
	m["street2"] = a.Street2
	m["city"] = a.City
	m["state"] = a.State
	m["region"] = a.Region
	m["country"] = a.Country
	m["pin_code"] = a.PinCode
}

type AddressPatch struct {
	Street1 *string `json:"street1" validate:"omitempty,max=50"`
	Street2 *string `json:"street2" validate:"omitempty,max=50"`
	City    *string `json:"city" validate:"omitempty,max=30,alphaspace"`
	State   *string `json:"state" validate:"omitempty,max=30,alphaspace"`
	Region  *string `json:"region" validate:"omitempty,max=50"`
	Country *string `json:"country" validate:"omitempty,max=30,alphaspace"`
	PinCode *string `json:"pinCode" validate:"omitempty,min=4,max=6,number"`
}

func (a AddressPatch) putFields(m map[string]any) {
	put(m, "street1", a.Street1)
	put(m, "street2", a.Street2)
	put(m, "city", a.City)
	put(m, "state", a.State)
	put(m, "region", a.Region)
	put(m, "country", a.Country)
	put(m, "pin_code", a.PinCode)
}

// Validity is the active window of an office.
type Validity struct {
	ValidFrom Date `json:"validFrom" db:"valid_from" validate:"required"`
	ValidTo   Date `json:"validTo" db:"valid_to" validate:"required"`
}

// ValidityPatch may omit either date but cannot clear one.
type ValidityPatch struct {
	ValidFrom *Date `json:"validFrom" validate:"omitnil,required"`
	ValidTo   *Date `json:"validTo" validate:"omitnil,required"`
}

func put[T any](m map[string]any, col string, v *T) {
	if v != nil {
		m[col] = *v
	}
}
