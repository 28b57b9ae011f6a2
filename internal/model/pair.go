package model

// BusinessEntityUnitPair links a business entity to a business unit and the
// factory unit serving it.
type BusinessEntityUnitPair struct {
	ID                 string `json:"id" db:"id"`
	BusinessEntityCode string `json:"businessEntityCode" db:"business_entity_code"`
	BusinessUnitCode   string `json:"businessUnitCode" db:"business_unit_code"`
	FactoryUnitCode    string `json:"factoryUnitCode" db:"factory_unit_code"`
	Timestamps
}

func (p BusinessEntityUnitPair) Key() string { return p.ID }

func (p BusinessEntityUnitPair) MemberCodes() []string {
	return []string{p.BusinessUnitCode, p.FactoryUnitCode}
}

type UnitAssignment struct {
	BusinessUnitCode string `json:"businessUnitCode" validate:"required,code"`
	FactoryUnitCode  string `json:"factoryUnitCode" validate:"required,code"`
}

func (a UnitAssignment) Codes() []string {
	return []string{a.BusinessUnitCode, a.FactoryUnitCode}
}

// BusinessUnitChannelOfficePair links a business unit to a sales channel and
// the sales office operating it.
type BusinessUnitChannelOfficePair struct {
	ID               string `json:"id" db:"id"`
	BusinessUnitCode string `json:"businessUnitCode" db:"business_unit_code"`
	SalesChannelCode string `json:"salesChannelCode" db:"sales_channel_code"`
	SalesOfficeCode  string `json:"salesOfficeCode" db:"sales_office_code"`
	Timestamps
}

func (p BusinessUnitChannelOfficePair) Key() string { return p.ID }

func (p BusinessUnitChannelOfficePair) MemberCodes() []string {
	return []string{p.SalesChannelCode, p.SalesOfficeCode}
}

type ChannelOfficeAssignment struct {
	SalesChannelCode string `json:"salesChannelCode" validate:"required,code"`
	SalesOfficeCode  string `json:"salesOfficeCode" validate:"required,code"`
}

func (a ChannelOfficeAssignment) Codes() []string {
	return []string{a.SalesChannelCode, a.SalesOfficeCode}
}

// Assignment is the member half of a pair as sent by clients; the owner code
// comes from the path.
type Assignment interface {
	Codes() []string
}

// AssignmentChange moves an existing pair identified by From to the tuple To.
type AssignmentChange[A Assignment] struct {
	From A `json:"from"`
	To   A `json:"to"`
}

// AssignmentSet adds several pairs to an owner in one request.
type AssignmentSet[A Assignment] struct {
	Assignments []A `json:"assignments" validate:"required"`
}
