package model

type SalesChannel struct {
	SalesChannelCode string  `json:"salesChannelCode" db:"sales_channel_code" validate:"required,code"`
	SalesChannelName string  `json:"salesChannelName" db:"sales_channel_name" validate:"required,max=30,alnumspace"`
	SalesChannelDesc *string `json:"salesChannelDesc" db:"sales_channel_desc" validate:"omitempty,max=50,alnumspace"`
	Timestamps
}

func (c SalesChannel) Fields() map[string]any {
	return map[string]any{
		"sales_channel_code": c.SalesChannelCode,
		"sales_channel_name": c.SalesChannelName,
		"sales_channel_desc": c.SalesChannelDesc,
	}
}

type SalesChannelPatch struct {
	SalesChannelCode *string `json:"salesChannelCode" validate:"omitempty,code"`
	SalesChannelName *string `json:"salesChannelName" validate:"omitempty,max=30,alnumspace"`
	SalesChannelDesc *string `json:"salesChannelDesc" validate:"omitempty,max=50,alnumspace"`
}

func (p SalesChannelPatch) NaturalKey() *string { return p.SalesChannelCode }

func (p SalesChannelPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "sales_channel_name", p.SalesChannelName)
	put(m, "sales_channel_desc", p.SalesChannelDesc)
	return m
}

type SalesOffice struct {
	SalesOfficeCode  string  `json:"salesOfficeCode" db:"sales_office_code" validate:"required,code"`
	OrganizationName string  `json:"organizationName" db:"organization_name" validate:"required,max=30,alnumspace"`
	SalesOfficeDesc  *string `json:"salesOfficeDesc" db:"sales_office_desc" validate:"omitempty,max=50,alnumspace"`
	Company          string  `json:"company" db:"company" validate:"required,max=30,alnumspace"`
	ParentUnit       *string `json:"parentUnit" db:"parent_unit" validate:"omitempty,max=30,alphaspace"`
	Address
	Validity
	Timestamps
}

func (o SalesOffice) Fields() map[string]any {
	m := map[string]any{
		"sales_office_code": o.SalesOfficeCode,
		"organization_name": o.OrganizationName,
		"sales_office_desc": o.SalesOfficeDesc,
		"company":           o.Company,
		"parent_unit":       o.ParentUnit,
		"valid_from":        o.ValidFrom,
		"valid_to":          o.ValidTo,
	}
	o.Address.putFields(m)
	return m
}

type SalesOfficePatch struct {
	SalesOfficeCode  *string `json:"salesOfficeCode" validate:"omitempty,code"`
	OrganizationName *string `json:"organizationName" validate:"omitempty,max=30,alnumspace"`
	SalesOfficeDesc  *string `json:"salesOfficeDesc" validate:"omitempty,max=50,alnumspace"`
	Company          *string `json:"company" validate:"omitempty,max=30,alnumspace"`
	ParentUnit       *string `json:"parentUnit" validate:"omitempty,max=30,alphaspace"`
	AddressPatch
	ValidityPatch
}

func (p SalesOfficePatch) NaturalKey() *string { return p.SalesOfficeCode }

func (p SalesOfficePatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "organization_name", p.OrganizationName)
	put(m, "sales_office_desc", p.SalesOfficeDesc)
	put(m, "company", p.Company)
	put(m, "parent_unit", p.ParentUnit)
	put(m, "valid_from", p.ValidFrom)
	put(m, "valid_to", p.ValidTo)
	p.AddressPatch.putFields(m)
	return m
}

type SalesTeam struct {
	SalesTeamCode string `json:"salesTeamCode" db:"sales_team_code" validate:"required,code"`
	SalesTeamName string `json:"salesTeamName" db:"sales_team_name" validate:"required,max=30,alnumspace"`
	Timestamps
}

func (t SalesTeam) Fields() map[string]any {
	return map[string]any{
		"sales_team_code": t.SalesTeamCode,
		"sales_team_name": t.SalesTeamName,
	}
}

type SalesTeamPatch struct {
	SalesTeamCode *string `json:"salesTeamCode" validate:"omitempty,code"`
	SalesTeamName *string `json:"salesTeamName" validate:"omitempty,max=30,alnumspace"`
}

func (p SalesTeamPatch) NaturalKey() *string { return p.SalesTeamCode }

func (p SalesTeamPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "sales_team_name", p.SalesTeamName)
	return m
}

type SalesPerson struct {
	SalesPersonCode string `json:"salesPersonCode" db:"sales_person_code" validate:"required,code"`
	SalesPersonName string `json:"salesPersonName" db:"sales_person_name" validate:"required,max=30,alnumspace"`
	Timestamps
}

func (s SalesPerson) Fields() map[string]any {
	return map[string]any{
		"sales_person_code": s.SalesPersonCode,
		"sales_person_name": s.SalesPersonName,
	}
}

type SalesPersonPatch struct {
	SalesPersonCode *string `json:"salesPersonCode" validate:"omitempty,code"`
	SalesPersonName *string `json:"salesPersonName" validate:"omitempty,max=30,alnumspace"`
}

func (p SalesPersonPatch) NaturalKey() *string { return p.SalesPersonCode }

func (p SalesPersonPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "sales_person_name", p.SalesPersonName)
	return m
}

// SalesOfficeTeamPersonPair places a sales person in a team under an office.
type SalesOfficeTeamPersonPair struct {
	ID              string `json:"id" db:"id"`
	SalesOfficeCode string `json:"salesOfficeCode" db:"sales_office_code"`
	SalesTeamCode   string `json:"salesTeamCode" db:"sales_team_code"`
	SalesPersonCode string `json:"salesPersonCode" db:"sales_person_code"`
	Timestamps
}

func (p SalesOfficeTeamPersonPair) Key() string { return p.ID }

func (p SalesOfficeTeamPersonPair) MemberCodes() []string {
	return []string{p.SalesTeamCode, p.SalesPersonCode}
}

type SalesTeamPersonAssignment struct {
	SalesTeamCode   string `json:"salesTeamCode" validate:"required,code"`
	SalesPersonCode string `json:"salesPersonCode" validate:"required,code"`
}

func (a SalesTeamPersonAssignment) Codes() []string {
	return []string{a.SalesTeamCode, a.SalesPersonCode}
}
