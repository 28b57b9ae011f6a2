package model

type ServiceChannel struct {
	ServiceChannelCode string  `json:"serviceChannelCode" db:"service_channel_code" validate:"required,code"`
	ServiceChannelName string  `json:"serviceChannelName" db:"service_channel_name" validate:"required,max=30,alnumspace"`
	ServiceChannelDesc *string `json:"serviceChannelDesc" db:"service_channel_desc" validate:"omitempty,max=50,alnumspace"`
	Timestamps
}

func (c ServiceChannel) Fields() map[string]any {
	return map[string]any{
		"service_channel_code": c.ServiceChannelCode,
		"service_channel_name": c.ServiceChannelName,
		"service_channel_desc": c.ServiceChannelDesc,
	}
}

type ServiceChannelPatch struct {
	ServiceChannelCode *string `json:"serviceChannelCode" validate:"omitempty,code"`
	ServiceChannelName *string `json:"serviceChannelName" validate:"omitempty,max=30,alnumspace"`
	ServiceChannelDesc *string `json:"serviceChannelDesc" validate:"omitempty,max=50,alnumspace"`
}

func (p ServiceChannelPatch) NaturalKey() *string { return p.ServiceChannelCode }

func (p ServiceChannelPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "service_channel_name", p.ServiceChannelName)
	put(m, "service_channel_desc", p.ServiceChannelDesc)
	return m
}

type ServiceOffice struct {
	ServiceOfficeCode string  `json:"serviceOfficeCode" db:"service_office_code" validate:"required,code"`
	OrganizationName  string  `json:"organizationName" db:"organization_name" validate:"required,max=30,alnumspace"`
	ServiceOfficeDesc *string `json:"serviceOfficeDesc" db:"service_office_desc" validate:"omitempty,max=50,alnumspace"`
	Company           string  `json:"company" db:"company" validate:"required,max=30,alnumspace"`
	ParentUnit        *string `json:"parentUnit" db:"parent_unit" validate:"omitempty,max=30,alphaspace"`
	Address
	Validity
	Timestamps
}

func (o ServiceOffice) Fields() map[string]any {
	m := map[string]any{
		"service_office_code": o.ServiceOfficeCode,
		"organization_name":   o.OrganizationName,
		"service_office_desc": o.ServiceOfficeDesc,
		"company":             o.Company,
		"parent_unit":         o.ParentUnit,
		"valid_from":          o.ValidFrom,
		"valid_to":            o.ValidTo,
	}
	o.Address.putFields(m)
	return m
}

type ServiceOfficePatch struct {
	ServiceOfficeCode *string `json:"serviceOfficeCode" validate:"omitempty,code"`
	OrganizationName  *string `json:"organizationName" validate:"omitempty,max=30,alnumspace"`
	ServiceOfficeDesc *string `json:"serviceOfficeDesc" validate:"omitempty,max=50,alnumspace"`
	Company           *string `json:"company" validate:"omitempty,max=30,alnumspace"`
	ParentUnit        *string `json:"parentUnit" validate:"omitempty,max=30,alphaspace"`
	AddressPatch
	ValidityPatch
}

func (p ServiceOfficePatch) NaturalKey() *string { return p.ServiceOfficeCode }

func (p ServiceOfficePatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "organization_name", p.OrganizationName)
	put(m, "service_office_desc", p.ServiceOfficeDesc)
	put(m, "company", p.Company)
	put(m, "parent_unit", p.ParentUnit)
	put(m, "valid_from", p.ValidFrom)
	put(m, "valid_to", p.ValidTo)
	p.AddressPatch.putFields(m)
	return m
}

type ServiceTeam struct {
	ServiceTeamCode string `json:"serviceTeamCode" db:"service_team_code" validate:"required,code"`
	ServiceTeamName string `json:"serviceTeamName" db:"service_team_name" validate:"required,max=30,alnumspace"`
	Timestamps
}

func (t ServiceTeam) Fields() map[string]any {
	return map[string]any{
		"service_team_code": t.ServiceTeamCode,
		"service_team_name": t.ServiceTeamName,
	}
}

type ServiceTeamPatch struct {
	ServiceTeamCode *string `json:"serviceTeamCode" validate:"omitempty,code"`
	ServiceTeamName *string `json:"serviceTeamName" validate:"omitempty,max=30,alnumspace"`
}

func (p ServiceTeamPatch) NaturalKey() *string { return p.ServiceTeamCode }

func (p ServiceTeamPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "service_team_name", p.ServiceTeamName)
	return m
}

type ServicePerson struct {
	ServicePersonCode string `json:"servicePersonCode" db:"service_person_code" validate:"required,code"`
	ServicePersonName string `json:"servicePersonName" db:"service_person_name" validate:"required,max=30,alnumspace"`
	Timestamps
}

func (s ServicePerson) Fields() map[string]any {
	return map[string]any{
		"service_person_code": s.ServicePersonCode,
		"service_person_name": s.ServicePersonName,
	}
}

type ServicePersonPatch struct {
	ServicePersonCode *string `json:"servicePersonCode" validate:"omitempty,code"`
	ServicePersonName *string `json:"servicePersonName" validate:"omitempty,max=30,alnumspace"`
}

func (p ServicePersonPatch) NaturalKey() *string { return p.ServicePersonCode }

func (p ServicePersonPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "service_person_name", p.ServicePersonName)
	return m
}

// ServiceOfficeTeamPersonPair places a service person in a team under an office.
type ServiceOfficeTeamPersonPair struct {
	ID                string `json:"id" db:"id"`
	ServiceOfficeCode string `json:"serviceOfficeCode" db:"service_office_code"`
	ServiceTeamCode   string `json:"serviceTeamCode" db:"service_team_code"`
	ServicePersonCode string `json:"servicePersonCode" db:"service_person_code"`
	Timestamps
}

func (p ServiceOfficeTeamPersonPair) Key() string { return p.ID }

func (p ServiceOfficeTeamPersonPair) MemberCodes() []string {
	return []string{p.ServiceTeamCode, p.ServicePersonCode}
}

type ServiceTeamPersonAssignment struct {
	ServiceTeamCode   string `json:"serviceTeamCode" validate:"required,code"`
	ServicePersonCode string `json:"servicePersonCode" validate:"required,code"`
}

func (a ServiceTeamPersonAssignment) Codes() []string {
	return []string{a.ServiceTeamCode, a.ServicePersonCode}
}
