package model

type MarketingChannel struct {
	MarketingChannelCode string  `json:"marketingChannelCode" db:"marketing_channel_code" validate:"required,code"`
	MarketingChannelName string  `json:"marketingChannelName" db:"marketing_channel_name" validate:"required,max=30,alnumspace"`
	MarketingChannelDesc *string `json:"marketingChannelDesc" db:"marketing_channel_desc" validate:"omitempty,max=50,alnumspace"`
	Timestamps
}

func (c MarketingChannel) Fields() map[string]any {
	return map[string]any{
		"marketing_channel_code": c.MarketingChannelCode,
		"marketing_channel_name": c.MarketingChannelName,
		"marketing_channel_desc": c.MarketingChannelDesc,
	}
}

type MarketingChannelPatch struct {
	MarketingChannelCode *string `json:"marketingChannelCode" validate:"omitempty,code"`
	MarketingChannelName *string `json:"marketingChannelName" validate:"omitempty,max=30,alnumspace"`
	MarketingChannelDesc *string `json:"marketingChannelDesc" validate:"omitempty,max=50,alnumspace"`
}

func (p MarketingChannelPatch) NaturalKey() *string { return p.MarketingChannelCode }

func (p MarketingChannelPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "marketing_channel_name", p.MarketingChannelName)
	put(m, "marketing_channel_desc", p.MarketingChannelDesc)
	return m
}

type MarketingOffice struct {
	MarketingOfficeCode string  `json:"marketingOfficeCode" db:"marketing_office_code" validate:"required,code"`
	OrganizationName    string  `json:"organizationName" db:"organization_name" validate:"required,max=30,alnumspace"`
	MarketingOfficeDesc *string `json:"marketingOfficeDesc" db:"marketing_office_desc" validate:"omitempty,max=50,alnumspace"`
	Company             string  `json:"company" db:"company" validate:"required,max=30,alnumspace"`
	ParentUnit          *string `json:"parentUnit" db:"parent_unit" validate:"omitempty,max=30,alphaspace"`
	Address
	Validity
	Timestamps
}

func (o MarketingOffice) Fields() map[string]any {
	m := map[string]any{
		"marketing_office_code": o.MarketingOfficeCode,
		"organization_name":     o.OrganizationName,
		"marketing_office_desc": o.MarketingOfficeDesc,
		"company":               o.Company,
		"parent_unit":           o.ParentUnit,
		"valid_from":            o.ValidFrom,
		"valid_to":              o.ValidTo,
	}
	o.Address.putFields(m)
	return m
}

type MarketingOfficePatch struct {
	MarketingOfficeCode *string `json:"marketingOfficeCode" validate:"omitempty,code"`
	OrganizationName    *string `json:"organizationName" validate:"omitempty,max=30,alnumspace"`
	MarketingOfficeDesc *string `json:"marketingOfficeDesc" validate:"omitempty,max=50,alnumspace"`
	Company             *string `json:"company" validate:"omitempty,max=30,alnumspace"`
	ParentUnit          *string `json:"parentUnit" validate:"omitempty,max=30,alphaspace"`
	AddressPatch
	ValidityPatch
}

func (p MarketingOfficePatch) NaturalKey() *string { return p.MarketingOfficeCode }

func (p MarketingOfficePatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "organization_name", p.OrganizationName)
	put(m, "marketing_office_desc", p.MarketingOfficeDesc)
	put(m, "company", p.Company)
	put(m, "parent_unit", p.ParentUnit)
	put(m, "valid_from", p.ValidFrom)
	put(m, "valid_to", p.ValidTo)
	p.AddressPatch.putFields(m)
	return m
}

type MarketingTeam struct {
	MarketingTeamCode string `json:"marketingTeamCode" db:"marketing_team_code" validate:"required,code"`
	MarketingTeamName string `json:"marketingTeamName" db:"marketing_team_name" validate:"required,max=30,alnumspace"`
	Timestamps
}

func (t MarketingTeam) Fields() map[string]any {
	return map[string]any{
		"marketing_team_code": t.MarketingTeamCode,
		"marketing_team_name": t.MarketingTeamName,
	}
}

type MarketingTeamPatch struct {
	MarketingTeamCode *string `json:"marketingTeamCode" validate:"omitempty,code"`
	MarketingTeamName *string `json:"marketingTeamName" validate:"omitempty,max=30,alnumspace"`
}

func (p MarketingTeamPatch) NaturalKey() *string { return p.MarketingTeamCode }

func (p MarketingTeamPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "marketing_team_name", p.MarketingTeamName)
	return m
}

type MarketingPerson struct {
	MarketingPersonCode string `json:"marketingPersonCode" db:"marketing_person_code" validate:"required,code"`
	MarketingPersonName string `json:"marketingPersonName" db:"marketing_person_name" validate:"required,max=30,alnumspace"`
	Timestamps
}

func (s MarketingPerson) Fields() map[string]any {
	return map[string]any{
		"marketing_person_code": s.MarketingPersonCode,
		"marketing_person_name": s.MarketingPersonName,
	}
}

type MarketingPersonPatch struct {
	MarketingPersonCode *string `json:"marketingPersonCode" validate:"omitempty,code"`
	MarketingPersonName *string `json:"marketingPersonName" validate:"omitempty,max=30,alnumspace"`
}

func (p MarketingPersonPatch) NaturalKey() *string { return p.MarketingPersonCode }

func (p MarketingPersonPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "marketing_person_name", p.MarketingPersonName)
	return m
}

// MarketingOfficeTeamPersonPair places a marketing person in a team under an office.
type MarketingOfficeTeamPersonPair struct {
	ID                  string `json:"id" db:"id"`
	MarketingOfficeCode string `json:"marketingOfficeCode" db:"marketing_office_code"`
	MarketingTeamCode   string `json:"marketingTeamCode" db:"marketing_team_code"`
	MarketingPersonCode string `json:"marketingPersonCode" db:"marketing_person_code"`
	Timestamps
}

func (p MarketingOfficeTeamPersonPair) Key() string { return p.ID }

func (p MarketingOfficeTeamPersonPair) MemberCodes() []string {
	return []string{p.MarketingTeamCode, p.MarketingPersonCode}
}

type MarketingTeamPersonAssignment struct {
	MarketingTeamCode   string `json:"marketingTeamCode" validate:"required,code"`
	MarketingPersonCode string `json:"marketingPersonCode" validate:"required,code"`
}

func (a MarketingTeamPersonAssignment) Codes() []string {
	return []string{a.MarketingTeamCode, a.MarketingPersonCode}
}
