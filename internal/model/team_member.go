package model

// TeamManager is a time-bounded manager assignment to a team. The same shape
// serves the sales, marketing and service domains; only the table differs.
type TeamManager struct {
	ID        string `json:"id" db:"id"`
	TeamCode  string `json:"teamCode" db:"team_code" validate:"required,code"`
	UserID    string `json:"userId" db:"user_id" validate:"required,max=50,alnumspace"`
	ValidFrom Date   `json:"validFrom" db:"valid_from" validate:"required"`
	ValidTo   *Date  `json:"validTo" db:"valid_to"`
	Primary   *bool  `json:"primary" db:"is_primary" validate:"required"`
	Timestamps
}

func (m TeamManager) Fields() map[string]any {
	return map[string]any{
		"team_code":  m.TeamCode,
		"user_id":    m.UserID,
		"valid_from": m.ValidFrom,
		"valid_to":   m.ValidTo,
		"is_primary": m.Primary,
	}
}

type TeamManagerPatch struct {
	TeamCode  *string `json:"teamCode" validate:"omitempty,code"`
	UserID    *string `json:"userId" validate:"omitempty,max=50,alnumspace"`
	ValidFrom *Date   `json:"validFrom" validate:"omitnil,required"`
	ValidTo   *Date   `json:"validTo"`
	Primary   *bool   `json:"primary"`
}

// NaturalKey is nil: managers are addressed by their generated id.
func (p TeamManagerPatch) NaturalKey() *string { return nil }

func (p TeamManagerPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "team_code", p.TeamCode)
	put(m, "user_id", p.UserID)
	put(m, "valid_from", p.ValidFrom)
	put(m, "valid_to", p.ValidTo)
	put(m, "is_primary", p.Primary)
	return m
}

type TeamEmployee struct {
	ID        string  `json:"id" db:"id"`
	TeamCode  string  `json:"teamCode" db:"team_code" validate:"required,code"`
	UserID    string  `json:"userId" db:"user_id" validate:"required,max=50,alnumspace"`
	ValidFrom Date    `json:"validFrom" db:"valid_from" validate:"required"`
	ValidTo   *Date   `json:"validTo" db:"valid_to"`
	Job       *string `json:"job" db:"job" validate:"omitempty,max=50,alphaspace"`
	Primary   *bool   `json:"primary" db:"is_primary" validate:"required"`
	Timestamps
}

func (e TeamEmployee) Fields() map[string]any {
	return map[string]any{
		"team_code":  e.TeamCode,
		"user_id":    e.UserID,
		"valid_from": e.ValidFrom,
		"valid_to":   e.ValidTo,
		"job":        e.Job,
		"is_primary": e.Primary,
	}
}

type TeamEmployeePatch struct {
	TeamCode  *string `json:"teamCode" validate:"omitempty,code"`
	UserID    *string `json:"userId" validate:"omitempty,max=50,alnumspace"`
	ValidFrom *Date   `json:"validFrom" validate:"omitnil,required"`
	ValidTo   *Date   `json:"validTo"`
	Job       *string `json:"job" validate:"omitempty,max=50,alphaspace"`
	Primary   *bool   `json:"primary"`
}

func (p TeamEmployeePatch) NaturalKey() *string { return nil }

func (p TeamEmployeePatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "team_code", p.TeamCode)
	put(m, "user_id", p.UserID)
	put(m, "valid_from", p.ValidFrom)
	put(m, "valid_to", p.ValidTo)
	put(m, "job", p.Job)
	put(m, "is_primary", p.Primary)
	return m
}
