package model

// SavedView is a named list query (search, filters, sort, visible columns)
// a user keeps for one resource.
type SavedView struct {
	ID       string   `json:"id" db:"id"`
	Owner    string   `json:"owner" db:"owner" validate:"required,max=50,alnumspace"`
	Resource string   `json:"resource" db:"resource" validate:"required,max=50,resource"`
	Name     string   `json:"name" db:"name" validate:"required,max=30,alnumspace"`
	Query    string   `json:"query" db:"query" validate:"max=500"`
	Columns  []string `json:"columns" db:"columns" validate:"dive,max=50"`
	Timestamps
}

func (v SavedView) Fields() map[string]any {
	columns := v.Columns
	if columns == nil {
		columns = []string{}
	}
	return map[string]any{
		"owner":    v.Owner,
		"resource": v.Resource,
		"name":     v.Name,
		"query":    v.Query,
		"columns":  columns,
	}
}

type SavedViewPatch struct {
	Owner    *string   `json:"owner" validate:"omitempty,max=50,alnumspace"`
	Resource *string   `json:"resource" validate:"omitempty,max=50,resource"`
	Name     *string   `json:"name" validate:"omitempty,max=30,alnumspace"`
	Query    *string   `json:"query" validate:"omitempty,max=500"`
	Columns  *[]string `json:"columns"`
}

func (p SavedViewPatch) NaturalKey() *string { return nil }

func (p SavedViewPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "owner", p.Owner)
	put(m, "resource", p.Resource)
	put(m, "name", p.Name)
	put(m, "query", p.Query)
	put(m, "columns", p.Columns)
	return m
}
