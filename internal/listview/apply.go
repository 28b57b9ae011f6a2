package listview

import (
	"encoding/json"
	"fmt"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"sort"
	"strings"
)

// Page is a paginated list response.
type Page struct {
	Items    []map[string]any `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

type matcher func(s string) bool

// searchMatcher matches case-insensitively. Patterns containing * or ? are
// globs over the whole value; anything else is a substring search.
func searchMatcher(search string) (matcher, error) {
	needle := strings.ToLower(search)
	if !strings.ContainsAny(needle, "*?") {
		return func(s string) bool { return strings.Contains(strings.ToLower(s), needle) }, nil
	}

	g, err := glob.Compile(needle)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidQuery, "search pattern %q: %v", search, err)
	}
	return func(s string) bool { return g.Match(strings.ToLower(s)) }, nil
}

// toRows converts items to their JSON object form so fields are addressed by
// their wire names.
func toRows[T any](items []T) ([]map[string]any, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "marshal list items")
	}
	var rows []map[string]any
	if err = json.Unmarshal(raw, &rows); err != nil {
		return nil, errors.Wrap(err, "unmarshal list items")
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	return rows, nil
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func anyFieldMatches(row map[string]any, m matcher) bool {
	for _, v := range row {
		switch v.(type) {
		case map[string]any, []any:
			continue
		}
		if v != nil && m(text(v)) {
			return true
		}
	}
	return false
}

func keep(row map[string]any, filters []Filter) bool {
	for _, f := range filters {
		equal := strings.EqualFold(text(row[f.Field]), f.Value)
		if equal == f.Exclude {
			return false
		}
	}
	return true
}

// less orders nil after every value, numbers numerically and everything else
// as case-insensitive text.
func less(a, b any) bool {
	if a == nil || b == nil {
		return a != nil && b == nil
	}
	if x, ok := a.(float64); ok {
		if y, ok := b.(float64); ok {
			return x < y
		}
	}
	if x, ok := a.(bool); ok {
		if y, ok := b.(bool); ok {
			return !x && y
		}
	}
	return strings.ToLower(text(a)) < strings.ToLower(text(b))
}

// Apply runs q over items. Without pagination it returns the filtered rows,
// otherwise a *Page.
func Apply[T any](items []T, q Query) (any, error) {
	rows, err := toRows(items)
	if err != nil {
		return nil, err
	}

	if q.Search != "" || len(q.Filters) > 0 {
		var m matcher
		if q.Search != "" {
			if m, err = searchMatcher(q.Search); err != nil {
				return nil, err
			}
		}

		filtered := rows[:0]
		for _, row := range rows {
			if m != nil && !anyFieldMatches(row, m) {
				continue
			}
			if !keep(row, q.Filters) {
				continue
			}
			filtered = append(filtered, row)
		}
		rows = filtered
	}

	if q.Sort != "" {
		desc := q.Order == OrderDesc
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i][q.Sort], rows[j][q.Sort]
			if desc {
				if a == nil || b == nil {
					return a != nil && b == nil
				}
				return less(b, a)
			}
			return less(a, b)
		})
	}

	if !q.Paged() {
		return rows, nil
	}

	page, size := q.Page, q.PageSize
	if page == 0 {
		page = 1
	}
	if size == 0 {
		size = DefaultPageSize
	}

	total := len(rows)
	start, end := total, total
	if page-1 < (total+size-1)/size {
		start = (page - 1) * size
		end = min(start+size, total)
	}

	return &Page{
		Items:    rows[start:end],
		Total:    total,
		Page:     page,
		PageSize: size,
	}, nil
}
