// Package listview applies search, include/exclude filters, sorting and
// pagination to list responses.
package listview

import (
	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
	"net/url"
	"strconv"
	"strings"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"

	opInclude = "include"
	opExclude = "exclude"

	DefaultPageSize = 20
	MaxPageSize     = 500
)

var ErrInvalidQuery = errors.New("invalid list query")

// Filter keeps (include) or drops (exclude) items whose Field equals Value,
// compared case-insensitively.
type Filter struct {
	Field   string
	Exclude bool
	Value   string
}

func (f Filter) String() string {
	op := opInclude
	if f.Exclude {
		op = opExclude
	}
	return f.Field + ":" + op + ":" + f.Value
}

func parseFilter(raw string) (Filter, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 || parts[0] == "" {
		return Filter{}, errors.Wrapf(ErrInvalidQuery, "filter %q must look like field:include|exclude:value", raw)
	}

	switch strings.ToLower(parts[1]) {
	case opInclude:
		return Filter{Field: parts[0], Value: parts[2]}, nil
	case opExclude:
		return Filter{Field: parts[0], Exclude: true, Value: parts[2]}, nil
	default:
		return Filter{}, errors.Wrapf(ErrInvalidQuery, "filter operator %q must be include or exclude", parts[1])
	}
}

type Filters []Filter

// EncodeValues implements query.Encoder.
func (fs Filters) EncodeValues(key string, v *url.Values) error {
	for _, f := range fs {
		v.Add(key, f.String())
	}
	return nil
}

// Query is the list-view state a client sends as URL parameters.
type Query struct {
	Search   string  `url:"q,omitempty"`
	Filters  Filters `url:"filter,omitempty"`
	Sort     string  `url:"sort,omitempty"`
	Order    string  `url:"order,omitempty"`
	Page     int     `url:"page,omitempty"`
	PageSize int     `url:"pageSize,omitempty"`
}

// IsZero reports whether q leaves a collection untouched.
func (q Query) IsZero() bool {
	return q.Search == "" && len(q.Filters) == 0 && q.Sort == "" && !q.Paged()
}

func (q Query) Paged() bool {
	return q.Page > 0 || q.PageSize > 0
}

// Encode renders q as a canonical query string.
func (q Query) Encode() (string, error) {
	v, err := query.Values(q)
	if err != nil {
		return "", errors.Wrap(err, "encode list query")
	}
	return v.Encode(), nil
}

func positive(values url.Values, key string) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.Wrapf(ErrInvalidQuery, "%s must be a positive integer", key)
	}
	return n, nil
}

// ParseQuery reads a Query from URL parameters. Unknown parameters are ignored.
func ParseQuery(values url.Values) (Query, error) {
	q := Query{
		Search: strings.TrimSpace(values.Get("q")),
		Sort:   strings.TrimSpace(values.Get("sort")),
		Order:  strings.ToLower(strings.TrimSpace(values.Get("order"))),
	}

	switch q.Order {
	case "", OrderAsc, OrderDesc:
	default:
		return Query{}, errors.Wrapf(ErrInvalidQuery, "order must be %s or %s", OrderAsc, OrderDesc)
	}

	for _, raw := range values["filter"] {
		f, err := parseFilter(raw)
		if err != nil {
			return Query{}, err
		}
		q.Filters = append(q.Filters, f)
	}

	var err error
	if q.Page, err = positive(values, "page"); err != nil {
		return Query{}, err
	}
	if q.PageSize, err = positive(values, "pageSize"); err != nil {
		return Query{}, err
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q, nil
}

// Normalize parses a raw query string and re-encodes it canonically.
func Normalize(raw string) (string, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return "", errors.Wrap(ErrInvalidQuery, err.Error())
	}
	q, err := ParseQuery(values)
	if err != nil {
		return "", err
	}
	return q.Encode()
}
