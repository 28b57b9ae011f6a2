package listview

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/url"
	"testing"
)

type office struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Region  *string `json:"region"`
	Size    int     `json:"size"`
}

func strptr(s string) *string { return &s }

func offices() []office {
	return []office{
		{Code: "SO01", Name: "North Hub", Country: "India", Region: strptr("West"), Size: 12},
		{Code: "SO02", Name: "South Hub", Country: "USA", Size: 3},
		{Code: "SO03", Name: "Central", Country: "india", Region: strptr("East"), Size: 40},
		{Code: "SO04", Name: "Harbor", Country: "Germany", Size: 7},
	}
}

func codes(t *testing.T, out any) []string {
	t.Helper()
	var rows []map[string]any
	switch v := out.(type) {
	case []map[string]any:
		rows = v
	case *Page:
		rows = v.Items
	default:
		t.Fatalf("unexpected result type %T", out)
	}
	res := make([]string, 0, len(rows))
	for _, r := range rows {
		res = append(res, r["code"].(string))
	}
	return res
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		expected  Query
		expectErr bool
	}{
		{name: "empty", raw: "", expected: Query{}},
		{
			name: "everything",
			raw:  "q=hub&filter=country:include:india&filter=region:exclude:west&sort=name&order=DESC&page=2&pageSize=10",
			expected: Query{
				Search: "hub",
				Filters: Filters{
					{Field: "country", Value: "india"},
					{Field: "region", Exclude: true, Value: "west"},
				},
				Sort:     "name",
				Order:    OrderDesc,
				Page:     2,
				PageSize: 10,
			},
		},
		{name: "value with colon", raw: "filter=name:include:a:b", expected: Query{Filters: Filters{{Field: "name", Value: "a:b"}}}},
		{name: "page size capped", raw: "pageSize=100000", expected: Query{PageSize: MaxPageSize}},
		{name: "bad operator", raw: "filter=country:equals:india", expectErr: true},
		{name: "bad filter", raw: "filter=country", expectErr: true},
		{name: "bad order", raw: "order=up", expectErr: true},
		{name: "bad page", raw: "page=0", expectErr: true},
		{name: "non numeric page size", raw: "pageSize=ten", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)

			q, err := ParseQuery(values)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, q)
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		expected []string
	}{
		{name: "untouched", query: Query{}, expected: []string{"SO01", "SO02", "SO03", "SO04"}},
		{name: "search substring", query: Query{Search: "HUB"}, expected: []string{"SO01", "SO02"}},
		{name: "search glob", query: Query{Search: "h*r"}, expected: []string{"SO04"}},
		{name: "search numbers", query: Query{Search: "40"}, expected: []string{"SO03"}},
		{
			name:     "include filter ignores case",
			query:    Query{Filters: Filters{{Field: "country", Value: "INDIA"}}},
			expected: []string{"SO01", "SO03"},
		},
		{
			name:     "exclude filter",
			query:    Query{Filters: Filters{{Field: "country", Exclude: true, Value: "india"}}},
			expected: []string{"SO02", "SO04"},
		},
		{
			name: "filters combine",
			query: Query{Filters: Filters{
				{Field: "country", Value: "india"},
				{Field: "region", Exclude: true, Value: "west"},
			}},
			expected: []string{"SO03"},
		},
		{name: "sort text", query: Query{Sort: "name"}, expected: []string{"SO03", "SO04", "SO01", "SO02"}},
		{name: "sort numbers desc", query: Query{Sort: "size", Order: OrderDesc}, expected: []string{"SO03", "SO01", "SO04", "SO02"}},
		{name: "nil sorts last", query: Query{Sort: "region"}, expected: []string{"SO03", "SO01", "SO02", "SO04"}},
		{name: "nil sorts last descending", query: Query{Sort: "region", Order: OrderDesc}, expected: []string{"SO01", "SO03", "SO02", "SO04"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Apply(offices(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, codes(t, out))
		})
	}
}

func TestApply_Pagination(t *testing.T) {
	out, err := Apply(offices(), Query{Sort: "code", Page: 2, PageSize: 3})
	require.NoError(t, err)

	page, ok := out.(*Page)
	require.True(t, ok)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.PageSize)
	assert.Equal(t, []string{"SO04"}, codes(t, page))

	out, err = Apply(offices(), Query{Page: 5, PageSize: 3})
	require.NoError(t, err)
	assert.Empty(t, out.(*Page).Items)

	out, err = Apply(offices(), Query{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, out.(*Page).PageSize)
}

func TestApply_PageBeyondEnd(t *testing.T) {
	for _, page := range []string{"3", "9223372036854775807"} {
		t.Run(page, func(t *testing.T) {
			q, err := ParseQuery(url.Values{"page": {page}, "pageSize": {"500"}})
			require.NoError(t, err)

			out, err := Apply(offices(), q)
			require.NoError(t, err)

			p, ok := out.(*Page)
			require.True(t, ok)
			assert.Empty(t, p.Items)
			assert.Equal(t, 4, p.Total)
		})
	}
}

func TestApply_Empty(t *testing.T) {
	out, err := Apply([]office(nil), Query{Search: "x"})
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{}, out)
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("?sort=name&q=hub&filter=country:INCLUDE:india&pageSize=10")
	require.NoError(t, err)
	assert.Equal(t, "filter=country%3Ainclude%3Aindia&pageSize=10&q=hub&sort=name", got)

	got, err = Normalize("")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = Normalize("order=sideways")
	assert.ErrorIs(t, err, ErrInvalidQuery)
}
