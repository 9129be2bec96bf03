package dto_test

import (
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/shared/constant"
	"roombook/shared/dto"
	"roombook/shared/failure"
	"roombook/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt, ModifiedAt: modifiedAt})

	created, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	assert.NoError(t, err)
	assert.True(t, created.Equal(createdAt))

	modified, err := time.Parse(constant.DateFormat, metadata.ModifiedAt)
	assert.NoError(t, err)
	assert.True(t, modified.Equal(modifiedAt))
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:        "with all valid parameters",
			queryParams: map[string]string{"page": "2", "limit": "20"},
			expected:    dto.QueryParams{Page: 2, Limit: 20},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "with default request disabled and no parameters",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "with only limit parameter",
			queryParams:    map[string]string{"limit": "5"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{}
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}

			req := httptest.NewRequest("GET", "/v1/rooms?"+query.Encode(), nil)

			queryParams := &dto.QueryParams{}
			require.NoError(t, queryParams.FromRequest(req, tt.defaultRequest))

			assert.Equal(t, tt.expected, *queryParams)
		})
	}
}

func TestQueryParams_FromRequestRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected error
	}{
		{name: "non numeric page", query: "page=invalid", expected: failure.InvalidPageParam},
		{name: "zero page", query: "page=0", expected: failure.InvalidPageParam},
		{name: "page beyond int range", query: "page=99999999999999999999", expected: failure.InvalidPageParam},
		{name: "negative limit", query: "limit=-10", expected: failure.InvalidLimitParam},
		{name: "non numeric limit", query: "page=1&limit=ten", expected: failure.InvalidLimitParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/rooms?"+tt.query, nil)

			queryParams := &dto.QueryParams{}
			err := queryParams.FromRequest(req, true)

			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestQueryParams_Window(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		total    int
		from, to int
	}{
		{name: "no limit selects all", params: dto.QueryParams{}, total: 7, from: 0, to: 7},
		{name: "first page", params: dto.QueryParams{Page: 1, Limit: 3}, total: 7, from: 0, to: 3},
		{name: "last partial page", params: dto.QueryParams{Page: 3, Limit: 3}, total: 7, from: 6, to: 7},
		{name: "page past the end", params: dto.QueryParams{Page: 5, Limit: 3}, total: 7, from: 7, to: 7},
		{name: "zero page treated as first", params: dto.QueryParams{Limit: 2}, total: 7, from: 0, to: 2},
		{name: "empty catalog", params: dto.QueryParams{Page: 2, Limit: 3}, total: 0, from: 0, to: 0},
		{name: "huge limit", params: dto.QueryParams{Page: 1, Limit: math.MaxInt}, total: 7, from: 0, to: 7},
		{name: "huge page does not overflow", params: dto.QueryParams{Page: 4611686018427387905, Limit: 2}, total: 1, from: 1, to: 1},
		{name: "max page", params: dto.QueryParams{Page: math.MaxInt, Limit: math.MaxInt}, total: 7, from: 7, to: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := tt.params.Window(tt.total)

			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}
