package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "api-scaffold/pkg/errors"
)

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 20, CalculateOffset(3, 10))
	assert.Equal(t, 50, CalculateOffset(2, 50))
	assert.Equal(t, -10, CalculateOffset(0, 10))

	for page := 1; page <= 20; page++ {
		for limit := 1; limit <= 20; limit++ {
			assert.Equal(t, (page-1)*limit, CalculateOffset(page, limit))
		}
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 10, 10},
		{101, 10, 11},
		{7, 1, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateTotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	p, err := Normalize(Options{})
	require.NoError(t, err)
	assert.Equal(t, Params{Page: 1, Limit: 10, Offset: 0}, p)
}

func TestNormalize_DerivesOffset(t *testing.T) {
	p, err := Normalize(New(4, 25))
	require.NoError(t, err)
	assert.Equal(t, Params{Page: 4, Limit: 25, Offset: 75}, p)
}

func TestNormalize_ExplicitOffsetWins(t *testing.T) {
	p, err := Normalize(New(2, 10).WithOffset(3))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Offset)
	assert.Equal(t, 2, p.Page)
}

func TestNormalize_Validation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		msg  string
	}{
		{"zero page", New(0, 10), "Page must be greater than 0"},
		{"negative page", New(-3, 10), "Page must be greater than 0"},
		{"zero limit", New(1, 0), "Limit must be greater than 0"},
		{"limit above cap", New(1, 101), "Limit must be less than or equal to 100"},
		{"negative offset", New(1, 10).WithOffset(-1), "Offset must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.opts)
			require.Error(t, err)
			assert.True(t, pkgErrors.Is(err, pkgErrors.KindValidation))
			assert.Equal(t, tt.msg, pkgErrors.From(err).Message())
		})
	}
}

func TestNormalize_LimitAtCap(t *testing.T) {
	p, err := Normalize(New(1, 100))
	require.NoError(t, err)
	assert.Equal(t, 100, p.Limit)
}

func TestNewMetadata(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		m, err := NewMetadata(100, New(1, 10))
		require.NoError(t, err)
		assert.Equal(t, Metadata{
			Page: 1, Limit: 10, Total: 100, TotalPages: 10,
			HasNextPage: true, HasPreviousPage: false,
		}, m)
	})

	t.Run("last page", func(t *testing.T) {
		m, err := NewMetadata(100, New(10, 10))
		require.NoError(t, err)
		assert.False(t, m.HasNextPage)
		assert.True(t, m.HasPreviousPage)
	})

	t.Run("empty", func(t *testing.T) {
		m, err := NewMetadata(0, New(1, 10))
		require.NoError(t, err)
		assert.Equal(t, 0, m.TotalPages)
		assert.False(t, m.HasNextPage)
		assert.False(t, m.HasPreviousPage)
	})

	t.Run("invalid page", func(t *testing.T) {
		_, err := NewMetadata(10, New(0, 10))
		require.Error(t, err)
		assert.Equal(t, "Page must be greater than 0", pkgErrors.From(err).Message())
	})
}

func TestFromQuery(t *testing.T) {
	o, err := FromQuery("", "")
	require.NoError(t, err)
	assert.Nil(t, o.Page)
	assert.Nil(t, o.Limit)

	o, err = FromQuery("3", "15")
	require.NoError(t, err)
	assert.Equal(t, 3, *o.Page)
	assert.Equal(t, 15, *o.Limit)

	_, err = FromQuery("x", "")
	assert.True(t, pkgErrors.Is(err, pkgErrors.KindValidation))

	_, err = FromQuery("1", "many")
	assert.True(t, pkgErrors.Is(err, pkgErrors.KindValidation))
}
