package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		want    int
	}{
		{name: "first page", page: 1, perPage: 10, want: 0},
		{name: "third page", page: 3, perPage: 5, want: 10},
		{name: "zero page", page: 0, perPage: 10, want: 0},
		{name: "negative page", page: -7, perPage: 10, want: 0},
		{name: "no page size", page: 4, perPage: 0, want: 0},
		{name: "largest addressable page", page: math.MaxInt/10 + 1, perPage: 10, want: math.MaxInt / 10 * 10},
		{name: "max int page saturates", page: math.MaxInt, perPage: 10, want: math.MaxInt},
		{name: "just past addressable", page: math.MaxInt/10 + 2, perPage: 10, want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Offset(tt.page, tt.perPage)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestNewPage_NilItemsBecomeEmpty(t *testing.T) {
	page := NewPage[string](nil, math.MaxInt, 10, 3)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNext())
	assert.True(t, page.HasPrev())
	assert.Equal(t, 1, page.Pages())
}
