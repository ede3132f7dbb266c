// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeightFilter(t *testing.T) {
	tests := []struct {
		name string
		r    HeightRange
		want string
	}{
		{
			name: "5..=10",
			r:    HeightsInclusive(5, 10),
			want: `{"filter_by_height":true,"min_height":4,"max_height":10}`,
		},
		{
			name: "5..10",
			r:    HeightsBetween(5, 10),
			want: `{"filter_by_height":true,"min_height":4,"max_height":9}`,
		},
		{
			name: "..10",
			r:    HeightsUntil(10),
			want: `{"filter_by_height":true,"max_height":9}`,
		},
		{
			name: "..=10",
			r:    HeightsThrough(10),
			want: `{"filter_by_height":true,"max_height":10}`,
		},
		{
			name: "5..",
			r:    HeightsFrom(5),
			want: `{"filter_by_height":true,"min_height":4}`,
		},
		{
			name: "..",
			r:    AllHeights(),
			want: `{"filter_by_height":true}`,
		},
		{
			name: "excluded start",
			r:    HeightRange{Start: Bound{Kind: Excluded, Height: 5}, End: Bound{Kind: Included, Height: 6}},
			want: `{"filter_by_height":true,"min_height":5,"max_height":6}`,
		},
		{
			name: "..0 saturates",
			r:    HeightsUntil(0),
			want: `{"filter_by_height":true,"max_height":0}`,
		},
		{
			name: "0..=3 saturates",
			r:    HeightsInclusive(0, 3),
			want: `{"filter_by_height":true,"min_height":0,"max_height":3}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.r
			assert.Equal(t, tt.want, marshalParams(t, Named(heightFilter(&r))))
		})
	}
}

func TestHeightFilterAbsent(t *testing.T) {
	assert.Equal(t, `{}`, marshalParams(t, Named(heightFilter(nil))))
}

func TestMinMaxHeight(t *testing.T) {
	_, ok := AllHeights().MinHeight()
	assert.False(t, ok)
	_, ok = AllHeights().MaxHeight()
	assert.False(t, ok)

	h, ok := HeightsBetween(1, 1).MaxHeight()
	assert.True(t, ok)
	assert.Equal(t, uint64(0), h)
}
