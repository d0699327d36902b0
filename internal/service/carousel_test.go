package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarousel_Navigation(t *testing.T) {
	tests := []struct {
		name          string
		start         Carousel
		move          func(c *Carousel)
		expectedIndex int
	}{
		{
			name:          "next",
			start:         Carousel{Index: 0},
			move:          func(c *Carousel) { c.Next(3) },
			expectedIndex: 1,
		},
		{
			name:          "next wraps to first",
			start:         Carousel{Index: 2},
			move:          func(c *Carousel) { c.Next(3) },
			expectedIndex: 0,
		},
		{
			name:          "prev",
			start:         Carousel{Index: 2},
			move:          func(c *Carousel) { c.Prev(3) },
			expectedIndex: 1,
		},
		{
			name:          "prev wraps to last",
			start:         Carousel{Index: 0},
			move:          func(c *Carousel) { c.Prev(3) },
			expectedIndex: 2,
		},
		{
			name:          "next on empty list",
			start:         Carousel{Index: 4},
			move:          func(c *Carousel) { c.Next(0) },
			expectedIndex: 0,
		},
		{
			name:          "prev on empty list",
			start:         Carousel{Index: 4},
			move:          func(c *Carousel) { c.Prev(0) },
			expectedIndex: 0,
		},
		{
			name:          "last",
			start:         Carousel{Index: 0},
			move:          func(c *Carousel) { c.Last(6) },
			expectedIndex: 5,
		},
		{
			name:          "last on empty list",
			start:         Carousel{Index: 3},
			move:          func(c *Carousel) { c.Last(0) },
			expectedIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.start
			c.Revealed = true

			tt.move(&c)

			assert.Equal(t, tt.expectedIndex, c.Index)
			assert.False(t, c.Revealed)
		})
	}
}

func TestCarousel_Toggle(t *testing.T) {
	c := Carousel{}

	c.Toggle()
	assert.True(t, c.Revealed)

	c.Toggle()
	assert.False(t, c.Revealed)
}

func TestCarousel_Clamp(t *testing.T) {
	tests := []struct {
		name             string
		start            Carousel
		n                int
		expectedIndex    int
		expectedRevealed bool
	}{
		{
			name:             "index still valid",
			start:            Carousel{Index: 1, Revealed: true},
			n:                3,
			expectedIndex:    1,
			expectedRevealed: true,
		},
		{
			name:          "index past the end",
			start:         Carousel{Index: 3, Revealed: true},
			n:             3,
			expectedIndex: 2,
		},
		{
			name:          "list emptied",
			start:         Carousel{Index: 0},
			n:             0,
			expectedIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.start

			c.Clamp(tt.n)

			assert.Equal(t, tt.expectedIndex, c.Index)
			assert.Equal(t, tt.expectedRevealed, c.Revealed)
		})
	}
}
