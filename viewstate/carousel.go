package viewstate

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Select for an index outside [0, count).
var ErrIndexOutOfRange = errors.New("viewstate: carousel index out of range")

// Carousel is a wrapping position over a fixed number of items.
// With zero items the index stays at 0 and every move is a no-op.
type Carousel struct {
	index int
	count int
}

// NewCarousel returns a carousel over count items positioned at 0.
func NewCarousel(count int) Carousel {
	if count < 0 {
		count = 0
	}
	return Carousel{count: count}
}

func (c Carousel) Index() int { return c.index }
func (c Carousel) Count() int { return c.count }

// Next moves forward one item, wrapping to 0 after the last.
func (c *Carousel) Next() {
	if c.count == 0 {
		return
	}
	c.index = (c.index + 1) % c.count
}

// Prev moves back one item, wrapping to the last before 0.
func (c *Carousel) Prev() {
	if c.count == 0 {
		return
	}
	c.index = (c.index - 1 + c.count) % c.count
}

// Select jumps to i. The index is unchanged when i is out of range.
func (c *Carousel) Select(i int) error {
	if i < 0 || i >= c.count {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, c.count)
	}
	c.index = i
	return nil
}

// Resize changes the number of items and wraps the index into the new range.
func (c *Carousel) Resize(count int) {
	if count <= 0 {
		c.count, c.index = 0, 0
		return
	}
	c.count = count
	c.index %= count
}
