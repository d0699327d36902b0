package service

// Carousel is one viewer's position over the word list
type Carousel struct {
	Index    int
	Revealed bool
}

// Next moves to the following card, wrapping to the first
func (c *Carousel) Next(n int) {
	c.Revealed = false
	if n <= 0 {
		c.Index = 0
		return
	}
	c.Index = (c.Index + 1) % n
}

// Prev moves to the previous card, wrapping to the last
func (c *Carousel) Prev(n int) {
	c.Revealed = false
	if n <= 0 {
		c.Index = 0
		return
	}
	c.Index = (c.Index - 1 + n) % n
}

// Toggle shows or hides the translation of the current card
func (c *Carousel) Toggle() {
	c.Revealed = !c.Revealed
}

// Last jumps to the last card, e.g. one that was just added
func (c *Carousel) Last(n int) {
	c.Revealed = false
	if n <= 0 {
		c.Index = 0
		return
	}
	c.Index = n - 1
}

// Clamp keeps Index inside a list of n cards after the list shrank
func (c *Carousel) Clamp(n int) {
	if c.Index >= n {
		c.Index = n - 1
		c.Revealed = false
	}
	if c.Index < 0 {
		c.Index = 0
	}
}
