package service

import (
	"sort"
	"sync"

	"github.com/candleworks/storefront/internal/models"
)

// Cart is the in-memory cart for the active session: a mapping from
// productNumber to its line. Nothing is persisted; a restart starts from an
// empty cart. Safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	lines map[int]models.CartLine
}

func NewCart() *Cart {
	return &Cart{lines: make(map[int]models.CartLine)}
}

// AddLine inserts the product with quantity 1, or increments the existing
// line by 1. No stock check happens here; the backend rejects overdrawn
// orders at creation time.
func (c *Cart) AddLine(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, exists := c.lines[product.ProductNumber]
	if exists {
		line.Quantity++
		c.lines[product.ProductNumber] = line

		return
	}

	c.lines[product.ProductNumber] = models.CartLine{Product: product, Quantity: 1}
}

func (c *Cart) RemoveLine(productNumber int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.lines, productNumber)
}

// SetQuantity overwrites the line's quantity. A quantity of zero or less
// removes the line; quantities are always positive.
func (c *Cart) SetQuantity(productNumber, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		delete(c.lines, productNumber)

		return
	}

	line, exists := c.lines[productNumber]
	if !exists {
		return
	}

	line.Quantity = quantity
	c.lines[productNumber] = line
}

// Lines returns a snapshot of the cart ordered by productNumber.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]models.CartLine, 0, len(c.lines))
	for _, line := range c.lines {
		lines = append(lines, line)
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Product.ProductNumber < lines[j].Product.ProductNumber
	})

	return lines
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}

	return total
}

// Count is the number of units across all lines, used for the cart badge.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}

	return count
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = make(map[int]models.CartLine)
}
