package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"sathorn/internal/model"
)

// MemoryCatalogue keeps properties in insertion order for the process lifetime
type MemoryCatalogue struct {
	mu       sync.RWMutex
	items    []model.Property
	byID     map[int64]int
	nextID   int64
	validate *validator.Validate
}

// NewMemoryCatalogue creates an empty catalogue whose first id is 1
func NewMemoryCatalogue() *MemoryCatalogue {
	return &MemoryCatalogue{
		byID:     make(map[int64]int),
		nextID:   1,
		validate: validator.New(),
	}
}

// Seed inserts every record in order. It stops at the first invalid record.
func (c *MemoryCatalogue) Seed(ctx context.Context, properties []model.Property) error {
	for _, p := range properties {
		if _, err := c.Create(ctx, p); err != nil {
			return fmt.Errorf("seed %q: %w", p.Name, err)
		}
	}
	return nil
}

// GetAll returns copies of every property in insertion order
func (c *MemoryCatalogue) GetAll(_ context.Context) []model.Property {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Property, len(c.items))
	for i, p := range c.items {
		out[i] = p.Clone()
	}
	return out
}

// GetByID returns a copy of the property with the given id
func (c *MemoryCatalogue) GetByID(_ context.Context, id int64) (model.Property, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.byID[id]
	if !ok {
		return model.Property{}, fmt.Errorf("property %d: %w", id, model.ErrNotFound)
	}
	return c.items[idx].Clone(), nil
}

// Create validates p, assigns the next id and stores a copy.
// Any id already set on p is ignored.
func (c *MemoryCatalogue) Create(_ context.Context, p model.Property) (model.Property, error) {
	if err := c.validate.Struct(p); err != nil {
		return model.Property{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stored := p.Clone()
	stored.ID = c.nextID
	c.nextID++

	c.byID[stored.ID] = len(c.items)
	c.items = append(c.items, stored)

	return stored.Clone(), nil
}

// MemoryQueryLog is the default query log, lost on restart
type MemoryQueryLog struct {
	mu      sync.Mutex
	records []model.AIQuery
	nextID  int64
	now     func() time.Time
}

// NewMemoryQueryLog creates an empty query log
func NewMemoryQueryLog() *MemoryQueryLog {
	return &MemoryQueryLog{nextID: 1, now: time.Now}
}

// Append stores q with the next id and the current time
func (l *MemoryQueryLog) Append(_ context.Context, q model.AIQuery) (model.AIQuery, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	q.ID = l.nextID
	l.nextID++
	q.CreatedAt = l.now().UTC()
	l.records = append(l.records, q)

	return q, nil
}

// Recent returns up to limit records, newest first
func (l *MemoryQueryLog) Recent(_ context.Context, limit int) ([]model.AIQuery, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 {
		return []model.AIQuery{}, nil
	}
	if limit > len(l.records) {
		limit = len(l.records)
	}

	out := make([]model.AIQuery, 0, limit)
	for i := len(l.records) - 1; i >= len(l.records)-limit; i-- {
		out = append(out, l.records[i])
	}
	return out, nil
}
