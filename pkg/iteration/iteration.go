// Package iteration reads back the discovered object dictionary: a pull
// cursor that issues one SDO Upload per watched index and yields the
// populated container.
package iteration

import (
	"context"
	"errors"
	"fmt"

	etg1510gw "github.com/samsamfire/etg1510gw"
	"github.com/samsamfire/etg1510gw/pkg/od"
	"github.com/samsamfire/etg1510gw/pkg/sdo"
	log "github.com/sirupsen/logrus"
)

// Item is one yielded (index, container) pair.
type Item struct {
	Index     uint16
	Container *od.Container
}

// Cursor walks a watch list of indices, or the whole registry when the list
// is nil, uploading each in order. Next returns nil at the end of a pass and
// a further call restarts from the first element.
type Cursor struct {
	controller *sdo.Controller
	catalogue  *od.Catalogue
	registry   *od.Registry
	watchList  []uint16
	position   int
}

// New builds a cursor. controller must have been created in upload mode.
func New(controller *sdo.Controller, catalogue *od.Catalogue, registry *od.Registry, watchList []uint16) *Cursor {
	return &Cursor{controller: controller, catalogue: catalogue, registry: registry, watchList: watchList}
}

func (c *Cursor) indices() []uint16 {
	if c.watchList != nil {
		return c.watchList
	}
	return c.registry.Indices()
}

// Next uploads the next watched index and returns it with its container.
// A nil item signals the end of the pass; the cursor then rewinds. A response
// shorter than its declared size (sdo.ErrEndOfStream) also ends the pass this
// way. On any other error the cursor still advances, so a caller choosing to
// continue past a failed index just calls Next again.
func (c *Cursor) Next(ctx context.Context) (*Item, error) {
	indices := c.indices()
	if c.position >= len(indices) {
		c.position = 0
		return nil, nil
	}
	index := indices[c.position]
	c.position++
	container, err := c.fetch(ctx, index)
	if errors.Is(err, sdo.ErrEndOfStream) {
		c.position = 0
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &Item{Index: index, Container: container}, nil
}

// Get uploads one index outside the walk.
func (c *Cursor) Get(ctx context.Context, index uint16) (*od.Container, error) {
	return c.fetch(ctx, index)
}

func (c *Cursor) fetch(ctx context.Context, index uint16) (*od.Container, error) {
	container, ok := c.registry.Get(index)
	if !ok {
		return nil, fmt.Errorf("%w: x%x", etg1510gw.ErrUnknownIndex, index)
	}
	member := c.catalogue.Find(index)
	if member == nil {
		return nil, fmt.Errorf("%w: x%x", etg1510gw.ErrUnknownIndex, index)
	}
	log.Debugf("==== fetch and update data index x%x", index)
	meta := member.Metadata
	meta.Index = index
	if _, err := c.controller.Fetch(ctx, &meta, 0, container); err != nil {
		return nil, err
	}
	return container, nil
}
