// Package discovery walks the SDO Information Service to learn the server's
// object dictionary: OD-List, then per index the Object-Description, then
// per sub-entry the Entry-Description, populating a registry of containers.
package discovery

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/samsamfire/etg1510gw/pkg/metrics"
	"github.com/samsamfire/etg1510gw/pkg/od"
	"github.com/samsamfire/etg1510gw/pkg/sdo"
	"github.com/samsamfire/etg1510gw/pkg/wire"
	log "github.com/sirupsen/logrus"
)

// Driver runs discovery through an info-mode controller and owns the
// resulting registry.
type Driver struct {
	controller *sdo.Controller
	catalogue  *od.Catalogue
	registry   *od.Registry
}

// New builds a driver. controller must have been created in info mode.
func New(controller *sdo.Controller, catalogue *od.Catalogue, registry *od.Registry) *Driver {
	return &Driver{controller: controller, catalogue: catalogue, registry: registry}
}

// Registry returns the registry the driver populates.
func (d *Driver) Registry() *od.Registry {
	return d.registry
}

// Discover fetches the OD-List and, for each reported index with a known
// template, instantiates its container and fills entry names, sizes and
// enable flags from the description replies. A failure on one index is
// logged and skipped; containers already registered stay valid.
func (d *Driver) Discover(ctx context.Context) error {
	log.Info("fetching OD list")
	meta := &od.Metadata{}
	bound, err := d.controller.Fetch(ctx, meta, wire.OpGetODListReq, od.NewODList())
	if err != nil {
		return fmt.Errorf("OD list: %w", err)
	}
	if code, ok := abortCode(bound); ok {
		return fmt.Errorf("OD list aborted with code 0x%08X", code)
	}
	indexEntry, ok := bound.GetByName("ObjectIndex")
	if !ok {
		return fmt.Errorf("OD list reply carries no object indices")
	}
	indices := od.Uint16Values(indexEntry.Value)
	log.Infof("server exposes %d indices", len(indices))

	for _, index := range indices {
		if err := d.discoverIndex(ctx, index); err != nil {
			log.Warnf("index x%x: %v, skipping", index, err)
		}
	}
	metrics.DiscoveredIndices.Set(float64(d.registry.Len()))
	log.Info("information data fetch complete")
	return nil
}

func (d *Driver) discoverIndex(ctx context.Context, index uint16) error {
	member := d.catalogue.Find(index)
	if member == nil {
		log.Warnf("index x%x is not defined for any specification", index)
		return nil
	}
	container := member.Metadata.NewResponse()
	d.registry.Put(index, container)

	log.Infof("==== index x%x, template %s", index, container.Kind)
	meta := &od.Metadata{Index: index}
	bound, err := d.controller.Fetch(ctx, meta, wire.OpGetDescriptionReq, od.NewDescription())
	if err != nil {
		return fmt.Errorf("object description: %w", err)
	}
	member.Metadata.MaxSubIndex = 0
	if maxSub, ok := bound.GetByName("MaxSubindex"); ok && bound.Kind != "SDOInfoError" {
		if value, ok := od.UintValue(maxSub.Value); ok {
			member.Metadata.MaxSubIndex = uint8(value)
		}
	}
	log.Infof("max sub index: %d", member.Metadata.MaxSubIndex)

	for _, entry := range container.Entries {
		if err := d.discoverEntry(ctx, index, entry); err != nil {
			return err
		}
	}
	log.Debugf("discovered container: %s", spew.Sdump(container))
	return nil
}

func (d *Driver) discoverEntry(ctx context.Context, index uint16, entry *od.Entry) error {
	meta := &od.Metadata{Index: index, SubIndex: entry.SubIndex}
	bound, err := d.controller.Fetch(ctx, meta, wire.OpGetEntryReq, od.NewEntryDescription())
	if err != nil {
		return fmt.Errorf("entry description x%x:%d: %w", index, entry.SubIndex, err)
	}
	if code, ok := abortCode(bound); ok {
		log.Debugf("entry x%x:%d aborted with code 0x%08X, left disabled", index, entry.SubIndex, code)
		return nil
	}
	if data, ok := bound.GetByName("Data"); ok {
		if name, ok := od.StringValue(data.Value); ok {
			entry.Name = name
		}
	}
	if bitLength, ok := bound.GetByName("BitLength"); ok && entry.FormatCode != od.FormatString && !entry.Sequence {
		if bits, ok := od.UintValue(bitLength.Value); ok {
			entry.Size = uint32(bits / 8)
		}
	}
	entry.Enable = true
	log.Debugf("entry x%x:%d enabled, size %d", index, entry.SubIndex, entry.Size)
	return nil
}

// abortCode reports whether the controller substituted an SDOInfoError
// container for the reply.
func abortCode(c *od.Container) (uint32, bool) {
	if c.Kind != "SDOInfoError" {
		return 0, false
	}
	entry, ok := c.GetByName("AbortCode")
	if !ok {
		return 0, false
	}
	value, _ := od.UintValue(entry.Value)
	return uint32(value), true
}
