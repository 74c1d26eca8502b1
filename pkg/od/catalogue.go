package od

import (
	etg1510gw "github.com/samsamfire/etg1510gw"
)

// Metadata describes how one OD index kind is addressed on the wire and
// which container template holds its reply. MaxSubIndex is filled in by the
// discovery driver from the Object-Description reply.
type Metadata struct {
	Index                   uint16
	SubIndex                uint8
	CompleteAccessSupported bool
	MaxSubIndex             uint8
	NewResponse             func() *Container
}

// MappingMember associates an inclusive index range with its metadata.
type MappingMember struct {
	Lo       uint16
	Hi       uint16
	Metadata Metadata
}

func (m *MappingMember) contains(index uint16) bool {
	return index >= m.Lo && index <= m.Hi
}

// Catalogue is the ordered list of mapping members. Lookup is first-match;
// overlapping ranges are a programming error and are rejected at build time.
type Catalogue struct {
	members []*MappingMember
}

// NewCatalogue builds a catalogue from members, failing on range overlap.
func NewCatalogue(members ...*MappingMember) (*Catalogue, error) {
	for i, a := range members {
		for _, b := range members[i+1:] {
			if a.Lo <= b.Hi && b.Lo <= a.Hi {
				return nil, etg1510gw.ErrRangeOverlap
			}
		}
	}
	return &Catalogue{members: members}, nil
}

// Find returns the first member whose range contains index, or nil.
func (c *Catalogue) Find(index uint16) *MappingMember {
	for _, m := range c.members {
		if m.contains(index) {
			return m
		}
	}
	return nil
}

// RangeStart returns the starting index of the range containing index.
func (c *Catalogue) RangeStart(index uint16) (uint16, bool) {
	if m := c.Find(index); m != nil {
		return m.Lo, true
	}
	return 0, false
}

// DefaultCatalogue returns the static ETG.1510 master OD table mapping index
// ranges to their container templates.
func DefaultCatalogue() *Catalogue {
	cat, err := NewCatalogue(
		&MappingMember{Lo: 0x1000, Hi: 0x1000, Metadata: Metadata{Index: 0x1000, NewResponse: NewDeviceType}},
		&MappingMember{Lo: 0x1008, Hi: 0x1008, Metadata: Metadata{Index: 0x1008, NewResponse: NewDeviceName}},
		&MappingMember{Lo: 0x1009, Hi: 0x1009, Metadata: Metadata{Index: 0x1009, NewResponse: NewHardwareVersion}},
		&MappingMember{Lo: 0x100A, Hi: 0x100A, Metadata: Metadata{Index: 0x100A, NewResponse: NewSoftwareVersion}},
		&MappingMember{Lo: 0x1018, Hi: 0x1018, Metadata: Metadata{Index: 0x1018, CompleteAccessSupported: true, NewResponse: NewIdentityObject}},
		&MappingMember{Lo: 0x8000, Hi: 0x8FFF, Metadata: Metadata{Index: 0x8000, CompleteAccessSupported: true, NewResponse: NewConfigurationData}},
		&MappingMember{Lo: 0x9000, Hi: 0x9FFF, Metadata: Metadata{Index: 0x9000, CompleteAccessSupported: true, NewResponse: NewInformationData}},
		&MappingMember{Lo: 0xA000, Hi: 0xAFFF, Metadata: Metadata{Index: 0xA000, CompleteAccessSupported: true, NewResponse: NewDiagnosisData}},
		&MappingMember{Lo: 0xF002, Hi: 0xF002, Metadata: Metadata{Index: 0xF002, CompleteAccessSupported: true, NewResponse: NewDetectModulesCommand}},
		&MappingMember{Lo: 0xF020, Hi: 0xF020, Metadata: Metadata{Index: 0xF020, CompleteAccessSupported: true, NewResponse: NewConfiguredAddressList}},
		&MappingMember{Lo: 0xF120, Hi: 0xF120, Metadata: Metadata{Index: 0xF120, CompleteAccessSupported: true, NewResponse: NewMasterDiagData}},
		&MappingMember{Lo: 0xF200, Hi: 0xF200, Metadata: Metadata{Index: 0xF200, CompleteAccessSupported: true, NewResponse: NewDiagInterfaceControl}},
	)
	if err != nil {
		panic(err)
	}
	return cat
}
