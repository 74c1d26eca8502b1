package od

// Derived read-only views over bound containers. Each accessor returns
// ok=false when the sub-entries it needs were not enabled by discovery.

func entryUint(c *Container, name string) (uint64, bool) {
	e, ok := c.GetByName(name)
	if !ok || !e.Enable {
		return 0, false
	}
	return UintValue(e.Value)
}

// DiagnosisView decodes the bit-packed sub-entries of a bound 0xAxxx
// DiagnosisData container.
type DiagnosisView struct {
	c *Container
}

func Diagnosis(c *Container) DiagnosisView {
	return DiagnosisView{c: c}
}

// ALStatusCodeInfo resolves the ALStatusCode sub-entry against the
// documented ETG.1000.6 code table.
func (v DiagnosisView) ALStatusCodeInfo() (ALStatusCode, bool) {
	code, ok := entryUint(v.c, "ALStatusCode")
	if !ok {
		return ALStatusCode{}, false
	}
	return LookupALStatusCode(uint16(code))
}

// PortStatus decodes LinkConnStatus and LinkControl into one status per
// EtherCAT port.
func (v DiagnosisView) PortStatus() ([4]PortStatus, bool) {
	var ports [4]PortStatus
	conn, okConn := entryUint(v.c, "LinkConnStatus")
	ctrl, okCtrl := entryUint(v.c, "LinkControl")
	if !okConn || !okCtrl {
		return ports, false
	}
	for p := 0; p < 4; p++ {
		ports[p] = PortStatus{
			UsedForCommunication: conn&(1<<p) != 0,
			LinkUp:               conn&(16<<p) != 0,
			LoopControl:          LoopControl((ctrl >> (p * 2)) & 0x3),
		}
	}
	return ports, true
}

// ALControlState is the state the main device commands through ALControl.
func (v DiagnosisView) ALControlState() (ALState, bool) {
	value, ok := entryUint(v.c, "ALControl")
	if !ok {
		return 0, false
	}
	return ALState(value) & alStateMachineMask, true
}

// ALCurrentState is the sub-device's current state from ALStatus.
func (v DiagnosisView) ALCurrentState() (ALState, bool) {
	value, ok := entryUint(v.c, "ALStatus")
	if !ok {
		return 0, false
	}
	return ALState(value) & alStateMachineMask, true
}

// IsRejected reports whether the last commanded state change was rejected.
func (v DiagnosisView) IsRejected() (bool, bool) {
	value, ok := entryUint(v.c, "ALControl")
	if !ok {
		return false, false
	}
	return ALState(value)&ALStateRejected != 0, true
}

// IsUpdated reports whether the AL status code was updated.
func (v DiagnosisView) IsUpdated() (bool, bool) {
	value, ok := entryUint(v.c, "ALControl")
	if !ok {
		return false, false
	}
	return ALState(value)&ALStateCodeUpdated != 0, true
}

// LinkStatus is the decoded 0x8nnn:35 bitfield.
type LinkStatus struct {
	NoLink       bool
	LinkNoComm   bool
	LinkMissing  bool
	LinkAdded    bool
	Port0        bool
	Port1        bool
	Port2        bool
	Port3        bool
}

// LinkPreset is the decoded 0x8nnn:36 bitfield: which ports expect a
// connected sub-device and which expect a physical link.
type LinkPreset struct {
	Port1ExpectsConnection   bool
	Port2ExpectsConnection   bool
	Port3ExpectsConnection   bool
	Port1ExpectsPhysicalLink bool
	Port2ExpectsPhysicalLink bool
	Port3ExpectsPhysicalLink bool
}

// MailboxProtocols lists which mailbox protocols the sub-device supports.
type MailboxProtocols struct {
	AoE bool
	EoE bool
	CoE bool
	FoE bool
	SoE bool
	VoE bool
}

// ConfigurationView decodes the bit-packed sub-entries of a bound 0x8xxx
// ConfigurationData container.
type ConfigurationView struct {
	c *Container
}

func Configuration(c *Container) ConfigurationView {
	return ConfigurationView{c: c}
}

func (v ConfigurationView) LinkStatus() (LinkStatus, bool) {
	value, ok := entryUint(v.c, "LinkStatus")
	if !ok {
		return LinkStatus{}, false
	}
	return LinkStatus{
		NoLink:      value&0x01 != 0,
		LinkNoComm:  value&0x02 != 0,
		LinkMissing: value&0x04 != 0,
		LinkAdded:   value&0x08 != 0,
		Port0:       value&0x10 != 0,
		Port1:       value&0x20 != 0,
		Port2:       value&0x40 != 0,
		Port3:       value&0x80 != 0,
	}, true
}

func (v ConfigurationView) LinkPreset() (LinkPreset, bool) {
	value, ok := entryUint(v.c, "LinkPreset")
	if !ok {
		return LinkPreset{}, false
	}
	return LinkPreset{
		Port1ExpectsConnection:   value&0x01 != 0,
		Port2ExpectsConnection:   value&0x02 != 0,
		Port3ExpectsConnection:   value&0x04 != 0,
		Port1ExpectsPhysicalLink: value&0x10 != 0,
		Port2ExpectsPhysicalLink: value&0x20 != 0,
		Port3ExpectsPhysicalLink: value&0x40 != 0,
	}, true
}

func (v ConfigurationView) MailboxProtocols() (MailboxProtocols, bool) {
	value, ok := entryUint(v.c, "MailboxProtocolsSupported")
	if !ok {
		return MailboxProtocols{}, false
	}
	return MailboxProtocols{
		AoE: value&0x01 != 0,
		EoE: value&0x02 != 0,
		CoE: value&0x04 != 0,
		FoE: value&0x08 != 0,
		SoE: value&0x10 != 0,
		VoE: value&0x20 != 0,
	}, true
}

// RedundancyAdapterPort names the port connected to the secondary main
// device adapter; zero means unused.
func (v ConfigurationView) RedundancyAdapterPort() (uint8, bool) {
	value, ok := entryUint(v.c, "Flags")
	if !ok {
		return 0, false
	}
	return uint8(value & 0x3), true
}

// HotConnectHead reports whether this terminal heads a hot connect group.
func (v ConfigurationView) HotConnectHead() (bool, bool) {
	value, ok := entryUint(v.c, "Flags")
	if !ok {
		return false, false
	}
	return value&0x4 != 0, true
}

// HotConnect reports whether this terminal belongs to a hot connect group.
func (v ConfigurationView) HotConnect() (bool, bool) {
	value, ok := entryUint(v.c, "Flags")
	if !ok {
		return false, false
	}
	return value&0x8 != 0, true
}

// AddressList returns the first NumberOfSlaves configured station addresses
// of a bound 0xF020 ConfiguredAddressList container.
func AddressList(c *Container) ([]uint16, bool) {
	e, ok := c.GetByName("ConfiguredAddress")
	if !ok || !e.Enable {
		return nil, false
	}
	addresses := Uint16Values(e.Value)
	if count, ok := entryUint(c, "NumberOfSlaves"); ok && int(count) < len(addresses) {
		addresses = addresses[:count]
	}
	return addresses, true
}
