package od

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEntry(t *testing.T, c *Container, name string, value any) {
	t.Helper()
	entry, ok := c.GetByName(name)
	require.True(t, ok, name)
	entry.Enable = true
	entry.Value = value
}

func TestLookupALStatusCode(t *testing.T) {
	def, ok := LookupALStatusCode(0x001B)
	require.True(t, ok)
	assert.Equal(t, "SyncManagerWatchdog", def.Name)
	assert.Equal(t, "ETG.1000.6", def.Reference)

	_, ok = LookupALStatusCode(0x1234)
	assert.False(t, ok)
}

func TestDiagnosisPortStatus(t *testing.T) {
	c := NewDiagnosisData()
	// ports 0 and 1 used for communication, port 1 link up,
	// port 1 loop control AutoClose
	setEntry(t, c, "LinkConnStatus", uint8(0x23))
	setEntry(t, c, "LinkControl", uint8(0x04))

	ports, ok := Diagnosis(c).PortStatus()
	require.True(t, ok)
	assert.True(t, ports[0].UsedForCommunication)
	assert.False(t, ports[0].LinkUp)
	assert.Equal(t, LoopAuto, ports[0].LoopControl)
	assert.True(t, ports[1].UsedForCommunication)
	assert.True(t, ports[1].LinkUp)
	assert.Equal(t, LoopAutoClose, ports[1].LoopControl)
	assert.False(t, ports[3].UsedForCommunication)
}

func TestDiagnosisPortStatusRequiresBothEntries(t *testing.T) {
	c := NewDiagnosisData()
	setEntry(t, c, "LinkConnStatus", uint8(0x01))
	_, ok := Diagnosis(c).PortStatus()
	assert.False(t, ok)
}

func TestDiagnosisALStates(t *testing.T) {
	c := NewDiagnosisData()
	setEntry(t, c, "ALStatus", uint16(0x0008))
	setEntry(t, c, "ALControl", uint16(0x0012))
	setEntry(t, c, "ALStatusCode", uint16(0x0021))

	view := Diagnosis(c)
	current, ok := view.ALCurrentState()
	require.True(t, ok)
	assert.Equal(t, ALStateOp, current)

	control, ok := view.ALControlState()
	require.True(t, ok)
	assert.Equal(t, ALStatePreOp, control)

	rejected, ok := view.IsRejected()
	require.True(t, ok)
	assert.True(t, rejected)

	updated, ok := view.IsUpdated()
	require.True(t, ok)
	assert.False(t, updated)

	code, ok := view.ALStatusCodeInfo()
	require.True(t, ok)
	assert.Equal(t, "SlaveNeedsInit", code.Name)
}

func TestConfigurationLinkViews(t *testing.T) {
	c := NewConfigurationData()
	setEntry(t, c, "LinkStatus", uint8(0x14))
	setEntry(t, c, "LinkPreset", uint8(0x21))
	setEntry(t, c, "MailboxProtocolsSupported", uint16(0x000C))
	setEntry(t, c, "Flags", uint8(0x0A))

	view := Configuration(c)
	status, ok := view.LinkStatus()
	require.True(t, ok)
	assert.True(t, status.LinkMissing)
	assert.True(t, status.Port0)
	assert.False(t, status.NoLink)

	preset, ok := view.LinkPreset()
	require.True(t, ok)
	assert.True(t, preset.Port1ExpectsConnection)
	assert.True(t, preset.Port2ExpectsPhysicalLink)
	assert.False(t, preset.Port3ExpectsConnection)

	protocols, ok := view.MailboxProtocols()
	require.True(t, ok)
	assert.True(t, protocols.CoE)
	assert.True(t, protocols.FoE)
	assert.False(t, protocols.EoE)

	port, ok := view.RedundancyAdapterPort()
	require.True(t, ok)
	assert.Equal(t, uint8(2), port)

	hot, ok := view.HotConnect()
	require.True(t, ok)
	assert.True(t, hot)

	head, ok := view.HotConnectHead()
	require.True(t, ok)
	assert.False(t, head)
}

func TestConfigurationViewDisabledEntries(t *testing.T) {
	view := Configuration(NewConfigurationData())
	_, ok := view.LinkStatus()
	assert.False(t, ok)
	_, ok = view.MailboxProtocols()
	assert.False(t, ok)
}

func TestAddressList(t *testing.T) {
	c := NewConfiguredAddressList()
	setEntry(t, c, "NumberOfSlaves", uint8(2))
	setEntry(t, c, "ConfiguredAddress", []uint16{1001, 1002, 0, 0})

	addresses, ok := AddressList(c)
	require.True(t, ok)
	assert.Equal(t, []uint16{1001, 1002}, addresses)

	_, ok = AddressList(NewConfiguredAddressList())
	assert.False(t, ok)
}
