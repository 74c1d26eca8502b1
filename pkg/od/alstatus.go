package od

// ALStatusCode describes one documented ETG.1000.6 AL status code: when it
// can occur and which state-machine transition reports it.
type ALStatusCode struct {
	Name             string
	Code             uint16
	OccurrenceTiming string
	TransitionState  string
	Reference        string
}

var alStatusCodes = []ALStatusCode{
	{"NoError", 0x0000, "Any", "Current", "ETG.1000.6"},
	{"UnspecifiedError", 0x0001, "Any", "Any +E", "ETG.1000.6"},
	{"NoMemory", 0x0002, "Any", "Any +E", "ETG.1000.6"},
	{"InvalidDeviceSetup", 0x0003, "PS", "P +E", "Additionalcode"},
	{"InvalidRevision", 0x0004, "PS", "P +E", "Additionalcode"},
	{"SiiEEPROMInformationDoesNotMatchFirmware", 0x0006, "IP", "I +E", "Additionalcode"},
	{"FirmwareUpdateNotSuccessful", 0x0007, "Boot", "I +E", "Additionalcode"},
	{"LicenseError", 0x000E, "Any", "I +E", "Additionalcode"},
	{"InvalidRequestedStateChange", 0x0011, "Any", "Current +E(not O +E)", "ETG.1000.6"},
	{"UnknownRequestedState", 0x0012, "Any", "Current +E(not O +E)", "ETG.1000.6"},
	{"BootstrapNotSupported", 0x0013, "IB", "I +E", "ETG.1000.6"},
	{"NoValidFirmware", 0x0014, "IP", "I +E", "ETG.1000.6"},
	{"InvalidMailboxConfigurationBOOT", 0x0015, "IB", "I +E", "ETG.1000.6"},
	{"InvalidMailboxConfigurationPREOP", 0x0016, "IP", "I +E", "ETG.1000.6"},
	{"InvalidSyncManagerConfiguration", 0x0017, "PS, SO", "Current +E(not O +E)", "ETG.1000.6"},
	{"NoValidInputsAvailable", 0x0018, "O, SO", "S +E", "ETG.1000.6"},
	{"NoValidOutputs", 0x0019, "O, SO", "S +E", "ETG.1000.6"},
	{"SynchronizationError", 0x001A, "O, SO", "S +E", "ETG.1000.6"},
	{"SyncManagerWatchdog", 0x001B, "O, S", "S +E", "ETG.1000.6"},
	{"InvalidSyncManagerTypes", 0x001C, "O, S, PS", "S +E", "ETG.1000.6"},
	{"InvalidOutputConfiguration", 0x001D, "O, S, PS", "S +E", "ETG.1000.6"},
	{"InvalidInputConfiguration", 0x001E, "O, S, PS", "S +E", "ETG.1000.6"},
	{"InvalidWatchDogConfiguration", 0x001F, "O, S, PS", "P +E", "ETG.1000.6"},
	{"SlaveNeedsColdstart", 0x0020, "Any", "Current +E(not O +E)", "ETG.1000.6"},
	{"SlaveNeedsInit", 0x0021, "B, P, S, O", "Current +E(not O +E)", "ETG.1000.6"},
	{"SlaveNeedsPREOP", 0x0022, "S, O", "Current +E(not O +E)", "ETG.1000.6"},
	{"SlaveNeedsSAFEOP", 0x0023, "O", "Current +E(not O +E)", "ETG.1000.6"},
	{"InvalidInputMapping", 0x0024, "PS", "P +E", "ETG.1000.6"},
	{"InvalidOutputMapping", 0x0025, "PS", "P +E", "ETG.1000.6"},
	{"InconsistentSettings", 0x0026, "PS", "P +E", "ETG.1000.6"},
	{"FreeRunNotSupported", 0x0027, "PS", "P +E", "ETG.1000.6"},
	{"SynchronizationNotSupported", 0x0028, "PS", "P +E", "ETG.1000.6"},
	{"FreeRunNeeds3BufferMode", 0x0029, "PS", "P +E", "ETG.1000.6"},
	{"BackgroundWatchdog", 0x002A, "S, O", "P +E", "ETG.1000.6"},
	{"NoValidInputsAndOutputs", 0x002B, "O, SO", "S +E", "ETG.1000.6"},
	{"FatalSyncError", 0x002C, "O", "S +E", "ETG.1000.6"},
	{"NoSyncError", 0x002D, "SO", "S +E", "ETG.1000.6"},
	{"CycleTimeTooSmall", 0x002E, "SO", "S +E", "AdditionalCode"},
	{"InvalidDcSyncConfiguration", 0x0030, "O, SO, PS", "P +E,S +E", "ETG.1000.6"},
	{"InvalidDcLatchConfiguration", 0x0031, "O, SO, PS", "P +E,S +E", "ETG.1000.6"},
	{"PllError", 0x0032, "S, O", "S +E", "ETG.1000.6"},
	{"DcSyncIoError", 0x0033, "O, SO", "S +E", "ETG.1000.6"},
	{"DcSyncTimeoutError", 0x0034, "O, SO", "S +E", "ETG.1000.6"},
	{"DcInvalidSyncCycleTime", 0x0035, "PS", "P +E", "ETG.1000.6"},
	{"DcSync0CycleTime", 0x0036, "PS", "P +E", "ETG.1000.6"},
	{"DcSync1CycleTime", 0x0037, "PS", "P +E", "ETG.1000.6"},
	{"MbxAoe", 0x0041, "B, P, S, O", "Current +ES +E", "ETG.1000.6"},
	{"MbxEoe", 0x0042, "B, P, S, O", "Current +ES +E", "ETG.1000.6"},
	{"MbxCoe", 0x0043, "B, P, S, O", "Current +ES +E", "ETG.1000.6"},
	{"MbxFoe", 0x0044, "B, P, S, O", "Current +ES +E", "ETG.1000.6"},
	{"MbxSoe", 0x0045, "B, P, S, O", "Current +ES +E", "ETG.1000.6"},
	{"MbxVoe", 0x004F, "B, P, S, O", "Current +ES +E", "ETG.1000.6"},
	{"EepromNoAccess", 0x0050, "Any", "Any +E(not O +E)", "ETG.1000.6"},
	{"EepromError", 0x0051, "Any", "Any +E(not O +E)", "ETG.1000.6"},
	{"ExternalHardwareNotReady", 0x0052, "Any", "Any +E(not O +E)", "Additionalcode"},
	{"SlaveRestartedLocally", 0x0060, "Any", "I", "ETG.1000.6"},
	{"DeviceIdentificationValueUpdated", 0x0061, "P", "P +E", "ETG.1000.6"},
	{"DetectedModuleIdentListDoesNotMatch", 0x0070, "PS", "P +E", "Additionalcode"},
	{"SupplyVoltageTooLow", 0x0080, "Any", "Any +E(not O +E)", "Additionalcode"},
	{"SupplyVoltageTooHigh", 0x0081, "Any", "Any +E(not O +E)", "Additionalcode"},
	{"TemperatureTooLow", 0x0082, "Any", "Any +E(not O +E)", "Additionalcode"},
	{"TemperatureTooHigh", 0x0083, "Any", "Any +E(not O +E)", "Additionalcode"},
	{"ApplicationControllerAvailable", 0x00F0, "I", "I +E", "Additionalcode"},
}

// LookupALStatusCode returns the documented description of code.
func LookupALStatusCode(code uint16) (ALStatusCode, bool) {
	for _, def := range alStatusCodes {
		if def.Code == code {
			return def, true
		}
	}
	return ALStatusCode{}, false
}

// ALState is one AL state-machine status/control word value.
type ALState uint16

const (
	ALStateInit         ALState = 0x0001
	ALStatePreOp        ALState = 0x0002
	ALStateSafeOp       ALState = 0x0004
	ALStateOp           ALState = 0x0008
	ALStateRejected     ALState = 0x0010
	ALStateCodeUpdated  ALState = 0x0020
	alStateMachineMask          = 0x000F
)

func (s ALState) String() string {
	switch s {
	case ALStateInit:
		return "INIT"
	case ALStatePreOp:
		return "PREOP"
	case ALStateSafeOp:
		return "SAFEOP"
	case ALStateOp:
		return "OP"
	case ALStateRejected:
		return "REJECTED"
	case ALStateCodeUpdated:
		return "ALCODE_UPDATED"
	default:
		return "UNKNOWN"
	}
}

// LoopControl is the per-port loop control mode reported in LinkControl.
type LoopControl uint8

const (
	// LoopAuto opens the port loop automatically when a physical link is
	// established and closes it when the link is lost.
	LoopAuto LoopControl = iota
	// LoopAutoClose closes when the link is lost but reopens only after an
	// explicit request from the main device.
	LoopAutoClose
	// LoopOpen keeps the loop open independently of the physical link.
	LoopOpen
	// LoopClose keeps the loop closed independently of the physical link.
	LoopClose
)

func (l LoopControl) String() string {
	switch l {
	case LoopAuto:
		return "Auto"
	case LoopAutoClose:
		return "AutoClose"
	case LoopOpen:
		return "Open"
	case LoopClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// PortStatus is the decoded link state of one EtherCAT port.
//
// UsedForCommunication false with LinkUp true means the port is a redundancy
// link. A LoopControl other than LoopAuto detaches the port from the ring.
type PortStatus struct {
	UsedForCommunication bool
	LinkUp               bool
	LoopControl          LoopControl
}
