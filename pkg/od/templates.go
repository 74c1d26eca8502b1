package od

// Template factories produce a freshly initialized Container for one OD
// index kind, following the per-range SDO body layouts of the ETG.1510
// master object dictionary. Sizes given here are the pre-discovery defaults.
// The discovery driver's Entry-Description walk (see pkg/discovery)
// overwrites them for scalar entries only; string and sequence entries keep
// theirs until the binder grows the last one to fit the payload.

// NewDeviceType grounds object 0x1000.
func NewDeviceType() *Container {
	return NewContainer("DeviceType").
		Add(&Entry{Name: "DeviceType", SubIndex: 0, FormatCode: FormatU32, Size: 4})
}

// NewDeviceName grounds object 0x1008.
func NewDeviceName() *Container {
	return NewContainer("DeviceName").
		Add(&Entry{Name: "DeviceName", SubIndex: 0, FormatCode: FormatString, Size: 0})
}

// NewHardwareVersion grounds object 0x1009.
func NewHardwareVersion() *Container {
	return NewContainer("HardwareVersion").
		Add(&Entry{Name: "HardwareVersion", SubIndex: 0, FormatCode: FormatString, Size: 0})
}

// NewSoftwareVersion grounds object 0x100A.
func NewSoftwareVersion() *Container {
	return NewContainer("SoftwareVersion").
		Add(&Entry{Name: "SoftwareVersion", SubIndex: 0, FormatCode: FormatString, Size: 0})
}

// NewIdentityObject grounds object 0x1018.
func NewIdentityObject() *Container {
	return NewContainer("IdentityObject").
		Add(&Entry{Name: "NumberOfEntries", SubIndex: 0, FormatCode: FormatU16, Size: 2}).
		Add(&Entry{Name: "VendorID", SubIndex: 1, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "ProductCode", SubIndex: 2, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "RevisionNumber", SubIndex: 3, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "SerialNumber", SubIndex: 4, FormatCode: FormatU32, Size: 4})
}

// NewConfigurationData grounds objects 0x8000-0x8FFF.
func NewConfigurationData() *Container {
	return NewContainer("ConfigurationData").
		Add(&Entry{Name: "NumberOfEntries", SubIndex: 0, FormatCode: FormatU8, Size: 1}).
		Add(&Entry{Name: "FixedStationAddress", SubIndex: 1, FormatCode: FormatU16, Size: 2}).
		Add(&Entry{Name: "Type", SubIndex: 2, FormatCode: FormatString, Size: 16}).
		Add(&Entry{Name: "Name", SubIndex: 3, FormatCode: FormatString, Size: 32}).
		Add(&Entry{Name: "DeviceType", SubIndex: 4, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "VendorId", SubIndex: 5, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "ProductCode", SubIndex: 6, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "RevisionNumber", SubIndex: 7, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "SerialNumber", SubIndex: 8, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "MailboxOutSize", SubIndex: 33, FormatCode: FormatU16, Size: 2}).
		Add(&Entry{Name: "MailboxInSize", SubIndex: 34, FormatCode: FormatU16, Size: 2}).
		Add(&Entry{Name: "LinkStatus", SubIndex: 35, FormatCode: FormatU8, Size: 1}).
		Add(&Entry{Name: "LinkPreset", SubIndex: 36, FormatCode: FormatU8, Size: 1}).
		Add(&Entry{Name: "Flags", SubIndex: 37, FormatCode: FormatU8, Size: 1}).
		Add(&Entry{Name: "PortPhysics", SubIndex: 38, FormatCode: FormatU16, Size: 2}).
		Add(&Entry{Name: "MailboxProtocolsSupported", SubIndex: 39, FormatCode: FormatU16, Size: 2}).
		Add(&Entry{Name: "DiagHistoryObjectSupported", SubIndex: 40, FormatCode: FormatBool, Size: 1})
}

// NewInformationData grounds objects 0x9000-0x9FFF.
func NewInformationData() *Container {
	return NewContainer("InformationData").
		Add(&Entry{Name: "NumberOfEntries", SubIndex: 0, FormatCode: FormatU8, Size: 1}).
		Add(&Entry{Name: "StationAddress", SubIndex: 1, FormatCode: FormatU16, Size: 2}).
		Add(&Entry{Name: "VendorId", SubIndex: 2, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "ProductCode", SubIndex: 3, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "RevisionNumber", SubIndex: 4, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "SerialNumber", SubIndex: 5, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "DLStatusRegister", SubIndex: 6, FormatCode: FormatU32, Size: 4})
}

// NewDiagnosisData grounds objects 0xA000-0xAFFF.
func NewDiagnosisData() *Container {
	return NewContainer("DiagnosisData").
		Add(&Entry{Name: "NumberOfEntries", SubIndex: 0, FormatCode: FormatU8, Size: 1}).
		Add(&Entry{Name: "ALStatus", SubIndex: 1, FormatCode: FormatU16, Size: 2}).
		Add(&Entry{Name: "ALControl", SubIndex: 2, FormatCode: FormatU16, Size: 2}).
		Add(&Entry{Name: "ALStatusCode", SubIndex: 3, FormatCode: FormatU16, Size: 2}).
		Add(&Entry{Name: "LinkConnStatus", SubIndex: 4, FormatCode: FormatU8, Size: 1}).
		Add(&Entry{Name: "LinkControl", SubIndex: 5, FormatCode: FormatU8, Size: 1}).
		Add(&Entry{Name: "FixedAddressConnPort", SubIndex: 6, FormatCode: FormatU16, Size: 8, Sequence: true}).
		Add(&Entry{Name: "FrameErrorCounterPort", SubIndex: 10, FormatCode: FormatU32, Size: 16, Sequence: true}).
		Add(&Entry{Name: "CyclicWCErrorCounter", SubIndex: 14, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "SlaveNotPresentCounter", SubIndex: 15, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "AbnormalStateChangeCounter", SubIndex: 16, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "DisableAutomaticLinkControl", SubIndex: 17, FormatCode: FormatBool, Size: 1}).
		Add(&Entry{Name: "LastProtocolError", SubIndex: 18, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "NewDiagMessageAvailable", SubIndex: 19, FormatCode: FormatBool, Size: 1})
}

// NewDetectModulesCommand grounds object 0xF002.
func NewDetectModulesCommand() *Container {
	return NewContainer("DetectModulesCommand").
		Add(&Entry{Name: "NumberOfEntries", SubIndex: 0, FormatCode: FormatU8, Size: 1}).
		Add(&Entry{Name: "ScanCommandRequest", SubIndex: 1, FormatCode: FormatString, Size: 2}).
		Add(&Entry{Name: "ScanCommandStatus", SubIndex: 2, FormatCode: FormatU8, Size: 1}).
		Add(&Entry{Name: "ScanCommandResponse", SubIndex: 3, FormatCode: FormatString, Size: 6})
}

// NewConfiguredAddressList grounds object 0xF020.
func NewConfiguredAddressList() *Container {
	return NewContainer("ConfiguredAddressList").
		Add(&Entry{Name: "NumberOfSlaves", SubIndex: 0, FormatCode: FormatU8, Size: 1}).
		Add(&Entry{Name: "ConfiguredAddress", SubIndex: 1, FormatCode: FormatU16, Size: 250, Sequence: true})
}

// NewMasterDiagData grounds object 0xF120.
func NewMasterDiagData() *Container {
	return NewContainer("MasterDiagData").
		Add(&Entry{Name: "NumberOfEntries", SubIndex: 0, FormatCode: FormatU8, Size: 1}).
		Add(&Entry{Name: "CyclicLostFrames", SubIndex: 1, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "ACyclicLostFrames", SubIndex: 2, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "CyclicFramesPerSecond", SubIndex: 3, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "ACyclicFramesPerSecond", SubIndex: 4, FormatCode: FormatU32, Size: 4}).
		Add(&Entry{Name: "MasterState", SubIndex: 16, FormatCode: FormatU16, Size: 2})
}

// NewDiagInterfaceControl grounds object 0xF200.
func NewDiagInterfaceControl() *Container {
	return NewContainer("DiagInterfaceControl").
		Add(&Entry{Name: "NumberOfEntries", SubIndex: 0, FormatCode: FormatU8, Size: 1}).
		Add(&Entry{Name: "ResetDiagInfo", SubIndex: 16, FormatCode: FormatBool, Size: 1})
}

// NewODList is the reply container for a GetODListReq: ListType plus the
// variable-length list of object indices the sub-device exposes.
func NewODList() *Container {
	return NewContainer("ODList").
		Add(&Entry{Name: "ListType", SubIndex: 0, FormatCode: FormatU16, Size: 2, Enable: true}).
		Add(&Entry{Name: "ObjectIndex", SubIndex: 1, FormatCode: FormatU16, Size: 2, Sequence: true, Enable: true})
}

// NewDescription is the reply container for a GetDescriptionReq: Index,
// DataType, MaxSubindex, ObjectCode and Name. The discovery driver reads
// only MaxSubindex.
func NewDescription() *Container {
	return NewContainer("Description").
		Add(&Entry{Name: "Index", SubIndex: 0, FormatCode: FormatU16, Size: 2, Enable: true}).
		Add(&Entry{Name: "DataType", SubIndex: 1, FormatCode: FormatU16, Size: 2, Enable: true}).
		Add(&Entry{Name: "MaxSubindex", SubIndex: 2, FormatCode: FormatU8, Size: 1, Enable: true}).
		Add(&Entry{Name: "ObjectCode", SubIndex: 3, FormatCode: FormatU8, Size: 1, Enable: true}).
		Add(&Entry{Name: "Name", SubIndex: 4, FormatCode: FormatString, Size: 0, Enable: true})
}

// NewEntryDescription is the reply container for a GetEntryReq: the fields
// discovery copies onto the target container's matching entry.
func NewEntryDescription() *Container {
	return NewContainer("EntryDescription").
		Add(&Entry{Name: "Index", SubIndex: 0, FormatCode: FormatU16, Size: 2, Enable: true}).
		Add(&Entry{Name: "Subindex", SubIndex: 1, FormatCode: FormatU8, Size: 1, Enable: true}).
		Add(&Entry{Name: "ValueInfo", SubIndex: 2, FormatCode: FormatU8, Size: 1, Enable: true}).
		Add(&Entry{Name: "DataType", SubIndex: 3, FormatCode: FormatU16, Size: 2, Enable: true}).
		Add(&Entry{Name: "BitLength", SubIndex: 4, FormatCode: FormatU16, Size: 2, Enable: true}).
		Add(&Entry{Name: "ObjectAccess", SubIndex: 5, FormatCode: FormatU16, Size: 2, Enable: true}).
		Add(&Entry{Name: "Data", SubIndex: 6, FormatCode: FormatString, Size: 0, Enable: true})
}

// NewSDOInfoError is the substitute container bound in place of the target
// container when the peer answers an Information Service request with
// opcode SDO_INFO_ERR_REQ.
func NewSDOInfoError() *Container {
	return NewContainer("SDOInfoError").
		Add(&Entry{Name: "AbortCode", SubIndex: 0, FormatCode: FormatU32, Size: 4, Enable: true})
}
