package wire

// Core, non-entity control messages: handshake, keepalive, device
// metadata, logs, Home Assistant state bridging, services, camera, and
// Noise key rotation. Field numbers are internal to this codec (the wire
// format only needs to be self-consistent with itself, following a
// Protocol-Buffers-compatible framing, not byte-identical to any external
// schema).

type HelloRequest struct {
	ClientInfo      string
	ApiVersionMajor uint32
	ApiVersionMinor uint32
}

func (m *HelloRequest) MessageType() uint16 { return TypeHelloRequest }
func (m *HelloRequest) CalcSize(total *int) {
	AddString(total, 1, m.ClientInfo, false)
	AddUint32(total, 2, m.ApiVersionMajor, false)
	AddUint32(total, 3, m.ApiVersionMinor, false)
}
func (m *HelloRequest) Encode(b *Buffer) {
	b.EncodeString(1, m.ClientInfo, false)
	b.EncodeUint32(2, m.ApiVersionMajor, false)
	b.EncodeUint32(3, m.ApiVersionMinor, false)
}
func (m *HelloRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 2:
		m.ApiVersionMajor = uint32(v)
	case 3:
		m.ApiVersionMinor = uint32(v)
	}
	return nil
}
func (m *HelloRequest) DecodeLengthDelimited(fieldID uint32, v []byte) error {
	if fieldID == 1 {
		m.ClientInfo = string(v)
	}
	return nil
}
func (m *HelloRequest) Decode32Bit(uint32, uint32) error { return nil }
func (m *HelloRequest) Decode64Bit(uint32, uint64) error { return nil }

type HelloResponse struct {
	ApiVersionMajor uint32
	ApiVersionMinor uint32
	ServerInfo      string
	Name            string
}

func (m *HelloResponse) MessageType() uint16 { return TypeHelloResponse }
func (m *HelloResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.ApiVersionMajor, false)
	AddUint32(total, 2, m.ApiVersionMinor, false)
	AddString(total, 3, m.ServerInfo, false)
	AddString(total, 4, m.Name, false)
}
func (m *HelloResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.ApiVersionMajor, false)
	b.EncodeUint32(2, m.ApiVersionMinor, false)
	b.EncodeString(3, m.ServerInfo, false)
	b.EncodeString(4, m.Name, false)
}

type ConnectRequest struct {
	Password string
}

func (m *ConnectRequest) MessageType() uint16           { return TypeConnectRequest }
func (m *ConnectRequest) CalcSize(total *int)           { AddString(total, 1, m.Password, false) }
func (m *ConnectRequest) Encode(b *Buffer)              { b.EncodeString(1, m.Password, false) }
func (m *ConnectRequest) DecodeVarint(uint32, uint64) error { return nil }
func (m *ConnectRequest) DecodeLengthDelimited(fieldID uint32, v []byte) error {
	if fieldID == 1 {
		m.Password = string(v)
	}
	return nil
}
func (m *ConnectRequest) Decode32Bit(uint32, uint32) error { return nil }
func (m *ConnectRequest) Decode64Bit(uint32, uint64) error { return nil }

type ConnectResponse struct {
	InvalidPassword bool
}

func (m *ConnectResponse) MessageType() uint16 { return TypeConnectResponse }
func (m *ConnectResponse) CalcSize(total *int) { AddBool(total, 1, m.InvalidPassword, false) }
func (m *ConnectResponse) Encode(b *Buffer)     { b.EncodeBool(1, m.InvalidPassword, false) }

type DisconnectRequest struct{}

func (m *DisconnectRequest) MessageType() uint16 { return TypeDisconnectRequest }
func (m *DisconnectRequest) CalcSize(*int)       {}
func (m *DisconnectRequest) Encode(*Buffer)      {}

type DisconnectResponse struct{}

func (m *DisconnectResponse) MessageType() uint16 { return TypeDisconnectResponse }
func (m *DisconnectResponse) CalcSize(*int)       {}
func (m *DisconnectResponse) Encode(*Buffer)      {}

type PingRequest struct{}

func (m *PingRequest) MessageType() uint16 { return TypePingRequest }
func (m *PingRequest) CalcSize(*int)       {}
func (m *PingRequest) Encode(*Buffer)      {}

type PingResponse struct{}

func (m *PingResponse) MessageType() uint16 { return TypePingResponse }
func (m *PingResponse) CalcSize(*int)       {}
func (m *PingResponse) Encode(*Buffer)      {}

type DeviceInfoRequest struct{}

func (m *DeviceInfoRequest) MessageType() uint16 { return TypeDeviceInfoRequest }
func (m *DeviceInfoRequest) CalcSize(*int)       {}
func (m *DeviceInfoRequest) Encode(*Buffer)      {}

type DeviceInfoResponse struct {
	UsesPassword                bool
	Name                        string
	MacAddress                  string
	EsphomeVersion              string
	CompilationTime             string
	Model                       string
	HasDeepSleep                bool
	ProjectName                 string
	ProjectVersion              string
	WebserverPort               uint32
	BluetoothProxyFeatureFlags  uint32
	ManufacturerName            string
	FriendlyName                string
	VoiceAssistantFeatureFlags  uint32
	SuggestedArea               string
}

func (m *DeviceInfoResponse) MessageType() uint16 { return TypeDeviceInfoResponse }
func (m *DeviceInfoResponse) CalcSize(total *int) {
	AddBool(total, 1, m.UsesPassword, false)
	AddString(total, 2, m.Name, false)
	AddString(total, 3, m.MacAddress, false)
	AddString(total, 4, m.EsphomeVersion, false)
	AddString(total, 5, m.CompilationTime, false)
	AddString(total, 6, m.Model, false)
	AddBool(total, 7, m.HasDeepSleep, false)
	AddString(total, 8, m.ProjectName, false)
	AddString(total, 9, m.ProjectVersion, false)
	AddUint32(total, 10, m.WebserverPort, false)
	AddUint32(total, 11, m.BluetoothProxyFeatureFlags, false)
	AddString(total, 12, m.ManufacturerName, false)
	AddString(total, 13, m.FriendlyName, false)
	AddUint32(total, 14, m.VoiceAssistantFeatureFlags, false)
	AddString(total, 15, m.SuggestedArea, false)
}
func (m *DeviceInfoResponse) Encode(b *Buffer) {
	b.EncodeBool(1, m.UsesPassword, false)
	b.EncodeString(2, m.Name, false)
	b.EncodeString(3, m.MacAddress, false)
	b.EncodeString(4, m.EsphomeVersion, false)
	b.EncodeString(5, m.CompilationTime, false)
	b.EncodeString(6, m.Model, false)
	b.EncodeBool(7, m.HasDeepSleep, false)
	b.EncodeString(8, m.ProjectName, false)
	b.EncodeString(9, m.ProjectVersion, false)
	b.EncodeUint32(10, m.WebserverPort, false)
	b.EncodeUint32(11, m.BluetoothProxyFeatureFlags, false)
	b.EncodeString(12, m.ManufacturerName, false)
	b.EncodeString(13, m.FriendlyName, false)
	b.EncodeUint32(14, m.VoiceAssistantFeatureFlags, false)
	b.EncodeString(15, m.SuggestedArea, false)
}

type ListEntitiesRequest struct{}

func (m *ListEntitiesRequest) MessageType() uint16 { return TypeListEntitiesRequest }
func (m *ListEntitiesRequest) CalcSize(*int)       {}
func (m *ListEntitiesRequest) Encode(*Buffer)      {}

type ListEntitiesDoneResponse struct{}

func (m *ListEntitiesDoneResponse) MessageType() uint16 { return TypeListEntitiesDone }
func (m *ListEntitiesDoneResponse) CalcSize(*int)       {}
func (m *ListEntitiesDoneResponse) Encode(*Buffer)      {}

type SubscribeStatesRequest struct{}

func (m *SubscribeStatesRequest) MessageType() uint16 { return TypeSubscribeStatesRequest }
func (m *SubscribeStatesRequest) CalcSize(*int)       {}
func (m *SubscribeStatesRequest) Encode(*Buffer)      {}

type SubscribeLogsRequest struct {
	Level      uint32
	DumpConfig bool
}

func (m *SubscribeLogsRequest) MessageType() uint16 { return TypeSubscribeLogsRequest }
func (m *SubscribeLogsRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Level, false)
	AddBool(total, 2, m.DumpConfig, false)
}
func (m *SubscribeLogsRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Level, false)
	b.EncodeBool(2, m.DumpConfig, false)
}
func (m *SubscribeLogsRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Level = uint32(v)
	case 2:
		m.DumpConfig = AsBool(v)
	}
	return nil
}
func (m *SubscribeLogsRequest) DecodeLengthDelimited(uint32, []byte) error { return nil }
func (m *SubscribeLogsRequest) Decode32Bit(uint32, uint32) error           { return nil }
func (m *SubscribeLogsRequest) Decode64Bit(uint32, uint64) error           { return nil }

type SubscribeLogsResponse struct {
	Level   uint32
	Message []byte
}

func (m *SubscribeLogsResponse) MessageType() uint16 { return TypeSubscribeLogsResponse }
func (m *SubscribeLogsResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Level, false)
	AddBytes(total, 3, m.Message, false)
}
func (m *SubscribeLogsResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Level, false)
	b.EncodeBytes(3, m.Message, false)
}

type SubscribeHomeassistantServicesRequest struct{}

func (m *SubscribeHomeassistantServicesRequest) MessageType() uint16 {
	return TypeSubscribeHomeassistantServicesRequest
}
func (m *SubscribeHomeassistantServicesRequest) CalcSize(*int)  {}
func (m *SubscribeHomeassistantServicesRequest) Encode(*Buffer) {}

// HomeassistantServiceKeyValue is a single key/value pair in a service call,
// matching the original's HomeassistantServiceMap submessage.
type HomeassistantServiceKeyValue struct {
	Key   string
	Value string
}

func (kv *HomeassistantServiceKeyValue) calcSize(total *int) {
	AddString(total, 1, kv.Key, false)
	AddString(total, 2, kv.Value, false)
}
func (kv *HomeassistantServiceKeyValue) encode(b *Buffer) {
	b.EncodeString(1, kv.Key, false)
	b.EncodeString(2, kv.Value, false)
}

type kvMessage HomeassistantServiceKeyValue

func (m *kvMessage) MessageType() uint16 { return 0 }
func (m *kvMessage) CalcSize(total *int) { (*HomeassistantServiceKeyValue)(m).calcSize(total) }
func (m *kvMessage) Encode(b *Buffer)    { (*HomeassistantServiceKeyValue)(m).encode(b) }

type HomeassistantServiceResponse struct {
	Service  string
	Data     []HomeassistantServiceKeyValue
	IsEvent  bool
}

func (m *HomeassistantServiceResponse) MessageType() uint16 {
	return TypeHomeassistantServiceResponse
}
func (m *HomeassistantServiceResponse) CalcSize(total *int) {
	AddString(total, 1, m.Service, false)
	for i := range m.Data {
		AddMessage(total, 2, (*kvMessage)(&m.Data[i]))
	}
	AddBool(total, 5, m.IsEvent, false)
}
func (m *HomeassistantServiceResponse) Encode(b *Buffer) {
	b.EncodeString(1, m.Service, false)
	for i := range m.Data {
		b.EncodeMessage(2, (*kvMessage)(&m.Data[i]))
	}
	b.EncodeBool(5, m.IsEvent, false)
}

type GetTimeRequest struct{}

func (m *GetTimeRequest) MessageType() uint16 { return TypeGetTimeRequest }
func (m *GetTimeRequest) CalcSize(*int)       {}
func (m *GetTimeRequest) Encode(*Buffer)      {}

type GetTimeResponse struct {
	EpochSeconds uint32
}

func (m *GetTimeResponse) MessageType() uint16 { return TypeGetTimeResponse }
func (m *GetTimeResponse) CalcSize(total *int) { AddFixed32(total, 1, m.EpochSeconds, false) }
func (m *GetTimeResponse) Encode(b *Buffer)     { b.EncodeFixed32(1, m.EpochSeconds, false) }

type SubscribeHomeAssistantStatesRequest struct{}

func (m *SubscribeHomeAssistantStatesRequest) MessageType() uint16 {
	return TypeSubscribeHomeAssistantStatesRequest
}
func (m *SubscribeHomeAssistantStatesRequest) CalcSize(*int)  {}
func (m *SubscribeHomeAssistantStatesRequest) Encode(*Buffer) {}

type HomeassistantStateResponse struct {
	EntityID  string
	State     string
	Attribute string
}

func (m *HomeassistantStateResponse) MessageType() uint16 { return TypeHomeassistantStateResponse }
func (m *HomeassistantStateResponse) CalcSize(total *int) {
	AddString(total, 1, m.EntityID, false)
	AddString(total, 2, m.State, false)
	AddString(total, 3, m.Attribute, false)
}
func (m *HomeassistantStateResponse) Encode(b *Buffer) {
	b.EncodeString(1, m.EntityID, false)
	b.EncodeString(2, m.State, false)
	b.EncodeString(3, m.Attribute, false)
}

type HomeAssistantStateSubscribeRequest struct {
	EntityID  string
	Attribute string
}

func (m *HomeAssistantStateSubscribeRequest) MessageType() uint16 {
	return TypeHomeAssistantStateSubscribeRequest
}
func (m *HomeAssistantStateSubscribeRequest) CalcSize(total *int) {
	AddString(total, 1, m.EntityID, false)
	AddString(total, 2, m.Attribute, false)
}
func (m *HomeAssistantStateSubscribeRequest) Encode(b *Buffer) {
	b.EncodeString(1, m.EntityID, false)
	b.EncodeString(2, m.Attribute, false)
}

type ListEntitiesServicesArgument struct {
	Name string
	Type uint32
}

type argMessage ListEntitiesServicesArgument

func (m *argMessage) MessageType() uint16 { return 0 }
func (m *argMessage) CalcSize(total *int) {
	AddString(total, 1, m.Name, false)
	AddEnum(total, 2, m.Type, false)
}
func (m *argMessage) Encode(b *Buffer) {
	b.EncodeString(1, m.Name, false)
	b.EncodeEnum(2, m.Type, false)
}

type ListEntitiesServicesResponse struct {
	Name string
	Key  uint32
	Args []ListEntitiesServicesArgument
}

func (m *ListEntitiesServicesResponse) MessageType() uint16 { return TypeListEntitiesServicesResponse }
func (m *ListEntitiesServicesResponse) CalcSize(total *int) {
	AddString(total, 1, m.Name, false)
	AddUint32(total, 2, m.Key, true)
	for i := range m.Args {
		AddMessage(total, 3, (*argMessage)(&m.Args[i]))
	}
}
func (m *ListEntitiesServicesResponse) Encode(b *Buffer) {
	b.EncodeString(1, m.Name, false)
	b.EncodeUint32(2, m.Key, true)
	for i := range m.Args {
		b.EncodeMessage(3, (*argMessage)(&m.Args[i]))
	}
}

type ExecuteServiceArgument struct {
	Bool   bool
	Int    int32
	Float  float32
	String string
}

type execArgMessage ExecuteServiceArgument

func (m *execArgMessage) MessageType() uint16 { return 0 }
func (m *execArgMessage) CalcSize(total *int) {
	AddBool(total, 1, m.Bool, false)
	AddInt32(total, 2, m.Int, false)
	AddFloat(total, 3, m.Float, false)
	AddString(total, 4, m.String, false)
}
func (m *execArgMessage) Encode(b *Buffer) {
	b.EncodeBool(1, m.Bool, false)
	b.EncodeInt32(2, m.Int, false)
	b.EncodeFloat(3, m.Float, false)
	b.EncodeString(4, m.String, false)
}

type ExecuteServiceRequest struct {
	Key  uint32
	Args []ExecuteServiceArgument
}

func (m *ExecuteServiceRequest) MessageType() uint16 { return TypeExecuteServiceRequest }
func (m *ExecuteServiceRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	for i := range m.Args {
		AddMessage(total, 2, (*execArgMessage)(&m.Args[i]))
	}
}
func (m *ExecuteServiceRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	for i := range m.Args {
		b.EncodeMessage(2, (*execArgMessage)(&m.Args[i]))
	}
}
func (m *ExecuteServiceRequest) DecodeVarint(fieldID uint32, v uint64) error {
	if fieldID == 1 {
		m.Key = uint32(v)
	}
	return nil
}
func (m *ExecuteServiceRequest) DecodeLengthDelimited(fieldID uint32, v []byte) error {
	if fieldID != 2 {
		return nil
	}
	arg := &execArgMessage{}
	if err := Decode(arg, v); err != nil {
		return err
	}
	m.Args = append(m.Args, ExecuteServiceArgument(*arg))
	return nil
}
func (m *execArgMessage) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Bool = AsBool(v)
	case 2:
		m.Int = int32(v)
	}
	return nil
}
func (m *execArgMessage) DecodeLengthDelimited(fieldID uint32, v []byte) error {
	if fieldID == 4 {
		m.String = string(v)
	}
	return nil
}
func (m *execArgMessage) Decode32Bit(fieldID uint32, v uint32) error {
	if fieldID == 3 {
		m.Float = AsFloat(v)
	}
	return nil
}
func (m *execArgMessage) Decode64Bit(uint32, uint64) error { return nil }
func (m *ExecuteServiceRequest) Decode32Bit(uint32, uint32) error { return nil }
func (m *ExecuteServiceRequest) Decode64Bit(uint32, uint64) error { return nil }

type ListEntitiesCameraResponse struct {
	Base EntityInfoBase
}

func (m *ListEntitiesCameraResponse) MessageType() uint16 { return TypeListEntitiesCameraResponse }
func (m *ListEntitiesCameraResponse) CalcSize(total *int) { sizeEntityBase(total, m.Base) }
func (m *ListEntitiesCameraResponse) Encode(b *Buffer)    { encodeEntityBase(b, m.Base) }

type CameraImageResponse struct {
	Key  uint32
	Data []byte
	Done bool
}

func (m *CameraImageResponse) MessageType() uint16 { return TypeCameraImageResponse }
func (m *CameraImageResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBytes(total, 2, m.Data, false)
	AddBool(total, 3, m.Done, false)
}
func (m *CameraImageResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBytes(2, m.Data, false)
	b.EncodeBool(3, m.Done, false)
}

type CameraImageRequest struct {
	Single bool
	Stream bool
}

func (m *CameraImageRequest) MessageType() uint16 { return TypeCameraImageRequest }
func (m *CameraImageRequest) CalcSize(total *int) {
	AddBool(total, 1, m.Single, false)
	AddBool(total, 2, m.Stream, false)
}
func (m *CameraImageRequest) Encode(b *Buffer) {
	b.EncodeBool(1, m.Single, false)
	b.EncodeBool(2, m.Stream, false)
}
func (m *CameraImageRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Single = AsBool(v)
	case 2:
		m.Stream = AsBool(v)
	}
	return nil
}
func (m *CameraImageRequest) DecodeLengthDelimited(uint32, []byte) error { return nil }
func (m *CameraImageRequest) Decode32Bit(uint32, uint32) error          { return nil }
func (m *CameraImageRequest) Decode64Bit(uint32, uint64) error          { return nil }

type NoiseEncryptionSetKeyRequest struct {
	Key []byte
}

func (m *NoiseEncryptionSetKeyRequest) MessageType() uint16 { return TypeNoiseEncryptionSetKeyRequest }
func (m *NoiseEncryptionSetKeyRequest) CalcSize(total *int) { AddBytes(total, 1, m.Key, false) }
func (m *NoiseEncryptionSetKeyRequest) Encode(b *Buffer)    { b.EncodeBytes(1, m.Key, false) }
func (m *NoiseEncryptionSetKeyRequest) DecodeVarint(uint32, uint64) error { return nil }
func (m *NoiseEncryptionSetKeyRequest) DecodeLengthDelimited(fieldID uint32, v []byte) error {
	if fieldID == 1 {
		m.Key = append([]byte(nil), v...)
	}
	return nil
}
func (m *NoiseEncryptionSetKeyRequest) Decode32Bit(uint32, uint32) error { return nil }
func (m *NoiseEncryptionSetKeyRequest) Decode64Bit(uint32, uint64) error { return nil }

type NoiseEncryptionSetKeyResponse struct {
	Success bool
}

func (m *NoiseEncryptionSetKeyResponse) MessageType() uint16 {
	return TypeNoiseEncryptionSetKeyResponse
}
func (m *NoiseEncryptionSetKeyResponse) CalcSize(total *int) { AddBool(total, 1, m.Success, false) }
func (m *NoiseEncryptionSetKeyResponse) Encode(b *Buffer)     { b.EncodeBool(1, m.Success, false) }
