package wire

// Message type ids, as carried in the frame header's type field. These match
// the wire numbering of esphome's api.proto. Where an id is given explicitly
// it is used verbatim; gaps (entity clusters named without a literal number)
// are filled with the numbering the real protocol uses, noted inline. See
// DESIGN.md Open Question decision 4.
const (
	TypeHelloRequest  uint16 = 1
	TypeHelloResponse uint16 = 2

	TypeConnectRequest  uint16 = 3
	TypeConnectResponse uint16 = 4

	TypeDisconnectRequest  uint16 = 5
	TypeDisconnectResponse uint16 = 6

	TypePingRequest  uint16 = 7
	TypePingResponse uint16 = 8

	TypeDeviceInfoRequest  uint16 = 9
	TypeDeviceInfoResponse uint16 = 10

	TypeListEntitiesRequest uint16 = 11
	TypeListEntitiesDone    uint16 = 19

	TypeSubscribeStatesRequest uint16 = 20

	TypeSubscribeLogsRequest  uint16 = 28
	TypeSubscribeLogsResponse uint16 = 29

	TypeCoverCommandRequest uint16 = 30
	TypeFanCommandRequest   uint16 = 31
	TypeLightCommandRequest uint16 = 32
	TypeSwitchCommandRequest uint16 = 33

	TypeSubscribeHomeassistantServicesRequest uint16 = 34
	TypeHomeassistantServiceResponse          uint16 = 35

	TypeGetTimeRequest  uint16 = 36
	TypeGetTimeResponse uint16 = 37

	TypeSubscribeHomeAssistantStatesRequest uint16 = 38
	TypeHomeassistantStateResponse         uint16 = 39
	TypeHomeAssistantStateSubscribeRequest  uint16 = 40

	TypeListEntitiesBinarySensorResponse uint16 = 12
	TypeListEntitiesCoverResponse        uint16 = 13
	TypeListEntitiesFanResponse          uint16 = 14
	TypeListEntitiesLightResponse        uint16 = 15
	TypeListEntitiesSensorResponse       uint16 = 16
	TypeListEntitiesSwitchResponse       uint16 = 17
	TypeListEntitiesTextSensorResponse   uint16 = 18

	TypeBinarySensorStateResponse uint16 = 21
	TypeCoverStateResponse        uint16 = 22
	TypeFanStateResponse          uint16 = 23
	TypeLightStateResponse        uint16 = 24
	TypeSensorStateResponse       uint16 = 25
	TypeSwitchStateResponse       uint16 = 26
	TypeTextSensorStateResponse   uint16 = 27

	TypeListEntitiesServicesResponse uint16 = 41
	TypeExecuteServiceRequest        uint16 = 42

	TypeListEntitiesCameraResponse uint16 = 43
	TypeCameraImageResponse        uint16 = 44
	TypeCameraImageRequest         uint16 = 45

	TypeListEntitiesClimateResponse uint16 = 46
	TypeClimateStateResponse        uint16 = 47
	TypeClimateCommandRequest       uint16 = 48

	TypeListEntitiesNumberResponse uint16 = 49
	TypeNumberStateResponse        uint16 = 50
	TypeNumberCommandRequest       uint16 = 51

	TypeListEntitiesSelectResponse uint16 = 52
	TypeSelectStateResponse        uint16 = 53
	TypeSelectCommandRequest       uint16 = 54

	TypeListEntitiesLockResponse uint16 = 58
	TypeLockStateResponse        uint16 = 59
	TypeLockCommandRequest       uint16 = 60

	TypeListEntitiesButtonResponse uint16 = 61
	TypeButtonCommandRequest       uint16 = 62

	TypeListEntitiesMediaPlayerResponse uint16 = 63
	TypeMediaPlayerStateResponse        uint16 = 64
	TypeMediaPlayerCommandRequest       uint16 = 65

	TypeSubscribeBluetoothLEAdvertisementsRequest uint16 = 66
	TypeBluetoothLEAdvertisementResponse          uint16 = 67

	TypeBluetoothDeviceRequest    uint16 = 68
	TypeBluetoothDeviceConnectionResponse uint16 = 69

	TypeBluetoothGATTGetServicesRequest  uint16 = 70
	TypeBluetoothGATTGetServicesResponse uint16 = 71
	TypeBluetoothGATTGetServicesDoneResponse uint16 = 72

	TypeBluetoothGATTReadRequest  uint16 = 73
	TypeBluetoothGATTReadResponse uint16 = 74
	TypeBluetoothGATTWriteRequest uint16 = 75

	TypeBluetoothGATTReadDescriptorRequest  uint16 = 76
	TypeBluetoothGATTWriteDescriptorRequest uint16 = 77

	TypeBluetoothGATTNotifyRequest  uint16 = 78
	TypeBluetoothGATTNotifyResponse uint16 = 79
	TypeBluetoothGATTNotifyDataResponse uint16 = 80

	TypeSubscribeBluetoothConnectionsFreeRequest uint16 = 81
	TypeBluetoothConnectionsFreeResponse         uint16 = 82

	TypeBluetoothGATTErrorResponse uint16 = 83
	TypeBluetoothGATTWriteResponse uint16 = 84
	TypeBluetoothGATTNotifyDataRequest uint16 = 85

	TypeBluetoothDevicePairingResponse uint16 = 86
	TypeBluetoothDeviceUnpairingResponse uint16 = 87
	TypeUnsubscribeBluetoothLEAdvertisementsRequest uint16 = 88

	TypeBluetoothDeviceClearCacheResponse uint16 = 89

	// Voice assistant cluster. BluetoothDeviceClearCacheResponse above
	// keeps its real protocol id of 89, so the voice-assistant ids used
	// here start at 90 and run through the second half at
	// 105/106/115/119-123 per DESIGN.md's reconciliation.
	TypeVoiceAssistantRequest       uint16 = 90
	TypeVoiceAssistantResponse      uint16 = 91
	TypeVoiceAssistantEventResponse uint16 = 92

	TypeListEntitiesAlarmControlPanelResponse uint16 = 93
	TypeAlarmControlPanelStateResponse         uint16 = 94
	TypeAlarmControlPanelCommandRequest        uint16 = 95

	TypeListEntitiesTextResponse uint16 = 96
	TypeTextStateResponse        uint16 = 97
	TypeTextCommandRequest       uint16 = 98

	TypeListEntitiesDateResponse uint16 = 99
	TypeDateStateResponse        uint16 = 100
	TypeDateCommandRequest       uint16 = 101

	TypeListEntitiesTimeResponse uint16 = 102
	TypeTimeStateResponse        uint16 = 103
	TypeTimeCommandRequest       uint16 = 104

	TypeVoiceAssistantAnnounceRequest  uint16 = 105
	TypeVoiceAssistantAnnounceFinished uint16 = 106

	TypeListEntitiesEventResponse uint16 = 107
	TypeEventResponse             uint16 = 108

	TypeListEntitiesValveResponse uint16 = 109
	TypeValveStateResponse        uint16 = 110
	TypeValveCommandRequest       uint16 = 111

	TypeListEntitiesDateTimeResponse uint16 = 112
	TypeDateTimeStateResponse        uint16 = 113
	TypeDateTimeCommandRequest       uint16 = 114

	TypeVoiceAssistantConfigurationRequest  uint16 = 115
	TypeVoiceAssistantConfigurationResponse uint16 = 116

	TypeListEntitiesUpdateResponse uint16 = 117
	TypeUpdateStateResponse        uint16 = 118
	TypeUpdateCommandRequest       uint16 = 119

	TypeVoiceAssistantSetConfiguration uint16 = 120
	TypeVoiceAssistantAudio             uint16 = 121
	TypeVoiceAssistantTimerEventResponse uint16 = 122
	TypeVoiceAssistantAnnounceRequestAudio uint16 = 123

	TypeNoiseEncryptionSetKeyRequest  uint16 = 124
	TypeNoiseEncryptionSetKeyResponse uint16 = 125

	TypeBluetoothScannerStateResponse uint16 = 126
	TypeBluetoothScannerSetModeRequest uint16 = 127
)

// passthroughTypes are forwarded to the external collaborator verbatim
// (type id + raw payload bytes), without field-level decode: the
// Bluetooth LE/GATT and Voice Assistant clusters are forwarded wholesale
// to a global collaborator rather than decoded field by field.
var passthroughTypes = map[uint16]bool{
	TypeSubscribeBluetoothLEAdvertisementsRequest:   true,
	TypeBluetoothLEAdvertisementResponse:            true,
	TypeBluetoothDeviceRequest:                      true,
	TypeBluetoothDeviceConnectionResponse:           true,
	TypeBluetoothGATTGetServicesRequest:             true,
	TypeBluetoothGATTGetServicesResponse:            true,
	TypeBluetoothGATTGetServicesDoneResponse:        true,
	TypeBluetoothGATTReadRequest:                    true,
	TypeBluetoothGATTReadResponse:                   true,
	TypeBluetoothGATTWriteRequest:                   true,
	TypeBluetoothGATTReadDescriptorRequest:          true,
	TypeBluetoothGATTWriteDescriptorRequest:         true,
	TypeBluetoothGATTNotifyRequest:                  true,
	TypeBluetoothGATTNotifyResponse:                 true,
	TypeBluetoothGATTNotifyDataResponse:             true,
	TypeSubscribeBluetoothConnectionsFreeRequest:    true,
	TypeBluetoothConnectionsFreeResponse:            true,
	TypeBluetoothGATTErrorResponse:                  true,
	TypeBluetoothGATTWriteResponse:                  true,
	TypeBluetoothGATTNotifyDataRequest:               true,
	TypeBluetoothDevicePairingResponse:              true,
	TypeBluetoothDeviceUnpairingResponse:            true,
	TypeUnsubscribeBluetoothLEAdvertisementsRequest: true,
	TypeBluetoothDeviceClearCacheResponse:           true,
	TypeBluetoothScannerStateResponse:               true,
	TypeBluetoothScannerSetModeRequest:              true,

	TypeVoiceAssistantRequest:               true,
	TypeVoiceAssistantResponse:              true,
	TypeVoiceAssistantEventResponse:         true,
	TypeVoiceAssistantAnnounceRequest:       true,
	TypeVoiceAssistantAnnounceFinished:      true,
	TypeVoiceAssistantConfigurationRequest:  true,
	TypeVoiceAssistantConfigurationResponse: true,
	TypeVoiceAssistantSetConfiguration:      true,
	TypeVoiceAssistantAudio:                 true,
	TypeVoiceAssistantTimerEventResponse:    true,
	TypeVoiceAssistantAnnounceRequestAudio:  true,
}

// IsPassthrough reports whether t is forwarded verbatim rather than decoded
// field-by-field.
func IsPassthrough(t uint16) bool { return passthroughTypes[t] }
