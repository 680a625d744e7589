package domain

// EquipmentSpecs is the fixed specification record of an airframe.
// Values are display strings, units included, as published by the
// manufacturer.
type EquipmentSpecs struct {
	Weight      string `json:"weight"`
	Wingspan    string `json:"wingspan"`
	FlightTime  string `json:"flightTime"`
	MaxAltitude string `json:"maxAltitude"`
	MaxSpeed    string `json:"maxSpeed"`
	BatteryType string `json:"batteryType"`
	CameraType  string `json:"cameraType,omitempty"`
}

// EquipmentProfile is a static reference entity describing one drone
// model. Profiles are immutable after catalog load; reports embed them
// by value so later catalog changes never alter past reports.
type EquipmentProfile struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Specs EquipmentSpecs `json:"specifications"`
}
