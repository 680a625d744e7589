package catalog

import "github.com/skystack/flightform/internal/domain"

// Fixed-wing survey airframes supported by the report builder.
var equipmentProfiles = []domain.EquipmentProfile{
	{
		ID:   "drone-001",
		Name: "miniSIGMA",
		Specs: domain.EquipmentSpecs{
			Weight:      "5.2 kg",
			Wingspan:    "2.5 m",
			FlightTime:  "120 min",
			MaxAltitude: "3000 m",
			MaxSpeed:    "90 km/h",
			BatteryType: "LiPo 14.8V 10000mAh",
			CameraType:  "HD 20MP",
		},
	},
	{
		ID:   "drone-002",
		Name: "SurveyDrone X1",
		Specs: domain.EquipmentSpecs{
			Weight:      "3.8 kg",
			Wingspan:    "1.8 m",
			FlightTime:  "90 min",
			MaxAltitude: "2500 m",
			MaxSpeed:    "75 km/h",
			BatteryType: "LiPo 12.6V 8000mAh",
			CameraType:  "Full HD 24MP",
		},
	},
	{
		ID:   "drone-003",
		Name: "InspectorPro",
		Specs: domain.EquipmentSpecs{
			Weight:      "4.5 kg",
			Wingspan:    "2.2 m",
			FlightTime:  "110 min",
			MaxAltitude: "2800 m",
			MaxSpeed:    "85 km/h",
			BatteryType: "LiPo 14.8V 9500mAh",
			CameraType:  "4K 32MP",
		},
	},
}
