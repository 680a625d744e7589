package catalog

import (
	"time"

	"github.com/skystack/flightform/internal/domain"
)

// catalogEpoch stamps the built-in templates. The value only needs to
// be stable so template listings compare equal across processes.
var catalogEpoch = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func check(id, content string, subs ...domain.Item) domain.Item {
	it := domain.Item{
		ID:      id,
		Content: content,
		Kind:    domain.ItemKindCheckbox,
	}
	if len(subs) > 0 {
		it.SubItems = subs
	} else {
		it.Value = domain.BoolValue(false)
	}
	return it
}

func subCheck(id, content string) domain.Item {
	return domain.Item{
		ID:      id,
		Content: content,
		Kind:    domain.ItemKindCheckbox,
		Value:   domain.BoolValue(false),
	}
}

// The standard flight lifecycle checklists, instantiated into a report
// either one at a time from the editor or in bulk when a report template
// carries no sections of its own.
var sectionTemplates = []domain.SectionTemplate{
	{
		ID:   "section-001",
		Name: "Pre-flight preparation (at base)",
		Kind: domain.SectionKindChecklist,
		Items: []domain.Item{
			check("item-001", "Charge batteries:",
				subCheck("subitem-001", "Main flight packs"),
				subCheck("subitem-002", "RC transmitter battery"),
				subCheck("subitem-003", "Ground station battery"),
			),
			check("item-002", "Prepare and load base maps for the flight area onto the ground station"),
			check("item-003", "Load the elevation map onto the ground station"),
			check("item-004", "Prepare the route"),
			check("item-005", "Collect equipment against the packing list"),
		},
		CreatedAt: catalogEpoch,
	},
	{
		ID:   "section-002",
		Name: "Pre-flight preparation (on site)",
		Kind: domain.SectionKindChecklist,
		Items: []domain.Item{
			check("item-006", "Assess weather conditions, postpone the flight if:",
				subCheck("subitem-004", "sustained wind above 10 m/s"),
				subCheck("subitem-005", "wind gusts above 15 m/s"),
				subCheck("subitem-006", "crosswind across the launch line"),
				subCheck("subitem-007", "visibility too poor for imaging"),
				subCheck("subitem-008", "precipitation"),
				subCheck("subitem-009", "weather trending worse"),
			),
			check("item-007", "Assemble the airframe"),
			check("item-008", "Set the fuselage in its starting position"),
			check("item-009", "Install the batteries"),
			check("item-010", "Mount the propeller on the cruise motor, verify torque"),
		},
		CreatedAt: catalogEpoch,
	},
	{
		ID:   "section-003",
		Name: "Pre-takeoff checks (before takeoff)",
		Kind: domain.SectionKindChecklist,
		Items: []domain.Item{
			check("item-011", "Power up the aircraft, wait for the autopilot to boot"),
			check("item-012", "Confirm the ground station link and sane telemetry"),
			check("item-013", "Run the pre-flight checks:",
				subCheck("subitem-010", "Servos"),
				subCheck("subitem-011", "Speed controllers"),
				subCheck("subitem-012", "Navigation lights"),
				subCheck("subitem-013", "Take a test photo"),
				subCheck("subitem-014", "Air data system"),
			),
		},
		CreatedAt: catalogEpoch,
	},
	{
		ID:   "section-004",
		Name: "Takeoff",
		Kind: domain.SectionKindChecklist,
		Items: []domain.Item{
			check("item-014", "Start video recording"),
			check("item-015", "Pre-takeoff poll:",
				subCheck("subitem-015", "preparation checklist complete"),
				subCheck("subitem-016", "220V mains feeding the ground station"),
				subCheck("subitem-017", "flight batteries at 50V"),
				subCheck("subitem-018", "GNSS lock on 12+ satellites"),
				subCheck("subitem-019", "pilot ready, transmitter in automatic mode"),
			),
			check("item-016", "Release arming from the ground station"),
			check("item-017", "Arm the aircraft from the RC transmitter"),
		},
		CreatedAt: catalogEpoch,
	},
	{
		ID:   "section-005",
		Name: "Route flight",
		Kind: domain.SectionKindChecklist,
		Items: []domain.Item{
			check("item-018", "Monitor speed, altitude, roll, and pitch through each waypoint"),
			check("item-019", "Monitor the frame counter over survey legs"),
		},
		CreatedAt: catalogEpoch,
	},
	{
		ID:   "section-006",
		Name: "Landing",
		Kind: domain.SectionKindChecklist,
		Items: []domain.Item{
			check("item-020", "Monitor capture of the landing glide path"),
			check("item-021", "Confirm cruise motor cutoff 200 m before the final waypoint"),
			check("item-022", "Monitor the copter-mode approach to the landing point"),
			check("item-023", "Monitor the descent, take over manually from the RC transmitter if needed"),
			check("item-024", "Lock the motors from the ground station or RC transmitter after touchdown"),
		},
		CreatedAt: catalogEpoch,
	},
}
