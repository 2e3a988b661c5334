package schedule

import "strings"

// Division is a CSI MasterFormat division used as the WBS grouping key.
// The zero value is DivisionGeneral, the sentinel for blank or unknown
// codes.
type Division int

// CSI MasterFormat divisions carried by DABO schedules.
const (
	DivisionGeneral Division = iota // 01 General Requirements (sentinel)
	DivisionSite                    // 02 Site Construction
	DivisionConcrete                // 03 Concrete
	DivisionMasonry                 // 04 Masonry
	DivisionMetals                  // 05 Metals / Structural Steel
	DivisionWood                    // 06 Wood & Plastics
	DivisionThermal                 // 07 Thermal & Moisture Protection
	DivisionOpenings                // 08 Openings
	DivisionFinishes                // 09 Finishes
	DivisionSpecialties             // 10 Specialties
	DivisionEquipment               // 11 Equipment
	DivisionFurnishings             // 12 Furnishings
	DivisionSpecial                 // 13 Special Construction
	DivisionConveying               // 14 Conveying Equipment
	DivisionMechanical              // 15 Mechanical
	DivisionElectrical              // 16 Electrical
)

// divisionInfo is one row of the static division table.
type divisionInfo struct {
	code string
	name string
}

// divisionTable is the exhaustive static table mapping divisions to their
// codes and display names. Lookups for codes outside this table fall back
// to DivisionGeneral; there is no unchecked-miss path.
var divisionTable = [...]divisionInfo{
	DivisionGeneral:     {"01", "General Requirements"},
	DivisionSite:        {"02", "Site Construction"},
	DivisionConcrete:    {"03", "Concrete"},
	DivisionMasonry:     {"04", "Masonry"},
	DivisionMetals:      {"05", "Metals / Structural Steel"},
	DivisionWood:        {"06", "Wood & Plastics"},
	DivisionThermal:     {"07", "Thermal & Moisture Protection"},
	DivisionOpenings:    {"08", "Openings"},
	DivisionFinishes:    {"09", "Finishes"},
	DivisionSpecialties: {"10", "Specialties"},
	DivisionEquipment:   {"11", "Equipment"},
	DivisionFurnishings: {"12", "Furnishings"},
	DivisionSpecial:     {"13", "Special Construction"},
	DivisionConveying:   {"14", "Conveying Equipment"},
	DivisionMechanical:  {"15", "Mechanical"},
	DivisionElectrical:  {"16", "Electrical"},
}

// codeToDivision is the reverse index, built once at init.
var codeToDivision = func() map[string]Division {
	m := make(map[string]Division, len(divisionTable))
	for d, info := range divisionTable {
		m[info.code] = Division(d)
	}
	return m
}()

// Code returns the two-digit division code (e.g. "03").
func (d Division) Code() string {
	if d < 0 || int(d) >= len(divisionTable) {
		return divisionTable[DivisionGeneral].code
	}
	return divisionTable[d].code
}

// Name returns the division display name (e.g. "Concrete").
func (d Division) Name() string {
	if d < 0 || int(d) >= len(divisionTable) {
		return divisionTable[DivisionGeneral].name
	}
	return divisionTable[d].name
}

// String returns "code name" for logging and debug output.
func (d Division) String() string {
	return d.Code() + " " + d.Name()
}

// DivisionForCode resolves a WBS code to its division. Dotted sub-level
// codes ("03.1") resolve by their leading division segment. Blank or
// unknown codes resolve to DivisionGeneral.
func DivisionForCode(code string) Division {
	if code == "" {
		return DivisionGeneral
	}
	if i := strings.IndexByte(code, '.'); i >= 0 {
		code = code[:i]
	}
	if d, ok := codeToDivision[code]; ok {
		return d
	}
	return DivisionGeneral
}
