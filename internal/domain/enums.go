package domain

import "strings"

// Categorical inputs are parsed into closed enumerations. Every value has a
// distinct numeric code for the risk model, and unseen input falls back to the
// enumeration's default.

type enumValue struct {
	name string
	code float64
}

func enumKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	return s
}

func parseEnum(values []enumValue, aliases map[string]int, s string, def int) int {
	key := enumKey(s)
	for i, v := range values {
		if v.name == key {
			return i
		}
	}
	if i, ok := aliases[key]; ok {
		return i
	}
	return def
}

type PortionSize int

const (
	PortionSmall PortionSize = iota
	PortionMedium
	PortionLarge
)

var portionValues = []enumValue{{"small", 0}, {"medium", 1}, {"large", 2}}

func ParsePortionSize(s string) PortionSize {
	return PortionSize(parseEnum(portionValues, nil, s, int(PortionMedium)))
}

func (p PortionSize) String() string { return portionValues[p].name }

type Gender int

const (
	GenderFemale Gender = iota
	GenderMale
	GenderOther
)

var genderValues = []enumValue{{"female", 0}, {"male", 1}, {"other", 0.5}}

var genderAliases = map[string]int{"f": int(GenderFemale), "m": int(GenderMale)}

func ParseGender(s string) Gender {
	return Gender(parseEnum(genderValues, genderAliases, s, int(GenderMale)))
}

func (g Gender) String() string { return genderValues[g].name }
func (g Gender) Code() float64  { return genderValues[g].code }

type ActivityLevel int

const (
	ActivitySedentary ActivityLevel = iota
	ActivityLight
	ActivityModerate
	ActivityActive
	ActivityVeryActive
)

var activityValues = []enumValue{
	{"sedentary", 0},
	{"light", 1},
	{"moderate", 2},
	{"active", 3},
	{"very-active", 4},
}

func ParseActivityLevel(s string) ActivityLevel {
	return ActivityLevel(parseEnum(activityValues, nil, s, int(ActivityModerate)))
}

func (a ActivityLevel) String() string { return activityValues[a].name }
func (a ActivityLevel) Code() float64  { return activityValues[a].code }

type DietPattern int

const (
	DietVegetarian DietPattern = iota
	DietLactoVegetarian
	DietEggetarian
	DietNorthIndian
	DietNonVegetarian
)

var dietValues = []enumValue{
	{"vegetarian", 0},
	{"lacto-vegetarian", 0.3},
	{"eggetarian", 0.5},
	{"north-indian", 0.7},
	{"non-vegetarian", 1},
}

var dietAliases = map[string]int{"nonvegetarian": int(DietNonVegetarian), "non-veg": int(DietNonVegetarian), "veg": int(DietVegetarian)}

func ParseDietPattern(s string) DietPattern {
	return DietPattern(parseEnum(dietValues, dietAliases, s, int(DietVegetarian)))
}

func (d DietPattern) String() string { return dietValues[d].name }
func (d DietPattern) Code() float64  { return dietValues[d].code }

type SnackFrequency int

const (
	SnackNever SnackFrequency = iota
	SnackRare
	SnackWeekly
	SnackDaily
)

var snackValues = []enumValue{{"never", 0}, {"rare", 1}, {"weekly", 2}, {"daily", 3}}

func ParseSnackFrequency(s string) SnackFrequency {
	return SnackFrequency(parseEnum(snackValues, nil, s, int(SnackRare)))
}

func (f SnackFrequency) String() string { return snackValues[f].name }
func (f SnackFrequency) Code() float64  { return snackValues[f].code }

type SmokingStatus int

const (
	SmokingNever SmokingStatus = iota
	SmokingFormer
	SmokingCurrent
)

var smokingValues = []enumValue{{"never", 0}, {"former", 1}, {"current", 2}}

func ParseSmokingStatus(s string) SmokingStatus {
	return SmokingStatus(parseEnum(smokingValues, nil, s, int(SmokingNever)))
}

func (s SmokingStatus) String() string { return smokingValues[s].name }
func (s SmokingStatus) Code() float64  { return smokingValues[s].code }

// WaterIntake codes are litres per day at the middle of each band.
type WaterIntake int

const (
	WaterLessThan1L WaterIntake = iota
	Water1To2L
	Water2To3L
	WaterMoreThan3L
)

var waterValues = []enumValue{
	{"less-than-1l", 0.5},
	{"1-2l", 1.5},
	{"2-3l", 2.5},
	{"more-than-3l", 3.5},
}

func ParseWaterIntake(s string) WaterIntake {
	return WaterIntake(parseEnum(waterValues, nil, s, int(Water2To3L)))
}

func (w WaterIntake) String() string { return waterValues[w].name }
func (w WaterIntake) Code() float64  { return waterValues[w].code }

// Low reports whether the band is under two litres a day.
func (w WaterIntake) Low() bool { return w == WaterLessThan1L || w == Water1To2L }
