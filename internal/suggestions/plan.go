package suggestions

import (
	"strings"
	"time"
)

// Gender selects which weekly rotation table applies.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender maps a stored gender value to a Gender. Any value other than
// "male" falls back to Female; that default matches the historical behavior
// of the rotation tables.
func ParseGender(value string) Gender {
	if strings.ToLower(strings.TrimSpace(value)) == string(Male) {
		return Male
	}
	return Female
}

// malePlan and femalePlan hold one ordered muscle-group set per day of week,
// index 0 = Sunday .. 6 = Saturday.
var malePlan = [7][]string{
	{"cardiovascular system"},
	{"Upper Back", "Biceps"},
	{"Glutes", "Hamstrings"},
	{"Pectorals", "Triceps", "Abs"},
	{"Delts", "cardiovascular system"},
	{"Upper Back", "Biceps", "Forearm"},
	{"cardiovascular system"},
}

var femalePlan = [7][]string{
	{"cardiovascular system"},
	{"Glutes", "Hamstrings", "Quads"},
	{"Upper Back", "Biceps"},
	{"Abs", "Triceps", "Pectorals"},
	{"Glutes", "Quads", "Hamstrings"},
	{"Upper Back", "Biceps"},
	{"cardiovascular system"},
}

// PlanFor returns the ordered muscle-group names for the given gender and
// day of week. The caller supplies the weekday so the lookup stays
// deterministic.
func PlanFor(gender Gender, weekday time.Weekday) []string {
	day := int(weekday) % 7

	var plan []string
	if gender == Male {
		plan = malePlan[day]
	} else {
		plan = femalePlan[day]
	}

	// Copy so callers cannot mutate the tables.
	out := make([]string, len(plan))
	copy(out, plan)
	return out
}
