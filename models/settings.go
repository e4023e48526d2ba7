package models

// Age range slider bounds
const (
	AgeRangeFloor   = 18
	AgeRangeCeiling = 60
)

type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Settings is the per-installation preferences document. The age range and
// distance are advisory: discovery does not currently filter on them.
type Settings struct {
	Language      string   `json:"language"`
	Notifications bool     `json:"notifications"`
	AgeRange      AgeRange `json:"ageRange"`
	Distance      int      `json:"distance"` // km
}

func DefaultSettings() Settings {
	return Settings{
		Language:      "en",
		Notifications: true,
		AgeRange:      AgeRange{Min: 18, Max: 35},
		Distance:      50,
	}
}

// AdjustAgeRange applies one slider edit to a range and returns the
// corrected value. The invariant min < max is enforced by nudging the
// opposite bound, and both bounds stay within the slider limits.
func AdjustAgeRange(r AgeRange, field string, value int) AgeRange {
	switch field {
	case "min":
		r.Min = clamp(value, AgeRangeFloor, AgeRangeCeiling-1)
		if r.Min >= r.Max {
			r.Max = r.Min + 1
		}
	case "max":
		r.Max = clamp(value, AgeRangeFloor+1, AgeRangeCeiling)
		if r.Max <= r.Min {
			r.Min = r.Max - 1
		}
	}
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// KeySettings is the store key holding the settings document
const KeySettings = "settings"
