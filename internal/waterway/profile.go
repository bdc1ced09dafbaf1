package waterway

import (
	"math"
	"strconv"
)

// Profile is the cross-section of a carved channel, in blocks.
type Profile struct {
	Width int
	Depth int
}

var defaultProfile = Profile{Width: 4, Depth: 2}

var profiles = map[string]Profile{
	"river":    {Width: 8, Depth: 3},
	"canal":    {Width: 6, Depth: 2},
	"stream":   {Width: 3, Depth: 2},
	"fairway":  {Width: 12, Depth: 3},
	"flowline": {Width: 2, Depth: 1},
	"brook":    {Width: 2, Depth: 1},
	"ditch":    {Width: 2, Depth: 1},
	"drain":    {Width: 1, Depth: 1},
}

// ProfileFor returns the channel dimensions for a waterway classification.
// Unknown classifications get a 4×2 channel.
func ProfileFor(classification string) Profile {
	if p, ok := profiles[classification]; ok {
		return p
	}
	return defaultProfile
}

// MaxWidth is the widest width any classification defaults to.
func MaxWidth() int {
	w := defaultProfile.Width
	for _, p := range profiles {
		w = max(w, p.Width)
	}
	return w
}

// ParseWidth reads a width tag value. Integers are used as is, decimals are
// truncated toward zero, and anything else yields fallback.
func ParseWidth(raw string, fallback int) int {
	if w, err := strconv.Atoi(raw); err == nil {
		return w
	}
	if f, err := strconv.ParseFloat(raw, 32); err == nil {
		return truncate(f)
	}
	return fallback
}

// BelowGround reports whether the layer tag puts the feature underground.
func BelowGround(layer string) bool {
	switch layer {
	case "-1", "-2", "-3":
		return true
	}
	return false
}

// truncate converts f toward zero, saturating at the int32 range and mapping
// NaN to zero.
func truncate(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
