package gesture

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ZoneFor classifies a position against the configured thresholds.
// Thresholds are exclusive: exactly 0.2 is still neutral.
func ZoneFor(position float64, cfg Config) Zone {
	switch {
	case position > cfg.AcceptThreshold:
		return ZoneAccept
	case position < cfg.DeclineThreshold:
		return ZoneDecline
	default:
		return ZoneNeutral
	}
}

// IsInverted flags icon and arrow inversion whenever the orb is off center.
func IsInverted(position float64) bool {
	return position != 0
}

// VisualOffset is the orb's translation from center in the host's layout unit.
func VisualOffset(position, travel float64) float64 {
	return position * travel
}

// MaxTravel is how far the orb can move from center on either side. It reports
// false when the track is too narrow to move at all.
func MaxTravel(trackWidth, orbWidth float64) (float64, bool) {
	travel := (trackWidth - orbWidth) / 2
	if travel <= 0 {
		return 0, false
	}
	return travel, true
}
