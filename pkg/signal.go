package wifind

// SignalGrade buckets a dBm reading into a quality tier. Ordering is
// by threshold, strongest first.
type SignalGrade int

const (
	GradeMaximum SignalGrade = iota
	GradeExcellent
	GradeGood
	GradeReliable
	GradeWeak
	GradeUnreliable
	GradeBad
)

// GradeSignal maps a signal strength in dBm to its grade. Each grade
// owns its lower boundary, so -50.0 is Excellent and -50.01 is Good.
// A reading of 0.0 (the fallback for unparsable scan output) lands in
// Maximum.
func GradeSignal(signal float64) SignalGrade {
	switch {
	case signal >= -30:
		return GradeMaximum
	case signal >= -50:
		return GradeExcellent
	case signal >= -60:
		return GradeGood
	case signal >= -67:
		return GradeReliable
	case signal >= -70:
		return GradeWeak
	case signal >= -80:
		return GradeUnreliable
	default:
		return GradeBad
	}
}

func (g SignalGrade) String() string {
	switch g {
	case GradeMaximum:
		return "Maximum"
	case GradeExcellent:
		return "Excellent"
	case GradeGood:
		return "Good"
	case GradeReliable:
		return "Reliable"
	case GradeWeak:
		return "Weak"
	case GradeUnreliable:
		return "Unreliable"
	case GradeBad:
		return "Bad"
	default:
		return "Unknown"
	}
}
