package evaluation

// GradeForScore maps an overall score onto the 4-tier A-D evaluation grade.
//
// The report generator carries its own independent 8-tier A+..F scale; the two
// tables are separate contracts and are deliberately not unified.
func GradeForScore(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	default:
		return "D"
	}
}
