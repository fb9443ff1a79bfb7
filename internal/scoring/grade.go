package scoring

// GradeFor maps a final score to its letter grade. The top band is exclusive
// (80 is A-, anything above is A); all other bands include their lower bound.
// Negative and NaN scores map to "-".
func GradeFor(score float64) Grade {
	switch {
	case score > 80:
		return Grade{"A", 4.0}
	case score >= 75:
		return Grade{"A-", 3.5}
	case score >= 70:
		return Grade{"B", 3.0}
	case score >= 65:
		return Grade{"B-", 2.5}
	case score >= 60:
		return Grade{"C", 2.0}
	case score >= 55:
		return Grade{"C-", 1.5}
	case score >= 50:
		return Grade{"D", 1.0}
	case score >= 0:
		return Grade{"E", 0.0}
	default:
		return Grade{"-", 0.0}
	}
}
