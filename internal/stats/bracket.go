package stats

// Bracket is a named performance tier for a percentile rank.
type Bracket struct {
	Name        string
	ColorTag    string
	Description string
}

// BracketFor maps a percentile to its tier. The cut points (20, 40, 70, 85,
// 95) are inclusive on the upper band; badge and UI copy depends on them.
func BracketFor(percentile int) Bracket {
	switch {
	case percentile >= 95:
		return Bracket{Name: "Exceptional", ColorTag: "gold", Description: "Among the very best"}
	case percentile >= 85:
		return Bracket{Name: "Advanced", ColorTag: "purple", Description: "Well above average"}
	case percentile >= 70:
		return Bracket{Name: "Proficient", ColorTag: "blue", Description: "Above average"}
	case percentile >= 40:
		return Bracket{Name: "Average", ColorTag: "green", Description: "Right in the middle"}
	case percentile >= 20:
		return Bracket{Name: "Developing", ColorTag: "orange", Description: "Building up the basics"}
	default:
		return Bracket{Name: "Beginner", ColorTag: "gray", Description: "Just getting started"}
	}
}
