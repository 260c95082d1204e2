package scoring

// Grade is the tier a total score lands in.
type Grade struct {
	Tier        string `json:"tier"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// GradeFromScore maps a total score to its tier. Ranges are inclusive at the
// lower bound: 90-100 S, 75-89 A, 60-74 B, 45-59 C, 30-44 D, 0-29 F.
func GradeFromScore(score int) Grade {
	switch {
	case score >= 90:
		return Grade{"S", "Cyborg", "Fully merged with the machine. The agents barely need you."}
	case score >= 75:
		return Grade{"A", "Power User", "Agents are doing serious work for you every day."}
	case score >= 60:
		return Grade{"B", "Growing", "A real delegation habit is taking shape."}
	case score >= 45:
		return Grade{"C", "Early Stage", "The agents are warming up. Keep handing work over."}
	case score >= 30:
		return Grade{"D", "Getting Started", "First workflows are running. Plenty of headroom."}
	default:
		return Grade{"F", "Dormant", "The agents are idle. Time to wake them up."}
	}
}
