package progress

// MaxStars is the star-rating ceiling shown on lecture cards.
const MaxStars = 5

// Stars maps a lecture's latest attempt percentage to a 0-5 star rating.
func Stars(percentage int) int {
	switch {
	case percentage >= 90:
		return 5
	case percentage >= 80:
		return 4
	case percentage >= 70:
		return 3
	case percentage >= 60:
		return 2
	case percentage >= 50:
		return 1
	default:
		return 0
	}
}
