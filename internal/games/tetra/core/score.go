package core

// Points per cleared line and the bonus for every extra line in one clear.
const (
	PointsPerLine  = 100
	MultiLineBonus = 50
)

// LineScore returns the score awarded for clearing n lines at once.
func LineScore(n int) int {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return PointsPerLine
	default:
		return PointsPerLine*n + MultiLineBonus*(n-1)
	}
}
