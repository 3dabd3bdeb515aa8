package service

// gradePoint maps a 0-100 mark onto the 0-10 grade point scale.
func gradePoint(mark float64) float64 {
	return mark / 100 * 10
}

type gradedSubject struct {
	gradePoint float64
	credits    int
}

// creditWeightedGPA returns the credit-weighted mean grade point over the
// given subjects. The second return is false when no subject carries a mark:
// a student with nothing recorded must read as "not available", not 0. The
// intermediate sums stay unrounded; display rounding is the caller's job.
func creditWeightedGPA(graded []gradedSubject) (float64, bool) {
	var weighted float64
	var credits int
	for _, g := range graded {
		weighted += g.gradePoint * float64(g.credits)
		credits += g.credits
	}
	if credits == 0 {
		return 0, false
	}
	return weighted / float64(credits), true
}
