package sentiment

// Summary aggregates label distributions and average scores across a
// batch of scored reviews
type Summary struct {
	StaffDistribution map[string]int
	StoreDistribution map[string]int
	AverageStaffScore float64
	AverageStoreScore float64
	TotalReviews      int
}

func Summarize(scored []ScoredReview) Summary {
	summary := Summary{
		StaffDistribution: make(map[string]int),
		StoreDistribution: make(map[string]int),
		TotalReviews:      len(scored),
	}

	if len(scored) == 0 {
		return summary
	}

	var staffTotal, storeTotal float64
	for _, s := range scored {
		summary.StaffDistribution[s.StaffLabel]++
		summary.StoreDistribution[s.StoreLabel]++
		staffTotal += s.StaffScore
		storeTotal += s.StoreScore
	}

	summary.AverageStaffScore = staffTotal / float64(len(scored))
	summary.AverageStoreScore = storeTotal / float64(len(scored))

	return summary
}
