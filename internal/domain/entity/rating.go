package entity

// FarmRating is the running rating aggregate of a farmer.
type FarmRating struct {
	FarmerID    string `json:"farmerId"`
	TotalRating int64  `json:"totalRating"`
	RatingCount int64  `json:"ratingCount"`
}

// Average returns total/count, or zero when the farmer was never rated.
func (r FarmRating) Average() float64 {
	if r.RatingCount == 0 {
		return 0
	}

	return float64(r.TotalRating) / float64(r.RatingCount)
}

// Rated reports whether at least one rating was submitted.
func (r FarmRating) Rated() bool {
	return r.RatingCount > 0
}
