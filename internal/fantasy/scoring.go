package fantasy

import "math"

// Score converts a stat bucket into a single fantasy-points value under the
// given weights: for every category named in the weights map, the bucket's
// value (0 when absent) times the weight, summed. Categories present in the
// bucket but not in the weights never affect the result.
//
// Pure and total: an empty or nil bucket scores 0, there are no error paths.
// Rounded to 2 decimal places.
func Score(bucket StatBucket, weights Weights) float64 {
	if len(bucket) == 0 || len(weights) == 0 {
		return 0
	}
	sum := 0.0
	for category, weight := range weights {
		sum += bucket.Get(category) * weight
	}
	return Round2(sum)
}

// Round2 rounds to 2 decimal places. Applied to presentation-level values
// only; intermediate figures that feed further aggregation stay unrounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
