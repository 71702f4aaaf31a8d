// Package bhattacharyya estimates the Bhattacharyya distance between the
// value distributions of two classes measured on one scalar feature.
//
// The distance is -ln(BC), where BC is the Bhattacharyya coefficient, the
// overlap of the two estimated distributions. Four estimators are provided:
//
//   - Continuous: Gaussian kernel density estimates evaluated on a grid
//     spanning the combined range. This is the default and the most stable.
//   - Histogram: density histograms with a fixed bin count over the
//     combined range.
//   - AutoHistogram: density histograms whose equal-width edges come from a
//     bin-width rule (Doane by default) applied to the combined sample.
//   - Noiseless: every distinct value is its own bin. Intended for
//     qualitative features with few distinct values.
//
// Basic usage:
//
//	d, err := bhattacharyya.Distance(x1, x2, bhattacharyya.Continuous)
//	if err != nil {
//		return err
//	}
//
// All functions are pure and safe for concurrent use.
package bhattacharyya
