// Package survival implements the Kaplan-Meier product-limit estimator with
// Greenwood standard errors.
//
// Fit takes parallel slices of observation times and event flags. Subjects
// with event == false are censored: they leave the risk set at their time
// without lowering the curve. The result has one row per distinct time.
//
// Large inputs are grouped concurrently on a partition.Runner. Ties that
// straddle a partition boundary are merged, so every runner and every
// partition count yields the same result as a single pass.
package survival
