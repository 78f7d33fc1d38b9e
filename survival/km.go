package survival

import (
	"math"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-surv/compute"
	"github.com/cwbudde/algo-surv/partition"
)

const opFit = "Fit"

// Estimator fits Kaplan-Meier curves. It holds no per-fit state and is safe
// for concurrent use.
type Estimator struct {
	kernel    *compute.Kernel
	runner    partition.Runner
	threshold int
	logger    logrus.FieldLogger
}

// New creates an Estimator.
func New(opts ...Option) *Estimator {
	cfg := ApplyOptions(opts...)

	e := &Estimator{
		kernel:    cfg.Kernel,
		runner:    cfg.Runner,
		threshold: cfg.ParallelThreshold,
		logger:    cfg.Logger,
	}
	if e.kernel == nil {
		e.kernel = compute.Default()
	}
	if e.runner == nil {
		e.runner = partition.NewPool()
	}
	return e
}

var (
	defaultEstimator     *Estimator
	defaultEstimatorOnce sync.Once
)

// Fit fits a curve with a default Estimator.
func Fit(time []float64, event []bool) (*Result, error) {
	defaultEstimatorOnce.Do(func() {
		defaultEstimator = New()
	})
	return defaultEstimator.Fit(time, event)
}

// Kernel returns the compute kernel the estimator uses.
func (e *Estimator) Kernel() *compute.Kernel {
	return e.kernel
}

// Fit estimates the survival function from observation times and event
// flags (true for an observed event, false for censoring).
//
// Observations are stably sorted by time and grouped per distinct time.
// Inputs of at least the parallel threshold are grouped in partitions on the
// configured runner; the result does not depend on the partitioning.
//
// Errors are *compute.ComputeError: ErrLengthMismatch, ErrEmptyInput and
// ErrInvalidTime (NaN, infinite or negative) are shape errors.
func (e *Estimator) Fit(time []float64, event []bool) (*Result, error) {
	rs, err := e.RiskSet(time, event)
	if err != nil {
		return nil, err
	}

	curve, err := e.kernel.SurvivalProbabilities(rs.AtRisk, rs.Events)
	if err != nil {
		return nil, err
	}
	surv := curve[1:]

	res := &Result{
		Time:     rs.Time,
		Survival: surv,
		StdError: greenwood(surv, rs.AtRisk, rs.Events),
		NRisk:    rs.AtRisk,
		NEvent:   rs.Events,
	}

	e.logger.WithFields(logrus.Fields{
		"observations": len(time),
		"times":        res.Len(),
		"kernel":       e.kernel.Implementation().Name(),
	}).Debug("survival: fit complete")

	return res, nil
}

// RiskSet validates the observations and returns the at-risk table without
// fitting a curve.
func (e *Estimator) RiskSet(time []float64, event []bool) (RiskSet, error) {
	if err := validate(time, event); err != nil {
		return RiskSet{}, err
	}

	obs := sortObservations(time, event)

	var r partition.Runner
	if len(obs) >= e.threshold {
		r = e.runner
		e.logger.WithFields(logrus.Fields{
			"observations": len(obs),
			"threshold":    e.threshold,
		}).Debug("survival: partitioned grouping")
	}
	return buildRiskSet(obs, r), nil
}

func validate(time []float64, event []bool) error {
	if len(time) != len(event) {
		return compute.ShapeError(opFit, -1, compute.ErrLengthMismatch)
	}
	if len(time) == 0 {
		return compute.ShapeError(opFit, -1, compute.ErrEmptyInput)
	}
	for i, t := range time {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return compute.ShapeError(opFit, i, compute.ErrInvalidTime)
		}
	}
	return nil
}
