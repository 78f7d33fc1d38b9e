package survival

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/viterin/vek"
)

// greenwood returns the standard error of each survival value with
// Greenwood's formula:
//
//	V_i  = sum_{j<=i} d_j / (n_j (n_j - d_j))
//	se_i = S_i * sqrt(V_i)
//
// Rows without events, and rows where every subject at risk fails, add
// nothing to V. In the latter case S is zero from that row on, so the
// standard error is zero as well.
func greenwood(surv []float64, nRisk, nEvent []uint) []float64 {
	se := make([]float64, len(nRisk))
	if len(se) == 0 {
		return se
	}

	acc := 0.0
	for i := range nRisk {
		n, d := nRisk[i], nEvent[i]
		if d > 0 && n > d {
			nf, df := float64(n), float64(d)
			acc += df / (nf * (nf - df))
		}
		se[i] = acc
	}

	vek.Sqrt_Inplace(se)
	vecmath.MulBlockInPlace(se, surv)
	return se
}
