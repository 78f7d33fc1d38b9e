package survival_test

import (
	"fmt"

	"github.com/cwbudde/algo-surv/survival"
)

func ExampleEstimator_Fit() {
	time := []float64{1, 2, 3, 4, 5}
	event := []bool{false, true, false, true, false}

	res, err := survival.New().Fit(time, event)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := range res.Len() {
		fmt.Printf("t=%.0f at-risk=%d events=%d S=%.4f\n",
			res.Time[i], res.NRisk[i], res.NEvent[i], res.Survival[i])
	}
	// Output:
	// t=1 at-risk=5 events=0 S=1.0000
	// t=2 at-risk=4 events=1 S=0.7500
	// t=3 at-risk=3 events=0 S=0.7500
	// t=4 at-risk=2 events=1 S=0.3750
	// t=5 at-risk=1 events=0 S=0.3750
}

func ExampleResult_Median() {
	res, err := survival.Fit([]float64{2, 4, 6, 8}, []bool{true, true, false, true})
	if err != nil {
		fmt.Println(err)
		return
	}
	median, ok := res.Median()
	fmt.Println(median, ok)
	// Output: 4 true
}
