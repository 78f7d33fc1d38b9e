package compute_test

import (
	"fmt"

	"github.com/cwbudde/algo-surv/compute"
)

func ExampleSurvivalProbabilities() {
	curve, err := compute.SurvivalProbabilities(
		[]uint{100, 90, 80, 70},
		[]uint{10, 5, 8, 7},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range curve {
		fmt.Printf("%.4f\n", s)
	}
	// Output:
	// 1.0000
	// 0.9000
	// 0.8500
	// 0.7650
	// 0.6885
}

func ExampleVectorSum() {
	fmt.Println(compute.VectorSum([]float64{1, 2, 3, 4, 5}))
	// Output: 15
}

func ExampleWithMaxTier() {
	k := compute.New(compute.WithMaxTier(compute.TierScalar))
	fmt.Println(k.Implementation().Name())
	// Output: generic
}
