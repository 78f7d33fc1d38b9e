// Command kminfo inspects the vector kernels and fits Kaplan-Meier curves.
//
// Usage:
//
//	kminfo [--config file] [--log-level level] <command>
//
// Examples:
//
//	kminfo caps
//	kminfo fit --reference
//	kminfo fit --time 1,2,3,4,5 --event 0,1,0,1,0
//	kminfo sum --random 1000000 --parallel
//	kminfo --max-tier scalar sum 1 2 3
package main

import (
	"os"
)

func main() {
	a := &app{}
	err := a.rootCmd().Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}
