//go:build purego || !amd64

package main

func vekAssembly() string {
	return "n/a"
}
