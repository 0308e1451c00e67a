package utils

import (
	"fmt"
	"math"
	"runtime"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}

// IsNan reports whether any component of A is NaN
func IsNan(A any) bool {
	return anyValue(A, math.IsNaN)
}

// NotFinite reports whether any component of A is NaN or infinite
func NotFinite(A any) bool {
	return anyValue(A, func(f float64) bool {
		return math.IsNaN(f) || math.IsInf(f, 0)
	})
}

func anyValue(A any, pred func(float64) bool) bool {
	switch v := A.(type) {
	case float64:
		return pred(v)
	case []float64:
		for _, f := range v {
			if pred(f) {
				return true
			}
		}
	case r3.Vec:
		return pred(v.X) || pred(v.Y) || pred(v.Z)
	case []r3.Vec:
		for _, vv := range v {
			if anyValue(vv, pred) {
				return true
			}
		}
	case [4]r3.Vec:
		return anyValue(v[:], pred)
	case mat.Matrix:
		nr, nc := v.Dims()
		for j := 0; j < nc; j++ {
			for i := 0; i < nr; i++ {
				if pred(v.At(i, j)) {
					return true
				}
			}
		}
	default:
		panic(fmt.Errorf("unsupported type %T", A))
	}
	return false
}
