package utils

const (
	// RELFLOOR bounds the denominator of relative errors
	RELFLOOR = 1.e-9
)
