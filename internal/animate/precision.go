package animate

import "math"

// Precision selects how a scaled value is truncated for display.
type Precision int

const (
	Whole Precision = iota
	Tenths
)

func (p Precision) String() string {
	if p == Tenths {
		return "tenths"
	}
	return "whole"
}

// TruncateTenths floors v to one decimal place. 12.86 becomes 12.8.
func TruncateTenths(v float64) float64 {
	return math.Floor(v*10) / 10
}

func ceilTenths(v float64) float64 {
	return math.Ceil(v*10) / 10
}

// Scale returns floor(progress * max).
func Scale(progress, max float64) float64 {
	return math.Floor(progress * max)
}

// ScaleTenths returns floor(progress * max * 10) / 10.
func ScaleTenths(progress, max float64) float64 {
	return math.Floor(progress*max*10) / 10
}
