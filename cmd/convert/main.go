// Package main is a demonstration consumer of the measurement library.
// It constructs quantities from literal values and prints them in several
// units through the display helper.
//
// Usage:
//
//	go run cmd/convert/main.go
package main

import (
	"fmt"

	"github.com/hapkiduki/measure-go/internal/domain/measure"
	"github.com/hapkiduki/measure-go/pkg/numfmt"
)

func main() {
	hot := measure.FromUnit(measure.Fahrenheit, 85.6)
	fmt.Printf("Temp = %s %s is %s %s\n",
		numfmt.Rounded(hot.ToUnit(measure.Fahrenheit), 2), measure.Fahrenheit,
		numfmt.Rounded(hot.ToUnit(measure.Celsius), 2), measure.Celsius,
	)
	fmt.Printf("Temp = %s %s is %s %s\n",
		numfmt.Rounded(hot.ToUnit(measure.Fahrenheit), 2), measure.Fahrenheit,
		numfmt.Rounded(hot.ToUnit(measure.Kelvin), 2), measure.Kelvin,
	)

	mild := measure.FromUnit(measure.Celsius, 41.0)
	fmt.Printf("Temp = %s %s is %s %s\n",
		numfmt.Rounded(mild.ToUnit(measure.Celsius), 2), measure.Celsius,
		numfmt.Rounded(mild.ToUnit(measure.Fahrenheit), 2), measure.Fahrenheit,
	)

	run := measure.FromUnit(measure.Kilometer, 3.2)
	fmt.Printf("Length = %s %s is %s %s\n",
		numfmt.Rounded(run.ToUnit(measure.Kilometer), 2), measure.Kilometer,
		numfmt.Rounded(run.ToUnit(measure.Meter), 3), measure.Meter,
	)
	fmt.Printf("Length = %s %s is %s %s\n",
		numfmt.Rounded(run.ToUnit(measure.Kilometer), 2), measure.Kilometer,
		numfmt.Rounded(run.ToUnit(measure.Foot), 3), measure.Foot,
	)
}
