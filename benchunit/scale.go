// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// A prefix is a unit prefix with the smallest values that print as
// 100.0, 10.00 and 1.000 once divided by its factor.
type prefix struct {
	name          string
	factor        float64
	t100, t10, t1 float64
}

// The thresholds are parsed from their printed form so that they round
// exactly the way strconv will when formatting.
var (
	siPrefixes  = decimalPrefixes()
	iecPrefixes = binaryPrefixes()

	// tiny[i] is the smallest value below every prefix that prints
	// with i+3 digits after the decimal point.
	tiny = tinyThresholds()
)

func decimalPrefixes() []prefix {
	var ps []prefix
	exp := 12
	for _, name := range []string{"T", "G", "M", "k", "", "m", "µ", "n"} {
		ps = append(ps, prefix{
			name:   name,
			factor: math.Pow(10, float64(exp)),
			t100:   parse("99.995e%d", exp),
			t10:    parse("9.9995e%d", exp),
			t1:     parse(".99995e%d", exp),
		})
		exp -= 3
	}
	return ps
}

// binaryPrefixes stops at "": "1 /KiB/s" reads worse than "0.001 B/s".
// Values in [1000, 1024) of a factor use the next smaller prefix.
func binaryPrefixes() []prefix {
	var ps []prefix
	exp := 40
	for _, name := range []string{"Ti", "Gi", "Mi", "Ki", ""} {
		ps = append(ps, prefix{
			name:   name,
			factor: math.Pow(2, float64(exp)),
			t100:   parse("0x1.8ffae147ae148p%d", 6+exp),
			t10:    parse("0x1.3ffbe76c8b439p%d", 3+exp),
			t1:     parse("0x1.fff972474538fp%d", -1+exp),
		})
		exp -= 10
	}
	return ps
}

func tinyThresholds() []float64 {
	var ts []float64
	for exp := -1; exp > -9; exp-- {
		ts = append(ts, parse("9.9995e%d", exp))
	}
	return ts
}

func parse(format string, exp int) float64 {
	v, err := strconv.ParseFloat(fmt.Sprintf(format, exp), 64)
	if err != nil {
		panic(err)
	}
	return v
}

// scale formats val with at least three significant digits followed by
// an SI prefix, or an IEC prefix if binary is set. For example,
// 123456789 formats as "123.5M".
//
// val must already be tidied, or the result can carry nonsense units
// such as "123.5M ns".
func scale(val float64, binary bool) string {
	prec, p := precision(math.Abs(val), binary)
	return strconv.FormatFloat(val/p.factor, 'f', prec, 64) + p.name
}

func precision(v float64, binary bool) (int, prefix) {
	if v == 0 {
		return 3, prefix{factor: 1}
	}
	ps := siPrefixes
	if binary {
		ps = iecPrefixes
	}
	for _, p := range ps {
		switch {
		case v >= p.t100:
			return 1, p
		case v >= p.t10:
			return 2, p
		case v >= p.t1:
			return 3, p
		}
	}

	// Below the smallest prefix, add digits instead, up to 10.
	p := ps[len(ps)-1]
	v /= p.factor
	for i, t := range tiny {
		if v >= t || i == len(tiny)-1 {
			return i + 3, p
		}
	}
	panic("not reachable")
}

// FormatValue tidies val in unit and formats it with a prefix followed
// by the tidied unit, for example "1.234 sec" for 1234 ms. Unitless
// counts ("#") print without a unit.
func FormatValue(val float64, unit string) string {
	val, unit = Tidy(val, unit)
	s := scale(val, isBinary(unit))
	if unit == "" || unit == "#" {
		return s
	}
	return s + " " + unit
}
