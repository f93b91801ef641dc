// This file is part of Nexel24.
//
// Nexel24 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nexel24 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nexel24.  If not, see <https://www.gnu.org/licenses/>.

package vlu

import (
	"fmt"
	"math"
)

// Fixed is a signed 8.8 fixed point value.
type Fixed int16

// FixedOne is the value 1.0.
const FixedOne = Fixed(0x100)

// FixedFromFloat converts a floating point value to Fixed. Values outside of
// the range of Fixed are saturated.
func FixedFromFloat(f float64) Fixed {
	v := math.Round(f * float64(FixedOne))
	return saturate(int64(v))
}

// Float returns the value as a floating point number.
func (f Fixed) Float() float64 {
	return float64(f) / float64(FixedOne)
}

func (f Fixed) String() string {
	return fmt.Sprintf("%.3f", f.Float())
}

func saturate(v int64) Fixed {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return Fixed(v)
}

// Vector is a three component vector.
type Vector [3]Fixed

func (v Vector) String() string {
	return fmt.Sprintf("[%s, %s, %s]", v[0], v[1], v[2])
}

// Matrix is a 3x3 matrix stored by row.
type Matrix [3]Vector

// products of two 8.8 values are 16.16 and are shifted back to 8.8. the
// arithmetic shift rounds towards negative infinity.

func dot(a, b Vector) Fixed {
	var sum int64
	for i := range a {
		sum += int64(a[i]) * int64(b[i])
	}
	return saturate(sum >> 8)
}

func cross(a, b Vector) Vector {
	mul := func(x, y Fixed) int64 {
		return int64(x) * int64(y)
	}
	return Vector{
		saturate((mul(a[1], b[2]) - mul(a[2], b[1])) >> 8),
		saturate((mul(a[2], b[0]) - mul(a[0], b[2])) >> 8),
		saturate((mul(a[0], b[1]) - mul(a[1], b[0])) >> 8),
	}
}

func transform(m Matrix, v Vector) Vector {
	return Vector{dot(m[0], v), dot(m[1], v), dot(m[2], v)}
}

// normalise returns the zero vector if the vector has no length.
func normalise(v Vector) Vector {
	var sq float64
	for _, c := range v {
		sq += c.Float() * c.Float()
	}
	if sq == 0 {
		return Vector{}
	}
	l := math.Sqrt(sq)
	return Vector{
		FixedFromFloat(v[0].Float() / l),
		FixedFromFloat(v[1].Float() / l),
		FixedFromFloat(v[2].Float() / l),
	}
}
