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

package registers

import (
	"fmt"
)

// Register is a 16-bit register. The label is used only for presentation.
type Register struct {
	label string
	value uint16
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint16, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%04x", r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint16 {
	return r.value
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x8000 == 0x8000
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsBitV returns the state of the second MSB.
func (r Register) IsBitV() bool {
	return r.value&0x4000 == 0x4000
}

// Load value into register.
func (r *Register) Load(val uint16) {
	r.value = val
}

// Add value to register. Returns carry and overflow states.
func (r *Register) Add(val uint16) (carry bool, overflow bool) {
	v := r.value
	r.value += val

	// overflow if both operands have the same sign and the sign of the
	// result is different
	overflow = ((v ^ r.value) & (val ^ r.value) & 0x8000) != 0
	carry = r.value < v

	return carry, overflow
}

// Subtract value from register. The carry return value is true if the
// subtraction borrowed.
func (r *Register) Subtract(val uint16) (borrow bool, overflow bool) {
	v := r.value
	r.value -= val

	// overflow if the operands have different signs and the sign of the
	// result is different to the minuend
	overflow = ((v ^ val) & (v ^ r.value) & 0x8000) != 0
	borrow = val > v

	return borrow, overflow
}

// Multiply register by value. The register receives the low word of the
// product and the high word is returned.
func (r *Register) Multiply(val uint16) uint16 {
	p := uint32(r.value) * uint32(val)
	r.value = uint16(p)
	return uint16(p >> 16)
}

// Divide register by value. The register receives the quotient and the
// remainder is returned. Division by zero is the caller's responsibility.
func (r *Register) Divide(val uint16) uint16 {
	rem := r.value % val
	r.value /= val
	return rem
}

// AND value with register.
func (r *Register) AND(val uint16) {
	r.value &= val
}

// OR value with register.
func (r *Register) OR(val uint16) {
	r.value |= val
}

// XOR value with register.
func (r *Register) XOR(val uint16) {
	r.value ^= val
}

// Clear bits in register that are set in value.
func (r *Register) Clear(val uint16) {
	r.value &^= val
}

// Increment register by one. The value wraps.
func (r *Register) Increment() {
	r.value++
}

// Decrement register by one. The value wraps.
func (r *Register) Decrement() {
	r.value--
}
