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

package assembler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/nexel24/nexel24/curated"
	"github.com/nexel24/nexel24/hardware/cpu/instructions"
	"github.com/nexel24/nexel24/hardware/memory/bus"
)

// Program is the result of a successful assembly.
type Program struct {
	// address of the first byte of the program
	Origin uint32

	Bytes []uint8

	// absolute address of every label in the source
	Labels map[string]uint32
}

func (p Program) String() string {
	names := make([]string, 0, len(p.Labels))
	for n := range p.Labels {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if p.Labels[names[i]] == p.Labels[names[j]] {
			return names[i] < names[j]
		}
		return p.Labels[names[i]] < p.Labels[names[j]]
	})

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%d bytes at %06x", len(p.Bytes), p.Origin))
	for _, n := range names {
		s.WriteString(fmt.Sprintf("\n%06x %s", p.Labels[n], n))
	}
	return s.String()
}

// Poke writes the program into memory at its origin. Read-only areas are
// written to.
func (p Program) Poke(mem bus.DebugBus) {
	for i, b := range p.Bytes {
		mem.Poke(p.Origin+uint32(i), b)
	}
}

// one instruction from the first pass
type statement struct {
	line    int
	address uint32
	defn    *instructions.Definition
	operand string
}

// Assemble NRAW source into a program that starts at origin.
func Assemble(source string, origin uint32) (Program, error) {
	prg := Program{
		Origin: origin,
		Labels: make(map[string]uint32),
	}

	// first pass: collect labels and size the instructions
	var statements []statement
	address := origin

	for idx, line := range strings.Split(source, "\n") {
		lineNum := idx + 1

		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)

		for {
			i := strings.IndexByte(line, ':')
			if i < 0 {
				break
			}
			label := strings.TrimSpace(line[:i])
			if !validLabel(label) {
				return Program{}, curated.Errorf(InvalidLabel, lineNum, label)
			}
			if _, ok := prg.Labels[label]; ok {
				return Program{}, curated.Errorf(DuplicateLabel, lineNum, label)
			}
			prg.Labels[label] = address
			line = strings.TrimSpace(line[i+1:])
		}

		if line == "" {
			continue
		}

		mnemonic, operand := line, ""
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			mnemonic, operand = line[:i], strings.TrimSpace(line[i:])
		}

		op, ok := instructions.OperatorFromMnemonic(mnemonic)
		if !ok {
			return Program{}, curated.Errorf(UnknownInstruction, lineNum, mnemonic)
		}

		defn, err := selectDefinition(op, operand, lineNum)
		if err != nil {
			return Program{}, err
		}

		statements = append(statements, statement{
			line:    lineNum,
			address: address,
			defn:    defn,
			operand: operand,
		})
		address += uint32(defn.Bytes)
	}

	// second pass: encode
	prg.Bytes = make([]uint8, 0, address-origin)
	for _, st := range statements {
		b, err := prg.encode(st)
		if err != nil {
			return Program{}, err
		}
		prg.Bytes = append(prg.Bytes, b...)
	}

	return prg, nil
}

func validLabel(label string) bool {
	if label == "" {
		return false
	}
	for i, r := range label {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// selectDefinition chooses the addressing mode from the form of the operand.
func selectDefinition(op instructions.Operator, operand string, lineNum int) (*instructions.Definition, error) {
	modes := instructions.Modes(op)

	var mode instructions.AddressingMode
	switch len(modes) {
	case 0:
		return nil, curated.Errorf(UnknownInstruction, lineNum, op)
	case 1:
		mode = modes[0]
	default:
		// loads have an immediate and an absolute form
		if strings.HasPrefix(operand, "#") {
			mode = instructions.Immediate
		} else {
			mode = instructions.Absolute
		}
	}

	if mode == instructions.Implied {
		if operand != "" {
			return nil, curated.Errorf(UnexpectedOperand, lineNum, op, operand)
		}
	} else {
		if operand == "" {
			return nil, curated.Errorf(MissingOperand, lineNum, op)
		}
		if mode != instructions.RegisterPair && strings.ContainsAny(operand, " \t") {
			return nil, curated.Errorf(UnexpectedOperand, lineNum, op, operand)
		}
	}

	defn := instructions.Find(op, mode)
	if defn == nil {
		return nil, curated.Errorf(UnknownInstruction, lineNum, op)
	}
	return defn, nil
}

// parseNumber accepts decimal and hexadecimal numbers.
func parseNumber(s string) (uint32, bool) {
	var v uint64
	var err error
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseUint(s[2:], 16, 32)
	case strings.HasPrefix(s, "$"):
		v, err = strconv.ParseUint(s[1:], 16, 32)
	default:
		v, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// value resolves a number or a label.
func (prg *Program) value(s string, lineNum int) (uint32, error) {
	if v, ok := parseNumber(s); ok {
		return v, nil
	}
	if validLabel(s) {
		if v, ok := prg.Labels[s]; ok {
			return v, nil
		}
		return 0, curated.Errorf(LabelNotFound, lineNum, s)
	}
	return 0, curated.Errorf(InvalidNumber, lineNum, s)
}

func register(s string, lineNum int) (uint8, error) {
	code, ok := instructions.RegisterCode(strings.TrimSpace(s))
	if !ok {
		return 0, curated.Errorf(InvalidRegister, lineNum, s)
	}
	return code, nil
}

func (prg *Program) encode(st statement) ([]uint8, error) {
	defn := st.defn
	b := []uint8{defn.OpCode}

	switch defn.AddressingMode {
	case instructions.Implied:

	case instructions.Immediate, instructions.Immediate8:
		if !strings.HasPrefix(st.operand, "#") {
			return nil, curated.Errorf(InvalidNumber, st.line, st.operand)
		}
		v, ok := parseNumber(strings.TrimSpace(st.operand[1:]))
		if !ok {
			return nil, curated.Errorf(InvalidNumber, st.line, st.operand)
		}
		if defn.AddressingMode == instructions.Immediate8 {
			if v > 0xff {
				return nil, curated.Errorf(OutOfRange, st.line, st.operand)
			}
			b = append(b, uint8(v))
		} else {
			if v > 0xffff {
				return nil, curated.Errorf(OutOfRange, st.line, st.operand)
			}
			b = append(b, uint8(v), uint8(v>>8))
		}

	case instructions.Absolute:
		v, err := prg.value(st.operand, st.line)
		if err != nil {
			return nil, err
		}
		if v > 0xffffff {
			return nil, curated.Errorf(OutOfRange, st.line, st.operand)
		}
		b = append(b, uint8(v), uint8(v>>8), uint8(v>>16))

	case instructions.Relative:
		target, err := prg.value(st.operand, st.line)
		if err != nil {
			return nil, err
		}
		offset := int64(target) - int64(st.address+uint32(defn.Bytes))
		if offset < -128 || offset > 127 {
			return nil, curated.Errorf(BranchOutOfRange, st.line, st.operand, offset)
		}
		b = append(b, uint8(int8(offset)))

	case instructions.Register:
		r, err := register(st.operand, st.line)
		if err != nil {
			return nil, err
		}
		b = append(b, r)

	case instructions.RegisterPair:
		dst, src, ok := strings.Cut(st.operand, ",")
		if !ok {
			return nil, curated.Errorf(InvalidRegister, st.line, st.operand)
		}
		d, err := register(dst, st.line)
		if err != nil {
			return nil, err
		}
		s, err := register(src, st.line)
		if err != nil {
			return nil, err
		}
		b = append(b, d<<4|s)
	}

	return b, nil
}
