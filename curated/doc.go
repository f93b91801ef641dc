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

// Package curated wraps the plain Go error type so that errors can be
// identified by the pattern they were created with rather than by their final
// message.
//
// Errors are created with Errorf(), which takes a formatting pattern and
// placeholder values in the same way as fmt.Errorf():
//
//	e := curated.Errorf(memory.SizeExceeded, "BIOS", 0x20000, 0x10000)
//
//	if curated.Is(e, memory.SizeExceeded) {
//		fmt.Println("image too large")
//	}
//
// Packages that return curated errors declare their patterns as exported
// string constants. Callers compare against the constant, never against the
// formatted message.
//
// Has() looks for the pattern anywhere in the chain of wrapped curated errors:
//
//	f := curated.Errorf("console: %v", e)
//	curated.Has(f, memory.SizeExceeded) // true
//	curated.Is(f, memory.SizeExceeded)  // false
//
// IsAny() answers whether an error was created by this package at all. An
// uncurated error usually means something unexpected happened.
//
// The Error() implementation normalises the chain by removing adjacent
// duplicate message parts, which happens naturally when every layer prefixes
// the error with its own package name.
package curated
