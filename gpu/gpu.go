// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides driver-neutral interfaces for compiled GPU shader
// programs and the device operations the demos need: compiling and linking
// from source, and extracting / installing precompiled program binaries.
// The glgpu package provides the OpenGL implementation.
package gpu

// Device is the graphics backend used to create, compile, and serialize
// shader programs. All methods require a current graphics context on the
// calling goroutine.
type Device interface {
	// BinaryFormats returns the number of program binary formats the
	// driver supports. Zero means program binaries cannot be used at all.
	BinaryFormats() int

	// CanGetBinary reports whether the binary extraction entry point
	// actually resolved in the current context. Some drivers report
	// binary formats without exporting the entry point.
	CanGetBinary() bool

	// BinaryLength returns the byte length of the binary representation
	// of the given linked program, as reported by the driver.
	BinaryLength(pr Program) int

	// GetBinary extracts the binary representation of the given linked
	// program, returning the driver-specific format tag and the payload.
	// The format tag is opaque: it is only meaningful to the driver that
	// produced it. A pending driver fault is returned as an error.
	GetBinary(pr Program) (format uint32, data []byte, err error)

	// NewProgram returns a new empty, unlinked program object with the
	// given name. The caller owns it and must call Delete.
	NewProgram(name string) Program

	// LoadBinary installs a previously extracted binary into the given
	// empty program object. A pending driver fault is returned as an
	// error; whether the installed binary actually produced a usable
	// program must be checked separately via Program.Linked.
	LoadBinary(pr Program, format uint32, data []byte) error

	// CompileProgram compiles the given vertex and fragment shader
	// sources and links them into a new program with the given name.
	// The returned program is always successfully linked; any compile or
	// link failure is returned as an error with the driver diagnostics.
	CompileProgram(name, vtxSrc, fragSrc string) (Program, error)
}
