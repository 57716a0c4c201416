// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Program is an opaque handle to a GPU shader program object. Whoever
// creates one (Device.CompileProgram, or the binary cache on a successful
// load) hands ownership to the caller, which must call Delete when the
// program is no longer needed.
type Program interface {
	// Name returns the name of the program.
	Name() string

	// Handle returns the native handle for the program object.
	Handle() uint32

	// Linked reports whether the program's shader stages were
	// successfully combined into an executable program object.
	Linked() bool

	// InfoLog returns the driver's diagnostic log text for the program,
	// describing why a link or binary install was rejected.
	// Empty if the driver has nothing to report.
	InfoLog() string

	// Activate makes this the active program for subsequent draw calls.
	Activate()

	// Delete releases the GPU resources associated with this program.
	Delete()
}
