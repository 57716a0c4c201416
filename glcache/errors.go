// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glcache

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported means the driver cannot extract or install program
	// binaries at all. An expected condition, not a fault.
	ErrUnsupported = errors.New("program binaries not supported")

	// ErrInvalidProgram means a nil or zero-handle program was passed.
	ErrInvalidProgram = errors.New("invalid program object")

	// ErrNotLinked means the program to save does not report a
	// successful link status.
	ErrNotLinked = errors.New("program is not successfully linked")

	// ErrEmptyBinary means the driver produced no binary data for a
	// program it claims to have linked.
	ErrEmptyBinary = errors.New("empty program binary")

	// ErrInvalidLength means the cache file declares a non-positive
	// payload length.
	ErrInvalidLength = errors.New("invalid binary length")

	// ErrTruncated means the cache file ends before the payload its
	// header declares, e.g. after a crash mid-write.
	ErrTruncated = errors.New("truncated cache file")
)

// LinkError is returned by Load when the driver installs the cached
// binary but rejects it at link time, typically because it was produced
// by a different driver, GPU, or version. This is the expected
// steady-state outcome after an upgrade: callers recover by compiling
// from source.
type LinkError struct {
	// Log is the driver's diagnostic log text, if any.
	Log string
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return "driver rejected cached program binary"
	}
	return fmt.Sprintf("driver rejected cached program binary: %s", e.Log)
}
