// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"strings"

	"github.com/cogentcore/learngl/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program implements gpu.Program for an OpenGL program object.
type Program struct {
	handle uint32
	name   string
}

// Name returns the name of the program.
func (pr *Program) Name() string {
	return pr.name
}

// Handle returns the GL handle for the program object.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Linked queries the program's link status (GL_LINK_STATUS).
func (pr *Program) Linked() bool {
	var status int32
	gl.GetProgramiv(pr.handle, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

// InfoLog returns the program info log, describing why a link or
// binary install was rejected. Empty if the driver has nothing to say.
func (pr *Program) InfoLog() string {
	var lgLength int32
	gl.GetProgramiv(pr.handle, gl.INFO_LOG_LENGTH, &lgLength)
	if lgLength <= 0 {
		return ""
	}
	lg := strings.Repeat("\x00", int(lgLength+1))
	gl.GetProgramInfoLog(pr.handle, lgLength, nil, gl.Str(lg))
	return gpu.GoString(lg)
}

// Activate makes this the active program for subsequent draw calls.
func (pr *Program) Activate() {
	gl.UseProgram(pr.handle)
}

// Delete deletes the GPU resources associated with this program.
// Should be called prior to the Go object being deleted.
func (pr *Program) Delete() {
	if pr.handle == 0 {
		return
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
}
