// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements the gpu interfaces using OpenGL 4.1 core,
// via the go-gl bindings. A current GL context must be bound on the
// calling goroutine (see examples/internal/app) for all operations.
package glgpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/learngl/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Device implements gpu.Device for OpenGL. The zero value is usable
// once a GL context is current and gl.Init has been called.
type Device struct{}

// NewDevice returns a Device for the current GL context.
func NewDevice() *Device {
	return &Device{}
}

// BinaryFormats returns the number of program binary formats the driver
// supports (GL_NUM_PROGRAM_BINARY_FORMATS).
func (dv *Device) BinaryFormats() int {
	var n int32
	gl.GetIntegerv(gl.NUM_PROGRAM_BINARY_FORMATS, &n)
	return int(n)
}

// CanGetBinary reports whether the glGetProgramBinary entry point
// resolved in the current context.
func (dv *Device) CanGetBinary() bool {
	return glfw.GetProcAddress("glGetProgramBinary") != nil
}

// BinaryLength returns the byte length of the program's binary
// representation (GL_PROGRAM_BINARY_LENGTH).
func (dv *Device) BinaryLength(pr gpu.Program) int {
	var n int32
	gl.GetProgramiv(pr.Handle(), gl.PROGRAM_BINARY_LENGTH, &n)
	return int(n)
}

// GetBinary extracts the binary representation of the given linked
// program. The payload is sized to the length the driver actually
// wrote, which can differ from the reported length.
func (dv *Device) GetBinary(pr gpu.Program) (uint32, []byte, error) {
	length := int32(dv.BinaryLength(pr))
	if length <= 0 {
		return 0, nil, nil
	}
	buf := make([]byte, length)
	var actual int32
	var format uint32
	gl.GetProgramBinary(pr.Handle(), length, &actual, &format, gl.Ptr(buf))
	if err := glErr("GetProgramBinary"); err != nil {
		return 0, nil, err
	}
	if actual != length {
		slog.Warn("glgpu: program binary length mismatch", "reported", length, "actual", actual)
	}
	return format, buf[:actual], nil
}

// NewProgram returns a new empty program object with the given name.
func (dv *Device) NewProgram(name string) gpu.Program {
	return &Program{handle: gl.CreateProgram(), name: name}
}

// LoadBinary installs a previously extracted binary into the given
// program object. The caller must check Program.Linked afterward:
// drivers reject binaries from other driver/GPU versions at this point.
func (dv *Device) LoadBinary(pr gpu.Program, format uint32, data []byte) error {
	gl.ProgramBinary(pr.Handle(), format, gl.Ptr(data), int32(len(data)))
	return glErr("ProgramBinary")
}

// CompileProgram compiles the given vertex and fragment shader sources
// and links them into a new program. The stage shader objects are
// detached and deleted once the program is linked.
func (dv *Device) CompileProgram(name, vtxSrc, fragSrc string) (gpu.Program, error) {
	vsh := &shader{typ: gpu.VertexShader}
	if err := vsh.compile(vtxSrc); err != nil {
		return nil, err
	}
	fsh := &shader{typ: gpu.FragmentShader}
	if err := fsh.compile(fragSrc); err != nil {
		vsh.delete()
		return nil, err
	}
	handle := gl.CreateProgram()
	gl.AttachShader(handle, vsh.handle)
	gl.AttachShader(handle, fsh.handle)
	gl.LinkProgram(handle)
	gl.DetachShader(handle, vsh.handle)
	gl.DetachShader(handle, fsh.handle)
	vsh.delete()
	fsh.delete()

	pr := &Program{handle: handle, name: name}
	if !pr.Linked() {
		lg := pr.InfoLog()
		pr.Delete()
		return nil, fmt.Errorf("glgpu CompileProgram: failed to link program %s: %s", name, lg)
	}
	return pr, nil
}

// Error is a raw error code reported by glGetError.
type Error uint32

func (e Error) Error() string {
	return fmt.Sprintf("GL error %#04x", uint32(e))
}

// glErr returns any error pending in the GL error state after a call.
func glErr(ctx string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("glgpu %s: %w", ctx, Error(code))
	}
	return nil
}
