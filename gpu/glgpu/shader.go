// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"github.com/cogentcore/learngl/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// shader manages a single shader stage of a program.
type shader struct {
	handle uint32
	typ    gpu.ShaderTypes
	src    string
}

// compile compiles the given source code for the shader's stage.
// The source does not need to be null terminated.
func (sh *shader) compile(src string) error {
	handle := gl.CreateShader(glShaders[sh.typ])

	sh.src = src
	csrc := gpu.CString(src)
	csources, free := gl.Strs(csrc)
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &lgLength)
		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetShaderInfoLog(handle, lgLength, nil, gl.Str(lg))
		gl.DeleteShader(handle)
		return fmt.Errorf("glgpu: %s shader failed to compile: %s", sh.typ, gpu.GoString(lg))
	}

	sh.handle = handle
	return nil
}

// delete deletes the shader stage object.
func (sh *shader) delete() {
	if sh.handle == 0 {
		return
	}
	gl.DeleteShader(sh.handle)
	sh.handle = 0
}

var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}
