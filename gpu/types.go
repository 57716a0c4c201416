// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "strings"

// ShaderTypes is a list of GPU shader stage types.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
	ShaderTypesN
)

// ShaderTypeNames are human-readable names for each shader stage.
var ShaderTypeNames = map[ShaderTypes]string{
	VertexShader:   "vertex",
	FragmentShader: "fragment",
}

func (st ShaderTypes) String() string {
	nm, ok := ShaderTypeNames[st]
	if !ok {
		return "unknown"
	}
	return nm
}

// CString returns a null-terminated version of the given string,
// as required by the C-based graphics APIs. If it is already
// terminated, it is returned as-is.
func CString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// GoString returns a Go version of the given string, with any null
// termination removed (e.g., for display purposes).
func GoString(s string) string {
	return strings.TrimRight(s, "\x00")
}
