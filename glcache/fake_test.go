// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glcache

import (
	"github.com/cogentcore/learngl/gpu"
)

// fakeDevice implements gpu.Device in memory, standing in for the GL
// driver so the cache can be tested without a GPU context.
type fakeDevice struct {
	formats    int
	canGet     bool
	format     uint32
	binary     []byte // payload "compiled" programs serialize to
	lengthRep  *int   // overrides BinaryLength when set
	getErr     error
	installErr error
	reject     bool // installed binaries fail to link
	compileErr error
	compiles   int
	nextHandle uint32
	created    []*fakeProgram
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		formats:    2,
		canGet:     true,
		format:     0xbeef,
		binary:     []byte("driver-specific program binary blob"),
		nextHandle: 1,
	}
}

func (d *fakeDevice) BinaryFormats() int { return d.formats }

func (d *fakeDevice) CanGetBinary() bool { return d.canGet }

func (d *fakeDevice) BinaryLength(pr gpu.Program) int {
	if d.lengthRep != nil {
		return *d.lengthRep
	}
	return len(pr.(*fakeProgram).data)
}

func (d *fakeDevice) GetBinary(pr gpu.Program) (uint32, []byte, error) {
	if d.getErr != nil {
		return 0, nil, d.getErr
	}
	fp := pr.(*fakeProgram)
	return fp.format, fp.data, nil
}

func (d *fakeDevice) NewProgram(name string) gpu.Program {
	fp := &fakeProgram{name: name, handle: d.nextHandle}
	d.nextHandle++
	d.created = append(d.created, fp)
	return fp
}

func (d *fakeDevice) LoadBinary(pr gpu.Program, format uint32, data []byte) error {
	if d.installErr != nil {
		return d.installErr
	}
	fp := pr.(*fakeProgram)
	if d.reject || format != d.format {
		fp.linked = false
		fp.log = "program binary could not be loaded"
		return nil
	}
	fp.linked = true
	fp.format = format
	fp.data = data
	return nil
}

func (d *fakeDevice) CompileProgram(name, vtxSrc, fragSrc string) (gpu.Program, error) {
	d.compiles++
	if d.compileErr != nil {
		return nil, d.compileErr
	}
	fp := d.NewProgram(name).(*fakeProgram)
	fp.linked = true
	fp.format = d.format
	fp.data = d.binary
	return fp, nil
}

// lastCreated returns the most recently created program object.
func (d *fakeDevice) lastCreated() *fakeProgram {
	if len(d.created) == 0 {
		return nil
	}
	return d.created[len(d.created)-1]
}

type fakeProgram struct {
	name    string
	handle  uint32
	linked  bool
	log     string
	format  uint32
	data    []byte
	deleted bool
}

func (fp *fakeProgram) Name() string    { return fp.name }
func (fp *fakeProgram) Handle() uint32  { return fp.handle }
func (fp *fakeProgram) Linked() bool    { return fp.linked }
func (fp *fakeProgram) InfoLog() string { return fp.log }
func (fp *fakeProgram) Activate()       {}

func (fp *fakeProgram) Delete() {
	fp.deleted = true
	fp.handle = 0
}
