// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glcache caches linked GPU shader programs on disk as driver
// binaries, so that subsequent runs can skip compiling from source.
// Such binaries are driver / GPU / version specific by design: a cached
// binary that the driver rejects is the expected steady-state outcome
// after an upgrade, and the cache falls back to compiling from source.
package glcache

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/cogentcore/learngl/gpu"
)

// Cache loads and saves the binary of one linked shader program at a
// fixed file path. It does not retain the programs it creates: every
// returned gpu.Program is owned by the caller, which must Delete it.
type Cache struct {
	dev  gpu.Device
	path string

	capOnce sync.Once
	capable bool
}

// New returns a Cache that stores the program binary at the given path,
// using the given device for all driver operations.
func New(dev gpu.Device, path string) *Cache {
	return &Cache{dev: dev, path: path}
}

// Path returns the cache file path.
func (c *Cache) Path() string {
	return c.path
}

// Supported reports whether the environment supports extracting and
// installing program binaries at all. It is computed once per Cache:
// the capability does not change within a process lifetime. A driver
// that reports binary formats but does not export the extraction entry
// point is treated as unsupported, with a warning.
func (c *Cache) Supported() bool {
	c.capOnce.Do(func() {
		nf := c.dev.BinaryFormats()
		if nf < 1 {
			slog.Info("glcache: driver reports no program binary formats")
			return
		}
		if !c.dev.CanGetBinary() {
			slog.Warn("glcache: binary formats reported but extraction entry point unavailable, disabling cache", "formats", nf)
			return
		}
		slog.Info("glcache: program binaries supported", "formats", nf)
		c.capable = true
	})
	return c.capable
}

// Save writes the binary of the given successfully linked program to
// the cache file, as the driver format tag, the payload length, and
// the payload, in that fixed order. The program must be valid and
// linked, the capability must be supported, and the driver must report
// a non-empty binary; no file is touched otherwise.
func (c *Cache) Save(pr gpu.Program) error {
	if pr == nil || pr.Handle() == 0 {
		return fmt.Errorf("glcache save: %w", ErrInvalidProgram)
	}
	if !pr.Linked() {
		return fmt.Errorf("glcache save: %s: %w", pr.Name(), ErrNotLinked)
	}
	if !c.Supported() {
		return fmt.Errorf("glcache save: %w", ErrUnsupported)
	}
	length := c.dev.BinaryLength(pr)
	if length <= 0 {
		return fmt.Errorf("glcache save: %s: driver reports binary length %d: %w", pr.Name(), length, ErrEmptyBinary)
	}

	format, data, err := c.dev.GetBinary(pr)
	if err != nil {
		return fmt.Errorf("glcache save: %s: extracting binary: %w", pr.Name(), err)
	}
	if len(data) == 0 {
		return fmt.Errorf("glcache save: %s: no binary data retrieved: %w", pr.Name(), ErrEmptyBinary)
	}

	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("glcache save: %w", err)
	}
	rec := &Record{Format: format, Data: data}
	if err := rec.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("glcache save: writing %s: %w", c.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("glcache save: writing %s: %w", c.path, err)
	}
	slog.Info("glcache: saved program binary", "path", c.path, "format", format, "bytes", len(data))
	return nil
}

// Load reads the cache file and installs its binary into a new program
// object, returning the live program on success. The caller owns the
// returned program. Any failure releases whatever was created: Load
// never returns a program whose link status is unsuccessful. A
// LinkError failure means the cached binary is stale and the caller
// should recompile from source.
func (c *Cache) Load() (gpu.Program, error) {
	if !c.Supported() {
		return nil, fmt.Errorf("glcache load: %w", ErrUnsupported)
	}
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("glcache load: %w", err)
	}
	defer f.Close()

	rec := &Record{}
	if err := rec.Decode(f); err != nil {
		return nil, fmt.Errorf("glcache load: %s: %w", c.path, err)
	}

	pr := c.dev.NewProgram(filepath.Base(c.path))
	if err := c.dev.LoadBinary(pr, rec.Format, rec.Data); err != nil {
		pr.Delete()
		return nil, fmt.Errorf("glcache load: %s: installing binary: %w", c.path, err)
	}
	if !pr.Linked() {
		lerr := &LinkError{Log: pr.InfoLog()}
		pr.Delete()
		return nil, fmt.Errorf("glcache load: %s: %w", c.path, lerr)
	}
	slog.Info("glcache: loaded program binary", "path", c.path, "bytes", len(rec.Data))
	return pr, nil
}

// Program returns a usable linked program for the given vertex and
// fragment shader sources: from the binary cache when a valid cached
// binary exists, otherwise compiled from source via the device, in
// which case the cache is opportunistically repopulated for future
// runs. A save failure is logged and does not affect the returned
// program; only a source compile failure is fatal.
func (c *Cache) Program(name, vtxSrc, fragSrc string) (gpu.Program, error) {
	if c.Supported() {
		pr, err := c.Load()
		if err == nil {
			return pr, nil
		}
		slog.Info("glcache: cache miss, compiling from source", "path", c.path, "reason", err.Error())
	}

	pr, err := c.dev.CompileProgram(name, vtxSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("glcache: compiling %s from source: %w", name, err)
	}

	if c.Supported() {
		if err := c.Save(pr); err != nil {
			slog.Error("glcache: program compiled but binary not cached", "err", err)
		}
	}
	return pr, nil
}
