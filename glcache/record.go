// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glcache

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Record is the on-disk unit of the program binary cache: the driver's
// opaque format tag and the program binary payload. The encoding is the
// format tag as a 4-byte unsigned integer, the payload length as a
// 4-byte signed integer, then the payload, little-endian, with no
// further framing. Field widths are fixed explicitly rather than
// platform-native, so the header layout does not vary across
// architectures; the payload itself is still inherently non-portable.
type Record struct {
	// Format is the driver-specific binary format tag, meaningful only
	// to the driver that produced the payload.
	Format uint32

	// Data is the opaque program binary payload.
	Data []byte
}

// Encode writes the record to the given writer: format tag, payload
// length, payload, in that fixed order.
func (rc *Record) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, rc.Format); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(len(rc.Data))); err != nil {
		return err
	}
	_, err := w.Write(rc.Data)
	return err
}

// Decode reads a record from the given reader, in the same fixed order
// used by Encode. A non-positive length field fails with
// ErrInvalidLength; a payload shorter than the length field declares
// fails with ErrTruncated, meaning the file is corrupt or was written
// by an incompatible process.
func (rc *Record) Decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &rc.Format); err != nil {
		return fmt.Errorf("reading format tag: %w", ErrTruncated)
	}
	var length int32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return fmt.Errorf("reading length: %w", ErrTruncated)
	}
	if length <= 0 {
		return fmt.Errorf("length field %d: %w", length, ErrInvalidLength)
	}
	data := make([]byte, length)
	n, err := io.ReadFull(r, data)
	if err != nil {
		return fmt.Errorf("payload: read %d of %d bytes: %w", n, length, ErrTruncated)
	}
	rc.Data = data
	return nil
}
