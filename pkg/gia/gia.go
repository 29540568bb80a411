// giacc-go: GIA asset Classic/Beyond Mode conversion tool
// Copyright (C) 2026  Da Spud Lord
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package gia parses GIA asset files and converts them between Classic
// Mode and Beyond Mode.
//
// A GIA file is a big-endian binary blob: a five-field header, the
// asset content, and a one-field footer. Classic Mode is encoded by a
// two-byte tag sitting immediately before the filename terminator near
// the end of the content; Beyond Mode is encoded by its absence.
// Converting between modes inserts or removes the tag and adjusts the
// header length fields to match.
package gia

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Asset type codes carried in the header FileType field.
const (
	TypeGIP uint32 = 1
	TypeGIL uint32 = 2
	TypeGIA uint32 = 3
	TypeGIR uint32 = 4
)

const (
	// MagicHead is the magic number expected in the header.
	MagicHead uint32 = 806
	// MagicTail is the magic number expected in the footer.
	MagicTail uint32 = 1657

	// HeaderLen is the encoded size of the header in bytes.
	HeaderLen = 20
	// FooterLen is the encoded size of the footer in bytes.
	FooterLen = 4

	// The header FileLen field does not count itself.
	fileLenExcluded = 4
)

var (
	// ClassicTag marks a Classic Mode asset when present immediately
	// before the filename terminator.
	ClassicTag = []byte{0x20, 0x01}
	// NameTerminator ends the filename record near the tail of the
	// content region.
	NameTerminator = []byte{0x2a, 0x05}
)

var (
	// ErrTruncated reports a file too short to hold a header and a
	// footer.
	ErrTruncated = errors.New("file too short for a GIA header and footer")
	// ErrInvalid reports a file that does not parse as a GIA asset.
	ErrInvalid = errors.New("not a valid GIA file")
)

// Mode is the editor mode a GIA asset is configured for.
type Mode int

const (
	// ModeBeyond marks an asset for the Beyond editor.
	ModeBeyond Mode = iota
	// ModeClassic marks an asset for the Classic editor.
	ModeClassic
)

func (m Mode) String() string {
	switch m {
	case ModeBeyond:
		return "Beyond"
	case ModeClassic:
		return "Classic"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Header is the fixed five-field header at the start of every GIA
// file. All fields are big-endian uint32 on disk.
type Header struct {
	FileLen    uint32 // total file length, excluding this field
	FileVer    uint32 // format version, not validated
	MagicNum   uint32 // must equal MagicHead
	FileType   uint32 // must equal TypeGIA
	ContentLen uint32 // file length minus header and footer
}

// ReadHeader reads a header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header

	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return Header{}, err
	}

	return h, nil
}

// WriteHeader writes a header to w.
func WriteHeader(w io.Writer, h Header) error {
	return binary.Write(w, binary.BigEndian, h)
}

// Asset is a parsed view over the raw bytes of a GIA file. The raw
// bytes are shared, not copied, and are never modified.
type Asset struct {
	raw  []byte
	hdr  Header
	term int // index of the filename terminator
	tag  int // index of the Classic tag; equal to term when absent
	mode Mode
}

// Parse validates b as a GIA file and locates its mode marker.
//
// Validation covers the header magic, the file type code, both length
// fields, the footer magic, and the presence of the filename
// terminator. Parse returns ErrTruncated when b cannot hold a header
// and a footer, and an error wrapping ErrInvalid when any other check
// fails.
func Parse(b []byte) (*Asset, error) {
	if len(b) < HeaderLen+FooterLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(b))
	}

	hdr, err := ReadHeader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	if hdr.FileLen != uint32(len(b)-fileLenExcluded) {
		return nil, fmt.Errorf(
			"%w: header length %d does not match file size %d",
			ErrInvalid, hdr.FileLen, len(b),
		)
	}

	if hdr.MagicNum != MagicHead {
		return nil, fmt.Errorf(
			"%w: bad header magic %d", ErrInvalid, hdr.MagicNum,
		)
	}

	if hdr.FileType != TypeGIA {
		return nil, fmt.Errorf(
			"%w: file type %d is not GIA", ErrInvalid, hdr.FileType,
		)
	}

	if hdr.ContentLen != uint32(len(b)-HeaderLen-FooterLen) {
		return nil, fmt.Errorf(
			"%w: content length %d does not match file size %d",
			ErrInvalid, hdr.ContentLen, len(b),
		)
	}

	if tail := binary.BigEndian.Uint32(b[len(b)-FooterLen:]); tail != MagicTail {
		return nil, fmt.Errorf(
			"%w: bad footer magic %d", ErrInvalid, tail,
		)
	}

	// The terminator is the last occurrence before the footer and
	// must sit in the content region.
	term := bytes.LastIndex(b[:len(b)-FooterLen], NameTerminator)
	if term < HeaderLen {
		return nil, fmt.Errorf(
			"%w: filename terminator not found", ErrInvalid,
		)
	}

	a := &Asset{raw: b, hdr: hdr, term: term, tag: term, mode: ModeBeyond}

	// A tag overlapping the header is not a tag.
	if i := term - len(ClassicTag); i >= HeaderLen && bytes.Equal(b[i:term], ClassicTag) {
		a.tag = i
		a.mode = ModeClassic
	}

	return a, nil
}

// Mode reports the mode the asset is configured for.
func (a *Asset) Mode() Mode {
	return a.mode
}

// Header returns the parsed header.
func (a *Asset) Header() Header {
	return a.hdr
}

// Convert returns the asset bytes configured for mode to. When the
// asset already matches, the raw bytes are returned unchanged.
// Otherwise the Classic tag is inserted or removed and the header
// length fields are adjusted, yielding a new slice whose length
// differs from the input by exactly len(ClassicTag).
func (a *Asset) Convert(to Mode) ([]byte, error) {
	if a.mode == to {
		return a.raw, nil
	}

	hdr := a.hdr

	if to == ModeClassic {
		hdr.FileLen += uint32(len(ClassicTag))
		hdr.ContentLen += uint32(len(ClassicTag))
	} else {
		hdr.FileLen -= uint32(len(ClassicTag))
		hdr.ContentLen -= uint32(len(ClassicTag))
	}

	buf := new(bytes.Buffer)
	buf.Grow(len(a.raw) + len(ClassicTag))

	if err := WriteHeader(buf, hdr); err != nil {
		return nil, err
	}

	// Everything between the header and the tag location is carried
	// over as is; the tag itself is written only for Classic Mode.
	buf.Write(a.raw[HeaderLen:a.tag])

	if to == ModeClassic {
		buf.Write(ClassicTag)
	}

	buf.Write(a.raw[a.term:])

	return buf.Bytes(), nil
}

// Detect reports the mode of a GIA file given its full contents.
func Detect(b []byte) (Mode, error) {
	a, err := Parse(b)
	if err != nil {
		return 0, err
	}

	return a.Mode(), nil
}

// Convert returns a copy of b configured for mode to. Converting a
// file already in the target mode is a no-op and returns b unchanged.
func Convert(b []byte, to Mode) ([]byte, error) {
	a, err := Parse(b)
	if err != nil {
		return nil, err
	}

	return a.Convert(to)
}
