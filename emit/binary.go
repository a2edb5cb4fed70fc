// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emit

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"github.com/golang/snappy"
	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"

	"github.com/ezrec/optable/spec"
	"github.com/ezrec/optable/table"
)

const (
	ImageMagic   = "O65T"
	ImageVersion = 1
)

// snappyMagic is the stream identifier chunk opening every snappy stream.
const snappyMagic = "\xff\x06\x00\x00sNaPpY"

// Image is the little endian binary layout of the tables.
type Image struct {
	Magic   string `struc:"[4]byte"`
	Version int    `struc:"uint16"`
	Roots   int    `struc:"uint16"`
	NameLen int    `struc:"uint16,sizeof=Names"`
	Opcodes [spec.OpcodeCount]byte
	Modes   [spec.OpcodeCount]byte
	Names   []byte
}

// Binary writes the tables as an Image, snappy framed if opt.Compress.
func Binary(w io.Writer, tab *table.Tables, opt Options) (err error) {
	img := &Image{
		Magic:   ImageMagic,
		Version: ImageVersion,
		Roots:   tab.Roots,
		Opcodes: tab.Opcodes,
		Modes:   tab.Modes,
		Names:   tab.Names,
	}

	if !opt.Compress {
		err = struc.PackWithOrder(w, img, binary.LittleEndian)
		err = errors.Wrap(err, "failed to pack image")
		return
	}

	zw := snappy.NewBufferedWriter(w)
	err = struc.PackWithOrder(zw, img, binary.LittleEndian)
	if err != nil {
		zw.Close()
		err = errors.Wrap(err, "failed to pack image")
		return
	}

	err = errors.Wrap(zw.Close(), "snappy flush failed")

	return
}

// ReadBinary decodes tables written by Binary, compressed or not. The
// decoded tables must pass Verify. They carry no source records.
func ReadBinary(r io.Reader) (tab *table.Tables, err error) {
	br := bufio.NewReader(r)

	var input io.Reader = br
	head, _ := br.Peek(len(snappyMagic))
	if bytes.Equal(head, []byte(snappyMagic)) {
		input = snappy.NewReader(br)
	}

	var img Image
	err = struc.UnpackWithOrder(input, &img, binary.LittleEndian)
	if err != nil {
		err = errors.Wrap(err, "failed to unpack image")
		return
	}

	if img.Magic != ImageMagic {
		err = ErrImageMagic
		return
	}

	if img.Version != ImageVersion {
		err = ErrImageVersion
		return
	}

	if len(img.Names) < spec.RootLength {
		err = ErrImageNames
		return
	}

	decoded := &table.Tables{
		Opcodes:  img.Opcodes,
		Modes:    img.Modes,
		Names:    img.Names,
		Roots:    img.Roots,
		Sentinel: string(img.Names[len(img.Names)-spec.RootLength:]),
	}

	err = decoded.Verify()
	if err != nil {
		err = errors.Wrap(err, "invalid image tables")
		return
	}

	tab = decoded

	return
}
