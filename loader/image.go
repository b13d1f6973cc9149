// This file is part of Socsim.
//
// Socsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Socsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Socsim.  If not, see <https://www.gnu.org/licenses/>.

package loader

import (
	"bytes"
	"crypto/sha1"
	"debug/elf"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/errors"
	"github.com/socsim/socsim/hardware/memory/ram"
	"github.com/socsim/socsim/symbols"
)

// Format of an image file.
type Format string

// List of valid Format values. FormatAuto will be changed to one of the other
// values when the image is loaded.
const (
	FormatAuto Format = "AUTO"
	FormatRaw  Format = "RAW"
	FormatELF  Format = "ELF"
)

var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// Image is a program image to be copied into memory.
type Image struct {
	// filename of the image to load
	Filename string

	// format of the image
	Format Format

	// the address at which a raw image is placed. not used for ELF images
	Origin uint32

	// copy of the loaded file. nil until Load() has been called
	Data []byte

	// SHA-1 hash of the loaded file
	Hash string

	// entry point of an ELF image. zero for raw images
	Entry uint32
}

// NewImage is the preferred method of initialisation for the Image type. An
// empty format string or "AUTO" indicates that the format should be decided
// from the filename extension or the content of the file.
func NewImage(filename string, format string, origin uint32) Image {
	img := Image{
		Filename: filename,
		Format:   FormatAuto,
		Origin:   origin,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != "" && format != string(FormatAuto) {
		img.Format = Format(format)
		return img
	}

	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".BIN", ".ROM", ".RAW":
		img.Format = FormatRaw
	case ".ELF", ".O":
		img.Format = FormatELF
	}

	return img
}

func (img Image) String() string {
	if img.Format == FormatRaw {
		return fmt.Sprintf("%s (%s @ %08x)", img.Filename, img.Format, img.Origin)
	}
	return fmt.Sprintf("%s (%s)", img.Filename, img.Format)
}

// Load reads the image file. The Data and Hash fields will be filled in and
// the Format field will no longer be FormatAuto.
func (img *Image) Load() error {
	data, err := os.ReadFile(img.Filename)
	if err != nil {
		return errors.Annotatef(err, "loading image %s", img.Filename)
	}

	img.Data = data
	img.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	if img.Format == FormatAuto {
		if bytes.HasPrefix(data, elfMagic) {
			img.Format = FormatELF
		} else {
			img.Format = FormatRaw
		}
	}

	switch img.Format {
	case FormatRaw, FormatELF:
	default:
		return errors.NotSupportedf("image format %s", img.Format)
	}

	return nil
}

// Copy the loaded image into memory. Read-only regions are written to.
func (img *Image) Copy(mem *ram.RAM) error {
	if img.Data == nil {
		return errors.Errorf("image %s has not been loaded", img.Filename)
	}

	switch img.Format {
	case FormatRaw:
		if err := mem.Load(img.Origin, img.Data); err != nil {
			return errors.Annotatef(err, "copying %s", img.Filename)
		}
	case FormatELF:
		if err := img.copyELF(mem); err != nil {
			return errors.Annotatef(err, "copying %s", img.Filename)
		}
	default:
		return errors.NotSupportedf("image format %s", img.Format)
	}

	return nil
}

func (img *Image) copyELF(mem *ram.RAM) error {
	ef, err := elf.NewFile(bytes.NewReader(img.Data))
	if err != nil {
		return errors.Trace(err)
	}
	defer ef.Close()

	if ef.Class != elf.ELFCLASS32 {
		return errors.NotSupportedf("ELF class %s", ef.Class)
	}
	if ef.Machine != elf.EM_MIPS {
		return errors.NotSupportedf("ELF machine %s", ef.Machine)
	}

	// the byte order of the file must match the byte order of memory
	bigEndian := ef.Data == elf.ELFDATA2MSB
	if bigEndian != mem.BigEndian() {
		return errors.Errorf("ELF byte order (%s) does not match memory", ef.Data)
	}

	for _, p := range ef.Progs {
		if p.Type != elf.PT_LOAD || p.Memsz == 0 {
			continue
		}

		if p.Filesz > p.Memsz {
			return errors.NotValidf("segment at %08x", p.Vaddr)
		}

		// the part of the segment not in the file is zero filled
		data := make([]byte, p.Memsz)
		if _, err := io.ReadFull(p.Open(), data[:p.Filesz]); err != nil {
			return errors.Annotatef(err, "segment at %08x", p.Vaddr)
		}

		if err := mem.Load(uint32(p.Vaddr), data); err != nil {
			return errors.Annotatef(err, "segment at %08x", p.Vaddr)
		}
	}

	img.Entry = uint32(ef.Entry)

	return nil
}

// AddSymbols adds the function and object symbols of an ELF image to the
// symbol table. Raw images have no symbols.
func (img *Image) AddSymbols(sym *symbols.Symbols) error {
	if img.Format != FormatELF {
		return nil
	}

	ef, err := elf.NewFile(bytes.NewReader(img.Data))
	if err != nil {
		return errors.Trace(err)
	}
	defer ef.Close()

	syms, err := ef.Symbols()
	if err != nil {
		// a stripped executable is not an error
		if err == elf.ErrNoSymbols {
			return nil
		}
		return errors.Annotatef(err, "symbols in %s", img.Filename)
	}

	for _, s := range syms {
		if s.Name == "" || s.Section == elf.SHN_UNDEF {
			continue
		}
		switch elf.ST_TYPE(s.Info) {
		case elf.STT_FUNC, elf.STT_NOTYPE:
			sym.Add(symbols.SearchLabel, uint32(s.Value), s.Name)
		case elf.STT_OBJECT:
			sym.Add(symbols.SearchData, uint32(s.Value), s.Name)
		}
	}

	return nil
}
