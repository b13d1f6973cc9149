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

// Package loader prepares a platform for simulation. A platform is described
// by a YAML file listing the number of cores, the memory regions, the memory
// latency, the program images and an optional interrupt schedule. For
// example:
//
//	cores: 2
//	bigendian: false
//	cycles: 100000
//	halt: 0xbfc00040
//	regions:
//	  - name: boot
//	    origin: 0xbfc00000
//	    size: 0x10000
//	    readonly: true
//	  - name: ram
//	    origin: 0x00000000
//	    size: 0x100000
//	latency:
//	  fetch: 0
//	  data: 2
//	images:
//	  - file: boot.bin
//	    origin: 0xbfc00000
//	  - file: program.elf
//	    entry: true
//	interrupts:
//	  - cycle: 5000
//	    core: 0
//	    lines: 0x01
//
// Images are either raw binary files, which are copied to memory at the
// origin address, or ELF files, in which case every loadable segment is
// copied to memory at its virtual address. The format of an image is decided
// by the file extension or, failing that, by the content of the file.
//
// Paths in the description are relative to the location of the description
// file.
package loader
