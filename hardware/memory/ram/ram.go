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

package ram

import (
	"sort"

	"github.com/socsim/socsim/curated"
	"github.com/socsim/socsim/hardware/memory/bus"
	"github.com/socsim/socsim/logger"
)

// Sentinal errors.
const (
	RegionOverlap   = "ram: region %s overlaps region %s"
	RegionAlignment = "ram: region %s is not word aligned"
	Unmapped        = "ram: address %08x is not mapped"
	IllegalPort     = "ram: no such port (%d)"
)

// Stats counts the transactions completed by the memory.
type Stats struct {
	Reads       int
	Writes      int
	Invalidates int
	BusErrors   int
}

type port struct {
	latency int

	// the transaction being serviced
	id        uint64
	active    bool
	remaining int
	done      bool
	response  bus.Response
}

// RAM is the backing store of the platform.
type RAM struct {
	regions   []*Region
	bigEndian bool
	ports     []port

	Stats Stats
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(numPorts int, bigEndian bool) *RAM {
	return &RAM{
		bigEndian: bigEndian,
		ports:     make([]port, numPorts),
	}
}

// AddRegion adds a new region to the memory. Regions must be word aligned and
// must not overlap an existing region.
func (mem *RAM) AddRegion(name string, origin uint32, size uint32, readOnly bool) (*Region, error) {
	r := &Region{
		Name:     name,
		Origin:   origin,
		ReadOnly: readOnly,
	}

	if origin&0x03 != 0 || size&0x03 != 0 || size == 0 {
		return nil, curated.Errorf(RegionAlignment, name)
	}
	if uint64(origin)+uint64(size) > 1<<32 {
		return nil, curated.Errorf(RegionAlignment, name)
	}

	r.data = make([]uint8, size)

	for _, o := range mem.regions {
		if r.overlaps(o) {
			return nil, curated.Errorf(RegionOverlap, name, o.Name)
		}
	}

	mem.regions = append(mem.regions, r)
	sort.Slice(mem.regions, func(i, j int) bool {
		return mem.regions[i].Origin < mem.regions[j].Origin
	})

	return r, nil
}

// Regions returns the list of regions ordered by origin.
func (mem *RAM) Regions() []*Region {
	return mem.regions
}

// SetLatency sets the number of cycles the port withholds a response.
func (mem *RAM) SetLatency(portNum int, latency int) error {
	if portNum < 0 || portNum >= len(mem.ports) {
		return curated.Errorf(IllegalPort, portNum)
	}
	if latency < 0 {
		latency = 0
	}
	mem.ports[portNum].latency = latency
	return nil
}

// Reset forgets all transactions in progress. Memory content is preserved.
func (mem *RAM) Reset() {
	for i := range mem.ports {
		l := mem.ports[i].latency
		mem.ports[i] = port{latency: l}
	}
	mem.Stats = Stats{}
}

func (mem *RAM) region(address uint32) *Region {
	for _, r := range mem.regions {
		if r.Contains(address) {
			return r
		}
	}
	return nil
}

// offset of the byte in the aligned word that corresponds to lane of the word
// value. lane zero is the least significant byte.
func (mem *RAM) offset(lane int) uint32 {
	if mem.bigEndian {
		return uint32(3 - lane)
	}
	return uint32(lane)
}

func (mem *RAM) readWord(r *Region, address uint32) uint32 {
	base := (address &^ 0x03) - r.Origin
	var w uint32
	for lane := 0; lane < 4; lane++ {
		w |= uint32(r.data[base+mem.offset(lane)]) << (lane * 8)
	}
	return w
}

func (mem *RAM) writeWord(r *Region, address uint32, data uint32, enable uint8) {
	base := (address &^ 0x03) - r.Origin
	for lane := 0; lane < 4; lane++ {
		if enable&(1<<lane) != 0 {
			r.data[base+mem.offset(lane)] = uint8(data >> (lane * 8))
		}
	}
}

// Service implements the bus.Memory interface.
func (mem *RAM) Service(portNum int, req bus.Request) bus.Response {
	if portNum < 0 || portNum >= len(mem.ports) {
		logger.Logf(logger.Allow, "ram", "request on illegal port (%d)", portNum)
		return bus.Response{Valid: true, ID: req.ID, BusError: true}
	}

	p := &mem.ports[portNum]

	// repeated request for a completed transaction. this happens when a core
	// is frozen waiting for a response on another port
	if p.active && p.id == req.ID {
		if p.done {
			return p.response
		}
	} else {
		p.id = req.ID
		p.active = true
		p.done = false
		p.remaining = p.latency
	}

	if p.remaining > 0 {
		p.remaining--
		return bus.Response{}
	}

	p.response = mem.access(req)
	p.done = true

	return p.response
}

func (mem *RAM) access(req bus.Request) bus.Response {
	resp := bus.Response{Valid: true, ID: req.ID}

	r := mem.region(req.Address)
	if r == nil {
		mem.Stats.BusErrors++
		resp.BusError = true
		return resp
	}

	switch req.Op {
	case bus.Read:
		mem.Stats.Reads++
		resp.Word = mem.readWord(r, req.Address)
	case bus.Write:
		if r.ReadOnly {
			mem.Stats.BusErrors++
			resp.BusError = true
			return resp
		}
		mem.Stats.Writes++
		mem.writeWord(r, req.Address, req.Data, req.ByteEnable)
	case bus.Invalidate:
		// there is no cache between the cores and the backing store so there
		// is nothing to invalidate
		mem.Stats.Invalidates++
	}

	return resp
}

// Peek implements the bus.DebugBus interface.
func (mem *RAM) Peek(address uint32) (uint8, error) {
	r := mem.region(address)
	if r == nil {
		return 0, curated.Errorf(Unmapped, address)
	}
	return r.data[address-r.Origin], nil
}

// Poke implements the bus.DebugBus interface. Read-only regions can be poked.
func (mem *RAM) Poke(address uint32, value uint8) error {
	r := mem.region(address)
	if r == nil {
		return curated.Errorf(Unmapped, address)
	}
	r.data[address-r.Origin] = value
	return nil
}

// PeekWord returns the aligned word containing the address, assembled
// according to the byte order of the memory.
func (mem *RAM) PeekWord(address uint32) (uint32, error) {
	r := mem.region(address)
	if r == nil {
		return 0, curated.Errorf(Unmapped, address)
	}
	return mem.readWord(r, address), nil
}

// PokeWord writes the word to the aligned address containing address.
func (mem *RAM) PokeWord(address uint32, data uint32) error {
	r := mem.region(address)
	if r == nil {
		return curated.Errorf(Unmapped, address)
	}
	mem.writeWord(r, address, data, 0x0f)
	return nil
}

// Load copies data into memory starting at origin. The data may span more
// than one region but every byte must be mapped.
func (mem *RAM) Load(origin uint32, data []uint8) error {
	for i, d := range data {
		if err := mem.Poke(origin+uint32(i), d); err != nil {
			return err
		}
	}
	return nil
}

// BigEndian returns true if the memory is big endian.
func (mem *RAM) BigEndian() bool {
	return mem.bigEndian
}

// Snapshot creates a copy of the RAM in its current state. The content of
// every region is copied.
func (mem *RAM) Snapshot() *RAM {
	n := *mem
	n.regions = make([]*Region, len(mem.regions))
	for i, r := range mem.regions {
		c := *r
		c.data = make([]uint8, len(r.data))
		copy(c.data, r.data)
		n.regions[i] = &c
	}
	n.ports = make([]port, len(mem.ports))
	copy(n.ports, mem.ports)
	return &n
}
