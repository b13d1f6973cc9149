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
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/socsim/socsim/hardware"
	"github.com/socsim/socsim/hardware/instance"
	"github.com/socsim/socsim/logger"
	"github.com/socsim/socsim/symbols"
	"gopkg.in/yaml.v2"
)

// RegionDescription describes one region of memory.
type RegionDescription struct {
	Name     string `yaml:"name"`
	Origin   uint32 `yaml:"origin"`
	Size     uint32 `yaml:"size"`
	ReadOnly bool   `yaml:"readonly"`
}

// LatencyDescription gives the number of cycles memory takes to answer a
// request on the instruction and data ports of every core.
type LatencyDescription struct {
	Fetch int `yaml:"fetch"`
	Data  int `yaml:"data"`
}

// ImageDescription describes a program image.
type ImageDescription struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"`
	Origin uint32 `yaml:"origin"`

	// the entry point of the ELF image is used as the initial PC of every core
	Entry bool `yaml:"entry"`
}

// InterruptDescription describes a change of a core's interrupt lines.
type InterruptDescription struct {
	Cycle uint64 `yaml:"cycle"`
	Core  int    `yaml:"core"`
	Lines uint8  `yaml:"lines"`
}

// Description of a platform.
type Description struct {
	Cores     int  `yaml:"cores"`
	BigEndian bool `yaml:"bigendian"`

	// maximum number of cycles to run for. zero means no limit
	Cycles uint64 `yaml:"cycles"`

	// the simulation ends when every core is about to execute the
	// instruction at this address
	Halt *uint32 `yaml:"halt"`

	// override the preferences of the same name
	ResetVector     *uint32 `yaml:"resetvector"`
	ExceptionVector *uint32 `yaml:"exceptionvector"`

	Regions    []RegionDescription    `yaml:"regions"`
	Latency    LatencyDescription     `yaml:"latency"`
	Images     []ImageDescription     `yaml:"images"`
	Interrupts []InterruptDescription `yaml:"interrupts"`

	// the directory containing the description file. image filenames are
	// relative to this directory
	dir string

	// symbols from the images. filled in by Build()
	symbols *symbols.Symbols
}

// ReadDescription reads and validates the platform description file.
func ReadDescription(filename string) (*Description, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Annotatef(err, "reading platform description")
	}

	desc, err := ParseDescription(data)
	if err != nil {
		return nil, errors.Annotatef(err, "%s", filename)
	}
	desc.dir = filepath.Dir(filename)

	return desc, nil
}

// ParseDescription parses and validates the YAML data. Image filenames are
// relative to the current working directory.
func ParseDescription(data []byte) (*Description, error) {
	desc := &Description{
		Cores: 1,
	}

	if err := yaml.UnmarshalStrict(data, desc); err != nil {
		return nil, errors.Annotatef(err, "parsing platform description")
	}

	if err := desc.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	return desc, nil
}

// Validate checks the description for errors that can be found without
// building the platform.
func (desc *Description) Validate() error {
	if desc.Cores < 1 || desc.Cores > hardware.MaxCores {
		return errors.NotValidf("number of cores (%d)", desc.Cores)
	}
	if len(desc.Regions) == 0 {
		return errors.NotValidf("description with no memory regions")
	}
	for _, r := range desc.Regions {
		if r.Name == "" {
			return errors.NotValidf("region at %08x without a name", r.Origin)
		}
	}
	if desc.Latency.Fetch < 0 || desc.Latency.Data < 0 {
		return errors.NotValidf("negative latency")
	}
	for _, img := range desc.Images {
		if img.File == "" {
			return errors.NotValidf("image without a filename")
		}
	}
	for _, irq := range desc.Interrupts {
		if irq.Core < 0 || irq.Core >= desc.Cores {
			return errors.NotValidf("interrupt for core %d", irq.Core)
		}
		if irq.Lines > 0x3f {
			return errors.NotValidf("interrupt lines (%#02x)", irq.Lines)
		}
	}
	return nil
}

// Build creates the platform described by the description. The preferences
// of the instance are changed where the description overrides them. The
// platform is reset and ready to run.
func (desc *Description) Build(ins *instance.Instance) (*hardware.Platform, error) {
	if err := ins.Prefs.BigEndian.Set(desc.BigEndian); err != nil {
		return nil, errors.Trace(err)
	}
	if desc.ResetVector != nil {
		if err := ins.Prefs.ResetVector.Set(*desc.ResetVector); err != nil {
			return nil, errors.Trace(err)
		}
	}
	if desc.ExceptionVector != nil {
		if err := ins.Prefs.ExceptionVector.Set(*desc.ExceptionVector); err != nil {
			return nil, errors.Trace(err)
		}
	}

	plt, err := hardware.NewPlatform(ins, desc.Cores)
	if err != nil {
		return nil, errors.Trace(err)
	}

	for _, r := range desc.Regions {
		if _, err := plt.Mem.AddRegion(r.Name, r.Origin, r.Size, r.ReadOnly); err != nil {
			return nil, errors.Annotatef(err, "region %s", r.Name)
		}
	}

	for i := range plt.Cores {
		if err := plt.Mem.SetLatency(i*2, desc.Latency.Fetch); err != nil {
			return nil, errors.Trace(err)
		}
		if err := plt.Mem.SetLatency(i*2+1, desc.Latency.Data); err != nil {
			return nil, errors.Trace(err)
		}
	}

	desc.symbols = symbols.NewSymbols()

	var entry *uint32

	for _, d := range desc.Images {
		fn := d.File
		if !filepath.IsAbs(fn) {
			fn = filepath.Join(desc.dir, fn)
		}

		img := NewImage(fn, d.Format, d.Origin)
		if err := img.Load(); err != nil {
			return nil, errors.Trace(err)
		}
		if err := img.Copy(plt.Mem); err != nil {
			return nil, errors.Trace(err)
		}
		if err := img.AddSymbols(desc.symbols); err != nil {
			return nil, errors.Trace(err)
		}
		logger.Logf(logger.Allow, "loader", "%s [%s]", img, img.Hash)

		if d.Entry {
			if img.Format != FormatELF {
				return nil, errors.NotValidf("entry point for %s image %s", img.Format, img.Filename)
			}
			e := img.Entry
			entry = &e
		}
	}

	for _, irq := range desc.Interrupts {
		ev := hardware.InterruptEvent{
			Cycle: irq.Cycle,
			Core:  irq.Core,
			Lines: irq.Lines,
		}
		if err := plt.Schedule(ev); err != nil {
			return nil, errors.Trace(err)
		}
	}

	plt.Reset()

	if entry != nil {
		for _, mc := range plt.Cores {
			mc.SetPC(*entry)
		}
		plt.Resync()
	}

	return plt, nil
}

// Symbols returns the symbols found in the images of the most recent call to
// Build(). The table is empty if Build() has not been called.
func (desc *Description) Symbols() *symbols.Symbols {
	if desc.symbols == nil {
		desc.symbols = symbols.NewSymbols()
	}
	return desc.symbols
}

// Halted returns true if every core of the platform is about to execute the
// instruction at the halt address. Always false if the description has no halt
// address.
func (desc *Description) Halted(plt *hardware.Platform) bool {
	if desc.Halt == nil {
		return false
	}
	for _, mc := range plt.Cores {
		if mc.GetPC() != *desc.Halt {
			return false
		}
	}
	return true
}
