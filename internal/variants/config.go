package variants

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rkpm/internal/domain"
	"rkpm/internal/power/qos"
)

// boardFile is the YAML schema for a custom board table. Numeric fields
// accept 0x hex literals.
type boardFile struct {
	Name string `yaml:"name"`
	PMU  struct {
		Base               uint32 `yaml:"base"`
		PwrOffset          uint32 `yaml:"pwr_offset"`
		StatusOffset       uint32 `yaml:"status_offset"`
		ReqOffset          uint32 `yaml:"req_offset"`
		IdleOffset         uint32 `yaml:"idle_offset"`
		AckOffset          uint32 `yaml:"ack_offset"`
		MemPwrOffset       uint32 `yaml:"mem_pwr_offset"`
		ChainStatusOffset  uint32 `yaml:"chain_status_offset"`
		MemStatusOffset    uint32 `yaml:"mem_status_offset"`
		RepairStatusOffset uint32 `yaml:"repair_status_offset"`
	} `yaml:"pmu"`
	Domains []domainFile `yaml:"domains"`
}

type domainFile struct {
	ID   uint32 `yaml:"id"`
	Name string `yaml:"name"`

	PwrMask   uint32 `yaml:"pwr_mask"`
	PwrWMask  uint32 `yaml:"pwr_w_mask"`
	PwrOffset uint32 `yaml:"pwr_offset"`

	StatusMask uint32 `yaml:"status_mask"`

	MemMask   uint32 `yaml:"mem_mask"`
	MemWMask  uint32 `yaml:"mem_w_mask"`
	MemOffset uint32 `yaml:"mem_offset"`

	RepairMask       uint32 `yaml:"repair_mask"`
	RepairOffset     uint32 `yaml:"repair_offset"`
	RepairStatusMask uint32 `yaml:"repair_status_mask"`

	ReqMask   uint32 `yaml:"req_mask"`
	ReqWMask  uint32 `yaml:"req_w_mask"`
	ReqOffset uint32 `yaml:"req_offset"`
	IdleMask  uint32 `yaml:"idle_mask"`
	AckMask   uint32 `yaml:"ack_mask"`

	QoSPorts []uint32 `yaml:"qos_ports"`

	ActiveWakeup  bool `yaml:"active_wakeup"`
	KeeponStartup bool `yaml:"keepon_startup"`
	AlwaysOn      bool `yaml:"always_on"`

	Parent   *uint32  `yaml:"parent"`
	Children []uint32 `yaml:"children"`
}

// LoadBoard reads a board table from a YAML file and validates it.
func LoadBoard(path string) (*domain.PmuInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board file: %w", err)
	}

	var bf boardFile
	if err := yaml.Unmarshal(raw, &bf); err != nil {
		return nil, fmt.Errorf("parse board file: %w", err)
	}
	if bf.Name == "" {
		return nil, fmt.Errorf("board file %s: missing name", path)
	}
	if len(bf.Domains) == 0 {
		return nil, fmt.Errorf("board file %s: no domains", path)
	}

	info := &domain.PmuInfo{
		Name:               bf.Name,
		Base:               bf.PMU.Base,
		PwrOffset:          bf.PMU.PwrOffset,
		StatusOffset:       bf.PMU.StatusOffset,
		ReqOffset:          bf.PMU.ReqOffset,
		IdleOffset:         bf.PMU.IdleOffset,
		AckOffset:          bf.PMU.AckOffset,
		MemPwrOffset:       bf.PMU.MemPwrOffset,
		ChainStatusOffset:  bf.PMU.ChainStatusOffset,
		MemStatusOffset:    bf.PMU.MemStatusOffset,
		RepairStatusOffset: bf.PMU.RepairStatusOffset,
		Domains:            make(map[domain.PowerDomain]*domain.Descriptor, len(bf.Domains)),
	}

	for _, df := range bf.Domains {
		pd := domain.PowerDomain(df.ID)
		if _, dup := info.Domains[pd]; dup {
			return nil, fmt.Errorf("board %s: duplicate domain id %d", bf.Name, df.ID)
		}
		d := &domain.Descriptor{
			Name:             df.Name,
			PwrMask:          df.PwrMask,
			PwrWMask:         df.PwrWMask,
			PwrOffset:        df.PwrOffset,
			StatusMask:       df.StatusMask,
			MemMask:          df.MemMask,
			MemWMask:         df.MemWMask,
			MemOffset:        df.MemOffset,
			RepairMask:       df.RepairMask,
			RepairOffset:     df.RepairOffset,
			RepairStatusMask: df.RepairStatusMask,
			ReqMask:          df.ReqMask,
			ReqWMask:         df.ReqWMask,
			ReqOffset:        df.ReqOffset,
			IdleMask:         df.IdleMask,
			AckMask:          df.AckMask,
			QoSPorts:         df.QoSPorts,
			ActiveWakeup:     df.ActiveWakeup,
			KeeponStartup:    df.KeeponStartup,
			AlwaysOn:         df.AlwaysOn,
		}
		if df.Parent != nil || len(df.Children) > 0 {
			dep := &domain.Dependency{}
			if df.Parent != nil {
				p := domain.PowerDomain(*df.Parent)
				dep.Parent = &p
			}
			for _, c := range df.Children {
				dep.Children = append(dep.Children, domain.PowerDomain(c))
			}
			d.Dep = dep
		}
		info.Domains[pd] = d
	}

	if err := Validate(info); err != nil {
		return nil, fmt.Errorf("board %s: %w", bf.Name, err)
	}
	return info, nil
}

// Validate checks the external-data contract on a descriptor table: the
// dependency relation must form a forest, parent pointers and children
// lists must be mutually consistent, and QoS port lists must be within
// the hardware limit.
func Validate(info *domain.PmuInfo) error {
	for pd, d := range info.Domains {
		if d.Dep == nil {
			continue
		}
		if p := d.Dep.Parent; p != nil {
			pdesc, ok := info.Domains[*p]
			if !ok {
				return fmt.Errorf("domain %s: parent %d not in table", d.Name, *p)
			}
			if pdesc.Dep == nil || !containsDomain(pdesc.Dep.Children, pd) {
				return fmt.Errorf("domain %s: parent %s does not list it as a child", d.Name, pdesc.Name)
			}
		}
		for _, c := range d.Dep.Children {
			cdesc, ok := info.Domains[c]
			if !ok {
				return fmt.Errorf("domain %s: child %d not in table", d.Name, c)
			}
			if cdesc.Dep == nil || cdesc.Dep.Parent == nil || *cdesc.Dep.Parent != pd {
				return fmt.Errorf("domain %s: child %s does not point back to it", d.Name, cdesc.Name)
			}
		}
	}

	// Forest check: following parent pointers must terminate.
	for pd, d := range info.Domains {
		seen := map[domain.PowerDomain]bool{pd: true}
		for d.Dep != nil && d.Dep.Parent != nil {
			p := *d.Dep.Parent
			if seen[p] {
				return fmt.Errorf("dependency cycle through domain %s", info.Domains[pd].Name)
			}
			seen[p] = true
			d = info.Domains[p]
		}
	}

	for _, d := range info.Domains {
		if len(d.QoSPorts) > qos.MaxPorts {
			return fmt.Errorf("domain %s: %d qos ports exceeds the hardware limit", d.Name, len(d.QoSPorts))
		}
	}
	return nil
}

func containsDomain(list []domain.PowerDomain, pd domain.PowerDomain) bool {
	for _, x := range list {
		if x == pd {
			return true
		}
	}
	return false
}
