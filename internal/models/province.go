package models

// ProvinceConstituency is the persisted form of one registry entry
type ProvinceConstituency struct {
	ID               uint   `gorm:"primaryKey" json:"-"`
	Province         string `gorm:"type:varchar(60);not null;index" json:"province"`
	Constituency     string `gorm:"type:varchar(120);not null;uniqueIndex" json:"constituency"`
	ProvincePosition int    `gorm:"not null" json:"-"`
	Position         int    `gorm:"not null" json:"-"`
}

// TableName overrides the gorm table name
func (ProvinceConstituency) TableName() string {
	return "province_constituencies"
}

// Province is one registry entry: a province and its constituencies in registry order
type Province struct {
	Name           string   `json:"name" yaml:"name"`
	Constituencies []string `json:"constituencies" yaml:"constituencies"`
}

// ProvinceRegistry maps provinces to the constituencies they contain.
// A constituency belongs to at most one province; the first registration wins.
type ProvinceRegistry struct {
	provinces []Province
	index     map[string]string
}

// NewProvinceRegistry builds a registry, preserving province and constituency order
func NewProvinceRegistry(provinces []Province) ProvinceRegistry {
	reg := ProvinceRegistry{
		provinces: make([]Province, 0, len(provinces)),
		index:     make(map[string]string),
	}

	for _, p := range provinces {
		members := make([]string, 0, len(p.Constituencies))
		for _, c := range p.Constituencies {
			if _, taken := reg.index[c]; taken {
				continue
			}
			reg.index[c] = p.Name
			members = append(members, c)
		}
		reg.provinces = append(reg.provinces, Province{Name: p.Name, Constituencies: members})
	}

	return reg
}

// ProvinceOf returns the province a constituency is registered under
func (r ProvinceRegistry) ProvinceOf(constituency string) (string, bool) {
	province, ok := r.index[constituency]
	return province, ok
}

// Contains reports whether constituency is registered under province
func (r ProvinceRegistry) Contains(province, constituency string) bool {
	p, ok := r.index[constituency]
	return ok && p == province
}

// HasProvince reports whether the registry knows the province
func (r ProvinceRegistry) HasProvince(name string) bool {
	for _, p := range r.provinces {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Names returns the province names in registry order
func (r ProvinceRegistry) Names() []string {
	names := make([]string, len(r.provinces))
	for i, p := range r.provinces {
		names[i] = p.Name
	}
	return names
}

// Provinces returns a copy of the registry entries
func (r ProvinceRegistry) Provinces() []Province {
	out := make([]Province, len(r.provinces))
	for i, p := range r.provinces {
		out[i] = Province{Name: p.Name, Constituencies: append([]string(nil), p.Constituencies...)}
	}
	return out
}

// ConstituencyCount returns how many constituencies a province has in the registry
func (r ProvinceRegistry) ConstituencyCount(province string) int {
	for _, p := range r.provinces {
		if p.Name == province {
			return len(p.Constituencies)
		}
	}
	return 0
}

// Len returns the number of provinces
func (r ProvinceRegistry) Len() int {
	return len(r.provinces)
}

// Entries flattens the registry into rows suitable for persistence
func (r ProvinceRegistry) Entries() []ProvinceConstituency {
	var rows []ProvinceConstituency
	for pi, p := range r.provinces {
		for ci, c := range p.Constituencies {
			rows = append(rows, ProvinceConstituency{
				Province:         p.Name,
				Constituency:     c,
				ProvincePosition: pi,
				Position:         ci,
			})
		}
	}
	return rows
}

// RegistryFromEntries rebuilds a registry from persisted rows ordered by
// province position then constituency position
func RegistryFromEntries(rows []ProvinceConstituency) ProvinceRegistry {
	var provinces []Province
	positions := make(map[string]int)
	for _, row := range rows {
		idx, ok := positions[row.Province]
		if !ok {
			idx = len(provinces)
			positions[row.Province] = idx
			provinces = append(provinces, Province{Name: row.Province})
		}
		provinces[idx].Constituencies = append(provinces[idx].Constituencies, row.Constituency)
	}
	return NewProvinceRegistry(provinces)
}
