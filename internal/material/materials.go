// Package material holds the unidirectional ply material catalog.
package material

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when a material name is not in the catalog.
var ErrNotFound = errors.New("material not found")

// Elastic holds the on-axis elastic constants of a unidirectional ply.
type Elastic struct {
	Ex float64 `json:"ex" mapstructure:"ex"` // Longitudinal modulus (GPa)
	Ey float64 `json:"ey" mapstructure:"ey"` // Transverse modulus (GPa)
	Es float64 `json:"es" mapstructure:"es"` // In-plane shear modulus (GPa)
	Nu float64 `json:"nu" mapstructure:"nu"` // Major Poisson's ratio
}

// Strength holds the on-axis strength limits of a unidirectional ply.
type Strength struct {
	Xt float64 `json:"xt" mapstructure:"xt"` // Longitudinal tensile (MPa)
	Yt float64 `json:"yt" mapstructure:"yt"` // Transverse tensile (MPa)
	Xc float64 `json:"xc" mapstructure:"xc"` // Longitudinal compressive (MPa)
	Yc float64 `json:"yc" mapstructure:"yc"` // Transverse compressive (MPa)
	Sc float64 `json:"sc" mapstructure:"sc"` // In-plane shear (MPa)
}

// Material is an immutable catalog record.
type Material struct {
	Name     string   `json:"name" mapstructure:"name"`
	Elastic  Elastic  `json:"elastic" mapstructure:"elastic"`
	Strength Strength `json:"strength" mapstructure:"strength"`
}

// Validate checks that the record can be used by the stiffness calculations.
func (m Material) Validate() error {
	if m.Name == "" {
		return errors.New("material name is required")
	}
	e := m.Elastic
	if e.Ex <= 0 || e.Ey <= 0 || e.Es <= 0 {
		return fmt.Errorf("material %q: moduli must be positive", m.Name)
	}
	return nil
}

// Built-in unidirectional composites (Tsai & Hahn data).
var builtins = []Material{
	{
		Name:     "T300/5208",
		Elastic:  Elastic{Ex: 181, Ey: 10.3, Es: 7.17, Nu: 0.28},
		Strength: Strength{Xt: 1500, Yt: 40, Xc: 1500, Yc: 246, Sc: 68},
	},
	{
		Name:     "B4/5505",
		Elastic:  Elastic{Ex: 204, Ey: 18.5, Es: 5.59, Nu: 0.23},
		Strength: Strength{Xt: 1260, Yt: 61, Xc: 2500, Yc: 202, Sc: 67},
	},
	{
		Name:     "AS/H3501",
		Elastic:  Elastic{Ex: 138, Ey: 8.96, Es: 7.10, Nu: 0.30},
		Strength: Strength{Xt: 1447, Yt: 51.7, Xc: 1447, Yc: 206, Sc: 93},
	},
	{
		Name:     "Scotchply 1002",
		Elastic:  Elastic{Ex: 38.6, Ey: 8.27, Es: 4.14, Nu: 0.26},
		Strength: Strength{Xt: 1062, Yt: 31, Xc: 610, Yc: 118, Sc: 72},
	},
	{
		Name:     "Kevlar49/epoxy",
		Elastic:  Elastic{Ex: 76, Ey: 5.50, Es: 2.30, Nu: 0.34},
		Strength: Strength{Xt: 1400, Yt: 12, Xc: 235, Yc: 53, Sc: 34},
	},
}

// Catalog maps material names to records. It is read-only after construction.
type Catalog struct {
	byName map[string]Material
	order  []string
}

// NewCatalog builds a catalog from the given records. A later record with the
// same name replaces an earlier one.
func NewCatalog(materials ...Material) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Material, len(materials))}
	for _, m := range materials {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byName[m.Name]; !exists {
			c.order = append(c.order, m.Name)
		}
		c.byName[m.Name] = m
	}
	return c, nil
}

// Default returns the built-in catalog, optionally extended with extra records.
func Default(extra ...Material) (*Catalog, error) {
	all := make([]Material, 0, len(builtins)+len(extra))
	all = append(all, builtins...)
	all = append(all, extra...)
	return NewCatalog(all...)
}

// Lookup returns the full record for name.
func (c *Catalog) Lookup(name string) (Material, error) {
	m, ok := c.byName[name]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return m, nil
}

// LookupStrength returns the strength limits for name.
func (c *Catalog) LookupStrength(name string) (Strength, error) {
	m, err := c.Lookup(name)
	if err != nil {
		return Strength{}, err
	}
	return m.Strength, nil
}

// Names returns material names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// SortedNames returns material names in lexical order.
func (c *Catalog) SortedNames() []string {
	out := c.Names()
	sort.Strings(out)
	return out
}
