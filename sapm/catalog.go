// Package sapm holds the Sandia Array Performance Model thermal parameters
// and the cell temperature model built on them.
package sapm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/angas/solarpanel-go/config"
	"github.com/angas/solarpanel-go/slice"
)

const labelSeparator = " - "

var (
	ErrModuleNotFound  = errors.New("sapm module not found")
	ErrDuplicateModule = errors.New("duplicate sapm module")
)

type Module struct {
	Module   string
	Mounting string
	A        float64 // Empirical coefficient, upper limit for module temperature at low wind speed
	B        float64 // Empirical coefficient, rate at which module temperature drops as wind speed increases
	DeltaT   float64 // Difference between cell and module back temperature at 1000 W/m², °C
}

func FromConfig(c config.AppConfigSapmModule) Module {
	return Module{
		Module:   strings.TrimSpace(c.Module),
		Mounting: strings.TrimSpace(c.Mounting),
		A:        c.A,
		B:        c.B,
		DeltaT:   c.DeltaT,
	}
}

// Label is the human readable key of the module, "<module> - <mounting>".
func (m Module) Label() string {
	return m.Module + labelSeparator + m.Mounting
}

// Catalog is a read-only list of modules where every (module, mounting) pair is unique.
type Catalog struct {
	modules []Module
}

func NewCatalog(entries []config.AppConfigSapmModule) (*Catalog, error) {
	modules := slice.Map(entries, FromConfig)

	seen := make(map[string]struct{}, len(modules))
	for _, m := range modules {
		if _, ok := seen[m.Label()]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateModule, m.Label())
		}
		seen[m.Label()] = struct{}{}
	}

	return &Catalog{modules: modules}, nil
}

// Labels lists all module labels in catalog order.
func (c *Catalog) Labels() []string {
	return slice.Map(c.modules, Module.Label)
}

func (c *Catalog) Modules() []Module {
	return append([]Module(nil), c.modules...)
}

// Lookup resolves a label produced by Labels back to its module.
// Both parts of the label are trimmed before matching.
func (c *Catalog) Lookup(label string) (Module, error) {
	module, mounting, ok := strings.Cut(label, labelSeparator)
	if !ok {
		return Module{}, fmt.Errorf("%w: %q", ErrModuleNotFound, label)
	}
	module = strings.TrimSpace(module)
	mounting = strings.TrimSpace(mounting)

	m, ok := slice.Find(c.modules, func(m Module) bool {
		return m.Module == module && m.Mounting == mounting
	})
	if !ok {
		return Module{}, fmt.Errorf("%w: %q", ErrModuleNotFound, label)
	}
	return m, nil
}
