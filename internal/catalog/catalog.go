// Package catalog holds the static reference data of the shop: services, showrooms,
// mechanics per showroom and the daily time slots.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Service a job the shop offers
type Service struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Showroom a workshop location
type Showroom struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Contact string `yaml:"contact"`
}

// Mechanic a mechanic working at a showroom
type Mechanic struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Specialization string `yaml:"specialization"`
}

// Catalog is the root of catalog.yaml
type Catalog struct {
	Services  []Service             `yaml:"services"`
	Showrooms []Showroom            `yaml:"showrooms"`
	Mechanics map[string][]Mechanic `yaml:"mechanics"` // keyed by showroom id
	TimeSlots []string              `yaml:"time_slots"`
}

// Load reads the catalog from a YAML file. An empty path or a missing file yields Default().
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if len(c.TimeSlots) == 0 {
		c.TimeSlots = Default().TimeSlots
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	return &c, nil
}

// Validate checks the catalog for missing and duplicate entries.
func (c *Catalog) Validate() error {
	slots := make(map[string]bool, len(c.TimeSlots))
	for i, s := range c.TimeSlots {
		if s == "" {
			return fmt.Errorf("time_slots[%d]: empty slot", i)
		}
		if slots[s] {
			return fmt.Errorf("time_slots[%d]: duplicate slot '%s'", i, s)
		}
		slots[s] = true
	}

	showrooms := make(map[string]bool, len(c.Showrooms))
	for i, s := range c.Showrooms {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("showrooms[%d]: id and name are required", i)
		}
		if showrooms[s.ID] {
			return fmt.Errorf("showrooms[%d]: duplicate id '%s'", i, s.ID)
		}
		showrooms[s.ID] = true
	}

	for showroomID, mechanics := range c.Mechanics {
		if !showrooms[showroomID] {
			return fmt.Errorf("mechanics: unknown showroom id '%s'", showroomID)
		}
		for i, m := range mechanics {
			if m.Name == "" {
				return fmt.Errorf("mechanics[%s][%d]: name is required", showroomID, i)
			}
		}
	}

	for i, s := range c.Services {
		if s.Name == "" {
			return fmt.Errorf("services[%d]: name is required", i)
		}
	}

	return nil
}

// IsValidTimeSlot reports whether slot is one of the daily slots
func (c *Catalog) IsValidTimeSlot(slot string) bool {
	for _, s := range c.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Slots returns a copy of the daily time slots in display order
func (c *Catalog) Slots() []string {
	out := make([]string, len(c.TimeSlots))
	copy(out, c.TimeSlots)
	return out
}
