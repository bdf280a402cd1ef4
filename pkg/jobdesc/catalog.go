// Package jobdesc holds the job descriptions candidates are evaluated against.
package jobdesc

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
)

//go:embed roles.yaml
var defaultRoles []byte

// Role описывает вакансию, под которую оценивается кандидат.
type Role struct {
	Key         string `yaml:"key" json:"key"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description" json:"-"`
}

type file struct {
	Roles []Role `yaml:"roles"`
}

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	roles []Role
	byKey map[string]Role
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultRoles)
	if err != nil {
		panic(fmt.Sprintf("embedded roles.yaml: %v", err))
	}
	return c
}

// Load reads a catalog from path, or returns the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job descriptions: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse job descriptions: %w", err)
	}
	c := &Catalog{byKey: make(map[string]Role, len(f.Roles))}
	for i, r := range f.Roles {
		r.Key = normalizeKey(r.Key)
		if r.Key == "" {
			return nil, fmt.Errorf("job description #%d: key is required", i+1)
		}
		if _, dup := c.byKey[r.Key]; dup {
			return nil, fmt.Errorf("job description %q: duplicate key", r.Key)
		}
		r.Description = strings.TrimSpace(r.Description)
		if r.Label == "" {
			r.Label = r.Key
		}
		c.byKey[r.Key] = r
		c.roles = append(c.roles, r)
	}
	return c, nil
}

// Lookup returns the description for a role key, "" when the key is unknown.
func (c *Catalog) Lookup(key string) string {
	return c.byKey[normalizeKey(key)].Description
}

// Get returns the role for key.
func (c *Catalog) Get(key string) (Role, bool) {
	r, ok := c.byKey[normalizeKey(key)]
	return r, ok
}

// Roles returns roles in file order.
func (c *Catalog) Roles() []Role {
	out := make([]Role, len(c.roles))
	copy(out, c.roles)
	return out
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
