// Package departments хранит справочник ответственных служб.
// Справочник читается из YAML один раз при старте и дальше не меняется.
package departments

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Department - служба, которой назначаются обращения
type Department struct {
	Name       string   `yaml:"name" json:"name"`
	Contact    string   `yaml:"contact" json:"contact"`
	Phone      string   `yaml:"phone" json:"phone"`
	Email      string   `yaml:"email" json:"email"`
	Categories []string `yaml:"categories" json:"categories,omitempty"`
}

type file struct {
	Departments []Department `yaml:"departments"`
}

type Directory struct {
	departments []Department
	byName      map[string]int
}

// Load читает справочник из файла
func Load(path string) (*Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("departments: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse разбирает YAML. Имена обязательны и не должны повторяться без учета регистра.
func Parse(raw []byte) (*Directory, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("departments: parse: %w", err)
	}

	d := &Directory{byName: make(map[string]int, len(f.Departments))}
	for _, dep := range f.Departments {
		dep.Name = strings.TrimSpace(dep.Name)
		if dep.Name == "" {
			return nil, fmt.Errorf("departments: department without name")
		}
		key := strings.ToLower(dep.Name)
		if _, ok := d.byName[key]; ok {
			return nil, fmt.Errorf("departments: duplicate department %q", dep.Name)
		}
		d.byName[key] = len(d.departments)
		d.departments = append(d.departments, dep)
	}
	return d, nil
}

// Lookup ищет службу по имени без учета регистра
func (d *Directory) Lookup(name string) (Department, bool) {
	if d == nil {
		return Department{}, false
	}
	i, ok := d.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Department{}, false
	}
	return d.departments[i], true
}

func (d *Directory) Has(name string) bool {
	_, ok := d.Lookup(name)
	return ok
}

// List возвращает службы в порядке файла
func (d *Directory) List() []Department {
	if d == nil {
		return []Department{}
	}
	return slices.Clone(d.departments)
}

// ForCategory возвращает службы, которые обслуживают категорию
func (d *Directory) ForCategory(category string) []Department {
	var result []Department
	if d == nil {
		return result
	}
	for _, dep := range d.departments {
		for _, c := range dep.Categories {
			if strings.EqualFold(c, strings.TrimSpace(category)) {
				result = append(result, dep)
				break
			}
		}
	}
	return result
}
