package catalog

import (
	"fmt"
	"gopkg.in/yaml.v3"
)

// Entry is a declarative catalog record
type Entry struct {
	Code string  `yaml:"code"`
	Desc *string `yaml:"desc"`
}

// Document is the YAML catalog layout
type Document struct {
	Errors   []Entry `yaml:"errors"`
	Warnings []Entry `yaml:"warnings"`
	Info     []Entry `yaml:"info"`
}

// ParseYAML reads a catalog of the form:
//
//	errors:
//	  - code: E001
//	    desc: "Bad option: '{a}'."
//	warnings:
//	  - code: W001
//	    desc: null
func ParseYAML(data []byte) (*Catalog, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	ret := New()
	for _, category := range Categories() {
		for _, entry := range doc.entries(category) {
			diagnostic := &Diagnostic{Code: entry.Code, Category: category, Retired: entry.Desc == nil}
			if entry.Desc != nil {
				diagnostic.Description = *entry.Desc
			}
			if err := ret.Add(diagnostic); err != nil {
				return nil, err
			}
		}
	}
	return ret, nil
}

func (d *Document) entries(category Category) []Entry {
	switch category {
	case Error:
		return d.Errors
	case Warning:
		return d.Warnings
	case Info:
		return d.Info
	}
	return nil
}
