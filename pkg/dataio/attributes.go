/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: attributes.go
Description: YAML attribute metadata for the Akaylee Miner. Loads attribute
names, value kinds, preference types, enumeration domains, and the decision
attribute marker consumed by the CSV table loader.
*/

package dataio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kleascm/akaylee-miner/pkg/data"
)

// AttributeSpec describes one attribute in the metadata file. An empty
// preference means the attribute is unordered.
type AttributeSpec struct {
	Name       string   `yaml:"name"`
	Kind       string   `yaml:"kind"`       // integer, real, enumeration
	Preference string   `yaml:"preference"` // gain, cost, none
	Domain     []string `yaml:"domain,omitempty"`
	Decision   bool     `yaml:"decision,omitempty"`
}

// AttributesFile is the top level structure of the metadata file
type AttributesFile struct {
	Attributes []AttributeSpec `yaml:"attributes"`
}

// LoadAttributes reads attribute metadata from a YAML file
func LoadAttributes(path string) ([]*data.Attribute, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read attributes file: %w", err)
	}
	var file AttributesFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse attributes file: %w", err)
	}
	return BuildAttributes(file.Attributes)
}

// BuildAttributes converts attribute specs into table attributes. Exactly one
// spec must be marked as the decision attribute.
func BuildAttributes(specs []AttributeSpec) ([]*data.Attribute, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("attributes file declares no attributes")
	}

	attributes := make([]*data.Attribute, 0, len(specs))
	seen := make(map[string]bool, len(specs))
	decisions := 0
	for i, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("attribute %d has no name", i)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate attribute name %q", spec.Name)
		}
		seen[spec.Name] = true

		kind, err := parseKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", spec.Name, err)
		}
		preference, err := parsePreference(spec.Preference)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", spec.Name, err)
		}

		var attribute *data.Attribute
		if spec.Decision {
			attribute = data.NewDecisionAttribute(spec.Name, kind, preference)
			decisions++
		} else {
			attribute = data.NewAttribute(spec.Name, kind, preference)
		}
		if kind == data.KindEnumeration {
			domain, err := data.NewEnumerationDomain(spec.Domain)
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", spec.Name, err)
			}
			attribute.Domain = domain
		}
		if err := attribute.Validate(); err != nil {
			return nil, err
		}
		attributes = append(attributes, attribute)
	}

	if decisions != 1 {
		return nil, fmt.Errorf("attributes file must mark exactly one decision attribute, found %d", decisions)
	}
	return attributes, nil
}

func parseKind(kind string) (data.ValueKind, error) {
	switch kind {
	case "integer":
		return data.KindInteger, nil
	case "real":
		return data.KindReal, nil
	case "enumeration":
		return data.KindEnumeration, nil
	default:
		return 0, fmt.Errorf("unknown value kind %q", kind)
	}
}

func parsePreference(preference string) (data.PreferenceType, error) {
	switch preference {
	case "gain":
		return data.PreferenceGain, nil
	case "cost":
		return data.PreferenceCost, nil
	case "none", "":
		return data.PreferenceNone, nil
	default:
		return 0, fmt.Errorf("unknown preference type %q", preference)
	}
}
