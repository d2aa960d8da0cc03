package model

import (
	"fmt"

	"github.com/go-zoox/fs"
	"github.com/go-zoox/logger"
	"gopkg.in/yaml.v3"
)

// Profile is the file form of a Configuration.
//
//	client_side_validation: true
//	models:
//	  ContainerExecutionSpec:
//	    image:
//	      non_empty: true
//	    workingDirectory:
//	      pattern: "^/"
type Profile struct {
	ClientSideValidation *bool                      `yaml:"client_side_validation"`
	Models               map[string]map[string]Rule `yaml:"models"`
}

// Rule lists the checks applied to one field.
type Rule struct {
	NonEmpty bool     `yaml:"non_empty"`
	Pattern  string   `yaml:"pattern"`
	OneOf    []string `yaml:"one_of"`
	MinItems int      `yaml:"min_items"`
}

// LoadProfile reads a YAML profile and builds the Configuration it describes.
func LoadProfile(path string) (*Configuration, error) {
	if !fs.IsExist(path) {
		return nil, fmt.Errorf("profile not found: %s", path)
	}

	text, err := fs.ReadFileAsString(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile(%s): %s", path, err)
	}

	return ParseProfile([]byte(text))
}

// ParseProfile builds a Configuration from YAML profile content.
func ParseProfile(data []byte) (*Configuration, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %s", err)
	}

	return p.Configuration()
}

// Configuration converts the profile into a Configuration.
func (p *Profile) Configuration() (*Configuration, error) {
	cfg := NewConfiguration()
	if p.ClientSideValidation != nil {
		cfg.ClientSideValidation = *p.ClientSideValidation
	}

	for modelName, fields := range p.Models {
		for field, rule := range fields {
			validators, err := rule.validators()
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %s", modelName, field, err)
			}

			logger.Debugf("[model][profile] %s.%s: %d validator(s)", modelName, field, len(validators))
			cfg.Register(modelName, field, validators...)
		}
	}

	return cfg, nil
}

func (r Rule) validators() ([]Validator, error) {
	var validators []Validator
	if r.NonEmpty {
		validators = append(validators, NotEmpty())
	}

	if r.Pattern != "" {
		v, err := Matches(r.Pattern)
		if err != nil {
			return nil, err
		}
		validators = append(validators, v)
	}

	if len(r.OneOf) > 0 {
		validators = append(validators, OneOf(r.OneOf...))
	}

	if r.MinItems > 0 {
		validators = append(validators, MinItems(r.MinItems))
	}

	return validators, nil
}
