// Package config loads newsdoc.Config from a YAML or JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/newsdoc"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = "config.json"

// fileTag is a tag as written in the configuration file.
type fileTag struct {
	Name     *string `yaml:"name" json:"name"`
	Class    *string `yaml:"class_" json:"class_"`
	ClassAlt *string `yaml:"class" json:"class"`
}

// fileConfig mirrors the configuration file. Pointers distinguish absent
// keys from zero values.
type fileConfig struct {
	MainTag           *fileTag   `yaml:"main_tag" json:"main_tag"`
	SecondaryTags     *[]fileTag `yaml:"secondary_tags" json:"secondary_tags"`
	TextTag           *fileTag   `yaml:"text_tag" json:"text_tag"`
	CharactersPerLine *int       `yaml:"characters_per_line" json:"characters_per_line"`
	ParagraphsIndent  *string    `yaml:"paragraphs_indent" json:"paragraphs_indent"`
	DefaultFileName   *string    `yaml:"default_file_name" json:"default_file_name"`
	FileExtension     *string    `yaml:"file_extension" json:"file_extension"`
}

// requiredKeys lists the keys that must be present. text_tag is optional
// and defaults to p/any.
var requiredKeys = []string{
	"main_tag",
	"secondary_tags",
	"characters_per_line",
	"paragraphs_indent",
	"default_file_name",
	"file_extension",
}

// Load reads the configuration file at path. Files ending in .json are
// decoded as JSON, everything else as YAML.
//
// Returns EINVALID if a required key is missing or a tag is malformed.
func Load(path string) (*newsdoc.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	if filepath.Ext(path) == ".json" {
		if err := json.Unmarshal(b, &fc); err != nil {
			return nil, newsdoc.Errorf(newsdoc.EINVALID, "parse json: %v", err)
		}
	} else {
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return nil, newsdoc.Errorf(newsdoc.EINVALID, "parse yaml: %v", err)
		}
	}

	return fc.toConfig()
}

// LoadOrDefault is like Load but never fails: when the file is missing or
// invalid it returns the built-in defaults together with the load error so
// the caller can report it.
func LoadOrDefault(path string) (*newsdoc.Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return newsdoc.DefaultConfig(), err
	}
	return cfg, nil
}

func (fc *fileConfig) toConfig() (*newsdoc.Config, error) {
	if missing := fc.missingKeys(); len(missing) > 0 {
		return nil, newsdoc.Errorf(newsdoc.EINVALID, "config is missing required keys: %v (required: %v)", missing, requiredKeys)
	}

	cfg := newsdoc.DefaultConfig()

	var err error
	if cfg.MainTag, err = fc.MainTag.toTag("main_tag"); err != nil {
		return nil, err
	}

	cfg.SecondaryTags = make([]newsdoc.Tag, 0, len(*fc.SecondaryTags))
	for i, ft := range *fc.SecondaryTags {
		t, err := ft.toTag(fmt.Sprintf("secondary_tags[%d]", i))
		if err != nil {
			return nil, err
		}
		cfg.SecondaryTags = append(cfg.SecondaryTags, t)
	}

	if fc.TextTag != nil {
		if cfg.TextTag, err = fc.TextTag.toTag("text_tag"); err != nil {
			return nil, err
		}
	}

	cfg.CharactersPerLine = *fc.CharactersPerLine
	cfg.ParagraphsIndent = *fc.ParagraphsIndent
	cfg.DefaultFileName = *fc.DefaultFileName
	cfg.FileExtension = *fc.FileExtension

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (fc *fileConfig) missingKeys() []string {
	present := map[string]bool{
		"main_tag":            fc.MainTag != nil,
		"secondary_tags":      fc.SecondaryTags != nil,
		"characters_per_line": fc.CharactersPerLine != nil,
		"paragraphs_indent":   fc.ParagraphsIndent != nil,
		"default_file_name":   fc.DefaultFileName != nil,
		"file_extension":      fc.FileExtension != nil,
	}
	var missing []string
	for _, k := range requiredKeys {
		if !present[k] {
			missing = append(missing, k)
		}
	}
	return missing
}

func (ft *fileTag) toTag(field string) (newsdoc.Tag, error) {
	if ft.Name == nil {
		return newsdoc.Tag{}, newsdoc.Errorf(newsdoc.EINVALID, "%s: name required", field)
	}
	class := ft.Class
	if class == nil {
		class = ft.ClassAlt
	}
	if class == nil {
		return newsdoc.Tag{}, newsdoc.Errorf(newsdoc.EINVALID, "%s: class_ required", field)
	}
	t, err := newsdoc.NewTag(*ft.Name, *class)
	if err != nil {
		var e *newsdoc.Error
		if errors.As(err, &e) {
			return newsdoc.Tag{}, newsdoc.Errorf(e.Code, "%s: %s", field, e.Message)
		}
		return newsdoc.Tag{}, err
	}
	return t, nil
}
