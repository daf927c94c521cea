package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"github.com/cppsandbox/compile/cmake"
	"github.com/cppsandbox/compile/logger"
)

// DefaultFile is looked up in the working directory when --config is not given
const DefaultFile = "compile.jsonc"

// File is the JSONC structure of a project file
type File struct {
	BuildDir  string `json:"buildDir,omitempty"`
	SourceDir string `json:"sourceDir,omitempty"`
	CMake     string `json:"cmake,omitempty"`     // path or name of the cmake binary
	DefineVar string `json:"defineVar,omitempty"` // cache variable set by --define
}

// Load reads and decodes a project file. Comments and trailing commas are allowed.
func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	logger.Debug("loading project file", "path", path, "bytes", len(content))

	return Parse(content, path)
}

// Parse decodes project file content; name is only used in error messages
func Parse(content []byte, name string) (*File, error) {
	std, err := hujson.Standardize(content)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONC in %s: %w", name, err)
	}

	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("invalid project file %s: %w", name, err)
	}
	return &f, nil
}

// LoadOptional is like Load but a missing file yields (nil, nil)
func LoadOptional(path string) (*File, error) {
	f, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("no project file", "path", path)
		return nil, nil
	}
	return f, err
}

// Apply copies non-empty settings onto opts
func (f *File) Apply(opts *cmake.Options) {
	if f == nil {
		return
	}
	if f.BuildDir != "" {
		opts.BuildDir = f.BuildDir
	}
	if f.SourceDir != "" {
		opts.SourceDir = f.SourceDir
	}
	if f.CMake != "" {
		opts.Tool = f.CMake
	}
	if f.DefineVar != "" {
		opts.DefineVar = f.DefineVar
	}
}
