package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the repository layout and the checks applied to the generated manifest.
type Config struct {
	// ProjectDir is the expected base name of the repository root directory.
	ProjectDir string `yaml:"project_dir"`
	// BuildDescriptor is a file that must exist in a candidate repository root.
	BuildDescriptor string `yaml:"build_descriptor"`
	// MarkerDir is a directory that must exist in a candidate repository root.
	MarkerDir string `yaml:"marker_dir"`
	// SearchPaths are tried in order, relative to the working directory.
	SearchPaths []string `yaml:"search_paths"`
	// HeaderPath is the version header, relative to the repository root.
	HeaderPath string `yaml:"header_path"`
	// TemplatePath is the manifest template, relative to the repository root.
	TemplatePath string `yaml:"template_path"`
	// OutputPath is the generated manifest, relative to the repository root.
	OutputPath string `yaml:"output_path"`
	// Placeholder is the literal token replaced in the template.
	Placeholder string `yaml:"placeholder"`
	// FallbackVersion is used when the header is missing or incomplete.
	FallbackVersion string `yaml:"fallback_version"`
	// RequiredFields must be present in the manifest dict and equal the version.
	RequiredFields []string `yaml:"required_fields"`
}

const (
	// DefaultProjectDir is the repository directory name of the mod.
	DefaultProjectDir = "stfc-mod"
	// DefaultBuildDescriptor is the xmake build script at the repository root.
	DefaultBuildDescriptor = "xmake.lua"
	// DefaultMarkerDir is the sources directory at the repository root.
	DefaultMarkerDir = "mods"
	// DefaultHeaderPath is where VERSION_* macros are defined.
	DefaultHeaderPath = "mods/src/version.h"
	// DefaultTemplatePath is the Info.plist template of the macOS launcher.
	DefaultTemplatePath = "macos-launcher/src/Info.plist.template"
	// DefaultOutputPath is the Info.plist produced from the template.
	DefaultOutputPath = "macos-launcher/src/Info.plist"
	// DefaultPlaceholder is the token xmake substitutes with the version.
	DefaultPlaceholder = "${VERSION}"
	// DefaultFallbackVersion is used when version.h cannot provide all four parts.
	DefaultFallbackVersion = "1.0.0.0"

	// versionParts is the number of dot-separated integers in a product version.
	versionParts = 4
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errPlaceholderRequired is returned when the placeholder is configured as blank.
	errPlaceholderRequired = errors.New("placeholder must not be blank")
	// errInvalidFallback is returned when the fallback version is not a dotted quadruplet.
	errInvalidFallback = errors.New("fallback version must be four dot-separated non-negative integers")
	// errPathOutsideRoot is returned when a configured path escapes the repository root.
	errPathOutsideRoot = errors.New("path must be relative and stay inside the repository root")
)

// DefaultRequiredFields returns the Info.plist keys that must carry the version.
func DefaultRequiredFields() []string {
	return []string{"CFBundleShortVersionString", "CFBundleVersion"}
}

// DefaultSearchPaths returns the ancestors tried when looking for the repository root.
func DefaultSearchPaths() []string {
	return []string{".", "..", "../.."}
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := new(Config)

	// Defaults always validate.
	_ = Validate(cfg)

	return cfg
}

// Load reads configuration from path. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err = yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate fills defaults for empty fields and checks the rest.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	setDefault(&cfg.ProjectDir, DefaultProjectDir)
	setDefault(&cfg.BuildDescriptor, DefaultBuildDescriptor)
	setDefault(&cfg.MarkerDir, DefaultMarkerDir)
	setDefault(&cfg.HeaderPath, DefaultHeaderPath)
	setDefault(&cfg.TemplatePath, DefaultTemplatePath)
	setDefault(&cfg.OutputPath, DefaultOutputPath)
	setDefault(&cfg.FallbackVersion, DefaultFallbackVersion)

	// A blank placeholder would match between every rune.
	if cfg.Placeholder == "" {
		cfg.Placeholder = DefaultPlaceholder
	} else if strings.TrimSpace(cfg.Placeholder) == "" {
		return errPlaceholderRequired
	}

	if len(cfg.SearchPaths) == 0 {
		cfg.SearchPaths = DefaultSearchPaths()
	}

	if len(cfg.RequiredFields) == 0 {
		cfg.RequiredFields = DefaultRequiredFields()
	}

	for name, path := range map[string]string{
		"build_descriptor": cfg.BuildDescriptor,
		"marker_dir":       cfg.MarkerDir,
		"header_path":      cfg.HeaderPath,
		"template_path":    cfg.TemplatePath,
		"output_path":      cfg.OutputPath,
	} {
		if !filepath.IsLocal(filepath.FromSlash(path)) {
			return fmt.Errorf("%s %q: %w", name, path, errPathOutsideRoot)
		}
	}

	if !isQuadruplet(cfg.FallbackVersion) {
		return fmt.Errorf("%q: %w", cfg.FallbackVersion, errInvalidFallback)
	}

	return nil
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

// isQuadruplet reports whether s looks like "1.2.3.4".
func isQuadruplet(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != versionParts {
		return false
	}

	for _, part := range parts {
		if _, err := strconv.ParseUint(part, 10, 64); err != nil {
			return false
		}
	}

	return true
}
