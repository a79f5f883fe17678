package manifest

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedVersion = errors.New("unsupported manifest version")
	ErrNoPackages         = errors.New("manifest lists no packages")
	ErrEmptyPackagePath   = errors.New("package entry has no path")
	ErrNoTypes            = errors.New("package entry lists no types")
	ErrDuplicateType      = errors.New("type listed more than once")
)

// Validate checks a parsed manifest for structural problems.
func Validate(m *Manifest) error {
	if m.Version != DefaultVersion {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, m.Version)
	}

	if len(m.Packages) == 0 {
		return ErrNoPackages
	}

	for i, pkg := range m.Packages {
		if pkg.Path == "" {
			return fmt.Errorf("packages[%d]: %w", i, ErrEmptyPackagePath)
		}

		if len(pkg.Types) == 0 {
			return fmt.Errorf("packages[%d] (%s): %w", i, pkg.Path, ErrNoTypes)
		}

		seen := make(map[string]struct{}, len(pkg.Types))
		for _, name := range pkg.Types {
			if _, ok := seen[name]; ok {
				return fmt.Errorf("packages[%d] (%s): %w: %s", i, pkg.Path, ErrDuplicateType, name)
			}

			seen[name] = struct{}{}
		}
	}

	return nil
}
