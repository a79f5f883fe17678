package manifest

// Manifest represents the root of a YAML derivation manifest.
type Manifest struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Packages lists the packages holding the records to derive.
	Packages []PackageSpec `yaml:"packages"`

	// Options tweaks the generated output.
	Options Options `yaml:"options,omitempty"`
}

// PackageSpec selects record types within one package.
type PackageSpec struct {
	// Path is a Go package pattern (e.g., "./examples/records" or
	// "hlist-support/examples/catalog").
	Path string `yaml:"path"`

	// Types lists the struct type names to derive within the package.
	Types []string `yaml:"types"`
}

// Options holds generation options shared by all packages in a manifest.
type Options struct {
	// Suffix of generated file names. Defaults to "_hlist.go".
	Suffix string `yaml:"suffix,omitempty"`
}
