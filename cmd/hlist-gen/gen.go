package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hlist-support/internal/analyze"
	"hlist-support/internal/gen"
	"hlist-support/internal/manifest"
)

var (
	manifestPath string
	typeNames    []string
)

var genCmd = &cobra.Command{
	Use:   "gen [package]",
	Short: "Generate hlist conversion files",
	Long: `Generates the conversion files for the records named either in a YAML
manifest (--manifest) or directly on the command line (--type, with an
optional package pattern argument defaulting to ".").`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest listing packages and types")
	genCmd.Flags().StringSliceVarP(&typeNames, "type", "t", nil, "type name to derive (repeatable)")
}

func runGen(cmd *cobra.Command, args []string) error {
	m, err := resolveManifest(args)
	if err != nil {
		return err
	}

	if err := manifest.Validate(m); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}

	analyzer := analyze.NewAnalyzer()

	var recs []*analyze.Record
	for _, pkg := range m.Packages {
		infos, err := analyzer.LoadPackages(pkg.Path)
		if err != nil {
			return err
		}

		for _, name := range pkg.Types {
			rec, err := findRecord(analyzer, infos, name)
			if err != nil {
				return err
			}

			logger.Debug("resolved record",
				zap.String("type", rec.ID.String()),
				zap.Int("fields", len(rec.Fields)))

			recs = append(recs, rec)
		}
	}

	cfg := gen.DefaultConfig()
	if m.Options.Suffix != "" {
		cfg.Suffix = m.Options.Suffix
	}

	files, err := gen.NewGenerator(cfg).Generate(recs)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, file := range files {
		logger.Info("wrote conversion file",
			zap.String("path", filepath.Join(file.Dir, file.Filename)))
	}

	return nil
}

// resolveManifest builds the effective manifest from flags and args.
func resolveManifest(args []string) (*manifest.Manifest, error) {
	switch {
	case manifestPath != "" && len(typeNames) > 0:
		return nil, errors.New("--manifest and --type are mutually exclusive")

	case manifestPath != "":
		if len(args) > 0 {
			return nil, errors.New("package arguments are taken from the manifest")
		}

		return manifest.LoadFile(manifestPath)

	case len(typeNames) > 0:
		pattern := "."
		switch len(args) {
		case 0:
		case 1:
			pattern = args[0]
		default:
			return nil, errors.New("at most one package pattern with --type")
		}

		m := &manifest.Manifest{
			Packages: []manifest.PackageSpec{{Path: pattern, Types: typeNames}},
		}
		manifest.ApplyDefaults(m)

		return m, nil

	default:
		return nil, errors.New("either --manifest or --type is required")
	}
}

// findRecord looks a type name up in the packages one manifest entry matched.
func findRecord(a *analyze.Analyzer, infos []*analyze.PackageInfo, name string) (*analyze.Record, error) {
	for _, info := range infos {
		rec, err := a.Record(info.Path, name)
		if err == nil {
			return rec, nil
		}

		if !errors.Is(err, analyze.ErrTypeNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%s: %w", name, analyze.ErrTypeNotFound)
}
