package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes each generated file into its record's package
// directory, creating directories as needed.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		err := os.MkdirAll(file.Dir, dirPerm)
		if err != nil {
			return fmt.Errorf("creating directory %s: %w", file.Dir, err)
		}

		outputPath := filepath.Join(file.Dir, file.Filename)

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", outputPath, err)
		}
	}

	return nil
}
