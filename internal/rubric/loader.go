package rubric

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/speechmetrics/commscore/internal/apperr"
)

// LoadFile picks the parser from the file extension: .csv, .yaml or .yml.
func LoadFile(path string) (Rubric, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return LoadCSVFile(path)
	case ".yaml", ".yml":
		return LoadYAMLFile(path)
	default:
		return Rubric{}, apperr.NewRubric(fmt.Sprintf("unsupported rubric file format %q", ext))
	}
}
