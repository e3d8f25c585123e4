package types

import "errors"

// Config holds the directories the application operates in.
type Config struct {
	DataDir   string `json:"data_dir" yaml:"data_dir"`     // store location
	ExportDir string `json:"export_dir" yaml:"export_dir"` // where export artifacts land
}

// Config validation errors.
var (
	ErrDataDirEmpty = errors.New("data directory must not be empty")
)

// Validate checks that the Config is well-formed. ExportDir may be empty;
// callers fall back to DataDir when it is.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}

// ResolvedExportDir returns ExportDir, or DataDir when no export directory
// is configured.
func (c Config) ResolvedExportDir() string {
	if c.ExportDir != "" {
		return c.ExportDir
	}
	return c.DataDir
}
