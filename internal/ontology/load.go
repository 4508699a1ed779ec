package ontology

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound is returned by Load when the knowledge-base file is missing.
	ErrNotFound = errors.New("knowledge base not found")

	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported knowledge base format")
)

// DefaultFileName is the knowledge-base file looked up next to the binary.
const DefaultFileName = "fractions_its.owl"

// Format is a knowledge-base serialization.
type Format string

const (
	FormatOWL  Format = "owl"
	FormatYAML Format = "yaml"
)

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".owl", ".rdf", ".xml":
		return FormatOWL, nil
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and parses the knowledge base at path.
func Load(path string) (*Graph, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}

	switch format {
	case FormatYAML:
		return ParseYAML(data)
	default:
		return ParseOWL(bytes.NewReader(data))
	}
}

// DefaultPath returns DefaultFileName in the directory of the running
// executable, or in the working directory if that cannot be determined.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName)
}

// Message renders a Load error the way the tutor page shows it.
func Message(path string, err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNotFound) {
		return "OWL file not found at: " + path
	}
	return "Error loading ontology: " + err.Error()
}
