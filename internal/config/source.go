package config

import (
	"fmt"
	"strings"
)

// SourceKind says where a vocabulary reference points.
type SourceKind int

const (
	// SourceFile is a JSON or YAML file on disk.
	SourceFile SourceKind = iota
	// SourceSample is a vocabulary bundled with the binary.
	SourceSample
	// SourceLibrary is a vocabulary stored in the SQLite library.
	SourceLibrary
)

const (
	samplePrefix  = "sample:"
	libraryPrefix = "db:"
)

// Source is a parsed vocabulary reference such as "ranks.json",
// "sample:politics" or "db:navy".
type Source struct {
	Value string
	Kind  SourceKind
}

// ParseSource interprets a vocabulary reference. File paths are expanded.
func ParseSource(ref string) (Source, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Source{}, fmt.Errorf("vocabulary reference is empty")
	}

	switch {
	case strings.HasPrefix(ref, samplePrefix):
		name := strings.TrimPrefix(ref, samplePrefix)
		if name == "" {
			return Source{}, fmt.Errorf("sample name missing in %q", ref)
		}
		return Source{Kind: SourceSample, Value: name}, nil
	case strings.HasPrefix(ref, libraryPrefix):
		name := strings.TrimPrefix(ref, libraryPrefix)
		if name == "" {
			return Source{}, fmt.Errorf("library name missing in %q", ref)
		}
		return Source{Kind: SourceLibrary, Value: name}, nil
	default:
		return Source{Kind: SourceFile, Value: ExpandPath(ref)}, nil
	}
}

func (s Source) String() string {
	switch s.Kind {
	case SourceSample:
		return samplePrefix + s.Value
	case SourceLibrary:
		return libraryPrefix + s.Value
	default:
		return s.Value
	}
}
