package layout

//go:generate mockgen -source=resolver.go -destination=resolver_mock.go -package=layout

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Status is the lifecycle state of a layout version.
type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusProduction Status = "PRODUCTION"
	StatusLocked     Status = "LOCKED"
	StatusArchived   Status = "ARCHIVED"
)

// Active reports whether a version in this state may be used for rendering.
// A locked version is a production version frozen against edits, so it
// stays active.
func (s Status) Active() bool {
	switch Status(strings.ToUpper(string(s))) {
	case StatusProduction, StatusLocked:
		return true
	default:
		return false
	}
}

// Version is one stored revision of a layout. An empty Owner marks a
// system-wide version.
type Version struct {
	TransactionType string `yaml:"transaction_type" json:"transaction_type" toml:"transaction_type"`
	Version         int    `yaml:"version" json:"version" toml:"version"`
	Status          Status `yaml:"status" json:"status" toml:"status"`
	Owner           string `yaml:"owner,omitempty" json:"owner,omitempty" toml:"owner,omitempty"`

	// Layout is given inline or through LayoutFile, a path relative to the
	// manifest.
	Layout     *Config `yaml:"layout,omitempty" json:"layout,omitempty" toml:"layout,omitempty"`
	LayoutFile string  `yaml:"layout_file,omitempty" json:"layout_file,omitempty" toml:"layout_file,omitempty"`
}

// Resolver finds the layout to use for a transaction type and user. ok is
// false when no layout is available, which is not an error.
type Resolver interface {
	Resolve(ctx context.Context, txType, userID string) (cfg *Config, ok bool, err error)
}

// Select applies the resolution rule to a set of versions: the user's own
// active version first, then the system-wide active version. Among
// candidates the highest version number wins.
func Select(versions []Version, txType, userID string) (*Version, bool) {
	var own, system *Version
	for i := range versions {
		v := &versions[i]
		if v.TransactionType != txType || !v.Status.Active() {
			continue
		}
		switch {
		case v.Owner == "":
			if system == nil || v.Version > system.Version {
				system = v
			}
		case userID != "" && v.Owner == userID:
			if own == nil || v.Version > own.Version {
				own = v
			}
		}
	}

	if own != nil {
		out := *own
		return &out, true
	}
	if system != nil {
		out := *system
		return &out, true
	}
	return nil, false
}

// VersionList is an in-memory Resolver.
type VersionList []Version

// Resolve implements Resolver.
func (l VersionList) Resolve(ctx context.Context, txType, userID string) (*Config, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	v, ok := Select(l, txType, userID)
	if !ok || v.Layout == nil {
		return nil, false, nil
	}
	return v.Layout, true, nil
}

// =============================================================================
// Directory-backed resolver
// =============================================================================

// DirResolver reads version manifests from a directory. Files with a
// .yaml, .yml, .json or .toml extension that declare a transaction_type are
// manifests; other files, such as the layouts they reference, are ignored.
type DirResolver struct {
	Dir string
}

// NewDirResolver returns a resolver over dir.
func NewDirResolver(dir string) *DirResolver {
	return &DirResolver{Dir: dir}
}

// Resolve implements Resolver. The selected layout is validated and an
// invalid one is reported as an error wrapping ErrInvalidLayout.
func (r *DirResolver) Resolve(ctx context.Context, txType, userID string) (*Config, bool, error) {
	versions, err := r.Versions(ctx)
	if err != nil {
		return nil, false, err
	}

	v, ok := Select(versions, txType, userID)
	if !ok {
		return nil, false, nil
	}

	cfg := v.Layout
	if cfg == nil {
		if v.LayoutFile == "" {
			return nil, false, fmt.Errorf("layout version %s v%d has neither layout nor layout_file", txType, v.Version)
		}
		path := v.LayoutFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.Dir, path)
		}
		if cfg, err = Load(path); err != nil {
			return nil, false, err
		}
	}

	if err := Check(cfg).Err(); err != nil {
		return nil, false, fmt.Errorf("layout version %s v%d: %w", txType, v.Version, err)
	}
	return cfg, true, nil
}

// Versions loads every manifest in the directory, ordered by transaction
// type and version. A missing directory holds no versions.
func (r *DirResolver) Versions(ctx context.Context) ([]Version, error) {
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read layouts directory: %w", err)
	}

	var versions []Version
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}
		format := FormatOf(entry.Name())
		if format == "" || format == FormatXLSX {
			continue
		}

		path := filepath.Join(r.Dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", entry.Name(), err)
		}

		var probe struct {
			TransactionType string `yaml:"transaction_type" json:"transaction_type" toml:"transaction_type"`
		}
		if err := decode(data, format, &probe); err != nil || probe.TransactionType == "" {
			continue
		}

		var v Version
		if err := decode(data, format, &v); err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", entry.Name(), err)
		}
		versions = append(versions, v)
	}

	sort.SliceStable(versions, func(i, j int) bool {
		if versions[i].TransactionType != versions[j].TransactionType {
			return versions[i].TransactionType < versions[j].TransactionType
		}
		return versions[i].Version < versions[j].Version
	})
	return versions, nil
}
