package installation

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Variant describes one distribution of the editor (stable, insiders,
// remote server, community fork). Patterns holds the directory layouts the
// variant may use relative to a base directory, in fallback priority order.
type Variant struct {
	Name     string
	Patterns [][]string
}

// variants is the static search table. Order matters: Resolve stops at the
// first variant that exists, and ResolveAll reports results in this order.
var variants = []Variant{
	{Name: "VS Code", Patterns: [][]string{{"Code", "User"}}},
	{Name: "VS Code Insiders", Patterns: [][]string{{"Code - Insiders", "User"}}},
	{Name: "VS Code Server", Patterns: [][]string{
		{".vscode-server", "data", "User"},
		{".vscode-server", "User"},
	}},
	{Name: "VS Code Server (Insiders)", Patterns: [][]string{
		{".vscode-server-insiders", "data", "User"},
		{".vscode-server-insiders", "User"},
	}},
	{Name: "VSCodium", Patterns: [][]string{{"VSCodium", "User"}}},
	{Name: "Code - OSS", Patterns: [][]string{{"Code - OSS", "User"}}},
}

const (
	globalStorageDir = "globalStorage"
	storageJSONName  = "storage.json"
	stateDBName      = "state.vscdb"
)

// Installation is a resolved user-data directory of one variant, plus the
// locations of the two files the mutation commands operate on. The resolved
// Path existed when the Installation was produced; the artifact files may or
// may not (their existence is recorded, not required).
type Installation struct {
	Name              string
	Path              string
	PatternUsed       string
	StorageJSONPath   string
	StateDBPath       string
	StorageJSONExists bool
	StateDBExists     bool
}

// ConfigurationError reports a mandatory environment variable that is unset.
type ConfigurationError struct {
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", e.Variable)
}

// UnsupportedPlatformError reports an operating system the search table does
// not cover.
type UnsupportedPlatformError struct {
	OS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported operating system: %s", e.OS)
}

// NotFoundError reports an exhausted search. Checked holds every candidate
// path that was probed, in probe order, so callers can print a full
// diagnostic.
type NotFoundError struct {
	Checked []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no VS Code installation found (checked %d locations)", len(e.Checked))
}

// Resolver locates editor installations on the local machine. The OS
// identity, environment lookup and home directory are fields so tests can
// point the search at a synthetic filesystem.
type Resolver struct {
	goos   string
	getenv func(string) string
	home   string
}

// New returns a Resolver bound to the real process environment.
func New() *Resolver {
	home, _ := os.UserHomeDir()
	return &Resolver{
		goos:   runtime.GOOS,
		getenv: os.Getenv,
		home:   home,
	}
}

// BaseDirs returns the candidate root directories for the current OS, in
// priority order: primary install locations first, home-directory fallbacks
// last. Callers must probe them in the returned order.
func (r *Resolver) BaseDirs() ([]string, error) {
	switch r.goos {
	case "windows":
		appData := r.getenv("APPDATA")
		if appData == "" {
			return nil, &ConfigurationError{Variable: "APPDATA"}
		}
		dirs := []string{appData}
		// USERPROFILE only hosts the remote-server layouts; skip it silently
		// when unset.
		if profile := r.getenv("USERPROFILE"); profile != "" {
			dirs = append(dirs, profile)
		}
		return dirs, nil
	case "darwin":
		return []string{filepath.Join(r.home, "Library", "Application Support"), r.home}, nil
	case "linux":
		configDir := r.getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			configDir = filepath.Join(r.home, ".config")
		}
		return []string{configDir, r.home}, nil
	default:
		return nil, &UnsupportedPlatformError{OS: r.goos}
	}
}

type candidate struct {
	variant string
	pattern string
	path    string
}

// candidates generates the full ordered probe list: variant priority over
// pattern-fallback priority over base-directory priority.
func (r *Resolver) candidates() ([]candidate, error) {
	bases, err := r.BaseDirs()
	if err != nil {
		return nil, err
	}
	var cands []candidate
	for _, v := range variants {
		for _, pattern := range v.Patterns {
			for _, base := range bases {
				cands = append(cands, candidate{
					variant: v.Name,
					pattern: filepath.Join(pattern...),
					path:    filepath.Join(append([]string{base}, pattern...)...),
				})
			}
		}
	}
	return cands, nil
}

// Resolve returns the highest-priority installation that exists on disk.
// When nothing exists it fails with a NotFoundError listing every path that
// was probed.
func (r *Resolver) Resolve() (*Installation, error) {
	cands, err := r.candidates()
	if err != nil {
		return nil, err
	}
	checked := make([]string, 0, len(cands))
	for _, c := range cands {
		checked = append(checked, c.path)
		ok, err := exists(c.path)
		if err != nil {
			return nil, err
		}
		if ok {
			return r.newInstallation(c), nil
		}
	}
	return nil, &NotFoundError{Checked: checked}
}

// ResolveAll walks the same probe order as Resolve but records at most one
// installation per variant: the first pattern/base combination that exists.
// An empty result is not an error; listing is an inventory, not a
// precondition.
func (r *Resolver) ResolveAll() ([]*Installation, error) {
	cands, err := r.candidates()
	if err != nil {
		return nil, err
	}
	found := make(map[string]bool)
	var installs []*Installation
	for _, c := range cands {
		if found[c.variant] {
			continue
		}
		ok, err := exists(c.path)
		if err != nil {
			return nil, err
		}
		if ok {
			found[c.variant] = true
			installs = append(installs, r.newInstallation(c))
		}
	}
	return installs, nil
}

func (r *Resolver) newInstallation(c candidate) *Installation {
	inst := &Installation{
		Name:            c.variant,
		Path:            c.path,
		PatternUsed:     c.pattern,
		StorageJSONPath: filepath.Join(c.path, globalStorageDir, storageJSONName),
		StateDBPath:     filepath.Join(c.path, globalStorageDir, stateDBName),
	}
	if _, err := os.Stat(inst.StorageJSONPath); err == nil {
		inst.StorageJSONExists = true
	}
	if _, err := os.Stat(inst.StateDBPath); err == nil {
		inst.StateDBExists = true
	}
	return inst
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
