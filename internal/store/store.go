package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/go-playground/validator/v10"

	"ipicli/pkg/contracts/domain"
)

// fileModel is the on-disk JSON layout, kept compatible with the file the
// legacy desktop tool wrote.
type fileModel struct {
	Clasif  map[string]string `json:"clasif"`
	Nombres map[string]string `json:"nombres"`
	Excl    exclModel         `json:"excl"`
	// Recursos lists every resource name seen in processed sheets, so an
	// operator tool can offer exclusion candidates without re-parsing.
	Recursos []string `json:"recursos,omitempty"`
}

type exclModel struct {
	Recursos  []string `json:"recursos"`
	Proyectos []string `json:"proyectos"`
}

// storedProject is the validated shape of one classification entry.
type storedProject struct {
	Code           string `validate:"required,len=5,numeric"`
	Classification string `validate:"omitempty,oneof=CONSTRUCCION REPARACION"`
}

// Store is the mutable classification/exclusion state backed by one JSON
// file. It is not safe for concurrent use; exactly one run owns it at a
// time.
type Store struct {
	path     string
	data     fileModel
	validate *validator.Validate
	dirty    bool
}

// Open loads the store at path, or returns an empty store when the file
// does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path:     path,
		validate: validator.New(),
		data: fileModel{
			Clasif:  map[string]string{},
			Nombres: map[string]string{},
		},
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
	}
	if s.data.Clasif == nil {
		s.data.Clasif = map[string]string{}
	}
	if s.data.Nombres == nil {
		s.data.Nombres = map[string]string{}
	}
	for code, class := range s.data.Clasif {
		entry := storedProject{Code: code, Classification: class}
		if err := s.validate.Struct(entry); err != nil {
			return nil, fmt.Errorf("invalid store entry for project %q: %w", code, err)
		}
	}
	return s, nil
}

// Save writes the store back to its file when anything changed since Open.
func (s *Store) Save() error {
	if !s.dirty {
		return nil
	}
	sort.Strings(s.data.Excl.Recursos)
	sort.Strings(s.data.Excl.Proyectos)
	sort.Strings(s.data.Recursos)

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write store file %s: %w", s.path, err)
	}
	s.dirty = false
	return nil
}

// Snapshot is an immutable view of the store handed to a pipeline run.
type Snapshot struct {
	Classifications   map[string]domain.Classification
	Names             map[string]string
	ExcludedResources map[string]bool
	ExcludedProjects  map[string]bool
	KnownResources    map[string]bool
}

// Snapshot copies the current state into a read-only view. Pipeline runs
// are pure functions of (worksheet, snapshot).
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Classifications:   make(map[string]domain.Classification, len(s.data.Clasif)),
		Names:             make(map[string]string, len(s.data.Nombres)),
		ExcludedResources: make(map[string]bool, len(s.data.Excl.Recursos)),
		ExcludedProjects:  make(map[string]bool, len(s.data.Excl.Proyectos)),
		KnownResources:    make(map[string]bool, len(s.data.Recursos)),
	}
	for code, class := range s.data.Clasif {
		snap.Classifications[code] = domain.Classification(class)
	}
	for code, name := range s.data.Nombres {
		snap.Names[code] = name
	}
	for _, r := range s.data.Excl.Recursos {
		snap.ExcludedResources[r] = true
	}
	for _, p := range s.data.Excl.Proyectos {
		snap.ExcludedProjects[p] = true
	}
	for _, r := range s.data.Recursos {
		snap.KnownResources[r] = true
	}
	return snap
}

// KnowsProject reports whether a project code is already registered.
func (sn Snapshot) KnowsProject(code string) bool {
	_, ok := sn.Classifications[code]
	return ok
}

// Register records newly discovered projects (name, empty classification)
// and resources. It never touches existing entries and never assigns a
// classification. Returns the number of additions.
func (s *Store) Register(projects []domain.ProjectRef, resources []string) int {
	added := 0
	for _, p := range projects {
		if _, ok := s.data.Clasif[p.Code]; !ok {
			s.data.Clasif[p.Code] = string(domain.ClassificationNone)
			added++
		}
		if _, ok := s.data.Nombres[p.Code]; !ok && p.Name != "" {
			s.data.Nombres[p.Code] = p.Name
		}
	}
	known := make(map[string]bool, len(s.data.Recursos))
	for _, r := range s.data.Recursos {
		known[r] = true
	}
	for _, r := range resources {
		if !known[r] {
			s.data.Recursos = append(s.data.Recursos, r)
			known[r] = true
			added++
		}
	}
	if added > 0 {
		s.dirty = true
	}
	return added
}

// Classify assigns a classification to a known project code.
func (s *Store) Classify(code string, class domain.Classification) error {
	if !class.Valid() {
		return fmt.Errorf("unknown classification %q", class)
	}
	entry := storedProject{Code: code, Classification: string(class)}
	if err := s.validate.Struct(entry); err != nil {
		return fmt.Errorf("invalid project code %q: %w", code, err)
	}
	s.data.Clasif[code] = string(class)
	s.dirty = true
	return nil
}

// ExcludeResource adds a resource name to the exclusion set.
func (s *Store) ExcludeResource(name string) {
	if name == "" || slices.Contains(s.data.Excl.Recursos, name) {
		return
	}
	s.data.Excl.Recursos = append(s.data.Excl.Recursos, name)
	s.dirty = true
}

// ExcludeProject adds a project code to the exclusion set.
func (s *Store) ExcludeProject(code string) {
	if code == "" || slices.Contains(s.data.Excl.Proyectos, code) {
		return
	}
	s.data.Excl.Proyectos = append(s.data.Excl.Proyectos, code)
	s.dirty = true
}
