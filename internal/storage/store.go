// Package storage persists integration runs as directories of row files
// with a JSON metadata sidecar.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/orbitlab/sitnikov/internal/config"
	"github.com/orbitlab/sitnikov/internal/integrators"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Eccentricity float64   `json:"eccentricity"`
	Tau          float64   `json:"tau"`
	Z0           float64   `json:"z0"`
	V0           float64   `json:"v0"`
	Step         float64   `json:"step"`
	Periods      int       `json:"periods"`
	Method       string    `json:"method"`
	MEGNO        bool      `json:"megno"`
	Seed         uint64    `json:"seed"`
	Rows         []string  `json:"rows"`
}

// RowNames lists the row files a run of the given kind carries, without
// the .bin suffix.
func RowNames(megno bool) []string {
	if megno {
		return []string{"z", "z_v", "megno", "mean_megno"}
	}
	return []string{"z", "z_v"}
}

func rowIndices(megno bool) []int {
	if megno {
		return []int{0, 2, 4, 5}
	}
	return []int{0, 1}
}

// Save writes the result rows and metadata of one run into a fresh
// directory under the base and returns the run ID.
func (s *Store) Save(cfg *config.Config, results *integrators.Buffer) (string, error) {
	kind := "orbit"
	if cfg.MEGNO {
		kind = "megno"
	}
	runID := fmt.Sprintf("%s_%d", kind, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	names := RowNames(cfg.MEGNO)
	for k, i := range rowIndices(cfg.MEGNO) {
		path := filepath.Join(runDir, names[k]+".bin")
		if err := WriteRow(path, results.Row(i)); err != nil {
			return "", err
		}
	}

	meta := RunMetadata{
		ID:           runID,
		Timestamp:    time.Now(),
		Eccentricity: cfg.Eccentricity,
		Tau:          cfg.Tau,
		Z0:           cfg.Z0,
		V0:           cfg.V0,
		Step:         cfg.Step,
		Periods:      cfg.Periods,
		Method:       cfg.Method,
		MEGNO:        cfg.MEGNO,
		Seed:         cfg.Seed,
		Rows:         names,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	return runID, nil
}

// List reads the metadata of every run under the base directory.
// Directories without parsable metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadRow reads one named row of a stored run.
func (s *Store) LoadRow(runID, name string) ([]float64, error) {
	return ReadRow(filepath.Join(s.baseDir, runID, name+".bin"))
}
