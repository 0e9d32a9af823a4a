package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/KaramelBytes/reelstats/internal/utils"
	"github.com/google/uuid"
)

const (
	manifestFileName = "manifest.json"
)

// Artifact kinds.
const (
	KindChart    = "chart"
	KindSummary  = "summary"
	KindWorkbook = "workbook"
)

// Manifest describes one pipeline run persisted next to its outputs.
type Manifest struct {
	ID        string      `json:"id"`
	Input     string      `json:"input"`
	Rows      int         `json:"rows"`
	Artifacts []*Artifact `json:"artifacts"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	// Not serialized: output directory holding manifest.json
	outDir string `json:"-"`
}

// Artifact is one file written by the run.
type Artifact struct {
	Kind    string    `json:"kind"`
	File    string    `json:"file"`
	Title   string    `json:"title,omitempty"`
	Insight string    `json:"insight,omitempty"`
	Size    int64     `json:"size"`
	AddedAt time.Time `json:"added_at"`
}

// New constructs an in-memory manifest. Call Save() to persist.
func New(input, outDir string) *Manifest {
	now := time.Now()
	return &Manifest{
		ID:        uuid.NewString(),
		Input:     input,
		CreatedAt: now,
		UpdatedAt: now,
		outDir:    outDir,
	}
}

// Load reads manifest.json from the provided output directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, manifestFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("manifest not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	m.outDir = dir
	return &m, nil
}

// OutDir returns the directory the manifest describes.
func (m *Manifest) OutDir() string { return m.outDir }

// Add records a file under the output directory. The file must exist.
func (m *Manifest) Add(kind, file, title, insight string) error {
	info, err := os.Stat(filepath.Join(m.outDir, file))
	if err != nil {
		return fmt.Errorf("stat artifact: %w", err)
	}
	m.Artifacts = append(m.Artifacts, &Artifact{
		Kind:    kind,
		File:    file,
		Title:   title,
		Insight: insight,
		Size:    info.Size(),
		AddedAt: info.ModTime(),
	})
	m.UpdatedAt = time.Now()
	return nil
}

// Save writes manifest.json using atomic write.
func (m *Manifest) Save() error {
	if m.outDir == "" {
		return errors.New("manifest output directory not set")
	}
	if err := utils.EnsureDir(m.outDir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	m.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(m)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(m.outDir, manifestFileName), data)
}
