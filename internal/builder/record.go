package builder

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RecordFilename is where the last build's record is written, relative to the
// build directory.
const RecordFilename = "hudbuild_record.json"

// BuildRecord describes one completed build: what was built and the exact
// external command lines that produced it.
type BuildRecord struct {
	SessionID  string     `json:"session_id"`
	Platform   string     `json:"platform"`
	Arch       string     `json:"arch"`
	BuildType  string     `json:"build_type"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
	Commands   [][]string `json:"commands,omitempty"`
}

func newBuildRecord(opts Options) *BuildRecord {
	return &BuildRecord{
		SessionID: uuid.New().String(),
		Platform:  string(opts.Platform),
		Arch:      string(opts.Arch),
		BuildType: opts.BuildType,
		StartedAt: time.Now(),
	}
}

func (r *BuildRecord) save(buildDir string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(buildDir, RecordFilename), data, 0644)
}

// LoadRecord reads the record of the previous build, if any.
func LoadRecord(buildDir string) (*BuildRecord, error) {
	f, err := os.Open(filepath.Join(buildDir, RecordFilename))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var record BuildRecord
	if err := json.NewDecoder(bufio.NewReader(f)).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}
