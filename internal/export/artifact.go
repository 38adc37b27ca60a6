package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hollyoak/canopy/internal/mindmap"
	"github.com/hollyoak/canopy/internal/output"
)

// Artifact is the textual output of one export: the encoded text paired
// with a derived file name and media type for delivery.
type Artifact struct {
	Text      string `json:"text"`
	FileName  string `json:"file_name"`
	MediaType string `json:"media_type"`
}

// Build encodes the snapshot in the given format and derives the
// artifact name from the project and date. The scope id only affects
// the plan-feature format; other formats ignore it.
func Build(snap *mindmap.Snapshot, format Format, scopeNodeID string, date time.Time) (Artifact, error) {
	var text string
	switch format {
	case FormatJSON:
		encoded, err := EncodeJSON(snap)
		if err != nil {
			return Artifact{}, err
		}
		text = encoded
	case FormatMarkdown:
		text = EncodeMarkdown(snap)
	case FormatPlan:
		text = EncodePlanDocument(snap, scopeNodeID)
	default:
		return Artifact{}, output.NewUserError(fmt.Sprintf("unknown export format: %s", format))
	}

	return Artifact{
		Text:      text,
		FileName:  DeriveFileName(snap.Project.Name, format, date),
		MediaType: MediaType(format),
	}, nil
}

// WriteFile delivers the artifact into the given directory under its
// derived file name. Returns the written path.
func WriteFile(artifact Artifact, dir string) (string, error) {
	path := filepath.Join(dir, artifact.FileName)
	if err := os.WriteFile(path, []byte(artifact.Text), 0600); err != nil {
		return "", output.NewSystemError(fmt.Sprintf("failed to write artifact %s: %v", path, err))
	}
	return path, nil
}
