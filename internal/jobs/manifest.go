package jobs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"wildsafari/internal/services"
	"wildsafari/pkg/utils"
)

const manifestTimeout = time.Minute

// ManifestJob writes the day's booking manifest CSV into dir.
type ManifestJob struct {
	dir    string
	export services.ExportServiceInterface
	log    logrus.FieldLogger
	now    func() time.Time
}

func NewManifestJob(dir string, export services.ExportServiceInterface, log logrus.FieldLogger) *ManifestJob {
	return &ManifestJob{dir: dir, export: export, log: log, now: time.Now}
}

func (j *ManifestJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), manifestTimeout)
	defer cancel()

	path, err := j.Write(ctx)
	switch {
	case errors.Is(err, utils.ErrNothingToExport):
		j.log.Info("no bookings for the daily manifest")
	case err != nil:
		j.log.WithError(err).Error("daily manifest failed")
	default:
		j.log.WithField("path", path).Info("daily manifest written")
	}
}

// Write exports the manifest and returns the file path.
func (j *ManifestJob) Write(ctx context.Context) (string, error) {
	file, err := j.export.Export(ctx, services.ExportDailyManifest, j.now())
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return "", fmt.Errorf("create manifest dir: %w", err)
	}
	path := filepath.Join(j.dir, file.Name)
	if err := os.WriteFile(path, file.Content, 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}
