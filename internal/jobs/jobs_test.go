package jobs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildsafari/internal/config"
	"wildsafari/internal/repositories"
	"wildsafari/internal/services"
	mem "wildsafari/pkg/memcache"
	"wildsafari/pkg/middleware"
	"wildsafari/pkg/utils"
)

func quietLog() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func exportService(seed repositories.SeedData) services.ExportServiceInterface {
	store := repositories.NewMemoryStore(seed)
	return services.NewExportService(store, store, store, store, store, store, store)
}

func TestManifestJobWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "manifests")
	job := NewManifestJob(dir, exportService(repositories.DefaultSeed()), quietLog())
	job.now = func() time.Time { return time.Date(2024, 6, 14, 23, 0, 0, 0, time.UTC) }

	path, err := job.Write(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "daily_manifest_2024-06-15.csv"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(raw), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"Volcanoes Gorilla Trek"`)
}

func TestManifestJobNothingToExport(t *testing.T) {
	dir := t.TempDir()
	job := NewManifestJob(dir, exportService(repositories.SeedData{}), quietLog())

	_, err := job.Write(context.Background())
	assert.ErrorIs(t, err, utils.ErrNothingToExport)

	job.Run()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPurgeJob(t *testing.T) {
	sessions := mem.NewMemorySessions()
	ctx := context.Background()
	require.NoError(t, sessions.Set(ctx, "old", []byte("x"), time.Nanosecond))
	require.NoError(t, sessions.Set(ctx, "live", []byte("y"), time.Hour))
	time.Sleep(5 * time.Millisecond)

	limiter := &countingPruner{}
	(&PurgeJob{sessions: sessions, limiter: limiter, log: quietLog()}).Run()
	assert.Equal(t, 1, sessions.Len())
	assert.Equal(t, []time.Duration{limiterIdle}, limiter.calls)

	(&PurgeJob{sessions: sessions, log: quietLog()}).Run()
	assert.Equal(t, 1, sessions.Len())
}

type countingPruner struct {
	calls []time.Duration
}

func (p *countingPruner) PruneIdle(idle time.Duration) int {
	p.calls = append(p.calls, idle)
	return 0
}

var _ IdlePruner = (*middleware.ClientRateLimiter)(nil)

func TestNewScheduler(t *testing.T) {
	export := exportService(repositories.DefaultSeed())
	sessions := mem.NewMemorySessions()

	s, err := NewScheduler(config.JobsConfig{SessionPurgeSchedule: "@every 1m"}, export, sessions, nil, quietLog())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Jobs())

	s, err = NewScheduler(config.JobsConfig{
		ManifestDir:          t.TempDir(),
		ManifestSchedule:     "0 6 * * *",
		SessionPurgeSchedule: "@every 1m",
	}, export, sessions, nil, quietLog())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Jobs())

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))

	_, err = NewScheduler(config.JobsConfig{ManifestDir: t.TempDir(), ManifestSchedule: "not a schedule"}, export, sessions, nil, quietLog())
	assert.Error(t, err)
}
