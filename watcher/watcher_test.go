package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/4lbatr0s/sitemeta/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteYAML = `
site:
  website: https://codestan.com/
  author: Serhat Oner
  title: Codestan
  postPerPage: 3
socials:
  - name: Github
    href: https://github.com/4lbatr0s
    linkTitle: Reach on Github
    active: true
`

type result struct {
	cfg *config.Config
	err error
}

func startWatcher(t *testing.T, path string) <-chan result {
	t.Helper()
	results := make(chan result, 10)
	w, err := New(path, 50*time.Millisecond, func(cfg *config.Config, err error) {
		results <- result{cfg: cfg, err: err}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop")
		}
	})
	return results
}

func next(t *testing.T, results <-chan result) result {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
		return result{}
	}
}

func TestWatcherReloadsOnChange(t *testing.T) {
	t.Setenv(config.EnvironmentEnv, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(siteYAML), 0o644))

	results := startWatcher(t, path)

	updated := strings.Replace(siteYAML, "title: Codestan", "title: serhatcodes.com", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	r := next(t, results)
	require.NoError(t, r.err)
	v, err := r.cfg.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "serhatcodes.com", v.Site.Title)
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	t.Setenv(config.EnvironmentEnv, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(siteYAML), 0o644))

	results := startWatcher(t, path)

	broken := strings.Replace(siteYAML, "postPerPage: 3", "postPerPage: 0", 1)
	require.NoError(t, os.WriteFile(path, []byte(broken), 0o644))

	r := next(t, results)
	assert.Nil(t, r.cfg)
	var perr *config.ParseError
	require.ErrorAs(t, r.err, &perr)
	assert.Contains(t, r.err.Error(), "postPerPage must be greater than 0")
}

func TestWatcherReportsInitialError(t *testing.T) {
	t.Setenv(config.EnvironmentEnv, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	broken := strings.Replace(siteYAML, "postPerPage: 3", "postPerPage: 0", 1)
	require.NoError(t, os.WriteFile(path, []byte(broken), 0o644))

	results := startWatcher(t, path)

	r := next(t, results)
	assert.Nil(t, r.cfg)
	assert.Contains(t, r.err.Error(), "postPerPage must be greater than 0")

	require.NoError(t, os.WriteFile(path, []byte(siteYAML), 0o644))

	r = next(t, results)
	require.NoError(t, r.err)
	assert.Equal(t, []string{config.DefaultVariantName}, r.cfg.Names())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	t.Setenv(config.EnvironmentEnv, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(siteYAML), 0o644))

	results := startWatcher(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	select {
	case r := <-results:
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherSkipsUnchangedConfig(t *testing.T) {
	t.Setenv(config.EnvironmentEnv, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(siteYAML), 0o644))

	results := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("# only a comment changed\n"+siteYAML), 0o644))
	select {
	case r := <-results:
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(500 * time.Millisecond):
	}

	updated := strings.Replace(siteYAML, "postPerPage: 3", "postPerPage: 6", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	r := next(t, results)
	require.NoError(t, r.err)
	v, err := r.cfg.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, 6, v.Site.PostPerPage)
}

func TestNewRejectsNilCallback(t *testing.T) {
	_, err := New("config.yaml", 0, nil)
	assert.Error(t, err)
}

func TestNewFailsForMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.yaml")

	_, err := New(path, 0, func(*config.Config, error) {})

	assert.Error(t, err)
}
