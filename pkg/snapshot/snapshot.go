package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"holdem-engine/internal/util"
)

// Dir is where snapshot files are kept, relative to the package under test
const Dir = "testdata"

var (
	mu         sync.Mutex
	callCounts = make(map[string]int)
	unsafeName = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)
)

// shouldUpdate returns true if snapshots should be rewritten instead of compared
func shouldUpdate() bool {
	return util.Getenv("UPDATE_SNAPSHOTS", "") == "1"
}

// filename returns the next snapshot file for the running test
// A test may take more than one snapshot, each gets its own file.
func filename(t *testing.T) string {
	name := unsafeName.ReplaceAllString(t.Name(), "_")

	mu.Lock()
	call := callCounts[name]
	callCounts[name] = call + 1
	mu.Unlock()

	return filepath.Join(Dir, fmt.Sprintf("%s-%d.json", name, call))
}

// Validate compares obj, encoded as indented JSON, against the test's snapshot file
// The snapshot is written if it does not exist yet, or if UPDATE_SNAPSHOTS=1.
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	file := filename(t)
	actual, err := json.MarshalIndent(obj, "", "  ")
	require.NoError(t, err)

	expects, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) || (err == nil && shouldUpdate()) {
		write(t, file, actual)
		return
	}

	require.NoError(t, err)
	if !assert.Equal(t, strings.TrimSpace(string(expects)), strings.TrimSpace(string(actual)), msgAndArgs...) {
		t.Logf("snapshot %s, run with UPDATE_SNAPSHOTS=1 to accept the change", file)
	}
}

func write(t *testing.T, file string, data []byte) {
	t.Helper()

	logrus.WithField("filename", file).Info("writing snapshot file")
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0755))
	require.NoError(t, os.WriteFile(file, append(data, '\n'), 0644))
}
