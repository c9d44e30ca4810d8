package fileutil

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReaderLocal(t *testing.T) {
	dir, err := ioutil.TempDir("", "")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "foo")
	require.NoError(t, ioutil.WriteFile(path, []byte("hello"), 0644))

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	buf, err := ioutil.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf))

	_, err = NewReader(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestListDirLocal(t *testing.T) {
	dir, err := ioutil.TempDir("", "")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	for _, name := range []string{"a.geojson", "b.geojson"} {
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	paths, err := ListDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.geojson"),
		filepath.Join(dir, "b.geojson"),
	}, paths)

	_, err = ListDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestNewBufferedWriterLocal(t *testing.T) {
	dir, err := ioutil.TempDir("", "")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	// intermediate directories are created
	path := filepath.Join(dir, "nested", "out.json")
	w, err := NewBufferedWriter(path)
	require.NoError(t, err)

	_, err = w.Write([]byte(`{"id":"x"}`))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	buf, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"x"}`, string(buf))
}
