package fileutil

import (
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/overheadlabs/spacenet/awsutil"
	"github.com/overheadlabs/spacenet/errors"
)

// NewReader opens a local or remote path for reading. If the path looks like
// "s3://bucket/path/to/object" then this will read an object from S3. If it
// looks like an http(s) URL it will issue a GET. Otherwise, this will read a
// path from the local filesystem.
func NewReader(path string) (io.ReadCloser, error) {
	if awsutil.IsS3URI(path) {
		return awsutil.NewS3Reader(path)
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		resp, err := http.Get(path)
		if err != nil {
			return nil, errors.Errorf("error getting %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			defer resp.Body.Close()
			io.Copy(ioutil.Discard, resp.Body)
			return nil, errors.Errorf("error getting %s: status code %d", path, resp.StatusCode)
		}
		return resp.Body, nil
	}

	return os.Open(path)
}

// ReadFile reads the contents of a local or remote path.
func ReadFile(path string) ([]byte, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ioutil.ReadAll(r)
}

// NamedWriteCloser is a file-like object extending io.WriteCloser with a
// string Name() similar to os.File.Name()
type NamedWriteCloser interface {
	io.WriteCloser
	Name() string
}

// NewBufferedWriter opens a local or remote path for writing. If the path
// starts with "s3://", then this will write to a local buffer, copying to s3
// on close. Otherwise, this will write to the local FS.
func NewBufferedWriter(path string) (NamedWriteCloser, error) {
	if awsutil.IsS3URI(path) {
		return awsutil.NewBufferedS3Writer(path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// ListDir returns the fully qualified names for the members of the provided
// directory. If the directory is local these will simply be the paths, if the
// directory is on s3 then these will be the keys to the entries prefixed with
// the bucket uri.
func ListDir(path string) ([]string, error) {
	if awsutil.IsS3URI(path) {
		trimmed := strings.TrimPrefix(path, "s3://")

		parts := strings.SplitN(trimmed, "/", 2)
		bucket := parts[0]
		var prefix string
		if len(parts) > 1 {
			prefix = parts[1]
		}

		keys, err := awsutil.S3ListObjects("", bucket, prefix)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading from s3 path %s", path)
		}

		var paths []string
		for _, key := range keys {
			paths = append(paths, Join("s3://", bucket, key))
		}
		return paths, nil
	}

	entries, err := ioutil.ReadDir(path)
	if err != nil {
		return nil, errors.Errorf("error reading dir %s: %v", path, err)
	}

	var paths []string
	for _, entry := range entries {
		paths = append(paths, Join(path, entry.Name()))
	}
	return paths, nil
}
