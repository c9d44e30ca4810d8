package awsutil

import (
	"io"
	"io/ioutil"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/overheadlabs/spacenet/envutil"
	"github.com/overheadlabs/spacenet/errors"
)

var defaultRegion = envutil.GetenvDefault("AWS_REGION", "us-east-1")

// IsS3URI returns true if the path is an s3 uri.
func IsS3URI(path string) bool {
	return strings.HasPrefix(path, "s3://")
}

// ValidateURI parses the given uri and checks that it points to S3.
func ValidateURI(uri string) (*url.URL, error) {
	s3url, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}
	if s3url.Scheme != "s3" {
		return nil, errors.Errorf("%s is not an s3 uri", uri)
	}
	return s3url, nil
}

// NewS3 creates an s3 client in the given region, or the default region if
// empty.
func NewS3(region string) (*s3.S3, error) {
	if region == "" {
		region = defaultRegion
	}
	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	return s3.New(sess, aws.NewConfig().WithRegion(region)), nil
}

func bucketRegion(bucket string) (string, error) {
	client, err := NewS3("")
	if err != nil {
		return "", err
	}

	out, err := client.GetBucketLocation(&s3.GetBucketLocationInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return "", err
	}

	// an empty location constraint means us-east-1
	if out.LocationConstraint == nil {
		return "us-east-1", nil
	}
	return *out.LocationConstraint, nil
}

// NewS3Reader returns an io.ReadCloser that will read the contents of the
// object pointed to by the uri. URI will be of the form
// s3://bucket-name/path/to/object
func NewS3Reader(uri string) (io.ReadCloser, error) {
	s3url, err := ValidateURI(uri)
	if err != nil {
		return nil, err
	}

	region, err := bucketRegion(s3url.Host)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to determine region for %s", uri)
	}

	client, err := NewS3(region)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s3url.Host),
		Key:    aws.String(strings.TrimPrefix(s3url.Path, "/")),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error getting %s", uri)
	}
	return out.Body, nil
}

// S3ListObjects lists the objects in an s3 bucket with a given prefix.
// Size-zero objects are skipped since they typically correspond to
// directories and are thus not fetchable.
func S3ListObjects(region, bucket, prefix string) ([]string, error) {
	client, err := NewS3(region)
	if err != nil {
		return nil, err
	}

	params := &s3.ListObjectsInput{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	var keys []string
	err = client.ListObjectsPages(params, func(p *s3.ListObjectsOutput, lastPage bool) bool {
		for _, obj := range p.Contents {
			if *obj.Size == 0 {
				continue
			}
			keys = append(keys, *obj.Key)
		}
		return true
	})
	if err != nil {
		return nil, errors.Errorf("error listing objects in `%s` (%s): %v", bucket, region, err)
	}
	return keys, nil
}

type bufferedS3Writer struct {
	f     *os.File
	s3url *url.URL
}

// Write writes to the local buffer file
func (w bufferedS3Writer) Write(p []byte) (int, error) {
	return w.f.Write(p)
}

// Close flushes the buffer to disk, copies it to s3, and removes the buffer
func (w bufferedS3Writer) Close() error {
	defer os.Remove(w.f.Name())
	defer w.f.Close()

	w.f.Sync()
	if _, err := w.f.Seek(0, 0); err != nil {
		return err
	}

	region, err := bucketRegion(w.s3url.Host)
	if err != nil {
		return errors.Wrapf(err, "unable to determine region for %s", w.s3url)
	}

	client, err := NewS3(region)
	if err != nil {
		return err
	}

	_, err = client.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(w.s3url.Host),
		Key:    aws.String(strings.TrimPrefix(w.s3url.Path, "/")),
		Body:   w.f,
	})
	return err
}

func (w bufferedS3Writer) Name() string {
	return w.s3url.String()
}

// NamedWriteCloser is a file-like object extending io.WriteCloser with a
// string Name() similar to os.File.Name()
type NamedWriteCloser interface {
	io.WriteCloser
	Name() string
}

// NewBufferedS3Writer returns an io.WriteCloser that will write to disk and
// upload to S3 on Close
func NewBufferedS3Writer(uri string) (NamedWriteCloser, error) {
	s3url, err := ValidateURI(uri)
	if err != nil {
		return nil, err
	}

	f, err := ioutil.TempFile("", "s3buffer")
	if err != nil {
		return nil, err
	}
	return bufferedS3Writer{f: f, s3url: s3url}, nil
}
