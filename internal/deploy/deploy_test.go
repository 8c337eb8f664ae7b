package deploy

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	puts []putCall
}

type putCall struct {
	bucket      string
	key         string
	contentType string
	body        string
}

func (f *fakePutter) PutObject(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.puts = append(f.puts, putCall{
		bucket:      *input.Bucket,
		key:         *input.Key,
		contentType: *input.ContentType,
		body:        string(data),
	})
	return &s3.PutObjectOutput{}, nil
}

func (f *fakePutter) byKey(key string) (putCall, bool) {
	for _, p := range f.puts {
		if p.key == key {
			return p, true
		}
	}
	return putCall{}, false
}

func TestUploadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "about"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>home</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "about", "index.html"), []byte("<html>about</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644))

	fake := &fakePutter{}
	u := NewUploader(fake, "my-site", "v1")

	count, err := u.UploadDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	home, ok := fake.byKey("v1/index.html")
	require.True(t, ok)
	assert.Equal(t, "my-site", home.bucket)
	assert.Equal(t, "<html>home</html>", home.body)
	assert.True(t, strings.HasPrefix(home.contentType, "text/html"))

	about, ok := fake.byKey("v1/about/index.html")
	require.True(t, ok)
	assert.Equal(t, "<html>about</html>", about.body)

	css, ok := fake.byKey("v1/style.css")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(css.contentType, "text/css"))
}

func TestUploadDirNoPrefix(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("x"), 0o644))

	fake := &fakePutter{}
	u := NewUploader(fake, "my-site", "")

	_, err := u.UploadDir(context.Background(), dir)
	require.NoError(t, err)

	_, ok := fake.byKey("index.html")
	assert.True(t, ok)
}

func TestNewClientRequiresCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	_, err := NewClient("us-east-1")
	require.Error(t, err)
}

func TestContentTypeFallback(t *testing.T) {
	assert.Equal(t, "application/octet-stream", contentType("file.unknownext"))
}
