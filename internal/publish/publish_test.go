package publish

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upload struct {
	bucket, key, contentType string
	size                     int64
	body                     string
}

type fakeS3 struct {
	mu      sync.Mutex
	uploads []upload
	err     error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, upload{
		bucket:      aws.ToString(in.Bucket),
		key:         aws.ToString(in.Key),
		contentType: aws.ToString(in.ContentType),
		size:        aws.ToInt64(in.ContentLength),
		body:        string(body),
	})
	return &s3.PutObjectOutput{}, nil
}

func TestS3_Publish(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := testutil.WriteFiles(t, map[string]string{
		"office.idf":       "Version, 9.0;",
		"run/eplusout.csv": "a,b\n1,2\n",
	})
	fake := &fakeS3{}
	p := newS3(fake, "results", "/runs/42/")

	uris, err := p.Publish(ctx,
		filepath.Join(dir, "office.idf"),
		filepath.Join(dir, "missing.idf"),
		"",
		filepath.Join(dir, "run", "eplusout.csv"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"s3://results/runs/42/office.idf", "s3://results/runs/42/eplusout.csv"}, uris)
	require.Len(t, fake.uploads, 2)
	assert.Equal(t, upload{
		bucket:      "results",
		key:         "runs/42/office.idf",
		contentType: "text/plain; charset=utf-8",
		size:        13,
		body:        "Version, 9.0;",
	}, fake.uploads[0])
	assert.Equal(t, "text/csv; charset=utf-8", fake.uploads[1].contentType)
}

func TestS3_PublishError(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := testutil.WriteFiles(t, map[string]string{"a.idf": "x"})
	p := newS3(&fakeS3{err: errors.New("access denied")}, "b", "")

	uris, err := p.Publish(ctx, filepath.Join(dir, "a.idf"))
	require.ErrorContains(t, err, "s3://b/a.idf")
	require.ErrorContains(t, err, "access denied")
	assert.Empty(t, uris)
}

func TestS3_KeyWithoutPrefix(t *testing.T) {
	assert.Equal(t, "model.idf", newS3(&fakeS3{}, "b", "").Key("/tmp/x/model.idf"))
}

func TestNewS3_RequiresBucket(t *testing.T) {
	_, err := NewS3(context.Background(), Options{})
	require.Error(t, err)
}

func TestUploadToURL(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := testutil.WriteFiles(t, map[string]string{"model.idf": "Version, 9.0;"})

	var gotBody, gotType, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody, gotType, gotMethod = string(b), r.Header.Get("Content-Type"), r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, UploadToURL(ctx, srv.Client(), filepath.Join(dir, "model.idf"), srv.URL+"/signed?sig=abc"))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "Version, 9.0;", gotBody)
	assert.Equal(t, "text/plain; charset=utf-8", gotType)
}

func TestUploadToURL_Rejected(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := testutil.WriteFiles(t, map[string]string{"model.idf": "x"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := UploadToURL(ctx, srv.Client(), filepath.Join(dir, "model.idf"), srv.URL)
	require.ErrorContains(t, err, "403")
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/plain; charset=utf-8", ContentType("in.IDF"))
	assert.Equal(t, "application/octet-stream", ContentType("run.ckpt"))
}
