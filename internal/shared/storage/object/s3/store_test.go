package s3

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"resume-matcher/internal/shared/storage/object"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "jane/cv.pdf", want: "jane/cv.pdf"},
		{name: "simple prefix", prefix: "resumes", key: "jane/cv.pdf", want: "resumes/jane/cv.pdf"},
		{name: "prefix trailing slash", prefix: "resumes/", key: "jane/cv.pdf", want: "resumes/jane/cv.pdf"},
		{name: "prefix and key slashes", prefix: "/resumes/", key: "/jane/cv.pdf", want: "resumes/jane/cv.pdf"},
		{name: "nested prefix", prefix: "resumes/2024", key: "jane/cv.pdf", want: "resumes/2024/jane/cv.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

type fakeS3 struct {
	gotBucket string
	gotKey    string
	body      string
	err       error
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.gotBucket = aws.ToString(in.Bucket)
	f.gotKey = aws.ToString(in.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestOpen(t *testing.T) {
	fake := &fakeS3{body: "resume bytes"}
	store := &Store{client: fake, bucket: "cvs", prefix: "uploads"}

	rc, err := store.Open(context.Background(), "jane/cv.pdf")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)

	if string(data) != "resume bytes" {
		t.Fatalf("body = %q", data)
	}
	if fake.gotBucket != "cvs" || fake.gotKey != "uploads/jane/cv.pdf" {
		t.Fatalf("got bucket=%s key=%s", fake.gotBucket, fake.gotKey)
	}
}

func TestOpenErrors(t *testing.T) {
	store := &Store{client: &fakeS3{err: errors.New("NoSuchKey")}, bucket: "cvs"}
	if _, err := store.Open(context.Background(), "missing.pdf"); err == nil || !strings.Contains(err.Error(), "NoSuchKey") {
		t.Fatalf("expected wrapped NoSuchKey error, got %v", err)
	}
	if _, err := store.Open(context.Background(), " / "); !errors.Is(err, object.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestOpenMissingKeyIsNotExist(t *testing.T) {
	store := &Store{client: &fakeS3{err: &s3types.NoSuchKey{}}, bucket: "cvs"}
	if _, err := store.Open(context.Background(), "gone.pdf"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}
