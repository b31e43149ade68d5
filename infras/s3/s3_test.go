package s3

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"testing"

	"grandhotel/config"
	"grandhotel/infras/otel/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	put     *s3.PutObjectInput
	body    []byte
	deleted *s3.DeleteObjectInput
	err     error
}

func (f *fakeStore) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.put = params
	f.body, _ = io.ReadAll(params.Body)

	return &s3.PutObjectOutput{}, nil
}

func (f *fakeStore) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = params

	return &s3.DeleteObjectOutput{}, f.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "hotel"
	cfg.External.S3.PublicDomain = "https://cdn.grandhotel.test"
	cfg.External.S3.APIEndpoint = "https://s3.grandhotel.test"

	return cfg
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}

	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestUpload(t *testing.T) {
	store := &fakeStore{}
	svc := newWithClient(store, testConfig(), mocks.NewOtel())

	url, err := svc.Upload(context.Background(), "govt-ids", "b-1.pdf", "application/pdf", []byte("%PDF"))
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.grandhotel.test/govt-ids/b-1.pdf", url)
	assert.Equal(t, "hotel", aws.ToString(store.put.Bucket))
	assert.Equal(t, "application/pdf", aws.ToString(store.put.ContentType))
	assert.Equal(t, []byte("%PDF"), store.body)

	store.err = errors.New("boom")
	_, err = svc.Upload(context.Background(), "govt-ids", "b-2.pdf", "application/pdf", []byte("x"))
	assert.Error(t, err)
}

func TestUploadImage(t *testing.T) {
	store := &fakeStore{}
	svc := newWithClient(store, testConfig(), mocks.NewOtel())

	url, err := svc.UploadImage(context.Background(), "rooms", "suite.png", pngBytes(t, 1600, 400))
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.grandhotel.test/rooms/suite.jpg", url)

	img, err := jpeg.Decode(bytes.NewReader(store.body))
	assert.NoError(t, err)
	assert.Equal(t, GalleryWidth, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	_, err = svc.UploadImage(context.Background(), "rooms", "broken.png", []byte("not an image"))
	assert.Error(t, err)
}

func TestResizeJPEG_KeepsSmallImages(t *testing.T) {
	out, err := ResizeJPEG(pngBytes(t, 320, 240), GalleryWidth)
	assert.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
}

func TestDeleteFile(t *testing.T) {
	store := &fakeStore{}
	svc := newWithClient(store, testConfig(), mocks.NewOtel())

	assert.NoError(t, svc.DeleteFile(context.Background(), "rooms", "suite.jpg"))
	assert.Equal(t, "rooms/suite.jpg", aws.ToString(store.deleted.Key))
}

func TestGetObjectNameFromURL(t *testing.T) {
	svc := newWithClient(&fakeStore{}, testConfig(), mocks.NewOtel())

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "public domain", url: "https://cdn.grandhotel.test/rooms/suite.jpg", want: "rooms/suite.jpg"},
		{name: "api endpoint", url: "https://s3.grandhotel.test/hotel/rooms/suite.jpg", want: "rooms/suite.jpg"},
		{name: "foreign", url: "https://images.unsplash.com/photo.jpg", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.GetObjectNameFromURL(tt.url))
		})
	}
}
