package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"videxcl-srv/internal/model"
	"videxcl-srv/internal/thumbnail"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/minio"
	"videxcl-srv/pkg/vision"
)

type fakeThumbnailRepo struct {
	unprocessed []string
	listLimit   int
	listErr     error

	annotated map[string]bool

	annotations []model.ThumbnailAnnotation
	cropouts    []model.ThumbnailCropout
	createErr   error
}

func (f *fakeThumbnailRepo) ListUnprocessedVideoIDs(_ context.Context, limit int) ([]string, error) {
	f.listLimit = limit
	return f.unprocessed, f.listErr
}

func (f *fakeThumbnailRepo) AnnotationsExist(_ context.Context, videoID string) (bool, error) {
	return f.annotated[videoID], nil
}

func (f *fakeThumbnailRepo) CreateAnnotations(_ context.Context, annotations []model.ThumbnailAnnotation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.annotations = append(f.annotations, annotations...)
	return nil
}

func (f *fakeThumbnailRepo) CreateCropout(_ context.Context, cropout model.ThumbnailCropout) error {
	f.cropouts = append(f.cropouts, cropout)
	return nil
}

// fakeImageClient serves image bytes for an allow-listed set of URLs and 404s
// the rest.
type fakeImageClient struct {
	images map[string][]byte
}

func (f *fakeImageClient) Get(_ context.Context, _ string, _ map[string]string) ([]byte, int, error) {
	return nil, http.StatusNotFound, nil
}

func (f *fakeImageClient) Post(_ context.Context, _ string, _ interface{}, _ map[string]string) ([]byte, int, error) {
	return nil, http.StatusNotFound, nil
}

func (f *fakeImageClient) Download(_ context.Context, url string) (io.ReadCloser, int, error) {
	data, ok := f.images[url]
	if !ok {
		return io.NopCloser(bytes.NewReader(nil)), http.StatusNotFound, nil
	}
	return io.NopCloser(bytes.NewReader(data)), http.StatusOK, nil
}

type fakeVision struct {
	mu        sync.Mutex
	objects   []vision.Annotation
	faces     []vision.Annotation
	err       error
	annotated int
}

func (f *fakeVision) AnnotateObjects(_ context.Context, _ []byte) ([]vision.Annotation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.annotated++
	return f.objects, f.err
}

func (f *fakeVision) AnnotateFaces(_ context.Context, _ []byte) ([]vision.Annotation, error) {
	return f.faces, f.err
}

type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeObjectStore) Connect(context.Context) error { return nil }
func (f *fakeObjectStore) HealthCheck(context.Context) error { return nil }
func (f *fakeObjectStore) EnsureBucket(context.Context, string) error { return nil }
func (f *fakeObjectStore) Close() error { return nil }
func (f *fakeObjectStore) RemoveObject(_ context.Context, _, _ string) error { return nil }

func (f *fakeObjectStore) ObjectExists(_ context.Context, _, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[name]
	return ok, nil
}

func (f *fakeObjectStore) GetObject(_ context.Context, _, _ string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeObjectStore) PutObject(_ context.Context, req *minio.PutRequest) (*minio.ObjectInfo, error) {
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[req.ObjectName] = data
	return &minio.ObjectInfo{ObjectName: req.ObjectName, Size: int64(len(data))}, nil
}

type fakeThumbProducer struct {
	mu       sync.Mutex
	units    []model.ThumbnailUnit
	crops    []model.CropUnit
	unitErr  map[string]error
	cropFail bool
}

func (f *fakeThumbProducer) PublishProcessUnit(_ context.Context, unit model.ThumbnailUnit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.unitErr[unit.VideoID]; ok {
		return err
	}
	f.units = append(f.units, unit)
	return nil
}

func (f *fakeThumbProducer) PublishCropUnit(_ context.Context, unit model.CropUnit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cropFail {
		return errors.New("broker down")
	}
	f.crops = append(f.crops, unit)
	return nil
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func thumbURL(videoID, name string) string {
	return fmt.Sprintf("https://i.ytimg.com/vi/%s/%s.jpg", videoID, name)
}

func newTestUseCase(repo *fakeThumbnailRepo, v *fakeVision, client *fakeImageClient, store *fakeObjectStore, producer *fakeThumbProducer) thumbnail.UseCase {
	return New(log.NewNop(), repo, v, client, store, producer, Config{
		CropoutsBucket:    "videxcl-cropouts",
		DispatchLimit:     500,
		CropMinConfidence: 0.7,
		WorkerLimit:       4,
	})
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("fans out unprocessed videos", func(t *testing.T) {
		repo := &fakeThumbnailRepo{unprocessed: []string{"v1", "v2"}}
		producer := &fakeThumbProducer{}
		uc := newTestUseCase(repo, &fakeVision{}, &fakeImageClient{}, &fakeObjectStore{}, producer)

		output, err := uc.Dispatch(ctx, thumbnail.DispatchInput{
			Dispatch: model.ThumbnailDispatch{RunID: "run-1", CropObjects: true},
		})
		if err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if output.Candidates != 2 || output.Dispatched != 2 {
			t.Errorf("output = %+v, want 2/2", output)
		}
		if repo.listLimit != 500 {
			t.Errorf("limit = %d, want the configured default", repo.listLimit)
		}
		for _, unit := range producer.units {
			if unit.RunID != "run-1" || !unit.CropObjects {
				t.Errorf("unit = %+v", unit)
			}
		}
	})

	t.Run("explicit limit overrides the default", func(t *testing.T) {
		repo := &fakeThumbnailRepo{}
		uc := newTestUseCase(repo, &fakeVision{}, &fakeImageClient{}, &fakeObjectStore{}, &fakeThumbProducer{})

		if _, err := uc.Dispatch(ctx, thumbnail.DispatchInput{
			Dispatch: model.ThumbnailDispatch{RunID: "run-1", Limit: 25},
		}); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if repo.listLimit != 25 {
			t.Errorf("limit = %d, want 25", repo.listLimit)
		}
	})

	t.Run("partial publish failure surfaces", func(t *testing.T) {
		repo := &fakeThumbnailRepo{unprocessed: []string{"v1", "v2"}}
		producer := &fakeThumbProducer{unitErr: map[string]error{"v1": errors.New("broker down")}}
		uc := newTestUseCase(repo, &fakeVision{}, &fakeImageClient{}, &fakeObjectStore{}, producer)

		output, err := uc.Dispatch(ctx, thumbnail.DispatchInput{
			Dispatch: model.ThumbnailDispatch{RunID: "run-1"},
		})
		if err != thumbnail.ErrPublishFailed {
			t.Fatalf("err = %v, want ErrPublishFailed", err)
		}
		if output.Dispatched != 1 || len(producer.units) != 1 || producer.units[0].VideoID != "v2" {
			t.Errorf("output = %+v, units = %v", output, producer.units)
		}
	})
}

func TestProcess(t *testing.T) {
	ctx := context.Background()
	img := testPNG(t, 120, 90)

	t.Run("classifies best thumbnail per slot", func(t *testing.T) {
		repo := &fakeThumbnailRepo{}
		// Slot one falls back past maxresdefault to hqdefault; slot two has
		// its best candidate; slots three and four have nothing.
		client := &fakeImageClient{images: map[string][]byte{
			thumbURL("v1", "hqdefault"): img,
			thumbURL("v1", "sd1"):       img,
		}}
		v := &fakeVision{
			objects: []vision.Annotation{
				{Label: "Person", Confidence: 0.9, BottomRightX: 0.5, BottomRightY: 0.5},
				{Label: "Dog", Confidence: 0.95, BottomRightX: 0.5, BottomRightY: 0.5},
			},
			faces: []vision.Annotation{
				{Label: "Face", Confidence: 0.8, BottomRightX: 0.3, BottomRightY: 0.3},
			},
		}
		producer := &fakeThumbProducer{}
		uc := newTestUseCase(repo, v, client, &fakeObjectStore{}, producer)

		output, err := uc.Process(ctx, thumbnail.ProcessInput{
			Unit: model.ThumbnailUnit{RunID: "run-1", VideoID: "v1", CropObjects: true},
		})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}

		if output.Thumbnails != 2 {
			t.Errorf("Thumbnails = %d, want 2", output.Thumbnails)
		}
		if output.Annotations != 6 || len(repo.annotations) != 6 {
			t.Errorf("Annotations = %d (stored %d), want 6", output.Annotations, len(repo.annotations))
		}
		// Person and Face are croppable, Dog is not: 2 per thumbnail.
		if output.CropUnits != 4 || len(producer.crops) != 4 {
			t.Errorf("CropUnits = %d (published %d), want 4", output.CropUnits, len(producer.crops))
		}
		for _, a := range repo.annotations {
			if a.VideoID != "v1" || a.ProcessedAt.IsZero() {
				t.Errorf("annotation = %+v", a)
			}
		}
	})

	t.Run("already annotated video is skipped", func(t *testing.T) {
		repo := &fakeThumbnailRepo{annotated: map[string]bool{"v1": true}}
		v := &fakeVision{}
		uc := newTestUseCase(repo, v, &fakeImageClient{}, &fakeObjectStore{}, &fakeThumbProducer{})

		output, err := uc.Process(ctx, thumbnail.ProcessInput{
			Unit: model.ThumbnailUnit{RunID: "run-1", VideoID: "v1"},
		})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if !output.Skipped || v.annotated != 0 {
			t.Errorf("output = %+v, vision calls = %d", output, v.annotated)
		}
	})

	t.Run("no thumbnails found", func(t *testing.T) {
		repo := &fakeThumbnailRepo{}
		uc := newTestUseCase(repo, &fakeVision{}, &fakeImageClient{}, &fakeObjectStore{}, &fakeThumbProducer{})

		output, err := uc.Process(ctx, thumbnail.ProcessInput{
			Unit: model.ThumbnailUnit{RunID: "run-1", VideoID: "ghost"},
		})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if output.Thumbnails != 0 || len(repo.annotations) != 0 {
			t.Errorf("output = %+v", output)
		}
	})

	t.Run("all annotations failing leaves the video unprocessed", func(t *testing.T) {
		repo := &fakeThumbnailRepo{}
		client := &fakeImageClient{images: map[string][]byte{thumbURL("v1", "maxresdefault"): img}}
		v := &fakeVision{err: errors.New("api down")}
		uc := newTestUseCase(repo, v, client, &fakeObjectStore{}, &fakeThumbProducer{})

		if _, err := uc.Process(ctx, thumbnail.ProcessInput{
			Unit: model.ThumbnailUnit{RunID: "run-1", VideoID: "v1"},
		}); err != thumbnail.ErrAnnotationFailed {
			t.Fatalf("err = %v, want ErrAnnotationFailed", err)
		}
		if len(repo.annotations) != 0 {
			t.Errorf("stored %d annotations, want 0", len(repo.annotations))
		}
	})

	t.Run("low confidence detections are not cropped", func(t *testing.T) {
		repo := &fakeThumbnailRepo{}
		client := &fakeImageClient{images: map[string][]byte{thumbURL("v1", "maxresdefault"): img}}
		v := &fakeVision{objects: []vision.Annotation{
			{Label: "Person", Confidence: 0.5, BottomRightX: 0.5, BottomRightY: 0.5},
		}}
		producer := &fakeThumbProducer{}
		uc := newTestUseCase(repo, v, client, &fakeObjectStore{}, producer)

		output, err := uc.Process(ctx, thumbnail.ProcessInput{
			Unit: model.ThumbnailUnit{RunID: "run-1", VideoID: "v1", CropObjects: true},
		})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if output.CropUnits != 0 || len(producer.crops) != 0 {
			t.Errorf("CropUnits = %d, want 0", output.CropUnits)
		}
		if output.Annotations != 1 {
			t.Errorf("Annotations = %d, want 1 (still recorded)", output.Annotations)
		}
	})
}

func TestCrop(t *testing.T) {
	ctx := context.Background()
	url := thumbURL("v1", "hqdefault")

	t.Run("stores the cropped region", func(t *testing.T) {
		repo := &fakeThumbnailRepo{}
		client := &fakeImageClient{images: map[string][]byte{url: testPNG(t, 100, 50)}}
		store := &fakeObjectStore{}
		uc := newTestUseCase(repo, &fakeVision{}, client, store, &fakeThumbProducer{})

		output, err := uc.Crop(ctx, thumbnail.CropInput{Unit: model.CropUnit{
			RunID:        "run-1",
			VideoID:      "v1",
			ThumbnailURL: url,
			Label:        "Face",
			Confidence:   0.9,
			TopLeftX:     0.1,
			TopLeftY:     0.2,
			BottomRightX: 0.9,
			BottomRightY: 0.8,
		}})
		if err != nil {
			t.Fatalf("Crop: %v", err)
		}

		if !strings.HasPrefix(output.ObjectName, "v1/Face-") || !strings.HasSuffix(output.ObjectName, ".jpg") {
			t.Errorf("ObjectName = %s", output.ObjectName)
		}
		data, ok := store.objects[output.ObjectName]
		if !ok {
			t.Fatal("cropped object not stored")
		}
		cropped, err := jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode stored crop: %v", err)
		}
		if w, h := cropped.Bounds().Dx(), cropped.Bounds().Dy(); w != 80 || h != 30 {
			t.Errorf("crop size = %dx%d, want 80x30", w, h)
		}
		if len(repo.cropouts) != 1 || repo.cropouts[0].ObjectName != output.ObjectName {
			t.Errorf("cropouts = %v", repo.cropouts)
		}
	})

	t.Run("empty region is rejected", func(t *testing.T) {
		client := &fakeImageClient{images: map[string][]byte{url: testPNG(t, 100, 50)}}
		uc := newTestUseCase(&fakeThumbnailRepo{}, &fakeVision{}, client, &fakeObjectStore{}, &fakeThumbProducer{})

		_, err := uc.Crop(ctx, thumbnail.CropInput{Unit: model.CropUnit{
			VideoID:      "v1",
			ThumbnailURL: url,
			Label:        "Face",
			TopLeftX:     0.5,
			TopLeftY:     0.5,
			BottomRightX: 0.5,
			BottomRightY: 0.5,
		}})
		if err != thumbnail.ErrEmptyCropRegion {
			t.Errorf("err = %v, want ErrEmptyCropRegion", err)
		}
	})

	t.Run("undecodable image", func(t *testing.T) {
		client := &fakeImageClient{images: map[string][]byte{url: []byte("not an image")}}
		uc := newTestUseCase(&fakeThumbnailRepo{}, &fakeVision{}, client, &fakeObjectStore{}, &fakeThumbProducer{})

		_, err := uc.Crop(ctx, thumbnail.CropInput{Unit: model.CropUnit{
			VideoID:      "v1",
			ThumbnailURL: url,
			Label:        "Face",
			BottomRightX: 1,
			BottomRightY: 1,
		}})
		if err != thumbnail.ErrDecodeFailed {
			t.Errorf("err = %v, want ErrDecodeFailed", err)
		}
	})
}

func TestSanitizeThumbnailName(t *testing.T) {
	got := sanitizeThumbnailName("https://i.ytimg.com/vi/v1/hqdefault.jpg")
	want := "https_i_ytimg_com_vi_v1_hqdefault_jpg"
	if got != want {
		t.Errorf("sanitizeThumbnailName = %s, want %s", got, want)
	}
}

func TestCropoutObjectName(t *testing.T) {
	name := cropoutObjectName("v1", "Person", "https://i.ytimg.com/vi/v1/0.jpg")
	if !strings.HasPrefix(name, "v1/Person-") || !strings.HasSuffix(name, "-https_i_ytimg_com_vi_v1_0_jpg.jpg") {
		t.Errorf("cropoutObjectName = %s", name)
	}
}
