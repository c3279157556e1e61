package usecase

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"time"

	_ "image/gif"
	_ "image/png"

	"videxcl-srv/internal/model"
	"videxcl-srv/internal/thumbnail"
	"videxcl-srv/pkg/minio"
)

const jpegQuality = 90

// Crop downloads the source thumbnail, cuts out the detected region, and
// stores the result as a JPEG in the cropouts bucket.
func (uc *implUseCase) Crop(ctx context.Context, input thumbnail.CropInput) (thumbnail.CropOutput, error) {
	unit := input.Unit
	output := thumbnail.CropOutput{VideoID: unit.VideoID}

	data, err := uc.downloadImage(ctx, unit.ThumbnailURL)
	if err != nil {
		uc.l.Errorf(ctx, "thumbnail.usecase.Crop: download failed for %s: %v", unit.ThumbnailURL, err)
		return output, err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		uc.l.Errorf(ctx, "thumbnail.usecase.Crop: decode failed for %s: %v", unit.ThumbnailURL, err)
		return output, thumbnail.ErrDecodeFailed
	}

	cropped, err := cropRegion(src, unit)
	if err != nil {
		uc.l.Warnf(ctx, "thumbnail.usecase.Crop: %v (%s on %s)", err, unit.Label, unit.ThumbnailURL)
		return output, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, cropped, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return output, fmt.Errorf("%w: encode: %v", thumbnail.ErrDecodeFailed, err)
	}

	objectName := cropoutObjectName(unit.VideoID, unit.Label, unit.ThumbnailURL)
	_, err = uc.store.PutObject(ctx, &minio.PutRequest{
		BucketName:  uc.cfg.CropoutsBucket,
		ObjectName:  objectName,
		Reader:      &buf,
		Size:        int64(buf.Len()),
		ContentType: "image/jpeg",
	})
	if err != nil {
		uc.l.Errorf(ctx, "thumbnail.usecase.Crop: object store put failed for %s: %v", objectName, err)
		return output, thumbnail.ErrPersistFailed
	}

	cropout := model.ThumbnailCropout{
		VideoID:      unit.VideoID,
		Label:        unit.Label,
		ObjectName:   objectName,
		ThumbnailURL: unit.ThumbnailURL,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.repo.CreateCropout(ctx, cropout); err != nil {
		uc.l.Errorf(ctx, "thumbnail.usecase.Crop: persist failed for %s: %v", objectName, err)
		return output, thumbnail.ErrPersistFailed
	}

	output.ObjectName = objectName
	uc.l.Infof(ctx, "thumbnail.usecase.Crop: stored %s (video %s)", objectName, unit.VideoID)
	return output, nil
}

// cropRegion scales the relative bounding box to pixels and copies the region
// out of the source image.
func cropRegion(src image.Image, unit model.CropUnit) (image.Image, error) {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rect := image.Rect(
		bounds.Min.X+int(unit.TopLeftX*float64(width)),
		bounds.Min.Y+int(unit.TopLeftY*float64(height)),
		bounds.Min.X+int(unit.BottomRightX*float64(width)),
		bounds.Min.Y+int(unit.BottomRightY*float64(height)),
	).Intersect(bounds)
	if rect.Empty() {
		return nil, thumbnail.ErrEmptyCropRegion
	}

	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, nil
}
