package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"videxcl-srv/internal/thumbnail"
)

// A video exposes up to four thumbnail slots: the main thumbnail plus one
// auto-generated frame per third of the video. Each slot is served under
// several resolution-specific names; candidates are ordered best first and
// the first one that downloads wins.
var thumbnailSets = [][]string{
	{"maxresdefault", "hq720", "sddefault", "hqdefault", "0", "mqdefault", "default"},
	{"sd1", "hq1", "mq1", "1"},
	{"sd2", "hq2", "mq2", "2"},
	{"sd3", "hq3", "mq3", "3"},
}

const thumbnailURLPattern = "https://i.ytimg.com/vi/%s/%s.jpg"

type resolvedThumbnail struct {
	url  string
	data []byte
}

// resolveThumbnails returns the best available thumbnail per slot. Slots with
// no downloadable candidate are dropped silently; not every video has the
// auto-generated frames.
func (uc *implUseCase) resolveThumbnails(ctx context.Context, videoID string) []resolvedThumbnail {
	var thumbs []resolvedThumbnail
	for _, set := range thumbnailSets {
		for _, name := range set {
			url := fmt.Sprintf(thumbnailURLPattern, videoID, name)
			data, err := uc.downloadImage(ctx, url)
			if err != nil {
				continue
			}
			thumbs = append(thumbs, resolvedThumbnail{url: url, data: data})
			break
		}
	}
	return thumbs
}

func (uc *implUseCase) downloadImage(ctx context.Context, url string) ([]byte, error) {
	body, status, err := uc.httpClient.Download(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", thumbnail.ErrDownloadFailed, err)
	}
	defer body.Close()

	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d for %s", thumbnail.ErrDownloadFailed, status, url)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", thumbnail.ErrDownloadFailed, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty body for %s", thumbnail.ErrDownloadFailed, url)
	}
	return data, nil
}

// unsafeNameChars are the URL characters replaced before a thumbnail URL is
// embedded in an object name.
var unsafeNameChars = []string{":", "/", ".", "?", "#", "&", "=", "+"}

func sanitizeThumbnailName(url string) string {
	name := url
	for _, c := range unsafeNameChars {
		name = strings.ReplaceAll(name, c, "_")
	}
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return name
}

// cropoutObjectName builds the storage key of one cropped image. The random
// tail keeps multiple detections of the same label on the same thumbnail from
// overwriting each other.
func cropoutObjectName(videoID, label, thumbnailURL string) string {
	id := uuid.NewString()
	return fmt.Sprintf("%s/%s-%s-%s.jpg", videoID, label, id[len(id)-6:], sanitizeThumbnailName(thumbnailURL))
}
