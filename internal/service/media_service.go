package service

import (
	"context"
	"net/http"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/latedash/internal/client"
	"github.com/maheshrc27/latedash/internal/transfer"
)

// image types the post composer accepts
var allowedMediaTypes = map[string]bool{
	"png":  true,
	"jpg":  true,
	"gif":  true,
	"webp": true,
}

type MediaService interface {
	Upload(ctx context.Context, filename string, data []byte) (string, *client.Error)
}

type mediaService struct {
	c *client.Client
}

func NewMediaService(c *client.Client) MediaService {
	return &mediaService{c: c}
}

// Upload sends the file as multipart form data and returns the first
// uploaded file's URL. Uploads never touch the cache.
func (s *mediaService) Upload(ctx context.Context, filename string, data []byte) (string, *client.Error) {
	if len(data) == 0 {
		return "", client.Validation([]string{"No files selected"})
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == types.Unknown || !allowedMediaTypes[kind.Extension] {
		return "", client.Validation([]string{"Unsupported media type: only PNG, JPG, GIF and WebP images are accepted"})
	}

	raw, cerr := s.c.Execute(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/media",
		Files: []client.File{{
			Field:       "files",
			Name:        filename,
			ContentType: kind.MIME.Value,
			Data:        data,
		}},
	})
	if cerr != nil {
		return "", cerr
	}

	var resp transfer.MediaUploadResponse
	if cerr := decodeInto(raw, &resp); cerr != nil {
		return "", cerr
	}
	if len(resp.Files) == 0 {
		return "", client.Unknown("upload response contained no files")
	}

	return resp.Files[0].URL, nil
}
