package storagex

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrBadDataURL is returned for payloads that are not base64 image data URLs.
var ErrBadDataURL = errors.New("invalid image data url")

var imageExt = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// DecodedImage is an uploaded image ready to be stored.
type DecodedImage struct {
	Key         string
	ContentType string
	Data        []byte
}

// DecodeDataURL parses a "data:image/...;base64,..." payload and assigns a
// random storage key under the given folder.
func DecodeDataURL(folder, raw string) (*DecodedImage, error) {
	if !strings.HasPrefix(raw, "data:") {
		return nil, ErrBadDataURL
	}
	meta, payload, ok := strings.Cut(raw[len("data:"):], ";base64,")
	if !ok {
		return nil, ErrBadDataURL
	}
	ext, known := imageExt[meta]
	if !known {
		return nil, fmt.Errorf("%w: unsupported type %q", ErrBadDataURL, meta)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDataURL, err)
	}
	if len(data) == 0 {
		return nil, ErrBadDataURL
	}
	key := fmt.Sprintf("%s/%s.%s", strings.Trim(folder, "/"), uuid.NewString(), ext)
	return &DecodedImage{Key: key, ContentType: meta, Data: data}, nil
}
