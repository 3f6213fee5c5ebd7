package storagex

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestDecodeDataURL(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4e, 0x47})
	img, err := DecodeDataURL("recipes", "data:image/png;base64,"+payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(img.Key, "recipes/") || !strings.HasSuffix(img.Key, ".png") {
		t.Fatalf("unexpected key %q", img.Key)
	}
	if img.ContentType != "image/png" {
		t.Fatalf("unexpected content type %q", img.ContentType)
	}
	if len(img.Data) != 4 {
		t.Fatalf("unexpected data length %d", len(img.Data))
	}
}

func TestDecodeDataURLRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"not a data url",
		"data:image/png;base64,@@@@",
		"data:text/plain;base64,aGk=",
		"data:image/png;base64,",
	}
	for _, raw := range cases {
		if _, err := DecodeDataURL("recipes", raw); !errors.Is(err, ErrBadDataURL) {
			t.Fatalf("input %q: want ErrBadDataURL, got %v", raw, err)
		}
	}
}
