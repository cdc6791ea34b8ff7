package recognition

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

// IdentifyInput holds the parameters for one identification call.
type IdentifyInput struct {
	// ImageBase64 is the image as standard base64, optionally as a data URI.
	ImageBase64 string
	Language    string
}

type image struct {
	data     []byte
	mimeType string
}

// decode validates the input and returns the raw image and language.
func (i IdentifyInput) decode(maxBytes int) (image, domain.Language, error) {
	var errs []domain.FieldError

	img, imgErr := decodeImage(i.ImageBase64, maxBytes)
	if imgErr != "" {
		errs = append(errs, domain.FieldError{Field: "image_base64", Message: imgErr})
	}

	lang, err := domain.ParseLanguage(i.Language)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "target_language", Message: "unsupported language"})
	}

	if len(errs) > 0 {
		return image{}, "", domain.NewValidationErrors(errs)
	}
	return img, lang, nil
}

// decodeImage returns the image or a validation message.
func decodeImage(s string, maxBytes int) (image, string) {
	s = strings.TrimSpace(s)
	declared := ""
	if rest, ok := strings.CutPrefix(s, "data:"); ok {
		header, payload, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return image{}, "unsupported data URI"
		}
		declared = strings.TrimSuffix(header, ";base64")
		s = payload
	}
	if s == "" {
		return image{}, "required"
	}
	if maxBytes > 0 && base64.StdEncoding.DecodedLen(len(s)) > maxBytes+2 {
		return image{}, fmt.Sprintf("image exceeds %d bytes", maxBytes)
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(s)
	}
	if err != nil {
		return image{}, "invalid base64"
	}
	if len(data) == 0 {
		return image{}, "required"
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return image{}, fmt.Sprintf("image exceeds %d bytes", maxBytes)
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		if !strings.HasPrefix(declared, "image/") {
			return image{}, "not an image"
		}
		mimeType = declared
	}
	return image{data: data, mimeType: mimeType}, ""
}
