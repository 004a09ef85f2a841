package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// DecodeBase64Image splits a data URI such as "data:image/png;base64,...."
// into its decoded bytes and content type.
func DecodeBase64Image(encodedImage string) ([]byte, string, error) {
	header, payload, found := strings.Cut(encodedImage, ",")
	if !found || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, "", errors.New("invalid base64 image")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}

	contentType := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	return data, contentType, nil
}

func ValidateImageFormat(contentType string, allowedFormats []string) error {
	for _, format := range allowedFormats {
		if contentType == format {
			return nil
		}
	}
	return fmt.Errorf("invalid image format. Allowed formats are: %s", strings.Join(allowedFormats, ", "))
}

func ValidateImageSize(data []byte, maxSize int) error {
	if len(data) > maxSize*1024*1024 {
		return fmt.Errorf("image exceeds maximum allowed size of %dMB", maxSize)
	}
	return nil
}

// ValidateBase64Image checks a doctor portrait sent inline as a data URI.
func ValidateBase64Image(encodedImage string, allowedFormats []string, maxSizeInMegabytes int) error {
	data, contentType, err := DecodeBase64Image(encodedImage)
	if err != nil {
		return err
	}

	err = ValidateImageFormat(contentType, allowedFormats)
	if err != nil {
		return err
	}

	return ValidateImageSize(data, maxSizeInMegabytes)
}
