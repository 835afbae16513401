package content

import (
	"fmt"

	"github.com/CortexBlog/blog-service/internal/model"
)

const (
	DefaultImageWidth  = 800
	DefaultImageHeight = 600
)

// URLBuilder appends the default resize parameters to an image URL.
func URLBuilder(source string) string {
	return resized(source, DefaultImageWidth, DefaultImageHeight)
}

// ImageURL returns a resized URL for img, or "" when the image has no
// resolved asset URL. Non-positive dimensions fall back to the defaults.
func ImageURL(img *model.Image, width, height int) string {
	if img == nil || img.Asset == nil || img.Asset.URL == "" {
		return ""
	}
	if width <= 0 && height <= 0 {
		return URLBuilder(img.Asset.URL)
	}
	if width <= 0 {
		width = DefaultImageWidth
	}
	if height <= 0 {
		height = DefaultImageHeight
	}
	return resized(img.Asset.URL, width, height)
}

func resized(source string, width, height int) string {
	return fmt.Sprintf("%s?w=%d&h=%d&fit=crop&crop=center", source, width, height)
}
