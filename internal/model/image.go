package model

// ImageAsset is either a dereferenced asset (ID and URL) or, inside rich
// text bodies, an unresolved reference carrying only Ref and Type.
type ImageAsset struct {
	ID   string `json:"_id,omitempty"`
	URL  string `json:"url,omitempty"`
	Ref  string `json:"_ref,omitempty"`
	Type string `json:"_type,omitempty"`
}

type Image struct {
	Asset   *ImageAsset `json:"asset,omitempty"`
	Alt     string      `json:"alt,omitempty"`
	Caption string      `json:"caption,omitempty"`
}
