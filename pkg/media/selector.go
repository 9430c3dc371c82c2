package media

import "strings"

// Type identifies which asset was chosen as the primary one.
type Type string

const (
	TypeVideo  Type = "video"
	TypeAudio  Type = "audio"
	TypeBanner Type = "banner"
	TypeImage  Type = "image"

	// TypeNone signals that nothing is renderable for the item.
	TypeNone Type = ""
)

// Assets holds the media fields of a content item's metadata, plus the
// item title used for fallbacks.
type Assets struct {
	Title      string
	VideoURL   string
	VideoTitle string
	AudioURL   string
	AudioTitle string
	BannerURL  string
	ImageURL   string
}

// Primary is the single asset chosen to represent a content item.
type Primary struct {
	Type  Type   `json:"type"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// SelectPrimary picks exactly one representative asset by fixed
// priority: video > audio > banner > image > none. The video title
// falls back to the literal "Video"; the audio title falls back to the
// item title when empty after trimming; banner and image use the item
// title directly.
func SelectPrimary(a Assets) Primary {
	switch {
	case a.VideoURL != "":
		title := a.VideoTitle
		if title == "" {
			title = "Video"
		}
		return Primary{Type: TypeVideo, URL: a.VideoURL, Title: title}

	case a.AudioURL != "":
		title := strings.TrimSpace(a.AudioTitle)
		if title == "" {
			title = a.Title
		}
		return Primary{Type: TypeAudio, URL: a.AudioURL, Title: title}

	case a.BannerURL != "":
		return Primary{Type: TypeBanner, URL: a.BannerURL, Title: a.Title}

	case a.ImageURL != "":
		return Primary{Type: TypeImage, URL: a.ImageURL, Title: a.Title}
	}

	return Primary{Type: TypeNone}
}
