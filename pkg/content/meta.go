package content

import (
	"strings"
	"time"
	"unicode"

	"github.com/davideasaf/neuralnotes/pkg/media"
)

// SentinelDate is substituted when a document carries no date. It
// parses cleanly and sorts such items to the far past.
const SentinelDate = "1970-01-01"

// Meta is implemented by both metadata variants.
type Meta interface {
	Base() *BaseMeta
}

// BaseMeta holds the fields common to every content kind.
type BaseMeta struct {
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
	Draft    bool     `json:"draft"`

	HasVideo bool `json:"hasVideo,omitempty"`
	HasAudio bool `json:"hasAudio,omitempty"`

	BannerURL  string `json:"bannerUrl,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
	VideoURL   string `json:"videoUrl,omitempty"`
	VideoTitle string `json:"videoTitle,omitempty"`
	AudioURL   string `json:"audioUrl,omitempty"`
	AudioTitle string `json:"audioTitle,omitempty"`
}

func (m *BaseMeta) Base() *BaseMeta { return m }

// Assets exposes the media fields for primary-media selection.
func (m *BaseMeta) Assets() media.Assets {
	return media.Assets{
		Title:      m.Title,
		VideoURL:   m.VideoURL,
		VideoTitle: m.VideoTitle,
		AudioURL:   m.AudioURL,
		AudioTitle: m.AudioTitle,
		BannerURL:  m.BannerURL,
		ImageURL:   m.ImageURL,
	}
}

// Time parses the item date. The zero time marks an unparseable date;
// the resolver sorts those last.
func (m *BaseMeta) Time() time.Time {
	s := strings.TrimSpace(m.Date)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339,
		time.DateOnly,
		time.DateTime,
		"2006-01-02 15:04",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// NoteMeta is the metadata of a "neural note" (blog post).
type NoteMeta struct {
	BaseMeta

	Excerpt  string `json:"excerpt,omitempty"`
	Author   string `json:"author"`
	ReadTime string `json:"readTime"`
}

// ProjectMeta is the metadata of a portfolio project.
type ProjectMeta struct {
	BaseMeta

	Description string   `json:"description,omitempty"`
	GitHub      string   `json:"github,omitempty"`
	Demo        string   `json:"demo,omitempty"`
	Status      string   `json:"status,omitempty"`
	KeyFeatures []string `json:"keyFeatures"`
}

func baseMetaFromFields(f Fields, slug string) BaseMeta {
	title := f.String("title")
	if title == "" {
		title = TitleFromSlug(slug)
	}
	date := f.String("date")
	if date == "" {
		date = SentinelDate
	}

	return BaseMeta{
		Title:      title,
		Date:       date,
		Tags:       f.Tags(),
		Featured:   f.Bool("featured"),
		Draft:      f.Bool("draft"),
		HasVideo:   f.Bool("hasVideo"),
		HasAudio:   f.Bool("hasAudio"),
		BannerURL:  f.String("banner"),
		ImageURL:   f.String("image"),
		VideoURL:   f.String("videoUrl"),
		VideoTitle: f.String("videoTitle"),
		AudioURL:   f.String("audioUrl"),
		AudioTitle: f.String("audioTitle"),
	}
}

func noteMetaFromFields(f Fields, slug string, defaultAuthor string) NoteMeta {
	author := f.String("author")
	if author == "" {
		author = defaultAuthor
	}
	return NoteMeta{
		BaseMeta: baseMetaFromFields(f, slug),
		Excerpt:  f.String("excerpt"),
		Author:   author,
	}
}

func projectMetaFromFields(f Fields, slug string) ProjectMeta {
	return ProjectMeta{
		BaseMeta:    baseMetaFromFields(f, slug),
		Description: f.String("description"),
		GitHub:      f.String("github"),
		Demo:        f.String("demo"),
		Status:      f.String("status"),
		KeyFeatures: f.Strings("keyFeatures"),
	}
}

// TitleFromSlug derives a presentable title from a slug:
// "my-first-note" becomes "My First Note".
func TitleFromSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_' || r == '/'
	})
	for i, w := range words {
		runes := []rune(w)
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
