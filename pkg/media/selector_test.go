package media

import "testing"

func TestSelectPrimary(t *testing.T) {
	all := Assets{
		Title:      "My Post",
		VideoURL:   "https://youtu.be/dQw4w9WgXcQ",
		VideoTitle: "Demo Video",
		AudioURL:   "https://cdn.example.com/a.mp3",
		AudioTitle: "Episode 1",
		BannerURL:  "/images/banner.png",
		ImageURL:   "/images/cover.png",
	}

	tests := []struct {
		name      string
		assets    Assets
		wantType  Type
		wantURL   string
		wantTitle string
	}{
		{
			name:      "Video Wins Over Everything",
			assets:    all,
			wantType:  TypeVideo,
			wantURL:   all.VideoURL,
			wantTitle: "Demo Video",
		},
		{
			name: "Video Title Falls Back To Literal",
			assets: Assets{
				Title:    "My Post",
				VideoURL: all.VideoURL,
			},
			wantType:  TypeVideo,
			wantURL:   all.VideoURL,
			wantTitle: "Video",
		},
		{
			name: "Audio Over Banner",
			assets: Assets{
				Title:      "My Post",
				AudioURL:   all.AudioURL,
				AudioTitle: "Episode 1",
				BannerURL:  all.BannerURL,
			},
			wantType:  TypeAudio,
			wantURL:   all.AudioURL,
			wantTitle: "Episode 1",
		},
		{
			name: "Blank Audio Title Falls Back To Item Title",
			assets: Assets{
				Title:      "My Post",
				AudioURL:   all.AudioURL,
				AudioTitle: "   ",
			},
			wantType:  TypeAudio,
			wantURL:   all.AudioURL,
			wantTitle: "My Post",
		},
		{
			name: "Banner Over Image",
			assets: Assets{
				Title:     "My Post",
				BannerURL: all.BannerURL,
				ImageURL:  all.ImageURL,
			},
			wantType:  TypeBanner,
			wantURL:   all.BannerURL,
			wantTitle: "My Post",
		},
		{
			name: "Image Last",
			assets: Assets{
				Title:    "My Post",
				ImageURL: all.ImageURL,
			},
			wantType:  TypeImage,
			wantURL:   all.ImageURL,
			wantTitle: "My Post",
		},
		{
			name:     "Nothing Renderable",
			assets:   Assets{Title: "My Post"},
			wantType: TypeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectPrimary(tt.assets)
			if got.Type != tt.wantType {
				t.Errorf("SelectPrimary() type = %q, want %q", got.Type, tt.wantType)
			}
			if got.URL != tt.wantURL {
				t.Errorf("SelectPrimary() url = %q, want %q", got.URL, tt.wantURL)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("SelectPrimary() title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}
