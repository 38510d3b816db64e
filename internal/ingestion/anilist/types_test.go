package anilist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestExtractAnime(t *testing.T) {
	t.Run("prefers english title and trailer", func(t *testing.T) {
		got, err := ExtractAnime(MediaData{
			ID:          1,
			Title:       TitleData{English: strPtr("Cowboy Bebop"), Romaji: strPtr("Kaubōi Bibappu")},
			Description: strPtr("Space <i>bounty</i> hunters.<br>Jazz &amp; noir."),
			Episodes:    intPtr(26),
			SeasonYear:  intPtr(1998),
			StartDate:   FuzzyDate{Year: intPtr(1997)},
			CoverImage:  CoverImage{Large: strPtr("https://img/large.jpg"), Medium: strPtr("https://img/medium.jpg")},
			Trailer:     &Trailer{ID: "abc", Site: "youtube"},
			SiteURL:     "https://anilist.co/anime/1",
			Genres:      []string{"Action"},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, got.AniListID)
		assert.Equal(t, "Cowboy Bebop", got.Title)
		assert.Equal(t, "Space bounty hunters.\nJazz & noir.", got.Description)
		assert.Equal(t, "https://img/large.jpg", got.ImageURL)
		assert.Equal(t, "https://www.youtube.com/watch?v=abc", got.VideoURL)
		assert.Equal(t, 1998, *got.Year)
		assert.Equal(t, 26, *got.Episodes)
		assert.Equal(t, []string{"Action"}, got.Genres)
	})

	t.Run("falls back to romaji, start year and site url", func(t *testing.T) {
		got, err := ExtractAnime(MediaData{
			ID:        2,
			Title:     TitleData{English: strPtr("  "), Romaji: strPtr("Mushishi")},
			StartDate: FuzzyDate{Year: intPtr(2005)},
			SiteURL:   "https://anilist.co/anime/2",
		})

		require.NoError(t, err)
		assert.Equal(t, "Mushishi", got.Title)
		assert.Equal(t, 2005, *got.Year)
		assert.Equal(t, "https://anilist.co/anime/2", got.VideoURL)
		assert.Nil(t, got.Episodes)
		assert.Empty(t, got.Description)
	})

	t.Run("builds a url when nothing else is known", func(t *testing.T) {
		got, err := ExtractAnime(MediaData{ID: 3, Title: TitleData{Native: strPtr("蟲師")}})

		require.NoError(t, err)
		assert.Equal(t, "蟲師", got.Title)
		assert.Equal(t, "https://anilist.co/anime/3", got.VideoURL)
		assert.Nil(t, got.Year)
	})

	t.Run("rejects media without any title", func(t *testing.T) {
		_, err := ExtractAnime(MediaData{ID: 4})
		assert.Error(t, err)
	})
}

func TestTrailerURL(t *testing.T) {
	tests := []struct {
		name    string
		trailer *Trailer
		want    string
	}{
		{"nil", nil, ""},
		{"youtube", &Trailer{ID: "x1", Site: "youtube"}, "https://www.youtube.com/watch?v=x1"},
		{"dailymotion", &Trailer{ID: "x2", Site: "Dailymotion"}, "https://www.dailymotion.com/video/x2"},
		{"unknown site", &Trailer{ID: "x3", Site: "vimeo"}, ""},
		{"missing id", &Trailer{Site: "youtube"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrailerURL(tt.trailer))
		})
	}
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "a\nb", CleanDescription("a<br>b"))
	assert.Equal(t, `"quoted" & bold`, CleanDescription("  &quot;quoted&quot; &amp; <b>bold</b> "))
}
