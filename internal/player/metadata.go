package player

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dhowden/tag"
)

// TrackInfo describes the current source.
type TrackInfo struct {
	Path       string
	Title      string
	Artist     string
	Album      string
	Year       int
	Track      int
	Duration   time.Duration
	SampleRate int
	Format     string
}

// DisplayTitle returns "Artist - Title", or the title alone.
func (t *TrackInfo) DisplayTitle() string {
	if t == nil {
		return ""
	}
	if t.Artist == "" {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}

// ReadTrackInfo reads tag metadata from path. Duration is left zero.
func ReadTrackInfo(path string) (*TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	title := m.Title()
	if title == "" {
		title = filepath.Base(path)
	}
	track, _ := m.Track()

	artist := m.Artist()
	if artist == "" {
		artist = m.AlbumArtist()
	}

	return &TrackInfo{
		Path:   path,
		Title:  title,
		Artist: artist,
		Album:  m.Album(),
		Year:   m.Year(),
		Track:  track,
	}, nil
}
