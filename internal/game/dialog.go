package game

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/spectral-circles/internal/audio"
)

// SelectFile asks the user for an audio file. It returns an empty path if the
// dialog was canceled.
func SelectFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Extensions,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
