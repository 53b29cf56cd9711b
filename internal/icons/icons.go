package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Audio      string
	Play       string
	Pause      string
	Stop       string
	Loop       string
	Volume     string
	VolumeMute string
}

var (
	nerdIcons = Icons{
		Audio:      "\uf001 ",    // nf-fa-music
		Play:       "\uf04b",     // nf-fa-play
		Pause:      "\uf04c",     // nf-fa-pause
		Stop:       "\uf04d",     // nf-fa-stop
		Loop:       "\U000f0456", // nf-md-repeat
		Volume:     "\U000f057e", // nf-md-volume_high
		VolumeMute: "\U000f0581", // nf-md-volume_off
	}

	unicodeIcons = Icons{
		Audio:      "🎵 ",
		Play:       "▶",
		Pause:      "⏸",
		Stop:       "⏹",
		Loop:       "🔁",
		Volume:     "🔊",
		VolumeMute: "🔇",
	}

	noneIcons = Icons{
		Audio:      "",
		Play:       ">",
		Pause:      "||",
		Stop:       "[]",
		Loop:       "[L]",
		Volume:     "vol",
		VolumeMute: "mute",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init selects the icon set. Unknown styles fall back to unicode.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// FormatAudio formats a track title with the appropriate icon.
func FormatAudio(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}

func Play() string { return current.Play }

func Pause() string { return current.Pause }

func Stop() string { return current.Stop }

// Loop marks a selection that is playing in a loop.
func Loop() string { return current.Loop }

func Volume() string { return current.Volume }

func VolumeMute() string { return current.VolumeMute }
