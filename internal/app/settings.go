package app

import (
	"time"

	"github.com/llehouerou/scrubber/internal/config"
	"github.com/llehouerou/scrubber/internal/icons"
	"github.com/llehouerou/scrubber/internal/keymap"
	"github.com/llehouerou/scrubber/internal/ui/styles"
)

// ApplyAppearance installs the configured icon set and theme colors.
func ApplyAppearance(cfg *config.Config) {
	icons.Init(cfg.Icons)
	styles.Apply(styles.Palette{
		Primary:   cfg.Theme.Primary,
		Secondary: cfg.Theme.Secondary,
		Selection: cfg.Theme.Selection,
		Options:   cfg.Theme.Options,
		Muted:     cfg.Theme.Muted,
	})
}

// KeysFor builds the key resolver for cfg's key overrides.
func KeysFor(cfg *config.Config) (*keymap.Resolver, error) {
	bindings, err := keymap.WithOverrides(keymap.Bindings, cfg.Keys)
	if err != nil {
		return nil, err
	}
	return keymap.NewResolver(bindings), nil
}

// applyConfig switches the running model to cfg. Key overrides are checked
// first so a bad reload leaves the previous settings in place. It reports
// whether the input mode changed, which only takes effect after a restart.
func (m *Model) applyConfig(cfg *config.Config) (restart bool, err error) {
	keys, err := KeysFor(cfg)
	if err != nil {
		return false, err
	}

	ApplyAppearance(cfg)
	m.Keys = keys

	sc := cfg.GetScrubConfig()
	m.Bar.SetTuning(tuning(sc))
	m.tick = time.Duration(sc.TickMillis) * time.Millisecond

	pc := cfg.GetPlayerConfig()
	m.volumeStep = pc.VolumeStep

	restart = sc.InputMode != m.Config.GetScrubConfig().InputMode
	if restart {
		m.log.Warn("input mode change needs a restart", "mode", sc.InputMode)
	}
	m.Config = cfg
	return restart, nil
}
