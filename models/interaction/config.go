package interaction

import mp "github.com/armadagame/armada-backend/models/placement"

// Config is read by all device managers on each event. It is
// replaced atomically through Controller.UpdateConfig.
type Config struct {
	GridSize            int     `json:"grid_size"`
	CellSize            float64 `json:"cell_size"`
	EnableTouch         bool    `json:"enable_touch"`
	EnableKeyboard      bool    `json:"enable_keyboard"`
	EnableAccessibility bool    `json:"enable_accessibility"`
}

func DefaultConfig() Config {
	return Config{
		GridSize:            int(mp.DefaultGridSize),
		CellSize:            40,
		EnableTouch:         true,
		EnableKeyboard:      true,
		EnableAccessibility: true,
	}
}

// ConfigPatch is a partial config; nil fields keep their current
// value on merge.
type ConfigPatch struct {
	GridSize            *int     `json:"grid_size,omitempty"`
	CellSize            *float64 `json:"cell_size,omitempty"`
	EnableTouch         *bool    `json:"enable_touch,omitempty"`
	EnableKeyboard      *bool    `json:"enable_keyboard,omitempty"`
	EnableAccessibility *bool    `json:"enable_accessibility,omitempty"`
}

func (c Config) merge(patch ConfigPatch) Config {
	if patch.GridSize != nil {
		c.GridSize = *patch.GridSize
	}
	if patch.CellSize != nil {
		c.CellSize = *patch.CellSize
	}
	if patch.EnableTouch != nil {
		c.EnableTouch = *patch.EnableTouch
	}
	if patch.EnableKeyboard != nil {
		c.EnableKeyboard = *patch.EnableKeyboard
	}
	if patch.EnableAccessibility != nil {
		c.EnableAccessibility = *patch.EnableAccessibility
	}
	return c
}
