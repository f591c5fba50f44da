// Package panel holds the display timings and configuration consumed by the
// st7701s command layer.
//
// Timings follow the DRM display mode layout: each axis is described by the
// visible size and the positions where sync starts, sync ends and the line
// or frame ends. The porch values programmed into the chip are derived from
// these positions.
package panel

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Mode is a panel timing.
type Mode struct {
	Clock uint32 `yaml:"clock"` // pixel clock in kHz

	HDisplay   uint32 `yaml:"hdisplay"`
	HSyncStart uint32 `yaml:"hsync_start"`
	HSyncEnd   uint32 `yaml:"hsync_end"`
	HTotal     uint32 `yaml:"htotal"`

	VDisplay   uint32 `yaml:"vdisplay"`
	VSyncStart uint32 `yaml:"vsync_start"`
	VSyncEnd   uint32 `yaml:"vsync_end"`
	VTotal     uint32 `yaml:"vtotal"`

	WidthMM  uint32 `yaml:"width_mm"`
	HeightMM uint32 `yaml:"height_mm"`
}

// HBackPorch returns htotal - hsync_end.
func (m Mode) HBackPorch() uint32 {
	return m.HTotal - m.HSyncEnd
}

// VBackPorch returns vtotal - vsync_end.
func (m Mode) VBackPorch() uint32 {
	return m.VTotal - m.VSyncEnd
}

// VFrontPorch returns vsync_start - vdisplay.
func (m Mode) VFrontPorch() uint32 {
	return m.VSyncStart - m.VDisplay
}

// Validate checks that positions are ordered and that every porch fits in the
// one-byte registers of the chip.
func (m Mode) Validate() error {
	if m.HDisplay == 0 || m.VDisplay == 0 {
		return errors.New("panel: display size must be non-zero")
	}
	if !(m.HDisplay <= m.HSyncStart && m.HSyncStart <= m.HSyncEnd && m.HSyncEnd <= m.HTotal) {
		return fmt.Errorf("panel: horizontal timings out of order: %d/%d/%d/%d",
			m.HDisplay, m.HSyncStart, m.HSyncEnd, m.HTotal)
	}
	if !(m.VDisplay <= m.VSyncStart && m.VSyncStart <= m.VSyncEnd && m.VSyncEnd <= m.VTotal) {
		return fmt.Errorf("panel: vertical timings out of order: %d/%d/%d/%d",
			m.VDisplay, m.VSyncStart, m.VSyncEnd, m.VTotal)
	}
	for name, v := range map[string]uint32{
		"horizontal back porch": m.HBackPorch(),
		"vertical back porch":   m.VBackPorch(),
		"vertical front porch":  m.VFrontPorch(),
	} {
		if v > 0xFF {
			return fmt.Errorf("panel: %s %d does not fit in a byte", name, v)
		}
	}
	return nil
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d@%dkHz", m.HDisplay, m.VDisplay, m.Clock)
}

// DefaultMode is the 480x854 timing of the Linux ST7701 DSI driver.
var DefaultMode = Mode{
	Clock: 27500,

	HDisplay:   480,
	HSyncStart: 480 + 38,
	HSyncEnd:   480 + 38 + 12,
	HTotal:     480 + 38 + 12 + 12,

	VDisplay:   854,
	VSyncStart: 854 + 18,
	VSyncEnd:   854 + 18 + 8,
	VTotal:     854 + 18 + 8 + 4,

	WidthMM:  69,
	HeightMM: 139,
}

// TDOMode is the 480x480 timing of the TDO panel reference code.
var TDOMode = Mode{
	Clock: 16000,

	HDisplay:   480,
	HSyncStart: 480 + 24,
	HSyncEnd:   480 + 24 + 6,
	HTotal:     480 + 24 + 6 + 18,

	VDisplay:   480,
	VSyncStart: 480 + 16,
	VSyncEnd:   480 + 16 + 4,
	VTotal:     480 + 16 + 4 + 10,

	WidthMM:  69,
	HeightMM: 139,
}

// CVTMode is a 480x480 VESA CVT timing.
var CVTMode = Mode{
	Clock: 17000,

	HDisplay:   480,
	HSyncStart: 480 + 8,
	HSyncEnd:   480 + 8 + 48,
	HTotal:     480 + 8 + 48 + 56,

	VDisplay:   480,
	VSyncStart: 480 + 1,
	VSyncEnd:   480 + 1 + 3,
	VTotal:     480 + 1 + 3 + 13,

	WidthMM:  69,
	HeightMM: 139,
}

// CVTRBMode is a VESA CVT reduced-blanking timing.
//
// The horizontal positions are computed from a 480 pixel line while
// HDisplay is 640, exactly as in the vendor table; Validate rejects it.
var CVTRBMode = Mode{
	Clock: 23500,

	HDisplay:   640,
	HSyncStart: 480 + 8,
	HSyncEnd:   480 + 8 + 32,
	HTotal:     480 + 8 + 32 + 40,

	VDisplay:   480,
	VSyncStart: 480 + 14,
	VSyncEnd:   480 + 14 + 3,
	VTotal:     480 + 14 + 3 + 4,

	WidthMM:  69,
	HeightMM: 139,
}

var modes = map[string]Mode{
	"default": DefaultMode,
	"tdo":     TDOMode,
	"cvt":     CVTMode,
	"cvt-rb":  CVTRBMode,
}

// ModeByName returns one of the predefined timings: "default", "tdo", "cvt"
// or "cvt-rb".
func ModeByName(name string) (Mode, error) {
	m, ok := modes[strings.ToLower(name)]
	if !ok {
		return Mode{}, fmt.Errorf("panel: unknown mode %q (known: %s)", name, strings.Join(ModeNames(), ", "))
	}
	return m, nil
}

// ModeNames returns the names accepted by ModeByName, sorted.
func ModeNames() []string {
	names := make([]string, 0, len(modes))
	for n := range modes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
