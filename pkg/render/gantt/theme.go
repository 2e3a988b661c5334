package gantt

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Haston00/DABO/pkg/errors"
)

// Theme holds the presentational knobs of the SVG renderer. Geometry
// (row pitch, bar floors, arrow insets) is fixed by the layout contract
// and deliberately absent here.
type Theme struct {
	// Bar fills. Critical red and task blue follow the DABO dashboard
	// palette.
	CriticalFill  string `toml:"critical_fill"`
	TaskFill      string `toml:"task_fill"`
	FloatFill     string `toml:"float_fill"`
	MilestoneFill string `toml:"milestone_fill"`
	GroupBarFill  string `toml:"group_bar_fill"`

	// Chart chrome.
	MonthBandFill string `toml:"month_band_fill"`
	WeekBandFill  string `toml:"week_band_fill"`
	RowStripeFill string `toml:"row_stripe_fill"`
	GridStroke    string `toml:"grid_stroke"`
	ArrowStroke   string `toml:"arrow_stroke"`
	TodayStroke   string `toml:"today_stroke"`

	// Text.
	TextColor  string `toml:"text_color"`
	MutedColor string `toml:"muted_color"`
	FontFamily string `toml:"font_family"`
	FontSize   int    `toml:"font_size"`

	// TablePaneWidth is the width of the left activity table in pixels.
	TablePaneWidth float64 `toml:"table_pane_width"`
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	return Theme{
		CriticalFill:   "#d32f2f",
		TaskFill:       "#1976d2",
		FloatFill:      "#90caf9",
		MilestoneFill:  "#37474f",
		GroupBarFill:   "#455a64",
		MonthBandFill:  "#eceff1",
		WeekBandFill:   "#f5f7f8",
		RowStripeFill:  "#fafafa",
		GridStroke:     "#e0e0e0",
		ArrowStroke:    "#607d8b",
		TodayStroke:    "#d32f2f",
		TextColor:      "#212121",
		MutedColor:     "#757575",
		FontFamily:     "Helvetica, Arial, sans-serif",
		FontSize:       12,
		TablePaneWidth: 250,
	}
}

// LoadTheme reads a TOML theme file. Fields omitted from the file keep
// their default values, so a theme can override just one color.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return theme, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme file %s", path)
		}
		return theme, errors.Wrap(errors.ErrCodeInternal, err, "read theme %s", path)
	}

	if err := toml.Unmarshal(data, &theme); err != nil {
		return DefaultTheme(), errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme %s", path)
	}

	if theme.TablePaneWidth <= 0 {
		theme.TablePaneWidth = DefaultTheme().TablePaneWidth
	}
	if theme.FontSize <= 0 {
		theme.FontSize = DefaultTheme().FontSize
	}

	return theme, nil
}
