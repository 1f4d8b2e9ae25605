package text2docx

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// PageBreak is the input character that marks an explicit page boundary.
const PageBreak = "\x0C"

// Default option values.
const (
	DefaultPageSize      = "a4"
	DefaultMargin        = 10.0 // mm, each side
	DefaultFontSize      = 14.0 // pt
	DefaultFont          = "lc"
	DefaultEastAsianFont = "hge"
)

// HeaderFooterDistance is the fixed distance in mm between the page edge and
// the header or footer.
const HeaderFooterDistance = 5.0

// PageSize is a page width and height in millimeters, portrait.
type PageSize struct {
	Width  float64
	Height float64
}

// PageSizes maps preset names to portrait page dimensions.
var PageSizes = map[string]PageSize{
	"a3":     {297, 420},
	"b4":     {257, 364},
	"a4":     {210, 297},
	"b5":     {182, 257},
	"a5":     {148, 210},
	"hagaki": {100, 148},
}

// Fonts maps Latin-script font presets to font names.
var Fonts = map[string]string{
	"lc":  "Lucida Console",
	"lst": "Lucida Sans Typewriter",
}

// EastAsianFonts maps East-Asian font presets to font names.
var EastAsianFonts = map[string]string{
	"biz":    "BIZ UDゴシック",
	"hg":     "HGｺﾞｼｯｸ",
	"hge":    "HGｺﾞｼｯｸE",
	"hgm":    "HGｺﾞｼｯｸM",
	"meiryo": "メイリオ",
	"yu":     "游ゴシック",
	"ms":     "ＭＳ ゴシック",
}

// Preset keys in display order; maps do not keep one.
var (
	pageSizeOrder      = []string{"a3", "b4", "a4", "b5", "a5", "hagaki"}
	fontOrder          = []string{"lc", "lst"}
	eastAsianFontOrder = []string{"biz", "hg", "hge", "hgm", "meiryo", "yu", "ms"}
)

// PageSizeNames returns the page size presets in display order.
func PageSizeNames() []string { return append([]string(nil), pageSizeOrder...) }

// FontNames returns the Latin font presets in display order.
func FontNames() []string { return append([]string(nil), fontOrder...) }

// EastAsianFontNames returns the East-Asian font presets in display order.
func EastAsianFontNames() []string { return append([]string(nil), eastAsianFontOrder...) }

// ResolveFont returns the font name for a preset, or name itself when it is
// not a preset.
func ResolveFont(name string) string {
	if f, ok := Fonts[name]; ok {
		return f
	}
	return name
}

// ResolveEastAsianFont returns the font name for an East-Asian preset, or
// name itself when it is not a preset.
func ResolveEastAsianFont(name string) string {
	if f, ok := EastAsianFonts[name]; ok {
		return f
	}
	return name
}

// Margins are page margins in millimeters.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// UniformMargins returns margins of v millimeters on every side.
func UniformMargins(v float64) Margins {
	return Margins{Top: v, Bottom: v, Left: v, Right: v}
}

// Options configures document assembly.
type Options struct {
	PageSize  string  // preset name, used unless Width and Height are set
	Width     float64 // mm, explicit page width
	Height    float64 // mm, explicit page height
	Landscape bool    // swap width and height
	Margins   Margins

	// Columns is the number of text columns: 0 for a single column, or 2 or 3.
	Columns int

	FontSize      float64 // pt
	Font          string  // preset or literal font name
	EastAsianFont string  // preset or literal font name
	EastAsianLang string  // BCP 47 tag, optional

	Header string // field code, empty for no header
	Footer string // field code, empty for no footer

	Title  string
	Author string
}

// DefaultOptions returns options with every documented default applied.
func DefaultOptions() Options {
	return Options{
		PageSize:      DefaultPageSize,
		Margins:       UniformMargins(DefaultMargin),
		FontSize:      DefaultFontSize,
		Font:          DefaultFont,
		EastAsianFont: DefaultEastAsianFont,
	}
}

// Validate checks that options are consistent.
func (o *Options) Validate() error {
	if o.Width != 0 || o.Height != 0 {
		if o.Width <= 0 || o.Height <= 0 {
			return fmt.Errorf("%w: %gx%g (width and height must both be positive)", ErrInvalidDimensions, o.Width, o.Height)
		}
	} else if _, ok := PageSizes[strings.ToLower(o.PageSize)]; !ok {
		return fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidPageSize, o.PageSize, strings.Join(pageSizeOrder, ", "))
	}

	m := o.Margins
	if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 {
		return fmt.Errorf("%w: %g %g %g %g (must not be negative)", ErrInvalidMargin, m.Top, m.Bottom, m.Left, m.Right)
	}

	switch o.Columns {
	case 0, 2, 3:
	default:
		return fmt.Errorf("%w: %d (must be 2 or 3)", ErrInvalidColumns, o.Columns)
	}

	if o.FontSize <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidFontSize, o.FontSize)
	}
	if strings.TrimSpace(o.Font) == "" || strings.TrimSpace(o.EastAsianFont) == "" {
		return ErrEmptyFontName
	}

	if o.EastAsianLang != "" {
		if _, err := language.Parse(o.EastAsianLang); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, o.EastAsianLang, err)
		}
	}

	return nil
}

// Dimensions returns the page width and height in millimeters after applying
// orientation. Explicit dimensions take precedence over the preset; landscape
// swaps the pair in both cases.
func (o *Options) Dimensions() (width, height float64, err error) {
	if o.Width > 0 && o.Height > 0 {
		width, height = o.Width, o.Height
	} else {
		size, ok := PageSizes[strings.ToLower(o.PageSize)]
		if !ok {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPageSize, o.PageSize)
		}
		width, height = size.Width, size.Height
	}
	if o.Landscape {
		width, height = height, width
	}
	return width, height, nil
}

// eastAsianLangTag returns the canonical form of the East-Asian language tag.
// Validate must have accepted the options.
func (o *Options) eastAsianLangTag() string {
	if o.EastAsianLang == "" {
		return ""
	}
	tag, err := language.Parse(o.EastAsianLang)
	if err != nil {
		return o.EastAsianLang
	}
	return tag.String()
}
