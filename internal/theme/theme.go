// Package theme holds the site branding configuration applied at page render.
package theme

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Default branding values. Served whenever no stored theme exists or the
// lookup fails, so pages always render.
const (
	DefaultPrimaryColor      = "#EF4444"
	DefaultSecondaryColor    = "#1F2937"
	DefaultGradientDirection = "135deg"
	DefaultSiteName          = "Sri Jaidev Tours & Travels"
	DefaultLogo              = "/SriJaidev-tours-logo.png"
)

// Theme is the singleton branding record.
type Theme struct {
	ID                string    `json:"id"`
	SiteName          string    `json:"siteName"`
	Logo              string    `json:"logo"`
	Favicon           string    `json:"favicon,omitempty"`
	PrimaryColor      string    `json:"primaryColor"`
	SecondaryColor    string    `json:"secondaryColor"`
	GradientDirection string    `json:"gradientDirection"`
	IsActive          bool      `json:"isActive"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// Default returns the hardcoded fallback theme.
func Default() *Theme {
	return &Theme{
		ID:                "default",
		SiteName:          DefaultSiteName,
		Logo:              DefaultLogo,
		PrimaryColor:      DefaultPrimaryColor,
		SecondaryColor:    DefaultSecondaryColor,
		GradientDirection: DefaultGradientDirection,
		IsActive:          true,
		LastUpdated:       time.Now().UTC(),
	}
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks the fields an admin is allowed to set.
func (t *Theme) Validate() error {
	if strings.TrimSpace(t.SiteName) == "" {
		return fmt.Errorf("theme: site name is required")
	}
	if !hexColorRe.MatchString(t.PrimaryColor) {
		return fmt.Errorf("theme: primary color must be a #RRGGBB value")
	}
	if !hexColorRe.MatchString(t.SecondaryColor) {
		return fmt.Errorf("theme: secondary color must be a #RRGGBB value")
	}
	if t.GradientDirection != "" && !strings.HasSuffix(t.GradientDirection, "deg") {
		return fmt.Errorf("theme: gradient direction must end in deg")
	}
	return nil
}

// normalize fills unset fields from the defaults so a partial admin update
// never blanks the public site.
func (t *Theme) normalize() {
	if t.ID == "" {
		t.ID = "default"
	}
	if t.SiteName == "" {
		t.SiteName = DefaultSiteName
	}
	if t.Logo == "" {
		t.Logo = DefaultLogo
	}
	if t.PrimaryColor == "" {
		t.PrimaryColor = DefaultPrimaryColor
	}
	if t.SecondaryColor == "" {
		t.SecondaryColor = DefaultSecondaryColor
	}
	if t.GradientDirection == "" {
		t.GradientDirection = DefaultGradientDirection
	}
}

// CSSVariables renders the :root block injected into the document head.
// Includes HSL transforms of both brand colors for component libraries that
// expect HSL triples.
func (t *Theme) CSSVariables() string {
	primaryHSL := HexToHSL(t.PrimaryColor)
	secondaryHSL := HexToHSL(t.SecondaryColor)
	return fmt.Sprintf(`:root {
  --admin-primary: %s;
  --admin-secondary: %s;
  --admin-gradient: linear-gradient(%s, %s 0%%, %s 100%%);
  --admin-primary-hsl: %s;
  --admin-secondary-hsl: %s;
  --sidebar-primary: %s;
  --sidebar-ring: %s;
}`,
		t.PrimaryColor,
		t.SecondaryColor,
		t.GradientDirection, t.PrimaryColor, t.SecondaryColor,
		primaryHSL,
		secondaryHSL,
		primaryHSL,
		primaryHSL,
	)
}

// HexToHSL converts "#RRGGBB" to a "H S% L%" triple. Malformed input maps to
// "0 0% 0%".
func HexToHSL(hex string) string {
	if !hexColorRe.MatchString(hex) {
		return "0 0% 0%"
	}
	r := hexComponent(hex[1:3])
	g := hexComponent(hex[3:5])
	b := hexComponent(hex[5:7])

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))

	h, s := 0.0, 0.0
	l := (max + min) / 2

	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return fmt.Sprintf("%d %d%% %d%%",
		int(math.Round(h*360)),
		int(math.Round(s*100)),
		int(math.Round(l*100)),
	)
}

func hexComponent(s string) float64 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return float64(v) / 255
}
