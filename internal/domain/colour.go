package domain

import "fmt"

// Colour is a list colour from the fixed palette.
type Colour struct {
	Code string
	Name string
}

var (
	White  = Colour{Code: "#FFFFFF", Name: "White"}
	Red    = Colour{Code: "#FF5733", Name: "Red"}
	Orange = Colour{Code: "#FFC300", Name: "Orange"}
	Yellow = Colour{Code: "#FFFF66", Name: "Yellow"}
	Green  = Colour{Code: "#CCFF99", Name: "Green"}
	Blue   = Colour{Code: "#6666FF", Name: "Blue"}
	Purple = Colour{Code: "#9966CC", Name: "Purple"}
	Grey   = Colour{Code: "#999999", Name: "Grey"}
)

var palette = []Colour{White, Red, Orange, Yellow, Green, Blue, Purple, Grey}

// ColourFrom resolves a hex code to a palette colour.
func ColourFrom(code string) (Colour, error) {
	for _, c := range palette {
		if c.Code == code {
			return c, nil
		}
	}
	return Colour{}, fmt.Errorf("%w: %s", ErrUnsupportedColour, code)
}

// SupportedColours returns the palette in display order.
func SupportedColours() []Colour {
	out := make([]Colour, len(palette))
	copy(out, palette)
	return out
}

func (c Colour) String() string {
	return c.Code
}
