package domain

var borderStyles = []BorderStyle{
	{ID: "classic", Name: "Classic", Pattern: "traditional temple motifs"},
	{ID: "peacock", Name: "Peacock", Pattern: "peacock feather design"},
	{ID: "floral", Name: "Floral", Pattern: "intricate floral patterns"},
	{ID: "geometric", Name: "Geometric", Pattern: "geometric shapes"},
}

var palluDesigns = []PalluDesign{
	{ID: "zari", Name: "Heavy Zari", Description: "Traditional gold zari work"},
	{ID: "dual", Name: "Dual Tone", Description: "Two-color combination"},
	{ID: "brocade", Name: "Brocade", Description: "Rich brocade patterns"},
	{ID: "simple", Name: "Simple", Description: "Minimalist design"},
}

var baseColors = []BaseColor{
	{ID: "maroon", Name: "Maroon", Hex: "#7B2C2C"},
	{ID: "gold", Name: "Gold", Hex: "#D6A93B"},
	{ID: "green", Name: "Green", Hex: "#2D5016"},
	{ID: "blue", Name: "Blue", Hex: "#1E40AF"},
	{ID: "red", Name: "Red", Hex: "#DC2626"},
	{ID: "purple", Name: "Purple", Hex: "#7C3AED"},
}

// Options returns the design option catalogs served to the builder UI.
func Options() DesignOptions {
	return DesignOptions{
		Borders: borderStyles,
		Pallus:  palluDesigns,
		Colors:  baseColors,
	}
}

// ValidBorder reports whether id names a known border style.
func ValidBorder(id string) bool {
	for _, b := range borderStyles {
		if b.ID == id {
			return true
		}
	}
	return false
}

// ValidPallu reports whether id names a known pallu design.
func ValidPallu(id string) bool {
	for _, p := range palluDesigns {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ValidColor reports whether id names a known base color.
func ValidColor(id string) bool {
	for _, c := range baseColors {
		if c.ID == id {
			return true
		}
	}
	return false
}
