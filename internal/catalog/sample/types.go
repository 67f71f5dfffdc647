package sample

// PriceRange bounds the typical market price of a saree type
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// SareeType describes one of the traditional saree categories the catalog
// can be browsed by
type SareeType struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Image           string     `json:"image"`
	Characteristics []string   `json:"characteristics"`
	PriceRange      PriceRange `json:"priceRange"`
	States          []string   `json:"states"`
	Regions         []string   `json:"regions"`
}

var sareeTypes = []SareeType{
	{
		ID:              "dharmavaram",
		Name:            "Dharmavaram",
		Description:     "Traditional silk sarees from Dharmavaram with rich zari work",
		Image:           "/images/saree-types/dharmavaram.jpg",
		Characteristics: []string{"Heavy silk", "Rich zari work", "Traditional motifs", "Durable"},
		PriceRange:      PriceRange{Min: 15000, Max: 100000},
		States:          []string{"Andhra Pradesh", "Telangana"},
		Regions:         []string{"Dharmavaram", "Pochampally", "Gadwal"},
	},
	{
		ID:              "kanchipuram",
		Name:            "Kanchipuram",
		Description:     "Luxurious silk sarees from Kanchipuram with temple borders",
		Image:           "/images/saree-types/kanchipuram.jpg",
		Characteristics: []string{"Pure silk", "Temple borders", "Gold zari", "Heavy weight"},
		PriceRange:      PriceRange{Min: 20000, Max: 150000},
		States:          []string{"Tamil Nadu"},
		Regions:         []string{"Kanchipuram", "Arni", "Thirubhuvanam"},
	},
	{
		ID:              "banarasi",
		Name:            "Banarasi",
		Description:     "Elegant silk sarees from Varanasi with intricate brocade work",
		Image:           "/images/saree-types/banarasi.jpg",
		Characteristics: []string{"Brocade work", "Intricate patterns", "Metallic threads", "Elegant"},
		PriceRange:      PriceRange{Min: 10000, Max: 80000},
		States:          []string{"Uttar Pradesh"},
		Regions:         []string{"Varanasi", "Mirzapur"},
	},
	{
		ID:              "mysore",
		Name:            "Mysore Silk",
		Description:     "Soft and lightweight silk sarees from Mysore",
		Image:           "/images/saree-types/mysore.jpg",
		Characteristics: []string{"Lightweight", "Soft texture", "Subtle designs", "Comfortable"},
		PriceRange:      PriceRange{Min: 8000, Max: 50000},
		States:          []string{"Karnataka"},
		Regions:         []string{"Mysore", "Bangalore", "Ramanagara"},
	},
	{
		ID:              "patola",
		Name:            "Patola",
		Description:     "Double ikat silk sarees from Gujarat with geometric patterns",
		Image:           "/images/saree-types/patola.jpg",
		Characteristics: []string{"Double ikat", "Geometric patterns", "Colorful", "Unique"},
		PriceRange:      PriceRange{Min: 25000, Max: 200000},
		States:          []string{"Gujarat"},
		Regions:         []string{"Patan", "Rajkot"},
	},
	{
		ID:              "bandhani",
		Name:            "Bandhani",
		Description:     "Tie-dye silk sarees with vibrant colors and patterns",
		Image:           "/images/saree-types/bandhani.jpg",
		Characteristics: []string{"Tie-dye technique", "Vibrant colors", "Lightweight", "Festive"},
		PriceRange:      PriceRange{Min: 5000, Max: 30000},
		States:          []string{"Gujarat", "Rajasthan"},
		Regions:         []string{"Jamnagar", "Bhuj", "Jaipur"},
	},
	{
		ID:              "chanderi",
		Name:            "Chanderi",
		Description:     "Lightweight silk sarees with gold and silver motifs",
		Image:           "/images/saree-types/chanderi.jpg",
		Characteristics: []string{"Lightweight", "Gold motifs", "Sheer texture", "Elegant"},
		PriceRange:      PriceRange{Min: 8000, Max: 40000},
		States:          []string{"Madhya Pradesh"},
		Regions:         []string{"Chanderi", "Gwalior"},
	},
	{
		ID:              "maheshwari",
		Name:            "Maheshwari",
		Description:     "Traditional cotton and silk blend sarees from Maheshwar",
		Image:           "/images/saree-types/maheshwari.jpg",
		Characteristics: []string{"Cotton-silk blend", "Traditional patterns", "Comfortable", "Versatile"},
		PriceRange:      PriceRange{Min: 3000, Max: 25000},
		States:          []string{"Madhya Pradesh"},
		Regions:         []string{"Maheshwar", "Indore"},
	},
	{
		ID:              "ikkat",
		Name:            "Ikat",
		Description:     "Traditional ikat weave sarees with unique patterns",
		Image:           "/images/saree-types/ikkat.jpg",
		Characteristics: []string{"Ikat weave", "Unique patterns", "Colorful", "Artistic"},
		PriceRange:      PriceRange{Min: 6000, Max: 35000},
		States:          []string{"Odisha", "Andhra Pradesh", "Telangana"},
		Regions:         []string{"Bhubaneswar", "Berhampur", "Pochampally"},
	},
	{
		ID:              "tussar",
		Name:            "Tussar Silk",
		Description:     "Wild silk sarees with natural golden color",
		Image:           "/images/saree-types/tussar.jpg",
		Characteristics: []string{"Wild silk", "Natural golden color", "Eco-friendly", "Unique texture"},
		PriceRange:      PriceRange{Min: 5000, Max: 30000},
		States:          []string{"Jharkhand", "Bihar", "West Bengal"},
		Regions:         []string{"Ranchi", "Bhagalpur", "Murshidabad"},
	},
}

// SareeTypes returns the static saree type catalog
func SareeTypes() []SareeType {
	return sareeTypes
}
