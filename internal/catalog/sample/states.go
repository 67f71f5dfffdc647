package sample

// StateRegion is a weaving center within a state
type StateRegion struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Specialties []string `json:"specialties"`
}

// State groups the weaving traditions of one Indian state
type State struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Code        string        `json:"code"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	SareeTypes  []string      `json:"sareeTypes"`
	Regions     []StateRegion `json:"regions"`
	TotalSarees int           `json:"totalSarees"`
	AvgPrice    int64         `json:"avgPrice"`
}

var states = []State{
	{
		ID:          "andhra-pradesh",
		Name:        "Andhra Pradesh",
		Code:        "AP",
		Description: "Home to Dharmavaram and other traditional silk weaving centers",
		Image:       "/images/states/andhra-pradesh.jpg",
		SareeTypes:  []string{"Dharmavaram", "Ikat", "Mangalagiri"},
		Regions: []StateRegion{
			{ID: "dharmavaram", Name: "Dharmavaram", Description: "Famous for heavy silk sarees with rich zari work", Specialties: []string{"Heavy silk", "Zari work", "Traditional motifs"}},
			{ID: "mangalagiri", Name: "Mangalagiri", Description: "Known for cotton sarees with temple designs", Specialties: []string{"Cotton sarees", "Temple designs", "Lightweight"}},
		},
		TotalSarees: 1250,
		AvgPrice:    25000,
	},
	{
		ID:          "tamil-nadu",
		Name:        "Tamil Nadu",
		Code:        "TN",
		Description: "Famous for Kanchipuram silk sarees and traditional weaving",
		Image:       "/images/states/tamil-nadu.jpg",
		SareeTypes:  []string{"Kanchipuram", "Arni", "Thirubhuvanam"},
		Regions: []StateRegion{
			{ID: "kanchipuram", Name: "Kanchipuram", Description: "World-renowned for pure silk sarees with temple borders", Specialties: []string{"Pure silk", "Temple borders", "Gold zari"}},
			{ID: "arni", Name: "Arni", Description: "Traditional silk weaving with unique patterns", Specialties: []string{"Silk weaving", "Traditional patterns", "Quality silk"}},
		},
		TotalSarees: 2100,
		AvgPrice:    35000,
	},
	{
		ID:          "uttar-pradesh",
		Name:        "Uttar Pradesh",
		Code:        "UP",
		Description: "Home to the famous Banarasi silk sarees",
		Image:       "/images/states/uttar-pradesh.jpg",
		SareeTypes:  []string{"Banarasi", "Chikankari"},
		Regions: []StateRegion{
			{ID: "varanasi", Name: "Varanasi", Description: "Famous for Banarasi silk sarees with brocade work", Specialties: []string{"Brocade work", "Intricate patterns", "Metallic threads"}},
		},
		TotalSarees: 1800,
		AvgPrice:    28000,
	},
	{
		ID:          "karnataka",
		Name:        "Karnataka",
		Code:        "KA",
		Description: "Known for Mysore silk and traditional weaving",
		Image:       "/images/states/karnataka.jpg",
		SareeTypes:  []string{"Mysore Silk", "Ilkal"},
		Regions: []StateRegion{
			{ID: "mysore", Name: "Mysore", Description: "Famous for soft and lightweight silk sarees", Specialties: []string{"Lightweight silk", "Soft texture", "Subtle designs"}},
			{ID: "ilkal", Name: "Ilkal", Description: "Traditional cotton sarees with unique borders", Specialties: []string{"Cotton sarees", "Unique borders", "Traditional weaving"}},
		},
		TotalSarees: 1650,
		AvgPrice:    22000,
	},
	{
		ID:          "gujarat",
		Name:        "Gujarat",
		Code:        "GJ",
		Description: "Famous for Patola, Bandhani and other traditional sarees",
		Image:       "/images/states/gujarat.jpg",
		SareeTypes:  []string{"Patola", "Bandhani", "Gujarati"},
		Regions: []StateRegion{
			{ID: "patan", Name: "Patan", Description: "World-famous for Patola double ikat sarees", Specialties: []string{"Double ikat", "Geometric patterns", "Unique technique"}},
			{ID: "jamnagar", Name: "Jamnagar", Description: "Known for Bandhani tie-dye sarees", Specialties: []string{"Tie-dye technique", "Vibrant colors", "Lightweight"}},
		},
		TotalSarees: 1950,
		AvgPrice:    32000,
	},
	{
		ID:          "rajasthan",
		Name:        "Rajasthan",
		Code:        "RJ",
		Description: "Rich tradition of Bandhani and other colorful sarees",
		Image:       "/images/states/rajasthan.jpg",
		SareeTypes:  []string{"Bandhani", "Rajasthani"},
		Regions: []StateRegion{
			{ID: "jaipur", Name: "Jaipur", Description: "Famous for Bandhani and block print sarees", Specialties: []string{"Bandhani", "Block prints", "Colorful designs"}},
		},
		TotalSarees: 1200,
		AvgPrice:    18000,
	},
	{
		ID:          "madhya-pradesh",
		Name:        "Madhya Pradesh",
		Code:        "MP",
		Description: "Home to Chanderi and Maheshwari sarees",
		Image:       "/images/states/madhya-pradesh.jpg",
		SareeTypes:  []string{"Chanderi", "Maheshwari"},
		Regions: []StateRegion{
			{ID: "chanderi", Name: "Chanderi", Description: "Famous for lightweight silk sarees with gold motifs", Specialties: []string{"Lightweight silk", "Gold motifs", "Sheer texture"}},
			{ID: "maheshwar", Name: "Maheshwar", Description: "Traditional cotton and silk blend sarees", Specialties: []string{"Cotton-silk blend", "Traditional patterns", "Comfortable"}},
		},
		TotalSarees: 1100,
		AvgPrice:    20000,
	},
	{
		ID:          "odisha",
		Name:        "Odisha",
		Code:        "OD",
		Description: "Known for Ikat and Sambalpuri sarees",
		Image:       "/images/states/odisha.jpg",
		SareeTypes:  []string{"Ikat", "Sambalpuri"},
		Regions: []StateRegion{
			{ID: "bhubaneswar", Name: "Bhubaneswar", Description: "Famous for Ikat weave sarees", Specialties: []string{"Ikat weave", "Unique patterns", "Colorful"}},
		},
		TotalSarees: 950,
		AvgPrice:    15000,
	},
	{
		ID:          "west-bengal",
		Name:        "West Bengal",
		Code:        "WB",
		Description: "Famous for Tussar silk and traditional weaving",
		Image:       "/images/states/west-bengal.jpg",
		SareeTypes:  []string{"Tussar Silk", "Baluchari"},
		Regions: []StateRegion{
			{ID: "murshidabad", Name: "Murshidabad", Description: "Known for Tussar silk sarees", Specialties: []string{"Tussar silk", "Natural golden color", "Eco-friendly"}},
		},
		TotalSarees: 800,
		AvgPrice:    18000,
	},
	{
		ID:          "telangana",
		Name:        "Telangana",
		Code:        "TG",
		Description: "Home to Pochampally Ikat and other traditional sarees",
		Image:       "/images/states/telangana.jpg",
		SareeTypes:  []string{"Pochampally Ikat", "Gadwal"},
		Regions: []StateRegion{
			{ID: "pochampally", Name: "Pochampally", Description: "Famous for Ikat sarees with geometric patterns", Specialties: []string{"Ikat sarees", "Geometric patterns", "Colorful"}},
			{ID: "gadwal", Name: "Gadwal", Description: "Known for cotton sarees with silk borders", Specialties: []string{"Cotton sarees", "Silk borders", "Traditional weaving"}},
		},
		TotalSarees: 1400,
		AvgPrice:    22000,
	},
}

// States returns the static state catalog
func States() []State {
	return states
}
