package catalog

// 分類資訊與允許的子分類（型錄驗證以此為準）
var seedCategories = []CategoryInfo{
	{
		ID:          CategoryLaptop,
		Name:        "Laptops",
		Description: "Find the perfect laptop for work, gaming, or everyday use",
		Subcategories: []Subcategory{
			{ID: "gaming", Name: "Gaming Laptops", Description: "High-performance laptops for gaming"},
			{ID: "business", Name: "Business Laptops", Description: "Professional laptops for work"},
			{ID: "ultrabook", Name: "Ultrabooks", Description: "Thin and light portable laptops"},
			{ID: "budget", Name: "Budget Laptops", Description: "Affordable laptops for basic tasks"},
			{ID: "workstation", Name: "Workstations", Description: "High-end laptops for creative work"},
		},
	},
	{
		ID:          CategoryMobile,
		Name:        "Smartphones",
		Description: "Discover smartphones that fit your lifestyle",
		Subcategories: []Subcategory{
			{ID: "flagship", Name: "Flagship Phones", Description: "Premium smartphones with latest features"},
			{ID: "midrange", Name: "Mid-range Phones", Description: "Balance of features and affordability"},
			{ID: "budget", Name: "Budget Phones", Description: "Affordable smartphones for essential needs"},
			{ID: "camera", Name: "Camera Phones", Description: "Phones with exceptional camera capabilities"},
			{ID: "gaming", Name: "Gaming Phones", Description: "Phones optimized for mobile gaming"},
		},
	},
	{
		ID:          CategoryHeadphone,
		Name:        "Headphones",
		Description: "Immerse yourself in superior audio quality",
		Subcategories: []Subcategory{
			{ID: "wireless", Name: "Wireless Headphones", Description: "Freedom with wireless audio"},
			{ID: "noise-canceling", Name: "Noise Canceling", Description: "Block out the world and focus"},
			{ID: "gaming", Name: "Gaming Headsets", Description: "Enhanced audio for gaming"},
			{ID: "studio", Name: "Studio Monitors", Description: "Professional audio monitoring"},
			{ID: "earbuds", Name: "Earbuds", Description: "Compact and portable audio"},
		},
	},
	{
		ID:          CategoryKeyboard,
		Name:        "Keyboards",
		Description: "Type with precision and comfort",
		Subcategories: []Subcategory{
			{ID: "mechanical", Name: "Mechanical Keyboards", Description: "Tactile and responsive typing experience"},
			{ID: "gaming", Name: "Gaming Keyboards", Description: "Keyboards designed for gaming performance"},
			{ID: "wireless", Name: "Wireless Keyboards", Description: "Cable-free typing convenience"},
			{ID: "ergonomic", Name: "Ergonomic Keyboards", Description: "Comfortable typing for long sessions"},
			{ID: "compact", Name: "Compact Keyboards", Description: "Space-saving keyboard designs"},
		},
	},
}

// 靜態型錄資料，啟動時載入一次
var seedDevices = []Device{
	// 筆電
	{
		ID:          "laptop-1",
		Name:        `MacBook Pro 16"`,
		Category:    CategoryLaptop,
		Subcategory: "workstation",
		Brand:       "Apple",
		Price:       2499,
		Rating:      4.8,
		Description: "Professional laptop with M3 Pro chip for demanding creative work",
		Specs: map[string]string{
			"processor": "Apple M3 Pro",
			"ram":       "18GB",
			"storage":   "512GB SSD",
			"display":   `16.2" Liquid Retina XDR`,
			"battery":   "Up to 22 hours",
		},
		Features: []string{"M3 Pro chip", "Liquid Retina XDR display", "ProRes acceleration", "Thunderbolt 4"},
		InStock:  true,
	},
	{
		ID:          "laptop-2",
		Name:        "ASUS ROG Strix G15",
		Category:    CategoryLaptop,
		Subcategory: "gaming",
		Brand:       "ASUS",
		Price:       1299,
		Rating:      4.6,
		Description: "High-performance gaming laptop with RTX 4060",
		Specs: map[string]string{
			"processor": "AMD Ryzen 7 7735HS",
			"ram":       "16GB DDR5",
			"storage":   "1TB SSD",
			"display":   `15.6" FHD 144Hz`,
			"graphics":  "RTX 4060",
		},
		Features: []string{"144Hz display", "RGB keyboard", "Advanced cooling", "Wi-Fi 6E"},
		InStock:  true,
	},

	// 手機
	{
		ID:          "mobile-1",
		Name:        "iPhone 15 Pro",
		Category:    CategoryMobile,
		Subcategory: "flagship",
		Brand:       "Apple",
		Price:       999,
		Rating:      4.7,
		Description: "Professional smartphone with titanium design and A17 Pro chip",
		Specs: map[string]string{
			"processor": "A17 Pro",
			"storage":   "128GB",
			"display":   `6.1" Super Retina XDR`,
			"camera":    "48MP Pro camera system",
			"battery":   "All-day battery life",
		},
		Features: []string{"Titanium design", "Action Button", "USB-C", "ProRAW photography"},
		InStock:  true,
	},
	{
		ID:          "mobile-2",
		Name:        "Samsung Galaxy S24",
		Category:    CategoryMobile,
		Subcategory: "flagship",
		Brand:       "Samsung",
		Price:       849,
		Rating:      4.6,
		Description: "AI-powered smartphone with advanced camera capabilities",
		Specs: map[string]string{
			"processor": "Snapdragon 8 Gen 3",
			"storage":   "256GB",
			"display":   `6.2" Dynamic AMOLED 2X`,
			"camera":    "50MP triple camera",
			"battery":   "4000mAh",
		},
		Features: []string{"Galaxy AI", "Circle to Search", "Live Translate", "S Pen support"},
		InStock:  true,
	},

	// 耳機
	{
		ID:          "headphone-1",
		Name:        "Sony WH-1000XM5",
		Category:    CategoryHeadphone,
		Subcategory: "noise-canceling",
		Brand:       "Sony",
		Price:       399,
		Rating:      4.8,
		Description: "Industry-leading noise canceling wireless headphones",
		Specs: map[string]string{
			"driver":    "30mm",
			"frequency": "4Hz-40kHz",
			"battery":   "30 hours",
			"charging":  "USB-C quick charge",
			"weight":    "250g",
		},
		Features: []string{"Industry-leading ANC", "Multipoint connection", "Speak-to-chat", "LDAC support"},
		InStock:  true,
	},
	{
		ID:          "headphone-2",
		Name:        "SteelSeries Arctis 7P",
		Category:    CategoryHeadphone,
		Subcategory: "gaming",
		Brand:       "SteelSeries",
		Price:       179,
		Rating:      4.5,
		Description: "Wireless gaming headset with premium audio",
		Specs: map[string]string{
			"driver":     "40mm neodymium",
			"frequency":  "20Hz-20kHz",
			"battery":    "24 hours",
			"microphone": "Retractable",
			"weight":     "308g",
		},
		Features: []string{"2.4GHz wireless", "DTS Headphone:X v2.0", "ClearCast microphone", "USB-C"},
		InStock:  true,
	},

	// 鍵盤
	{
		ID:          "keyboard-1",
		Name:        "Logitech MX Keys",
		Category:    CategoryKeyboard,
		Subcategory: "wireless",
		Brand:       "Logitech",
		Price:       129,
		Rating:      4.6,
		Description: "Advanced wireless keyboard for professionals",
		Specs: map[string]string{
			"layout":       "Full-size",
			"switches":     "Low-profile tactile",
			"battery":      "10 days (backlight on)",
			"connectivity": "Bluetooth/USB receiver",
			"weight":       "810g",
		},
		Features: []string{"Smart illumination", "Multi-device", "Easy-Switch", "USB-C charging"},
		InStock:  true,
	},
	{
		ID:          "keyboard-2",
		Name:        "Corsair K70 RGB",
		Category:    CategoryKeyboard,
		Subcategory: "mechanical",
		Brand:       "Corsair",
		Price:       169,
		Rating:      4.7,
		Description: "Mechanical gaming keyboard with RGB lighting",
		Specs: map[string]string{
			"layout":       "Full-size",
			"switches":     "Cherry MX Red",
			"backlighting": "Per-key RGB",
			"connectivity": "USB",
			"weight":       "1200g",
		},
		Features: []string{"Cherry MX switches", "Per-key RGB", "Media keys", "Aircraft-grade aluminum"},
		InStock:  true,
	},
}
