package catalog

import "time"

// First-run dataset. Persisted immediately after loading so later runs read
// the store, not this file.

func seedCategories() []Category {
	return []Category{
		{ID: "1001", Name: "منظفات الأرضيات", NameEn: "Floor Cleaners", DisplayOrder: 1},
		{ID: "1002", Name: "منظفات المطبخ", NameEn: "Kitchen Cleaners", DisplayOrder: 2},
		{ID: "1003", Name: "منظفات الحمام", NameEn: "Bathroom Cleaners", DisplayOrder: 3},
		{ID: "1004", Name: "العناية بالغسيل", NameEn: "Laundry Care", DisplayOrder: 4},
	}
}

func seedSubcategories() []Subcategory {
	return []Subcategory{
		{ID: "1101", Name: "أرضيات البلاط", NameEn: "Tile Floors", CategoryID: "1001"},
		{ID: "1102", Name: "الأرضيات الخشبية", NameEn: "Wooden Floors", CategoryID: "1001"},
		{ID: "1103", Name: "أسطح المطبخ", NameEn: "Kitchen Surfaces", CategoryID: "1002"},
	}
}

func seedSizes() []Size {
	return []Size{
		{ID: "1201", Name: "٥٠٠ مل", NameEn: "500 ml", Value: "500ml"},
		{ID: "1202", Name: "١ لتر", NameEn: "1 Liter", Value: "1L"},
		{ID: "1203", Name: "٥ لتر", NameEn: "5 Liters", Value: "5L"},
	}
}

func seedColors() []Color {
	return []Color{
		{ID: "1301", Name: "شفاف", NameEn: "Clear", Hex: "#F5F5F5"},
		{ID: "1302", Name: "أزرق", NameEn: "Blue", Hex: "#0057B8"},
		{ID: "1303", Name: "أخضر", NameEn: "Green", Hex: "#2E8B57"},
	}
}

func seedSmells() []Smell {
	return []Smell{
		{ID: "1401", Name: "لافندر", NameEn: "Lavender", Description: "رائحة لافندر منعشة"},
		{ID: "1402", Name: "ليمون", NameEn: "Lemon", Description: "رائحة ليمون حمضية"},
		{ID: "1403", Name: "صنوبر", NameEn: "Pine", Description: "رائحة صنوبر طبيعية"},
	}
}

func seedProducts() []Product {
	createdAt := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	return []Product{
		{
			ID:            "2001",
			Name:          "منظف أرضيات متعدد الأسطح",
			NameEn:        "Multi-Surface Floor Cleaner",
			Description:   "منظف فعال لجميع أنواع الأرضيات",
			DescriptionEn: "Effective cleaner for all floor types",
			Price:         15.99,
			CategoryID:    "1001",
			SubcategoryID: "1101",
			SizeID:        "1202",
			SmellID:       "1401",
			Stock:         50,
			Featured:      true,
			CreatedAt:     createdAt,
		},
		{
			ID:            "2002",
			Name:          "سائل غسيل الصحون",
			NameEn:        "Dishwashing Liquid",
			Description:   "يزيل الدهون بسهولة",
			DescriptionEn: "Cuts through grease easily",
			Price:         8.5,
			CategoryID:    "1002",
			SubcategoryID: "1103",
			SizeID:        "1201",
			SmellID:       "1402",
			Stock:         120,
			Featured:      true,
			CreatedAt:     createdAt,
		},
		{
			ID:          "2003",
			Name:        "معقم الحمامات",
			NameEn:      "Bathroom Disinfectant",
			Description: "يقضي على ٩٩٫٩٪ من الجراثيم",
			Price:       12.75,
			CategoryID:  "1003",
			SizeID:      "1202",
			ColorID:     "1302",
			SmellID:     "1403",
			Stock:       80,
			CreatedAt:   createdAt,
		},
		{
			ID:          "2004",
			Name:        "مسحوق غسيل مركز",
			NameEn:      "Concentrated Laundry Detergent",
			Description: "مناسب للغسالات الأوتوماتيكية",
			Price:       24.0,
			CategoryID:  "1004",
			SizeID:      "1203",
			SmellID:     "1401",
			Stock:       60,
			CreatedAt:   createdAt,
		},
	}
}

func seedDeliveryOptions() []DeliveryOption {
	return []DeliveryOption{
		{ID: "3001", Name: "توصيل عادي", NameEn: "Standard Delivery", Price: 15, EstimatedDuration: "2-3 أيام", Active: true},
		{ID: "3002", Name: "توصيل سريع", NameEn: "Express Delivery", Price: 30, EstimatedDuration: "خلال 24 ساعة", Active: true},
	}
}

func seedDeliveryZones() []DeliveryZone {
	return []DeliveryZone{
		{ID: "3101", Name: "الرياض", NameEn: "Riyadh", Cities: []string{"الرياض"}, AdditionalFee: 0, Active: true},
		{ID: "3102", Name: "المنطقة الشرقية", NameEn: "Eastern Province", Cities: []string{"الدمام", "الخبر", "الظهران"}, AdditionalFee: 5, Active: true},
	}
}
