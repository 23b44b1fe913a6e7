package content

type Block struct {
	ID      string `json:"id"`
	Page    string `json:"page"`
	Section string `json:"section"`
	Title   string `json:"title"`
	TitleEn string `json:"titleEn,omitempty"`
	Body    string `json:"body,omitempty"`
	BodyEn  string `json:"bodyEn,omitempty"`
	Image   string `json:"image,omitempty"`
}

type Settings struct {
	StoreName       string `json:"storeName"`
	StoreNameEn     string `json:"storeNameEn,omitempty"`
	Currency        string `json:"currency"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}

func defaultSettings() Settings {
	return Settings{
		StoreName:   "متجر نظافة",
		StoreNameEn: "Nadafa Store",
		Currency:    "SAR",
	}
}
