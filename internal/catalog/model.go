package catalog

import "time"

// All catalog entities are plain records related by identifier only. Name
// fields come in pairs: Name is the Arabic storefront name, NameEn the
// English one.

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	NameEn        string    `json:"nameEn,omitempty"`
	Description   string    `json:"description,omitempty"`
	DescriptionEn string    `json:"descriptionEn,omitempty"`
	Price         float64   `json:"price"`
	Image         string    `json:"image,omitempty"`
	CategoryID    string    `json:"categoryId"`
	SubcategoryID string    `json:"subcategoryId,omitempty"`
	SizeID        string    `json:"sizeId,omitempty"`
	ColorID       string    `json:"colorId,omitempty"`
	SmellID       string    `json:"smellId,omitempty"`
	Stock         int       `json:"stock"`
	Featured      bool      `json:"featured,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NameEn       string `json:"nameEn,omitempty"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
}

type Subcategory struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NameEn       string `json:"nameEn,omitempty"`
	CategoryID   string `json:"categoryId"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
}

type Size struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"nameEn,omitempty"`
	Value  string `json:"value"`
}

type Color struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"nameEn,omitempty"`
	Hex    string `json:"hex"`
}

type Smell struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameEn      string `json:"nameEn,omitempty"`
	Description string `json:"description,omitempty"`
}

type DeliveryOption struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	NameEn            string  `json:"nameEn,omitempty"`
	Price             float64 `json:"price"`
	Description       string  `json:"description,omitempty"`
	EstimatedDuration string  `json:"estimatedDuration,omitempty"`
	Active            bool    `json:"active"`
	Icon              string  `json:"icon,omitempty"`
}

type DeliveryZone struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameEn        string   `json:"nameEn,omitempty"`
	Cities        []string `json:"cities"`
	AdditionalFee float64  `json:"additionalFee"`
	Active        bool     `json:"active"`
}

// Snapshot is the wholesale backup format produced by Export and consumed by
// Import.
type Snapshot struct {
	Products        []Product        `json:"products"`
	Categories      []Category       `json:"categories"`
	Subcategories   []Subcategory    `json:"subcategories"`
	Sizes           []Size           `json:"sizes"`
	Colors          []Color          `json:"colors"`
	Smells          []Smell          `json:"smells"`
	DeliveryOptions []DeliveryOption `json:"deliveryOptions"`
	DeliveryZones   []DeliveryZone   `json:"deliveryZones"`
}
