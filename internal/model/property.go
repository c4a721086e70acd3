package model

import "time"

type Property struct {
	PropertyID    string    `json:"propertyId"`
	OwnerID       string    `json:"ownerId"`
	CategoryID    int       `json:"categoryId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	Price         float64   `json:"price"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	CurrentStatus string    `json:"currentStatus"`
	PublishDate   time.Time `json:"publishDate"`
	IsActive      bool      `json:"isActive"`
}

type PropertyImage struct {
	ImageID    string `json:"imageId"`
	PropertyID string `json:"propertyId"`
	ImageURL   string `json:"imageUrl"`
}

type Review struct {
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"reviewDate"`
}

// PropertyDetails is the joined view returned by the details lookup:
// one property with its owner name, image URLs and reviews grouped.
type PropertyDetails struct {
	PropertyID  string    `json:"propertyId"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	PublishDate time.Time `json:"publishDate"`
	OwnerName   string    `json:"ownerName"`
	Images      []string  `json:"images"`
	Reviews     []Review  `json:"reviews"`
}
