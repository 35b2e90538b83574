package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed content.json
var contentBytes []byte

type MenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

// Menu holds the four fixed card categories in presentation order.
type Menu struct {
	Entrees  []MenuItem `json:"entrees"`
	Plats    []MenuItem `json:"plats"`
	Desserts []MenuItem `json:"desserts"`
	Boissons []MenuItem `json:"boissons"`
}

type Review struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Badge  string `json:"badge"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

type WeeklyHours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RestaurantInfo struct {
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	Area         string      `json:"area"`
	Phone        string      `json:"phone"`
	Facebook     string      `json:"facebook"`
	Rating       float64     `json:"rating"`
	ReviewsCount int         `json:"reviews_count"`
	PriceRange   string      `json:"price_range"`
	Hours        WeeklyHours `json:"hours"`
	Coordinates  Coordinates `json:"coordinates"`
}

// Document is the whole static site content. It ships embedded in the
// binary and is decoded once at startup.
type Document struct {
	Menu    Menu           `json:"menu"`
	Reviews []Review       `json:"reviews"`
	Info    RestaurantInfo `json:"info"`
}

func Load() (*Document, error) {
	var doc Document
	if err := json.Unmarshal(contentBytes, &doc); err != nil {
		return nil, fmt.Errorf("decode embedded site content: %w", err)
	}
	return &doc, nil
}
