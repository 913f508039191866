package entity

// Book is one record in the books collection file. Field names match the
// JSON documents on disk and the API payloads.
type Book struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title" validate:"required"`
	Authors             []string `json:"authors"`
	Publisher           string   `json:"publisher"`
	PublishedYear       int      `json:"publishedYear" validate:"gte=0"`
	Publication         string   `json:"publication"`
	NumberOfPages       int      `json:"numberOfPages" validate:"gte=0"`
	PublicationLanguage string   `json:"publicationLanguage"`
	Form                string   `json:"form"`
	KeepingPlace        string   `json:"keepingPlace"`
	Categories          []string `json:"categories"`
	InventoryNumber     int64    `json:"inventoryNumber" validate:"gte=0"`
	Image               *string  `json:"image"`
	CreatedAt           string   `json:"createdAt"`
}
