// Command seed writes a small sample dataset through the repository layer,
// so the resulting files carry server-assigned ids, createdAt stamps and
// normalized image links.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"bookrepo/internal/collation"
	"bookrepo/internal/entity"
	"bookrepo/internal/store"
)

func main() {
	ctx := context.Background()

	booksFile := getEnv("BOOKS_FILE", "data/books.json")
	categoriesFile := getEnv("CATEGORIES_FILE", "data/categories.json")
	baseImageURL := getEnv("BASE_IMAGE_URL", "https://drive.google.com/uc?export=view&id=")

	for _, path := range []string{booksFile, categoriesFile} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Fatalf("cannot create data directory for %s: %v", path, err)
		}
	}

	collator, err := collation.New(getEnv("BOOKS_LOCALE", "sr-Cyrl"))
	if err != nil {
		log.Fatalf("cannot build collator: %v", err)
	}

	categories := store.NewCategoryFile(categoriesFile)
	books := store.NewBookFile(booksFile, baseImageURL, collator)

	for _, name := range []string{"Роман", "Поезија", "Историја", "Филозофија"} {
		if _, err := categories.Create(ctx, entity.Category{Name: name}); err != nil {
			log.Fatalf("seeding category %q: %v", name, err)
		}
	}

	image := "https://drive.google.com/open?id=1aBcDeFgHiJ"
	seedBooks := []entity.Book{
		{
			Title:               "На Дрини ћуприја",
			Authors:             []string{"иво андрић"},
			Publisher:           "Просвета",
			PublishedYear:       1945,
			Publication:         "Београд",
			NumberOfPages:       318,
			PublicationLanguage: "српски",
			Form:                "роман",
			KeepingPlace:        "полица 3",
			Categories:          []string{"Роман"},
			InventoryNumber:     1001,
			Image:               &image,
		},
		{
			Title:               "Горски вијенац",
			Authors:             []string{"петар петровић његош"},
			Publisher:           "Штампарија",
			PublishedYear:       1847,
			Publication:         "Беч",
			NumberOfPages:       172,
			PublicationLanguage: "српски",
			Form:                "поезија",
			KeepingPlace:        "полица 1",
			Categories:          []string{"Поезија"},
			InventoryNumber:     1002,
		},
		{
			Title:               "Сеобе",
			Authors:             []string{"милош црњански"},
			Publisher:           "Нолит",
			PublishedYear:       1929,
			Publication:         "Београд",
			NumberOfPages:       250,
			PublicationLanguage: "српски",
			Form:                "роман",
			KeepingPlace:        "полица 2",
			Categories:          []string{"Роман"},
			InventoryNumber:     1003,
		},
	}
	for _, b := range seedBooks {
		if _, err := books.Create(ctx, b); err != nil {
			log.Fatalf("seeding book %q: %v", b.Title, err)
		}
	}

	log.Printf("seeded %d categories and %d books", 4, len(seedBooks))
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
