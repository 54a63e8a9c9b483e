package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Seeder loads a small set of demonstration authors and books at
// startup. It goes through the inventory service on purpose so the
// same validation and referential checks apply to the sample data.
type Seeder struct {
	logger    *zap.Logger
	inventory InventoryProvider
}

// NewSeeder provides a ready to use Seeder.
func NewSeeder(logger *zap.Logger, inventory InventoryProvider) *Seeder {
	return &Seeder{logger: logger, inventory: inventory}
}

// Seed creates the sample authors then their books. It stops at the
// first failure since later records reference the earlier ones.
func (s *Seeder) Seed(ctx context.Context) error {
	authors := []Author{
		{
			Name:        "Machado de Assis",
			Biography:   "Joaquim Maria Machado de Assis was a Brazilian writer, widely regarded as the greatest name of Brazilian literature.",
			BirthYear:   "1839",
			Nationality: "Brazilian",
		},
		{
			Name:        "Clarice Lispector",
			Biography:   "Clarice Lispector was a Ukrainian-born Brazilian writer and journalist, author of novels, short stories and essays, considered one of the most important Brazilian writers of the 20th century.",
			BirthYear:   "1920",
			Nationality: "Brazilian",
		},
		{
			Name:        "Paulo Coelho",
			Biography:   "Paulo Coelho de Souza is a Brazilian novelist, journalist, playwright and lyricist. He is the best selling Brazilian writer of all time.",
			BirthYear:   "1947",
			Nationality: "Brazilian",
		},
	}

	created := make([]Author, 0, len(authors))
	for _, author := range authors {
		a, err := s.inventory.CreateAuthor(ctx, author)
		if err != nil {
			return fmt.Errorf("seeding: failed to create author %q: %w", author.Name, err)
		}
		created = append(created, a)
	}

	books := []Book{
		{
			Title:         "Dom Casmurro",
			Summary:       "A novel narrated in the first person by Bento Santiago, who tells the story of his love for Capitu and his suspicions about her betrayal with his best friend Escobar.",
			AuthorID:      created[0].ID,
			PublishedYear: "1899",
			Genre:         "Novel",
			Quality:       "5",
			Pages:         "256",
			Language:      "Portuguese",
			Publisher:     "Garnier",
			ISBN:          "978-85-254-0123-4",
		},
		{
			Title:         "The Hour of the Star",
			Summary:       "The story of Macabea, a young woman from Alagoas living in Rio de Janeiro. Through her simple and touching narrative, Clarice explores loneliness, poverty and the search for identity.",
			AuthorID:      created[1].ID,
			PublishedYear: "1977",
			Genre:         "Novel",
			Quality:       "5",
			Pages:         "87",
			Language:      "Portuguese",
			Publisher:     "Rocco",
		},
		{
			Title:         "The Alchemist",
			Summary:       "The journey of Santiago, a young Andalusian shepherd who travels from southern Spain to Egypt in search of a treasure. A fable about following one's dreams and listening to the heart.",
			AuthorID:      created[2].ID,
			PublishedYear: "1988",
			Genre:         "Fiction",
			Quality:       "4",
			Pages:         "163",
			Language:      "Portuguese",
			Publisher:     "Planeta",
			ISBN:          "978-85-422-0041-4",
		},
	}

	for _, book := range books {
		if _, err := s.inventory.CreateBook(ctx, book); err != nil {
			return fmt.Errorf("seeding: failed to create book %q: %w", book.Title, err)
		}
	}

	s.logger.Info("sample data loaded",
		zap.Int("seed.authors", len(authors)),
		zap.Int("seed.books", len(books)),
	)
	return nil
}
