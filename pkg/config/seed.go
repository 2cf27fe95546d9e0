package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Seed is the initial data the API boots with: registered users and the
// priced catalog.
type Seed struct {
	Currency string     `yaml:"currency"`
	Users    []SeedUser `yaml:"users"`
	Books    []SeedBook `yaml:"books"`
}

type SeedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type SeedBook struct {
	ISBN   string `yaml:"isbn"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Price  int64  `yaml:"price"`
}

func DefaultSeed() Seed {
	return Seed{
		Currency: "ARS",
		Users: []SeedUser{
			{Username: "alice", Password: "secret"},
		},
		Books: []SeedBook{
			{ISBN: "9780201633610", Title: "Design Patterns", Author: "Gamma, Helm, Johnson, Vlissides", Price: 4500},
			{ISBN: "9780321125217", Title: "Domain-Driven Design", Author: "Eric Evans", Price: 5200},
			{ISBN: "9780132350884", Title: "Clean Code", Author: "Robert C. Martin", Price: 3900},
		},
	}
}

// LoadSeed decodes a YAML seed file. An empty path yields DefaultSeed.
func LoadSeed(path string) (Seed, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultSeed(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return Seed{}, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	var seed Seed
	if err := yaml.NewDecoder(file).Decode(&seed); err != nil {
		return Seed{}, fmt.Errorf("failed to decode seed file: %w", err)
	}

	if seed.Currency == "" {
		seed.Currency = "ARS"
	}

	for i, b := range seed.Books {
		if strings.TrimSpace(b.ISBN) == "" {
			return Seed{}, fmt.Errorf("book %d: isbn is required", i)
		}
		if strings.TrimSpace(b.Title) == "" {
			return Seed{}, fmt.Errorf("book %s: title is required", b.ISBN)
		}
		if b.Price <= 0 {
			return Seed{}, fmt.Errorf("book %s: price must be positive, got %d", b.ISBN, b.Price)
		}
	}
	for i, u := range seed.Users {
		if strings.TrimSpace(u.Username) == "" {
			return Seed{}, fmt.Errorf("user %d: username is required", i)
		}
	}

	return seed, nil
}
