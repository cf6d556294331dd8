package service

import (
	"github.com/ikkim/winecraft-backend/internal/app/repository"
)

// CompatibilityChecker decides whether an ingredient may join the current mix.
// Only the candidate's own incompatible set is consulted.
type CompatibilityChecker interface {
	IsCompatible(candidateKey string, selectedKeys []string) bool
	// Conflicts lists the selected keys that block the candidate, in
	// selection order.
	Conflicts(candidateKey string, selectedKeys []string) []string
}

type compatibilityChecker struct {
	catalog repository.CatalogRepository
}

func NewCompatibilityChecker(catalog repository.CatalogRepository) CompatibilityChecker {
	return &compatibilityChecker{catalog: catalog}
}

func (c *compatibilityChecker) IsCompatible(candidateKey string, selectedKeys []string) bool {
	return len(c.Conflicts(candidateKey, selectedKeys)) == 0
}

func (c *compatibilityChecker) Conflicts(candidateKey string, selectedKeys []string) []string {
	candidate, ok := c.catalog.FindIngredient(candidateKey)
	if !ok {
		return nil
	}

	var conflicts []string
	for _, key := range selectedKeys {
		if candidate.Excludes(key) {
			conflicts = append(conflicts, key)
		}
	}
	return conflicts
}
