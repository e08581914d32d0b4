package catalog

import (
	"strings"

	"github.com/wingseng/parts-catalog/internal/models"
)

// FilterCompatible narrows candidates to parts whose compatible-engines list
// contains engineModel as a case-insensitive substring. An empty model means
// "show all": the caller's category restriction (if any) has already been
// applied to candidates. No fuzzy or tokenized matching, pure containment.
func FilterCompatible(candidates []models.Product, engineModel string) []models.Product {
	term := strings.ToLower(strings.TrimSpace(engineModel))
	if term == "" {
		return candidates
	}
	out := make([]models.Product, 0, len(candidates))
	for _, p := range candidates {
		for _, engine := range p.CompatibleEngines {
			if strings.Contains(strings.ToLower(engine), term) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
