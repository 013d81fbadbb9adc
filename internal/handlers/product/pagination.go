package product

import (
	"sort"

	"mycart_back_end/internal/models"
)

const mobilesPerPage = 6

func sortNewest(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}

// paginate découpe la liste en pages de perPage éléments. Une page hors
// bornes est ramenée à la plus proche valide, jamais une erreur.
func paginate(products []models.Product, page, perPage int) ([]models.Product, int, int) {
	numPages := (len(products) + perPage - 1) / perPage
	if numPages == 0 {
		numPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > numPages {
		page = numPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(products) {
		start = len(products)
	}
	if end > len(products) {
		end = len(products)
	}

	return products[start:end], page, numPages
}
