package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"mycart_back_end/internal/database"
	"mycart_back_end/internal/models"
)

//
// --- INDEXATION DANS ELASTICSEARCH ---
//

// Indexe un produit du catalogue dans Elasticsearch
func IndexProduct(p models.Product) {
	if database.Elastic == nil {
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      "products",
		DocumentID: p.ID.String(),
		Body:       bytes.NewReader(data),
		Refresh:    "true", // rend la donnée immédiatement visible
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur envoi Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", p.Name, res.String())
	} else {
		log.Printf("✅ Produit indexé dans Elasticsearch: %s", p.Name)
	}
}

//
// --- RECHERCHE DANS ELASTICSEARCH ---
//

// wildcardPattern encadre le terme d'étoiles, métacaractères neutralisés,
// pour une recherche sous-chaîne.
func wildcardPattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, "*", `\*`, "?", `\?`)
	return "*" + r.Replace(q) + "*"
}

// SearchFirstProduct cherche une sous-chaîne du nom, sans tenir compte de la
// casse, et retourne le premier hit — mêmes résultats que le scan mémoire de
// repli.
func SearchFirstProduct(query string) (models.Product, bool) {
	if database.Elastic == nil {
		return models.Product{}, false
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"wildcard": map[string]interface{}{
				// sous-champ keyword : sous-chaîne sur le nom entier, pas
				// sur ses tokens
				"name.keyword": map[string]interface{}{
					"value":            wildcardPattern(query),
					"case_insensitive": true,
				},
			},
		},
		"size": 1,
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return models.Product{}, false
	}

	req := esapi.SearchRequest{
		Index: []string{"products"},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur requête Elastic:", err)
		return models.Product{}, false
	}
	defer res.Body.Close()

	if res.IsError() {
		// index absent ou vide : le repli en mémoire prend la main
		return models.Product{}, false
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		log.Println("❌ Erreur décodage réponse Elastic:", err)
		return models.Product{}, false
	}

	if len(r.Hits.Hits) == 0 {
		return models.Product{}, false
	}
	return r.Hits.Hits[0].Source, true
}
