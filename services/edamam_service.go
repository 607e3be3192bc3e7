package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/adangerfield1026/Capstone/models"
)

const gramMeasureURI = "http://www.edamam.com/ontologies/edamam.owl#Measure_gram"

// EdamamService is the primary nutrition source: the Edamam food-database
// API, queried for catalog search and per-100 g nutrition.
type EdamamService struct {
	foodAppID, foodAppKey   string
	nutriAppID, nutriAppKey string
	client                  *http.Client
}

func NewEdamamService() *EdamamService {
	return &EdamamService{
		foodAppID:   os.Getenv("EDAMAM_APP_ID"),
		foodAppKey:  os.Getenv("EDAMAM_APP_KEY"),
		nutriAppID:  os.Getenv("EDAMAM_NUTRI_APP_ID"),
		nutriAppKey: os.Getenv("EDAMAM_NUTRI_APP_KEY"),
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type foodParserResponse struct {
	Hints []struct {
		Food struct {
			FoodID    string             `json:"foodId"`
			Label     string             `json:"label"`
			Category  string             `json:"category"`
			Nutrients map[string]float64 `json:"nutrients"` // per 100 g
		} `json:"food"`
	} `json:"hints"`
}

// Search calls the parser endpoint and maps the hints, including the per-100 g
// nutrient block the parser already carries.
func (s *EdamamService) Search(query string, limit int) ([]models.FoodItem, error) {
	u := fmt.Sprintf(
		"https://api.edamam.com/api/food-database/v2/parser?ingr=%s&app_id=%s&app_key=%s",
		url.QueryEscape(query), s.foodAppID, s.foodAppKey,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("call parser: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read parser response: %w", err)
	}
	if err := statusToErr(resp.StatusCode, body); err != nil {
		return nil, err
	}

	var pr foodParserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("parse parser JSON: %w", err)
	}

	results := make([]models.FoodItem, 0, len(pr.Hints))
	for _, h := range pr.Hints {
		if limit > 0 && len(results) >= limit {
			break
		}
		results = append(results, models.FoodItem{
			CatalogID: h.Food.FoodID,
			Label:     h.Food.Label,
			Category:  h.Food.Category,
			PerRef:    mapNutrients(h.Food.Nutrients),
		})
	}
	return results, nil
}

type nutrientsResponse struct {
	Ingredients []struct {
		Parsed []struct {
			Food         string `json:"food"`
			FoodID       string `json:"foodId"`
			FoodCategory string `json:"foodCategory,omitempty"`
		} `json:"parsed"`
	} `json:"ingredients"`
	TotalNutrients map[string]struct {
		Quantity float64 `json:"quantity"`
	} `json:"totalNutrients"`
}

// NutritionPer100g asks the nutrients endpoint for 100 g of the food, which
// yields the per-reference record every later scaling starts from.
func (s *EdamamService) NutritionPer100g(foodID string) (*models.FoodItem, error) {
	payload := map[string]interface{}{
		"ingredients": []map[string]interface{}{{
			"quantity":   float64(ReferenceAmountGrams),
			"measureURI": gramMeasureURI,
			"foodId":     foodID,
		}},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal nutrients payload: %w", err)
	}

	u := fmt.Sprintf(
		"https://api.edamam.com/api/food-database/v2/nutrients?app_id=%s&app_key=%s",
		s.nutriAppID, s.nutriAppKey,
	)

	req, err := http.NewRequest(http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create nutrients request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call nutrients API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read nutrients response: %w", err)
	}
	if err := statusToErr(resp.StatusCode, body); err != nil {
		return nil, err
	}

	var nr nutrientsResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("parse nutrients JSON: %w", err)
	}

	flat := make(map[string]float64, len(nr.TotalNutrients))
	for k, v := range nr.TotalNutrients {
		flat[k] = v.Quantity
	}

	item := &models.FoodItem{CatalogID: foodID, PerRef: mapNutrients(flat)}
	if len(nr.Ingredients) > 0 && len(nr.Ingredients[0].Parsed) > 0 {
		p := nr.Ingredients[0].Parsed[0]
		item.Label = p.Food
		item.Category = p.FoodCategory
	}
	return item, nil
}

// statusToErr distinguishes the two recoverable catalog failures from
// everything else.
func statusToErr(code int, body []byte) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrFoodNotFound
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("edamam API error %d: %s", code, string(body))
	}
}

// mapNutrients translates Edamam nutrient codes into our shape.
func mapNutrients(nut map[string]float64) models.Nutrition {
	return models.Nutrition{
		Calories:  nut["ENERC_KCAL"],
		Protein:   nut["PROCNT"],
		Carbs:     nut["CHOCDF"],
		Fat:       nut["FAT"],
		Fiber:     nut["FIBTG"],
		Sugar:     nut["SUGAR"],
		Sodium:    nut["NA"],
		Potassium: nut["K"],
		Calcium:   nut["CA"],
		Iron:      nut["FE"],
	}
}
