package repository

import (
	"fmt"
	"time"

	"souqly/internal/domain/entity"
)

// The listing collection spans two dataset generations: the first stored
// French field names, the current one English. Aliases are probed in order
// and the first present value wins. This table is the only place the legacy
// names may appear; nothing outside the ingestion boundary sees them.
//
// mapListingDoc converts one raw document into the canonical Listing. A
// document that cannot be converted is reported as an error so the caller
// can drop it from the page; it must never abort the whole page.
func mapListingDoc(id string, data map[string]interface{}) (*entity.Listing, error) {
	if data == nil {
		return nil, fmt.Errorf("listing %s: empty document", id)
	}

	name, err := stringField(data, "", "name", "titre")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	description, err := stringField(data, "", "description")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	price, err := floatField(data, 0, "price", "prix")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	quantity, err := intField(data, 1, "quantity", "quantite")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	category, err := stringField(data, "", "category", "categorie")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	condition, err := stringField(data, "", "condition", "etat")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	sellerID, err := stringField(data, "", "sellerId", "vendeurId")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	sellerName, err := stringField(data, "", "sellerName", "vendeurNom")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	sellerPhoto, err := stringField(data, "", "sellerPhoto")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	location, err := stringField(data, "", "location")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	exchange, err := boolField(data, false, "isAvailableForExchange")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	exchangePrefs, err := stringField(data, "", "exchangePreferences")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	status, err := stringField(data, entity.ListingStatusActive, "status")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}
	if status == "" {
		status = entity.ListingStatusActive
	}

	createdAt, err := millisField(data, "createdAt", "dateCreation")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	updatedAt, err := millisField(data, "updatedAt")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	images, err := stringListField(data, "images")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	keywords, err := stringListField(data, "searchKeywords")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	return &entity.Listing{
		ID:                     id,
		Name:                   name,
		Description:            description,
		Price:                  price,
		Quantity:               quantity,
		Category:               category,
		Condition:              condition,
		Images:                 images,
		SellerID:               sellerID,
		SellerName:             sellerName,
		SellerPhoto:            sellerPhoto,
		Location:               location,
		IsAvailableForExchange: exchange,
		ExchangePreferences:    exchangePrefs,
		SearchKeywords:         keywords,
		Status:                 status,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}, nil
}

func probe(data map[string]interface{}, aliases []string) (interface{}, bool) {
	for _, alias := range aliases {
		if value, present := data[alias]; present && value != nil {
			return value, true
		}
	}
	return nil, false
}

func stringField(data map[string]interface{}, fallback string, aliases ...string) (string, error) {
	raw, present := probe(data, aliases)
	if !present {
		return fallback, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %s: expected string, got %T", aliases[0], raw)
	}
	return value, nil
}

func floatField(data map[string]interface{}, fallback float64, aliases ...string) (float64, error) {
	raw, present := probe(data, aliases)
	if !present {
		return fallback, nil
	}
	switch value := raw.(type) {
	case float64:
		return value, nil
	case int64:
		return float64(value), nil
	case int:
		return float64(value), nil
	default:
		return 0, fmt.Errorf("field %s: expected number, got %T", aliases[0], raw)
	}
}

func intField(data map[string]interface{}, fallback int, aliases ...string) (int, error) {
	raw, present := probe(data, aliases)
	if !present {
		return fallback, nil
	}
	switch value := raw.(type) {
	case int64:
		return int(value), nil
	case int:
		return value, nil
	case float64:
		return int(value), nil
	default:
		return 0, fmt.Errorf("field %s: expected integer, got %T", aliases[0], raw)
	}
}

func boolField(data map[string]interface{}, fallback bool, aliases ...string) (bool, error) {
	raw, present := probe(data, aliases)
	if !present {
		return fallback, nil
	}
	value, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("field %s: expected bool, got %T", aliases[0], raw)
	}
	return value, nil
}

// millisField normalizes the three physical timestamp representations found
// in the stored data (platform timestamp, epoch millis, date) to epoch
// milliseconds. Missing fields default to the current time, which matches
// how the documents were originally written.
func millisField(data map[string]interface{}, aliases ...string) (int64, error) {
	raw, present := probe(data, aliases)
	if !present {
		return time.Now().UnixMilli(), nil
	}
	switch value := raw.(type) {
	case time.Time:
		return value.UnixMilli(), nil
	case int64:
		return value, nil
	case float64:
		return int64(value), nil
	default:
		return 0, fmt.Errorf("field %s: expected timestamp, got %T", aliases[0], raw)
	}
}

// stringListField accepts either a list of strings or a single bare string.
func stringListField(data map[string]interface{}, aliases ...string) ([]string, error) {
	raw, present := probe(data, aliases)
	if !present {
		return nil, nil
	}
	switch value := raw.(type) {
	case []string:
		return value, nil
	case []interface{}:
		items := make([]string, 0, len(value))
		for _, element := range value {
			if item, ok := element.(string); ok {
				items = append(items, item)
			}
		}
		return items, nil
	case string:
		return []string{value}, nil
	default:
		return nil, fmt.Errorf("field %s: expected string list, got %T", aliases[0], raw)
	}
}
