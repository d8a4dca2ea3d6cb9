package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/YelzhanWeb/takeaway/internal/domain"
)

type menuFile struct {
	Dishes []struct {
		Name  string `yaml:"name"`
		Price string `yaml:"price"`
	} `yaml:"dishes"`
}

// LoadMenuFile reads a YAML dish list in file order
func LoadMenuFile(path string) ([]domain.Dish, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}
	return ParseMenu(data)
}

func ParseMenu(data []byte) ([]domain.Dish, error) {
	var mf menuFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse menu yaml: %w", err)
	}

	dishes := make([]domain.Dish, 0, len(mf.Dishes))
	for i, d := range mf.Dishes {
		price, err := decimal.NewFromString(d.Price)
		if err != nil {
			return nil, fmt.Errorf("dishes[%d].price: %w", i, err)
		}
		dish := domain.NewDish(d.Name, price)
		if err := dish.Validate(); err != nil {
			return nil, fmt.Errorf("dishes[%d]: %w", i, err)
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}
