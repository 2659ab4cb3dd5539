package configs

import (
	"log"

	"github.com/Mawltheus/acaraje-manager/entity"
)

// SeedOrderCounter guarantees the single counter row exists before the
// first order is created.
func SeedOrderCounter() error {
	return db.FirstOrCreate(&entity.OrderCounter{}, entity.OrderCounter{ID: 1}).Error
}

// SeedDemoData loads a small Salvador menu for local development.
// Skipped when there already are menu items.
func SeedDemoData() error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("skip demo seed: menu already populated")
		return nil
	}

	ingredients := []entity.Ingredient{
		{Name: "Vatapá", Category: entity.IngredientMolho, Description: "Molho tradicional baiano", Available: true},
		{Name: "Caruru", Category: entity.IngredientMolho, Description: "Molho de quiabo com camarão", Available: true},
		{Name: "Salada", Category: entity.IngredientVegetal, Description: "Salada fresca", Available: true},
		{Name: "Pimenta", Category: entity.IngredientTempero, Description: "Pimenta malagueta", Available: true},
		{Name: "Camarão", Category: entity.IngredientProteina, Description: "Camarão seco", Available: true},
	}
	if err := db.Create(&ingredients).Error; err != nil {
		return err
	}

	areas := []entity.DeliveryArea{
		{Name: "Pelourinho", Fee: 5, EstimatedTime: 20, Description: "Centro histórico", Active: true},
		{Name: "Barra", Fee: 8, EstimatedTime: 30, Description: "Bairro da Barra", Active: true},
		{Name: "Ondina", Fee: 10, EstimatedTime: 35, Description: "Ondina e adjacências", Active: true},
		{Name: "Rio Vermelho", Fee: 12, EstimatedTime: 40, Description: "Rio Vermelho", Active: true},
		{Name: "Liberdade", Fee: 6, EstimatedTime: 30, Description: "Temporariamente indisponível", Active: false},
	}
	if err := db.Create(&areas).Error; err != nil {
		return err
	}

	menu := []entity.MenuItem{
		{
			Name: "Acarajé Tradicional", Description: "Acarajé com vatapá, caruru, salada e pimenta",
			Category: entity.CategoryAcarajes, Price: 8, Available: true,
			Ingredients: []entity.Ingredient{ingredients[0], ingredients[1], ingredients[2], ingredients[3]},
		},
		{
			Name: "Acarajé Completo", Description: "Acarajé com vatapá, caruru, salada, camarão e pimenta",
			Category: entity.CategoryAcarajes, Price: 12, Available: true,
			Ingredients: []entity.Ingredient{ingredients[0], ingredients[1], ingredients[2], ingredients[3], ingredients[4]},
		},
		{
			Name: "Abará", Description: "Abará tradicional no vapor",
			Category: entity.CategoryAbaras, Price: 7, Available: true,
			Ingredients: []entity.Ingredient{ingredients[0], ingredients[2]},
		},
		{
			Name: "Água de Coco", Description: "Gelada, 300ml",
			Category: entity.CategoryBebidas, Price: 4, Available: true,
		},
	}
	return db.Create(&menu).Error
}
