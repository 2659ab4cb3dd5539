package entity

type IngredientCategory string

const (
	IngredientProteina IngredientCategory = "proteina"
	IngredientVegetal  IngredientCategory = "vegetal"
	IngredientMolho    IngredientCategory = "molho"
	IngredientTempero  IngredientCategory = "tempero"
	IngredientOutro    IngredientCategory = "outro"
)

func (c IngredientCategory) Valid() bool {
	switch c {
	case IngredientProteina, IngredientVegetal, IngredientMolho, IngredientTempero, IngredientOutro:
		return true
	}
	return false
}
