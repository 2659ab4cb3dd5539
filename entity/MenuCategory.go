package entity

type MenuCategory string

const (
	CategoryAcarajes MenuCategory = "acarajes"
	CategoryAbaras   MenuCategory = "abaras"
	CategoryBebidas  MenuCategory = "bebidas"
	CategoryOutros   MenuCategory = "outros"
)

func (c MenuCategory) Valid() bool {
	switch c {
	case CategoryAcarajes, CategoryAbaras, CategoryBebidas, CategoryOutros:
		return true
	}
	return false
}
