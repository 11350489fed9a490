package entity

// ShopCategory tags a shop with the kind of goods it sells.
type ShopCategory string

const (
	ShopCategoryArt           ShopCategory = "art"
	ShopCategoryClothing      ShopCategory = "clothing"
	ShopCategoryJewelry       ShopCategory = "jewelry"
	ShopCategoryHomeLiving    ShopCategory = "home_living"
	ShopCategoryCraftSupplies ShopCategory = "craft_supplies"
	ShopCategoryVintage       ShopCategory = "vintage"
	ShopCategoryToys          ShopCategory = "toys"
	ShopCategoryElectronics   ShopCategory = "electronics"
	ShopCategoryFood          ShopCategory = "food"
	ShopCategoryOther         ShopCategory = "other"
)

// ShopCategories lists every accepted category in display order.
func ShopCategories() []ShopCategory {
	return []ShopCategory{
		ShopCategoryArt,
		ShopCategoryClothing,
		ShopCategoryJewelry,
		ShopCategoryHomeLiving,
		ShopCategoryCraftSupplies,
		ShopCategoryVintage,
		ShopCategoryToys,
		ShopCategoryElectronics,
		ShopCategoryFood,
		ShopCategoryOther,
	}
}

// String returns the string representation of the ShopCategory.
func (c ShopCategory) String() string {
	return string(c)
}

// IsValid checks if the ShopCategory is a known value.
func (c ShopCategory) IsValid() bool {
	switch c {
	case ShopCategoryArt, ShopCategoryClothing, ShopCategoryJewelry, ShopCategoryHomeLiving,
		ShopCategoryCraftSupplies, ShopCategoryVintage, ShopCategoryToys, ShopCategoryElectronics,
		ShopCategoryFood, ShopCategoryOther:
		return true
	default:
		return false
	}
}
