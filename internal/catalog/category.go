package catalog

// Category identifies one catalog grouping. The value is the Chinese
// display name, which is also what the store persists. Routing by
// category goes through this table rather than ad-hoc string matching.
type Category string

const (
	CategoryAnimals    Category = "动物世界"
	CategoryFruits     Category = "美味水果"
	CategoryVegetables Category = "新鲜蔬菜"
	CategoryVehicles   Category = "交通工具"
	CategoryDaily      Category = "日常用品"
	CategoryNature     Category = "自然现象"
	CategoryFood       Category = "食物与饮料"
	CategoryBody       Category = "身体部位"

	// AllCategories is the sentinel for "sample across the whole catalog".
	AllCategories Category = ""
)

// Info carries the display and media metadata for a category.
type Info struct {
	Category Category
	NameEN   string
	Icon     string
	AudioRes string
	// BaseID is the first external item id assigned to this category.
	BaseID int64
}

var infos = []Info{
	{CategoryAnimals, "Animals", "🐾", "cat_animals", 1},
	{CategoryFruits, "Fruits", "🍎", "cat_fruits", 101},
	{CategoryVegetables, "Vegetables", "🥕", "cat_vegetables", 201},
	{CategoryVehicles, "Vehicles", "🚗", "cat_transport", 301},
	{CategoryDaily, "Daily Items", "🏠", "cat_daily", 401},
	{CategoryNature, "Nature", "🌈", "cat_nature", 501},
	{CategoryFood, "Food & Drink", "🍞", "cat_food", 601},
	{CategoryBody, "Body Parts", "👀", "cat_body", 701},
}

// All returns every category in display order.
func All() []Category {
	cats := make([]Category, len(infos))
	for i, info := range infos {
		cats[i] = info.Category
	}
	return cats
}

// Lookup returns the Info for a category, or false if unknown.
func Lookup(c Category) (Info, bool) {
	for _, info := range infos {
		if info.Category == c {
			return info, true
		}
	}
	return Info{}, false
}

// Valid reports whether c names a known category.
func Valid(c Category) bool {
	_, ok := Lookup(c)
	return ok
}

// DisplayName returns the Chinese label, or "全部随机" for the sentinel.
func (c Category) DisplayName() string {
	if c == AllCategories {
		return "全部随机"
	}
	return string(c)
}

// Icon returns the category icon, or a generic one for the sentinel.
func (c Category) Icon() string {
	if info, ok := Lookup(c); ok {
		return info.Icon
	}
	return "🎲"
}
