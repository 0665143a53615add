package catalog

// Category 裝置頂層分類（封閉枚舉）
type Category string

const (
	CategoryLaptop    Category = "laptop"
	CategoryMobile    Category = "mobile"
	CategoryHeadphone Category = "headphone"
	CategoryKeyboard  Category = "keyboard"
)

// Categories 所有合法分類，依網站導覽順序
var Categories = []Category{CategoryLaptop, CategoryMobile, CategoryHeadphone, CategoryKeyboard}

// IsValid 檢查分類是否在枚舉內
func (c Category) IsValid() bool {
	switch c {
	case CategoryLaptop, CategoryMobile, CategoryHeadphone, CategoryKeyboard:
		return true
	}
	return false
}

// CategoryInfo 分類的展示資訊與允許的子分類
type CategoryInfo struct {
	ID            Category      `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory 子分類
type Subcategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Device 型錄條目，載入後不再變動
type Device struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    Category          `json:"category"`
	Subcategory string            `json:"subcategory"`
	Brand       string            `json:"brand"`
	Price       float64           `json:"price"`
	Rating      float64           `json:"rating"`
	Description string            `json:"description"`
	Specs       map[string]string `json:"specs"`
	Features    []string          `json:"features"`
	InStock     bool              `json:"inStock"`
}
