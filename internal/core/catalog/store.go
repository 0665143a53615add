package catalog

import (
	"fmt"
)

// Store 唯讀型錄。啟動時建立一次，之後可供多個請求並發讀取。
type Store struct {
	categories []CategoryInfo
	devices    []Device
	byCategory map[Category][]Device
}

// NewStore 以內建的靜態資料建立型錄
func NewStore() (*Store, error) {
	return NewStoreWith(seedCategories, seedDevices)
}

// NewStoreWith 以指定資料建立型錄並驗證分類體系。
// 分類或子分類打錯字在原始資料裡只會默默變成永遠空的分類，
// 這裡改成啟動時直接失敗。
func NewStoreWith(categories []CategoryInfo, devices []Device) (*Store, error) {
	subcategoryIndex := make(map[Category]map[string]struct{}, len(categories))
	for _, info := range categories {
		if !info.ID.IsValid() {
			return nil, fmt.Errorf("unknown category %q", info.ID)
		}
		subs := make(map[string]struct{}, len(info.Subcategories))
		for _, sub := range info.Subcategories {
			subs[sub.ID] = struct{}{}
		}
		subcategoryIndex[info.ID] = subs
	}

	seen := make(map[string]struct{}, len(devices))
	byCategory := make(map[Category][]Device, len(categories))
	for _, d := range devices {
		if d.ID == "" {
			return nil, fmt.Errorf("device %q has empty id", d.Name)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("duplicate device id %q", d.ID)
		}
		seen[d.ID] = struct{}{}

		subs, ok := subcategoryIndex[d.Category]
		if !ok {
			return nil, fmt.Errorf("device %q: unknown category %q", d.ID, d.Category)
		}
		if _, ok := subs[d.Subcategory]; !ok {
			return nil, fmt.Errorf("device %q: subcategory %q not in category %q", d.ID, d.Subcategory, d.Category)
		}
		if d.Price <= 0 {
			return nil, fmt.Errorf("device %q: price must be positive", d.ID)
		}
		if d.Rating < 0 || d.Rating > 5 {
			return nil, fmt.Errorf("device %q: rating %v out of range", d.ID, d.Rating)
		}

		byCategory[d.Category] = append(byCategory[d.Category], d)
	}

	return &Store{
		categories: categories,
		devices:    devices,
		byCategory: byCategory,
	}, nil
}

// Categories 回傳所有分類資訊
func (s *Store) Categories() []CategoryInfo {
	return s.categories
}

// Devices 回傳完整型錄，維持載入順序
func (s *Store) Devices() []Device {
	return s.devices
}

// ByCategory 回傳指定分類的裝置子集，維持型錄順序
func (s *Store) ByCategory(c Category) []Device {
	return s.byCategory[c]
}
