package domain

// Stock is a storage location holding a quantity of articles against a minimum
// replenishment threshold.
type Stock struct {
	ID          int64
	Label       string
	Quantity    int
	MinQuantity int
}

// IsLow reports whether the quantity has fallen strictly below the minimum
// threshold. A stock sitting exactly at the threshold is not low.
func (s Stock) IsLow() bool {
	return s.Quantity < s.MinQuantity
}
