package extract

// Column positions in item.data. The export has no header row; these indexes are
// the only contract with the file layout.
const (
	BaseKeyColumn         = 0
	BaseDescriptionColumn = 1
	BaseListColumn        = 6
	BaseCostColumn        = 8
	BaseGroupColumn       = 18
	BaseBarcodesColumn    = 43
	BaseWeightColumn      = 45
)

// BaseAlternateKeyColumns lists the alternate SKU columns of item.data.
var BaseAlternateKeyColumns = [...]int{40, 41, 42}

// Column positions in item_posted.data.
const (
	PostedKeyColumn      = 0
	PostedLastSoldColumn = 1
	PostedStockColumn    = 19
)
