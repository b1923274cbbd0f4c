package enum

// LineItemType tags each order line item as a service, a retail product or a
// membership tier sale.
type LineItemType string

const (
	LineItemTypeService    LineItemType = "service"
	LineItemTypeProduct    LineItemType = "product"
	LineItemTypeMembership LineItemType = "membership"
)

func (t LineItemType) String() string {
	return string(t)
}

func (t LineItemType) Valid() bool {
	switch t {
	case LineItemTypeService, LineItemTypeProduct, LineItemTypeMembership:
		return true
	}
	return false
}
