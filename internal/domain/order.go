package domain

// OrderStatus is a step in the fulfilment workflow
type OrderStatus string

const (
	OrderReceived       OrderStatus = "Order received"
	OrderPreparing      OrderStatus = "Preparing"
	OrderReadyForPickup OrderStatus = "Ready for Pickup"
	OrderOutForDelivery OrderStatus = "Out for delivery"
	OrderDelivered      OrderStatus = "Delivered"
	OrderCancelled      OrderStatus = "Cancelled"
)

// IsTerminal reports whether no further status changes are possible
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// DeliveryPartner is the courier assigned once an order leaves the store
type DeliveryPartner string

const (
	PartnerUber DeliveryPartner = "Uber"
	PartnerGrab DeliveryPartner = "Grab"
	PartnerSelf DeliveryPartner = "Self"
)

// Valid reports whether p is a known partner
func (p DeliveryPartner) Valid() bool {
	switch p {
	case PartnerUber, PartnerGrab, PartnerSelf:
		return true
	}
	return false
}

// Order is created at checkout and only changes through admin status updates
type Order struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Total           float64         `json:"total"`
	Status          OrderStatus     `json:"status"`
	Items           []ReviewItem    `json:"items"`
	CustomerName    string          `json:"customerName,omitempty"`
	DeliveryPartner DeliveryPartner `json:"deliveryPartner,omitempty"`
}

// OrderStats summarises the order log and product database for the admin dashboard
type OrderStats struct {
	TotalSales    float64 `json:"totalSales"`
	TotalOrders   int     `json:"totalOrders"`
	PendingOrders int     `json:"pendingOrders"`
	LowStock      int     `json:"lowStock"`
	TotalProducts int     `json:"totalProducts"`
	TotalRecipes  int     `json:"totalRecipes"`
}
