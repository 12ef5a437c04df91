package constant

const (
	DeliveryDateLayout  = "2006-01-02"
	DefaultDeliveryDays = 14
	MaxDeliveryDays     = 30

	BookingStatusCancelled = "CANCELLED"
)
