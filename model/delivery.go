package model

import "time"

type DeliverySlotDefinition struct {
	ID            string `db:"id"`
	Label         string `db:"label"`
	StartTime     string `db:"start_time"`
	EndTime       string `db:"end_time"`
	MaxDeliveries int    `db:"max_deliveries"`
}

type DeliveryBookingCount struct {
	Date        time.Time `db:"delivery_date"`
	SlotID      string    `db:"slot_id"`
	ActiveCount int       `db:"active_count"`
}

// DeliverySlot is one date × slot availability row.
type DeliverySlot struct {
	Date          string `json:"date"`
	SlotID        string `json:"slot_id"`
	Label         string `json:"label"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	MaxDeliveries int    `json:"max_deliveries"`
	ActiveCount   int    `json:"active_count"`
	Remaining     int    `json:"remaining"`
}

type DeliveryAvailabilityResponse struct {
	Availability []DeliverySlot            `json:"availability"`
	ByDate       map[string][]DeliverySlot `json:"byDate"`
}
