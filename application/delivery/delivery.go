package delivery

import (
	"context"
	"regexp"
	"time"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	deliveryrepo "github.com/muhammadheryan/storefront/repository/delivery"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

var dateFromPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type DeliveryApp interface {
	GetAvailability(ctx context.Context, dateFrom string, days int) (*model.DeliveryAvailabilityResponse, error)
}

type deliveryAppImpl struct {
	deliveryRepo deliveryrepo.DeliveryRepository
}

func NewDeliveryApp(deliveryRepo deliveryrepo.DeliveryRepository) DeliveryApp {
	return &deliveryAppImpl{deliveryRepo: deliveryRepo}
}

// GetAvailability expands every active slot over [dateFrom, dateFrom+days)
// and subtracts non-cancelled bookings. days <= 0 means the default window.
func (s *deliveryAppImpl) GetAvailability(ctx context.Context, dateFrom string, days int) (*model.DeliveryAvailabilityResponse, error) {
	if dateFrom == "" {
		return nil, errors.SetCustomError(constant.ErrMissingDateFrom)
	}
	if !dateFromPattern.MatchString(dateFrom) {
		return nil, errors.SetCustomError(constant.ErrInvalidDateFrom)
	}
	start, err := time.Parse(constant.DeliveryDateLayout, dateFrom)
	if err != nil {
		// shape is right but the date does not exist, e.g. 2024-13-01
		return nil, errors.SetCustomError(constant.ErrInvalidDateFrom)
	}

	switch {
	case days <= 0:
		days = constant.DefaultDeliveryDays
	case days > constant.MaxDeliveryDays:
		days = constant.MaxDeliveryDays
	}
	end := start.AddDate(0, 0, days)

	slots, err := s.deliveryRepo.ListActiveSlots(ctx)
	if err != nil {
		logger.Error("[GetAvailability] list slots", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	counts, err := s.deliveryRepo.CountActiveBookings(ctx, start, end)
	if err != nil {
		logger.Error("[GetAvailability] count bookings", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	booked := make(map[string]int, len(counts))
	for _, c := range counts {
		booked[bookingKey(c.Date.Format(constant.DeliveryDateLayout), c.SlotID)] += c.ActiveCount
	}

	resp := &model.DeliveryAvailabilityResponse{
		Availability: make([]model.DeliverySlot, 0, days*len(slots)),
		ByDate:       make(map[string][]model.DeliverySlot, days),
	}
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d).Format(constant.DeliveryDateLayout)
		for _, slot := range slots {
			active := booked[bookingKey(date, slot.ID)]
			remaining := slot.MaxDeliveries - active
			if remaining < 0 {
				remaining = 0
			}
			row := model.DeliverySlot{
				Date:          date,
				SlotID:        slot.ID,
				Label:         slot.Label,
				StartTime:     slot.StartTime,
				EndTime:       slot.EndTime,
				MaxDeliveries: slot.MaxDeliveries,
				ActiveCount:   active,
				Remaining:     remaining,
			}
			resp.Availability = append(resp.Availability, row)
			resp.ByDate[date] = append(resp.ByDate[date], row)
		}
	}
	return resp, nil
}

func bookingKey(date, slotID string) string {
	return date + "|" + slotID
}
