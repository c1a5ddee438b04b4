package get_listing_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/bookings/models"
	"github.com/m04kA/FlexDesk-BookingService/pkg/ptr"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// date задаёт один день и имеет приоритет над startDate/endDate.
func ToServiceRequest(listingID, userID int64, query url.Values) (*models.GetListingBookingsRequest, error) {
	req := &models.GetListingBookingsRequest{
		UserID:    userID,
		ListingID: listingID,
	}

	if desk := strings.TrimSpace(query.Get("deskLabel")); desk != "" {
		req.DeskLabel = ptr.Ptr(desk)
	}

	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if startStr := query.Get("startDate"); startStr != "" {
			start, err := time.Parse(domain.DateFormat, startStr)
			if err != nil {
				return nil, fmt.Errorf("invalid startDate: %w", err)
			}
			req.StartDate = &start
		}
		if endStr := query.Get("endDate"); endStr != "" {
			end, err := time.Parse(domain.DateFormat, endStr)
			if err != nil {
				return nil, fmt.Errorf("invalid endDate: %w", err)
			}
			req.EndDate = &end
		}
	}

	if onlyActiveStr := query.Get("onlyActive"); onlyActiveStr != "" {
		onlyActive, err := strconv.ParseBool(onlyActiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid onlyActive value: %w", err)
		}
		req.OnlyActive = onlyActive
	}

	return req, nil
}
