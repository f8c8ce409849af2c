package get_business_info

import (
	"github.com/m04kA/barbershop-booking/internal/config"
	"github.com/m04kA/barbershop-booking/internal/domain"
)

// BusinessInfoResponse HTTP response model
type BusinessInfoResponse struct {
	Name                string       `json:"name"`
	Tagline             string       `json:"tagline"`
	Phone               string       `json:"phone"`
	CallURL             string       `json:"callUrl"`
	WhatsAppURL         string       `json:"whatsappUrl,omitempty"`
	Address             string       `json:"address"`
	HoursText           string       `json:"hoursText"`
	InstagramURL        string       `json:"instagramUrl,omitempty"`
	GoogleMapsURL       string       `json:"googleMapsUrl,omitempty"`
	BookingHours        BookingHours `json:"bookingHours"`
	SlotIntervalMinutes int          `json:"slotIntervalMinutes"`
	MaxDaysAhead        int          `json:"maxDaysAhead"`
}

// BookingHours часы онлайн-записи по типу дня
type BookingHours struct {
	Weekday Hours `json:"weekday"`
	Weekend Hours `json:"weekend"`
}

type Hours struct {
	Open  string `json:"open"`  // "14:00"
	Close string `json:"close"` // "20:00"
}

// FromConfig собирает ответ из конфигурации заведения
func FromConfig(business config.BusinessConfig, booking config.BookingConfig, hours domain.BusinessHours) *BusinessInfoResponse {
	resp := &BusinessInfoResponse{
		Name:          business.Name,
		Tagline:       business.Tagline,
		Phone:         business.Phone,
		Address:       business.Address,
		HoursText:     business.HoursText,
		InstagramURL:  business.InstagramURL,
		GoogleMapsURL: business.GoogleMapsURL,
		BookingHours: BookingHours{
			Weekday: Hours{Open: hours.Weekday.Open.Label(), Close: hours.Weekday.Close.Label()},
			Weekend: Hours{Open: hours.Weekend.Open.Label(), Close: hours.Weekend.Close.Label()},
		},
		SlotIntervalMinutes: booking.SlotIntervalMinutes,
		MaxDaysAhead:        booking.MaxDaysAhead,
	}
	if business.Phone != "" {
		resp.CallURL = "tel:" + business.Phone
	}
	if business.WhatsApp != "" {
		resp.WhatsAppURL = "https://wa.me/" + business.WhatsApp
	}
	return resp
}
