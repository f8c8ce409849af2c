package create_booking

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

var refModulus = big.NewInt(domain.BookingRefMax)

// makeBookingRef формирует код записи вида "<название>-NNNNNN"
// Код только для отображения клиенту, уникальность не гарантируется
func makeBookingRef(businessName string, random io.Reader) (string, error) {
	if random == nil {
		random = rand.Reader
	}
	n, err := rand.Int(random, refModulus)
	if err != nil {
		return "", fmt.Errorf("failed to generate booking reference: %w", err)
	}
	return fmt.Sprintf("%s-%0*d", businessName, domain.BookingRefDigits, n.Int64()), nil
}
