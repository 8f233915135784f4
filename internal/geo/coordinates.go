// Package geo разбирает координаты, введенные вручную.
package geo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shenikar/civic_tracker/internal/models"
)

// ParseCoordinates разбирает строку вида "28.6139, 77.2090".
// Адрес не заполняется.
func ParseCoordinates(value string) (models.Location, error) {
	latStr, lngStr, ok := strings.Cut(value, ",")
	if !ok {
		return models.Location{}, fmt.Errorf("%w: coordinates must be \"lat, lng\", got %q", models.ErrValidation, value)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: invalid latitude %q", models.ErrValidation, strings.TrimSpace(latStr))
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: invalid longitude %q", models.ErrValidation, strings.TrimSpace(lngStr))
	}

	loc := models.Location{Latitude: lat, Longitude: lng}
	if !loc.Valid() {
		return models.Location{}, fmt.Errorf("%w: coordinates out of range: %g, %g", models.ErrValidation, lat, lng)
	}
	return loc, nil
}

// Format возвращает координаты в том же виде, с шестью знаками после точки
func Format(l models.Location) string {
	return fmt.Sprintf("%.6f, %.6f", l.Latitude, l.Longitude)
}

// ParseBoundingBox разбирает параметр bbox вида "minLat,minLng,maxLat,maxLng"
func ParseBoundingBox(value string) (*models.BoundingBox, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: bbox must be \"minLat,minLng,maxLat,maxLng\", got %q", models.ErrValidation, value)
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid bbox value %q", models.ErrValidation, strings.TrimSpace(p))
		}
		v[i] = f
	}

	box := &models.BoundingBox{MinLatitude: v[0], MinLongitude: v[1], MaxLatitude: v[2], MaxLongitude: v[3]}
	lower := models.Location{Latitude: box.MinLatitude, Longitude: box.MinLongitude}
	upper := models.Location{Latitude: box.MaxLatitude, Longitude: box.MaxLongitude}
	if !lower.Valid() || !upper.Valid() || box.MinLatitude > box.MaxLatitude || box.MinLongitude > box.MaxLongitude {
		return nil, fmt.Errorf("%w: invalid bbox %q", models.ErrValidation, value)
	}
	return box, nil
}
