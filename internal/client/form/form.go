// Package form holds the owner form rules applied before anything is sent.
package form

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"parkospace/config"
	"parkospace/internal/client/state"
	"parkospace/internal/domain/entity"

	"parkospace/internal/errors"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrPhoneInvalid  = errors.New("phone must have at least 10 digits")
	ErrEmailInvalid  = errors.New("email is invalid")
	ErrCodeRequired  = errors.New("verification code is required")
	ErrTitleRequired = errors.New("title is required")
)

const minPhoneDigits = 10

// Signup is the owner login form.
type Signup struct {
	Name  string
	Phone string
	Email string
}

// Validate checks the fields needed to request a code.
func (s Signup) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrNameRequired
	}
	if digits(s.Phone) < minPhoneDigits {
		return ErrPhoneInvalid
	}
	if !strings.Contains(s.Email, "@") {
		return ErrEmailInvalid
	}

	return nil
}

func digits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}

	return n
}

// Fields is what the owner typed. Zero prices mean "not entered".
// MonthlyEdited is set once the owner typed a monthly price themselves.
type Fields struct {
	Title         string
	Desc          string
	AreaLandmark  string
	Length        float64
	Breadth       float64
	Hourly        float64
	Daily         float64
	Monthly       float64
	MonthlyEdited bool
	Amenities     []string
	IsSold        bool
	GmapLink      string
}

// FieldsOf pre-fills the form with an existing listing.
func FieldsOf(l *entity.Listing) Fields {
	return Fields{
		Title:         l.Title,
		Desc:          l.Desc,
		AreaLandmark:  l.AreaLandmark,
		Length:        l.Dimensions.Length,
		Breadth:       l.Dimensions.Breadth,
		Hourly:        l.Pricing.Hourly,
		Daily:         l.Pricing.Daily,
		Monthly:       l.Pricing.Monthly,
		MonthlyEdited: true,
		Amenities:     l.Amenities,
		IsSold:        l.IsSold,
		GmapLink:      l.GmapLink,
	}
}

// Preview applies the price suggestions. It only acts while creating and once the area is known:
// unset hourly and daily take the configured defaults, and monthly follows the area
// unless the owner overrode it.
func Preview(f Fields, mode state.FormMode, pricing *config.PricingConfig) Fields {
	area := f.Length * f.Breadth
	if mode != state.FormCreating || area <= 0 {
		return f
	}

	if f.Hourly == 0 {
		f.Hourly = pricing.Hourly
	}
	if f.Daily == 0 {
		f.Daily = pricing.Daily
	}
	if !f.MonthlyEdited {
		f.Monthly = area * pricing.MonthlyRatePerSqm
	}

	return f
}

// Jitter returns a point offset from p by up to half of width degrees on each axis.
// rnd returns values in [0, 1); nil uses the global source.
func Jitter(p entity.GeoPoint, width float64, rnd func() float64) entity.GeoPoint {
	if rnd == nil {
		rnd = rand.Float64
	}

	return p.Offset(rnd()*width-width/2, rnd()*width-width/2)
}

// Draft builds the listing draft to submit. The location is the pending geocoded place when
// there is one. Otherwise a new listing gets a jittered reference point and an edited listing
// keeps its stored location.
func Draft(f Fields, form state.Form, reference entity.GeoPoint, jitterWidth float64, rnd func() float64) (*entity.ListingDraft, error) {
	if strings.TrimSpace(f.Title) == "" {
		return nil, ErrTitleRequired
	}

	draft := &entity.ListingDraft{
		Title:        strings.TrimSpace(f.Title),
		Desc:         f.Desc,
		AreaLandmark: f.AreaLandmark,
		Dimensions:   entity.Dimensions{Length: f.Length, Breadth: f.Breadth},
		Pricing:      entity.Pricing{Hourly: f.Hourly, Daily: f.Daily, Monthly: f.Monthly},
		Amenities:    f.Amenities,
		IsSold:       f.IsSold,
		GmapLink:     f.GmapLink,
	}

	switch {
	case form.Pending != nil:
		loc := form.Pending.Point
		draft.Location = &loc
		draft.AddressText = form.Pending.Address
	case form.Mode == state.FormCreating:
		loc := Jitter(reference, jitterWidth, rnd)
		draft.Location = &loc
	}

	if err := draft.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	return draft, nil
}
