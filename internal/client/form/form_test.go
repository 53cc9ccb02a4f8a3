package form_test

import (
	"testing"

	"parkospace/config"
	"parkospace/internal/client/form"
	"parkospace/internal/client/state"
	"parkospace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reference = entity.GeoPoint{Lat: 12.9716, Lng: 77.5946}

func TestSignup_Validate(t *testing.T) {
	valid := form.Signup{Name: "Asha", Phone: "98765 43210", Email: "asha@example.com"}

	tests := []struct {
		name   string
		signup form.Signup
		err    error
	}{
		{"valid", valid, nil},
		{"missing name", form.Signup{Name: " ", Phone: valid.Phone, Email: valid.Email}, form.ErrNameRequired},
		{"short phone", form.Signup{Name: "Asha", Phone: "12345", Email: valid.Email}, form.ErrPhoneInvalid},
		{"bad email", form.Signup{Name: "Asha", Phone: valid.Phone, Email: "asha.example.com"}, form.ErrEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.signup.Validate()
			if tt.err == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestPreview_ComputesMonthlyFromArea(t *testing.T) {
	f := form.Preview(form.Fields{Length: 5, Breadth: 4, Hourly: 50}, state.FormCreating, config.DefaultPricingConfig())

	assert.Equal(t, 2000.0, f.Monthly)
	assert.Equal(t, 50.0, f.Hourly)
	assert.Equal(t, 300.0, f.Daily)
}

func TestPreview_KeepsOverrides(t *testing.T) {
	pricing := config.DefaultPricingConfig()

	f := form.Preview(form.Fields{Length: 5, Breadth: 4, Hourly: 80, Daily: 500, Monthly: 1500, MonthlyEdited: true}, state.FormCreating, pricing)
	assert.Equal(t, 80.0, f.Hourly)
	assert.Equal(t, 500.0, f.Daily)
	assert.Equal(t, 1500.0, f.Monthly)
}

func TestPreview_NoOpWhileEditingOrWithoutArea(t *testing.T) {
	pricing := config.DefaultPricingConfig()

	editing := form.Fields{Length: 5, Breadth: 4, Monthly: 900}
	assert.Equal(t, editing, form.Preview(editing, state.FormEditing, pricing))

	empty := form.Fields{Length: 5}
	assert.Equal(t, empty, form.Preview(empty, state.FormCreating, pricing))
}

func TestJitter_StaysWithinHalfWidth(t *testing.T) {
	for _, r := range []float64{0, 0.25, 0.5, 0.999} {
		rnd := func() float64 { return r }
		p := form.Jitter(reference, 0.005, rnd)

		assert.InDelta(t, reference.Lat, p.Lat, 0.0025+1e-12)
		assert.InDelta(t, reference.Lng, p.Lng, 0.0025+1e-12)
	}

	centered := form.Jitter(reference, 0.005, func() float64 { return 0.5 })
	assert.InDelta(t, reference.Lat, centered.Lat, 1e-12)
}

func TestDraft_CreatingWithoutPendingJitters(t *testing.T) {
	draft, err := form.Draft(form.Fields{Title: "Bay"}, state.Form{Mode: state.FormCreating}, reference, 0.005, func() float64 { return 1 })
	require.NoError(t, err)
	require.NotNil(t, draft.Location)

	assert.InDelta(t, reference.Lat+0.0025, draft.Location.Lat, 1e-9)
	assert.Empty(t, draft.AddressText)
}

func TestDraft_PendingLocationWins(t *testing.T) {
	pending := &entity.Place{Point: entity.GeoPoint{Lat: 12.93, Lng: 77.62}, Address: "Koramangala"}

	for _, mode := range []state.FormMode{state.FormCreating, state.FormEditing} {
		draft, err := form.Draft(form.Fields{Title: "Bay"}, state.Form{Mode: mode, Pending: pending}, reference, 0.005, nil)
		require.NoError(t, err)

		assert.Equal(t, pending.Point, *draft.Location)
		assert.Equal(t, "Koramangala", draft.AddressText)
	}
}

func TestDraft_EditingKeepsStoredLocation(t *testing.T) {
	draft, err := form.Draft(form.Fields{Title: "Bay"}, state.Form{Mode: state.FormEditing, EditingID: uuid.New()}, reference, 0.005, nil)
	require.NoError(t, err)

	assert.Nil(t, draft.Location)
}

func TestDraft_RequiresTitle(t *testing.T) {
	_, err := form.Draft(form.Fields{Title: "  "}, state.Form{}, reference, 0.005, nil)
	assert.ErrorIs(t, err, form.ErrTitleRequired)

	_, err = form.Draft(form.Fields{Title: "Bay", Length: -1}, state.Form{}, reference, 0.005, nil)
	assert.ErrorIs(t, err, entity.ErrNegativeDimension)
}

func TestFieldsOf(t *testing.T) {
	l := &entity.Listing{Title: "Bay", Dimensions: entity.Dimensions{Length: 5, Breadth: 4}, Pricing: entity.Pricing{Monthly: 1800}}

	f := form.FieldsOf(l)
	assert.Equal(t, "Bay", f.Title)
	assert.True(t, f.MonthlyEdited)
	assert.Equal(t, 1800.0, form.Preview(f, state.FormCreating, config.DefaultPricingConfig()).Monthly)
}
