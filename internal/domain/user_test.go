package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fullName := "Mariana Zurita"

	tests := []struct {
		name      string
		username  string
		email     string
		fullName  *string
		prefs     *Preferences
		wantErr   error
		wantPrefs Preferences
	}{
		{
			name:      "defaults_applied_when_preferences_omitted",
			username:  "mariana",
			email:     "mariana@example.com",
			fullName:  &fullName,
			prefs:     nil,
			wantPrefs: Preferences{Theme: "light", Language: "es", Timezone: "UTC"},
		},
		{
			name:      "explicit_preferences_kept",
			username:  "mariana",
			email:     "mariana@example.com",
			prefs:     &Preferences{Theme: "dark", Language: "en", Timezone: "America/Bogota"},
			wantPrefs: Preferences{Theme: "dark", Language: "en", Timezone: "America/Bogota"},
		},
		{
			name:      "partial_preferences_filled_per_field",
			username:  "mariana",
			email:     "mariana@example.com",
			prefs:     &Preferences{Theme: "dark"},
			wantPrefs: Preferences{Theme: "dark", Language: "es", Timezone: "UTC"},
		},
		{
			name:    "empty_username_rejected",
			email:   "mariana@example.com",
			wantErr: ErrEmptyUsername,
		},
		{
			name:     "empty_email_rejected",
			username: "mariana",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "odd_email_shape_accepted",
			username: "mariana",
			email:    "not-an-email",
			// Email format is deliberately unchecked.
			wantPrefs: Preferences{Theme: "light", Language: "es", Timezone: "UTC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.username, tt.email, tt.fullName, tt.prefs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Zero(t, user.ID, "ID is assigned by the store, not the constructor")
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, tt.fullName, user.FullName)
			assert.Equal(t, tt.wantPrefs, user.Preferences)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestPreferencesNormalize(t *testing.T) {
	p := Preferences{Timezone: "Europe/Madrid"}
	p.Normalize()
	assert.Equal(t, Preferences{Theme: "light", Language: "es", Timezone: "Europe/Madrid"}, p)
}
