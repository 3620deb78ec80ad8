package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCredential_Valid(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cred *Credential
		want bool
	}{
		{name: "nil credential", cred: nil, want: false},
		{name: "empty token", cred: &Credential{ExpiresAt: now.Add(time.Hour)}, want: false},
		{name: "future expiry", cred: &Credential{Token: "t", ExpiresAt: now.Add(time.Hour)}, want: true},
		{name: "expires exactly now", cred: &Credential{Token: "t", ExpiresAt: now}, want: false},
		{name: "past expiry", cred: &Credential{Token: "t", ExpiresAt: now.Add(-time.Second)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cred.Valid(now))
		})
	}
}

func TestChangeType_Valid(t *testing.T) {
	t.Parallel()

	for _, ct := range ChangeTypes {
		assert.True(t, ct.Valid(), ct)
	}
	assert.False(t, ChangeType("price_changed").Valid())
	assert.True(t, ChangePriceDecrease.IsPrice())
	assert.False(t, ChangeQuantityChanged.IsPrice())
}

func TestSubscriber_Wants(t *testing.T) {
	t.Parallel()

	s := Subscriber{UserID: 1, ReceiveApple: true}
	assert.True(t, s.Wants(CategoryApple))
	assert.False(t, s.Wants(CategoryOther))
	assert.False(t, s.Wants(Category("unknown")))
}
