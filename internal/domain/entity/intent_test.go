package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeliveryKey_CollapsesWithinWindow(t *testing.T) {
	userID := uuid.New()
	window := 5 * time.Minute
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	first := DeliveryKey(KindGameCreated, "game-42", userID, ChannelPush, base.Add(10*time.Second), window)
	second := DeliveryKey(KindGameCreated, "game-42", userID, ChannelPush, base.Add(4*time.Minute), window)

	assert.Equal(t, first, second)
}

func TestDeliveryKey_DiffersAcrossWindows(t *testing.T) {
	userID := uuid.New()
	window := 5 * time.Minute
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	first := DeliveryKey(KindGameCreated, "game-42", userID, ChannelPush, base, window)
	second := DeliveryKey(KindGameCreated, "game-42", userID, ChannelPush, base.Add(window), window)

	assert.NotEqual(t, first, second)
}

func TestDeliveryKey_DiffersPerDimension(t *testing.T) {
	userID := uuid.New()
	window := 5 * time.Minute
	at := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	base := DeliveryKey(KindGameCreated, "game-42", userID, ChannelPush, at, window)

	assert.NotEqual(t, base, DeliveryKey(KindGameClosed, "game-42", userID, ChannelPush, at, window))
	assert.NotEqual(t, base, DeliveryKey(KindGameCreated, "game-43", userID, ChannelPush, at, window))
	assert.NotEqual(t, base, DeliveryKey(KindGameCreated, "game-42", uuid.New(), ChannelPush, at, window))
	assert.NotEqual(t, base, DeliveryKey(KindGameCreated, "game-42", userID, ChannelWebPush, at, window))
}

func TestRecipientRegistration_Allows(t *testing.T) {
	registration := &RecipientRegistration{
		Preferences: map[IntentKind]bool{
			KindGameClosingSoon: false,
			KindCustom:          true,
		},
	}

	assert.False(t, registration.Allows(KindGameClosingSoon))
	assert.True(t, registration.Allows(KindCustom))
	assert.True(t, registration.Allows(KindGameCreated)) // absent means allowed

	var nilPrefs RecipientRegistration
	assert.True(t, nilPrefs.Allows(KindGameCreated))
}

func TestChannel_Addressable(t *testing.T) {
	assert.True(t, ChannelPush.Addressable())
	assert.True(t, ChannelWebPush.Addressable())
	assert.False(t, ChannelInApp.Addressable())
}
