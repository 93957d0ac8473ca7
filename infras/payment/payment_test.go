package payment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"parkdz/config"
	"parkdz/infras/otel/mocks"
	"parkdz/infras/payment"
)

func TestBaridiMobGateway_Charge(t *testing.T) {
	cfg := &config.Config{}
	cfg.Payment.MockToken = "mock-baridi-mob-token"

	gateway := payment.NewBaridiMob(cfg, mocks.NewOtel())

	t.Run("valid token settles transaction", func(t *testing.T) {
		transaction, err := gateway.Charge(context.Background(), "mock-baridi-mob-token", 5000)

		assert.NoError(t, err)
		assert.NotEmpty(t, transaction.ID)
		assert.Equal(t, "baridimob", transaction.Provider)
		assert.Equal(t, 5000.0, transaction.AmountDzd)
		assert.NotEmpty(t, transaction.ProcessedAt)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		_, err := gateway.Charge(context.Background(), "wrong-token", 5000)

		assert.ErrorIs(t, err, payment.ErrInvalidToken)
	})
}
