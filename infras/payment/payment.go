// Package payment abstracts the external payment provider. The only
// implementation today is a BaridiMob mock that accepts a configured token,
// but callers only ever see the Gateway interface.
package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"
	"errors"
	"parkdz/config"
	"parkdz/infras/otel"
	"parkdz/shared/constant"
	"parkdz/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrInvalidToken is returned when the provider rejects the payment token.
var ErrInvalidToken = errors.New("payment token rejected by provider")

type Transaction struct {
	ID          string  `json:"id"`
	AmountDzd   float64 `json:"amount_dzd"`
	Provider    string  `json:"provider"`
	ProcessedAt string  `json:"processed_at"`
}

type Gateway interface {
	Charge(ctx context.Context, token string, amountDzd float64) (Transaction, error)
}

type baridiMobGateway struct {
	cfg  *config.Config
	otel otel.Otel
}

func NewBaridiMob(cfg *config.Config, otel otel.Otel) Gateway {
	return &baridiMobGateway{
		cfg:  cfg,
		otel: otel,
	}
}

// Charge validates the token against the configured mock credential and
// fabricates a settled transaction. A real integration would call the
// BaridiMob API here.
func (g *baridiMobGateway) Charge(ctx context.Context, token string, amountDzd float64) (res Transaction, err error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".baridimob.Charge")
	defer scope.End()
	defer scope.TraceIfError(err)

	if token != g.cfg.Payment.MockToken {
		return res, ErrInvalidToken
	}

	res = Transaction{
		ID:          uuid.NewString(),
		AmountDzd:   amountDzd,
		Provider:    "baridimob",
		ProcessedAt: timezone.Now().Format(constant.DateFormat),
	}

	log.Info().Str("transactionID", res.ID).Float64("amountDzd", amountDzd).Msg("payment settled")

	return res, nil
}
