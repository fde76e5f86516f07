package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Result labels shared by the auth counters.
const (
	ResultSuccess            = "success"
	ResultValidationError    = "validation_error"
	ResultConflict           = "conflict"
	ResultInvalidCredentials = "invalid_credentials"
	ResultInvalidToken       = "invalid_token"
	ResultUnknownEmail       = "unknown_email"
	ResultError              = "error"
)

// Stage labels for planner_auth_password_resets_total.
const (
	StageRequest = "request"
	StageReset   = "reset"
)

// Metrics holds the authentication counters. A nil *Metrics records nothing.
type Metrics struct {
	Registrations  *prometheus.CounterVec
	Logins         *prometheus.CounterVec
	PasswordResets *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_auth_registrations_total",
				Help: "Account registrations by result",
			},
			[]string{"result"},
		),
		Logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_auth_logins_total",
				Help: "Login attempts by result",
			},
			[]string{"result"},
		),
		PasswordResets: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_auth_password_resets_total",
				Help: "Password reset requests and completions by stage and result",
			},
			[]string{"stage", "result"},
		),
	}

	reg.MustRegister(m.Registrations, m.Logins, m.PasswordResets)
	return m
}

func (m *Metrics) registration(result string) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(result).Inc()
}

func (m *Metrics) login(result string) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(result).Inc()
}

func (m *Metrics) passwordReset(stage, result string) {
	if m == nil {
		return
	}
	m.PasswordResets.WithLabelValues(stage, result).Inc()
}

// resultFor picks the label for a failed operation.
func resultFor(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, ErrValidation):
		return ResultValidationError
	case errors.Is(err, ErrConflict):
		return ResultConflict
	case errors.Is(err, ErrAuthentication):
		return ResultInvalidCredentials
	case errors.Is(err, ErrInvalidToken):
		return ResultInvalidToken
	default:
		return ResultError
	}
}
