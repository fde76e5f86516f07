//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/planner/internal/auth/domain"
	"github.com/aussiebroadwan/planner/internal/auth/store"
	"github.com/aussiebroadwan/planner/internal/auth/store/drivers/postgres"
	"github.com/aussiebroadwan/planner/pkg/idx"
)

func setupPostgresContainer() (*postgres.Store, func(), error) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:18-alpine",
		tcpostgres.WithDatabase("planner_test"),
		tcpostgres.WithUsername("planner"),
		tcpostgres.WithPassword("planner"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, nil, err
	}

	s, err := postgres.NewStore(ctx, connStr)
	if err != nil {
		return nil, nil, err
	}

	if err := s.ApplyMigrations(); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = s.Close()
		_ = container.Terminate(ctx)
	}
	return s, cleanup, nil
}

var _ = Describe("Postgres store", Ordered, func() {
	var (
		s       *postgres.Store
		cleanup func()
		ctx     context.Context
	)

	BeforeAll(func() {
		var err error
		s, cleanup, err = setupPostgresContainer()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterAll(func() {
		if cleanup != nil {
			cleanup()
		}
	})

	BeforeEach(func() {
		ctx = context.Background()
	})

	newUser := func(email string) domain.User {
		u, err := s.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Name:         "Ana",
			Email:        email,
			PasswordHash: "$2a$10$hash",
			Timezone:     domain.DefaultTimezone,
			IsActive:     true,
		})
		Expect(err).NotTo(HaveOccurred())
		return u
	}

	It("re-applies migrations without error", func() {
		Expect(s.ApplyMigrations()).To(Succeed())
		Expect(s.Ping(ctx)).To(Succeed())
	})

	Describe("users", func() {
		It("rejects a duplicate email", func() {
			newUser("dup@x.com")
			_, err := s.Users().CreateUser(ctx, domain.User{
				ID: idx.New().String(), Name: "B", Email: "dup@x.com", PasswordHash: "h",
				Timezone: domain.DefaultTimezone, IsActive: true,
			})
			Expect(err).To(MatchError(store.ErrAlreadyExists))
		})

		It("hides deactivated users", func() {
			u := newUser("gone@x.com")
			Expect(s.Users().DeactivateUser(ctx, u.ID)).To(Succeed())

			_, err := s.Users().GetUserByEmail(ctx, "gone@x.com")
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("password reset tokens", func() {
		It("lets exactly one concurrent consumer win", func() {
			u := newUser("race@x.com")
			Expect(s.PasswordResets().SavePasswordResetToken(ctx, domain.PasswordResetToken{
				UserID: u.ID, TokenHash: "race-fp", ExpiresAt: time.Now().Add(time.Hour),
			})).To(Succeed())

			var (
				wg   sync.WaitGroup
				wins atomic.Int32
			)
			for range 8 {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					err := s.WithTx(ctx, func(tx store.Tx) error {
						tok, err := tx.PasswordResets().ConsumePasswordResetToken(ctx, "race-fp", time.Now())
						if err != nil {
							return err
						}
						return tx.Users().UpdatePasswordHash(ctx, tok.UserID, "$2a$10$new")
					})
					if err == nil {
						wins.Add(1)
					}
				}()
			}
			wg.Wait()

			Expect(wins.Load()).To(Equal(int32(1)))
		})

		It("sweeps expired tokens", func() {
			u := newUser("sweep@x.com")
			Expect(s.PasswordResets().SavePasswordResetToken(ctx, domain.PasswordResetToken{
				UserID: u.ID, TokenHash: "old-fp", ExpiresAt: time.Now().Add(-time.Minute),
			})).To(Succeed())

			_, err := s.PasswordResets().ConsumePasswordResetToken(ctx, "old-fp", time.Now())
			Expect(err).To(MatchError(store.ErrNotFound))

			n, err := s.PasswordResets().DeleteExpiredPasswordResetTokens(ctx, time.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeNumerically(">=", 1))
		})
	})

	Describe("preferences", func() {
		It("round trips the defaults", func() {
			u := newUser("prefs@x.com")
			Expect(s.Preferences().CreatePreferences(ctx, domain.DefaultPreferences(idx.New().String(), u.ID))).To(Succeed())

			p, err := s.Preferences().GetPreferences(ctx, u.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Theme).To(Equal(domain.ThemeLight))
			Expect(p.StartWeekOn).To(Equal(domain.WeekStartSunday))
		})
	})
})
