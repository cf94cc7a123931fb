package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/c00p75/fitness-league-sub000/internal/repository"
	"github.com/c00p75/fitness-league-sub000/internal/repository/memstore"
	"github.com/c00p75/fitness-league-sub000/internal/services"
)

func PostgresStores(db *pgxpool.Pool) services.Stores {
	return services.Stores{
		Profiles:   repository.NewUserProfileRepository(db),
		Accounts:   repository.NewAccountRepository(db),
		Onboarding: repository.NewOnboardingRepository(db),
		Goals:      repository.NewGoalRepository(db),
		Plans:      repository.NewWorkoutPlanRepository(db),
		Sessions:   repository.NewWorkoutSessionRepository(db),
		Ping:       db.Ping,
	}
}

func MemoryStores(store *memstore.Store) services.Stores {
	return services.Stores{
		Profiles:   store.Profiles(),
		Accounts:   store.Accounts(),
		Onboarding: store.Onboarding(),
		Goals:      store.Goals(),
		Plans:      store.Plans(),
		Sessions:   store.Sessions(),
		Ping:       store.Ping,
	}
}
