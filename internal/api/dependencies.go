package api

import (
	"os"

	"elite-hub/treinador/internal/common"
	"elite-hub/treinador/internal/db"
	"elite-hub/treinador/internal/db/repositories"
	"elite-hub/treinador/internal/logging"
	"elite-hub/treinador/internal/metrics"
	"elite-hub/treinador/internal/services"
)

type Repositories struct {
	Profile    *repositories.ProfileRepository
	Membership *repositories.MembershipRepository
	Schedule   *repositories.ScheduleRepository
	CheckIn    *repositories.CheckInRepository
	Admin      *repositories.AdminRepositoryGORM
}

type Services struct {
	Cache   common.CacheInterface
	Login   *services.LoginService
	Plan    *services.PlanService
	Advisor *common.AdvisorService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Profile:    repositories.NewProfileRepository(db.DB, metricsReg),
		Membership: repositories.NewMembershipRepository(db.DB, metricsReg),
		Schedule:   repositories.NewScheduleRepository(db.DB, metricsReg),
		CheckIn:    repositories.NewCheckInRepository(db.DB, metricsReg),
		Admin:      repositories.NewAdminRepositoryGORM(db.PgDB),
	}

	var cacheSvc common.CacheInterface
	if os.Getenv("CACHE_BACKEND") == "redis" {
		redisSvc, err := common.NewRedisCacheService()
		if err != nil {
			return nil, err
		}
		cacheSvc = redisSvc
		logging.Info("Cache backend: redis")
	} else {
		cacheSvc = common.NewCacheService(600, 600)
		logging.Info("Cache backend: in-memory")
	}

	planSvc := services.NewPlanService(repos.Schedule, repos.CheckIn)
	loginSvc := services.NewLoginService(repos.Profile, repos.Membership, planSvc, metricsReg)
	advisorSvc := common.NewAdvisorService(cacheSvc)

	svcs := &Services{
		Cache:   cacheSvc,
		Login:   loginSvc,
		Plan:    planSvc,
		Advisor: advisorSvc,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
