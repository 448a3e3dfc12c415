package main

import (
	"atlas-warriors/database"
	consumerWarrior "atlas-warriors/kafka/consumer/warrior"
	"atlas-warriors/ledger"
	"atlas-warriors/logger"
	"atlas-warriors/scheduler"
	"atlas-warriors/service"
	"atlas-warriors/tracing"
	"atlas-warriors/warrior"
	"os"

	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-rest/server"
)

const serviceName = "atlas-warriors"

type Server struct {
	baseUrl string
	prefix  string
}

func (s Server) GetBaseURL() string {
	return s.baseUrl
}

func (s Server) GetPrefix() string {
	return s.prefix
}

func GetServer() Server {
	return Server{
		baseUrl: "",
		prefix:  "/api/was/",
	}
}

func main() {
	l := logger.CreateLogger(serviceName)
	l.Infoln("Starting main service.")

	tdm := service.GetTeardownManager()

	tc, err := tracing.InitTracer(l)(serviceName)
	if err != nil {
		l.WithError(err).Fatal("Unable to initialize tracer.")
	}

	db := database.Connect(l, database.SetMigrations(warrior.Migration, ledger.Migration))

	// Initialize URI reconciliation scheduler
	uriReconciliationScheduler := scheduler.NewURIReconciliationScheduler(l, tdm.Context(), db)
	uriReconciliationScheduler.Start()

	// Register scheduler teardown
	tdm.TeardownFunc(func() {
		uriReconciliationScheduler.Stop()
	})

	// Initialize Kafka consumers
	consumerManager := consumer.GetManager()
	consumerWarrior.InitConsumers(l, tdm.Context(), db)(
		consumerManager.AddConsumer(l, tdm.Context(), tdm.WaitGroup()),
	)("warrior-service")

	server.New(l).
		WithContext(tdm.Context()).
		WithWaitGroup(tdm.WaitGroup()).
		SetBasePath(GetServer().GetPrefix()).
		AddRouteInitializer(warrior.InitializeRoutes(db)(GetServer())).
		SetPort(os.Getenv("REST_PORT")).
		Run()

	tdm.TeardownFunc(tracing.Teardown(l)(tc))

	tdm.Wait()
	l.Infoln("Service shutdown.")
}
