package main

import (
	"atlas-parts/acquisition"
	"atlas-parts/catalog"
	"atlas-parts/database"
	"atlas-parts/inventory"
	"atlas-parts/kafka/producer"
	"atlas-parts/layout"
	"atlas-parts/logger"
	"atlas-parts/memory"
	"atlas-parts/service"
	"atlas-parts/tracing"
	"github.com/Chronicle20/atlas-rest/server"
	"os"
)
import _ "net/http/pprof"

const serviceName = "atlas-parts"

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
		prefix:  "/api/pts/",
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

	lm, err := layout.Load(l)
	if err != nil {
		l.WithError(err).Fatal("Unable to load memory layout.")
	}
	cm, err := catalog.LoadFromEnv(l)
	if err != nil {
		l.WithError(err).Fatal("Unable to load part catalog.")
	}
	r, err := memory.OpenFromEnv(l)
	if err != nil {
		l.WithError(err).Fatal("Unable to open emulator memory.")
	}
	s := inventory.NewSession(os.Getenv("MEMORY_SOURCE"), r, lm)

	db := database.Connect(l, database.SetMigrations(acquisition.Migration))
	p := producer.ProviderImpl(l)(tdm.Context())
	recorder := acquisition.SnapshotRecorder(l, db, tdm.Context(), p, lm.Target())

	server.CreateService(l, tdm.Context(), tdm.WaitGroup(), GetServer().GetPrefix(), inventory.InitResource(GetServer())(s, cm, recorder), acquisition.InitResource(GetServer())(db, lm.Target()))

	tdm.TeardownFunc(tracing.Teardown(l)(tc))
	tdm.TeardownFunc(func() {
		inventory.Invalidate(l, s)
		if err := r.Close(); err != nil {
			l.WithError(err).Errorf("Unable to close emulator memory.")
		}
	})

	tdm.Wait()
	l.Infoln("Service shutdown.")
}
