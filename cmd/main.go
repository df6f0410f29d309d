package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/armadagame/armada-backend/api"
	"github.com/armadagame/armada-backend/db"
	"github.com/armadagame/armada-backend/db/sqlc"
	mc "github.com/armadagame/armada-backend/models/connection"
	mp "github.com/armadagame/armada-backend/models/placement"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage != "dev" && stage != "prod" {
		panic("stage must be either dev or prod")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// Analytics are optional; without DATABASE_URL the server runs
	// with a nil querier and skips the counters.
	var querier sqlc.Querier
	var psqlDb *sql.DB
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		psqlDb = db.MustConnectToDb(psqlUrl)
		defer psqlDb.Close()
		querier = sqlc.New(psqlDb)
	}

	sessionManager := mc.NewArmadaSessionManager()
	go sessionManager.CleanupPeriodically()

	machineManager := mp.NewArmadaMachineManager()

	rp := api.NewRequestProcessor(sessionManager, machineManager, querier)

	router := mux.NewRouter()
	router.Handle("/armada", rp).Methods(http.MethodGet)

	log.Printf("Listening to port %s\n", port)
	log.Fatalln(http.ListenAndServe("0.0.0.0:"+port, router))
}
