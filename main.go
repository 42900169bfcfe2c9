package main

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/finsight/backend/internal/controllers"
	"github.com/finsight/backend/internal/ledger"
	"github.com/finsight/backend/internal/router"
	"github.com/finsight/backend/internal/storage"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	store, err := loadLedger()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	log.Info().Int("transactions", store.Len()).Msg("ledger loaded")

	r, err := router.Router(controllers.NewServer(ledger.NewHolder(store)))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// loadLedger ingests the ledger once at startup. If LEDGER_DB is set,
// the transactions are read from that sqlite database, otherwise from
// the CSV export at LEDGER_PATH.
func loadLedger() (*ledger.Store, error) {
	if path, ok := os.LookupEnv("LEDGER_DB"); ok {
		log.Debug().Str("path", path).Msg("LEDGER_DB is set, reading ledger from sqlite")

		db, err := storage.Open(path)
		if err != nil {
			return nil, err
		}

		return storage.LoadStore(db)
	}

	path, ok := os.LookupEnv("LEDGER_PATH")
	if !ok {
		path = "data/ledger.csv"
	}
	log.Debug().Str("path", path).Msg("reading ledger from CSV")

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ledger.ParseCSV(f)
}
