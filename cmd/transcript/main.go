// Command transcript prints a student's results and SGPA history straight
// from the portal database. It shares the API's queries and is read-only.
//
//	transcript -roll 2021001
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"dtuportal_backend/internals/configs"
	database "dtuportal_backend/internals/databases"
	"dtuportal_backend/internals/logger"
)

func main() {
	rollNo := flag.String("roll", "", "student roll number (required)")
	timeout := flag.Duration("timeout", 10*time.Second, "overall query timeout")
	flag.Parse()

	if *rollNo == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := configs.LoadEnv()
	if err != nil {
		color.Red("config: %v", err)
		os.Exit(1)
	}
	logger.Init("warn", cfg.LogFormat)

	db, err := database.ConnectDB(cfg, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := printTranscript(ctx, os.Stdout, db, *rollNo); err != nil {
		color.Red("%v", err)
		cancel()
		os.Exit(1)
	}
}
