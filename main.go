// backend/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/avtrack/commondest/backend/config"
	"github.com/avtrack/commondest/backend/handlers"
	"github.com/avtrack/commondest/backend/services"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (optional)")
	airport1 := flag.String("airport1", "", "first origin airport code (one-shot query mode)")
	airport2 := flag.String("airport2", "", "second origin airport code (one-shot query mode)")
	maxDiff := flag.Int("max-diff", -1, "only show destinations whose flight-time difference is at most this many minutes")
	flag.Parse()

	// .env is optional; real env vars still apply without it.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. Dataset URL: %s (format=%s)\n",
		config.AppConfig.Dataset.URL, config.AppConfig.Dataset.Format)

	if *airport1 != "" || *airport2 != "" {
		if *airport1 == "" || *airport2 == "" {
			log.Fatal("One-shot mode needs both -airport1 and -airport2")
		}
		runQuery(*airport1, *airport2, *maxDiff)
		return
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/api/health", handlers.HealthHandler)
	e.GET("/api/common-destinations", handlers.CommonDestinationsHandler)
	e.GET("/api/airports/:code/destinations", handlers.AirportDestinationsHandler)

	addr := ":" + config.AppConfig.Server.Port
	log.Printf("Server starting on http://localhost%s\n", addr)
	if err := e.Start(addr); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

// runQuery executes one query and prints the result as a text table,
// mirroring what the HTTP API returns as JSON.
func runQuery(airport1, airport2 string, maxDiff int) {
	input := services.CompareInput{
		Airport1: airport1,
		Airport2: airport2,
	}
	if maxDiff >= 0 {
		input.MaxDifference = &maxDiff
	}

	result, err := services.CompareDestinations(input)
	if err != nil {
		log.Fatalf("Could not retrieve destination data: %v", err)
	}

	if result.NoRoutesFrom1 {
		fmt.Printf("No route data for %s.\n", result.Airport1)
	}
	if result.NoRoutesFrom2 {
		fmt.Printf("No route data for %s.\n", result.Airport2)
	}
	if len(result.Rows) == 0 {
		fmt.Printf("No common destinations found between %s and %s.\n", result.Airport1, result.Airport2)
		return
	}

	fmt.Printf("Common destinations between %s and %s:\n\n", result.Airport1, result.Airport2)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "CODE\tAIRPORT\tLOCATION\tFROM %s\tFROM %s\tDIFF\n", result.Airport1, result.Airport2)
	for _, row := range result.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.DestinationCode,
			row.DisplayName,
			row.Location,
			formatMinutes(row.DurationFromOrigin1),
			formatMinutes(row.DurationFromOrigin2),
			formatMinutes(row.AbsDurationDifference),
		)
	}
	w.Flush()
}

func formatMinutes(minutes *int) string {
	if minutes == nil {
		return "-"
	}
	return fmt.Sprintf("%d min", *minutes)
}
