package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"riskwise/internal/utils"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numAssessments := seedCmd.Int("assessments", utils.DefaultNumAssessments, "Number of demo assessments to create")
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of synthetic user IDs to spread assessments over")

	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)
	deleteStart := deleteCmd.Int("start", 1, "Start of the user ID range to delete assessments for")
	deleteEnd := deleteCmd.Int("end", utils.DefaultNumUsers, "End of the user ID range to delete assessments for")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		log.Printf("Starting assessment seeder: %d assessments over %d users", *numAssessments, *numUsers)
		if err := utils.SeedAssessments(*numAssessments, *numUsers); err != nil {
			log.Fatalf("Error seeding assessments: %v", err)
		}

	case "delete":
		deleteCmd.Parse(os.Args[2:])
		log.Printf("Deleting seeded assessments for user IDs %d-%d", *deleteStart, *deleteEnd)
		if err := utils.DeleteSeededAssessments(*deleteStart, *deleteEnd); err != nil {
			log.Fatalf("Error deleting assessments: %v", err)
		}

	case "stats":
		count, err := utils.GetAssessmentCount()
		if err != nil {
			log.Fatalf("Error getting stats: %v", err)
		}
		log.Printf("Assessments in database: %d", count)

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown subcommand: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Database utility tool for Riskwise")
	fmt.Println("\nUsage:")
	fmt.Println("  db-tool COMMAND [OPTIONS]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed         Create demo assessments scored by the real engine")
	fmt.Println("               Options:")
	fmt.Println("                 --assessments=N  Number of assessments to create (default: 1000)")
	fmt.Println("                 --users=N        Synthetic user IDs to spread rows over (default: 50)")
	fmt.Println("")
	fmt.Println("  delete       Delete seeded assessments by user ID range")
	fmt.Println("               Options:")
	fmt.Println("                 --start=N        Start of the user ID range (default: 1)")
	fmt.Println("                 --end=N          End of the user ID range (default: 50)")
	fmt.Println("")
	fmt.Println("  stats        Show assessment row count")
	fmt.Println("  help         Show this help message")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  DB_HOST      Database host (default: localhost)")
	fmt.Println("  DB_PORT      Database port (default: 5432)")
	fmt.Println("  DB_USER      Database user (default: postgres)")
	fmt.Println("  DB_PASSWORD  Database password (default: postgres)")
	fmt.Println("  DB_NAME      Database name (default: riskwise)")
	fmt.Println("  DB_SSLMODE   Database SSL mode (default: disable)")
}
