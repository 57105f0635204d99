package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"kindergarden/internal/config"
	"kindergarden/internal/database"
	"kindergarden/internal/service"
)

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	importInput := importCmd.String("input", "", "Input file path (required)")
	importClear := importCmd.Bool("clear", false, "Clear existing data before import (WARNING: destructive)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}

	backupService := service.NewBackupService(db)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(backupService, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(backupService, db, *importInput, *importClear)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(backupService *service.BackupService, outputPath string) {
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("backup_%s.json", timestamp)
	}

	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logrus.WithError(err).Fatal("failed to create output directory")
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create output file")
	}
	defer out.Close()

	if err := backupService.Export(out); err != nil {
		logrus.WithError(err).Fatal("export failed")
	}

	if fileInfo, err := os.Stat(outputPath); err == nil {
		logrus.WithFields(logrus.Fields{
			"path":  outputPath,
			"bytes": fileInfo.Size(),
		}).Info("export complete")
	}
}

func handleImport(backupService *service.BackupService, db *database.DB, inputPath string, clearData bool) {
	in, err := os.Open(inputPath)
	if err != nil {
		logrus.WithError(err).Fatalf("cannot open input file %s", inputPath)
	}
	defer in.Close()

	if clearData {
		fmt.Print("WARNING: This will delete all existing data. Type 'yes' to confirm: ")
		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "yes" {
			logrus.Info("import cancelled")
			return
		}

		if err := clearDatabase(db); err != nil {
			logrus.WithError(err).Fatal("failed to clear database")
		}
	}

	if err := backupService.Import(in); err != nil {
		logrus.WithError(err).Fatal("import failed")
	}

	logrus.WithField("path", inputPath).Info("import complete")
}

func clearDatabase(db *database.DB) error {
	// children first, to satisfy foreign keys
	tables := []string{"answer_events", "players"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
		logrus.WithField("table", table).Info("table cleared")
	}
	return nil
}

func printUsage() {
	fmt.Println("Kindergarden Database Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export database to JSON file")
	fmt.Println("  backup import [options]    Import database from JSON file")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println("  -clear            Clear existing data before import (WARNING: destructive)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_TYPE          Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./kindergarden.db)")
	fmt.Println("  DATABASE_URL     PostgreSQL or MySQL connection URL")
}
