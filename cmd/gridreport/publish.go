package main

import (
	"fmt"
	"time"

	"github.com/jgoulah/gridreport/internal/publisher"
	"github.com/jgoulah/gridreport/pkg/models"
	"github.com/spf13/cobra"
)

var (
	publishAll   bool
	publishLimit int
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish stored measurements to MQTT",
	Long:  `Reads stored measurements from the database and publishes them to the configured MQTT broker as JSON payloads.`,
	RunE:  runPublish,
}

func init() {
	publishCmd.Flags().BoolVar(&publishAll, "all", false, "Force republish all records (ignore published flag)")
	publishCmd.Flags().IntVar(&publishLimit, "limit", 0, "Limit number of records to publish (0 = no limit)")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Publish started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Create publisher
	pub, err := publisher.New(cfg.MQTT)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var data []models.Measurement
	if publishAll {
		data, err = db.ListMeasurements()
	} else {
		data, err = db.ListUnpublished()
	}
	if err != nil {
		return fmt.Errorf("listing measurements: %w", err)
	}

	if len(data) == 0 {
		fmt.Println("Nothing to publish")
		return nil
	}

	if publishLimit > 0 && len(data) > publishLimit {
		data = data[:publishLimit]
	}

	published := 0
	for _, m := range data {
		if err := pub.Publish(m); err != nil {
			return fmt.Errorf("publishing measurement %s: %w", m.Timestamp.Format(time.RFC3339), err)
		}
		if err := db.MarkPublished(m.ID); err != nil {
			return fmt.Errorf("marking measurement as published: %w", err)
		}
		published++
	}

	fmt.Printf("✓ Published %d measurements to %s\n", published, cfg.MQTT.Broker)
	return nil
}
