package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

// Development helper: clears every travelmate table after confirmation.

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		Charset  string `yaml:"charset"`
	} `yaml:"database"`
}

var tables = []string{"trip_sharing", "friendship", "accommodation", "travel", "trip", "user"}

func main() {
	config := loadConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		config.Database.Username,
		config.Database.Password,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database,
		config.Database.Charset,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Database connection test failed: %v", err)
	}

	fmt.Println("Database connected successfully")
	fmt.Printf("Database: %s\n", config.Database.Database)

	fmt.Printf("\nWARNING: This operation will CLEAR ALL DATA in tables %v!\n", tables)
	fmt.Print("Type 'YES' to confirm: ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "YES" {
		fmt.Println("Operation cancelled")
		return
	}

	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		log.Fatalf("Disable foreign key checks failed: %v", err)
	}
	for _, table := range tables {
		if _, err := db.Exec("TRUNCATE TABLE " + table); err != nil {
			fmt.Printf("Truncate %s skipped: %v\n", table, err)
			continue
		}
		fmt.Printf("Truncated %s\n", table)
	}
	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS = 1"); err != nil {
		log.Fatalf("Enable foreign key checks failed: %v", err)
	}

	fmt.Println("Database reset complete")
}

func loadConfig() *Config {
	config := &Config{}
	config.Database.Host = "localhost"
	config.Database.Port = 3306
	config.Database.Username = "travelmate"
	config.Database.Password = "travelmate"
	config.Database.Database = "travelmate"
	config.Database.Charset = "utf8mb4"

	data, err := os.ReadFile("config/config.yaml")
	if err != nil {
		fmt.Println("config/config.yaml not found, using defaults")
		return config
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		fmt.Printf("config parse failed (%v), using defaults\n", err)
	}
	return config
}
