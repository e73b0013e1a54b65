package cmd

import "time"

type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	RoadFactor   float64
	MinimumPrice int
	DriverShare  float64
	StaleAfter   time.Duration
}
