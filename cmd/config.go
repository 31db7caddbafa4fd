package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	// DefaultHubCode overrides the sorting hub used when no routing rule matches.
	DefaultHubCode string
	// AssignmentSchedule is a six-field cron expression for the leg assignment job.
	AssignmentSchedule string
	// SeedHubs stores the built-in hub network when the hubs table is empty.
	SeedHubs bool
}
