package cmd

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ProjectDirEnv names the variable that anchors report artifacts.
const ProjectDirEnv = "PROJECT_DIR"

// dotEnvPaths are searched in order; the first file that loads wins.
var dotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
}

// loadDotEnv loads the first .env file found. Variables already set in the
// process environment are left alone.
func loadDotEnv() {
	for _, envFile := range dotEnvPaths {
		if err := godotenv.Load(envFile); err == nil {
			logrus.Debugf("Loaded environment from %s", envFile)
			return
		}
	}
}

// resolveOutputDir picks the report destination. An explicit --output wins,
// even when empty; otherwise $PROJECT_DIR/reports is used when set. An empty
// result means "print to stdout".
func resolveOutputDir(flagValue string, flagChanged bool) string {
	if flagChanged {
		return flagValue
	}
	if dir := os.Getenv(ProjectDirEnv); dir != "" {
		return filepath.Join(dir, "reports")
	}
	return ""
}
