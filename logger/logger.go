package logger

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logrus logger. An unparseable level
// falls back to info.
func Init(level string, jsonFormat bool) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	if jsonFormat {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// LogJSON writes data as indented JSON to <dir>/<id>.json, creating the
// directory if needed.
func LogJSON(dir, id string, data interface{}) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fmt.Sprintf("%s/%s.json", dir, id), bytes, 0644)
}
