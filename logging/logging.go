package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	// Log is the default logger for the application.
	Log = logrus.New()

	requestResponseDebug bool
)

// Init initializes the logger with the given log level.
func Init(level string) error {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	Log.SetLevel(logLevel)
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return nil
}

// SetRequestResponseDebug toggles persisting full request/response exchanges
// to disk. Off by default; enabled via the --debug flag or the
// logging.request-response-debug config key.
func SetRequestResponseDebug(enabled bool) { requestResponseDebug = enabled }

// RequestResponseDebug reports whether exchange dumps are enabled.
func RequestResponseDebug() bool { return requestResponseDebug }
