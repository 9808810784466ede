package debug

import (
	"os"

	"github.com/sirupsen/logrus"
)

const envVar = "INDENTDETECT_DEBUG"

// Enable sets the INDENTDETECT_DEBUG env var to true
// and makes the logger to log at debug level.
func Enable() {
	os.Setenv(envVar, "1")
	logrus.SetLevel(logrus.DebugLevel)
}

// IsEnabled checks whether debugging was requested through the
// INDENTDETECT_DEBUG env var or a previous Enable.
func IsEnabled() bool {
	return os.Getenv(envVar) != ""
}
