package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logrus instance. It is usable as-is (stdout, text)
// so packages under test need no setup; Init upgrades it for serving.
var Log = logrus.New()

// Init switches to structured JSON output mirrored to a log file.
func Init() {
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	Log.SetLevel(logrus.InfoLevel)

	file, err := os.OpenFile("sharemoment.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		Log.WithError(err).Warn("cannot open log file, logging to stdout only")
		return
	}
	Log.SetOutput(io.MultiWriter(os.Stdout, file))
}
