package logging

import (
	"os"
	"strings"

	"github.com/mnightingale/rapidb64/internal/args"
	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the standard logrus logger from the general
// options. Logs always go to stderr; stdout carries codec output.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)
	log.SetOutput(os.Stderr)

	if args.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes" || color == "true" || color == "1",
			DisableColors: color == "no" || color == "false" || color == "0",
			FullTimestamp: args.General.LogFullTimestamp,
		})
	}
	log.SetReportCaller(args.General.LogReportCaller)
	log.Debugf("Verbosity level: %v", VerbosityName())
}
