package main

import (
	"os"

	"github.com/openzipkin/zipkin-go/idgenerator"

	"github.com/CodingCaius/listdemo/config"
	"github.com/CodingCaius/listdemo/lesson"
	"github.com/CodingCaius/listdemo/lib/logger"
	"github.com/CodingCaius/listdemo/snapshot"
)

const defaultConfigFile = "listdemo.conf"

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}

func main() {
	configFilename := os.Getenv("CONFIG")
	if configFilename == "" && fileExists(defaultConfigFile) {
		configFilename = defaultConfigFile
	}
	if configFilename != "" {
		if err := config.SetupConfig(configFilename); err != nil {
			logger.Fatal(err)
		}
	}
	logger.SetLevel(config.Properties.LogLevel)

	runID := idgenerator.NewRandom64().TraceID().String()
	logger.Infof("lesson run %s", runID)

	report, err := lesson.Run(os.Stdout, config.Properties)
	if err != nil {
		logger.Fatal(err)
	}
	if config.Properties.DumpFilename != "" {
		if err := snapshot.Dump(config.Properties.DumpFilename, config.Properties.DumpKey, report.List); err != nil {
			logger.Fatal(err)
		}
	}
}
