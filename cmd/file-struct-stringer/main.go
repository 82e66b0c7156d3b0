package main

import (
	"fmt"

	"github.com/temirov/file-struct-stringer/internal/cli"
	"github.com/temirov/file-struct-stringer/internal/utils"
)

// main is the entry point for the file-struct-stringer command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(false)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(); applicationExecutionError != nil {
		loggerInstance.Fatal(fmt.Sprintf(utils.ErrorLogFormat, applicationExecutionError))
	}
}
