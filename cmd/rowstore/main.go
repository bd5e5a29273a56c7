package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/RichardKnop/rowstore/internal/pkg/logging"
	"github.com/RichardKnop/rowstore/internal/pkg/rowstore"
)

const (
	cliName string = "rowstore"
)

func printPrompt() {
	fmt.Print(cliName, "> ")
}

func sanitizeReplInput(input string) string {
	return strings.TrimSpace(input)
}

type metaCommand int

const (
	Unknown metaCommand = iota + 1
	Help
	Exit
)

func isMetaCommand(inputBuffer string) bool {
	return len(inputBuffer) > 0 && inputBuffer[:1] == "."
}

func doMetaCommand(inputBuffer string) metaCommand {
	switch inputBuffer {
	case "help":
		return Help
	case "exit":
		return Exit
	default:
		return Unknown
	}
}

func main() {
	ctx := context.Background()

	logConf := logging.DefaultConfig()

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	l, err := logging.ParseLevel(level)
	if err != nil {
		panic(err)
	}
	logConf.Level = zap.NewAtomicLevelAt(l)

	logger, err := logConf.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // flushes buffer, if any

	aTable := rowstore.NewTable(logger)

	reader := bufio.NewScanner(os.Stdin)
	printPrompt()

	// REPL (Read-eval-print loop) start
	for reader.Scan() {
		inputBuffer := sanitizeReplInput(reader.Text())
		if isMetaCommand(inputBuffer) {
			switch doMetaCommand(inputBuffer[1:]) {
			case Help:
				fmt.Println(".help    - Show available commands")
				fmt.Println(".exit    - Closes program")
			case Exit:
				return
			case Unknown:
				fmt.Printf("Unrecognized Command '%s'.\n", inputBuffer)
			}
		} else {
			stmt, err := rowstore.PrepareStatement(inputBuffer)
			if err != nil {
				fmt.Printf("Error preparing statement: %s\n", err)
			} else {
				aResult, err := aTable.ExecuteStatement(ctx, stmt)
				if err != nil {
					fmt.Printf("Error executing statement: %s\n", err)
				} else if stmt.Kind == rowstore.Insert {
					fmt.Printf("Rows affected: %d\n", aResult.RowsAffected)
				} else if stmt.Kind == rowstore.Select {
					aRow, err := aResult.Rows(ctx)
					for ; err == nil; aRow, err = aResult.Rows(ctx) {
						fmt.Println(aRow)
					}
					if !errors.Is(err, rowstore.ErrNoMoreRows) {
						fmt.Printf("Error fetching rows: %s\n", err)
					}
				}
			}
		}
		printPrompt()
	}
	// Print an additional line if we encountered an EOF character
	fmt.Println()
}
