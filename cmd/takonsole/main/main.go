package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/tikotako/takonsole/cmd/takonsole"
	"github.com/tikotako/takonsole/pkg/logging"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD5C5C")).Bold(true)

func main() {
	rootCmd := takonsole.NewRootCmd()
	err := rootCmd.Execute()
	logging.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
