package tui

import "github.com/charmbracelet/lipgloss"

var (
	iris  = lipgloss.Color("63")
	slate = lipgloss.Color("246")
	dim   = lipgloss.Color("240")
	red   = lipgloss.Color("203")
	white = lipgloss.Color("255")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(iris).
			Foreground(white)

	selectedStyle = lipgloss.NewStyle().
			Foreground(iris).
			Bold(true)

	keywordStyle = lipgloss.NewStyle().
			Foreground(slate)

	loadingStyle = lipgloss.NewStyle().
			Foreground(dim).
			Italic(true)

	failedStyle = lipgloss.NewStyle().
			Foreground(red).
			Faint(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(dim)

	listStyle = lipgloss.NewStyle().
			PaddingRight(1)

	detailStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(dim)
)
