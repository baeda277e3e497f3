package themes

import "github.com/charmbracelet/lipgloss"

// medalStyles are shared by every theme: gold, silver and bronze keep
// their identity regardless of the surrounding palette.
func medalStyles(p *Palette) {
	p.Gold = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	p.Silver = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	p.Bronze = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("173"))
}

func defaultTheme() Theme {
	p := Palette{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Failure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
	medalStyles(&p)
	return Theme{ID: DefaultID, Name: "Classic Tower", Cost: 0, Palette: p}
}

func neonTheme() Theme {
	p := Palette{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF2BD6")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#C8F7FF")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2BFFF4")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A7A")),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7A2BFF")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0E0E1A")).Background(lipgloss.Color("#2BFFF4")),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#39FF14")),
		Failure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF3131")),
	}
	medalStyles(&p)
	return Theme{ID: "neon", Name: "Neon Nights", Cost: 100, Palette: p}
}

func sunsetTheme() Theme {
	p := Palette{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8C42")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE0B5")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5D73")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8A6A5A")),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("#B5651D")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2A1A0A")).Background(lipgloss.Color("#FF8C42")),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9BC53D")),
		Failure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E55934")),
	}
	medalStyles(&p)
	return Theme{ID: "sunset", Name: "Sunset Drive", Cost: 150, Palette: p}
}

func oceanTheme() Theme {
	p := Palette{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5EEBFF")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#EAF2FF")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#67F0A8")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5F8A")),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1B2740")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0E1420")).Background(lipgloss.Color("#5EEBFF")),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#67F0A8")),
		Failure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6F91")),
	}
	medalStyles(&p)
	return Theme{ID: "ocean", Name: "Deep Ocean", Cost: 200, Palette: p}
}

func monoTheme() Theme {
	p := Palette{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("255")),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Failure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
	}
	medalStyles(&p)
	return Theme{ID: "mono", Name: "Monochrome", Cost: 250, Palette: p}
}

func init() {
	Register(defaultTheme())
	Register(neonTheme())
	Register(sunsetTheme())
	Register(oceanTheme())
	Register(monoTheme())
}
