package theme

import "github.com/charmbracelet/lipgloss"

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Built-in palettes. GitHub registers first and is therefore the default.
func init() {
	RegisterTheme("github", Palette{
		PrimaryColor:             adaptive("#0969da", "#58a6ff"),
		SecondaryColor:           adaptive("#8250df", "#bc8cff"),
		ErrorColor:               adaptive("#cf222e", "#f85149"),
		WarningColor:             adaptive("#9a6700", "#d29922"),
		SuccessColor:             adaptive("#1a7f37", "#3fb950"),
		InfoColor:                adaptive("#0969da", "#58a6ff"),
		TextColor:                adaptive("#1f2328", "#e6edf3"),
		TextMutedColor:           adaptive("#656d76", "#7d8590"),
		BackgroundColor:          adaptive("#ffffff", "#0d1117"),
		BackgroundSecondaryColor: adaptive("#f6f8fa", "#161b22"),
		BorderNormalColor:        adaptive("#d0d7de", "#30363d"),
		BorderDimColor:           adaptive("#d8dee4", "#21262d"),
	})

	// Dracula: https://draculatheme.com/contribute
	RegisterTheme("dracula", Palette{
		PrimaryColor:             adaptive("#7e57c2", "#bd93f9"),
		SecondaryColor:           adaptive("#0097a7", "#8be9fd"),
		ErrorColor:               adaptive("#d32f2f", "#ff5555"),
		WarningColor:             adaptive("#ef6c00", "#ffb86c"),
		SuccessColor:             adaptive("#388e3c", "#50fa7b"),
		InfoColor:                adaptive("#1976d2", "#8be9fd"),
		TextColor:                adaptive("#212121", "#f8f8f2"),
		TextMutedColor:           adaptive("#757575", "#6272a4"),
		BackgroundColor:          adaptive("#fafafa", "#282a36"),
		BackgroundSecondaryColor: adaptive("#eeeeee", "#44475a"),
		BorderNormalColor:        adaptive("#bdbdbd", "#6272a4"),
		BorderDimColor:           adaptive("#e0e0e0", "#44475a"),
	})

	// Nord: https://www.nordtheme.com/docs/colors-and-palettes
	RegisterTheme("nord", Palette{
		PrimaryColor:             adaptive("#5e81ac", "#88c0d0"),
		SecondaryColor:           adaptive("#b48ead", "#b48ead"),
		ErrorColor:               adaptive("#bf616a", "#bf616a"),
		WarningColor:             adaptive("#d08770", "#ebcb8b"),
		SuccessColor:             adaptive("#a3be8c", "#a3be8c"),
		InfoColor:                adaptive("#5e81ac", "#81a1c1"),
		TextColor:                adaptive("#2e3440", "#eceff4"),
		TextMutedColor:           adaptive("#4c566a", "#616e88"),
		BackgroundColor:          adaptive("#eceff4", "#2e3440"),
		BackgroundSecondaryColor: adaptive("#e5e9f0", "#3b4252"),
		BorderNormalColor:        adaptive("#d8dee9", "#4c566a"),
		BorderDimColor:           adaptive("#e5e9f0", "#3b4252"),
	})

	// Catppuccin (latte/mocha): https://catppuccin.com/palette
	RegisterTheme("catppuccin", Palette{
		PrimaryColor:             adaptive("#8839ef", "#cba6f7"),
		SecondaryColor:           adaptive("#04a5e5", "#89dceb"),
		ErrorColor:               adaptive("#d20f39", "#f38ba8"),
		WarningColor:             adaptive("#df8e1d", "#f9e2af"),
		SuccessColor:             adaptive("#40a02b", "#a6e3a1"),
		InfoColor:                adaptive("#1e66f5", "#89b4fa"),
		TextColor:                adaptive("#4c4f69", "#cdd6f4"),
		TextMutedColor:           adaptive("#8c8fa1", "#6c7086"),
		BackgroundColor:          adaptive("#eff1f5", "#1e1e2e"),
		BackgroundSecondaryColor: adaptive("#e6e9ef", "#313244"),
		BorderNormalColor:        adaptive("#bcc0cc", "#45475a"),
		BorderDimColor:           adaptive("#ccd0da", "#313244"),
	})
}
