package deckgen

// buildCTA centers the title and body on a bordered card with an accent
// button. A short final body line becomes the button label; otherwise the
// button is omitted rather than invented.
func buildCTA(in *composeInput) []Node {
	lines := in.lines
	button := ""
	if n := len(lines); n > 0 && len([]rune(lines[n-1])) <= 32 {
		button = lines[n-1]
		lines = lines[:n-1]
	}

	cardW := clamp(usableWidth(in.hasImage)-2*120, 400, 900)
	cardX := (usableWidth(in.hasImage) - cardW) / 2
	innerW := cardW - 2*60

	titleSize := titleFontSize(in.title)
	titleH := estTextHeight(in.title, titleSize, innerW)
	bodyH := 0.0
	for _, l := range lines {
		bodyH += estTextHeight(l, 19, innerW) + 10
	}
	contentH := titleH + 30 + bodyH
	if button != "" {
		contentH += 56 + 30
	}
	cardH := clamp(contentH+2*56, 260, canvasH-2*80)
	cardY := (canvasH - cardH) / 2

	nodes := []Node{
		&Rect{X: cardX, Y: cardY, W: cardW, H: cardH, Radius: 16, Fill: Tint(RoleSurface, 0.85), Stroke: Solid(RoleBorder), StrokeWidth: 1},
		&Rect{X: cardX, Y: cardY, W: cardW, H: 6, Radius: 3, Fill: Solid(RoleEmphasis)},
	}
	y := cardY + 56
	nodes = append(nodes, &Text{
		X: cardX + 60, Y: y, W: innerW, H: titleH + titleSize,
		Content: in.title, Size: titleSize, Weight: 700, Align: "center", Color: Solid(RoleTitle),
	})
	y += titleH + 30
	for _, l := range lines {
		h := estTextHeight(l, 19, innerW)
		nodes = append(nodes, &Text{
			X: cardX + 60, Y: y, W: innerW, H: h + 19,
			Content: l, Size: 19, Align: "center", Color: Solid(RoleText), LineHeight: 1.5,
		})
		y += h + 10
	}
	if button != "" {
		btnW := clamp(float64(len([]rune(button)))*11+80, 180, innerW)
		btnX := cardX + (cardW-btnW)/2
		y += 20
		nodes = append(nodes,
			&Rect{X: btnX, Y: y, W: btnW, H: 56, Radius: 28, Fill: Tint(RoleEmphasis, 0.12), Stroke: Solid(RoleEmphasis), StrokeWidth: 2},
			&Text{X: btnX, Y: y + (56-18*1.4)/2, W: btnW, H: 56, Content: button, Size: 18, Weight: 700, Align: "center", Color: Solid(RoleEmphasis)},
		)
	}
	return nodes
}
