// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "strings"

var bannerArt = []string{
	` ____    ____     ____ _                 _ `,
	`|  _ \  |  _ \   / ___| | ___  _   _  __| |`,
	`| | | | | | | | | |   | |/ _ \| | | |/ _' |`,
	`| |_| | | |_| | | |___| | (_) | |_| | (_| |`,
	`|____/__|____/   \____|_|\___/ \__,_|\__,_|`,
	`    |___|                                  `,
}

// Banner returns the styled login banner.
func Banner() string {
	return bannerStyle.Render(strings.Join(bannerArt, "\n"))
}

// Success renders a confirmation line.
func Success(s string) string {
	return successStyle.Render(s)
}

// Header renders a section heading.
func Header(s string) string {
	return titleStyle.Render(s)
}
