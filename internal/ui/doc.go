// Package ui provides semantic text formatting for yap's CLI output.
//
// Formatters render with color when the terminal supports it. When NO_COLOR
// is set or the terminal doesn't support colors, text decorations are used
// instead:
//
//	ui.Code.Sprint("yap init")     // `yap init`
//	ui.Name.Sprint("github")       // 'github'
//	ui.Muted.Sprint("empty")       // (empty)
//
// Status lines are built with Done, Fail and Next so every command reports
// outcomes the same way:
//
//	ui.Done("Secret saved")
//	ui.Fail("Could not open secret", err)
//	ui.Next("Run", "yap init")
package ui
