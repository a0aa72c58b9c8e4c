package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fivemoreminix/vexed/internal/log"
	"github.com/fivemoreminix/vexed/prefs"
	"github.com/fivemoreminix/vexed/ui"
	"github.com/fivemoreminix/vexed/ui/buffer"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// explorerWidth is the widest the file explorer gets; it takes a quarter of
// narrower screens.
const explorerWidth = 32

// An App is the whole editor: a menu bar over the library explorer and the
// editor tabs, with at most one dialog shown on top.
type App struct {
	screen    tcell.Screen
	theme     *ui.Theme
	prefs     *prefs.Preferences
	prefsPath string
	language  *buffer.Language
	colors    map[string]buffer.RGB // Scheme applied to every editor; nil for the default

	bar      *ui.MenuBar
	explorer *ui.FileExplorer
	tabs     *ui.TabContainer
	panel    *ui.Panel

	dialog     ui.Component // Shown over everything and focused while not nil
	barFocused bool
	quit       bool
}

func NewApp(s tcell.Screen, p *prefs.Preferences, prefsPath string, lang *buffer.Language) *App {
	a := &App{
		screen:    s,
		theme:     &ui.Theme{},
		prefs:     p,
		prefsPath: prefsPath,
		language:  lang,
	}

	a.tabs = ui.NewTabContainer(a.theme)

	a.explorer = ui.NewFileExplorer(p.LibraryPath, a.theme)
	a.explorer.WarnBeforeDelete = p.WarnBeforeDeletingAFile
	a.explorer.OpenCallback = func(path string) {
		if err := a.OpenFile(path); err != nil {
			a.ShowError(err)
		}
	}
	a.explorer.RenamedCallback = a.onRenamed
	a.explorer.DeletedCallback = a.onDeleted
	a.explorer.ErrorCallback = a.ShowError
	a.explorer.PromptName = a.PromptName
	a.explorer.PromptConfirm = a.PromptConfirm

	a.panel = ui.NewPanel(ui.PanelKindSplitHor, a.explorer, a.tabs, explorerWidth, a.theme)

	a.bar = ui.NewMenuBar(a.theme)
	a.bar.ItemSelectedCallback = a.unfocusBar
	a.buildMenus()

	a.Resize()
	a.panel.SetFocused(true)
	a.applyColorscheme(p.ColorScheme)
	return a
}

func (a *App) buildMenus() {
	fileMenu := ui.NewMenu("File", a.theme)
	fileMenu.AddItems(
		&ui.ItemEntry{Name: "New File...", Shortcut: "Ctrl+N", Callback: a.explorer.RequestNewFile},
		&ui.ItemEntry{Name: "New Folder...", Callback: a.explorer.RequestNewFolder},
		&ui.ItemEntry{Name: "Rename...", Shortcut: "F2", Callback: a.explorer.RequestRename},
		&ui.ItemEntry{Name: "Delete", Callback: a.explorer.RequestDelete},
		&ui.ItemSeparator{},
		&ui.ItemEntry{Name: "Save", Shortcut: "Ctrl+S", Callback: a.SaveCurrent},
		&ui.ItemEntry{Name: "Close Tab", Shortcut: "Ctrl+T", Callback: a.CloseCurrent},
		&ui.ItemSeparator{},
		&ui.ItemEntry{Name: "Reload Preferences", Shortcut: "Ctrl+R", Callback: a.ReloadPreferences},
		&ui.ItemEntry{Name: "Exit", Shortcut: "Ctrl+Q", Callback: a.RequestQuit},
	)

	editMenu := ui.NewMenu("Edit", a.theme)
	editMenu.AddItems(
		&ui.ItemEntry{Name: "Cut", Shortcut: "Ctrl+X", Callback: a.Cut},
		&ui.ItemEntry{Name: "Copy", Shortcut: "Ctrl+C", Callback: a.Copy},
		&ui.ItemEntry{Name: "Paste", Shortcut: "Ctrl+V", Callback: a.Paste},
	)

	searchMenu := ui.NewMenu("Search", a.theme)
	searchMenu.AddItems(
		&ui.ItemEntry{Name: "Go to Line...", Shortcut: "Ctrl+G", Callback: a.RequestGotoLine},
	)

	a.bar.AddMenu(fileMenu)
	a.bar.AddMenu(editMenu)
	a.bar.AddMenu(searchMenu)
}

// applyColorscheme validates colors once and keeps them for every editor. An
// incomplete scheme is logged and reported, and the scheme in use stays.
func (a *App) applyColorscheme(colors map[string]buffer.RGB) {
	if colors == nil {
		return
	}
	if _, err := buffer.NewColorscheme(colors); err != nil {
		log.L().Error("color scheme refused", zap.Error(err))
		a.ShowError(err)
		return
	}

	a.colors = colors
	for i := 0; i < a.tabs.GetTabCount(); i++ {
		if te, ok := a.tabs.GetTab(i).Child.(*ui.TextEdit); ok {
			te.SetColorscheme(colors) // Already validated
		}
	}
}

// ReloadPreferences reads the preferences file again and applies the parts
// that can change while running.
func (a *App) ReloadPreferences() {
	p, err := prefs.Load(a.prefsPath)
	if err != nil {
		log.L().Error("reload preferences", zap.String("path", a.prefsPath), zap.Error(err))
		a.ShowError(err)
		return
	}

	p.LibraryPath = a.prefs.LibraryPath // The library is chosen at startup
	a.prefs = p
	a.explorer.WarnBeforeDelete = p.WarnBeforeDeletingAFile
	a.applyColorscheme(p.ColorScheme)
	log.L().Debug("reloaded preferences", zap.String("path", a.prefsPath))
}

// currentEditor returns the TextEdit of the visible tab, or nil.
func (a *App) currentEditor() *ui.TextEdit {
	if tab := a.tabs.GetSelectedTab(); tab != nil {
		te, _ := tab.Child.(*ui.TextEdit)
		return te
	}
	return nil
}

func (a *App) findTab(path string) int {
	path = filepath.Clean(path)
	return a.tabs.FindTab(func(tab *ui.Tab) bool {
		te, ok := tab.Child.(*ui.TextEdit)
		return ok && filepath.Clean(te.FilePath) == path
	})
}

// OpenFile opens path in a new tab, or focuses the tab it is already open in.
func (a *App) OpenFile(path string) error {
	if idx := a.findTab(path); idx >= 0 {
		a.tabs.FocusTab(idx)
		a.panel.FocusRight(true)
		return nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	te := ui.NewTextEdit(&a.screen, path, contents, a.language, a.theme)
	te.TabSize = a.prefs.TabSize
	te.UseHardTabs = a.prefs.UseHardTabs
	if a.colors != nil {
		te.SetColorscheme(a.colors) // Already validated
	}

	a.tabs.FocusTab(a.tabs.AddTab(filepath.Base(path), te))
	a.panel.FocusRight(true)
	log.L().Debug("opened file", zap.String("path", path))
	return nil
}

func (a *App) SaveCurrent() {
	te := a.currentEditor()
	if te == nil {
		return
	}
	if err := te.Save(); err != nil {
		log.L().Error("save file", zap.String("path", te.FilePath), zap.Error(err))
		a.ShowError(err)
		return
	}
	log.L().Debug("saved file", zap.String("path", te.FilePath))
}

// CloseCurrent closes the visible tab, asking first if it has unsaved changes.
func (a *App) CloseCurrent() {
	te := a.currentEditor()
	if te == nil {
		return
	}
	idx := a.tabs.GetSelectedTabIdx()
	if !te.Dirty {
		a.tabs.RemoveTab(idx)
		return
	}
	a.PromptConfirm(fmt.Sprintf("Close %s without saving?", filepath.Base(te.FilePath)), func(ok bool) {
		if ok {
			a.tabs.RemoveTab(a.findTab(te.FilePath))
		}
	})
}

// onRenamed points the tab of a renamed file at its new path.
func (a *App) onRenamed(oldPath, newPath string) {
	if idx := a.findTab(oldPath); idx >= 0 {
		tab := a.tabs.GetTab(idx)
		tab.Name = filepath.Base(newPath)
		tab.Child.(*ui.TextEdit).FilePath = newPath
	}
}

// onDeleted closes the tabs of path and of every file under it.
func (a *App) onDeleted(path string) {
	prefix := filepath.Clean(path) + string(filepath.Separator)
	for i := a.tabs.GetTabCount() - 1; i >= 0; i-- {
		te, ok := a.tabs.GetTab(i).Child.(*ui.TextEdit)
		if ok && (filepath.Clean(te.FilePath) == filepath.Clean(path) || strings.HasPrefix(te.FilePath, prefix)) {
			a.tabs.RemoveTab(i)
		}
	}
}

func (a *App) Copy() {
	if te := a.currentEditor(); te != nil && te.HasSelection() {
		_ = ClipWrite(string(te.GetSelectedBytes())) // Failures are logged
	}
}

func (a *App) Cut() {
	if te := a.currentEditor(); te != nil && te.HasSelection() {
		_ = ClipWrite(string(te.GetSelectedBytes()))
		te.Delete(false) // Deletes the selection
	}
}

func (a *App) Paste() {
	te := a.currentEditor()
	if te == nil {
		return
	}
	contents, err := ClipRead()
	if err != nil {
		log.L().Error("read clipboard", zap.Error(err))
		return
	}
	te.Insert(contents)
}

func (a *App) RequestGotoLine() {
	te := a.currentEditor()
	if te == nil {
		return
	}
	a.PromptName("Go to Line", "", func(str string) {
		line, err := strconv.Atoi(str)
		if err != nil {
			a.ShowError(fmt.Errorf("%q is not a line number", str))
			return
		}
		te.GotoLine(line)
	})
}

// RequestQuit quits, asking first if any tab has unsaved changes.
func (a *App) RequestQuit() {
	dirty := a.tabs.FindTab(func(tab *ui.Tab) bool {
		te, ok := tab.Child.(*ui.TextEdit)
		return ok && te.Dirty
	})
	if dirty < 0 {
		a.quit = true
		return
	}
	a.PromptConfirm("Quit without saving changes?", func(ok bool) {
		a.quit = ok
	})
}

// showDialog puts c over everything and gives it focus.
func (a *App) showDialog(c ui.Component) {
	a.focused().SetFocused(false)
	a.dialog = c
	a.centerDialog()
	c.SetFocused(true)
}

// closeDialog hides the dialog and returns focus to what had it before.
func (a *App) closeDialog() {
	if a.dialog != nil {
		a.dialog.SetFocused(false)
		a.dialog = nil
	}
	a.focused().SetFocused(true)
}

func (a *App) centerDialog() {
	if a.dialog == nil {
		return
	}
	width, height := a.screen.Size()
	dw, dh := a.dialog.GetSize()
	a.dialog.SetPos((width-dw)/2, (height-dh)/2)
}

// PromptName asks for one line of text. done is only called when the user
// confirms.
func (a *App) PromptName(title, text string, done func(string)) {
	dialog := ui.NewInputDialog(&a.screen, title, text, a.theme, func(str string) {
		a.closeDialog()
		done(str)
	}, a.closeDialog)
	a.showDialog(dialog)
}

// PromptConfirm asks a yes or no question.
func (a *App) PromptConfirm(message string, done func(bool)) {
	dialog := ui.NewMessageDialog("", message, ui.MessageKindWarning, []string{"Yes", "No"}, a.theme, func(option string) {
		a.closeDialog()
		done(option == "Yes")
	})
	a.showDialog(dialog)
}

// ShowError shows err in a dialog. While a dialog is already shown, the error
// is only logged.
func (a *App) ShowError(err error) {
	log.L().Debug("error shown", zap.Error(err))
	if a.dialog != nil {
		return
	}
	dialog := ui.NewMessageDialog("", err.Error(), ui.MessageKindError, nil, a.theme, func(string) {
		a.closeDialog()
	})
	a.showDialog(dialog)
}

// unfocusBar gives focus back to the panel once a menu entry is picked.
func (a *App) unfocusBar() {
	if a.barFocused {
		a.bar.SetFocused(false)
		a.barFocused = false
		a.panel.SetFocused(true)
	}
}

// focused returns the component below any dialog that has focus.
func (a *App) focused() ui.Component {
	if a.barFocused {
		return a.bar
	}
	return a.panel
}

// Resize lays the components out over the whole screen.
func (a *App) Resize() {
	width, height := a.screen.Size()

	a.bar.SetPos(0, 0)
	a.bar.SetSize(width, 1)

	a.panel.SplitAt = ui.Min(explorerWidth, width/4)
	a.panel.SetPos(0, 1)
	a.panel.SetSize(width, height-2)

	a.centerDialog()
}

// Draw renders every component and shows the screen.
func (a *App) Draw() {
	s := a.screen
	width, height := s.Size()

	s.Clear()
	a.panel.Draw(s)
	a.drawStatusBar(s, width, height-1)
	a.bar.Draw(s)
	if a.dialog != nil {
		a.dialog.Draw(s)
	}
	s.Show()
}

func (a *App) drawStatusBar(s tcell.Screen, width, y int) {
	style := a.theme.GetOrDefault("StatusBar")
	ui.DrawRect(s, 0, y, width, 1, ' ', style)

	status := a.prefs.LibraryPath
	if te := a.currentEditor(); te != nil {
		line, col := te.GetCursor().GetLineCol()
		status = fmt.Sprintf("%s  %s  Ln %d, Col %d", te.FilePath, a.language.Name, line+1, col+1)
	}
	ui.DrawStrClipped(s, 1, y, width-2, status, style)
}

// HandleEvent routes one event. Returns true once the App should quit.
func (a *App) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventResize:
		a.Resize()
		a.screen.Sync() // Redraw everything
	case *tcell.EventKey:
		if a.dialog != nil {
			a.dialog.HandleEvent(ev)
			break
		}

		if a.bar.HandleShortcut(ev) {
			break
		}

		// On Escape, we change focus between the panel and the MenuBar.
		if ev.Key() == tcell.KeyEscape {
			a.focused().SetFocused(false)
			a.barFocused = !a.barFocused
			a.focused().SetFocused(true)
			break
		}

		a.focused().HandleEvent(ev)
	}
	return a.quit
}

// Run draws and handles events until the user quits.
func (a *App) Run() {
	for {
		a.Draw()
		if a.HandleEvent(a.screen.PollEvent()) {
			return
		}
	}
}
