package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fivemoreminix/vexed/internal/log"
	"github.com/fivemoreminix/vexed/library"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// explorerRow is one visible line of the FileExplorer tree.
type explorerRow struct {
	entry library.Entry
	depth int
}

// A FileExplorer lists the folders and VEX files of a library as a tree, and
// creates, renames, and deletes them. Whenever it needs something from the
// user, like a name or a confirmation, it asks through the Prompt callbacks,
// so the owner decides how dialogs are shown.
type FileExplorer struct {
	Root             string
	WarnBeforeDelete bool

	OpenCallback    func(path string)             // Enter on a file
	RenamedCallback func(oldPath, newPath string) // A file was renamed
	DeletedCallback func(path string)             // A file or folder was deleted
	ErrorCallback   func(err error)

	PromptName    func(title, text string, done func(name string))
	PromptConfirm func(message string, done func(ok bool))

	rows     []explorerRow
	expanded map[string]bool // Folders showing their children, by path
	selected int
	scrolly  int

	baseComponent
}

func NewFileExplorer(root string, theme *Theme) *FileExplorer {
	e := &FileExplorer{
		Root:             root,
		WarnBeforeDelete: true,
		expanded:         make(map[string]bool),
		baseComponent:    baseComponent{theme: theme},
	}
	e.Refresh()
	return e
}

// Refresh lists the library again, keeping the selection on the same path
// when it still exists.
func (e *FileExplorer) Refresh() {
	var selectedPath string
	if entry := e.GetSelected(); entry != nil {
		selectedPath = entry.Path
	}

	entries, err := library.List(e.Root)
	if err != nil {
		log.L().Error("list library", zap.String("root", e.Root), zap.Error(err))
		e.reportError(err)
		entries = nil
	}

	e.rows = e.rows[:0]
	e.appendRows(entries, 0)

	e.selected = Clamp(e.selected, 0, Max(len(e.rows)-1, 0))
	if selectedPath != "" {
		e.SelectPath(selectedPath)
	}
}

func (e *FileExplorer) appendRows(entries []library.Entry, depth int) {
	for _, entry := range entries {
		e.rows = append(e.rows, explorerRow{entry, depth})
		if entry.IsDir && e.expanded[entry.Path] {
			e.appendRows(entry.Children, depth+1)
		}
	}
}

// SelectPath selects the row of path, expanding the folders above it. Returns
// false if the path is not in the library.
func (e *FileExplorer) SelectPath(path string) bool {
	path = filepath.Clean(path)
	expandedAny := false
	for dir := filepath.Dir(path); strings.HasPrefix(dir, filepath.Clean(e.Root)) && dir != filepath.Clean(e.Root); dir = filepath.Dir(dir) {
		if !e.expanded[dir] {
			e.expanded[dir] = true
			expandedAny = true
		}
	}
	if expandedAny {
		e.Refresh()
	}

	for i := range e.rows {
		if e.rows[i].entry.Path == path {
			e.selected = i
			e.scrollToSelected()
			return true
		}
	}
	return false
}

// GetSelected returns the selected entry, or nil when the library is empty.
func (e *FileExplorer) GetSelected() *library.Entry {
	if e.selected < 0 || e.selected >= len(e.rows) {
		return nil
	}
	return &e.rows[e.selected].entry
}

// TargetFolder returns where new entries are made: the selected folder, the
// folder of the selected file, or the root.
func (e *FileExplorer) TargetFolder() string {
	entry := e.GetSelected()
	switch {
	case entry == nil:
		return e.Root
	case entry.IsDir:
		return entry.Path
	default:
		return filepath.Dir(entry.Path)
	}
}

func (e *FileExplorer) reportError(err error) {
	if e.ErrorCallback != nil {
		e.ErrorCallback(err)
	}
}

// NewFile creates a VEX file called name in TargetFolder() and selects it.
func (e *FileExplorer) NewFile(name string) {
	if !library.IsValidFileName(name) {
		e.reportError(fmt.Errorf("%q: %w", name, library.ErrInvalidName))
		return
	}

	path := library.Create(e.TargetFolder(), name)
	e.Refresh()
	e.SelectPath(path)
}

// NewFolder creates a folder called name in TargetFolder() and selects it.
func (e *FileExplorer) NewFolder(name string) {
	path, err := library.CreateFolder(e.TargetFolder(), name)
	if err != nil {
		log.L().Error("create folder", zap.String("name", name), zap.Error(err))
		e.reportError(err)
		return
	}
	e.Refresh()
	e.SelectPath(path)
}

// RenameSelected renames the selected file to name. Folders are not renamed.
func (e *FileExplorer) RenameSelected(name string) {
	entry := e.GetSelected()
	if entry == nil || entry.IsDir {
		return
	}

	oldPath := entry.Path
	newPath := library.Rename(oldPath, name)
	if newPath == oldPath {
		if filepath.Base(oldPath) != filepath.Base(name) && filepath.Base(oldPath) != name+library.Extension {
			e.reportError(fmt.Errorf("could not rename %s to %s", filepath.Base(oldPath), name))
		}
		return
	}

	e.Refresh()
	e.SelectPath(newPath)
	if e.RenamedCallback != nil {
		e.RenamedCallback(oldPath, newPath)
	}
}

// DeleteSelected removes the selected file or folder. The library root can't
// be deleted.
func (e *FileExplorer) DeleteSelected() {
	entry := e.GetSelected()
	if entry == nil {
		return
	}

	path := entry.Path
	if err := library.Delete(e.Root, path); err != nil {
		log.L().Error("delete", zap.String("path", path), zap.Error(err))
		e.reportError(err)
		return
	}

	delete(e.expanded, path)
	e.Refresh()
	if e.DeletedCallback != nil {
		e.DeletedCallback(path)
	}
}

// RequestNewFile asks for a name, then creates the file.
func (e *FileExplorer) RequestNewFile() {
	if e.PromptName != nil {
		e.PromptName("New File", "", e.NewFile)
	}
}

// RequestNewFolder asks for a name, then creates the folder.
func (e *FileExplorer) RequestNewFolder() {
	if e.PromptName != nil {
		e.PromptName("New Folder", "", e.NewFolder)
	}
}

// RequestRename asks for the new name of the selected file, then renames it.
func (e *FileExplorer) RequestRename() {
	entry := e.GetSelected()
	if entry == nil || entry.IsDir || e.PromptName == nil {
		return
	}
	e.PromptName("Rename", strings.TrimSuffix(entry.Name, library.Extension), e.RenameSelected)
}

// RequestDelete deletes the selected entry, first asking for confirmation if
// WarnBeforeDelete is set.
func (e *FileExplorer) RequestDelete() {
	entry := e.GetSelected()
	if entry == nil {
		return
	}
	if !e.WarnBeforeDelete || e.PromptConfirm == nil {
		e.DeleteSelected()
		return
	}

	path := entry.Path
	e.PromptConfirm(fmt.Sprintf("Delete %s?", entry.Name), func(ok bool) {
		if ok && e.SelectPath(path) {
			e.DeleteSelected()
		}
	})
}

// Activate opens the selected file, or expands or collapses the selected folder.
func (e *FileExplorer) Activate() {
	entry := e.GetSelected()
	switch {
	case entry == nil:
	case entry.IsDir:
		e.expanded[entry.Path] = !e.expanded[entry.Path]
		e.Refresh()
	case e.OpenCallback != nil:
		e.OpenCallback(entry.Path)
	}
}

func (e *FileExplorer) setExpanded(v bool) {
	if entry := e.GetSelected(); entry != nil && entry.IsDir && e.expanded[entry.Path] != v {
		e.expanded[entry.Path] = v
		e.Refresh()
	}
}

func (e *FileExplorer) moveSelection(delta int) {
	e.selected = Clamp(e.selected+delta, 0, Max(len(e.rows)-1, 0))
	e.scrollToSelected()
}

func (e *FileExplorer) scrollToSelected() {
	visible := Max(e.height-2, 1)
	if e.selected >= e.scrolly+visible {
		e.scrolly = e.selected - visible + 1
	} else if e.selected < e.scrolly {
		e.scrolly = e.selected
	}
}

// Draw renders the tree inside an outline with the name of the root folder
// along the top.
func (e *FileExplorer) Draw(s tcell.Screen) {
	style := e.theme.GetOrDefault("FileExplorer")
	outlineStyle := e.focusStyle("FileExplorer")

	DrawRect(s, e.x, e.y, e.width, e.height, ' ', style)
	DrawRectOutlineDefault(s, e.x, e.y, e.width, e.height, outlineStyle)
	DrawStrClipped(s, e.x+1, e.y, e.width-2, fmt.Sprintf(" %s ", filepath.Base(e.Root)), outlineStyle)

	innerWidth := e.width - 2
	for i := e.scrolly; i < len(e.rows) && i-e.scrolly < e.height-2; i++ {
		row := e.rows[i]

		var marker string
		rowStyle := style
		if row.entry.IsDir {
			marker = "+ "
			if e.expanded[row.entry.Path] {
				marker = "- "
			}
			rowStyle = e.theme.GetOrDefault("FileExplorerFolder")
		} else {
			marker = "  "
		}
		if i == e.selected {
			rowStyle = e.theme.GetOrDefault("FileExplorerSelected")
		}

		str := strings.Repeat("  ", row.depth) + marker + row.entry.Name
		DrawStrClipped(s, e.x+1, e.y+1+i-e.scrolly, innerWidth, padRight(str, innerWidth), rowStyle)
	}
}

func (e *FileExplorer) SetSize(width, height int) {
	e.width, e.height = width, height
	e.scrollToSelected()
}

func (e *FileExplorer) GetMinSize() (int, int) {
	return 10, 3
}

// HandleEvent moves the selection and runs the actions on the selected entry:
// n for a new file, f for a new folder, r or F2 to rename, and Delete to delete.
func (e *FileExplorer) HandleEvent(event tcell.Event) bool {
	ev, ok := event.(*tcell.EventKey)
	if !ok {
		return false
	}

	switch ev.Key() {
	case tcell.KeyUp:
		e.moveSelection(-1)
	case tcell.KeyDown:
		e.moveSelection(1)
	case tcell.KeyPgUp:
		e.moveSelection(-(e.height - 2))
	case tcell.KeyPgDn:
		e.moveSelection(e.height - 2)
	case tcell.KeyHome:
		e.moveSelection(-len(e.rows))
	case tcell.KeyEnd:
		e.moveSelection(len(e.rows))
	case tcell.KeyRight:
		e.setExpanded(true)
	case tcell.KeyLeft:
		e.setExpanded(false)
	case tcell.KeyEnter:
		e.Activate()
	case tcell.KeyF2:
		e.RequestRename()
	case tcell.KeyDelete:
		e.RequestDelete()
	case tcell.KeyF5:
		e.Refresh()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'n':
			e.RequestNewFile()
		case 'f':
			e.RequestNewFolder()
		case 'r':
			e.RequestRename()
		default:
			return false
		}
	default:
		return false
	}
	return true
}
