package main

import (
	"github.com/fivemoreminix/vexed/internal/log"
	"github.com/zyedidia/clipboard"
	"go.uber.org/zap"
)

type ClipMethod uint8

const (
	ClipInternal ClipMethod = iota
	ClipExternal
)

// ClipCurrentMethod is ClipInternal until ClipInitialize finds a system clipboard.
var ClipCurrentMethod ClipMethod

var internalClipboard string

// ClipInitialize will initialize the clipboard for the given method first,
// and if that fails, an internal method will be chosen, instead. The Method
// chosen is returned along with any error that may have occurred while
// selecting the method. The error is not fatal because an internal method
// is used.
func ClipInitialize(m ClipMethod) (ClipMethod, error) {
	ClipCurrentMethod = ClipInternal
	if m != ClipExternal {
		return ClipInternal, nil
	}

	if err := clipboard.Initialize(); err != nil {
		return ClipInternal, err
	}
	ClipCurrentMethod = ClipExternal
	return ClipExternal, nil
}

// ClipRead receives the clipboard contents using the ClipCurrentMethod.
func ClipRead() (string, error) {
	if ClipCurrentMethod == ClipExternal {
		return clipboard.ReadAll("clipboard")
	}
	return internalClipboard, nil
}

// ClipWrite sets the clipboard contents using the ClipCurrentMethod. When the
// system clipboard refuses, the contents are kept internally.
func ClipWrite(content string) error {
	internalClipboard = content
	if ClipCurrentMethod == ClipExternal {
		if err := clipboard.WriteAll(content, "clipboard"); err != nil {
			log.L().Warn("write system clipboard", zap.Error(err))
			return err
		}
	}
	return nil
}
