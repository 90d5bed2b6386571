package editor_test

import (
	"testing"

	"github.com/ja-he/utomato/internal/control/editor"
)

func typeInto(e editor.StringEditor, s string) {
	for _, r := range s {
		e.AddRune(r)
	}
}

func expectState(t *testing.T, e editor.StringEditor, content string, cursor int) {
	t.Helper()
	if e.GetContent() != content || e.GetCursorPos() != cursor {
		t.Errorf("expected ('%s', %d), got ('%s', %d)", content, cursor, e.GetContent(), e.GetCursorPos())
	}
}

func TestStringEditor(t *testing.T) {

	t.Run("new", func(t *testing.T) {
		e := editor.NewStringEditor("Break.", "tea", func(string) {})
		if e.GetName() != "Break." {
			t.Error("unexpected name:", e.GetName())
		}
		expectState(t, e, "tea", 3)
	})

	t.Run("typing", func(t *testing.T) {
		e := editor.NewStringEditor("", "", func(string) {})
		typeInto(e, "fix bug")
		expectState(t, e, "fix bug", 7)
		e.AddRune('\x07')
		expectState(t, e, "fix bug", 7)
	})

	t.Run("insert in middle", func(t *testing.T) {
		e := editor.NewStringEditor("", "fx", func(string) {})
		e.MoveCursorLeft()
		e.AddRune('i')
		expectState(t, e, "fix", 2)
	})

	t.Run("multibyte", func(t *testing.T) {
		e := editor.NewStringEditor("", "", func(string) {})
		typeInto(e, "Kaffee ☕")
		e.BackspaceRune()
		expectState(t, e, "Kaffee ", 7)
	})

	t.Run("cursor movement bounds", func(t *testing.T) {
		e := editor.NewStringEditor("", "ab", func(string) {})
		e.MoveCursorRight()
		expectState(t, e, "ab", 2)
		e.MoveCursorToBeginning()
		e.MoveCursorLeft()
		expectState(t, e, "ab", 0)
		e.BackspaceRune()
		expectState(t, e, "ab", 0)
		e.MoveCursorPastEnd()
		expectState(t, e, "ab", 2)
		e.DeleteRune()
		expectState(t, e, "ab", 2)
	})

	t.Run("delete", func(t *testing.T) {
		e := editor.NewStringEditor("", "abc", func(string) {})
		e.MoveCursorToBeginning()
		e.DeleteRune()
		expectState(t, e, "bc", 0)
		e.MoveCursorRight()
		e.DeleteToEnd()
		expectState(t, e, "b", 1)
	})

	t.Run("backspace word", func(t *testing.T) {
		e := editor.NewStringEditor("", "write the docs  ", func(string) {})
		e.BackspaceWord()
		expectState(t, e, "write the ", 10)
		e.BackspaceWord()
		expectState(t, e, "write ", 6)
		e.MoveCursorToBeginning()
		e.BackspaceWord()
		expectState(t, e, "write ", 0)
	})

	t.Run("backspace to beginning", func(t *testing.T) {
		e := editor.NewStringEditor("", "abcdef", func(string) {})
		e.MoveCursorLeft()
		e.MoveCursorLeft()
		e.BackspaceToBeginning()
		expectState(t, e, "ef", 0)
		e.Clear()
		expectState(t, e, "", 0)
	})

	t.Run("commit", func(t *testing.T) {
		committed := ""
		e := editor.NewStringEditor("", "", func(s string) { committed = s })
		typeInto(e, "done")
		e.Commit()
		if committed != "done" {
			t.Error("unexpected commit:", committed)
		}
	})
}
