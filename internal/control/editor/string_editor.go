// Package editor implements the single-line text editing behind the
// description prompt.
package editor

import (
	"strconv"
)

// A StringEditor is a control and inspect interface for editing a string.
type StringEditor interface {
	StringEditorView
	StringEditorControl
	Commit()
}

// StringEditorView allows inspection of a string editor.
type StringEditorView interface {

	// GetCursorPos returns the current cursor position in the string, 0 being
	// the first character.
	GetCursorPos() int

	// GetContent returns the current (edited) contents.
	GetContent() string

	// GetName returns the name (prompt) of the edited string.
	GetName() string
}

// StringEditorControl allows manipulation of a string editor.
// The cursor is always in insert position, i.E. it may sit just past the last
// character.
type StringEditorControl interface {
	DeleteRune()
	BackspaceRune()
	BackspaceWord()
	BackspaceToBeginning()
	DeleteToEnd()
	Clear()
	MoveCursorToBeginning()
	MoveCursorPastEnd()
	MoveCursorLeft()
	MoveCursorRight()
	AddRune(newRune rune)
}

type stringEditor struct {
	Name string

	Content   string
	CursorPos int

	CommitFn func(string)
}

// NewStringEditor returns a StringEditor for the given content, with the
// cursor past its end. Commit hands the edited content to commitFn.
func NewStringEditor(name, content string, commitFn func(string)) StringEditor {
	return &stringEditor{
		Name:      name,
		Content:   content,
		CursorPos: len([]rune(content)),
		CommitFn:  commitFn,
	}
}

func (e stringEditor) GetName() string    { return e.Name }
func (e stringEditor) GetContent() string { return e.Content }
func (e stringEditor) GetCursorPos() int  { return e.CursorPos }

func (e *stringEditor) DeleteRune() {
	tmpStr := []rune(e.Content)
	if e.CursorPos < len(tmpStr) {
		preCursor := tmpStr[:e.CursorPos]
		postCursor := tmpStr[e.CursorPos+1:]

		e.Content = string(append(preCursor, postCursor...))
	}
}

func (e *stringEditor) BackspaceRune() {
	if e.CursorPos > 0 {
		tmpStr := []rune(e.Content)
		preCursor := tmpStr[:e.CursorPos-1]
		postCursor := tmpStr[e.CursorPos:]

		e.Content = string(append(preCursor, postCursor...))
		e.CursorPos--
	}
}

// BackspaceWord removes the word before the cursor, along with any blanks
// between it and the cursor.
func (e *stringEditor) BackspaceWord() {
	tmpStr := []rune(e.Content)
	i := e.CursorPos
	for i > 0 && tmpStr[i-1] == ' ' {
		i--
	}
	for i > 0 && tmpStr[i-1] != ' ' {
		i--
	}
	e.Content = string(append(tmpStr[:i:i], tmpStr[e.CursorPos:]...))
	e.CursorPos = i
}

func (e *stringEditor) BackspaceToBeginning() {
	nameAfterCursor := []rune(e.Content)[e.CursorPos:]
	e.Content = string(nameAfterCursor)
	e.CursorPos = 0
}

func (e *stringEditor) DeleteToEnd() {
	nameBeforeCursor := []rune(e.Content)[:e.CursorPos]
	e.Content = string(nameBeforeCursor)
}

func (e *stringEditor) Clear() {
	e.Content = ""
	e.CursorPos = 0
}

func (e *stringEditor) MoveCursorToBeginning() {
	e.CursorPos = 0
}

func (e *stringEditor) MoveCursorPastEnd() {
	e.CursorPos = len([]rune(e.Content))
}

func (e *stringEditor) MoveCursorLeft() {
	if e.CursorPos > 0 {
		e.CursorPos--
	}
}

func (e *stringEditor) MoveCursorRight() {
	if e.CursorPos < len([]rune(e.Content)) {
		e.CursorPos++
	}
}

// AddRune inserts the rune at the cursor; non-printable runes are ignored.
func (e *stringEditor) AddRune(newRune rune) {
	if strconv.IsPrint(newRune) {
		tmpName := []rune(e.Content)
		cursorPos := e.CursorPos
		if len(tmpName) == cursorPos {
			tmpName = append(tmpName, newRune)
		} else {
			tmpName = append(tmpName[:cursorPos+1], tmpName[cursorPos:]...)
			tmpName[cursorPos] = newRune
		}
		e.Content = string(tmpName)
		e.CursorPos++
	}
}

func (e *stringEditor) Commit() {
	e.CommitFn(e.Content)
}
