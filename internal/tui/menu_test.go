package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMenu_EnterOpensLogin(t *testing.T) {
	m := NewMenuModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	nav, ok := cmd().(NavigateTo)
	if !ok {
		t.Fatalf("expected NavigateTo message, got %T", cmd())
	}
	if nav.Page != "login" {
		t.Errorf("expected login page, got %q", nav.Page)
	}
}

func TestMenu_DownThenEnterOpensRegister(t *testing.T) {
	m := NewMenuModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	menu := updated.(*MenuModel)

	_, cmd := menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	nav, ok := cmd().(NavigateTo)
	if !ok {
		t.Fatalf("expected NavigateTo message, got %T", cmd())
	}
	if nav.Page != "register" {
		t.Errorf("expected register page, got %q", nav.Page)
	}
}

func TestMenu_VimKeysMoveCursor(t *testing.T) {
	m := NewMenuModel()

	updated, _ := m.Update(keyRune('j'))
	menu := updated.(*MenuModel)
	if menu.idx != 1 {
		t.Fatalf("expected cursor on second item after j, got %d", menu.idx)
	}

	updated, _ = menu.Update(keyRune('k'))
	menu = updated.(*MenuModel)
	if menu.idx != 0 {
		t.Fatalf("expected cursor back on first item after k, got %d", menu.idx)
	}
}

func TestMenu_CursorStaysInBounds(t *testing.T) {
	m := NewMenuModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	menu := updated.(*MenuModel)
	if menu.idx != 0 {
		t.Errorf("expected cursor to stay on first item, got %d", menu.idx)
	}

	updated, _ = menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	menu = updated.(*MenuModel)
	updated, _ = menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	menu = updated.(*MenuModel)
	if menu.idx != 1 {
		t.Errorf("expected cursor to stay on last item, got %d", menu.idx)
	}
}

func TestMenu_ShowsRegistrationNotice(t *testing.T) {
	m := NewMenuModel()

	updated, _ := m.Update(RegisterSuccessNotice{Username: "alice"})
	menu := updated.(*MenuModel)

	if !strings.Contains(menu.View(), "alice registered successfully") {
		t.Error("expected registration notice in menu view")
	}
}
