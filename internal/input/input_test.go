package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/utomato/internal/control/action"
	"github.com/ja-he/utomato/internal/input"
)

func TestConfigKeyspecToKey(t *testing.T) {

	t.Run("valid", func(t *testing.T) {
		expectValid := func(s input.Keyspec) []input.Key {
			keys, err := input.ConfigKeyspecToKeys(s)
			if err != nil {
				t.Error("unexpected error on valid spec:", err.Error())
			}
			if keys == nil {
				t.Error("unexpected nil keyspec on valid spec")
			}
			return keys
		}

		t.Run("empty", func(t *testing.T) {
			keys := expectValid("")
			if len(keys) != 0 {
				t.Error("expected empty seq of keys")
			}
		})

		t.Run("single", func(t *testing.T) {
			keys := expectValid("f")
			if len(keys) != 1 || (keys[0] != input.Key{Key: tcell.KeyRune, Ch: 'f'}) {
				t.Error("expected single key 'f', got", keys)
			}
		})

		t.Run("special", func(t *testing.T) {
			for spec, expected := range map[input.Keyspec]input.Key{
				"<cr>":    {Key: tcell.KeyEnter},
				"<CR>":    {Key: tcell.KeyEnter},
				"<space>": {Key: tcell.KeyRune, Ch: ' '},
				"<c-c>":   {Key: tcell.KeyCtrlC},
				"<esc>":   {Key: tcell.KeyESC},
			} {
				keys := expectValid(spec)
				if len(keys) != 1 || keys[0] != expected {
					t.Errorf("expected %s to be single key %v, got %v", spec, expected, keys)
				}
			}
		})

		t.Run("sequence", func(t *testing.T) {
			keys := expectValid("x<c-w>z")
			expected := []input.Key{
				{Key: tcell.KeyRune, Ch: 'x'},
				{Key: tcell.KeyCtrlW},
				{Key: tcell.KeyRune, Ch: 'z'},
			}
			if len(keys) != len(expected) {
				t.Fatal("expected three keys, got", keys)
			}
			for i := range expected {
				if keys[i] != expected[i] {
					t.Errorf("key %d: expected %v, got %v", i, expected[i], keys[i])
				}
			}
		})
	})

	t.Run("invalid", func(t *testing.T) {
		for _, spec := range []input.Keyspec{"<<cr>", "cr>", "<c-1>", "<unknown>", "<cr"} {
			_, err := input.ConfigKeyspecToKeys(spec)
			if err == nil {
				t.Errorf("expected error for '%s'", spec)
			}
		}
	})
}

func TestToConfigIdentifierString(t *testing.T) {
	for k, expected := range map[input.Key]string{
		{Key: tcell.KeyEnter}:         "<cr>",
		{Key: tcell.KeyRune, Ch: ' '}: "<space>",
		{Key: tcell.KeyRune, Ch: 'q'}: "q",
	} {
		if input.ToConfigIdentifierString(k) != expected {
			t.Errorf("expected '%s', got '%s'", expected, input.ToConfigIdentifierString(k))
		}
	}
}

func TestKeyFromTcellEvent(t *testing.T) {
	k := input.KeyFromTcellEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	if (k != input.Key{Key: tcell.KeyRune, Ch: 's'}) {
		t.Error("unexpected rune key:", k.ToDebugString())
	}
	k = input.KeyFromTcellEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if !k.IsInterrupt() {
		t.Error("ctrl-c not recognized as interrupt:", k.ToDebugString())
	}
}

func TestTree(t *testing.T) {
	counts := map[string]int{}
	count := func(name string) action.Action {
		return action.Func{Description: name, Call: func() { counts[name]++ }}
	}

	tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"<cr>": count("start"),
		"s":    count("stop"),
		"gg":   count("top"),
	})
	if err != nil {
		t.Fatal("unexpected error:", err.Error())
	}

	key := func(r rune) input.Key { return input.Key{Key: tcell.KeyRune, Ch: r} }

	t.Run("shape", func(t *testing.T) {
		g := tree.Root.Child(key('g'))
		if g == nil || g.IsLeaf() || !g.Child(key('g')).IsLeaf() {
			t.Error("expected 'g' to lead to a leaf under 'g'")
		}
		if !tree.Root.Child(key('s')).IsLeaf() || tree.Root.Child(key('x')) != nil {
			t.Error("unexpected children of the root")
		}
	})

	t.Run("single", func(t *testing.T) {
		if !tree.ProcessInput(input.Key{Key: tcell.KeyEnter}) || counts["start"] != 1 {
			t.Error("enter did not start")
		}
		if !tree.ProcessInput(key('s')) || counts["stop"] != 1 {
			t.Error("s did not stop")
		}
	})

	t.Run("unmapped", func(t *testing.T) {
		if tree.ProcessInput(key('x')) {
			t.Error("unmapped key applied")
		}
		if tree.CapturesInput() {
			t.Error("tree captures after unmapped key")
		}
	})

	t.Run("sequence", func(t *testing.T) {
		if !tree.ProcessInput(key('g')) {
			t.Error("sequence start not applied")
		}
		if !tree.CapturesInput() {
			t.Error("tree does not capture mid-sequence")
		}
		if !tree.ProcessInput(key('g')) || counts["top"] != 1 {
			t.Error("sequence not completed")
		}
		if tree.CapturesInput() {
			t.Error("tree captures after completed sequence")
		}
	})

	t.Run("sequence broken", func(t *testing.T) {
		tree.ProcessInput(key('g'))
		if tree.ProcessInput(key('s')) {
			t.Error("broken sequence applied")
		}
		if counts["stop"] != 1 {
			t.Error("broken sequence fell through to other mapping")
		}
	})

	t.Run("help", func(t *testing.T) {
		help := tree.GetHelp()
		if help["<cr>"] != "start" || help["s"] != "stop" || help["gg"] != "top" || len(help) != 3 {
			t.Error("unexpected help:", help)
		}
	})
}

func TestConstructInputTreeInvalid(t *testing.T) {
	noop := action.Func{Description: "nothing", Call: func() {}}

	for name, spec := range map[string]map[input.Keyspec]action.Action{
		"bad keyspec": {"<nope>": noop},
		"empty":       {"": noop},
		"prefix":      {"g": noop, "gg": noop},
		"same key":    {"<cr>": noop, "<CR>": noop},
	} {
		_, err := input.ConstructInputTree(spec)
		if err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestDefaultBindings(t *testing.T) {
	bindings := input.DefaultBindings()
	for spec, expected := range map[input.Keyspec]input.Actionspec{
		"<cr>":    input.ActionStart,
		"<space>": input.ActionStart,
		"s":       input.ActionStop,
		"q":       input.ActionQuit,
		"f":       input.ActionFinish,
	} {
		if bindings[spec] != expected {
			t.Errorf("expected %s bound to %s, got %s", spec, expected, bindings[spec])
		}
	}
}
