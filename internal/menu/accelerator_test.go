package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceleratorParse(t *testing.T) {
	tests := []struct {
		input Accelerator
		want  string
		mods  Modifier
	}{
		{input: "CmdOrCtrl+N", want: "CmdOrCtrl+N", mods: ModPrimary},
		{input: "shift+cmdorctrl+e", want: "CmdOrCtrl+Shift+E", mods: ModPrimary | ModShift},
		{input: "CmdOrCtrl+0", want: "CmdOrCtrl+0", mods: ModPrimary},
		{input: "Ctrl+Alt+Delete", want: "Ctrl+Alt+Delete", mods: ModCtrl | ModAlt},
		{input: "Cmd+Return", want: "Super+Enter", mods: ModSuper},
		{input: "f11", want: "F11"},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			chord, err := tt.input.Parse()
			require.NoError(t, err)
			assert.Equal(t, tt.want, chord.String())
			assert.Equal(t, tt.mods, chord.Modifiers)
			assert.Equal(t, tt.want, tt.input.Canonical())
		})
	}
}

func TestAcceleratorParseErrors(t *testing.T) {
	for _, input := range []Accelerator{"", "CmdOrCtrl+", "Hyper+N", "Shift+Shift+N", "CmdOrCtrl+Nope"} {
		t.Run(string(input), func(t *testing.T) {
			_, err := input.Parse()
			assert.Error(t, err)
			assert.Empty(t, input.Canonical())
		})
	}
}

func TestChordResolutions(t *testing.T) {
	primary, err := Accelerator("CmdOrCtrl+Shift+N").Parse()
	require.NoError(t, err)

	var got []string
	for _, r := range primary.Resolutions() {
		got = append(got, r.String())
	}
	assert.Equal(t, []string{"Ctrl+Shift+N", "Shift+Super+N"}, got)

	plain, err := Accelerator("Alt+F4").Parse()
	require.NoError(t, err)
	assert.Equal(t, []Chord{plain}, plain.Resolutions())
}
