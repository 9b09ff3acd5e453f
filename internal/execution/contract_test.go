package execution

import "testing"

func TestSelectors(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"first choice", ChoiceSelector(0), ".choice-button:nth-child(1)"},
		{"fourth choice", ChoiceSelector(3), ".choice-button:nth-child(4)"},
		{"tile", TileSelector("questions_easy"), "[data-key='questions_easy']"},
		{"tile with quote", TileSelector("it's"), `[data-key='it\'s']`},
		{"presence", presenceScript("#game-screen"), `document.querySelector("#game-screen") !== null`},
		{"click", clickScript("#next-button"), `document.querySelector("#next-button").click()`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#game-screen", "_game_screen"},
		{".choice-button:nth-child(2)", "_choice_button_nth_child_2_"},
		{"[data-key='questions_easy']", "_data_key__questions_easy__"},
		{"abcXYZ019", "abcXYZ019"},
		{"é", "_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
